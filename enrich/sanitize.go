package enrich

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Models occasionally wrap answers in markup or chatty lead-ins.
// CleanResponse normalizes a raw response into plain prose.

var leadInPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(sure|certainly|of course)[,!.]?\s*`),
	regexp.MustCompile(`(?i)^(here is|here's)\s+[^:.]*[:.]\s*`),
	regexp.MustCompile(`(?i)^(this|the)\s+(image|picture|photo|slide|figure|chart|diagram)\s+(shows|contains|depicts|displays|presents|is)[:,]?\s*`),
	regexp.MustCompile(`(?i)^(das|dieses)\s+(bild|foto|diagramm)\s+zeigt[:,]?\s*`),
	regexp.MustCompile(`(?i)^(die|diese)\s+folie\s+zeigt[:,]?\s*`),
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// StripMarkup removes HTML/XML tags from a response, keeping text
// content. Plain strings pass through untouched.
func StripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return sb.String()
}

// CleanResponse strips markup, drops chatty lead-in phrases, collapses
// whitespace and removes wrapping quotes.
func CleanResponse(s string) string {
	s = StripMarkup(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)

	for _, p := range leadInPatterns {
		s = p.ReplaceAllString(s, "")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	// Capitalize after a removed lead-in.
	runes := []rune(s)
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
