package annotate

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/tsawler/lectern/model"
)

// Footnote definition patterns, tried in priority order. The first
// pattern that matches a block wins.
var footnotePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([¹²³⁴⁵⁶⁷⁸⁹⁰]+)\s*(.+)$`),
	regexp.MustCompile(`^\[(\d+)\]\s*(.+)$`),
	regexp.MustCompile(`^(\d+)\)\s*(.+)$`),
	regexp.MustCompile(`^(\*+)\s*(.+)$`),
}

var superscriptDigits = map[rune]rune{
	'¹': '1', '²': '2', '³': '3', '⁴': '4', '⁵': '5',
	'⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9', '⁰': '0',
}

// normalizeMarker maps a captured footnote marker to its canonical map
// key: superscripts become plain digits, asterisk runs collapse to "1".
func normalizeMarker(marker string) string {
	if strings.HasPrefix(marker, "*") {
		return "1"
	}
	var sb strings.Builder
	for _, r := range marker {
		if d, ok := superscriptDigits[r]; ok {
			sb.WriteRune(d)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// analyzeContent is the collection pass: footnote definitions for the
// inlining phase and content hashes for redundancy detection. Nothing
// is annotated here.
func (e *Engine) analyzeContent(doc *model.Document, st *runState) {
	collectFootnotes := e.config.DetectFootnotes || e.config.InlineFootnotes
	collectHashes := e.config.DetectRedundant

	for _, slide := range doc.Slides {
		for _, block := range slide.Blocks {
			if collectFootnotes {
				e.collectFootnote(block, st)
			}
			if collectHashes {
				if hash := contentHash(block); hash != "" {
					st.hashSlides[hash] = append(st.hashSlides[hash], slide.Number)
				}
			}
		}
	}
}

func (e *Engine) collectFootnote(block *model.Block, st *runState) {
	text := block.TrimmedText()
	if text == "" || block.Paragraphs() == nil {
		return
	}
	for _, pattern := range footnotePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		marker := normalizeMarker(m[1])
		content := strings.TrimSpace(m[2])
		if marker != "" && content != "" {
			st.footnotes[marker] = content
		}
		return
	}
}

// contentHash fingerprints a block for cross-slide redundancy: figures
// by their image hash, text blocks by an MD5 over their lowercased text
// when it is long enough to be distinctive.
func contentHash(block *model.Block) string {
	if fig := block.Figure(); fig != nil {
		return fig.ContentHash()
	}
	text := strings.ToLower(block.TrimmedText())
	if len(text) <= 10 {
		return ""
	}
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
