package annotate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/lectern/model"
)

// Page number forms. Bare integers are only chrome within a plausible
// slide-count range; "142" in a revenue table must survive.
var (
	bareNumber     = regexp.MustCompile(`^\d{1,3}$`)
	labeledNumber  = regexp.MustCompile(`(?i)^(folie|slide|seite|page)\s+\d+$`)
	slashNumber    = regexp.MustCompile(`^\d+\s*/\s*\d+$`)
	ofNumber       = regexp.MustCompile(`(?i)^\d+\s+(von|of)\s+\d+$`)
	maxBarePageNum = 100
)

// Boilerplate that repeats on every slide of a corporate template.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(all rights reserved|alle rechte vorbehalten)`),
	regexp.MustCompile(`(?i)^(©|\(c\)|copyright)\s*\d{0,4}`),
	regexp.MustCompile(`(?i)\b(confidential|vertraulich)\b`),
	regexp.MustCompile(`(?i)(internal use only|nur für den internen gebrauch)`),
	regexp.MustCompile(`(?i)^(draft|entwurf)$`),
	regexp.MustCompile(`(?i)^(impressum|datenschutz|privacy)\b`),
}

// Interactive leftovers that only make sense on a clicked-through deck.
var navigationHintPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(klicken sie hier|click here)`),
	regexp.MustCompile(`(?i)^(weiter|zurück|next|back)\s*[>»›]*$`),
	regexp.MustCompile(`(?i)^[<«‹]*\s*(weiter|zurück|next|back)$`),
	regexp.MustCompile(`(?i)(mehr erfahren|learn more)`),
}

// Unfilled template text, lowercased substrings.
var placeholderFragments = []string{
	"titel eingeben",
	"text eingeben",
	"untertitel eingeben",
	"click to add",
	"add title",
	"add text",
	"add subtitle",
	"lorem ipsum",
	"platzhalter",
}

// Contact coordinates repeated on many slides.
var (
	emailPattern = regexp.MustCompile(`[\w\.-]+@[\w\.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s\-/]{8,}`)
	webPattern   = regexp.MustCompile(`www\.[\w\.-]+\.\w+`)
)

// stripChrome annotates slide chrome: page numbers, boilerplate,
// placeholder text and repeated contact lines. Contact deduplication is
// evaluated even when the boilerplate check already set a role, so a
// repeated legal-plus-contact footer ends up redundant rather than
// boilerplate.
func (e *Engine) stripChrome(doc *model.Document, st *runState) {
	for _, slide := range doc.Slides {
		for _, block := range slide.Blocks {
			if block.Paragraphs() == nil {
				continue
			}
			text := block.TrimmedText()
			if text == "" {
				continue
			}

			if e.config.StripPageNumbers && isPageNumber(text) {
				setRole(block, model.RoleNavigation, "page number")
				continue
			}

			if e.config.StripBoilerplate && isBoilerplate(text) {
				setRole(block, model.RoleBoilerplate, "legal or template boilerplate")
				// no continue: contact dedup below may overwrite
			}

			if e.config.StripNavigationHints && isNavigationHint(text) {
				setRole(block, model.RoleBoilerplate, "navigation hint")
				continue
			}

			if e.config.StripPlaceholders && isPlaceholder(text) {
				setRole(block, model.RolePlaceholder, "unfilled template placeholder")
				continue
			}

			if e.config.DeduplicateContacts {
				e.dedupContacts(block, text, st)
			}
		}
	}
}

func isPageNumber(text string) bool {
	if bareNumber.MatchString(text) {
		n, err := strconv.Atoi(text)
		return err == nil && n >= 1 && n <= maxBarePageNum
	}
	return labeledNumber.MatchString(text) ||
		slashNumber.MatchString(text) ||
		ofNumber.MatchString(text)
}

func isBoilerplate(text string) bool {
	for _, p := range boilerplatePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func isNavigationHint(text string) bool {
	for _, p := range navigationHintPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func isPlaceholder(text string) bool {
	lower := strings.ToLower(text)
	for _, fragment := range placeholderFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

// dedupContacts keeps the first block showing each contact coordinate
// and marks any block repeating a known contact, even when the repeat
// shares a slide with the first appearance. New contacts in a repeating
// block still register, so a later block showing only them reads as a
// repeat too.
func (e *Engine) dedupContacts(block *model.Block, text string, st *runState) {
	contacts := extractContacts(text)
	if len(contacts) == 0 {
		return
	}

	repeated := false
	for _, contact := range contacts {
		if st.contactSeen[contact] {
			repeated = true
		} else {
			st.contactSeen[contact] = true
		}
	}

	if repeated {
		setRole(block, model.RoleRedundant, "repeated contact information")
	}
}

// extractContacts returns the contact coordinates in text, normalized
// by lowercasing and trimming so repeats match across casing.
func extractContacts(text string) []string {
	var contacts []string
	for _, p := range []*regexp.Regexp{emailPattern, phonePattern, webPattern} {
		for _, m := range p.FindAllString(text, -1) {
			contacts = append(contacts, strings.ToLower(strings.TrimSpace(m)))
		}
	}
	return contacts
}
