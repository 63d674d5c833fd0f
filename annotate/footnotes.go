package annotate

import (
	"regexp"

	"github.com/tsawler/lectern/model"
)

var (
	superscriptRun = regexp.MustCompile(`[¹²³⁴⁵⁶⁷⁸⁹⁰]+`)
	bracketMarker  = regexp.MustCompile(`\[(\d+)\]`)
)

// inlineFootnotes replaces footnote markers in run text with the
// footnote content in parentheses, so the reference is spoken where it
// occurs. Markers without a collected definition stay verbatim.
func (e *Engine) inlineFootnotes(doc *model.Document, st *runState) {
	if len(st.footnotes) == 0 {
		return
	}

	for _, slide := range doc.Slides {
		for _, block := range slide.Blocks {
			paragraphs := block.Paragraphs()
			for pi := range paragraphs {
				for ri := range paragraphs[pi].Runs {
					paragraphs[pi].Runs[ri].Text = inlineMarkers(paragraphs[pi].Runs[ri].Text, st.footnotes)
				}
			}
			block.SetParagraphs(paragraphs)
		}
	}
}

func inlineMarkers(text string, footnotes map[string]string) string {
	text = superscriptRun.ReplaceAllStringFunc(text, func(marker string) string {
		if content, ok := footnotes[normalizeMarker(marker)]; ok {
			return " (" + content + ")"
		}
		return marker
	})
	text = bracketMarker.ReplaceAllStringFunc(text, func(marker string) string {
		m := bracketMarker.FindStringSubmatch(marker)
		if content, ok := footnotes[m[1]]; ok {
			return " (" + content + ")"
		}
		return marker
	})
	return text
}
