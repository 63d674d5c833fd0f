package annotate

import "github.com/tsawler/lectern/model"

// cleanup produces the terminal model: skippable blocks and empty
// blocks are removed, survivors get contiguous reading orders 1..N. A
// block with rewritten narration survives even when its raw payload is
// empty, since the narration is what gets read.
func (e *Engine) cleanup(doc *model.Document) {
	for _, slide := range doc.Slides {
		kept := slide.Blocks[:0]
		for _, b := range slide.Blocks {
			if b.A11y.Role.Skippable() {
				continue
			}
			if b.IsEmpty() && b.A11y.ScreenReaderText == "" {
				continue
			}
			kept = append(kept, b)
		}
		slide.Blocks = kept
		renumber(slide)
	}
}
