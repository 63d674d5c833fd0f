package annotate

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tsawler/lectern/enrich"
	"github.com/tsawler/lectern/model"
)

const (
	minNotesLen = 21 // notes shorter than this carry no usable context

	// Sentinels the extraction prompt asks for when the notes contain
	// nothing worth reading.
	noContextSentinelDE = "KEIN_KONTEXT"
	noContextSentinelEN = "NO_CONTEXT"

	minFallbackSentence = 30
	maxFallbackSentence = 200
)

// addNoteContext turns useful speaker notes into a contextual block
// that screen readers hear before the slide content.
func (e *Engine) addNoteContext(ctx context.Context, doc *model.Document) {
	for _, slide := range doc.Slides {
		notes := strings.TrimSpace(slide.Notes)
		if len(notes) < minNotesLen {
			continue
		}
		if hasGeneratedBlock(slide, noteSourcePrefix) {
			continue
		}

		noteContext := e.extractNoteContext(ctx, notes)
		if noteContext == "" {
			continue
		}

		block := model.NewTextBlock(model.BlockParagraph, model.NewParagraph(noteContext))
		block.Source = noteSourcePrefix + uuid.NewString()
		block.ReadingOrder = 0
		block.A11y.Role = model.RoleContextual
		block.A11y.NoteContext = noteContext

		for _, b := range slide.Blocks {
			b.ReadingOrder++
		}
		slide.Blocks = append([]*model.Block{block}, slide.Blocks...)
	}
}

func (e *Engine) extractNoteContext(ctx context.Context, notes string) string {
	if e.capability != nil {
		prompt := fmt.Sprintf(
			"The following are speaker notes for one presentation slide. Extract the one or "+
				"two sentences that give a listener useful context about the slide, in %s. "+
				"If the notes contain no such context, answer exactly %s.\n\n%s",
			e.lex.noteLanguage, noContextSentinelEN, notes)

		if raw, err := e.capability.CompleteText(ctx, prompt); err == nil {
			answer := enrich.CleanResponse(raw)
			upper := strings.ToUpper(answer)
			if strings.Contains(upper, noContextSentinelEN) || strings.Contains(upper, noContextSentinelDE) {
				return ""
			}
			if len(answer) >= minFallbackSentence {
				return answer
			}
		}
	}

	return e.fallbackNoteContext(notes)
}

// fallbackNoteContext takes the first sentence of the notes when it is
// long enough to mean something and short enough to stay an aside.
func (e *Engine) fallbackNoteContext(notes string) string {
	sentence := firstSentence(notes)
	if len(sentence) < minFallbackSentence || len(sentence) >= maxFallbackSentence {
		return ""
	}
	sentence = strings.TrimRight(sentence, ".")
	return fmt.Sprintf("%s: %s.", e.lex.contextLabel, sentence)
}

func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			return strings.TrimSpace(text[:i])
		}
	}
	return text
}
