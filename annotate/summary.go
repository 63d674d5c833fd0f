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
	maxSummaryExcerpts   = 10
	maxSummaryExcerptLen = 200
	minSummaryLen        = 15
)

// generateSummaries prepends a one-sentence orientation to slides dense
// enough that listeners benefit from knowing the destination first.
func (e *Engine) generateSummaries(ctx context.Context, doc *model.Document) {
	if e.capability == nil {
		return
	}

	threshold := e.config.ComplexSlideThreshold
	if threshold <= 0 {
		threshold = DefaultConfig().ComplexSlideThreshold
	}

	for _, slide := range doc.Slides {
		if hasGeneratedBlock(slide, summarySourcePrefix) {
			continue
		}
		if readableBlockCount(slide) < threshold {
			continue
		}

		summary := e.summarizeSlide(ctx, slide)
		if summary == "" {
			continue
		}

		block := model.NewTextBlock(model.BlockParagraph,
			model.NewParagraph(fmt.Sprintf("%s: %s", e.lex.summaryLabel, summary)))
		block.Source = summarySourcePrefix + uuid.NewString()
		block.ReadingOrder = 0
		block.A11y.Role = model.RoleContextual

		for _, b := range slide.Blocks {
			b.ReadingOrder++
		}
		slide.Blocks = append([]*model.Block{block}, slide.Blocks...)
	}
}

func readableBlockCount(slide *model.Slide) int {
	n := 0
	for _, b := range slide.Blocks {
		if b.A11y.Role == model.RoleDecorative || b.A11y.Role == model.RoleRedundant {
			continue
		}
		n++
	}
	return n
}

func (e *Engine) summarizeSlide(ctx context.Context, slide *model.Slide) string {
	var excerpts []string
	for _, b := range slide.SortedBlocks() {
		if b.A11y.Role.Skippable() {
			continue
		}
		text := b.TrimmedText()
		if text == "" {
			continue
		}
		text = truncateRunes(text, maxSummaryExcerptLen)
		excerpts = append(excerpts, text)
		if len(excerpts) == maxSummaryExcerpts {
			break
		}
	}
	if len(excerpts) == 0 {
		return ""
	}

	prompt := fmt.Sprintf(
		"Summarize what this presentation slide covers in one sentence, in %s:\n\n%s",
		e.lex.noteLanguage, strings.Join(excerpts, "\n"))

	raw, err := e.capability.CompleteText(ctx, prompt)
	if err != nil {
		return ""
	}
	summary := enrich.CleanResponse(raw)
	if len(summary) < minSummaryLen {
		return ""
	}
	return summary
}
