package annotate

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsawler/lectern/enrich"
	"github.com/tsawler/lectern/model"
)

// Alt text containing one of these words points at a data
// visualization, which deserves a real description instead of a label.
var chartKeywords = []string{"diagramm", "diagram", "chart", "grafik", "graph"}

const minChartDescriptionLen = 30

// enhanceChartDescriptions replaces label-style chart alt text ("Sales
// chart") with a description of what the chart shows, when vision is
// available.
func (e *Engine) enhanceChartDescriptions(ctx context.Context, doc *model.Document) {
	if e.capability == nil || !e.capability.CanDescribeImages() {
		return
	}

	for _, slide := range doc.Slides {
		for _, block := range slide.Blocks {
			fig := block.Figure()
			if fig == nil || len(fig.Data) == 0 {
				continue
			}
			if !mentionsChart(fig.AltText) {
				continue
			}

			prompt := fmt.Sprintf(
				"This image is a chart or diagram. Describe in three sentences, in %s, "+
					"what it shows: the quantities involved, the trend or relationship, "+
					"and the most important value.", e.lex.noteLanguage)

			raw, err := e.capability.DescribeImage(ctx, fig.Data, prompt)
			if err != nil {
				continue
			}
			description := enrich.CleanResponse(raw)
			if len(description) < minChartDescriptionLen {
				continue
			}

			fig.AltText = description
			fig.AltTextConfidence = 0.9
		}
	}
}

func mentionsChart(altText string) bool {
	lower := strings.ToLower(altText)
	for _, kw := range chartKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
