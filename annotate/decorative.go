package annotate

import (
	"context"
	"regexp"
	"strings"

	"github.com/tsawler/lectern/enrich"
	"github.com/tsawler/lectern/model"
)

// Figures smaller than this on both axes are spacers or bullets.
const minMeaningfulSizeMM = 20

// Figures covering at least this fraction of both slide dimensions are
// background candidates.
const backgroundCoverage = 0.9

// Text made only of whitespace, dashes, dots, bullets and pipe
// characters is a visual divider.
var dividerText = regexp.MustCompile(`^[\s\-–—_\.•·│|]+$`)

const backgroundPrompt = "Is this image A) purely decorative (background, texture, frame) " +
	"or B) does it convey information? Answer with the single letter A or B."

// markDecorative annotates blocks that add nothing when read aloud.
func (e *Engine) markDecorative(ctx context.Context, doc *model.Document) {
	for _, slide := range doc.Slides {
		for _, block := range slide.Blocks {
			switch {
			case block.Figure() != nil:
				e.markDecorativeFigure(ctx, slide, block)
			case block.Paragraphs() != nil:
				if text := block.TrimmedText(); text != "" && dividerText.MatchString(text) {
					setRole(block, model.RoleDecorative, "divider or spacer text")
				}
			}
		}
	}
}

func (e *Engine) markDecorativeFigure(ctx context.Context, slide *model.Slide, block *model.Block) {
	if block.BBox == nil {
		return
	}

	if block.BBox.Width < minMeaningfulSizeMM && block.BBox.Height < minMeaningfulSizeMM {
		setRole(block, model.RoleDecorative, "image too small to carry information")
		return
	}

	coversW := block.BBox.Width >= backgroundCoverage*slide.WidthMM
	coversH := block.BBox.Height >= backgroundCoverage*slide.HeightMM
	if coversW && coversH {
		if !e.isInformativeBackground(ctx, block.Figure()) {
			setRole(block, model.RoleDecorative, "full-slide background image")
		}
	}
}

// isInformativeBackground asks the vision capability whether a
// full-slide image carries information. Without vision the image is
// assumed decorative; full-bleed photos overwhelmingly are. With
// vision but no bytes to inspect, the verdict cannot be rendered and
// the figure is kept.
func (e *Engine) isInformativeBackground(ctx context.Context, fig *model.Figure) bool {
	if e.capability == nil || !e.capability.CanDescribeImages() {
		return false
	}
	if len(fig.Data) == 0 {
		return true
	}
	answer, err := e.capability.DescribeImage(ctx, fig.Data, backgroundPrompt)
	if err != nil {
		return false
	}
	answer = strings.ToUpper(strings.TrimSpace(enrich.CleanResponse(answer)))
	return !strings.HasPrefix(answer, "A")
}

func setRole(block *model.Block, role model.Role, reason string) {
	block.A11y.Role = role
	block.A11y.SkipReason = reason
}
