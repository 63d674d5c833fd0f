package annotate

import (
	"context"

	"github.com/tsawler/lectern/enrich"
	"github.com/tsawler/lectern/model"
)

// Test fixtures shared by the phase tests.

func textBlock(text string) *model.Block {
	return model.NewTextBlock(model.BlockParagraph, model.NewParagraph(text))
}

func placedBlock(text string, x, y, w, h float64) *model.Block {
	b := textBlock(text)
	bbox := model.NewBBox(x, y, w, h)
	b.BBox = &bbox
	return b
}

func headingBlock(text string, level int) *model.Block {
	b := model.NewTextBlock(model.BlockHeading, model.NewParagraph(text))
	b.HeadingLevel = level
	return b
}

func figureBlock(data []byte, x, y, w, h float64) *model.Block {
	b := model.NewFigureBlock(&model.Figure{Data: data})
	bbox := model.NewBBox(x, y, w, h)
	b.BBox = &bbox
	return b
}

func singleSlideDoc(blocks ...*model.Block) *model.Document {
	doc := model.NewDocument()
	slide := model.NewSlide(0)
	slide.Blocks = blocks
	for i, b := range blocks {
		if b.ReadingOrder == 0 {
			b.ReadingOrder = i + 1
		}
	}
	doc.AddSlide(slide)
	return doc
}

// scriptedCapability answers prompts with canned strings.
type scriptedCapability struct {
	textAnswer   string
	visionAnswer string
	vision       bool
	textErr      error
	visionErr    error
	textCalls    int
	visionCalls  int
}

var _ enrich.Capability = (*scriptedCapability)(nil)

func (s *scriptedCapability) Name() string                       { return "scripted" }
func (s *scriptedCapability) Available(ctx context.Context) bool { return true }
func (s *scriptedCapability) CanDescribeImages() bool            { return s.vision }

func (s *scriptedCapability) CompleteText(ctx context.Context, prompt string) (string, error) {
	s.textCalls++
	return s.textAnswer, s.textErr
}

func (s *scriptedCapability) DescribeImage(ctx context.Context, image []byte, prompt string) (string, error) {
	s.visionCalls++
	if !s.vision {
		return "", enrich.ErrNoVision
	}
	return s.visionAnswer, s.visionErr
}
