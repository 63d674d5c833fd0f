package model

import "sort"

// Standard 16:9 slide dimensions in millimetres.
const (
	DefaultSlideWidthMM  = 254.0
	DefaultSlideHeightMM = 142.9
)

// Slide is a single slide with its blocks and speaker notes.
type Slide struct {
	Number int // 1-based
	Blocks []*Block
	Notes  string

	WidthMM  float64
	HeightMM float64

	// Image holds a rendered raster of the whole slide when an external
	// renderer supplied one. Used for vision-based analysis.
	Image []byte
}

// NewSlide creates a slide with default 16:9 dimensions.
func NewSlide(number int) *Slide {
	return &Slide{
		Number:   number,
		WidthMM:  DefaultSlideWidthMM,
		HeightMM: DefaultSlideHeightMM,
	}
}

// SortedBlocks returns the blocks ordered by reading order. The sort is
// stable, so equal orders keep their insertion sequence.
func (s *Slide) SortedBlocks() []*Block {
	sorted := make([]*Block, len(s.Blocks))
	copy(sorted, s.Blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReadingOrder < sorted[j].ReadingOrder
	})
	return sorted
}

// TitleBlock returns the first heading in reading order, or nil.
func (s *Slide) TitleBlock() *Block {
	for _, b := range s.SortedBlocks() {
		if b.Type == BlockHeading {
			return b
		}
	}
	return nil
}

// Title returns the text of the title block, or "".
func (s *Slide) Title() string {
	if b := s.TitleBlock(); b != nil {
		return b.Text()
	}
	return ""
}

// Figures returns all figures on the slide.
func (s *Slide) Figures() []*Figure {
	var figs []*Figure
	for _, b := range s.Blocks {
		if f := b.Figure(); f != nil {
			figs = append(figs, f)
		}
	}
	return figs
}

// FiguresWithoutAlt returns figures that still need alternative text.
func (s *Slide) FiguresWithoutAlt() []*Figure {
	var figs []*Figure
	for _, f := range s.Figures() {
		if f.NeedsAltText && f.AltText == "" {
			figs = append(figs, f)
		}
	}
	return figs
}
