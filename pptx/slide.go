package pptx

import (
	"strings"

	"github.com/tsawler/lectern/classify"
)

// Slide is one parsed slide: its raw shapes, speaker notes and
// dimensions. Shape geometry is absolute slide millimetres.
type Slide struct {
	Number   int // 1-based, presentation order
	Shapes   []classify.RawShape
	Notes    string
	WidthMM  float64
	HeightMM float64
}

// Text returns all shape text on the slide, one shape per line, groups
// flattened. Useful for diagnostics and quick content checks.
func (s *Slide) Text() string {
	var sb strings.Builder
	var walk func(shapes []classify.RawShape)
	walk = func(shapes []classify.RawShape) {
		for i := range shapes {
			shape := &shapes[i]
			if shape.Kind == classify.ShapeGroup {
				walk(shape.Children)
				continue
			}
			for _, p := range shape.Paragraphs {
				text := strings.TrimSpace(p.Text())
				if text == "" {
					continue
				}
				if sb.Len() > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(text)
			}
		}
	}
	walk(s.Shapes)
	return sb.String()
}
