package model

// Metadata holds document-level properties.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Creator  string // generating application
	Keywords []string

	// Language is a BCP 47 tag such as "en" or "de". It drives the
	// localized phrases the pipeline generates.
	Language string
}

// Document is the complete presentation model flowing through the
// pipeline.
type Document struct {
	Slides   []*Slide
	Metadata Metadata

	// SourceFile is the path of the container the document came from.
	SourceFile string
}

// NewDocument creates an empty document with English as the default
// language.
func NewDocument() *Document {
	return &Document{Metadata: Metadata{Language: "en"}}
}

// AddSlide appends a slide and assigns its 1-based number.
func (d *Document) AddSlide(s *Slide) {
	s.Number = len(d.Slides) + 1
	d.Slides = append(d.Slides, s)
}

// SlideCount returns the number of slides.
func (d *Document) SlideCount() int {
	return len(d.Slides)
}

// FigureRef ties a figure to the slide it appears on.
type FigureRef struct {
	SlideNumber int
	Figure      *Figure
}

// FiguresNeedingAltText returns all figures in the document that still
// need alternative text, with their slide numbers.
func (d *Document) FiguresNeedingAltText() []FigureRef {
	var refs []FigureRef
	for _, s := range d.Slides {
		for _, f := range s.FiguresWithoutAlt() {
			refs = append(refs, FigureRef{SlideNumber: s.Number, Figure: f})
		}
	}
	return refs
}
