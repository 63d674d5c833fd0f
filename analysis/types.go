package analysis

// ElementRef is one positioned element in a slide's reading order.
type ElementRef struct {
	// Index is the element's position in the service's reading order,
	// starting at 1.
	Index int `json:"index"`

	// Type is the service's element class (text, title, table, picture, ...).
	Type string `json:"type"`

	// BBox is x, y, width, height in millimetres, top-left origin.
	BBox [4]float64 `json:"bbox"`
}

// SlideAnalysis holds the reading order for one slide.
type SlideAnalysis struct {
	// Slide is the 1-based slide number.
	Slide int `json:"slide"`

	ReadingOrder []ElementRef `json:"reading_order"`
}

// CellStructure describes one table cell's structural properties.
type CellStructure struct {
	Row      int  `json:"row"`
	Col      int  `json:"col"`
	RowSpan  int  `json:"row_span,omitempty"`
	ColSpan  int  `json:"col_span,omitempty"`
	IsHeader bool `json:"is_header,omitempty"`
}

// TableStructure describes one table. Tables are matched to blocks
// positionally: the n-th structure applies to the n-th table block in
// document order.
type TableStructure struct {
	NumRows int             `json:"num_rows"`
	NumCols int             `json:"num_cols"`
	Cells   []CellStructure `json:"cells"`
}

// Document is a complete analysis result.
type Document struct {
	Slides []SlideAnalysis  `json:"slides"`
	Tables []TableStructure `json:"tables,omitempty"`
}

// SlideByNumber returns the analysis for a slide, or nil when the
// service did not cover it.
func (d *Document) SlideByNumber(number int) *SlideAnalysis {
	for i := range d.Slides {
		if d.Slides[i].Slide == number {
			return &d.Slides[i]
		}
	}
	return nil
}
