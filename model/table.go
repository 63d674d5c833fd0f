package model

import "strings"

// TableCell is a single cell, possibly spanning multiple rows or columns.
type TableCell struct {
	Paragraphs []Paragraph
	ColSpan    int // minimum 1
	RowSpan    int // minimum 1
	IsHeader   bool
}

// Text returns the cell's paragraphs joined with newlines.
func (c TableCell) Text() string {
	parts := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		parts = append(parts, p.Text())
	}
	return strings.Join(parts, "\n")
}

// NewTableCell creates a cell from plain text with spans of 1.
func NewTableCell(text string) TableCell {
	return TableCell{
		Paragraphs: []Paragraph{NewParagraph(text)},
		ColSpan:    1,
		RowSpan:    1,
	}
}

// Table is a grid of cells with an optional caption.
type Table struct {
	Rows    [][]TableCell
	Caption string
}

func (*Table) blockContent() {}

// HasHeader reports whether any cell in the first row is a header cell.
func (t *Table) HasHeader() bool {
	if len(t.Rows) == 0 {
		return false
	}
	for _, cell := range t.Rows[0] {
		if cell.IsHeader {
			return true
		}
	}
	return false
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the widest row width in grid columns, counting
// column spans.
func (t *Table) ColumnCount() int {
	cols := 0
	for _, row := range t.Rows {
		width := 0
		for _, cell := range row {
			span := cell.ColSpan
			if span < 1 {
				span = 1
			}
			width += span
		}
		if width > cols {
			cols = width
		}
	}
	return cols
}
