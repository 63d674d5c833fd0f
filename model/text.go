package model

import "strings"

// TextAlignment represents horizontal paragraph alignment.
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// String returns the alignment name.
func (a TextAlignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// TextRun is a span of text with uniform formatting.
type TextRun struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	FontSize  float64 // in points, 0 = unknown
	FontName  string
	Color     string // hex RGB without '#', e.g. "FF0000"
	Hyperlink string
}

// Paragraph is a sequence of runs sharing alignment and indent level.
type Paragraph struct {
	Runs      []TextRun
	Alignment TextAlignment
	Level     int // indent level, 0 = top level

	// Marker records the list marker the source container attached to
	// the paragraph, if any.
	Marker ListStyle
}

// Text returns the concatenated run text without formatting.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// IsEmpty reports whether the paragraph contains only whitespace.
func (p Paragraph) IsEmpty() bool {
	return strings.TrimSpace(p.Text()) == ""
}

// NewParagraph creates a paragraph from plain text as a single run.
func NewParagraph(text string) Paragraph {
	return Paragraph{Runs: []TextRun{{Text: text}}}
}

// TextContent is the payload of text-bearing blocks (headings, paragraphs,
// lists, quotes, code).
type TextContent struct {
	Paragraphs []Paragraph
}

func (*TextContent) blockContent() {}

// Text returns the paragraphs joined with newlines.
func (t *TextContent) Text() string {
	parts := make([]string, 0, len(t.Paragraphs))
	for _, p := range t.Paragraphs {
		parts = append(parts, p.Text())
	}
	return strings.Join(parts, "\n")
}
