package model

import "strings"

// BlockType classifies the semantic kind of a block.
type BlockType int

const (
	BlockHeading BlockType = iota
	BlockParagraph
	BlockList
	BlockTable
	BlockFigure
	BlockQuote
	BlockCode
)

// String returns the block type name.
func (t BlockType) String() string {
	switch t {
	case BlockHeading:
		return "heading"
	case BlockParagraph:
		return "paragraph"
	case BlockList:
		return "list"
	case BlockTable:
		return "table"
	case BlockFigure:
		return "figure"
	case BlockQuote:
		return "quote"
	case BlockCode:
		return "code"
	default:
		return "unknown"
	}
}

// ListStyle describes list marker rendering.
type ListStyle int

const (
	ListNone ListStyle = iota
	ListBullet
	ListNumbered
)

// BlockContent is the content payload of a block. Exactly one concrete
// type backs each block: *TextContent, *Table or *Figure.
type BlockContent interface {
	blockContent()
}

// Block is a semantic content unit on a slide.
type Block struct {
	Type         BlockType
	ReadingOrder int
	BBox         *BBox // nil when the source shape had no geometry
	Content      BlockContent

	HeadingLevel int       // 1-6, headings only
	ListStyle    ListStyle // lists only

	// Source is an opaque identifier tying the block back to the shape
	// or generator that produced it.
	Source string

	// Confidence scores the classifier's certainty about Type.
	Confidence float64

	// A11y holds the accessibility annotation. The zero value means
	// essential with no rewritten narration.
	A11y Annotation
}

// NewTextBlock creates a text-bearing block of the given type.
func NewTextBlock(t BlockType, paragraphs ...Paragraph) *Block {
	return &Block{
		Type:       t,
		Content:    &TextContent{Paragraphs: paragraphs},
		Confidence: 1.0,
	}
}

// NewTableBlock creates a table block.
func NewTableBlock(table *Table) *Block {
	return &Block{Type: BlockTable, Content: table, Confidence: 1.0}
}

// NewFigureBlock creates a figure block.
func NewFigureBlock(figure *Figure) *Block {
	return &Block{Type: BlockFigure, Content: figure, Confidence: 1.0}
}

// Paragraphs returns the block's paragraphs, or nil for non-text blocks.
func (b *Block) Paragraphs() []Paragraph {
	if tc, ok := b.Content.(*TextContent); ok {
		return tc.Paragraphs
	}
	return nil
}

// SetParagraphs replaces the paragraphs of a text block. No-op for
// non-text blocks.
func (b *Block) SetParagraphs(paragraphs []Paragraph) {
	if tc, ok := b.Content.(*TextContent); ok {
		tc.Paragraphs = paragraphs
	}
}

// Table returns the block's table, or nil for non-table blocks.
func (b *Block) Table() *Table {
	if t, ok := b.Content.(*Table); ok {
		return t
	}
	return nil
}

// Figure returns the block's figure, or nil for non-figure blocks.
func (b *Block) Figure() *Figure {
	if f, ok := b.Content.(*Figure); ok {
		return f
	}
	return nil
}

// Text returns the block's plain text: joined paragraphs for text
// blocks, the caption for tables, the alt text for figures.
func (b *Block) Text() string {
	switch c := b.Content.(type) {
	case *TextContent:
		return c.Text()
	case *Table:
		return c.Caption
	case *Figure:
		return c.AltText
	}
	return ""
}

// IsEmpty reports whether the block carries no content: all paragraphs
// blank, a table with no rows, or a figure with neither data nor path.
func (b *Block) IsEmpty() bool {
	switch c := b.Content.(type) {
	case *TextContent:
		for _, p := range c.Paragraphs {
			if !p.IsEmpty() {
				return false
			}
		}
		return true
	case *Table:
		return len(c.Rows) == 0
	case *Figure:
		return len(c.Data) == 0 && c.Path == ""
	}
	return true
}

// IsTitle reports whether the block is a level-1 heading.
func (b *Block) IsTitle() bool {
	return b.Type == BlockHeading && b.HeadingLevel == 1
}

// TrimmedText returns Text with surrounding whitespace removed.
func (b *Block) TrimmedText() string {
	return strings.TrimSpace(b.Text())
}
