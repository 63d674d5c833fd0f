package model

import (
	"strings"
	"testing"
)

func TestBlockText(t *testing.T) {
	tests := []struct {
		name  string
		block *Block
		want  string
	}{
		{
			name:  "paragraphs joined with newlines",
			block: NewTextBlock(BlockParagraph, NewParagraph("first"), NewParagraph("second")),
			want:  "first\nsecond",
		},
		{
			name:  "table caption",
			block: NewTableBlock(&Table{Caption: "Quarterly results"}),
			want:  "Quarterly results",
		},
		{
			name:  "figure alt text",
			block: NewFigureBlock(&Figure{AltText: "Company logo"}),
			want:  "Company logo",
		},
		{
			name:  "empty text block",
			block: NewTextBlock(BlockParagraph),
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlockIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		block *Block
		want  bool
	}{
		{"blank paragraphs", NewTextBlock(BlockParagraph, NewParagraph("   "), NewParagraph("")), true},
		{"non-blank paragraph", NewTextBlock(BlockParagraph, NewParagraph("text")), false},
		{"table without rows", NewTableBlock(&Table{}), true},
		{"table with rows", NewTableBlock(&Table{Rows: [][]TableCell{{NewTableCell("a")}}}), false},
		{"figure without data", NewFigureBlock(&Figure{}), true},
		{"figure with data", NewFigureBlock(&Figure{Data: []byte{0x89}}), false},
		{"figure with path", NewFigureBlock(&Figure{Path: "media/image1.png"}), false},
		{"no content", &Block{Type: BlockParagraph}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnnotationZeroValueIsEssential(t *testing.T) {
	b := NewTextBlock(BlockParagraph, NewParagraph("hello"))
	if b.A11y.Role != RoleEssential {
		t.Errorf("zero-value role = %v, want essential", b.A11y.Role)
	}
	if b.A11y.Role.Skippable() {
		t.Error("essential role must not be skippable")
	}
}

func TestRoleSkippable(t *testing.T) {
	skippable := []Role{RoleDecorative, RoleRedundant, RoleBoilerplate, RolePlaceholder, RoleNavigation}
	for _, r := range skippable {
		if !r.Skippable() {
			t.Errorf("%v.Skippable() = false, want true", r)
		}
	}
	for _, r := range []Role{RoleEssential, RoleContextual} {
		if r.Skippable() {
			t.Errorf("%v.Skippable() = true, want false", r)
		}
	}
}

func TestTableHasHeaderAndColumnCount(t *testing.T) {
	header := NewTableCell("Name")
	header.IsHeader = true
	wide := NewTableCell("span")
	wide.ColSpan = 2

	tbl := &Table{Rows: [][]TableCell{
		{header, NewTableCell("Value")},
		{wide},
		{NewTableCell("a"), NewTableCell("b"), NewTableCell("c")},
	}}

	if !tbl.HasHeader() {
		t.Error("HasHeader() = false, want true")
	}
	if got := tbl.ColumnCount(); got != 3 {
		t.Errorf("ColumnCount() = %d, want 3", got)
	}

	var empty Table
	if empty.HasHeader() {
		t.Error("empty table must not report a header")
	}
	if got := empty.ColumnCount(); got != 0 {
		t.Errorf("empty ColumnCount() = %d, want 0", got)
	}
}

func TestFigureContentHash(t *testing.T) {
	a := &Figure{Data: []byte("image-bytes")}
	b := &Figure{Data: []byte("image-bytes")}
	c := &Figure{Data: []byte("other-bytes")}

	if a.ContentHash() != b.ContentHash() {
		t.Error("identical data must hash identically")
	}
	if a.ContentHash() == c.ContentHash() {
		t.Error("different data must hash differently")
	}
	if len(a.ContentHash()) != 32 {
		t.Errorf("hash length = %d, want 32 hex chars", len(a.ContentHash()))
	}

	// Alt text is not content: two distinct charts can share a
	// generated description and must not hash alike.
	chart := &Figure{AltText: "Revenue chart"}
	if chart.ContentHash() != "" {
		t.Error("figure without data must hash to empty")
	}
	if (&Figure{}).ContentHash() != "" {
		t.Error("figure without data or alt text must hash to empty")
	}
}

func TestFigureHasUsableAltText(t *testing.T) {
	tests := []struct {
		alt  string
		want bool
	}{
		{"", false},
		{"  x ", false},
		{"abc", false},
		{"abcd", true},
		{"Company logo", true},
	}

	for _, tt := range tests {
		f := &Figure{AltText: tt.alt}
		if got := f.HasUsableAltText(); got != tt.want {
			t.Errorf("HasUsableAltText(%q) = %v, want %v", tt.alt, got, tt.want)
		}
	}
}

func TestSlideSortedBlocksAndTitle(t *testing.T) {
	title := NewTextBlock(BlockHeading, NewParagraph("Overview"))
	title.HeadingLevel = 1
	title.ReadingOrder = 2
	body := NewTextBlock(BlockParagraph, NewParagraph("body"))
	body.ReadingOrder = 1

	s := NewSlide(1)
	s.Blocks = []*Block{title, body}

	sorted := s.SortedBlocks()
	if sorted[0] != body || sorted[1] != title {
		t.Error("SortedBlocks did not order by reading order")
	}
	if got := s.Title(); got != "Overview" {
		t.Errorf("Title() = %q, want %q", got, "Overview")
	}
}

func TestDocumentFiguresNeedingAltText(t *testing.T) {
	doc := NewDocument()

	s1 := NewSlide(0)
	needs := &Figure{Data: []byte{1}, NeedsAltText: true}
	has := &Figure{Data: []byte{2}, NeedsAltText: false, AltText: "described"}
	s1.Blocks = append(s1.Blocks, NewFigureBlock(needs), NewFigureBlock(has))
	doc.AddSlide(s1)

	s2 := NewSlide(0)
	doc.AddSlide(s2)

	refs := doc.FiguresNeedingAltText()
	if len(refs) != 1 {
		t.Fatalf("got %d figures needing alt text, want 1", len(refs))
	}
	if refs[0].SlideNumber != 1 || refs[0].Figure != needs {
		t.Errorf("unexpected figure ref %+v", refs[0])
	}

	if doc.Slides[1].Number != 2 {
		t.Errorf("AddSlide numbering = %d, want 2", doc.Slides[1].Number)
	}
}

func TestParagraphText(t *testing.T) {
	p := Paragraph{Runs: []TextRun{{Text: "Hello, "}, {Text: "world", Bold: true}}}
	if got := p.Text(); got != "Hello, world" {
		t.Errorf("Text() = %q, want %q", got, "Hello, world")
	}
	if p.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty paragraph")
	}
	if !strings.Contains(p.Text(), "world") {
		t.Error("run text lost")
	}
}
