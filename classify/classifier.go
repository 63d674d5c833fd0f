package classify

import (
	"path"
	"strings"

	"github.com/tsawler/lectern/model"
)

// Config holds classifier tuning parameters.
type Config struct {
	// MinHeadingFontSize is the smallest font size (pt) treated as a
	// heading when no placeholder role identifies one.
	MinHeadingFontSize float64

	// Font size bands mapping to heading levels 1-3. Anything at or
	// above MinHeadingFontSize but below H3Size becomes level 4.
	H1Size float64
	H2Size float64
	H3Size float64
}

// DefaultConfig returns the standard classifier configuration.
func DefaultConfig() Config {
	return Config{
		MinHeadingFontSize: 18,
		H1Size:             32,
		H2Size:             24,
		H3Size:             20,
	}
}

// Classifier maps raw shapes to semantic blocks.
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with the default configuration.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with a custom configuration.
func NewClassifierWithConfig(config Config) *Classifier {
	return &Classifier{config: config}
}

// ClassifyAll classifies a slide's shapes in document order. Groups are
// flattened, so one shape may yield several blocks; shapes without
// content yield none.
func (c *Classifier) ClassifyAll(shapes []RawShape) []*model.Block {
	var blocks []*model.Block
	for _, shape := range shapes {
		blocks = append(blocks, c.Classify(shape)...)
	}
	return blocks
}

// Classify maps one raw shape to zero or more blocks.
func (c *Classifier) Classify(shape RawShape) []*model.Block {
	switch shape.Kind {
	case ShapePicture:
		if b := c.classifyPicture(shape); b != nil {
			return []*model.Block{b}
		}
	case ShapeTable:
		if b := c.classifyTable(shape); b != nil {
			return []*model.Block{b}
		}
	case ShapeChart:
		return []*model.Block{c.classifyChart(shape)}
	case ShapeText:
		if b := c.classifyText(shape); b != nil {
			return []*model.Block{b}
		}
	case ShapeGroup:
		// Children carry absolute coordinates, so flattening loses no
		// geometry.
		return c.ClassifyAll(shape.Children)
	}
	return nil
}

func (c *Classifier) classifyPicture(shape RawShape) *model.Block {
	if len(shape.ImageData) == 0 {
		return nil
	}

	fig := &model.Figure{
		Data:     shape.ImageData,
		MIMEType: mimeTypeFor(shape.ImageName),
		AltText:  strings.TrimSpace(shape.AltText),
	}
	fig.ContentHash()

	if fig.HasUsableAltText() {
		fig.NeedsAltText = false
		fig.AltTextConfidence = 1.0
	} else {
		fig.AltText = ""
		fig.NeedsAltText = true
	}

	b := model.NewFigureBlock(fig)
	b.Source = shape.ID
	b.BBox = shape.BBox
	return b
}

func (c *Classifier) classifyTable(shape RawShape) *model.Block {
	if shape.Table == nil || len(shape.Table.Rows) == 0 {
		return nil
	}

	// Presentation tables rarely mark their header row explicitly; the
	// first row is treated as the header.
	for i := range shape.Table.Rows[0] {
		shape.Table.Rows[0][i].IsHeader = true
	}

	b := model.NewTableBlock(shape.Table)
	b.Source = shape.ID
	b.BBox = shape.BBox
	return b
}

func (c *Classifier) classifyChart(shape RawShape) *model.Block {
	fig := &model.Figure{
		AltText:         strings.TrimSpace(shape.AltText),
		LongDescription: "Chart or diagram. A detailed description is required for accessibility.",
		NeedsAltText:    true,
	}
	if fig.AltText == "" && shape.Name != "" {
		fig.AltText = shape.Name
	}

	b := model.NewFigureBlock(fig)
	b.Source = shape.ID
	b.BBox = shape.BBox
	b.Confidence = 0.5
	return b
}

func (c *Classifier) classifyText(shape RawShape) *model.Block {
	paragraphs := nonEmptyParagraphs(shape.Paragraphs)
	if len(paragraphs) == 0 {
		return nil
	}

	b := model.NewTextBlock(model.BlockParagraph, paragraphs...)
	b.Source = shape.ID
	b.BBox = shape.BBox

	switch shape.Placeholder {
	case "title", "ctrTitle":
		b.Type = model.BlockHeading
		b.HeadingLevel = 1
		return b
	case "subTitle":
		b.Type = model.BlockHeading
		b.HeadingLevel = 2
		b.Confidence = 0.9
		return b
	}

	if style, ok := listStyle(shape.Paragraphs); ok {
		b.Type = model.BlockList
		b.ListStyle = style
		return b
	}

	if size := maxFontSize(paragraphs); size >= c.config.MinHeadingFontSize {
		b.Type = model.BlockHeading
		b.HeadingLevel = c.headingLevelFor(size)
		b.Confidence = 0.8
		return b
	}

	return b
}

func (c *Classifier) headingLevelFor(size float64) int {
	switch {
	case size >= c.config.H1Size:
		return 1
	case size >= c.config.H2Size:
		return 2
	case size >= c.config.H3Size:
		return 3
	default:
		return 4
	}
}

func nonEmptyParagraphs(paragraphs []model.Paragraph) []model.Paragraph {
	var out []model.Paragraph
	for _, p := range paragraphs {
		if !p.IsEmpty() {
			out = append(out, p)
		}
	}
	return out
}

// listStyle reports whether any paragraph carries a list marker. A
// numbered marker anywhere makes the whole block a numbered list.
func listStyle(paragraphs []model.Paragraph) (model.ListStyle, bool) {
	style := model.ListNone
	for _, p := range paragraphs {
		switch p.Marker {
		case model.ListNumbered:
			return model.ListNumbered, true
		case model.ListBullet:
			style = model.ListBullet
		}
	}
	return style, style != model.ListNone
}

func maxFontSize(paragraphs []model.Paragraph) float64 {
	maxSize := 0.0
	for _, p := range paragraphs {
		for _, r := range p.Runs {
			if r.FontSize > maxSize {
				maxSize = r.FontSize
			}
		}
	}
	return maxSize
}

func mimeTypeFor(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "image/png"
	}
}
