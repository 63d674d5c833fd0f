package classify

import "github.com/tsawler/lectern/model"

// ShapeKind identifies what a raw shape is on the wire.
type ShapeKind int

const (
	ShapeText ShapeKind = iota
	ShapePicture
	ShapeTable
	ShapeChart
	ShapeGroup
)

// RawShape is a shape as the container parser found it, before semantic
// classification. Coordinates are absolute slide millimetres; group
// children have their parent transforms already applied.
type RawShape struct {
	Kind        ShapeKind
	ID          string
	Name        string
	Placeholder string // OOXML placeholder type: title, ctrTitle, subTitle, body, ...
	BBox        *model.BBox

	// Text shapes.
	Paragraphs []model.Paragraph

	// Table shapes.
	Table *model.Table

	// Picture shapes.
	ImageData []byte
	ImageName string // file name inside the container, e.g. "image1.png"
	AltText   string

	// Group shapes.
	Children []RawShape
}
