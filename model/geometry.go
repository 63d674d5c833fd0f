package model

// Point represents a 2D coordinate in millimetres.
type Point struct {
	X float64
	Y float64
}

// BBox represents a bounding box in millimetres with the origin at the
// top-left corner of the slide.
type BBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewBBox creates a bounding box, normalizing negative dimensions to their
// absolute values. Flipped shapes in the source container report negative
// extents; the model always stores positive ones.
func NewBBox(x, y, width, height float64) BBox {
	if width < 0 {
		width = -width
	}
	if height < 0 {
		height = -height
	}
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Right returns the right edge coordinate.
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge coordinate.
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point of the box.
func (b BBox) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Area returns the area of the box in square millimetres.
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// Intersects reports whether two boxes overlap.
func (b BBox) Intersects(other BBox) bool {
	return b.X < other.Right() && other.X < b.Right() &&
		b.Y < other.Bottom() && other.Y < b.Bottom()
}

// Intersection returns the overlapping region of two boxes, or a zero box
// when they do not intersect.
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}
	x := max(b.X, other.X)
	y := max(b.Y, other.Y)
	right := min(b.Right(), other.Right())
	bottom := min(b.Bottom(), other.Bottom())
	return BBox{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// OverlapRatio returns the fraction of this box covered by other:
// intersection area divided by this box's area. Returns 0 for empty boxes.
func (b BBox) OverlapRatio(other BBox) float64 {
	if b.Area() <= 0 {
		return 0
	}
	return b.Intersection(other).Area() / b.Area()
}

// IsZero reports whether the box has no extent.
func (b BBox) IsZero() bool {
	return b.Width == 0 && b.Height == 0
}
