package model

import "math"

// Point represents a 2D point in page coordinates
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box (rectangle) in page coordinates.
// Y increases downward, so Y0 is the top edge and Y1 the bottom edge.
type BBox struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// NewBBox creates a bounding box from edge coordinates
func NewBBox(x0, y0, x1, y1 float64) BBox {
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the box
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: (b.X0 + b.X1) / 2,
		Y: (b.Y0 + b.Y1) / 2,
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.X1 < other.X0 ||
		b.X0 > other.X1 ||
		b.Y1 < other.Y0 ||
		b.Y0 > other.Y1)
}

// VerticalOverlap returns the length of the overlap between the vertical
// ranges of the two boxes, or 0 if they do not overlap vertically.
func (b BBox) VerticalOverlap(other BBox) float64 {
	overlap := math.Min(b.Y1, other.Y1) - math.Max(b.Y0, other.Y0)
	if overlap < 0 {
		return 0
	}
	return overlap
}

// HorizontalGap returns the distance between the nearest vertical edges of
// the two boxes, or 0 when their horizontal ranges overlap.
func (b BBox) HorizontalGap(other BBox) float64 {
	if b.X1 < other.X0 {
		return other.X0 - b.X1
	}
	if other.X1 < b.X0 {
		return b.X0 - other.X1
	}
	return 0
}

// EdgeDistance returns the shortest distance between the edges of the two
// boxes, or 0 when they intersect.
func (b BBox) EdgeDistance(other BBox) float64 {
	dx := b.HorizontalGap(other)
	dy := math.Max(b.Y0, other.Y0) - math.Min(b.Y1, other.Y1)
	if dy < 0 {
		dy = 0
	}
	return math.Sqrt(dx*dx + dy*dy)
}

// Expand expands the bounding box by a margin on all sides
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		X0: b.X0 - margin,
		Y0: b.Y0 - margin,
		X1: b.X1 + margin,
		Y1: b.Y1 + margin,
	}
}

// IsValid returns true if the box has non-negative dimensions
func (b BBox) IsValid() bool {
	return b.X1 >= b.X0 && b.Y1 >= b.Y0
}
