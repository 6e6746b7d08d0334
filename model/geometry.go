package model

import "math"

// Point represents a 2D point in page coordinates.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents an axis-aligned rectangle in page coordinates.
// Y increases downward, so Y0 is the top edge and Y1 the bottom edge.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from two corner coordinates, normalizing them
// so that X0 <= X1 and Y0 <= Y1.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: math.Min(x0, x1),
		Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1),
		Y1: math.Max(y0, y1),
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.CenterX(), Y: r.CenterY()}
}

// CenterX returns the horizontal center coordinate.
func (r Rect) CenterX() float64 {
	return (r.X0 + r.X1) / 2
}

// CenterY returns the vertical center coordinate.
func (r Rect) CenterY() float64 {
	return (r.Y0 + r.Y1) / 2
}

// Intersects checks if two rectangles intersect.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X1 < other.X0 ||
		r.X0 > other.X1 ||
		r.Y1 < other.Y0 ||
		r.Y0 > other.Y1)
}

// Intersection returns the intersection of two rectangles, or the zero Rect
// when they do not intersect.
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}

	return Rect{
		X0: math.Max(r.X0, other.X0),
		Y0: math.Max(r.Y0, other.Y0),
		X1: math.Min(r.X1, other.X1),
		Y1: math.Min(r.Y1, other.Y1),
	}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Expand grows the rectangle by dx on the left and right edges and dy on the
// top and bottom edges.
func (r Rect) Expand(dx, dy float64) Rect {
	return Rect{
		X0: r.X0 - dx,
		Y0: r.Y0 - dy,
		X1: r.X1 + dx,
		Y1: r.Y1 + dy,
	}
}

// CoverageOf calculates how much of the target rectangle falls inside r,
// as intersection area divided by the target's own area. Returns a value
// between 0 and 1. Degenerate targets with zero area yield 0.
func (r Rect) CoverageOf(target Rect) float64 {
	targetArea := target.Area()
	if targetArea <= 0 {
		return 0
	}
	if !r.Intersects(target) {
		return 0
	}
	return r.Intersection(target).Area() / targetArea
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 &&
		p.Y >= r.Y0 && p.Y <= r.Y1
}
