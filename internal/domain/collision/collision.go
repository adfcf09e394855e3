// Package collision provides the axis-aligned bounding box test used to
// decide ground contact.
package collision

import "math"

// Rect is an axis-aligned rectangle in scene coordinates.
// X, Y is the top-left corner; y grows downward.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Bounds returns the rect itself so a plain Rect can be registered as ground.
func (r Rect) Bounds() Rect {
	return r
}

// Center returns the center point of the rect
func (r Rect) Center() (cx, cy float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Intersects reports whether a and b overlap.
// Rectangles whose edges merely touch do not intersect.
func Intersects(a, b Rect) bool {
	acx, acy := a.Center()
	bcx, bcy := b.Center()

	combinedHalfWidths := a.Width/2 + b.Width/2
	combinedHalfHeights := a.Height/2 + b.Height/2

	if math.Abs(acx-bcx) >= combinedHalfWidths {
		return false
	}
	return math.Abs(acy-bcy) < combinedHalfHeights
}
