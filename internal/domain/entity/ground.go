package entity

import (
	"math"

	"github.com/younwookim/moonbunny/internal/domain/collision"
)

// Ground is a rectangle the character can stand on.
// The scene owns it; Bounds is read once per tick, so it may move.
type Ground interface {
	Bounds() collision.Rect
}

// Mover is a ground that animates itself between ticks
type Mover interface {
	Advance(delta float64)
}

// Grounds is the ordered ground registry
type Grounds struct {
	items []Ground
}

// NewGrounds creates a registry holding the given segments
func NewGrounds(items ...Ground) *Grounds {
	g := &Grounds{}
	for _, item := range items {
		g.Add(item)
	}
	return g
}

// Add appends a ground segment
func (g *Grounds) Add(item Ground) {
	if item == nil {
		return
	}
	g.items = append(g.items, item)
}

// Len returns the number of registered segments
func (g *Grounds) Len() int {
	if g == nil {
		return 0
	}
	return len(g.items)
}

// Contact returns the first segment, in registration order, that overlaps r.
// A nil or empty registry never reports contact.
func (g *Grounds) Contact(r collision.Rect) (collision.Rect, bool) {
	if g == nil {
		return collision.Rect{}, false
	}
	for _, item := range g.items {
		b := item.Bounds()
		if collision.Intersects(r, b) {
			return b, true
		}
	}
	return collision.Rect{}, false
}

// Rects returns the current bounds of every segment
func (g *Grounds) Rects() []collision.Rect {
	if g == nil {
		return nil
	}
	rects := make([]collision.Rect, 0, len(g.items))
	for _, item := range g.items {
		rects = append(rects, item.Bounds())
	}
	return rects
}

// Advance moves every segment that implements Mover
func (g *Grounds) Advance(delta float64) {
	if g == nil {
		return
	}
	for _, item := range g.items {
		if m, ok := item.(Mover); ok {
			m.Advance(delta)
		}
	}
}

// MovingGround is a segment oscillating horizontally around its origin
type MovingGround struct {
	rect    collision.Rect
	originX float64
	rangeX  float64 // maximum displacement from origin
	speed   float64 // phase advance per frame, radians
	phase   float64
}

// NewMovingGround creates a platform that swings rangeX units either side
// of rect.X
func NewMovingGround(rect collision.Rect, rangeX, speed float64) *MovingGround {
	return &MovingGround{
		rect:    rect,
		originX: rect.X,
		rangeX:  rangeX,
		speed:   speed,
	}
}

// Bounds implements Ground
func (m *MovingGround) Bounds() collision.Rect {
	return m.rect
}

// Advance implements Mover
func (m *MovingGround) Advance(delta float64) {
	m.phase += delta * m.speed
	m.rect.X = m.originX + m.rangeX*math.Sin(m.phase)
}
