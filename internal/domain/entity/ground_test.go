package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/moonbunny/internal/domain/collision"
)

func TestGrounds_Contact(t *testing.T) {
	low := collision.Rect{X: 0, Y: 400, Width: 800, Height: 50}
	high := collision.Rect{X: 600, Y: 315, Width: 800, Height: 50}
	g := NewGrounds(low, high)

	tests := []struct {
		name     string
		r        collision.Rect
		wantOK   bool
		wantRect collision.Rect
	}{
		{"above everything", collision.Rect{X: 100, Y: 0, Width: 40, Height: 48}, false, collision.Rect{}},
		{"resting on low", collision.Rect{X: 100, Y: 353, Width: 40, Height: 48}, true, low},
		{"touching low", collision.Rect{X: 100, Y: 352, Width: 40, Height: 48}, false, collision.Rect{}},
		{"resting on high", collision.Rect{X: 700, Y: 268, Width: 40, Height: 48}, true, high},
		{"overlapping both picks first", collision.Rect{X: 700, Y: 300, Width: 40, Height: 200}, true, low},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.Contact(tt.r)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRect, got)
		})
	}
}

func TestGrounds_Empty(t *testing.T) {
	var nilGrounds *Grounds
	_, ok := nilGrounds.Contact(collision.Rect{Width: 10, Height: 10})
	assert.False(t, ok)
	assert.Equal(t, 0, nilGrounds.Len())
	assert.Nil(t, nilGrounds.Rects())
	assert.NotPanics(t, func() { nilGrounds.Advance(1) })

	g := NewGrounds()
	_, ok = g.Contact(collision.Rect{Width: 10, Height: 10})
	assert.False(t, ok)
}

func TestGrounds_Add(t *testing.T) {
	g := NewGrounds()
	g.Add(collision.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	g.Add(nil)

	assert.Equal(t, 1, g.Len())
	assert.Len(t, g.Rects(), 1)
}

func TestMovingGround(t *testing.T) {
	m := NewMovingGround(collision.Rect{X: 100, Y: 300, Width: 80, Height: 20}, 50, math.Pi/60)
	g := NewGrounds(m)

	assert.Equal(t, 100.0, m.Bounds().X)

	// Quarter period: full displacement
	g.Advance(30)
	assert.InDelta(t, 150.0, m.Bounds().X, 1e-9)
	assert.Equal(t, 300.0, m.Bounds().Y)

	// Half period: back to origin
	g.Advance(30)
	assert.InDelta(t, 100.0, m.Bounds().X, 1e-9)

	// Registry reads the moved bounds
	g.Advance(60)
	assert.InDelta(t, 100.0, g.Rects()[0].X, 1e-9)
}
