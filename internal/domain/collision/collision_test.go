package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 5, Y: 5, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 40, Y: 40, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "separated on x",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 20, Y: 0, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "separated on y",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 0, Y: 30, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "touching vertical edges",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 10, Y: 0, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "touching horizontal edges",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 50},
			b:    Rect{X: -100, Y: 50, Width: 800, Height: 50},
			want: false,
		},
		{
			name: "one unit overlap",
			a:    Rect{X: 0, Y: 1, Width: 10, Height: 50},
			b:    Rect{X: -100, Y: 50, Width: 800, Height: 50},
			want: true,
		},
		{
			name: "zero-sized rect inside",
			a:    Rect{X: 5, Y: 5},
			b:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersects(tt.a, tt.b))
		})
	}
}

func TestIntersects_Symmetric(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 5, Y: 5, Width: 10, Height: 10},
		{X: 10, Y: 0, Width: 10, Height: 10},
		{X: -3.5, Y: 7.25, Width: 2, Height: 40},
		{X: 100, Y: 100, Width: 1, Height: 1},
		{X: 0, Y: 10, Width: 800, Height: 50},
	}

	for _, a := range rects {
		for _, b := range rects {
			assert.Equal(t, Intersects(a, b), Intersects(b, a), "a=%+v b=%+v", a, b)
		}
	}
}

func TestRect_Helpers(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 40, Height: 60}

	cx, cy := r.Center()
	assert.Equal(t, 30.0, cx)
	assert.Equal(t, 50.0, cy)
	assert.Equal(t, 80.0, r.Bottom())
	assert.Equal(t, 50.0, r.Right())
	assert.Equal(t, r, r.Bounds())
}
