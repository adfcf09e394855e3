package entity

import "math"

// Animation is the visual-state handle owned by one status.
// It tracks which sprite frame is showing and the footprint used for
// collision while that status is active.
type Animation struct {
	Speed  float64 // sprite frames advanced per tick at delta 1
	Loop   bool
	Frames int

	// Footprint of the sprite, anchored at bottom-center
	Width  float64
	Height float64

	cursor  float64
	playing bool
}

// Play starts or resumes the animation from its current frame
func (a *Animation) Play() {
	a.playing = true
}

// Restart rewinds to the first frame and plays
func (a *Animation) Restart() {
	a.cursor = 0
	a.playing = true
}

// Playing reports whether the animation is advancing
func (a *Animation) Playing() bool {
	return a.playing
}

// Advance moves the animation forward by delta ticks.
// A non-looping animation stops on its last frame.
func (a *Animation) Advance(delta float64) {
	if !a.playing || a.Frames <= 0 || delta <= 0 {
		return
	}

	a.cursor += delta * a.Speed
	n := float64(a.Frames)
	if a.cursor < n {
		return
	}

	if a.Loop {
		a.cursor = math.Mod(a.cursor, n)
		return
	}
	a.cursor = n - 1
	a.playing = false
}

// Frame returns the index of the sprite frame currently showing
func (a *Animation) Frame() int {
	if a.Frames <= 0 {
		return 0
	}
	f := int(a.cursor)
	if f >= a.Frames {
		return a.Frames - 1
	}
	return f
}
