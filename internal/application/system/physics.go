package system

import (
	"github.com/younwookim/moonbunny/internal/domain/entity"
)

// Frame is what the physics system publishes to the renderer each tick
type Frame struct {
	X, Y      float64
	ScaleX    float64       // -1 when the left-facing sprite is mirrored
	Visual    entity.Status // which status's animation is showing
	AnimFrame int           // sprite frame index within that animation
	OnGround  bool
	Falling   bool
}

// FrameOf snapshots the render state of a character
func FrameOf(ch *entity.Character) Frame {
	return Frame{
		X:         ch.X,
		Y:         ch.Y,
		ScaleX:    ch.ScaleX(),
		Visual:    ch.Status,
		AnimFrame: ch.Visual().Frame(),
		OnGround:  ch.OnGround,
		Falling:   ch.Falling,
	}
}

// RenderSink receives one Frame per tick
type RenderSink interface {
	Present(f Frame)
}

// RenderFunc adapts a function to RenderSink
type RenderFunc func(f Frame)

// Present implements RenderSink
func (fn RenderFunc) Present(f Frame) {
	fn(f)
}

// PhysicsSystem integrates the character one tick at a time against the
// ground registry
type PhysicsSystem struct {
	grounds *entity.Grounds
	sink    RenderSink
}

// NewPhysicsSystem creates a new physics system.
// grounds may be empty or nil; sink may be nil.
func NewPhysicsSystem(grounds *entity.Grounds, sink RenderSink) *PhysicsSystem {
	return &PhysicsSystem{
		grounds: grounds,
		sink:    sink,
	}
}

// Grounds returns the registry this system collides against
func (s *PhysicsSystem) Grounds() *entity.Grounds {
	return s.grounds
}

// Update advances the character by delta frames and publishes the result.
// A negative delta is treated as zero.
func (s *PhysicsSystem) Update(ch *entity.Character, delta float64) Frame {
	if delta < 0 {
		delta = 0
	}

	// Ground contact first
	s.applyVertical(ch, delta)

	// Horizontal movement applies in the air too
	ch.AdvanceWalk(delta)

	ch.Visual().Advance(delta)

	f := FrameOf(ch)
	if s.sink != nil {
		s.sink.Present(f)
	}
	return f
}

// applyVertical resolves ground contact, then runs jump or fall kinematics
// when airborne
func (s *PhysicsSystem) applyVertical(ch *entity.Character, delta float64) {
	ground, onGround := s.grounds.Contact(ch.Bounds())
	if onGround {
		ch.Land(ground.Y)
		return
	}

	if ch.Status == entity.StatusJumping {
		ch.AdvanceJump(delta)
		return
	}
	ch.AdvanceFall(delta)
}
