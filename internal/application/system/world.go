package system

import (
	"github.com/younwookim/moonbunny/internal/domain/entity"
	"github.com/younwookim/moonbunny/internal/infrastructure/config"
)

// World owns one character and the grounds it stands on, and steps them
// together one tick at a time
type World struct {
	Character *entity.Character
	Grounds   *entity.Grounds

	// OnStatusChange, if set, is called after a tick that changed the
	// character status
	OnStatusChange func(from, to entity.Status)

	physics *PhysicsSystem
	last    Frame
	tick    int
}

// NewWorld creates a world around an existing character and registry
func NewWorld(ch *entity.Character, grounds *entity.Grounds, sink RenderSink) *World {
	if grounds == nil {
		grounds = entity.NewGrounds()
	}
	return &World{
		Character: ch,
		Grounds:   grounds,
		physics:   NewPhysicsSystem(grounds, sink),
		last:      FrameOf(ch),
	}
}

// NewWorldFromConfig builds the character and stage from config
func NewWorldFromConfig(cc *config.CharacterConfig, stage *config.StageConfig, sink RenderSink) *World {
	return NewWorld(NewCharacter(cc, stage), LoadStage(stage), sink)
}

// Step applies this tick's input events in order, moves the grounds, then
// integrates the character
func (w *World) Step(events []entity.Event, delta float64) Frame {
	if delta < 0 {
		delta = 0
	}

	from := w.Character.Status
	for _, ev := range events {
		w.Character.ApplyInput(ev)
	}

	w.Grounds.Advance(delta)
	w.last = w.physics.Update(w.Character, delta)
	w.tick++

	if to := w.Character.Status; to != from && w.OnStatusChange != nil {
		w.OnStatusChange(from, to)
	}
	return w.last
}

// Last returns the frame published by the most recent Step, or the
// spawn state before the first one
func (w *World) Last() Frame {
	return w.last
}

// Tick returns the number of steps taken
func (w *World) Tick() int {
	return w.tick
}
