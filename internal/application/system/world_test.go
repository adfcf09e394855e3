package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/moonbunny/internal/domain/collision"
	"github.com/younwookim/moonbunny/internal/domain/entity"
	"github.com/younwookim/moonbunny/internal/infrastructure/config"
)

type statusChange struct {
	from, to entity.Status
}

func TestWorld_Step(t *testing.T) {
	ch := createTestCharacter(100, 300, entity.DirLeft)
	sink := &recordingSink{}
	w := NewWorld(ch, entity.NewGrounds(createTestFloor(347)), sink)

	var changes []statusChange
	w.OnStatusChange = func(from, to entity.Status) {
		changes = append(changes, statusChange{from, to})
	}

	f := w.Step([]entity.Event{entity.DirectionPressed{Direction: entity.DirRight}}, 1)
	assert.Equal(t, 103.0, f.X)
	assert.Equal(t, 300.0, f.Y)
	assert.True(t, f.OnGround)
	assert.Equal(t, entity.StatusWalking, f.Visual)
	assert.Equal(t, -1.0, f.ScaleX)

	w.Step([]entity.Event{entity.JumpPressed{}}, 1)
	assert.Equal(t, entity.StatusJumping, ch.Status)

	w.Step(nil, 1)

	assert.Equal(t, 3, w.Tick())
	assert.Len(t, sink.frames, 3)
	assert.Equal(t, sink.frames[2], w.Last())
	assert.Equal(t, []statusChange{
		{entity.StatusStand, entity.StatusWalking},
		{entity.StatusWalking, entity.StatusJumping},
	}, changes)
}

func TestWorld_StepMovesGroundsFirst(t *testing.T) {
	platform := entity.NewMovingGround(collision.Rect{X: 0, Y: 100, Width: 50, Height: 10}, 40, 0.1)
	ch := createTestCharacter(500, 0, entity.DirLeft)
	w := NewWorld(ch, entity.NewGrounds(platform), nil)

	w.Step(nil, 1)
	moved := platform.Bounds().X
	assert.NotEqual(t, 0.0, moved)

	w.Step(nil, -5)
	assert.Equal(t, moved, platform.Bounds().X, "negative delta must not move grounds")
	assert.Equal(t, 2, w.Tick())
}

func TestWorld_NilGrounds(t *testing.T) {
	w := NewWorld(createTestCharacter(0, 0, entity.DirLeft), nil, nil)
	require.NotNil(t, w.Grounds)

	f := w.Step(nil, 1)
	assert.False(t, f.OnGround)
	assert.True(t, f.Falling)
}

func TestNewWorldFromConfig(t *testing.T) {
	stage := &config.StageConfig{
		Grounds: []config.GroundConfig{{X: 0, Y: 150, Width: 400, Height: 50}},
	}

	w := NewWorldFromConfig(createTestCharacterConfig(), stage, nil)

	assert.Equal(t, 1, w.Grounds.Len())
	assert.Equal(t, 100.0, w.Character.X)

	// Spawn is 50, footprint 48: falls onto the ground at 150
	for i := 0; i < 30; i++ {
		w.Step(nil, 1)
	}
	assert.True(t, w.Character.OnGround)
	assert.Equal(t, 150-testHeight+1, w.Character.Y)
}

func TestWorld_LastBeforeFirstStep(t *testing.T) {
	ch := createTestCharacter(40, 60, entity.DirRight)
	w := NewWorld(ch, nil, nil)

	f := w.Last()
	assert.Equal(t, 40.0, f.X)
	assert.Equal(t, 60.0, f.Y)
	assert.Equal(t, -1.0, f.ScaleX)
	assert.Equal(t, entity.StatusStand, f.Visual)
	assert.Equal(t, 0, w.Tick())
}
