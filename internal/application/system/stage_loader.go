package system

import (
	"github.com/younwookim/moonbunny/internal/domain/collision"
	"github.com/younwookim/moonbunny/internal/domain/entity"
	"github.com/younwookim/moonbunny/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a ground registry, keeping the
// order of the YAML list
func LoadStage(cfg *config.StageConfig) *entity.Grounds {
	grounds := entity.NewGrounds()
	if cfg == nil {
		return grounds
	}

	for _, g := range cfg.Grounds {
		rect := collision.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
		if g.Motion != nil {
			grounds.Add(entity.NewMovingGround(rect, g.Motion.Range, g.Motion.Speed))
			continue
		}
		grounds.Add(rect)
	}
	return grounds
}

// NewCharacter builds a character from config. A stage spawn, when set,
// overrides the character spawn.
func NewCharacter(cc *config.CharacterConfig, stage *config.StageConfig) *entity.Character {
	spawn := cc.Spawn
	if stage != nil && stage.Spawn != nil {
		spawn = *stage.Spawn
	}

	// Validation rejects unknown directions; fall back to left regardless
	dir, _ := entity.ParseDirection(cc.Direction)

	physics := entity.Physics{
		Gravity:       cc.Physics.Gravity,
		JumpPower:     cc.Physics.JumpPower,
		WalkSpeed:     cc.Physics.WalkSpeed,
		GroundEpsilon: cc.Physics.Epsilon(),
	}
	visuals := entity.Visuals{
		Stand:   animationFromConfig(cc.Visuals.Stand),
		Walking: animationFromConfig(cc.Visuals.Walking),
		Jumping: animationFromConfig(cc.Visuals.Jumping),
	}

	return entity.NewCharacter(spawn.X, spawn.Y, dir, physics, visuals)
}

func animationFromConfig(a config.AnimationConfig) entity.Animation {
	return entity.Animation{
		Speed:  a.Speed,
		Loop:   a.Loop,
		Frames: a.Frames,
		Width:  a.Width,
		Height: a.Height,
	}
}
