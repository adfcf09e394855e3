package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks display settings
func (c *DisplayConfig) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("display: screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("display: scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("display: tps must be positive, got %d", c.TPS)
	}
	return nil
}

// Validate checks character settings
func (c *CharacterConfig) Validate() error {
	var errs []error

	switch strings.ToLower(strings.TrimSpace(c.Direction)) {
	case "", "left", "right":
	default:
		errs = append(errs, fmt.Errorf("character: direction must be left or right, got %q", c.Direction))
	}

	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("character: physics.gravity must be > 0, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpPower < 0 {
		errs = append(errs, fmt.Errorf("character: physics.jumpPower must be >= 0, got %v", c.Physics.JumpPower))
	}
	if c.Physics.WalkSpeed < 0 {
		errs = append(errs, fmt.Errorf("character: physics.walkSpeed must be >= 0, got %v", c.Physics.WalkSpeed))
	}
	if c.Physics.Epsilon() < 0 {
		errs = append(errs, fmt.Errorf("character: physics.groundEpsilon must be >= 0, got %v", c.Physics.Epsilon()))
	}

	visuals := []struct {
		name string
		anim AnimationConfig
	}{
		{"stand", c.Visuals.Stand},
		{"walking", c.Visuals.Walking},
		{"jumping", c.Visuals.Jumping},
	}
	for _, v := range visuals {
		if err := v.anim.validate(v.name); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (a AnimationConfig) validate(name string) error {
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("character: visuals.%s footprint must be positive, got %vx%v", name, a.Width, a.Height)
	}
	if a.Frames < 0 || a.Speed < 0 {
		return fmt.Errorf("character: visuals.%s frames and speed must be >= 0", name)
	}
	return nil
}

// Validate checks stage settings
func (c *StageConfig) Validate() error {
	for i, g := range c.Grounds {
		if g.Width <= 0 || g.Height <= 0 {
			return fmt.Errorf("stage %s: grounds[%d] size must be positive, got %vx%v", c.ID, i, g.Width, g.Height)
		}
		if g.Motion != nil && g.Motion.Range < 0 {
			return fmt.Errorf("stage %s: grounds[%d] motion range must be >= 0", c.ID, i)
		}
	}
	return nil
}
