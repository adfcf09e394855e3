package entity

import (
	"github.com/younwookim/moonbunny/internal/domain/collision"
	"github.com/younwookim/moonbunny/internal/domain/kinematics"
)

// Physics holds the constants of one character instance.
// Time is in nominal frames (delta 1 at 60 updates per second).
type Physics struct {
	Gravity   float64 // downward acceleration, units/frame^2
	JumpPower float64 // initial upward speed of a jump, units/frame
	WalkSpeed float64 // horizontal speed, units/frame

	// GroundEpsilon is how far the footprint sinks into a ground segment
	// when resting on it, so contact holds under the strict overlap test.
	GroundEpsilon float64
}

// DefaultPhysics returns the MoonBunny defaults
func DefaultPhysics() Physics {
	return Physics{
		Gravity:       1,
		JumpPower:     20,
		WalkSpeed:     3,
		GroundEpsilon: 1,
	}
}

// Visuals configures the animation owned by each status
type Visuals struct {
	Stand   Animation
	Walking Animation
	Jumping Animation
}

// DefaultVisuals returns the MoonBunny sprite defaults
func DefaultVisuals() Visuals {
	return Visuals{
		Stand:   Animation{Speed: 0.3, Loop: true, Frames: 4, Width: 40, Height: 48},
		Walking: Animation{Speed: 0.3, Loop: true, Frames: 6, Width: 40, Height: 48},
		Jumping: Animation{Speed: 0.25, Loop: false, Frames: 6, Width: 40, Height: 48},
	}
}

// Character is the MoonBunny state machine.
//
// Position is anchored at the horizontal center; Y is the top of the
// collision footprint. Status changes keep the bottom edge in place, so
// footprints of different heights share the same feet. Input events only change intent (direction,
// MovingPressed) or start a jump; everything else happens through the
// per-tick methods driven by the physics system.
type Character struct {
	Status        Status
	Direction     Direction
	X, Y          float64
	MovingPressed bool

	// Derived from collision every tick
	OnGround bool

	// Falling is the unlabeled airborne state: not on ground, not jumping
	Falling    bool
	JumpOrigin float64
	FallOrigin float64
	Elapsed    float64 // frames since the current jump or fall began

	physics Physics
	visuals [statusCount]Animation
}

// NewCharacter creates a standing character at the spawn position
func NewCharacter(x, y float64, dir Direction, physics Physics, visuals Visuals) *Character {
	c := &Character{
		Status:    StatusStand,
		Direction: dir,
		X:         x,
		Y:         y,
		physics:   physics,
	}
	c.visuals[StatusStand] = visuals.Stand
	c.visuals[StatusWalking] = visuals.Walking
	c.visuals[StatusJumping] = visuals.Jumping

	// The jump animation only plays once a jump starts
	c.visuals[StatusStand].Play()
	c.visuals[StatusWalking].Play()
	return c
}

// Physics returns the constants of this character
func (c *Character) Physics() Physics {
	return c.physics
}

// Visual returns the animation of the active status
func (c *Character) Visual() *Animation {
	return &c.visuals[c.Status]
}

// VisualFor returns a copy of the animation owned by a status
func (c *Character) VisualFor(s Status) Animation {
	if s < 0 || s >= statusCount {
		return Animation{}
	}
	return c.visuals[s]
}

// Bounds returns the collision rectangle of the active footprint
func (c *Character) Bounds() collision.Rect {
	v := c.Visual()
	return collision.Rect{
		X:      c.X - v.Width/2,
		Y:      c.Y,
		Width:  v.Width,
		Height: v.Height,
	}
}

// ScaleX returns the horizontal sprite scale. Sprites face left, so a
// right-facing character is mirrored.
func (c *Character) ScaleX() float64 {
	if c.Direction == DirRight {
		return -1
	}
	return 1
}

// ApplyInput applies one keyboard event
func (c *Character) ApplyInput(ev Event) {
	switch e := ev.(type) {
	case DirectionPressed:
		c.Direction = e.Direction
		c.MovingPressed = true
		if c.Status == StatusStand {
			c.setStatus(StatusWalking)
		}
	case DirectionReleased:
		if e.Direction != c.Direction {
			return
		}
		c.MovingPressed = false
		if c.Status == StatusWalking {
			c.setStatus(StatusStand)
		}
	case JumpPressed:
		c.startJump()
	}
}

func (c *Character) startJump() {
	if c.Status == StatusJumping {
		return
	}

	c.setStatus(StatusJumping)

	// Lift out of the resting overlap so the takeoff frame is airborne
	if c.OnGround {
		c.Y -= c.physics.GroundEpsilon
		c.OnGround = false
	}

	c.Falling = false
	c.JumpOrigin = c.Y
	c.Elapsed = 0
	c.visuals[StatusJumping].Restart()
}

// Land puts the character on a ground segment whose top edge is at groundTop.
// Any jump or fall in progress ends; the status settles to WALKING or STAND.
func (c *Character) Land(groundTop float64) {
	c.OnGround = true
	c.Falling = false
	c.settle()
	c.Y = groundTop - c.Visual().Height + c.physics.GroundEpsilon
}

func (c *Character) settle() {
	if c.MovingPressed {
		c.setStatus(StatusWalking)
	} else {
		c.setStatus(StatusStand)
	}
}

// setStatus switches the active footprint without moving its bottom edge
func (c *Character) setStatus(s Status) {
	if s == c.Status {
		return
	}
	c.Y += c.Visual().Height - c.visuals[s].Height
	c.Status = s
}

// AdvanceJump moves the jump arc forward by delta frames
func (c *Character) AdvanceJump(delta float64) {
	c.OnGround = false
	c.Elapsed += delta
	c.Y = kinematics.JumpY(c.JumpOrigin, c.Elapsed, c.physics.JumpPower, c.physics.Gravity)
}

// AdvanceFall moves the character down under gravity by delta frames,
// starting a new fall from the current height if none is in progress.
func (c *Character) AdvanceFall(delta float64) {
	c.OnGround = false
	if !c.Falling {
		c.Falling = true
		c.FallOrigin = c.Y
		c.Elapsed = 0
	}
	c.Elapsed += delta
	c.Y = kinematics.FallY(c.FallOrigin, c.Elapsed, c.physics.Gravity)
}

// AdvanceWalk moves horizontally while a direction key is held,
// whether or not the character is airborne.
func (c *Character) AdvanceWalk(delta float64) {
	if !c.MovingPressed {
		return
	}
	c.X += delta * c.physics.WalkSpeed * c.Direction.Sign()
}
