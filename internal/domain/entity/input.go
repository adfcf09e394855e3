package entity

// Event is a keyboard intent delivered to the character between ticks
type Event interface {
	isEvent()
}

// DirectionPressed signals a horizontal direction key went down
type DirectionPressed struct {
	Direction Direction
}

func (DirectionPressed) isEvent() {}

// DirectionReleased signals a horizontal direction key went up
type DirectionReleased struct {
	Direction Direction
}

func (DirectionReleased) isEvent() {}

// JumpPressed signals the jump key went down. Releases are not tracked.
type JumpPressed struct{}

func (JumpPressed) isEvent() {}
