package entity

import "strings"

// Status is the character's animation/physics state
type Status int

const (
	StatusStand Status = iota
	StatusWalking
	StatusJumping

	statusCount
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusStand:
		return "STAND"
	case StatusWalking:
		return "WALKING"
	case StatusJumping:
		return "JUMPING"
	default:
		return "UNKNOWN"
	}
}

// Direction is the horizontal facing of the character
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns the string representation of the direction
func (d Direction) String() string {
	if d == DirRight {
		return "RIGHT"
	}
	return "LEFT"
}

// Sign returns -1 for left and +1 for right
func (d Direction) Sign() float64 {
	if d == DirRight {
		return 1
	}
	return -1
}

// ParseDirection parses "left" or "right" (case-insensitive)
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return DirLeft, true
	case "right":
		return DirRight, true
	default:
		return DirLeft, false
	}
}
