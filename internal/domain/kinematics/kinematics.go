// Package kinematics holds the closed-form vertical motion used for jumps
// and falls.
//
// Offsets are evaluated from the total elapsed time since the motion began
// rather than integrated per step, so frame-rate jitter never accumulates.
// Time is measured in nominal frames (60 per second).
package kinematics

// JumpOffset returns how far above its origin a jump is after t frames.
func JumpOffset(t, jumpPower, gravity float64) float64 {
	return jumpPower*t - (gravity/2)*t*t
}

// FallOffset returns how far below its origin a fall is after t frames.
func FallOffset(t, gravity float64) float64 {
	return (gravity / 2) * t * t
}

// JumpY returns the vertical position of a jump that started at origin.
// Y grows downward, so a positive offset raises the character.
func JumpY(origin, t, jumpPower, gravity float64) float64 {
	return origin - JumpOffset(t, jumpPower, gravity)
}

// FallY returns the vertical position of a fall that started at origin.
func FallY(origin, t, gravity float64) float64 {
	return origin + FallOffset(t, gravity)
}

// Apex returns the time and height of the highest point of a jump.
// A non-positive gravity never turns the jump around; ok is false then.
func Apex(jumpPower, gravity float64) (t, height float64, ok bool) {
	if gravity <= 0 {
		return 0, 0, false
	}
	t = jumpPower / gravity
	return t, JumpOffset(t, jumpPower, gravity), true
}
