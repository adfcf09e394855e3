package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusStand, "STAND"},
		{StatusWalking, "WALKING"},
		{StatusJumping, "JUMPING"},
		{Status(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "LEFT", DirLeft.String())
	assert.Equal(t, "RIGHT", DirRight.String())
	assert.Equal(t, -1.0, DirLeft.Sign())
	assert.Equal(t, 1.0, DirRight.Sign())
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in     string
		want   Direction
		wantOK bool
	}{
		{"left", DirLeft, true},
		{"RIGHT", DirRight, true},
		{" Right ", DirRight, true},
		{"", DirLeft, true},
		{"up", DirLeft, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDirection(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
