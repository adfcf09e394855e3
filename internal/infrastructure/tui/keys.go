package tui

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/moonbunny/internal/domain/entity"
)

// Control is a logical input read from the terminal
type Control int

const (
	ControlNone Control = iota
	ControlLeft
	ControlRight
	ControlJump
	ControlPause
	ControlDebug
	ControlQuit
)

// DefaultHoldTimeout covers the usual autorepeat delay of a terminal
const DefaultHoldTimeout = 600 * time.Millisecond

// ControlFor maps a key event to a control: arrows, WASD or hjkl to move
// and jump, p to pause, Tab for the debug view, q or Escape to quit
func ControlFor(ev *tcell.EventKey) Control {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ControlLeft
	case tcell.KeyRight:
		return ControlRight
	case tcell.KeyUp:
		return ControlJump
	case tcell.KeyTab:
		return ControlDebug
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ControlQuit
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'a', 'h':
			return ControlLeft
		case 'd', 'l':
			return ControlRight
		case 'w', 'k', ' ':
			return ControlJump
		case 'p':
			return ControlPause
		case 'q':
			return ControlQuit
		}
	}
	return ControlNone
}

// HoldTracker turns key-down repeats into press and release events.
// Terminals report no key-up, so a control counts as released once no
// repeat arrived within the timeout.
type HoldTracker struct {
	timeout time.Duration
	held    map[Control]time.Time
}

// NewHoldTracker creates a tracker; a non-positive timeout uses the default
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &HoldTracker{
		timeout: timeout,
		held:    make(map[Control]time.Time),
	}
}

// Press records a key-down. Only the first press of a hold emits an event.
func (h *HoldTracker) Press(c Control, now time.Time) []entity.Event {
	var ev entity.Event
	switch c {
	case ControlLeft:
		ev = entity.DirectionPressed{Direction: entity.DirLeft}
	case ControlRight:
		ev = entity.DirectionPressed{Direction: entity.DirRight}
	case ControlJump:
		ev = entity.JumpPressed{}
	default:
		return nil
	}

	_, held := h.held[c]
	h.held[c] = now
	if held {
		return nil
	}
	return []entity.Event{ev}
}

// Expire releases every control not repeated within the timeout
func (h *HoldTracker) Expire(now time.Time) []entity.Event {
	var events []entity.Event
	for _, c := range []Control{ControlLeft, ControlRight, ControlJump} {
		last, ok := h.held[c]
		if !ok || now.Sub(last) < h.timeout {
			continue
		}
		delete(h.held, c)

		switch c {
		case ControlLeft:
			events = append(events, entity.DirectionReleased{Direction: entity.DirLeft})
		case ControlRight:
			events = append(events, entity.DirectionReleased{Direction: entity.DirRight})
		}
	}
	return events
}

// Held reports whether a control is currently held
func (h *HoldTracker) Held(c Control) bool {
	_, ok := h.held[c]
	return ok
}
