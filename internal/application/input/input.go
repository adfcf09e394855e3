package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/moonbunny/internal/domain/entity"
	"github.com/younwookim/moonbunny/internal/infrastructure/config"
)

// KeyState reports key edges for the current frame
type KeyState interface {
	IsKeyJustPressed(key ebiten.Key) bool
	IsKeyJustReleased(key ebiten.Key) bool
}

// ebitenKeys reads key edges from ebiten
type ebitenKeys struct{}

func (ebitenKeys) IsKeyJustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (ebitenKeys) IsKeyJustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

// KeyBindings maps logical controls to keys
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key
}

// DefaultKeyBindings returns arrow keys plus WASD
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Jump:  []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
	}
}

// ParseKeys converts ebiten key names ("ArrowLeft", "A", "Space") to keys
func ParseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("unknown key %q: %w", name, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// KeyBindingsFromConfig resolves key names. Controls left empty keep the
// default keys.
func KeyBindingsFromConfig(cfg config.KeysConfig) (KeyBindings, error) {
	bindings := DefaultKeyBindings()

	var err error
	if len(cfg.Left) > 0 {
		if bindings.Left, err = ParseKeys(cfg.Left); err != nil {
			return KeyBindings{}, fmt.Errorf("keys.left: %w", err)
		}
	}
	if len(cfg.Right) > 0 {
		if bindings.Right, err = ParseKeys(cfg.Right); err != nil {
			return KeyBindings{}, fmt.Errorf("keys.right: %w", err)
		}
	}
	if len(cfg.Jump) > 0 {
		if bindings.Jump, err = ParseKeys(cfg.Jump); err != nil {
			return KeyBindings{}, fmt.Errorf("keys.jump: %w", err)
		}
	}
	return bindings, nil
}

// System turns keyboard edges into character events
type System struct {
	bindings KeyBindings
	keys     KeyState
}

// NewSystem creates an input system reading ebiten's keyboard
func NewSystem(bindings KeyBindings) *System {
	return NewSystemWithKeys(bindings, ebitenKeys{})
}

// NewSystemWithKeys creates an input system over a custom key source
func NewSystemWithKeys(bindings KeyBindings, keys KeyState) *System {
	return &System{bindings: bindings, keys: keys}
}

// Poll returns this frame's events in application order:
// direction presses, direction releases, then jump.
func (s *System) Poll() []entity.Event {
	var events []entity.Event

	if s.any(s.bindings.Left, s.keys.IsKeyJustPressed) {
		events = append(events, entity.DirectionPressed{Direction: entity.DirLeft})
	}
	if s.any(s.bindings.Right, s.keys.IsKeyJustPressed) {
		events = append(events, entity.DirectionPressed{Direction: entity.DirRight})
	}
	if s.any(s.bindings.Left, s.keys.IsKeyJustReleased) {
		events = append(events, entity.DirectionReleased{Direction: entity.DirLeft})
	}
	if s.any(s.bindings.Right, s.keys.IsKeyJustReleased) {
		events = append(events, entity.DirectionReleased{Direction: entity.DirRight})
	}
	if s.any(s.bindings.Jump, s.keys.IsKeyJustPressed) {
		events = append(events, entity.JumpPressed{})
	}

	return events
}

// UpdateCharacter polls input and applies it to the character
func (s *System) UpdateCharacter(ch *entity.Character) []entity.Event {
	events := s.Poll()
	for _, ev := range events {
		ch.ApplyInput(ev)
	}
	return events
}

// JustPressed reports a key edge outside the movement bindings
func (s *System) JustPressed(key ebiten.Key) bool {
	return s.keys.IsKeyJustPressed(key)
}

func (s *System) any(keys []ebiten.Key, edge func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if edge(k) {
			return true
		}
	}
	return false
}
