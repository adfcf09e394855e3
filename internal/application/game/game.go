// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/moonbunny/internal/application/scene"
)

// nominalTPS is the tick rate the physics constants are tuned for
const nominalTPS = 60

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	delta   float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		delta:   1, // one nominal frame per tick at 60 TPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.delta)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDelta sets the per-tick delta in nominal frames.
func (g *Game) SetDelta(delta float64) {
	g.delta = delta
}

// SetTPS derives the per-tick delta from a tick rate, so the character
// moves at the same speed whatever the rate. Non-positive rates are ignored.
func (g *Game) SetTPS(tps int) {
	if tps <= 0 {
		return
	}
	g.delta = float64(nominalTPS) / float64(tps)
}

// Close calls OnExit on the current scene.
// ebiten.RunGame returning does not do this on its own.
func (g *Game) Close() {
	g.current.OnExit()
}
