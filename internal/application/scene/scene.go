// Package scene defines the Scene interface for game screens.
//
// The game loop delegates to one scene at a time; the playing scene is the
// only one MoonBunny ships, but a title or stage select screen plugs in
// the same way.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by delta nominal frames (1 at 60 TPS).
	// Returns the next scene if a transition is needed, nil to stay on
	// the current scene. Returns an error to terminate the game.
	Update(delta float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}
