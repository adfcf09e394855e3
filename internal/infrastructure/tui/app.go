// Package tui runs the character in a terminal with tcell.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/moonbunny/internal/application/system"
	"github.com/younwookim/moonbunny/internal/domain/entity"
)

const nominalTPS = 60

// Options configures an App
type Options struct {
	TPS         int           // ticks per second, 60 when unset
	HoldTimeout time.Duration // see HoldTracker
	UnitsPerCol float64
	UnitsPerRow float64
}

// App drives a world from terminal key events
type App struct {
	screen   tcell.Screen
	world    *system.World
	holds    *HoldTracker
	renderer *Renderer

	delta     float64
	tickEvery time.Duration

	pending []entity.Event
	frame   system.Frame
	paused  bool
	debug   bool
	quit    bool
}

// NewApp creates an App drawing on an initialized screen
func NewApp(screen tcell.Screen, world *system.World, opts Options) *App {
	tps := opts.TPS
	if tps <= 0 {
		tps = nominalTPS
	}
	return &App{
		screen:    screen,
		world:     world,
		holds:     NewHoldTracker(opts.HoldTimeout),
		renderer:  NewRenderer(screen, opts.UnitsPerCol, opts.UnitsPerRow),
		delta:     float64(nominalTPS) / float64(tps),
		tickEvery: time.Second / time.Duration(tps),
		frame:     world.Last(),
	}
}

// HandleEvent processes one terminal event received at now
func (a *App) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch c := ControlFor(ev); c {
		case ControlQuit:
			a.quit = true
		case ControlPause:
			a.paused = !a.paused
		case ControlDebug:
			a.debug = !a.debug
		default:
			a.pending = append(a.pending, a.holds.Press(c, now)...)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// Tick steps the world once with the presses received since the last tick
// and the releases due at now, then redraws
func (a *App) Tick(now time.Time) system.Frame {
	events := append(a.pending, a.holds.Expire(now)...)
	a.pending = nil

	switch {
	case !a.paused:
		a.frame = a.world.Step(events, a.delta)
	case len(events) > 0:
		// Intent still changes while paused so a release is not lost
		a.frame = a.world.Step(events, 0)
	}

	a.draw()
	return a.frame
}

func (a *App) draw() {
	status := "arrows/wasd move+jump  p pause  tab debug  q quit"
	if a.paused {
		status = "PAUSED  " + status
	}
	if a.debug {
		status = fmt.Sprintf("tick=%d ground=%t falling=%t  %s", a.world.Tick(), a.frame.OnGround, a.frame.Falling, status)
	}
	a.renderer.Draw(a.world, a.frame, status, a.debug)
}

// Paused reports whether the simulation is paused
func (a *App) Paused() bool {
	return a.paused
}

// Quit reports whether the user asked to quit
func (a *App) Quit() bool {
	return a.quit
}

// Run reads terminal events and ticks at the configured rate until the
// user quits or ctx is done. The caller owns the screen and calls Fini.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	// PollEvent returns nil once the screen is finalized
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.tickEvery)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			a.HandleEvent(ev, time.Now())
			if a.quit {
				return nil
			}
		case now := <-ticker.C:
			a.Tick(now)
		}
	}
}
