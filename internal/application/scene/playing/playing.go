// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/moonbunny/internal/application/input"
	"github.com/younwookim/moonbunny/internal/application/replay"
	"github.com/younwookim/moonbunny/internal/application/scene"
	"github.com/younwookim/moonbunny/internal/application/state"
	"github.com/younwookim/moonbunny/internal/application/system"
	"github.com/younwookim/moonbunny/internal/domain/entity"
	"github.com/younwookim/moonbunny/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = colornames.Midnightblue
	colorGround    = colornames.Slategray
	colorMoving    = colornames.Lightslategray
	colorBunny     = colornames.Whitesmoke
	colorEar       = colornames.Pink
	colorAirborne  = colornames.Lightskyblue
	colorDebug     = color.RGBA{255, 80, 80, 160}
	colorOverlay   = color.RGBA{0, 0, 0, 128}
	colorGroundDbg = color.RGBA{80, 255, 80, 160}
)

// Options configures a Playing scene
type Options struct {
	Display   *config.DisplayConfig
	Character *config.CharacterConfig
	Stage     *config.StageConfig
	Bindings  input.KeyBindings

	// Keys overrides the ebiten keyboard, for tests
	Keys input.KeyState

	// RecordPath enables input recording when not empty
	RecordPath string

	// Replay plays recorded input instead of reading the keyboard
	Replay *replay.ReplayData

	// Loader and Watcher enable hot reload of character and stage YAML
	Loader  *config.Loader
	Watcher *config.Watcher

	// Verbose logs every status transition
	Verbose bool
}

// Playing is the main gameplay scene
type Playing struct {
	display  *config.DisplayConfig
	charCfg  *config.CharacterConfig
	stageCfg *config.StageConfig
	state    state.GameState
	world    *system.World
	input    *input.System
	frame    system.Frame
	debug    bool
	verbose  bool

	// Hot reload
	loader  *config.Loader
	watcher *config.Watcher

	// Input recording and playback
	recorder       *replay.Recorder
	recordPath     string
	recordFilename string
	recordSegment  int
	replayer       *replay.Replayer
}

// New creates a new Playing scene.
func New(opts Options) *Playing {
	keys := opts.Keys
	var in *input.System
	if keys != nil {
		in = input.NewSystemWithKeys(opts.Bindings, keys)
	} else {
		in = input.NewSystem(opts.Bindings)
	}

	stageCfg := opts.Stage
	if stageCfg == nil {
		stageCfg = &config.StageConfig{}
	}

	p := &Playing{
		display:        opts.Display,
		charCfg:        opts.Character,
		stageCfg:       stageCfg,
		state:          state.StatePlaying,
		input:          in,
		verbose:        opts.Verbose,
		loader:         opts.Loader,
		watcher:        opts.Watcher,
		recordPath:     opts.RecordPath,
		recordFilename: opts.RecordPath,
		recordSegment:  1,
	}
	p.world = p.newWorld()
	p.frame = p.world.Last()

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.state = state.StateReplaying
		log.Printf("Replaying %d frames (stage: %s)", p.replayer.TotalFrames(), p.replayer.Stage())
	} else if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(p.stageCfg.ID)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return p
}

func (p *Playing) newWorld() *system.World {
	w := system.NewWorldFromConfig(p.charCfg, p.stageCfg, p)
	if p.verbose {
		w.OnStatusChange = func(from, to entity.Status) {
			log.Printf("tick %d: %s -> %s", w.Tick(), from, to)
		}
	}
	return w
}

// Present implements system.RenderSink
func (p *Playing) Present(f system.Frame) {
	p.frame = f
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(delta float64) (scene.Scene, error) {
	p.pollReload()

	if p.input.JustPressed(ebiten.KeyEscape) {
		p.state = p.state.TogglePause()
	}
	if p.input.JustPressed(ebiten.KeyTab) {
		p.debug = !p.debug
	}
	if p.input.JustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	switch p.state {
	case state.StatePlaying:
		p.Step(p.input.Poll(), delta)
	case state.StatePaused:
		// Key edges still change intent so a release is not lost
		if events := p.input.Poll(); len(events) > 0 {
			p.Step(events, 0)
		}
	case state.StateReplaying:
		fi, ok := p.replayer.GetInput()
		if !ok {
			p.state = state.StateFinished
			log.Printf("Replay finished at tick %d", p.world.Tick())
			return nil, nil
		}
		p.Step(fi.Events(), fi.D)
	}

	return nil, nil // nil = stay on this scene
}

// Step applies events and advances the world by delta frames, recording
// the tick when recording is enabled
func (p *Playing) Step(events []entity.Event, delta float64) system.Frame {
	if p.recorder != nil {
		p.recorder.RecordFrame(delta, events)
	}
	return p.world.Step(events, delta)
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// World returns the simulated world
func (p *Playing) World() *system.World {
	return p.world
}

// Frame returns the last frame presented by the physics system
func (p *Playing) Frame() system.Frame {
	return p.frame
}

// Recorder returns the active recorder, or nil
func (p *Playing) Recorder() *replay.Recorder {
	return p.recorder
}

func (p *Playing) pollReload() {
	if p.watcher == nil || p.loader == nil {
		return
	}

	select {
	case err, ok := <-p.watcher.Errors:
		if ok {
			log.Printf("Config watcher error: %v", err)
		}
	default:
	}

	name, ok := p.watcher.Poll()
	if !ok {
		return
	}
	if err := p.Reload(); err != nil {
		log.Printf("Failed to reload %s: %v", name, err)
		return
	}
	log.Printf("Reloaded %s", name)
}

// Reload re-reads character and stage config and rebuilds the world.
// The old world stays in place if either file fails to load.
func (p *Playing) Reload() error {
	if p.loader == nil {
		return fmt.Errorf("no config loader")
	}

	cc, err := p.loader.LoadCharacter()
	if err != nil {
		return err
	}
	stageCfg, err := p.loader.LoadStage(p.stageCfg.ID)
	if err != nil {
		return err
	}

	// A recording is only valid for the world it started in, so each
	// reload starts a new segment file
	if p.recorder != nil {
		p.saveRecording()
		p.recordSegment++
		p.recordFilename = replay.SegmentFilename(p.recordPath, p.recordSegment)
		p.recorder = replay.NewRecorder(stageCfg.ID)
		log.Printf("Recording restarted: %s", p.recordFilename)
	}

	p.charCfg = cc
	p.stageCfg = stageCfg
	p.world = p.newWorld()
	p.frame = p.world.Last()
	return nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawGrounds(screen)
	p.drawCharacter(screen)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.StateFinished:
		p.drawOverlay(screen, "REPLAY FINISHED")
	}
}

func (p *Playing) drawGrounds(screen *ebiten.Image) {
	for i, r := range p.world.Grounds.Rects() {
		c := colorGround
		if i < len(p.stageCfg.Grounds) && p.stageCfg.Grounds[i].Motion != nil {
			c = colorMoving
		}
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
		if p.debug {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, colorGroundDbg, false)
		}
	}
}

func (p *Playing) drawCharacter(screen *ebiten.Image) {
	ch := p.world.Character
	b := ch.Bounds()

	body := colorBunny
	if !p.frame.OnGround {
		body = colorAirborne
	}
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), body, false)

	// Sprites face left; ScaleX mirrors them, so the ear marks the front
	earW := float32(b.Width / 4)
	earX := float32(b.X)
	if p.frame.ScaleX < 0 {
		earX = float32(b.Right()) - earW
	}
	earH := float32(b.Height/3) - float32(p.frame.AnimFrame%2)
	vector.FillRect(screen, earX, float32(b.Y)-earH, earW, earH, colorEar, false)

	if p.debug {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, colorDebug, false)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	f := p.frame
	status := fmt.Sprintf("%s frame %d  x=%.1f y=%.1f  ground=%t falling=%t  %s",
		f.Visual, f.AnimFrame, f.X, f.Y, f.OnGround, f.Falling, p.state)
	if p.recorder != nil {
		status += fmt.Sprintf("  REC %d", p.recorder.FrameCount())
	}
	ebitenutil.DebugPrintAt(screen, status, 10, p.display.ScreenHeight-20)

	controls := "Arrows/WASD: Move+Jump | Tab: Debug | F5: Save recording | ESC: Pause"
	ebitenutil.DebugPrint(screen, controls)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	vector.FillRect(screen, 0, 0, float32(p.display.ScreenWidth), float32(p.display.ScreenHeight), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, text, p.display.ScreenWidth/2-50, p.display.ScreenHeight/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.display.ScreenWidth, p.display.ScreenHeight
}
