package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/moonbunny/configs"
	"github.com/younwookim/moonbunny/internal/application/game"
	"github.com/younwookim/moonbunny/internal/application/input"
	"github.com/younwookim/moonbunny/internal/application/replay"
	"github.com/younwookim/moonbunny/internal/application/scene/playing"
	"github.com/younwookim/moonbunny/internal/infrastructure/config"
)

// newLoader reads configs from dir, or from the embedded copy when dir is empty
func newLoader(dir string) *config.Loader {
	if dir != "" {
		return config.NewLoader(dir)
	}
	return config.NewFSLoader(configs.FS, "configs")
}

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recording (e.g., -replay replay.json)")
	headless := flag.Bool("headless", false, "With -replay, run without a window and print the final frame")
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded ones")
	watch := flag.Bool("watch", false, "Reload character and stage configs when they change (needs -config)")
	stageName := flag.String("stage", "demo", "Stage to load")
	verbose := flag.Bool("verbose", false, "Log character status transitions")
	flag.Parse()

	loader := newLoader(*configDir)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// A recording carries the stage it was made on
	var replayData *replay.ReplayData
	if *replayFlag != "" {
		replayData, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if replayData.Stage != "" {
			*stageName = replayData.Stage
		}
	}

	stageCfg, err := loader.LoadStage(*stageName)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	if *headless {
		if replayData == nil {
			log.Fatal("-headless needs -replay")
		}
		f := runReplay(cfg.Character, stageCfg, replayData)
		fmt.Println(formatFrame(len(replayData.Frames), f))
		return
	}

	bindings, err := input.KeyBindingsFromConfig(cfg.Character.Keys)
	if err != nil {
		log.Fatalf("Failed to load key bindings: %v", err)
	}

	var watcher *config.Watcher
	if *watch {
		if *configDir == "" {
			log.Fatal("-watch needs -config")
		}
		watcher, err = config.NewWatcher(*configDir, filepath.Join(*configDir, "stages"))
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		log.Printf("Watching %s for changes", *configDir)
	}

	scene := playing.New(playing.Options{
		Display:    cfg.Display,
		Character:  cfg.Character,
		Stage:      stageCfg,
		Bindings:   bindings,
		RecordPath: *recordFlag,
		Replay:     replayData,
		Loader:     loader,
		Watcher:    watcher,
		Verbose:    *verbose,
	})

	g := game.New(scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetTPS(cfg.Display.TPS)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)

	// Run game
	runErr := ebiten.RunGame(g)
	g.Close()
	if watcher != nil {
		_ = watcher.Close()
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
