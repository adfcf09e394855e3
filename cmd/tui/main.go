package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/moonbunny/configs"
	"github.com/younwookim/moonbunny/internal/application/system"
	"github.com/younwookim/moonbunny/internal/domain/entity"
	"github.com/younwookim/moonbunny/internal/infrastructure/config"
	"github.com/younwookim/moonbunny/internal/infrastructure/tui"
)

func main() {
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded ones")
	stageName := flag.String("stage", "demo", "Stage to load")
	hold := flag.Duration("hold", tui.DefaultHoldTimeout, "How long a key counts as held after its last repeat")
	logPath := flag.String("log", "", "Write logs to this file (the terminal is busy drawing)")
	verbose := flag.Bool("verbose", false, "Log character status transitions")
	flag.Parse()

	loader := config.NewFSLoader(configs.FS, "configs")
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	stageCfg, err := loader.LoadStage(*stageName)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer func() { _ = f.Close() }()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	world := system.NewWorldFromConfig(cfg.Character, stageCfg, nil)
	if *verbose {
		world.OnStatusChange = func(from, to entity.Status) {
			log.Printf("tick %d: %s -> %s", world.Tick(), from, to)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	// Fit the configured display onto the terminal
	cols, rows := screen.Size()
	app := tui.NewApp(screen, world, tui.Options{
		TPS:         cfg.Display.TPS,
		HoldTimeout: *hold,
		UnitsPerCol: float64(cfg.Display.ScreenWidth) / float64(max(cols, 1)),
		UnitsPerRow: float64(cfg.Display.ScreenHeight) / float64(max(rows, 1)),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	err = app.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("Quit after %d ticks (%s)", world.Tick(), time.Since(start).Round(time.Second))
}
