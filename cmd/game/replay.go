package main

import (
	"fmt"

	"github.com/younwookim/moonbunny/internal/application/replay"
	"github.com/younwookim/moonbunny/internal/application/system"
	"github.com/younwookim/moonbunny/internal/infrastructure/config"
)

// runReplay steps a fresh world through recorded input without opening a
// window and returns the last frame
func runReplay(cc *config.CharacterConfig, stage *config.StageConfig, data *replay.ReplayData) system.Frame {
	w := system.NewWorldFromConfig(cc, stage, nil)
	r := replay.NewReplayer(*data)

	for {
		fi, ok := r.GetInput()
		if !ok {
			break
		}
		w.Step(fi.Events(), fi.D)
	}

	return w.Last()
}

func formatFrame(frames int, f system.Frame) string {
	return fmt.Sprintf("frames=%d x=%.3f y=%.3f status=%s anim=%d scaleX=%.0f onGround=%t falling=%t",
		frames, f.X, f.Y, f.Visual, f.AnimFrame, f.ScaleX, f.OnGround, f.Falling)
}
