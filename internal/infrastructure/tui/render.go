package tui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/colornames"

	"github.com/younwookim/moonbunny/internal/application/system"
	"github.com/younwookim/moonbunny/internal/domain/collision"
)

const (
	runeGround = '█'
	runeBunny  = '▓'
	runeEar    = '^'
	runeDebug  = '·'
)

var (
	styleGround   = styleOf(colornames.Slategray)
	styleBunny    = styleOf(colornames.Whitesmoke)
	styleAirborne = styleOf(colornames.Lightskyblue)
	styleEar      = styleOf(colornames.Pink)
	styleDebug    = styleOf(colornames.Tomato)
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func styleOf(c color.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.FromImageColor(c))
}

// Renderer draws a world onto a terminal grid.
// One cell covers UnitsPerCol by UnitsPerRow world units.
type Renderer struct {
	screen      tcell.Screen
	UnitsPerCol float64
	UnitsPerRow float64
}

// NewRenderer creates a renderer; non-positive scales default to a
// 960x540 world on an 80x24 terminal
func NewRenderer(screen tcell.Screen, unitsPerCol, unitsPerRow float64) *Renderer {
	if unitsPerCol <= 0 {
		unitsPerCol = 12
	}
	if unitsPerRow <= 0 {
		unitsPerRow = 24
	}
	return &Renderer{screen: screen, UnitsPerCol: unitsPerCol, UnitsPerRow: unitsPerRow}
}

// Cell converts a world position to a terminal cell
func (r *Renderer) Cell(x, y float64) (col, row int) {
	return int(math.Floor(x / r.UnitsPerCol)), int(math.Floor(y / r.UnitsPerRow))
}

// Draw renders grounds, the character footprint and the status line
func (r *Renderer) Draw(w *system.World, f system.Frame, status string, debug bool) {
	r.screen.Clear()

	for _, g := range w.Grounds.Rects() {
		r.fill(g, runeGround, styleGround)
	}

	b := w.Character.Bounds()
	style := styleBunny
	if !f.OnGround {
		style = styleAirborne
	}
	if debug {
		r.fill(b, runeDebug, styleDebug)
	} else {
		r.fill(b, runeBunny, style)
	}

	// Ear above the front edge; sprites face left unless mirrored
	col, row := r.Cell(b.X, b.Y)
	if f.ScaleX < 0 {
		col, _ = r.Cell(b.Right()-1, b.Y)
	}
	r.set(col, row-1, runeEar, styleEar)

	r.text(0, 0, fmt.Sprintf("%s x=%.0f y=%.0f %s", f.Visual, f.X, f.Y, status))
	r.screen.Show()
}

func (r *Renderer) fill(rect collision.Rect, ch rune, style tcell.Style) {
	c0, r0 := r.Cell(rect.X, rect.Y)
	c1, r1 := r.Cell(rect.Right()-1, rect.Bottom()-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.set(col, row, ch, style)
		}
	}
}

func (r *Renderer) set(col, row int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *Renderer) text(col, row int, s string) {
	for i, ch := range []rune(s) {
		r.set(col+i, row, ch, styleText)
	}
}
