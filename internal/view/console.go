// Package view renders a running simulation as colored frames on a
// plain terminal. It is the viewer fallback when the binary is built
// without the ebiten tag.
package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/swifmaneum/cellpylib/internal/sim"
)

// cellColors maps non-quiescent states onto ANSI foreground colors;
// states beyond the list cycle.
var cellColors = []aurora.Color{
	aurora.WhiteFg,
	aurora.CyanFg,
	aurora.MagentaFg,
	aurora.YellowFg,
	aurora.GreenFg,
	aurora.RedFg,
	aurora.BlueFg,
	aurora.WhiteFg | aurora.BrightFg,
	aurora.CyanFg | aurora.BrightFg,
	aurora.MagentaFg | aurora.BrightFg,
	aurora.YellowFg | aurora.BrightFg,
	aurora.GreenFg | aurora.BrightFg,
	aurora.RedFg | aurora.BrightFg,
	aurora.BlueFg | aurora.BrightFg,
}

const clearScreen = "\x1b[H\x1b[2J"

// Console animates simulation frames on a terminal.
type Console struct {
	out   io.Writer
	delay time.Duration
}

// NewConsole creates a console viewer writing to out, sleeping delay
// between frames.
func NewConsole(out io.Writer, delay time.Duration) *Console {
	return &Console{out: out, delay: delay}
}

// Run steps the simulation the requested number of times, drawing a
// frame after every step. It only calls Step and reads Cells; the
// simulation's buffers are never written.
func (c *Console) Run(s sim.Sim, steps int) {
	fmt.Fprint(c.out, clearScreen)
	fmt.Fprintln(c.out, frame(s, 0))
	for i := 1; i <= steps; i++ {
		time.Sleep(c.delay)
		s.Step()
		fmt.Fprint(c.out, clearScreen)
		fmt.Fprintln(c.out, frame(s, i))
	}
}

// frame renders the grid plus a one-line status footer.
func frame(s sim.Sim, step int) string {
	size := s.Size()
	cells := s.Cells()

	var b strings.Builder
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			v := cells[y*size.W+x]
			if v == 0 {
				b.WriteString("  ")
				continue
			}
			color := cellColors[int(v-1)%len(cellColors)]
			b.WriteString(aurora.Colorize("██", color).String())
		}
		b.WriteByte('\n')
	}
	b.WriteString(fmt.Sprintf(" %s  k=%d  step %d",
		aurora.Colorize(s.Name(), aurora.GreenFg).String(), s.States(), step))
	return b.String()
}
