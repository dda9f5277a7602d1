package sim

import (
	"strconv"

	"github.com/swifmaneum/cellpylib/pkg/ca"
	"github.com/swifmaneum/cellpylib/pkg/core"
	"github.com/swifmaneum/cellpylib/pkg/rules"
)

// Life runs Conway's Game of Life on a torus through the 2D engine.
type Life struct {
	w, h int
	rule core.Rule
	grid *core.Grid
}

// NewLife returns a Life simulation with the provided dimensions.
func NewLife(w, h int) *Life {
	l := &Life{w: w, h: h, rule: rules.GameOfLife()}
	l.Reset(0)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// States reports the binary alphabet.
func (l *Life) States() int { return 2 }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	hist, err := ca.InitRandom2D(l.h, l.w, 2, core.NewRNG(seed))
	if err != nil {
		return
	}
	l.grid = hist.Last()
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	out, err := ca.Evolve2D(core.History{l.grid}, 1, 1, ca.Moore, l.rule, false)
	if err != nil {
		return
	}
	l.grid = out.Last()
}

func init() {
	Register("life", func(cfg map[string]string) Sim {
		w, h := 256, 256
		if v, ok := cfg["w"]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				w = parsed
			}
		}
		if v, ok := cfg["h"]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				h = parsed
			}
		}
		return NewLife(w, h)
	})
}
