package sim

import (
	"math/big"
	"strconv"

	"github.com/swifmaneum/cellpylib/pkg/ca"
	"github.com/swifmaneum/cellpylib/pkg/core"
	"github.com/swifmaneum/cellpylib/pkg/rules"
)

// ElementaryConfig holds parameters for the 1D binary automaton.
type ElementaryConfig struct {
	Width  int
	Height int
	Radius int
	Rule   *big.Int
}

// DefaultElementaryConfig returns the default configuration.
func DefaultElementaryConfig() ElementaryConfig {
	return ElementaryConfig{Width: 256, Height: 256, Radius: 1, Rule: big.NewInt(110)}
}

// ElementaryFromMap populates an ElementaryConfig from a string map.
// The rule number is decimal and may exceed a machine word.
func ElementaryFromMap(cfg map[string]string) ElementaryConfig {
	c := DefaultElementaryConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["r"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Radius = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, ok := new(big.Int).SetString(v, 10); ok && parsed.Sign() >= 0 {
			c.Rule = parsed
		}
	}
	return c
}

// Elementary runs a one-dimensional binary rule and projects its
// space-time diagram vertically: the newest generation occupies the top
// row, older generations scroll downwards.
type Elementary struct {
	w, h int
	r    int
	rule core.Rule
	row  *core.Grid
	cur  []uint8
}

// NewElementary creates the automaton for the given configuration.
func NewElementary(c ElementaryConfig) *Elementary {
	rule, err := rules.Binary(c.Rule)
	if err != nil {
		rule, _ = rules.Binary(big.NewInt(110))
	}
	e := &Elementary{w: c.Width, h: c.Height, r: c.Radius, rule: rule, cur: make([]uint8, c.Width*c.Height)}
	e.Reset(0)
	return e
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// States reports the binary alphabet.
func (e *Elementary) States() int { return 2 }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.cur }

// Reset clears the diagram and seeds a single active center cell.
func (e *Elementary) Reset(seed int64) {
	for i := range e.cur {
		e.cur[i] = 0
	}
	hist, err := ca.InitSimple(e.w, 2)
	if err != nil {
		return
	}
	e.row = hist.Last()
	copy(e.cur[:e.w], e.row.Cells())
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	out, err := ca.Evolve(core.History{e.row}, 1, e.r, e.rule, true)
	if err != nil {
		return
	}
	e.row = out.Last()
	copy(e.cur[e.w:], e.cur[:e.w*(e.h-1)])
	copy(e.cur[:e.w], e.row.Cells())
}

func init() {
	Register("elementary", func(cfg map[string]string) Sim {
		return NewElementary(ElementaryFromMap(cfg))
	})
}
