package sim

import (
	"strconv"

	"github.com/swifmaneum/cellpylib/pkg/ca"
	"github.com/swifmaneum/cellpylib/pkg/core"
	"github.com/swifmaneum/cellpylib/pkg/rules"
)

// LambdaConfig holds parameters for the random-table automaton.
type LambdaConfig struct {
	Width  int
	Height int
	K      int
	Radius int
	Lambda float64
}

// DefaultLambdaConfig returns a configuration near the order-chaos
// transition for k=4.
func DefaultLambdaConfig() LambdaConfig {
	return LambdaConfig{Width: 256, Height: 256, K: 4, Radius: 1, Lambda: 0.37}
}

// LambdaFromMap populates a LambdaConfig from a string map.
func LambdaFromMap(cfg map[string]string) LambdaConfig {
	c := DefaultLambdaConfig()
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
	if v, ok := cfg["k"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= core.MinStates && parsed <= core.MaxStates {
			c.K = parsed
		}
	}
	if v, ok := cfg["r"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Radius = parsed
		}
	}
	if v, ok := cfg["lambda"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Lambda = parsed
		}
	}
	return c
}

// Lambda runs a 1D k-color automaton under a freshly generated random
// rule table, scrolling its space-time diagram like Elementary. The
// lambda knob moves the table through Langton's order-chaos spectrum;
// each Reset draws a new table from the seed.
type Lambda struct {
	cfg  LambdaConfig
	rule core.Rule
	row  *core.Grid
	cur  []uint8
}

// NewLambda creates the automaton for the given configuration.
func NewLambda(c LambdaConfig) *Lambda {
	l := &Lambda{cfg: c, cur: make([]uint8, c.Width*c.Height)}
	l.Reset(0)
	return l
}

// Name returns the simulation identifier.
func (l *Lambda) Name() string { return "lambda" }

// Size returns the simulation grid dimensions.
func (l *Lambda) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// States reports the alphabet size.
func (l *Lambda) States() int { return l.cfg.K }

// Cells exposes the render buffer.
func (l *Lambda) Cells() []uint8 { return l.cur }

// Reset draws a fresh rule table and random initial row from the seed.
func (l *Lambda) Reset(seed int64) {
	rng := core.NewRNG(seed)
	table, _, _, err := rules.RandomTable(rules.TableConfig{
		Lambda:           l.cfg.Lambda,
		K:                l.cfg.K,
		R:                l.cfg.Radius,
		StrongQuiescence: true,
	}, rng)
	if err != nil {
		return
	}
	l.rule = rules.Table(table)

	hist, err := ca.InitRandom(l.cfg.Width, l.cfg.K, rng)
	if err != nil {
		return
	}
	l.row = hist.Last()
	for i := range l.cur {
		l.cur[i] = 0
	}
	copy(l.cur[:l.cfg.Width], l.row.Cells())
}

// Step computes the next generation and scrolls history downwards.
func (l *Lambda) Step() {
	out, err := ca.Evolve(core.History{l.row}, 1, l.cfg.Radius, l.rule, true)
	if err != nil {
		return
	}
	l.row = out.Last()
	w := l.cfg.Width
	copy(l.cur[w:], l.cur[:w*(l.cfg.Height-1)])
	copy(l.cur[:w], l.row.Cells())
}

func init() {
	Register("lambda", func(cfg map[string]string) Sim {
		return NewLambda(LambdaFromMap(cfg))
	})
}
