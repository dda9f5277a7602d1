package ca

import (
	"fmt"

	"github.com/swifmaneum/cellpylib/pkg/core"
)

// memoCache maps neighbourhood keys to previously computed outputs. One
// cache is created per evolve call and discarded with it, so memoised
// results can never leak across runs or across rules. Memoisation is
// only sound for rules whose output depends solely on the neighbourhood
// contents; using it with coordinate- or time-dependent rules is the
// caller's mistake.
type memoCache map[string]uint8

func validateEvolve(history core.History, timesteps, r int, rule core.Rule) error {
	if len(history) == 0 || history.Last() == nil {
		return fmt.Errorf("%w: empty history", core.ErrInvalidParameter)
	}
	if timesteps < 0 {
		return fmt.Errorf("%w: timesteps=%d", core.ErrInvalidParameter, timesteps)
	}
	if r < 1 {
		return fmt.Errorf("%w: r=%d", core.ErrInvalidParameter, r)
	}
	if rule == nil {
		return fmt.Errorf("%w: nil rule", core.ErrInvalidParameter)
	}
	return nil
}

// Evolve advances a 1D history by the given number of timesteps,
// applying rule to the radius-r neighbourhood of every cell. Each
// timestep writes into a fresh grid while reading only the previous
// one, so all transitions within a step are simultaneous. The returned
// history has len(history)+timesteps grids; the input is not mutated.
func Evolve(history core.History, timesteps, r int, rule core.Rule, memoize bool) (core.History, error) {
	if err := validateEvolve(history, timesteps, r, rule); err != nil {
		return nil, err
	}
	cur := history.Last()
	if !cur.Is1D() {
		return nil, fmt.Errorf("%w: Evolve needs a 1D grid, got %dx%d", core.ErrInvalidParameter, cur.W, cur.H)
	}

	out := make(core.History, len(history), len(history)+timesteps)
	copy(out, history)

	var cache memoCache
	if memoize {
		cache = make(memoCache)
	}

	buf := make(core.Neighbourhood, 2*r+1)
	for step := 0; step < timesteps; step++ {
		t := len(out)
		next, err := core.NewGrid(cur.W, 1)
		if err != nil {
			return nil, err
		}
		for x := 0; x < cur.W; x++ {
			fill1D(buf, cur, x, r)
			v, err := applyRule(rule, cache, buf, core.Cell{X: x}, t)
			if err != nil {
				return nil, fmt.Errorf("cell %d at t=%d: %w", x, t, err)
			}
			next.Set(x, 0, v)
		}
		out = append(out, next)
		cur = next
	}
	return out, nil
}

// Evolve2D advances a 2D history by the given number of timesteps using
// the chosen neighbourhood shape. The simultaneity guarantee of Evolve
// holds here as well: a cell update never observes another cell's value
// at the new timestep, regardless of visit order.
func Evolve2D(history core.History, timesteps, r int, shape Shape, rule core.Rule, memoize bool) (core.History, error) {
	if err := validateEvolve(history, timesteps, r, rule); err != nil {
		return nil, err
	}
	cur := history.Last()

	out := make(core.History, len(history), len(history)+timesteps)
	copy(out, history)

	var cache memoCache
	if memoize {
		cache = make(memoCache)
	}

	buf := make(core.Neighbourhood, shape.windowLen(r))
	for step := 0; step < timesteps; step++ {
		t := len(out)
		next, err := core.NewGrid(cur.W, cur.H)
		if err != nil {
			return nil, err
		}
		for y := 0; y < cur.H; y++ {
			for x := 0; x < cur.W; x++ {
				fill2D(buf, cur, x, y, r, shape)
				v, err := applyRule(rule, cache, buf, core.Cell{X: x, Y: y}, t)
				if err != nil {
					return nil, fmt.Errorf("cell (%d,%d) at t=%d: %w", x, y, t, err)
				}
				next.Set(x, y, v)
			}
		}
		out = append(out, next)
		cur = next
	}
	return out, nil
}

func applyRule(rule core.Rule, cache memoCache, n core.Neighbourhood, c core.Cell, t int) (uint8, error) {
	if cache == nil {
		return rule(n, c, t)
	}
	key := n.Key()
	if v, ok := cache[key]; ok {
		return v, nil
	}
	v, err := rule(n, c, t)
	if err != nil {
		return 0, err
	}
	cache[key] = v
	return v, nil
}
