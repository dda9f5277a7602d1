// Package ca implements the evolution engine: state initialisation,
// periodic-boundary neighbourhood extraction and timestep-by-timestep
// rule application over 1D rings and 2D tori.
package ca

import (
	"fmt"

	"github.com/swifmaneum/cellpylib/pkg/core"
)

func validateStates(k int) error {
	if k < core.MinStates || k > core.MaxStates {
		return fmt.Errorf("%w: k=%d outside [%d, %d]", core.ErrInvalidParameter, k, core.MinStates, core.MaxStates)
	}
	return nil
}

// InitSimple returns a history holding a single 1D grid of the given
// size: all cells quiescent except the center cell, set to 1.
func InitSimple(size, k int) (core.History, error) {
	if err := validateStates(k); err != nil {
		return nil, err
	}
	g, err := core.NewGrid(size, 1)
	if err != nil {
		return nil, err
	}
	g.Set(size/2, 0, 1)
	return core.History{g}, nil
}

// InitSimple2D returns a history holding a single rows x cols grid with
// only the center cell (rows/2, cols/2) set to 1.
func InitSimple2D(rows, cols, k int) (core.History, error) {
	if err := validateStates(k); err != nil {
		return nil, err
	}
	g, err := core.NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}
	g.Set(cols/2, rows/2, 1)
	return core.History{g}, nil
}

// InitRandom returns a history holding a single 1D grid with every cell
// drawn independently and uniformly from [0, k).
func InitRandom(size, k int, rng *core.RNG) (core.History, error) {
	return InitRandomN(size, k, size, rng)
}

// InitRandomN randomises only a centered block of n cells, leaving the
// rest quiescent.
func InitRandomN(size, k, n int, rng *core.RNG) (core.History, error) {
	if err := validateStates(k); err != nil {
		return nil, err
	}
	if n < 0 || n > size {
		return nil, fmt.Errorf("%w: n=%d outside [0, %d]", core.ErrInvalidParameter, n, size)
	}
	g, err := core.NewGrid(size, 1)
	if err != nil {
		return nil, err
	}
	start := (size - n) / 2
	rng.Fill(g.Cells()[start:start+n], k)
	return core.History{g}, nil
}

// InitRandom2D returns a history holding a single rows x cols grid with
// cells drawn independently and uniformly from [0, k).
func InitRandom2D(rows, cols, k int, rng *core.RNG) (core.History, error) {
	if err := validateStates(k); err != nil {
		return nil, err
	}
	g, err := core.NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}
	rng.Fill(g.Cells(), k)
	return core.History{g}, nil
}
