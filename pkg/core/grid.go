// Package core holds the data model shared by the automaton engine:
// grids, histories, neighbourhoods, the rule contract and the RNG.
package core

import "fmt"

// MinStates and MaxStates bound the cell alphabet size k. The upper
// bound comes from the alphanumeric digit set used to render totalistic
// rule numbers in base k.
const (
	MinStates = 2
	MaxStates = 36
)

// Grid stores cell states in row-major order. A grid with H == 1 is
// one-dimensional; both dimensions wrap periodically.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrInvalidParameter, w, h)
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// NewGridFromCells wraps an existing cell slice. The slice length must
// agree with the declared dimensions.
func NewGridFromCells(w, h int, cells []uint8) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrInvalidParameter, w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrShapeMismatch, len(cells), w, h)
	}
	return &Grid{W: w, H: h, data: cells}, nil
}

// Is1D reports whether the grid is a single row.
func (g *Grid) Is1D() bool { return g.H == 1 }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the cell value at (x, y) without wrapping.
func (g *Grid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set writes the cell value at (x, y) without wrapping.
func (g *Grid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]uint8, len(g.data))
	copy(data, g.data)
	return &Grid{W: g.W, H: g.H, data: data}
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// SameShape reports whether two grids have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool { return g.W == o.W && g.H == o.H }

// History is the ordered sequence of grids produced by an evolution,
// index 0 being the initial state. It is append-only: grids are never
// mutated after being added, and downstream consumers treat the whole
// sequence as read-only.
type History []*Grid

// Last returns the most recent grid, or nil for an empty history.
func (h History) Last() *Grid {
	if len(h) == 0 {
		return nil
	}
	return h[len(h)-1]
}

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}
