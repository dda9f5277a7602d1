package ca

import (
	"fmt"
	"strings"

	"github.com/swifmaneum/cellpylib/pkg/core"
)

// Shape selects the 2D neighbourhood form.
type Shape int

const (
	// Moore is the full (2r+1)x(2r+1) block including diagonals.
	Moore Shape = iota
	// VonNeumann is the cross of cells within Manhattan distance r,
	// excluding diagonal-only cells.
	VonNeumann
)

// String returns the conventional spelling of the shape.
func (s Shape) String() string {
	if s == VonNeumann {
		return "von Neumann"
	}
	return "Moore"
}

// ParseShape maps a config string onto a Shape.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", " ")) {
	case "moore":
		return Moore, nil
	case "von neumann", "vonneumann":
		return VonNeumann, nil
	}
	return Moore, fmt.Errorf("%w: unknown neighbourhood %q", core.ErrInvalidParameter, s)
}

// windowLen returns the neighbourhood tuple length for radius r.
func (s Shape) windowLen(r int) int {
	if s == VonNeumann {
		return 2*r*r + 2*r + 1
	}
	side := 2*r + 1
	return side * side
}

// fill1D writes the 2r+1 cells around x, left to right with toroidal
// wrapping, into dst.
func fill1D(dst core.Neighbourhood, g *core.Grid, x, r int) {
	w := g.W
	cells := g.Cells()
	for i, dx := 0, -r; dx <= r; i, dx = i+1, dx+1 {
		dst[i] = cells[((x+dx)%w+w)%w]
	}
}

// fill2D writes the cells of the chosen shape around (x, y) into dst in
// row-major order with toroidal wrapping.
func fill2D(dst core.Neighbourhood, g *core.Grid, x, y, r int, shape Shape) {
	w, h := g.W, g.H
	cells := g.Cells()
	i := 0
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if shape == VonNeumann && abs(dx)+abs(dy) > r {
				continue
			}
			nx := ((x+dx)%w + w) % w
			ny := ((y+dy)%h + h) % h
			dst[i] = cells[ny*w+nx]
			i++
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Neighbourhood1D returns the 2r+1 neighbours of cell x on a 1D grid,
// ordered left to right, wrapping periodically past either edge.
func Neighbourhood1D(g *core.Grid, x, r int) (core.Neighbourhood, error) {
	if r < 1 {
		return nil, fmt.Errorf("%w: r=%d", core.ErrInvalidParameter, r)
	}
	n := make(core.Neighbourhood, 2*r+1)
	fill1D(n, g, x, r)
	return n, nil
}

// Neighbourhood2D returns the neighbours of (x, y) on a 2D grid for the
// given shape and radius, in row-major order with toroidal wrapping.
func Neighbourhood2D(g *core.Grid, x, y, r int, shape Shape) (core.Neighbourhood, error) {
	if r < 1 {
		return nil, fmt.Errorf("%w: r=%d", core.ErrInvalidParameter, r)
	}
	n := make(core.Neighbourhood, shape.windowLen(r))
	fill2D(n, g, x, y, r, shape)
	return n, nil
}
