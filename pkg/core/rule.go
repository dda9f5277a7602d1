package core

// Neighbourhood is the ordered tuple of cell states sampled around a
// target cell: left-to-right for 1D, row-major for 2D. The ordering is
// stable so a neighbourhood can serve as a lookup key.
type Neighbourhood []uint8

// Key returns the neighbourhood as a string of raw bytes, suitable as a
// map key for rule tables and memoisation caches.
func (n Neighbourhood) Key() string { return string(n) }

// Cell addresses a single cell. Y is always 0 on one-dimensional grids.
type Cell struct {
	X, Y int
}

// Rule is the uniform transition contract: given the neighbourhood of a
// cell, the cell's coordinate and the current timestep, produce the
// cell's next state. Built-in rule families and user rules alike
// satisfy it, so any rule composes with the same evolution engine.
//
// Rules must not retain or mutate the neighbourhood slice.
type Rule func(n Neighbourhood, c Cell, t int) (uint8, error)
