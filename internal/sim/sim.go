// Package sim adapts the automaton engine to the viewer surfaces: a
// minimal stepping contract plus a registry of named simulations.
package sim

import "github.com/swifmaneum/cellpylib/pkg/core"

// Sim defines the minimal contract a viewable automaton must implement.
type Sim interface {
	Name() string
	Size() core.Size
	// States reports the alphabet size k, so renderers can pick a palette.
	States() int
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
