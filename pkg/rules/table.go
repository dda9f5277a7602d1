package rules

import (
	"fmt"

	"github.com/swifmaneum/cellpylib/pkg/core"
)

// Tables are enumerated eagerly; k^(2r+1) entries past this point are
// rejected rather than silently eating memory.
const maxTableEntries = 1 << 24

// RuleTable is a total mapping from neighbourhood keys (raw cell bytes,
// see core.Neighbourhood.Key) to output states. A table built for a
// given k and r covers every possible tuple; it is built once and then
// read-only for the lifetime of every evolution that uses it.
type RuleTable map[string]uint8

// Lookup returns the output for a neighbourhood and whether the table
// contains it.
func (t RuleTable) Lookup(n core.Neighbourhood) (uint8, bool) {
	v, ok := t[n.Key()]
	return v, ok
}

// Table wraps a rule table as a rule. A missing tuple means the table
// was built for a different k or r than the evolution is using; that is
// fatal to the evolve call.
func Table(t RuleTable) core.Rule {
	return func(n core.Neighbourhood, _ core.Cell, _ int) (uint8, error) {
		v, ok := t[n.Key()]
		if !ok {
			return 0, fmt.Errorf("%w: %v", core.ErrLookupFailure, []uint8(n))
		}
		return v, nil
	}
}

// TableConfig parameterises random rule table generation.
type TableConfig struct {
	// Lambda is the target fraction of tuples mapped to a non-quiescent
	// state (Langton's activity parameter).
	Lambda float64
	// K is the alphabet size, R the 1D neighbourhood radius.
	K int
	R int
	// StrongQuiescence forces the all-quiescent tuple to stay quiescent.
	StrongQuiescence bool
	// Isotropic assigns outputs per reflection class, so a tuple and its
	// mirror always agree.
	Isotropic bool
}

// RandomTable builds a complete rule table over all k^(2r+1) 1D
// neighbourhood tuples. Each tuple (or reflection class, when
// isotropic) receives a uniformly chosen non-quiescent output with
// probability lambda and the quiescent state 0 otherwise. Because
// isotropy and strong quiescence make the target approximate, the
// returned lambda is the fraction actually achieved, measured from the
// finished table; callers report that, not the request.
func RandomTable(cfg TableConfig, rng *core.RNG) (RuleTable, float64, uint8, error) {
	const quiescent = uint8(0)
	if cfg.K < core.MinStates || cfg.K > core.MaxStates {
		return nil, 0, 0, fmt.Errorf("%w: k=%d outside [%d, %d]", core.ErrInvalidParameter, cfg.K, core.MinStates, core.MaxStates)
	}
	if cfg.R < 1 {
		return nil, 0, 0, fmt.Errorf("%w: r=%d", core.ErrInvalidParameter, cfg.R)
	}
	if cfg.Lambda < 0 || cfg.Lambda > 1 {
		return nil, 0, 0, fmt.Errorf("%w: lambda=%v outside [0, 1]", core.ErrInvalidParameter, cfg.Lambda)
	}
	if rng == nil {
		return nil, 0, 0, fmt.Errorf("%w: nil rng", core.ErrInvalidParameter)
	}

	window := 2*cfg.R + 1
	entries := 1
	for i := 0; i < window; i++ {
		entries *= cfg.K
		if entries > maxTableEntries {
			return nil, 0, 0, fmt.Errorf("%w: rule table with k=%d r=%d exceeds %d entries", core.ErrInvalidParameter, cfg.K, cfg.R, maxTableEntries)
		}
	}

	table := make(RuleTable, entries)
	// Per-class outputs when isotropic, so mirrored tuples agree.
	classes := make(map[string]uint8)

	tuple := make([]uint8, window)
	for {
		key := string(tuple)
		out, done := uint8(0), false
		if cfg.Isotropic {
			canon := reflectCanonical(key)
			if v, ok := classes[canon]; ok {
				out, done = v, true
			}
		}
		if !done {
			if rng.Float64() < cfg.Lambda {
				out = 1 + rng.Uint8n(uint8(cfg.K-1))
			} else {
				out = quiescent
			}
			if cfg.Isotropic {
				classes[reflectCanonical(key)] = out
			}
		}
		table[key] = out

		if !increment(tuple, uint8(cfg.K)) {
			break
		}
	}

	if cfg.StrongQuiescence {
		table[string(make([]uint8, window))] = quiescent
	}

	active := 0
	for _, v := range table {
		if v != quiescent {
			active++
		}
	}
	return table, float64(active) / float64(entries), quiescent, nil
}

// reflectCanonical returns the lexicographically smaller of a tuple key
// and its reversal, identifying the tuple's reflection class.
func reflectCanonical(key string) string {
	b := []byte(key)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	rev := string(b)
	if rev < key {
		return rev
	}
	return key
}

// increment steps the tuple odometer-style with the rightmost cell
// fastest; it reports false once every tuple has been visited.
func increment(tuple []uint8, k uint8) bool {
	for i := len(tuple) - 1; i >= 0; i-- {
		tuple[i]++
		if tuple[i] < k {
			return true
		}
		tuple[i] = 0
	}
	return false
}
