// Package rules provides the built-in rule families: Wolfram NKS binary
// numbering, generalised binary rules, k-color totalistic codes, rule
// table lookup with a random table generator, and Conway's Game of
// Life. Every family is exposed as a constructor returning a core.Rule,
// so built-ins and user rules plug into the engine the same way.
package rules

import (
	"fmt"
	"math/big"

	"github.com/swifmaneum/cellpylib/pkg/core"
)

// Cells the index arithmetic can address with a machine word.
const maxBinaryWindow = 62

// binaryIndex reads the neighbourhood as a base-2 numeral with the
// leftmost neighbour as the most significant bit.
func binaryIndex(n core.Neighbourhood) (int, error) {
	if len(n) > maxBinaryWindow {
		return 0, fmt.Errorf("%w: binary window of %d cells", core.ErrInvalidParameter, len(n))
	}
	idx := 0
	for _, v := range n {
		if v > 1 {
			return 0, fmt.Errorf("%w: binary rule saw state %d", core.ErrInvalidParameter, v)
		}
		idx = idx<<1 | int(v)
	}
	return idx, nil
}

// NKS returns the 1D binary rule with the given Wolfram NKS number
// (rule 30, rule 110, ...). The neighbourhood indexes bit idx of the
// rule number, exactly the r=1 specialisation of Binary; rule numbers
// beyond a machine word belong to Binary.
func NKS(rule uint64) core.Rule {
	return func(n core.Neighbourhood, _ core.Cell, _ int) (uint8, error) {
		idx, err := binaryIndex(n)
		if err != nil {
			return 0, err
		}
		if idx > 63 {
			return 0, fmt.Errorf("%w: NKS rule number has no bit %d", core.ErrInvalidParameter, idx)
		}
		return uint8((rule >> idx) & 1), nil
	}
}

// Binary returns the generalised binary rule for arbitrary radius: the
// neighbourhood, read MSB-first, selects a bit of the rule number. Rule
// numbers are arbitrary-precision, since a radius-2 window already
// needs 2^32 bits of numbering space.
func Binary(rule *big.Int) (core.Rule, error) {
	if rule == nil || rule.Sign() < 0 {
		return nil, fmt.Errorf("%w: binary rule number must be a non-negative integer", core.ErrInvalidParameter)
	}
	return func(n core.Neighbourhood, _ core.Cell, _ int) (uint8, error) {
		idx, err := binaryIndex(n)
		if err != nil {
			return 0, err
		}
		return uint8(rule.Bit(idx)), nil
	}, nil
}
