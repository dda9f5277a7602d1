package rules

import (
	"fmt"
	"math/big"

	"github.com/swifmaneum/cellpylib/pkg/core"
)

// Totalistic returns the k-color totalistic rule with the given code.
// The output for a neighbourhood depends only on its cell sum s: it is
// digit s of the code written in base k, counting from the least
// significant digit (Wolfram's totalistic code convention), zero-padded
// across the whole sum range [0, (k-1)*window]. The digit expansion is
// computed once per observed window size and cached inside the rule.
func Totalistic(k int, code *big.Int) (core.Rule, error) {
	if k < core.MinStates || k > core.MaxStates {
		return nil, fmt.Errorf("%w: k=%d outside [%d, %d]", core.ErrInvalidParameter, k, core.MinStates, core.MaxStates)
	}
	if code == nil || code.Sign() < 0 {
		return nil, fmt.Errorf("%w: totalistic code must be a non-negative integer", core.ErrInvalidParameter)
	}
	digitsByWindow := make(map[int][]uint8)
	return func(n core.Neighbourhood, _ core.Cell, _ int) (uint8, error) {
		digits, ok := digitsByWindow[len(n)]
		if !ok {
			var err error
			digits, err = baseKDigits(code, k, (k-1)*len(n)+1)
			if err != nil {
				return 0, err
			}
			digitsByWindow[len(n)] = digits
		}
		s := 0
		for _, v := range n {
			s += int(v)
		}
		if s >= len(digits) {
			return 0, fmt.Errorf("%w: neighbourhood sum %d exceeds alphabet range", core.ErrInvalidParameter, s)
		}
		return digits[s], nil
	}, nil
}

// baseKDigits expands code in base k, least significant digit first,
// zero-padded to count digits.
func baseKDigits(code *big.Int, k, count int) ([]uint8, error) {
	digits := make([]uint8, count)
	q := new(big.Int).Set(code)
	base := big.NewInt(int64(k))
	m := new(big.Int)
	for i := 0; i < count && q.Sign() > 0; i++ {
		q.DivMod(q, base, m)
		digits[i] = uint8(m.Int64())
	}
	if q.Sign() > 0 {
		return nil, fmt.Errorf("%w: totalistic code needs more than %d base-%d digits", core.ErrInvalidParameter, count, k)
	}
	return digits, nil
}
