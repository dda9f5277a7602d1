// Package stats computes information-theoretic complexity measures over
// a completed evolution history.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/swifmaneum/cellpylib/pkg/core"
)

// symbolSpace is the number of distribution bins; cell states always
// fit in [0, MaxStates).
const symbolSpace = core.MaxStates

func validateHistory(h core.History) error {
	if len(h) == 0 {
		return fmt.Errorf("%w: empty history", core.ErrInvalidParameter)
	}
	for _, g := range h {
		if g == nil || !g.SameShape(h[0]) {
			return fmt.Errorf("%w: history grids disagree on shape", core.ErrShapeMismatch)
		}
		for _, v := range g.Cells() {
			if int(v) >= symbolSpace {
				return fmt.Errorf("%w: cell state %d outside the alphabet", core.ErrInvalidParameter, v)
			}
		}
	}
	return nil
}

// entropyBits converts a count vector into a probability distribution
// and returns its Shannon entropy in bits. Zero-count symbols
// contribute nothing (the 0*log(0)=0 convention), so constant histories
// come out at exactly 0 instead of diverging.
func entropyBits(counts []float64, total float64) float64 {
	for i, c := range counts {
		counts[i] = c / total
	}
	return stat.Entropy(counts) / math.Ln2
}

// AverageCellEntropy estimates, for every cell position, the empirical
// distribution of the symbols it takes across the whole time history,
// computes the base-2 Shannon entropy of that distribution and averages
// over all positions. The result lies in [0, log2(k)].
func AverageCellEntropy(h core.History) (float64, error) {
	if err := validateHistory(h); err != nil {
		return 0, err
	}
	cells := len(h[0].Cells())
	steps := float64(len(h))

	counts := make([]float64, symbolSpace)
	var total float64
	for p := 0; p < cells; p++ {
		for i := range counts {
			counts[i] = 0
		}
		for _, g := range h {
			counts[g.Cells()[p]]++
		}
		total += entropyBits(counts, steps)
	}
	return total / float64(cells), nil
}

// AverageMutualInformation estimates, for every cell position, the
// mutual information between the cell's state at time t and at time
// t+temporalDistance over all valid t, in bits, and averages over all
// positions. Computed as I(X;Y) = H(X) + H(Y) - H(X,Y), which realises
// the 0*log(0)=0 convention for empty joint entries; float round-off is
// clamped so the result is never negative.
func AverageMutualInformation(h core.History, temporalDistance int) (float64, error) {
	if err := validateHistory(h); err != nil {
		return 0, err
	}
	if temporalDistance < 1 || temporalDistance >= len(h) {
		return 0, fmt.Errorf("%w: temporal distance %d for a history of %d grids", core.ErrInvalidParameter, temporalDistance, len(h))
	}
	cells := len(h[0].Cells())
	pairs := float64(len(h) - temporalDistance)

	px := make([]float64, symbolSpace)
	py := make([]float64, symbolSpace)
	joint := make([]float64, symbolSpace*symbolSpace)

	var total float64
	for p := 0; p < cells; p++ {
		for i := range px {
			px[i], py[i] = 0, 0
		}
		for i := range joint {
			joint[i] = 0
		}
		for t := 0; t < len(h)-temporalDistance; t++ {
			x := h[t].Cells()[p]
			y := h[t+temporalDistance].Cells()[p]
			px[x]++
			py[y]++
			joint[int(x)*symbolSpace+int(y)]++
		}
		mi := entropyBits(px, pairs) + entropyBits(py, pairs) - entropyBits(joint, pairs)
		if mi < 0 {
			mi = 0
		}
		total += mi
	}
	return total / float64(cells), nil
}
