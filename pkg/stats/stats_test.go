package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/swifmaneum/cellpylib/pkg/ca"
	"github.com/swifmaneum/cellpylib/pkg/core"
	"github.com/swifmaneum/cellpylib/pkg/rules"
)

const tolerance = 1e-9

func historyFromRows(t *testing.T, rows ...[]uint8) core.History {
	t.Helper()
	var h core.History
	for _, row := range rows {
		g, err := core.NewGridFromCells(len(row), 1, row)
		if err != nil {
			t.Fatal(err)
		}
		h = append(h, g)
	}
	return h
}

func TestAverageCellEntropyConstantHistory(t *testing.T) {
	h := historyFromRows(t,
		[]uint8{1, 0, 1, 0},
		[]uint8{1, 0, 1, 0},
		[]uint8{1, 0, 1, 0},
	)
	got, err := AverageCellEntropy(h)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Fatalf("entropy of a constant history = %v, want exactly 0", got)
	}
}

func TestAverageCellEntropyUniformBinary(t *testing.T) {
	// Every cell spends half its time in each state: entropy is 1 bit.
	h := historyFromRows(t,
		[]uint8{0, 1, 0, 1},
		[]uint8{1, 0, 1, 0},
	)
	got, err := AverageCellEntropy(h)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-1) > tolerance {
		t.Fatalf("entropy = %v, want 1 bit", got)
	}
}

func TestAverageCellEntropyBounds(t *testing.T) {
	rng := core.NewRNG(17)
	k := 5
	table, _, _, err := rules.RandomTable(rules.TableConfig{Lambda: 0.7, K: k, R: 1}, rng)
	if err != nil {
		t.Fatal(err)
	}
	hist, _ := ca.InitRandom(64, k, rng)
	hist, err = ca.Evolve(hist, 50, 1, rules.Table(table), true)
	if err != nil {
		t.Fatal(err)
	}
	got, err := AverageCellEntropy(hist)
	if err != nil {
		t.Fatal(err)
	}
	if got < 0 || got > math.Log2(float64(k)) {
		t.Fatalf("entropy %v outside [0, log2(%d)]", got, k)
	}
}

func TestMutualInformationOfCopyProcess(t *testing.T) {
	// Each cell's next state is an exact copy of its current one, so the
	// mutual information equals the cell's marginal entropy.
	h := historyFromRows(t,
		[]uint8{0, 1, 2, 0},
		[]uint8{0, 1, 2, 0},
		[]uint8{0, 1, 2, 0},
		[]uint8{0, 1, 2, 0},
	)
	mi, err := AverageMutualInformation(h, 1)
	if err != nil {
		t.Fatal(err)
	}
	entropy, err := AverageCellEntropy(h)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mi-entropy) > tolerance {
		t.Fatalf("MI of a copy process = %v, want the marginal entropy %v", mi, entropy)
	}
}

func TestMutualInformationAlternatingCopy(t *testing.T) {
	// A deterministic alternation is still a function of the previous
	// state: one bit of shared information per cell.
	h := historyFromRows(t,
		[]uint8{0, 1},
		[]uint8{1, 0},
		[]uint8{0, 1},
		[]uint8{1, 0},
		[]uint8{0, 1},
	)
	mi, err := AverageMutualInformation(h, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mi-1) > tolerance {
		t.Fatalf("MI = %v, want 1 bit", mi)
	}
}

func TestMutualInformationNonNegative(t *testing.T) {
	rng := core.NewRNG(23)
	table, _, _, err := rules.RandomTable(rules.TableConfig{Lambda: 0.9, K: 3, R: 1}, rng)
	if err != nil {
		t.Fatal(err)
	}
	hist, _ := ca.InitRandom(48, 3, rng)
	hist, err = ca.Evolve(hist, 40, 1, rules.Table(table), true)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range []int{1, 2, 5} {
		mi, err := AverageMutualInformation(hist, d)
		if err != nil {
			t.Fatal(err)
		}
		if mi < 0 {
			t.Fatalf("MI at distance %d = %v, want >= 0", d, mi)
		}
	}
}

func TestStatsRejectBadInput(t *testing.T) {
	if _, err := AverageCellEntropy(nil); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("empty history err = %v, want ErrInvalidParameter", err)
	}

	h := historyFromRows(t, []uint8{0, 1}, []uint8{1, 0})
	if _, err := AverageMutualInformation(h, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("distance 0 err = %v, want ErrInvalidParameter", err)
	}
	if _, err := AverageMutualInformation(h, 2); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("distance past history err = %v, want ErrInvalidParameter", err)
	}

	short, _ := core.NewGrid(3, 1)
	long, _ := core.NewGrid(4, 1)
	if _, err := AverageCellEntropy(core.History{short, long}); !errors.Is(err, core.ErrShapeMismatch) {
		t.Errorf("mismatched shapes err = %v, want ErrShapeMismatch", err)
	}
}
