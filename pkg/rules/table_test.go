package rules

import (
	"errors"
	"testing"

	"github.com/swifmaneum/cellpylib/pkg/core"
)

func TestRandomTableCoversAllTuples(t *testing.T) {
	table, _, _, err := RandomTable(TableConfig{Lambda: 0.5, K: 3, R: 1}, core.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 27 {
		t.Fatalf("table has %d entries, want 27", len(table))
	}

	// Round-trip: the table rule returns exactly the stored entry for
	// every enumerated tuple.
	rule := Table(table)
	tuple := make(core.Neighbourhood, 3)
	for i := 0; i < 27; i++ {
		tuple[0], tuple[1], tuple[2] = uint8(i/9), uint8(i/3%3), uint8(i%3)
		got, err := rule(tuple, core.Cell{}, 0)
		if err != nil {
			t.Fatal(err)
		}
		if want := table[tuple.Key()]; got != want {
			t.Fatalf("lookup %v = %d, want %d", tuple, got, want)
		}
		if got > 2 {
			t.Fatalf("output %d outside alphabet", got)
		}
	}
}

func TestRandomTableLambdaZeroIsAllQuiescent(t *testing.T) {
	table, actual, quiescent, err := RandomTable(TableConfig{Lambda: 0, K: 3, R: 1}, core.NewRNG(7))
	if err != nil {
		t.Fatal(err)
	}
	if quiescent != 0 {
		t.Fatalf("quiescent state = %d, want 0", quiescent)
	}
	if actual != 0 {
		t.Fatalf("actual lambda = %v, want 0", actual)
	}
	for key, v := range table {
		if v != quiescent {
			t.Fatalf("entry %v = %d, want quiescent", []byte(key), v)
		}
	}
}

func TestRandomTableLambdaOne(t *testing.T) {
	table, actual, _, err := RandomTable(TableConfig{Lambda: 1, K: 4, R: 1}, core.NewRNG(7))
	if err != nil {
		t.Fatal(err)
	}
	if actual != 1 {
		t.Fatalf("actual lambda = %v, want 1", actual)
	}
	for key, v := range table {
		if v == 0 {
			t.Fatalf("entry %v quiescent despite lambda=1", []byte(key))
		}
	}
}

func TestRandomTableStrongQuiescence(t *testing.T) {
	table, actual, quiescent, err := RandomTable(TableConfig{Lambda: 1, K: 2, R: 1, StrongQuiescence: true}, core.NewRNG(3))
	if err != nil {
		t.Fatal(err)
	}
	if got := table[string([]byte{0, 0, 0})]; got != quiescent {
		t.Fatalf("all-quiescent tuple maps to %d, want %d", got, quiescent)
	}
	// One of eight entries was forced back to quiescent.
	if want := 7.0 / 8.0; actual != want {
		t.Fatalf("actual lambda = %v, want %v", actual, want)
	}
}

func TestRandomTableIsotropy(t *testing.T) {
	table, _, _, err := RandomTable(TableConfig{Lambda: 0.5, K: 3, R: 2, Isotropic: true}, core.NewRNG(11))
	if err != nil {
		t.Fatal(err)
	}
	for key, v := range table {
		rev := []byte(key)
		for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
			rev[i], rev[j] = rev[j], rev[i]
		}
		if table[string(rev)] != v {
			t.Fatalf("mirrored tuple of %v maps to %d, want %d", []byte(key), table[string(rev)], v)
		}
	}
}

func TestRandomTableDeterministic(t *testing.T) {
	cfg := TableConfig{Lambda: 0.4, K: 3, R: 1, StrongQuiescence: true}
	a, la, _, err := RandomTable(cfg, core.NewRNG(42))
	if err != nil {
		t.Fatal(err)
	}
	b, lb, _, err := RandomTable(cfg, core.NewRNG(42))
	if err != nil {
		t.Fatal(err)
	}
	if la != lb {
		t.Fatalf("achieved lambdas differ: %v vs %v", la, lb)
	}
	for key, v := range a {
		if b[key] != v {
			t.Fatal("same seed produced different tables")
		}
	}
}

func TestRandomTableRejectsBadInput(t *testing.T) {
	rng := core.NewRNG(0)
	tests := []struct {
		name string
		cfg  TableConfig
	}{
		{"k too small", TableConfig{Lambda: 0.5, K: 1, R: 1}},
		{"k too large", TableConfig{Lambda: 0.5, K: 37, R: 1}},
		{"r too small", TableConfig{Lambda: 0.5, K: 2, R: 0}},
		{"lambda negative", TableConfig{Lambda: -0.1, K: 2, R: 1}},
		{"lambda above one", TableConfig{Lambda: 1.1, K: 2, R: 1}},
		{"table too large", TableConfig{Lambda: 0.5, K: 36, R: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, err := RandomTable(tt.cfg, rng); !errors.Is(err, core.ErrInvalidParameter) {
				t.Errorf("err = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestTableLookupMiss(t *testing.T) {
	table := RuleTable{string([]byte{0, 0, 0}): 1}
	if _, err := Table(table)(core.Neighbourhood{0, 1, 0}, core.Cell{}, 0); !errors.Is(err, core.ErrLookupFailure) {
		t.Fatalf("err = %v, want ErrLookupFailure", err)
	}
	if v, ok := table.Lookup(core.Neighbourhood{0, 0, 0}); !ok || v != 1 {
		t.Fatalf("Lookup = (%d, %v), want (1, true)", v, ok)
	}
}
