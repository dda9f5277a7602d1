package view

import (
	"strings"
	"testing"

	"github.com/swifmaneum/cellpylib/pkg/core"
)

// fixedSim is a static 2x2 board for renderer tests.
type fixedSim struct {
	cells []uint8
	steps int
}

func (s *fixedSim) Name() string    { return "fixed" }
func (s *fixedSim) Size() core.Size { return core.Size{W: 2, H: 2} }
func (s *fixedSim) States() int     { return 3 }
func (s *fixedSim) Reset(int64)     {}
func (s *fixedSim) Step()           { s.steps++ }
func (s *fixedSim) Cells() []uint8  { return s.cells }

func TestFrameLayout(t *testing.T) {
	s := &fixedSim{cells: []uint8{0, 1, 2, 0}}
	out := frame(s, 3)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("frame has %d lines, want 2 rows + footer", len(lines))
	}
	if !strings.Contains(lines[2], "step 3") {
		t.Fatalf("footer %q missing step counter", lines[2])
	}
	if !strings.Contains(lines[2], "k=3") {
		t.Fatalf("footer %q missing alphabet size", lines[2])
	}
	// Quiescent cells render as blank space.
	if !strings.HasPrefix(lines[0], "  ") {
		t.Fatalf("row %q should start with a blank cell", lines[0])
	}

	// Rendering reads the cells without touching them.
	want := []uint8{0, 1, 2, 0}
	for i, v := range want {
		if s.cells[i] != v {
			t.Fatal("frame mutated the cell buffer")
		}
	}
}

func TestConsoleRunStepsSim(t *testing.T) {
	s := &fixedSim{cells: []uint8{0, 0, 0, 0}}
	var b strings.Builder
	NewConsole(&b, 0).Run(s, 4)
	if s.steps != 4 {
		t.Fatalf("sim stepped %d times, want 4", s.steps)
	}
	if !strings.Contains(b.String(), "step 4") {
		t.Fatal("final frame missing from output")
	}
}
