package ca

import (
	"testing"

	"github.com/swifmaneum/cellpylib/pkg/core"
)

func gridFrom(t *testing.T, w, h int, cells []uint8) *core.Grid {
	t.Helper()
	g, err := core.NewGridFromCells(w, h, cells)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNeighbourhood1DPeriodicity(t *testing.T) {
	g := gridFrom(t, 5, 1, []uint8{0, 1, 2, 3, 4})
	tests := []struct {
		x, r int
		want []uint8
	}{
		{0, 1, []uint8{4, 0, 1}},
		{0, 2, []uint8{3, 4, 0, 1, 2}},
		{4, 1, []uint8{3, 4, 0}},
		{2, 2, []uint8{0, 1, 2, 3, 4}},
	}
	for _, tc := range tests {
		got, err := Neighbourhood1D(g, tc.x, tc.r)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("x=%d r=%d: length %d, want %d", tc.x, tc.r, len(got), len(tc.want))
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("x=%d r=%d: got %v, want %v", tc.x, tc.r, got, tc.want)
				break
			}
		}
	}
}

func TestNeighbourhood2DMoore(t *testing.T) {
	cells := make([]uint8, 25)
	for i := range cells {
		cells[i] = uint8(i)
	}
	g := gridFrom(t, 5, 5, cells)

	got, err := Neighbourhood2D(g, 0, 0, 1, Moore)
	if err != nil {
		t.Fatal(err)
	}
	// Corner cell wraps to the opposite edges, row-major order.
	want := []uint8{24, 20, 21, 4, 0, 1, 9, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Moore corner neighbourhood = %v, want %v", got, want)
		}
	}
}

func TestNeighbourhood2DVonNeumann(t *testing.T) {
	cells := make([]uint8, 25)
	for i := range cells {
		cells[i] = uint8(i)
	}
	g := gridFrom(t, 5, 5, cells)

	got, err := Neighbourhood2D(g, 2, 2, 2, VonNeumann)
	if err != nil {
		t.Fatal(err)
	}
	// Manhattan distance <= 2, diagonal-only corners excluded.
	want := []uint8{2, 6, 7, 8, 10, 11, 12, 13, 14, 16, 17, 18, 22}
	if len(got) != len(want) {
		t.Fatalf("von Neumann r=2 has %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("von Neumann neighbourhood = %v, want %v", got, want)
		}
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"Moore", Moore, false},
		{"moore", Moore, false},
		{"von Neumann", VonNeumann, false},
		{"von-neumann", VonNeumann, false},
		{"hexagonal", Moore, true},
	}
	for _, tc := range tests {
		got, err := ParseShape(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseShape(%q) err = %v", tc.in, err)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseShape(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
