package aoc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPtOps(t *testing.T) {
	a := Pt{2, 3}
	b := Pt{5, 7}
	assert.Equal(t, Pt{7, 10}, a.Add(b))
	assert.Equal(t, Pt{-3, -4}, a.Sub(b))
	assert.Equal(t, Pt{4, 6}, a.Scale(2))
	assert.Equal(t, 31, a.Dot(b))
	assert.Equal(t, 7, a.MDist(b))

	// Mirroring a across b lands the same distance beyond b.
	m := a.Mirror(b)
	assert.Equal(t, Pt{8, 11}, m)
	assert.Equal(t, a.MDist(b), b.MDist(m))
}

func TestDirections(t *testing.T) {
	tests := []struct {
		d     Direction
		right Direction
		left  Direction
		delta Pt
	}{
		{Up, Right, Left, Pt{0, -1}},
		{Right, Down, Up, Pt{1, 0}},
		{Down, Left, Right, Pt{0, 1}},
		{Left, Up, Down, Pt{-1, 0}},
	}
	for _, tt := range tests {
		if got := tt.d.Turn(true); got != tt.right {
			t.Errorf("%v.Turn(true) = %v, want %v", tt.d, got, tt.right)
		}
		if got := tt.d.Turn(false); got != tt.left {
			t.Errorf("%v.Turn(false) = %v, want %v", tt.d, got, tt.left)
		}
		if got := tt.d.Delta(); got != tt.delta {
			t.Errorf("%v.Delta() = %v, want %v", tt.d, got, tt.delta)
		}
		if got := tt.d.TurnAround().TurnAround(); got != tt.d {
			t.Errorf("%v.TurnAround().TurnAround() = %v", tt.d, got)
		}
		if got := DirFromRune([]rune(tt.d.String())[0]); got != tt.d {
			t.Errorf("DirFromRune(%v) = %v", tt.d, got)
		}
	}
}

func TestParseGrid(t *testing.T) {
	g := ParseGrid([]string{
		"ab",
		"cd",
	})
	assert.Equal(t, Pt{2, 2}, g.Size())
	assert.Equal(t, byte('c'), g.At(Pt{0, 1}))
	assert.True(t, g.InBounds(Pt{1, 1}))
	assert.False(t, g.InBounds(Pt{2, 0}))

	if _, ok := g.AtOk(Pt{0, -1}); ok {
		t.Error("AtOk out of bounds returned ok")
	}

	assert.Equal(t, "ab\ncd", DumpGrid(g))

	var empty Grid[byte]
	assert.False(t, empty.InBounds(Pt{}))
	assert.Equal(t, Pt{}, empty.Size())
}

func TestFind(t *testing.T) {
	g := ParseGrid([]string{
		".x.",
		"x.x",
	})
	want := []Pt{{1, 0}, {0, 1}, {2, 1}}
	if diff := cmp.Diff(want, Find(g, byte('x'))); diff != "" {
		t.Errorf("Find mismatch (-want +got):\n%s", diff)
	}

	g2 := ParseGrid([]string{"..@.."})
	assert.Equal(t, Pt{2, 0}, FindOne(g2, byte('@')))
}

func TestRegion(t *testing.T) {
	g := ParseGrid([]string{
		"AAB",
		"ABB",
		"AAA",
	})
	r := Region(g, Pt{0, 0})
	assert.Len(t, r, 6)
	assert.True(t, r[Pt{2, 2}])
	assert.False(t, r[Pt{2, 0}])
}

func TestFloodFill(t *testing.T) {
	g := ParseGrid([]string{
		"..#.",
		".##.",
		"....",
	})
	n := FloodFill(g, Pt{0, 0}, byte('.'), byte('O'))
	assert.Equal(t, 9, n)
	assert.Equal(t, strings.Join([]string{
		"OO#O",
		"O##O",
		"OOOO",
	}, "\n"), DumpGrid(g))

	// Start on a wall fills nothing.
	assert.Equal(t, 0, FloodFill(g, Pt{2, 0}, byte('.'), byte('O')))
}

func TestTranspose(t *testing.T) {
	g := ParseGrid([]string{
		"abc",
		"def",
	})
	want := ParseGrid([]string{
		"ad",
		"be",
		"cf",
	})
	if diff := cmp.Diff(want, g.Transpose()); diff != "" {
		t.Errorf("Transpose mismatch (-want +got):\n%s", diff)
	}
}

func TestGridHash(t *testing.T) {
	g1 := ParseGrid([]string{"ab", "cd"})
	g2 := ParseGrid([]string{"ab", "cd"})
	g3 := ParseGrid([]string{"ab", "ce"})
	assert.Equal(t, g1.Hash(), g2.Hash())
	assert.NotEqual(t, g1.Hash(), g3.Hash())
}
