package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInts(t *testing.T) {
	assert.Equal(t, 42, Int(" 42\n"))
	assert.Equal(t, []int{3, 1, 4}, Fields("3  1 4"))
	assert.Equal(t, []int{1, 2, 3}, Digits("123"))
}

func TestNumDigits(t *testing.T) {
	tests := []struct {
		v, want int
	}{
		{0, 1},
		{7, 1},
		{10, 2},
		{99, 2},
		{12345, 5},
	}
	for _, tt := range tests {
		if got := NumDigits(tt.v); got != tt.want {
			t.Errorf("NumDigits(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestConcat(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{12, 345, 12345},
		{1, 0, 10},
		{0, 5, 5},
		{48, 6, 486},
	}
	for _, tt := range tests {
		if got := Concat(tt.a, tt.b); got != tt.want {
			t.Errorf("Concat(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCounts(t *testing.T) {
	got := Counts([]int{3, 3, 7, 3})
	assert.Equal(t, map[int]int{3: 3, 7: 1}, got)
}

func TestGCDLCM(t *testing.T) {
	assert.Equal(t, 6, GCD(12, 18))
	assert.Equal(t, 36, LCM(12, 18))
	assert.Equal(t, 60, LCM(4, 5, 6))
}

func TestPolygonBoundedPoints(t *testing.T) {
	// A 5x5 square: 16 interior and 20 boundary points.
	pts := []Pt{{0, 0}, {5, 0}, {5, 5}, {0, 5}, {0, 0}}
	assert.Equal(t, 20, PolygonPerimeter(pts))
	assert.Equal(t, 36, PolygonBoundedPoints(pts))
}
