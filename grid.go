package aoc

import (
	"log"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - q.X, p.Y - q.Y}
}

func (p Pt2[T]) Scale(k T) Pt2[T] {
	return Pt2[T]{p.X * k, p.Y * k}
}

func (p Pt2[T]) Dot(q Pt2[T]) T {
	return p.X*q.X + p.Y*q.Y
}

// Mirror returns the reflection of p across q.
func (p Pt2[T]) Mirror(q Pt2[T]) Pt2[T] {
	return Pt2[T]{2*q.X - p.X, 2*q.Y - p.Y}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

func (p Pt2[T]) Step(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	}
	return p
}

// ForImmediateNeighbors calls f with the four orthogonal neighbors of p
// until f returns false.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

// ForNeighbors calls f with all eight neighbors of p until f returns
// false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var Directions = [4]Direction{Up, Right, Down, Left}

// DirFromRune maps ^ > v < to a Direction.
func DirFromRune(r rune) Direction {
	switch r {
	case '^':
		return Up
	case '>':
		return Right
	case 'v':
		return Down
	case '<':
		return Left
	}
	log.Fatalf("bad direction %q", r)
	panic("unreachable")
}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) TurnAround() Direction {
	return (d + 2) % 4
}

// Delta returns the unit step of d. Y grows downward, matching grid row
// order.
func (d Direction) Delta() Pt {
	return Pt{}.Step(d)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Grid is a rectangular field of values indexed by Pt, rows first.
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) InBounds(p Pt) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// All calls f for every cell until f returns false.
func (g Grid[T]) All(f func(Pt, T) (keepGoing bool)) {
	for y, row := range g {
		for x, v := range row {
			if !f(Pt{x, y}, v) {
				return
			}
		}
	}
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// FillGrid returns an x-by-y grid with every cell set to v.
func FillGrid[T any](x, y int, v T) Grid[T] {
	out := MakeGrid[T](x, y)
	for _, row := range out {
		for i := range row {
			row[i] = v
		}
	}
	return out
}

// ParseGrid reads lines into a byte grid.
func ParseGrid(lines []string) Grid[byte] {
	out := make(Grid[byte], len(lines))
	for i, line := range lines {
		out[i] = []byte(line)
	}
	return out
}

// ParseDigitGrid reads lines of digits into an int grid.
func ParseDigitGrid(lines []string) Grid[int] {
	out := make(Grid[int], len(lines))
	for i, line := range lines {
		out[i] = Digits(line)
	}
	return out
}

// Find returns the positions of every cell equal to v.
func Find[T comparable](g Grid[T], v T) []Pt {
	var out []Pt
	g.All(func(p Pt, c T) bool {
		if c == v {
			out = append(out, p)
		}
		return true
	})
	return out
}

// FindOne returns the position of the single cell equal to v.
func FindOne[T comparable](g Grid[T], v T) Pt {
	pts := Find(g, v)
	if len(pts) != 1 {
		log.Fatalf("found %d cells = %v; want exactly one", len(pts), v)
	}
	return pts[0]
}

// Region returns the orthogonally connected set of cells around start
// holding the same value as start.
func Region[T comparable](g Grid[T], start Pt) map[Pt]bool {
	target := g.At(start)
	region := make(map[Pt]bool)
	q := NewQueue(start)
	q.While(func(p Pt) bool {
		if region[p] {
			return true
		}
		region[p] = true
		p.ForImmediateNeighbors(func(n Pt) bool {
			if v, ok := g.AtOk(n); ok && v == target && !region[n] {
				q.Push(n)
			}
			return true
		})
		return true
	})
	return region
}

// FloodFill replaces every empty cell orthogonally reachable from start
// with fill, and returns the number of cells changed.
func FloodFill[T comparable](g Grid[T], start Pt, empty, fill T) int {
	n := 0
	if v, ok := g.AtOk(start); !ok || v != empty {
		return n
	}
	q := NewQueue(start)
	g.Set(start, fill)
	n++
	q.While(func(p Pt) bool {
		p.ForImmediateNeighbors(func(n2 Pt) bool {
			if v, ok := g.AtOk(n2); ok && v == empty {
				g.Set(n2, fill)
				n++
				q.Push(n2)
			}
			return true
		})
		return true
	})
	return n
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

func (g Grid[T]) RotateCounterClockwiseInto(out [][]T) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[y][size.Y-1-x] = g[x][y]
		}
	}
}

func (g Grid[T]) RotateCounterClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.RotateCounterClockwiseInto(out)
	return out
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a stable snapshot hash of the grid's contents, useful
// for cycle detection in simulations.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// DumpGrid renders a byte grid as newline-separated rows.
func DumpGrid(g Grid[byte]) string {
	var sb strings.Builder
	for i, row := range g {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}
