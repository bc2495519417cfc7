package main

import (
	"math"
	"strings"

	aoc "aoc2024"
)

/*
want=126384

029A
980A
179A
456A
379A
*/
func (s solver) D21p1() any {
	return s.complexity(2)
}

// want=154115708116294
func (s solver) D21p2() any {
	return s.complexity(25)
}

func (s solver) complexity(robots int) int {
	memo := map[keypadMove]int{}
	total := 0
	s.ForLines(func(code string) {
		length := 0
		from := byte('A')
		for i := 0; i < len(code); i++ {
			length += padMoveCost(numericPad, from, code[i], robots, memo)
			from = code[i]
		}
		total += length * aoc.Int(strings.TrimSuffix(code, "A"))
	})
	return total
}

type keypad struct {
	keys map[byte]aoc.Pt
	gap  aoc.Pt
}

var numericPad = keypad{
	keys: map[byte]aoc.Pt{
		'7': {X: 0, Y: 0}, '8': {X: 1, Y: 0}, '9': {X: 2, Y: 0},
		'4': {X: 0, Y: 1}, '5': {X: 1, Y: 1}, '6': {X: 2, Y: 1},
		'1': {X: 0, Y: 2}, '2': {X: 1, Y: 2}, '3': {X: 2, Y: 2},
		'0': {X: 1, Y: 3}, 'A': {X: 2, Y: 3},
	},
	gap: aoc.Pt{X: 0, Y: 3},
}

var directionalPad = keypad{
	keys: map[byte]aoc.Pt{
		'^': {X: 1, Y: 0}, 'A': {X: 2, Y: 0},
		'<': {X: 0, Y: 1}, 'v': {X: 1, Y: 1}, '>': {X: 2, Y: 1},
	},
	gap: aoc.Pt{X: 0, Y: 0},
}

// paths returns the candidate button sequences for moving the arm from
// one key to another and pressing it. Only the two single-corner
// routes can be optimal, and a route whose corner lands on the gap is
// out.
func (k keypad) paths(from, to byte) []string {
	a, b := k.keys[from], k.keys[to]
	d := b.Sub(a)
	h := strings.Repeat(">", max(d.X, 0)) + strings.Repeat("<", max(-d.X, 0))
	v := strings.Repeat("v", max(d.Y, 0)) + strings.Repeat("^", max(-d.Y, 0))
	var out []string
	if (aoc.Pt{X: b.X, Y: a.Y}) != k.gap {
		out = append(out, h+v+"A")
	}
	if d.X != 0 && d.Y != 0 && (aoc.Pt{X: a.X, Y: b.Y}) != k.gap {
		out = append(out, v+h+"A")
	}
	return out
}

type keypadMove struct {
	from, to byte
	depth    int
}

// padMoveCost is the number of human button presses needed to move a
// robot arm from one key to another and press it, with depth
// directional keypads stacked above this one.
func padMoveCost(k keypad, from, to byte, depth int, memo map[keypadMove]int) int {
	if depth == 0 {
		return len(k.paths(from, to)[0])
	}
	key := keypadMove{from, to, depth}
	if v, ok := memo[key]; ok {
		return v
	}
	best := math.MaxInt
	for _, path := range k.paths(from, to) {
		cost := 0
		prev := byte('A')
		for i := 0; i < len(path); i++ {
			cost += padMoveCost(directionalPad, prev, path[i], depth-1, memo)
			prev = path[i]
		}
		if cost < best {
			best = cost
		}
	}
	memo[key] = best
	return best
}
