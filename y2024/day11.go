package main

import (
	aoc "aoc2024"
)

/*
want=55312

125 17
*/
func (s solver) D11p1() any {
	return s.countStones(25)
}

// want=65601038650482
func (s solver) D11p2() any {
	return s.countStones(75)
}

// countStones tracks stone values by multiplicity; the line's order
// never matters and values repeat heavily.
func (s solver) countStones(blinks int) int {
	stones := aoc.Counts(aoc.Fields(string(s.Input())))
	for i := 0; i < blinks; i++ {
		next := make(map[int]int, len(stones))
		for v, n := range stones {
			for _, nv := range blink(v) {
				next[nv] += n
			}
		}
		stones = next
	}
	total := 0
	for _, n := range stones {
		total += n
	}
	return total
}

func blink(v int) []int {
	switch d := aoc.NumDigits(v); {
	case v == 0:
		return []int{1}
	case d%2 == 0:
		f := 1
		for i := 0; i < d/2; i++ {
			f *= 10
		}
		return []int{v / f, v % f}
	default:
		return []int{v * 2024}
	}
}
