package main

import (
	"slices"

	aoc "aoc2024"
)

/*
want=2

7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
*/
func (s solver) D2p1() any {
	n := 0
	s.ForLines(func(line string) {
		if reportSafe(aoc.Fields(line)) {
			n++
		}
	})
	return n
}

// want=4
func (s solver) D2p2() any {
	n := 0
	s.ForLines(func(line string) {
		levels := aoc.Fields(line)
		if reportSafe(levels) {
			n++
			return
		}
		for i := range levels {
			if reportSafe(slices.Concat(levels[:i], levels[i+1:])) {
				n++
				return
			}
		}
	})
	return n
}

// reportSafe reports whether the levels are strictly monotonic with
// steps of 1 to 3.
func reportSafe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	inc := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if !inc {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}
