package main

import (
	"slices"

	aoc "aoc2024"
)

/*
want=11

3   4
4   3
2   5
1   3
3   9
3   3
*/
func (s solver) D1p1() any {
	left, right := s.locationLists()
	slices.Sort(left)
	slices.Sort(right)
	total := 0
	for i := range left {
		total += aoc.AbsDiff(left[i], right[i])
	}
	return total
}

// want=31
func (s solver) D1p2() any {
	left, right := s.locationLists()
	counts := aoc.Counts(right)
	total := 0
	for _, v := range left {
		total += v * counts[v]
	}
	return total
}

func (s solver) locationLists() (left, right []int) {
	s.ForLines(func(line string) {
		f := aoc.Fields(line)
		left = append(left, f[0])
		right = append(right, f[1])
	})
	return
}
