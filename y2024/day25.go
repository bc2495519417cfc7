package main

import (
	aoc "aoc2024"
)

/*
want=3

#####
.####
.####
.####
.#.#.
.#...
.....

#####
##.##
.#.##
...##
...#.
...#.
.....

.....
#....
#....
#...#
#.#.#
#.###
#####

.....
.....
#.#..
###..
###.#
###.#
#####

.....
.....
.....
#....
#.#..
#.#.#
#####
*/
func (s solver) D25p1() any {
	var locks, keys [][]int
	for _, para := range s.Paragraphs() {
		g := aoc.ParseGrid(para)
		heights := pinHeights(g)
		// Locks fill their top row, keys their bottom row.
		if g.At(aoc.Pt{}) == '#' {
			locks = append(locks, heights)
		} else {
			keys = append(keys, heights)
		}
	}

	n := 0
	for _, l := range locks {
		for _, k := range keys {
			fits := true
			for i := range l {
				// Column counts include the base rows, so 7
				// rows is the overlap limit.
				if l[i]+k[i] > 7 {
					fits = false
					break
				}
			}
			if fits {
				n++
			}
		}
	}
	return n
}

// pinHeights counts the filled cells in each column, base row included.
func pinHeights(g aoc.Grid[byte]) []int {
	heights := make([]int, g.Size().X)
	g.All(func(p aoc.Pt, v byte) bool {
		if v == '#' {
			heights[p.X]++
		}
		return true
	})
	return heights
}
