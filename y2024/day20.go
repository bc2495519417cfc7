package main

import (
	aoc "aoc2024"
)

/*
want=0

###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
*/
func (s solver) D20p1() any {
	return countCheats(aoc.ParseGrid(s.Lines()), 2, 100)
}

// want=0
func (s solver) D20p2() any {
	return countCheats(aoc.ParseGrid(s.Lines()), 20, 100)
}

// countCheats counts pairs of track cells within cheat manhattan
// distance of each other; the saving is the track distance between
// them less the cheat itself, and must reach minSaving.
func countCheats(g aoc.Grid[byte], cheat, minSaving int) int {
	path := trackPath(g)
	n := 0
	for i, p := range path {
		for j := i + minSaving; j < len(path); j++ {
			md := p.MDist(path[j])
			if md <= cheat && j-i-md >= minSaving {
				n++
			}
		}
	}
	return n
}

// trackPath returns the race track cells in order from S to E. The
// track is a single corridor, so each cell has exactly one unvisited
// neighbor.
func trackPath(g aoc.Grid[byte]) []aoc.Pt {
	start := aoc.FindOne(g, byte('S'))
	path := []aoc.Pt{start}
	seen := map[aoc.Pt]bool{start: true}
	for p := start; g.At(p) != 'E'; {
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if v, ok := g.AtOk(n); ok && v != '#' && !seen[n] {
				seen[n] = true
				path = append(path, n)
				p = n
				return false
			}
			return true
		})
	}
	return path
}
