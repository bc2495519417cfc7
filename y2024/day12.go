package main

import (
	aoc "aoc2024"
)

/*
want=1930

RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
*/
func (s solver) D12p1() any {
	return s.fencePrice(regionPerimeter)
}

// want=1206
func (s solver) D12p2() any {
	return s.fencePrice(regionSides)
}

func (s solver) fencePrice(cost func(map[aoc.Pt]bool) int) int {
	g := aoc.ParseGrid(s.Lines())
	seen := map[aoc.Pt]bool{}
	total := 0
	g.All(func(p aoc.Pt, _ byte) bool {
		if seen[p] {
			return true
		}
		region := aoc.Region(g, p)
		for q := range region {
			seen[q] = true
		}
		total += len(region) * cost(region)
		return true
	})
	return total
}

func regionPerimeter(region map[aoc.Pt]bool) int {
	n := 0
	for p := range region {
		for _, d := range aoc.Directions {
			if !region[p.Step(d)] {
				n++
			}
		}
	}
	return n
}

// regionSides counts the region's corners, which equals its number of
// straight fence sides.
func regionSides(region map[aoc.Pt]bool) int {
	n := 0
	for p := range region {
		for _, d := range aoc.Directions {
			side := region[p.Step(d)]
			ahead := region[p.Step(d.Turn(true))]
			diag := region[p.Step(d).Step(d.Turn(true))]
			if !side && !ahead {
				n++ // convex corner
			}
			if side && ahead && !diag {
				n++ // concave corner
			}
		}
	}
	return n
}
