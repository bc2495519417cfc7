package main

import (
	aoc "aoc2024"
)

/*
want=36

89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
*/
func (s solver) D10p1() any {
	g := aoc.ParseDigitGrid(s.Lines())
	total := 0
	for _, head := range aoc.Find(g, 0) {
		peaks := map[aoc.Pt]bool{}
		walkTrails(g, head, func(p aoc.Pt) { peaks[p] = true })
		total += len(peaks)
	}
	return total
}

// want=81
func (s solver) D10p2() any {
	g := aoc.ParseDigitGrid(s.Lines())
	total := 0
	for _, head := range aoc.Find(g, 0) {
		walkTrails(g, head, func(aoc.Pt) { total++ })
	}
	return total
}

// walkTrails follows every strictly +1 path from p, calling onPeak once
// per distinct way of reaching a 9.
func walkTrails(g aoc.Grid[int], p aoc.Pt, onPeak func(aoc.Pt)) {
	h := g.At(p)
	if h == 9 {
		onPeak(p)
		return
	}
	p.ForImmediateNeighbors(func(n aoc.Pt) bool {
		if v, ok := g.AtOk(n); ok && v == h+1 {
			walkTrails(g, n, onPeak)
		}
		return true
	})
}
