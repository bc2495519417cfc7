package main

import (
	aoc "aoc2024"
)

/*
want=41

....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
*/
func (s solver) D6p1() any {
	g := aoc.ParseGrid(s.Lines())
	start := aoc.FindOne(g, byte('^'))
	visited, _ := patrol(g, start, aoc.Pt{X: -1, Y: -1})
	return len(visited)
}

// want=6
func (s solver) D6p2() any {
	g := aoc.ParseGrid(s.Lines())
	start := aoc.FindOne(g, byte('^'))
	// Only positions on the unobstructed route can change it.
	visited, _ := patrol(g, start, aoc.Pt{X: -1, Y: -1})
	count := 0
	for p := range visited {
		if p == start {
			continue
		}
		if _, loops := patrol(g, start, p); loops {
			count++
		}
	}
	return count
}

type guardState struct {
	p aoc.Pt
	d aoc.Direction
}

// patrol walks the guard from start until it leaves the grid or
// revisits a position with the same heading. extra is treated as one
// additional obstruction.
func patrol(g aoc.Grid[byte], start, extra aoc.Pt) (visited map[aoc.Pt]bool, loops bool) {
	visited = map[aoc.Pt]bool{}
	seen := map[guardState]bool{}
	p, d := start, aoc.Up
	for {
		st := guardState{p, d}
		if seen[st] {
			return visited, true
		}
		seen[st] = true
		visited[p] = true
		next := p.Step(d)
		v, ok := g.AtOk(next)
		if !ok {
			return visited, false
		}
		if v == '#' || next == extra {
			d = d.Turn(true)
			continue
		}
		p = next
	}
}
