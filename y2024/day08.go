package main

import (
	aoc "aoc2024"
)

/*
want=14

............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
*/
func (s solver) D8p1() any {
	grid, freqs := s.antennas()
	antinodes := map[aoc.Pt]bool{}
	for _, pts := range freqs {
		forAntennaPairs(pts, func(a, b aoc.Pt) {
			for _, n := range []aoc.Pt{a.Mirror(b), b.Mirror(a)} {
				if grid.InBounds(n) {
					antinodes[n] = true
				}
			}
		})
	}
	return len(antinodes)
}

// want=34
func (s solver) D8p2() any {
	grid, freqs := s.antennas()
	antinodes := map[aoc.Pt]bool{}
	for _, pts := range freqs {
		forAntennaPairs(pts, func(a, b aoc.Pt) {
			// Every grid point collinear with the pair resonates,
			// so walk in unit lattice steps both ways.
			d := b.Sub(a)
			g := aoc.GCD(aoc.Abs(d.X), aoc.Abs(d.Y))
			step := aoc.Pt{X: d.X / g, Y: d.Y / g}
			for p := a; grid.InBounds(p); p = p.Add(step) {
				antinodes[p] = true
			}
			for p := a.Sub(step); grid.InBounds(p); p = p.Sub(step) {
				antinodes[p] = true
			}
		})
	}
	return len(antinodes)
}

func (s solver) antennas() (aoc.Grid[byte], map[byte][]aoc.Pt) {
	g := aoc.ParseGrid(s.Lines())
	freqs := map[byte][]aoc.Pt{}
	g.All(func(p aoc.Pt, v byte) bool {
		if v != '.' {
			freqs[v] = append(freqs[v], p)
		}
		return true
	})
	return g, freqs
}

func forAntennaPairs(pts []aoc.Pt, f func(a, b aoc.Pt)) {
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			f(pts[i], pts[j])
		}
	}
}
