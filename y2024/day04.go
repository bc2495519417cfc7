package main

import (
	aoc "aoc2024"
)

/*
want=18

MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
*/
func (s solver) D4p1() any {
	g := aoc.ParseGrid(s.Lines())
	count := 0
	g.All(func(p aoc.Pt, v byte) bool {
		if v != 'X' {
			return true
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if matchWord(g, p, aoc.Pt{X: dx, Y: dy}, "XMAS") {
					count++
				}
			}
		}
		return true
	})
	return count
}

// want=9
func (s solver) D4p2() any {
	g := aoc.ParseGrid(s.Lines())
	crossMAS := func(p, a, b aoc.Pt) bool {
		va, ok1 := g.AtOk(p.Add(a))
		vb, ok2 := g.AtOk(p.Add(b))
		return ok1 && ok2 && ((va == 'M' && vb == 'S') || (va == 'S' && vb == 'M'))
	}
	count := 0
	g.All(func(p aoc.Pt, v byte) bool {
		if v == 'A' &&
			crossMAS(p, aoc.Pt{X: -1, Y: -1}, aoc.Pt{X: 1, Y: 1}) &&
			crossMAS(p, aoc.Pt{X: -1, Y: 1}, aoc.Pt{X: 1, Y: -1}) {
			count++
		}
		return true
	})
	return count
}

func matchWord(g aoc.Grid[byte], p, d aoc.Pt, word string) bool {
	for i := 0; i < len(word); i++ {
		if v, ok := g.AtOk(p.Add(d.Scale(i))); !ok || v != word[i] {
			return false
		}
	}
	return true
}
