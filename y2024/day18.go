package main

import (
	"fmt"
	"log"
	"strings"

	aoc "aoc2024"
)

/*
want=22

5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
*/
func (s solver) D18p1() any {
	size, n := s.memoryParams()
	d, ok := memoryPathLen(s.fallingBytes()[:n], size)
	if !ok {
		log.Fatal("exit unreachable")
	}
	return d
}

// want=6,1
func (s solver) D18p2() any {
	size, n := s.memoryParams()
	bytes := s.fallingBytes()
	// The exit is reachable after n bytes; binary search for the
	// first byte that seals it off.
	lo, hi := n, len(bytes)
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if _, ok := memoryPathLen(bytes[:mid], size); ok {
			lo = mid
		} else {
			hi = mid
		}
	}
	p := bytes[hi-1]
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func (s solver) memoryParams() (size, bytes int) {
	if s.SampleMode {
		return 7, 12
	}
	return 71, 1024
}

// memoryPathLen is a BFS from the top-left to the bottom-right corner
// around the corrupted cells.
func memoryPathLen(corrupted []aoc.Pt, size int) (int, bool) {
	g := aoc.MakeGrid[byte](size, size)
	for _, p := range corrupted {
		g.Set(p, '#')
	}
	end := aoc.Pt{X: size - 1, Y: size - 1}
	dist := map[aoc.Pt]int{{}: 0}
	q := aoc.NewQueue(aoc.Pt{})
	found, d := false, 0
	q.While(func(p aoc.Pt) bool {
		if p == end {
			found, d = true, dist[p]
			return false
		}
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if v, ok := g.AtOk(n); ok && v != '#' {
				if _, seen := dist[n]; !seen {
					dist[n] = dist[p] + 1
					q.Push(n)
				}
			}
			return true
		})
		return true
	})
	return d, found
}

func (s solver) fallingBytes() []aoc.Pt {
	var out []aoc.Pt
	s.ForLines(func(line string) {
		x, y, _ := strings.Cut(line, ",")
		out = append(out, aoc.Pt{X: aoc.Int(x), Y: aoc.Int(y)})
	})
	return out
}
