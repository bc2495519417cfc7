package main

import (
	"math"

	aoc "aoc2024"
)

/*
want=7036

###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
*/
func (s solver) D16p1() any {
	best, _ := s.raceMaze()
	return best
}

// want=45
func (s solver) D16p2() any {
	_, tiles := s.raceMaze()
	return tiles
}

type reindeerState struct {
	p aoc.Pt
	d aoc.Direction
}

// raceMaze runs Dijkstra over (position, heading) states, stepping for
// 1 point and turning for 1000, and returns the best score plus the
// number of tiles lying on any best path.
func (s solver) raceMaze() (int, int) {
	g := aoc.ParseGrid(s.Lines())
	start := aoc.FindOne(g, byte('S'))
	end := aoc.FindOne(g, byte('E'))

	dist := map[reindeerState]int{}
	pq := aoc.MinQueue[reindeerState]()
	push := func(st reindeerState, cost int) {
		if g.At(st.p) == '#' {
			return
		}
		if v, ok := dist[st]; ok && v <= cost {
			return
		}
		dist[st] = cost
		pq.Push(&aoc.PQI[reindeerState]{V: st, P: cost})
	}
	push(reindeerState{start, aoc.Right}, 0)
	for pq.Len() > 0 {
		it := pq.Pop()
		st, cost := it.V, it.P
		if dist[st] != cost {
			continue // stale entry
		}
		push(reindeerState{st.p.Step(st.d), st.d}, cost+1)
		push(reindeerState{st.p, st.d.Turn(true)}, cost+1000)
		push(reindeerState{st.p, st.d.Turn(false)}, cost+1000)
	}

	best := math.MaxInt
	for _, d := range aoc.Directions {
		if v, ok := dist[reindeerState{end, d}]; ok && v < best {
			best = v
		}
	}

	// Walk back from every best end state; a predecessor is on a best
	// path exactly when its distance accounts for the step cost.
	tiles := map[aoc.Pt]bool{}
	seen := map[reindeerState]bool{}
	var q aoc.Queue[reindeerState]
	for _, d := range aoc.Directions {
		if v, ok := dist[reindeerState{end, d}]; ok && v == best {
			q.Push(reindeerState{end, d})
		}
	}
	q.While(func(st reindeerState) bool {
		if seen[st] {
			return true
		}
		seen[st] = true
		tiles[st.p] = true
		v := dist[st]
		back := reindeerState{st.p.Step(st.d.TurnAround()), st.d}
		if bv, ok := dist[back]; ok && bv == v-1 {
			q.Push(back)
		}
		for _, right := range []bool{true, false} {
			turn := reindeerState{st.p, st.d.Turn(right)}
			if tv, ok := dist[turn]; ok && tv == v-1000 {
				q.Push(turn)
			}
		}
		return true
	})
	return best, len(tiles)
}
