package main

import (
	"regexp"

	aoc "aoc2024"
)

/*
want=12

p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3
*/
func (s solver) D14p1() any {
	size := s.lobbySize()
	mid := aoc.Pt{X: size.X / 2, Y: size.Y / 2}
	var quads [4]int
	for _, r := range s.robots() {
		p := wrapPt(r.p.Add(r.v.Scale(100)), size)
		if p.X == mid.X || p.Y == mid.Y {
			continue
		}
		q := 0
		if p.X > mid.X {
			q |= 1
		}
		if p.Y > mid.Y {
			q |= 2
		}
		quads[q]++
	}
	return quads[0] * quads[1] * quads[2] * quads[3]
}

// D14p2 returns the first second at which no two robots share a tile,
// which is when the tree picture appears.
func (s solver) D14p2() any {
	size := s.lobbySize()
	robots := s.robots()
	for sec := 1; ; sec++ {
		seen := map[aoc.Pt]bool{}
		distinct := true
		for i := range robots {
			robots[i].p = wrapPt(robots[i].p.Add(robots[i].v), size)
			if seen[robots[i].p] {
				distinct = false
			}
			seen[robots[i].p] = true
		}
		if distinct {
			return sec
		}
	}
}

func (s solver) lobbySize() aoc.Pt {
	if s.SampleMode {
		return aoc.Pt{X: 11, Y: 7}
	}
	return aoc.Pt{X: 101, Y: 103}
}

func wrapPt(p, size aoc.Pt) aoc.Pt {
	return aoc.Pt{
		X: ((p.X % size.X) + size.X) % size.X,
		Y: ((p.Y % size.Y) + size.Y) % size.Y,
	}
}

type robot struct {
	p, v aoc.Pt
}

var robotRx = regexp.MustCompile(`p=(-?\d+),(-?\d+) v=(-?\d+),(-?\d+)`)

func (s solver) robots() []robot {
	var out []robot
	for _, m := range robotRx.FindAllStringSubmatch(string(s.Input()), -1) {
		v := aoc.Ints(m[1:]...)
		out = append(out, robot{aoc.Pt{X: v[0], Y: v[1]}, aoc.Pt{X: v[2], Y: v[3]}})
	}
	return out
}
