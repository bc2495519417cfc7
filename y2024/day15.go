package main

import (
	"slices"
	"strings"

	aoc "aoc2024"
)

/*
want=2028

########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<
*/
func (s solver) D15p1() any {
	g, moves := s.warehouse(false)
	robot := aoc.FindOne(g, byte('@'))
	for _, d := range moves {
		end := robot.Step(d)
		for g.At(end) == 'O' {
			end = end.Step(d)
		}
		if g.At(end) == '#' {
			continue
		}
		if end != robot.Step(d) {
			// The whole chain slides one cell; only the ends change.
			g.Set(end, 'O')
		}
		g.Set(robot, '.')
		robot = robot.Step(d)
		g.Set(robot, '@')
	}
	return gpsSum(g, 'O')
}

/*
want=618

#######
#...#.#
#.....#
#..OO@#
#..O..#
#.....#
#######

<vv<<^^<<^^
*/
func (s solver) D15p2() any {
	g, moves := s.warehouse(true)
	robot := aoc.FindOne(g, byte('@'))
	for _, d := range moves {
		cells, ok := pushable(g, robot, d)
		if !ok {
			continue
		}
		// Shift the farthest cells first so sources are still
		// intact when copied.
		slices.SortFunc(cells, func(a, b aoc.Pt) int {
			switch d {
			case aoc.Up:
				return a.Y - b.Y
			case aoc.Down:
				return b.Y - a.Y
			case aoc.Left:
				return a.X - b.X
			}
			return b.X - a.X
		})
		for _, p := range cells {
			g.Set(p.Step(d), g.At(p))
			g.Set(p, '.')
		}
		robot = robot.Step(d)
	}
	return gpsSum(g, '[')
}

// pushable collects every cell that must shift for a push from start in
// direction d, the robot included. ok is false if a wall blocks any of
// them. Vertical pushes fan out over both halves of each box.
func pushable(g aoc.Grid[byte], start aoc.Pt, d aoc.Direction) ([]aoc.Pt, bool) {
	var cells []aoc.Pt
	seen := map[aoc.Pt]bool{}
	vertical := d == aoc.Up || d == aoc.Down
	blocked := false
	q := aoc.NewQueue(start)
	q.While(func(p aoc.Pt) bool {
		if seen[p] {
			return true
		}
		seen[p] = true
		cells = append(cells, p)
		n := p.Step(d)
		switch g.At(n) {
		case '#':
			blocked = true
			return false
		case '[':
			q.Push(n)
			if vertical {
				q.Push(n.Add(aoc.Pt{X: 1}))
			}
		case ']':
			q.Push(n)
			if vertical {
				q.Push(n.Add(aoc.Pt{X: -1}))
			}
		}
		return true
	})
	if blocked {
		return nil, false
	}
	return cells, true
}

func (s solver) warehouse(wide bool) (aoc.Grid[byte], []aoc.Direction) {
	paras := s.Paragraphs()
	lines := paras[0]
	if wide {
		r := strings.NewReplacer("#", "##", "O", "[]", ".", "..", "@", "@.")
		widened := make([]string, len(lines))
		for i, l := range lines {
			widened[i] = r.Replace(l)
		}
		lines = widened
	}
	g := aoc.ParseGrid(lines)
	var moves []aoc.Direction
	for _, l := range paras[1] {
		for _, r := range l {
			moves = append(moves, aoc.DirFromRune(r))
		}
	}
	return g, moves
}

func gpsSum(g aoc.Grid[byte], box byte) int {
	sum := 0
	g.All(func(p aoc.Pt, v byte) bool {
		if v == box {
			sum += 100*p.Y + p.X
		}
		return true
	})
	return sum
}
