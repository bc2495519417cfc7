package main

import (
	"regexp"

	aoc "aoc2024"
)

/*
want=480

Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176

Button A: X+17, Y+86
Button B: X+84, Y+37
Prize: X=7870, Y=6450

Button A: X+69, Y+23
Button B: X+27, Y+71
Prize: X=18641, Y=10279
*/
func (s solver) D13p1() any {
	return s.tokenCost(0)
}

// want=875318608908
func (s solver) D13p2() any {
	return s.tokenCost(10_000_000_000_000)
}

// tokenCost solves each machine as a 2x2 linear system by Cramer's
// rule; only exact integer solutions win a prize.
func (s solver) tokenCost(offset int) int {
	total := 0
	for _, m := range s.clawMachines() {
		px, py := m.px+offset, m.py+offset
		det := m.ax*m.by - m.ay*m.bx
		if det == 0 {
			continue
		}
		a := px*m.by - py*m.bx
		b := py*m.ax - px*m.ay
		if a%det != 0 || b%det != 0 {
			continue
		}
		a, b = a/det, b/det
		if a < 0 || b < 0 {
			continue
		}
		if offset == 0 && (a > 100 || b > 100) {
			continue
		}
		total += 3*a + b
	}
	return total
}

type clawMachine struct {
	ax, ay, bx, by, px, py int
}

var machineRx = regexp.MustCompile(`Button A: X\+(\d+), Y\+(\d+)\s+Button B: X\+(\d+), Y\+(\d+)\s+Prize: X=(\d+), Y=(\d+)`)

func (s solver) clawMachines() []clawMachine {
	var out []clawMachine
	for _, m := range machineRx.FindAllStringSubmatch(string(s.Input()), -1) {
		v := aoc.Ints(m[1:]...)
		out = append(out, clawMachine{v[0], v[1], v[2], v[3], v[4], v[5]})
	}
	return out
}
