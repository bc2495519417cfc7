package main

import (
	"strings"

	aoc "aoc2024"
)

/*
want=3749

190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
*/
func (s solver) D7p1() any {
	return s.calibration(false)
}

// want=11387
func (s solver) D7p2() any {
	return s.calibration(true)
}

func (s solver) calibration(concat bool) int {
	total := 0
	s.ForLines(func(line string) {
		target, rest, _ := strings.Cut(line, ":")
		if equationPossible(aoc.Int(target), aoc.Fields(rest), concat) {
			total += aoc.Int(target)
		}
	})
	return total
}

// equationPossible works right to left: the last operand must be
// undoable against the target by subtraction, division, or stripping a
// decimal suffix, which prunes most of the operator tree.
func equationPossible(target int, nums []int, concat bool) bool {
	n := len(nums)
	if n == 1 {
		return target == nums[0]
	}
	last, rest := nums[n-1], nums[:n-1]
	if target >= last && equationPossible(target-last, rest, concat) {
		return true
	}
	if last != 0 && target%last == 0 && equationPossible(target/last, rest, concat) {
		return true
	}
	if concat {
		f := 1
		for i := 0; i < aoc.NumDigits(last); i++ {
			f *= 10
		}
		if target%f == last && target/f > 0 && equationPossible(target/f, rest, concat) {
			return true
		}
	}
	return false
}
