package main

import (
	"regexp"
	"strings"

	aoc "aoc2024"
)

var mulRx = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)`)

/*
want=161

xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))
*/
func (s solver) D3p1() any {
	return sumMuls(string(s.Input()))
}

/*
want=48

xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))
*/
func (s solver) D3p2() any {
	mem := string(s.Input())
	total := 0
	for {
		enabled, rest, found := strings.Cut(mem, "don't()")
		total += sumMuls(enabled)
		if !found {
			return total
		}
		_, mem, found = strings.Cut(rest, "do()")
		if !found {
			return total
		}
	}
}

func sumMuls(mem string) int {
	total := 0
	for _, m := range mulRx.FindAllStringSubmatch(mem, -1) {
		total += aoc.Int(m[1]) * aoc.Int(m[2])
	}
	return total
}
