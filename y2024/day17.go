package main

import (
	"log"
	"slices"
	"strconv"
	"strings"

	aoc "aoc2024"
)

/*
want=4,6,3,5,6,3,5,2,1,0

Register A: 729
Register B: 0
Register C: 0

Program: 0,1,5,4,3,0
*/
func (s solver) D17p1() any {
	a, program := s.loadProgram()
	var out []string
	for _, v := range runProgram(program, a) {
		out = append(out, strconv.Itoa(v))
	}
	return strings.Join(out, ",")
}

/*
want=117440

Register A: 2024
Register B: 0
Register C: 0

Program: 0,3,5,4,3,0
*/
func (s solver) D17p2() any {
	_, program := s.loadProgram()
	a, ok := findQuine(program, 0, len(program)-1)
	if !ok {
		log.Fatal("program cannot output itself")
	}
	return a
}

// findQuine builds A one octal digit at a time from the last program
// value down: each loop of the program consumes three bits of A, so a
// candidate digit is kept if the run reproduces the program's tail.
// Digits are tried ascending, so the first full solution is minimal.
func findQuine(program []int, a, i int) (int, bool) {
	if i < 0 {
		return a, true
	}
	for d := 0; d < 8; d++ {
		next := a<<3 | d
		if !slices.Equal(runProgram(program, next), program[i:]) {
			continue
		}
		if v, ok := findQuine(program, next, i-1); ok {
			return v, true
		}
	}
	return 0, false
}

// runProgram executes the 3-bit machine with register A set to a and
// returns its output values.
func runProgram(program []int, a int) []int {
	var b, c int
	var out []int
	combo := func(op int) int {
		switch op {
		case 4:
			return a
		case 5:
			return b
		case 6:
			return c
		}
		return op
	}
	for ip := 0; ip+1 < len(program); {
		op, arg := program[ip], program[ip+1]
		ip += 2
		switch op {
		case 0: // adv
			a >>= combo(arg)
		case 1: // bxl
			b ^= arg
		case 2: // bst
			b = combo(arg) % 8
		case 3: // jnz
			if a != 0 {
				ip = arg
			}
		case 4: // bxc
			b ^= c
		case 5: // out
			out = append(out, combo(arg)%8)
		case 6: // bdv
			b = a >> combo(arg)
		case 7: // cdv
			c = a >> combo(arg)
		}
	}
	return out
}

func (s solver) loadProgram() (int, []int) {
	paras := s.Paragraphs()
	a := aoc.Int(aoc.TrimPrefix(paras[0][0], "Register A: "))
	program := aoc.Ints(strings.Split(aoc.TrimPrefix(paras[1][0], "Program: "), ",")...)
	return a, program
}
