package aoc

import (
	"log"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Fields returns the whitespace-separated ints in s.
func Fields(s string) []int {
	return Ints(strings.Fields(s)...)
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// NumDigits returns the number of decimal digits in v. Zero has one
// digit.
func NumDigits[T constraints.Integer](v T) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// Concat returns the decimal concatenation of a and b, so
// Concat(12, 345) == 12345.
func Concat[T constraints.Integer](a, b T) T {
	f := T(1)
	for i := 0; i < NumDigits(b); i++ {
		f *= 10
	}
	return a*f + b
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Counts returns the multiplicity of each value in the slice.
func Counts[T comparable](in []T) map[T]int {
	out := make(map[T]int, len(in))
	for _, v := range in {
		out[v]++
	}
	return out
}

// GCD returns the greatest common divisor of the integers.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	if len(integers) == 1 {
		return integers[0]
	}

	lcm := func(a, b int) int {
		return a * b / GCD(a, b)
	}

	result := 1
	for i := 0; i < len(integers); i++ {
		result = lcm(result, integers[i])
	}

	return result
}

// PolygonArea returns the area of the polygon defined by the points. It
// assumes the points are in clockwise order, and uses the shoelace formula.
func PolygonArea(pts []Pt) int {
	var area int

	for i := 1; i < len(pts); i++ {
		a := pts[i-1]
		b := pts[i]
		area += int(a.X*b.Y) - int(a.Y*b.X)
	}
	if area < 0 {
		area = -area
	}
	return area >> 1
}

// PolygonPerimeter returns the perimeter of the polygon defined by the points.
func PolygonPerimeter(pts []Pt) int {
	var perimeter int

	for i := 1; i < len(pts); i++ {
		perimeter += pts[i-1].MDist(pts[i])
	}
	return perimeter
}

// PolygonBoundedPoints returns the number of points with integer coordinates
// inside the polygon defined by the points.
func PolygonBoundedPoints(pts []Pt) int {
	/*
	  Pick's theorem:
	  A = i + b/2 - 1

	  Bounded points = i + b

	  i = A - b/2 + 1
	  i + b = A + b/2 + 1
	*/
	A := PolygonArea(pts)
	b_2 := PolygonPerimeter(pts) >> 1
	return A + b_2 + 1
}
