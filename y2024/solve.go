// Command y2024 runs the Advent of Code 2024 solutions. Each day lives
// in its own file; samples and their expected answers are embedded in
// the solver method doc comments.
package main

import (
	"embed"

	aoc "aoc2024"
)

//go:embed *.go
var source embed.FS

func main() {
	aoc.Run(2024, source, &solver{})
}

type solver struct {
	*aoc.Puzzle
}
