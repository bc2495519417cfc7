package main

import (
	"testing"

	aoc "aoc2024"
)

// TestSamples checks every part against the answer embedded in its doc
// comment.
func TestSamples(t *testing.T) {
	aoc.RunSamples(t, source, &solver{})
}
