package aoc

import (
	"testing"
	"testing/fstest"
)

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		pts  []Pt
		want int
	}{
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 5, Y: 0},
				{X: 5, Y: 5},
				{X: 0, Y: 5},
				{X: 0, Y: 0},
			},
			want: 25,
		},
	}

	for _, tt := range tests {
		if got := PolygonArea(tt.pts); got != tt.want {
			t.Errorf("PolygonArea(%v) = %v, want %v", tt.pts, got, tt.want)
		}
	}
}

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=42`,
			want:    sample{want: "42"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample = %v, want %v", got, tt.want)
		}
	}
}

func TestExtractSamples(t *testing.T) {
	src := fstest.MapFS{
		"day01.go": &fstest.MapFile{Data: []byte(`package main

/*
want=3

a b
*/
func (s solver) D1p1() any { return 3 }

// want=7
func (s solver) D1p2() any { return 7 }
`)},
	}
	samples := extractSamples(src)
	if got := samples["D1p1"]; got.want != "3" || got.input != "a b\n" {
		t.Errorf("D1p1 sample = %+v", got)
	}
	// Part 2 inherits part 1's input.
	if got := samples["D1p2"]; got.want != "7" || got.input != "a b\n" {
		t.Errorf("D1p2 sample = %+v", got)
	}
}
