package aoc

import (
	"fmt"
	"io/fs"
	"reflect"
	"slices"
	"testing"

	"golang.org/x/exp/maps"
)

// RunSamples runs every registered day/part that carries an embedded
// sample against that sample and fails the test on any mismatch. It is
// the regression suite for a solver binary: every answer asserted in a
// doc comment is checked, no network or cached inputs involved.
func RunSamples(t *testing.T, src fs.FS, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)

	for _, dn := range dayNums {
		day := days[dn]
		p := Puzzle{
			day:        day,
			samples:    samples,
			SampleMode: true,
		}
		sr := reflect.ValueOf(slvr)
		sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
		for _, ps := range day.parts {
			if _, ok := samples[ps.Name]; !ok {
				continue
			}
			p.solver = ps
			t.Run(ps.Name, func(t *testing.T) {
				if got := fmt.Sprint(ps.fn()); got != samples[ps.Name].want {
					t.Errorf("sample answer = %v; want %v", got, samples[ps.Name].want)
				}
			})
		}
	}
}
