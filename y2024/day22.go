package main

import (
	aoc "aoc2024"
)

/*
want=37327623

1
10
100
2024
*/
func (s solver) D22p1() any {
	return aoc.ParallelMapFold(s.initialSecrets(),
		func(seed int) int {
			v := seed
			for i := 0; i < 2000; i++ {
				v = nextSecret(v)
			}
			return v
		},
		func(sum, v int) int { return sum + v }, 0)
}

/*
want=23

1
2
3
2024
*/
func (s solver) D22p2() any {
	totals := aoc.ParallelMapFold(s.initialSecrets(), sequencePrices,
		func(totals map[diffSeq]int, m map[diffSeq]int) map[diffSeq]int {
			for k, v := range m {
				totals[k] += v
			}
			return totals
		}, map[diffSeq]int{})
	best := 0
	for _, v := range totals {
		if v > best {
			best = v
		}
	}
	return best
}

type diffSeq [4]int

// sequencePrices maps each window of four price changes to the price
// the monkey would sell at, which is the first price following that
// window.
func sequencePrices(seed int) map[diffSeq]int {
	out := map[diffSeq]int{}
	var seq diffSeq
	v := seed
	prev := v % 10
	for i := 0; i < 2000; i++ {
		v = nextSecret(v)
		price := v % 10
		seq = diffSeq{seq[1], seq[2], seq[3], price - prev}
		prev = price
		if i >= 3 {
			if _, ok := out[seq]; !ok {
				out[seq] = price
			}
		}
	}
	return out
}

func nextSecret(v int) int {
	const prune = 1<<24 - 1
	v = (v ^ v<<6) & prune
	v = (v ^ v>>5) & prune
	v = (v ^ v<<11) & prune
	return v
}

func (s solver) initialSecrets() []int {
	var out []int
	s.ForLines(func(line string) {
		out = append(out, aoc.Int(line))
	})
	return out
}
