package main

import (
	"slices"
	"strings"

	aoc "aoc2024"

	"golang.org/x/exp/maps"
)

/*
want=7

kh-tc
qp-kh
de-cg
ka-co
yn-aq
qp-ub
cg-tb
vc-aq
tb-ka
wh-tc
yn-cg
kh-ub
ta-co
de-co
tc-td
tb-wq
wh-td
ta-ka
td-qp
aq-cg
wq-ub
ub-vc
de-ta
wq-aq
wq-vc
wh-yn
ka-de
kv-kh
ta-ub
wh-qp
tb-vc
td-yn
*/
func (s solver) D23p1() any {
	n := 0
	for _, tri := range aoc.Triangles(s.lanNetwork()) {
		for _, name := range tri {
			if strings.HasPrefix(name, "t") {
				n++
				break
			}
		}
	}
	return n
}

// want=co,de,ka,ta
func (s solver) D23p2() any {
	names := maps.Keys(s.lanNetwork().MaxClique())
	slices.Sort(names)
	return strings.Join(names, ",")
}

func (s solver) lanNetwork() *aoc.Graph[string] {
	var g aoc.Graph[string]
	s.ForLines(func(line string) {
		a, b, _ := strings.Cut(line, "-")
		g.AddEdge(a, b, 1)
	})
	return &g
}
