package main

import (
	"log"
	"slices"
	"strings"

	aoc "aoc2024"

	"golang.org/x/exp/maps"
)

/*
want=2024

x00: 1
x01: 0
x02: 1
x03: 1
x04: 0
y00: 1
y01: 1
y02: 1
y03: 1
y04: 1

ntg XOR fgs -> mjb
y02 OR x01 -> tnw
kwq OR kpj -> z05
x00 OR x03 -> fst
tgd XOR rvg -> z01
vdt OR tnw -> bfw
bfw AND frj -> z10
ffh OR nrd -> bqk
y00 AND y03 -> djm
y03 OR y00 -> psh
bqk OR frj -> z08
tnw OR fst -> frj
gnj AND tgd -> z11
bfw XOR mjb -> z00
x03 OR x00 -> vdt
gnj AND wpb -> z02
x04 AND y00 -> kjc
djm OR pbm -> qhw
nrd AND vdt -> hwm
kjc AND fst -> rvg
y04 OR y02 -> fgs
y01 AND x02 -> pbm
ntg OR kjc -> kwq
psh XOR fgs -> tgd
qhw XOR tgd -> z09
pbm OR djm -> kpj
x03 XOR y03 -> ffh
x00 XOR y04 -> ntg
bfw OR bqk -> z06
nrd XOR fgs -> wpb
frj XOR qhw -> z04
bqk AND frj -> z07
y03 OR x01 -> nrd
hwm AND bqk -> z03
tgd XOR rvg -> z12
tnw OR pbm -> gnj
*/
func (s solver) D24p1() any {
	c := s.circuit()
	out := 0
	for wire := range c.gates {
		if strings.HasPrefix(wire, "z") && c.eval(wire) == 1 {
			out |= 1 << aoc.Int(wire[1:])
		}
	}
	return out
}

// D24p2 names the swapped gate outputs of the ripple adder as a sorted
// comma-separated list.
func (s solver) D24p2() any {
	return strings.Join(s.circuit().miswired(), ",")
}

type gate struct {
	a, op, b string
}

type circuit struct {
	values map[string]int
	gates  map[string]gate
}

func (s solver) circuit() *circuit {
	paras := s.Paragraphs()
	c := &circuit{values: map[string]int{}, gates: map[string]gate{}}
	for _, line := range paras[0] {
		name, v, _ := strings.Cut(line, ": ")
		c.values[name] = aoc.Int(v)
	}
	for _, line := range paras[1] {
		expr, out, _ := strings.Cut(line, " -> ")
		f := strings.Fields(expr)
		c.gates[out] = gate{f[0], f[1], f[2]}
	}
	return c
}

func (c *circuit) eval(wire string) int {
	if v, ok := c.values[wire]; ok {
		return v
	}
	g, ok := c.gates[wire]
	if !ok {
		log.Fatalf("unknown wire %q", wire)
	}
	a, b := c.eval(g.a), c.eval(g.b)
	var v int
	switch g.op {
	case "AND":
		v = a & b
	case "OR":
		v = a | b
	case "XOR":
		v = a ^ b
	default:
		log.Fatalf("unknown op %q", g.op)
	}
	c.values[wire] = v
	return v
}

// miswired flags gate outputs that break the ripple adder structure:
// every z output comes from a XOR except the final carry, a XOR either
// reads the x/y inputs or drives a z, an input XOR must feed another
// XOR, and an AND feeds nothing but an OR. The first half adder has no
// carry in and is exempt from the last two rules.
func (c *circuit) miswired() []string {
	zMax := ""
	for out := range c.gates {
		if strings.HasPrefix(out, "z") && out > zMax {
			zMax = out
		}
	}
	feeds := map[string][]string{}
	for _, g := range c.gates {
		feeds[g.a] = append(feeds[g.a], g.op)
		feeds[g.b] = append(feeds[g.b], g.op)
	}
	isInput := func(w string) bool {
		return strings.HasPrefix(w, "x") || strings.HasPrefix(w, "y")
	}

	bad := map[string]bool{}
	for out, g := range c.gates {
		isZ := strings.HasPrefix(out, "z")
		firstBit := isInput(g.a) && g.a[1:] == "00"
		switch {
		case out == zMax:
			if g.op != "OR" {
				bad[out] = true
			}
		case isZ && g.op != "XOR":
			bad[out] = true
		case g.op == "XOR" && !isZ && !isInput(g.a):
			bad[out] = true
		case g.op == "XOR" && isInput(g.a) && !firstBit && !slices.Contains(feeds[out], "XOR"):
			bad[out] = true
		case g.op == "AND" && !firstBit:
			for _, op := range feeds[out] {
				if op != "OR" {
					bad[out] = true
				}
			}
		}
	}
	out := maps.Keys(bad)
	slices.Sort(out)
	return out
}
