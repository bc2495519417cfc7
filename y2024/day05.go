package main

import (
	"slices"
	"strings"

	aoc "aoc2024"
)

/*
want=143

47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
*/
func (s solver) D5p1() any {
	rules, updates := s.printRules()
	total := 0
	for _, u := range updates {
		if slices.IsSortedFunc(u, rules.compare) {
			total += u[len(u)/2]
		}
	}
	return total
}

// want=123
func (s solver) D5p2() any {
	rules, updates := s.printRules()
	total := 0
	for _, u := range updates {
		if slices.IsSortedFunc(u, rules.compare) {
			continue
		}
		slices.SortFunc(u, rules.compare)
		total += u[len(u)/2]
	}
	return total
}

type pageRules map[aoc.Edge[int]]bool

// compare orders two pages by the printing rules; unrelated pages
// compare equal.
func (r pageRules) compare(a, b int) int {
	switch {
	case r[aoc.Edge[int]{A: a, B: b}]:
		return -1
	case r[aoc.Edge[int]{A: b, B: a}]:
		return 1
	}
	return 0
}

func (s solver) printRules() (pageRules, [][]int) {
	paras := s.Paragraphs()
	rules := pageRules{}
	for _, line := range paras[0] {
		a, b, _ := strings.Cut(line, "|")
		rules[aoc.Edge[int]{A: aoc.Int(a), B: aoc.Int(b)}] = true
	}
	var updates [][]int
	for _, line := range paras[1] {
		updates = append(updates, aoc.Ints(strings.Split(line, ",")...))
	}
	return rules, updates
}
