package main

import (
	"strings"

	aoc "aoc2024"
)

/*
want=6

r, wr, b, g, bwu, rb, gb, br

brwrr
bggr
gbbr
rrbgbr
ubwu
bwurrg
brgr
bbrgwb
*/
func (s solver) D19p1() any {
	towels, designs := s.towelSets()
	n := 0
	for _, d := range designs {
		if countArrangements(d, towels, map[string]int{}) > 0 {
			n++
		}
	}
	return n
}

// want=16
func (s solver) D19p2() any {
	towels, designs := s.towelSets()
	total := 0
	for _, d := range designs {
		total += countArrangements(d, towels, map[string]int{})
	}
	return total
}

type towelTrie struct {
	children map[byte]*towelTrie
	terminal bool
}

func (t *towelTrie) insert(s string) {
	for i := 0; i < len(s); i++ {
		aoc.InitMap(&t.children)
		next := t.children[s[i]]
		if next == nil {
			next = &towelTrie{}
			t.children[s[i]] = next
		}
		t = next
	}
	t.terminal = true
}

// countArrangements returns the number of ways design can be tiled
// with towels, memoized on the remaining suffix. The trie walk finds
// every towel matching a prefix in one pass.
func countArrangements(design string, towels *towelTrie, memo map[string]int) int {
	if design == "" {
		return 1
	}
	if v, ok := memo[design]; ok {
		return v
	}
	n := 0
	t := towels
	for i := 0; i < len(design); i++ {
		t = t.children[design[i]]
		if t == nil {
			break
		}
		if t.terminal {
			n += countArrangements(design[i+1:], towels, memo)
		}
	}
	memo[design] = n
	return n
}

func (s solver) towelSets() (*towelTrie, []string) {
	paras := s.Paragraphs()
	trie := &towelTrie{}
	for _, t := range strings.Split(paras[0][0], ", ") {
		trie.insert(t)
	}
	return trie, paras[1]
}
