package main

import (
	"strings"
	"testing"

	aoc "aoc2024"

	"github.com/stretchr/testify/assert"
)

func TestReportSafe(t *testing.T) {
	tests := []struct {
		levels []int
		want   bool
	}{
		{[]int{7, 6, 4, 2, 1}, true},
		{[]int{1, 2, 7, 8, 9}, false},
		{[]int{9, 7, 6, 2, 1}, false},
		{[]int{1, 3, 2, 4, 5}, false},
		{[]int{8, 6, 4, 4, 1}, false},
		{[]int{1, 3, 6, 7, 9}, true},
	}
	for _, tt := range tests {
		if got := reportSafe(tt.levels); got != tt.want {
			t.Errorf("reportSafe(%v) = %v, want %v", tt.levels, got, tt.want)
		}
	}
}

func TestEquationPossible(t *testing.T) {
	tests := []struct {
		target int
		nums   []int
		concat bool
		want   bool
	}{
		{190, []int{10, 19}, false, true},
		{83, []int{17, 5}, false, false},
		{156, []int{15, 6}, false, false},
		{156, []int{15, 6}, true, true},
		{7290, []int{6, 8, 6, 15}, false, false},
		{7290, []int{6, 8, 6, 15}, true, true},
		{21037, []int{9, 7, 18, 13}, true, false},
		{292, []int{11, 6, 16, 20}, false, true},
	}
	for _, tt := range tests {
		if got := equationPossible(tt.target, tt.nums, tt.concat); got != tt.want {
			t.Errorf("equationPossible(%d, %v, %v) = %v, want %v",
				tt.target, tt.nums, tt.concat, got, tt.want)
		}
	}
}

func TestExpandDisk(t *testing.T) {
	got := expandDisk([]int{1, 2, 3, 4, 5})
	want := []int{0, -1, -1, 1, 1, 1, -1, -1, -1, -1, 2, 2, 2, 2, 2}
	assert.Equal(t, want, got)
	assert.Equal(t, 5, diskChecksum([]int{-1, 1, 2, -1}))
}

func TestWalkTrails(t *testing.T) {
	g := aoc.ParseDigitGrid([]string{
		"89010123",
		"78121874",
		"87430965",
		"96549874",
		"45678903",
		"32019012",
		"01329801",
		"10456732",
	})
	var scores, ratings []int
	for _, head := range aoc.Find(g, 0) {
		peaks := map[aoc.Pt]bool{}
		paths := 0
		walkTrails(g, head, func(p aoc.Pt) {
			peaks[p] = true
			paths++
		})
		scores = append(scores, len(peaks))
		ratings = append(ratings, paths)
	}
	assert.Equal(t, []int{5, 6, 5, 3, 1, 3, 5, 3, 5}, scores)
	assert.Equal(t, []int{20, 24, 10, 4, 1, 4, 5, 8, 5}, ratings)
}

func TestBlink(t *testing.T) {
	tests := []struct {
		v    int
		want []int
	}{
		{0, []int{1}},
		{1, []int{2024}},
		{10, []int{1, 0}},
		{99, []int{9, 9}},
		{999, []int{2021976}},
		{2024, []int{20, 24}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, blink(tt.v), "blink(%d)", tt.v)
	}
}

func TestRunProgram(t *testing.T) {
	// If register A contains 10, the program 5,0,5,1,5,4 outputs
	// 0,1,2.
	assert.Equal(t, []int{0, 1, 2}, runProgram([]int{5, 0, 5, 1, 5, 4}, 10))
	// If register A contains 2024, the program 0,1,5,4,3,0 outputs
	// 4,2,5,6,7,7,7,7,3,1,0.
	assert.Equal(t, []int{4, 2, 5, 6, 7, 7, 7, 7, 3, 1, 0},
		runProgram([]int{0, 1, 5, 4, 3, 0}, 2024))
}

func TestFindQuine(t *testing.T) {
	program := []int{0, 3, 5, 4, 3, 0}
	a, ok := findQuine(program, 0, len(program)-1)
	assert.True(t, ok)
	assert.Equal(t, 117440, a)
}

func TestCountArrangements(t *testing.T) {
	trie := &towelTrie{}
	for _, towel := range strings.Split("r, wr, b, g, bwu, rb, gb, br", ", ") {
		trie.insert(towel)
	}
	tests := []struct {
		design string
		want   int
	}{
		{"brwrr", 2},
		{"bggr", 1},
		{"gbbr", 4},
		{"rrbgbr", 6},
		{"ubwu", 0},
		{"bwurrg", 1},
		{"brgr", 2},
		{"bbrgwb", 0},
	}
	for _, tt := range tests {
		if got := countArrangements(tt.design, trie, map[string]int{}); got != tt.want {
			t.Errorf("countArrangements(%q) = %d, want %d", tt.design, got, tt.want)
		}
	}
}

var cheatTrack = aoc.ParseGrid([]string{
	"###############",
	"#...#...#.....#",
	"#.#.#.#.#.###.#",
	"#S#...#.#.#...#",
	"#######.#.#.###",
	"#######.#.#...#",
	"#######.#.###.#",
	"###..E#...#...#",
	"###.#######.###",
	"#...###...#...#",
	"#.#####.#.###.#",
	"#.#...#.#.#...#",
	"#.#.#.#.#.#.###",
	"#...#...#...###",
	"###############",
})

func TestCountCheats(t *testing.T) {
	tests := []struct {
		cheat, minSaving, want int
	}{
		{2, 2, 44},
		{2, 20, 5},
		{2, 64, 1},
		{20, 50, 285},
		{20, 74, 7},
		{20, 76, 3},
	}
	for _, tt := range tests {
		if got := countCheats(cheatTrack, tt.cheat, tt.minSaving); got != tt.want {
			t.Errorf("countCheats(%d, %d) = %d, want %d", tt.cheat, tt.minSaving, got, tt.want)
		}
	}
}

func TestPadMoveCost(t *testing.T) {
	length := func(code string, robots int) int {
		memo := map[keypadMove]int{}
		total := 0
		from := byte('A')
		for i := 0; i < len(code); i++ {
			total += padMoveCost(numericPad, from, code[i], robots, memo)
			from = code[i]
		}
		return total
	}
	// Typing directly on the numeric keypad.
	assert.Equal(t, 12, length("029A", 0))
	// Through two directional robots.
	assert.Equal(t, 68, length("029A", 2))
	assert.Equal(t, 60, length("980A", 2))
	assert.Equal(t, 64, length("379A", 2))
}

func TestNextSecret(t *testing.T) {
	want := []int{
		15887950, 16495136, 527345, 704524, 1553684,
		12683156, 11100544, 12249484, 7753432, 5908254,
	}
	v := 123
	for i, w := range want {
		v = nextSecret(v)
		if v != w {
			t.Fatalf("secret %d = %d, want %d", i+1, v, w)
		}
	}
}

// twoBitAdder wires a correct 2-bit ripple adder.
func twoBitAdder() *circuit {
	return &circuit{
		values: map[string]int{},
		gates: map[string]gate{
			"z00": {"x00", "XOR", "y00"},
			"c00": {"x00", "AND", "y00"},
			"s01": {"x01", "XOR", "y01"},
			"z01": {"s01", "XOR", "c00"},
			"a01": {"x01", "AND", "y01"},
			"b01": {"s01", "AND", "c00"},
			"z02": {"a01", "OR", "b01"},
		},
	}
}

func TestMiswired(t *testing.T) {
	c := twoBitAdder()
	assert.Empty(t, c.miswired())

	// Swap z01 and b01.
	c = twoBitAdder()
	c.gates["b01"], c.gates["z01"] = c.gates["z01"], c.gates["b01"]
	assert.Equal(t, []string{"b01", "z01"}, c.miswired())
}

func TestCircuitEval(t *testing.T) {
	c := twoBitAdder()
	// 3 + 1 = 4.
	c.values = map[string]int{"x00": 1, "x01": 1, "y00": 1, "y01": 0}
	got := 0
	for _, z := range []string{"z02", "z01", "z00"} {
		got = got<<1 | c.eval(z)
	}
	assert.Equal(t, 4, got)
}

func TestPinHeights(t *testing.T) {
	lock := aoc.ParseGrid([]string{
		"#####",
		".####",
		".####",
		".####",
		".#.#.",
		".#...",
		".....",
	})
	assert.Equal(t, []int{1, 6, 4, 5, 4}, pinHeights(lock))
	assert.Equal(t, byte('#'), lock.At(aoc.Pt{}))

	key := aoc.ParseGrid([]string{
		".....",
		"#....",
		"#....",
		"#...#",
		"#.#.#",
		"#.###",
		"#####",
	})
	assert.Equal(t, []int{6, 1, 3, 2, 4}, pinHeights(key))
	assert.Equal(t, byte('.'), key.At(aoc.Pt{}))
}
