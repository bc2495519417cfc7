package aoc

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"golang.org/x/exp/maps"
)

func barbell() *Graph[string] {
	// Two triangles joined by a single bridge.
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 1)
	g.AddEdge("c", "a", 1)
	g.AddEdge("x", "y", 1)
	g.AddEdge("y", "z", 1)
	g.AddEdge("z", "x", 1)
	g.AddEdge("c", "x", 1)
	return &g
}

func TestNumPaths(t *testing.T) {
	var g Graph[string]
	g.AddEdge("s", "a", 1)
	g.AddEdge("s", "b", 1)
	g.AddEdge("a", "e", 1)
	g.AddEdge("b", "e", 1)
	assert.Equal(t, 2, g.NumPaths("s", "e"))
}

func TestAllShortestPaths(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)
	g.AddEdge("a", "c", 5)
	dist := g.AllShortestPaths()
	assert.Equal(t, 3, dist[Edge[string]{"a", "c"}])
	assert.Equal(t, 3, dist[Edge[string]{"c", "a"}])
	assert.Equal(t, 0, dist[Edge[string]{"b", "b"}])
}

func TestReachableNodes(t *testing.T) {
	g := barbell()
	g.RemoveEdge("c", "x")
	got := maps.Keys(g.ReachableNodes("a"))
	slices.Sort(got)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("ReachableNodes mismatch (-want +got):\n%s", diff)
	}
}

func TestLongestPath(t *testing.T) {
	var g Graph[string]
	g.AddEdge("s", "e", 1)
	g.AddEdge("s", "m", 2)
	g.AddEdge("m", "e", 3)
	got, ok := g.LongestPath("s", "e")
	assert.True(t, ok)
	assert.Equal(t, 5, got)
}

func TestTriangles(t *testing.T) {
	g := barbell()
	want := [][3]string{
		{"a", "b", "c"},
		{"x", "y", "z"},
	}
	if diff := cmp.Diff(want, Triangles(g)); diff != "" {
		t.Errorf("Triangles mismatch (-want +got):\n%s", diff)
	}
}

func TestMaxClique(t *testing.T) {
	var g Graph[string]
	// A 4-clique with a pendant triangle hanging off it.
	for i, a := range []string{"p", "q", "r", "s"} {
		for _, b := range []string{"p", "q", "r", "s"}[i+1:] {
			g.AddEdge(a, b, 1)
		}
	}
	g.AddEdge("s", "t", 1)
	g.AddEdge("s", "u", 1)
	g.AddEdge("t", "u", 1)

	got := maps.Keys(g.MaxClique())
	slices.Sort(got)
	assert.Equal(t, []string{"p", "q", "r", "s"}, got)
}

func TestMinCut(t *testing.T) {
	g := barbell()
	cuts := g.MinCut()
	if len(cuts) != 1 {
		t.Fatalf("MinCut = %v; want one edge", cuts)
	}
	e := cuts[0]
	if e != (Edge[string]{"c", "x"}) && e != (Edge[string]{"x", "c"}) {
		t.Errorf("MinCut = %v; want c-x", e)
	}
}
