package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	var s Stack[int]
	s.Push(1)
	s.Push(2)
	v, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 0, q.Len())
}

func TestMinQueue(t *testing.T) {
	pq := MinQueue[string]()
	pq.Push(&PQI[string]{V: "b", P: 2})
	pq.Push(&PQI[string]{V: "c", P: 3})
	pq.Push(&PQI[string]{V: "a", P: 1})

	var got []string
	for pq.Len() > 0 {
		got = append(got, pq.Pop().V)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestMaxQueue(t *testing.T) {
	pq := MaxQueue[string]()
	pq.Push(&PQI[string]{V: "b", P: 2})
	pq.Push(&PQI[string]{V: "c", P: 3})
	pq.Push(&PQI[string]{V: "a", P: 1})

	var got []string
	for pq.Len() > 0 {
		got = append(got, pq.Pop().V)
	}
	assert.Equal(t, []string{"c", "b", "a"}, got)
}

func TestPQUpdate(t *testing.T) {
	pq := MinQueue[string]()
	a := &PQI[string]{V: "a", P: 5}
	b := &PQI[string]{V: "b", P: 2}
	pq.Push(a)
	pq.Push(b)

	a.P = 1
	pq.Update(a)
	assert.Equal(t, "a", pq.Peek().V)

	got := pq.Pop()
	assert.Equal(t, "a", got.V)
	assert.Equal(t, -1, got.Index())
	assert.Equal(t, 0, b.Index())
}
