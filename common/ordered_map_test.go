package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap_InsertionOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	assert.False(t, m.Set("b", 1))
	assert.False(t, m.Set("a", 2))
	assert.False(t, m.Set("c", 3))
	assert.True(t, m.Set("a", 20))

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, []int{1, 20, 3}, m.Values())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 20, v)
}

func TestOrderedMap_Delete(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("x", 1)
	m.Set("y", 2)
	m.Set("z", 3)

	assert.True(t, m.Delete("y"))
	assert.False(t, m.Delete("y"))
	assert.False(t, m.Has("y"))
	assert.Equal(t, []string{"x", "z"}, m.Keys())

	m.Set("y", 4)
	assert.Equal(t, []string{"x", "z", "y"}, m.Keys())
}

func TestOrderedMap_CloneIsIndependent(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("one", 1)
	m.Set("two", 2)

	cp := m.Clone()
	assert.Equal(t, m, cp)

	cp.Set("three", 3)
	cp.Delete("one")
	assert.Equal(t, []string{"one", "two"}, m.Keys())
	assert.Equal(t, []string{"two", "three"}, cp.Keys())
}

func TestOrderedMap_RangeStops(t *testing.T) {
	m := NewOrderedMap[int, string]()
	for i := 0; i < 5; i++ {
		m.Set(i, "v")
	}

	var seen []int
	m.Range(func(k int, _ string) bool {
		seen = append(seen, k)
		return k < 2
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestOrderedMap_ZeroValue(t *testing.T) {
	var m OrderedMap[string, string]
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Delete("nope"))
	m.Set("k", "v")
	assert.Equal(t, []string{"k"}, m.Keys())
}
