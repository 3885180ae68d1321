package gaparray

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeIterators(t *testing.T) {
	g := FromSlice([]string{"a", "b", "c"})

	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(g.Values()))
	assert.Equal(t, map[int]string{0: "a", 1: "b", 2: "c"}, maps.Collect(g.All()))

	var order []int
	for i, s := range g.Backward() {
		order = append(order, i)
		if s == "b" {
			break
		}
	}
	assert.Equal(t, []int{2, 1}, order)

	var n int
	for range g.Values() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestIterator(t *testing.T) {
	g := FromSlice([]int{1, 2})
	it := g.Iterator()

	var got []int
	for it.HasNext() {
		v, ok := it.Next()
		require.True(t, ok)
		got = append(got, v)
	}

	assert.Equal(t, []int{1, 2}, got)
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestIteratorSnapshotsWindow(t *testing.T) {
	g := FromSlice([]int{1, 2})
	it := g.Iterator()

	g.PushBack(3)

	var n int
	for it.HasNext() {
		it.Next()
		n++
	}
	assert.Equal(t, 2, n)
}

func TestCursor(t *testing.T) {
	g := FromSlice([]int{1, 2, 3})
	c, err := g.Cursor(0)
	require.NoError(t, err)

	assert.False(t, c.HasPrev())
	assert.Equal(t, -1, c.PrevIndex())
	assert.ErrorIs(t, c.Set(9), ErrNoCurrent)

	v, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	require.NoError(t, c.Set(20))

	v, ok = c.Prev()
	require.True(t, ok)
	assert.Equal(t, 20, v)
	assert.Equal(t, 1, c.NextIndex())
	require.NoError(t, c.Set(200))

	assert.Equal(t, []int{1, 200, 3}, g.ToSlice())
}

func TestCursorEnds(t *testing.T) {
	g := FromSlice([]int{1, 2})
	c, err := g.Cursor(g.Len())
	require.NoError(t, err)

	assert.False(t, c.HasNext())
	_, ok := c.Next()
	assert.False(t, ok)

	v, ok := c.Prev()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = c.Prev()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = c.Prev()
	assert.False(t, ok)
}

func TestCursorRejectsStructuralEdits(t *testing.T) {
	g := FromSlice([]int{1, 2})
	c, err := g.Cursor(1)
	require.NoError(t, err)

	assert.ErrorIs(t, c.Insert(5), ErrUnsupported)
	assert.ErrorIs(t, c.Remove(), ErrUnsupported)
	assert.Equal(t, []int{1, 2}, g.ToSlice())
}
