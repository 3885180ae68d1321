package gaparray

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertRange(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		values []int
		want   []int
	}{
		{"front", 0, []int{7, 8}, []int{7, 8, 1, 2, 3}},
		{"middle", 1, []int{7, 8}, []int{1, 7, 8, 2, 3}},
		{"back", 3, []int{7, 8}, []int{1, 2, 3, 7, 8}},
		{"nothing", 2, nil, []int{1, 2, 3}},
		{"many", 2, make([]int, 40), slices.Concat([]int{1, 2}, make([]int, 40), []int{3})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := FromSlice([]int{1, 2, 3})

			require.NoError(t, g.InsertRange(tt.offset, tt.values...))

			assert.Equal(t, tt.want, g.ToSlice())
			requireWindow(t, g)
		})
	}
}

func TestRemoveRange(t *testing.T) {
	g := FromSlice([]int{0, 1, 2, 3, 4, 5})

	require.NoError(t, g.RemoveRange(1, 4))
	assert.Equal(t, []int{0, 4, 5}, g.ToSlice())

	require.NoError(t, g.RemoveRange(1, 1))
	assert.Equal(t, []int{0, 4, 5}, g.ToSlice())

	require.NoError(t, g.RemoveRange(0, 3))
	assert.True(t, g.Empty())
	requireWindow(t, g)
}

func TestSetRange(t *testing.T) {
	g := FromSlice([]int{0, 1, 2, 3})

	require.NoError(t, g.SetRange(1, 8, 9))
	assert.Equal(t, []int{0, 8, 9, 3}, g.ToSlice())
}

func TestSortRangeOnlyReordersRange(t *testing.T) {
	g := FromSlice([]int{5, 3, 1, 9})

	require.NoError(t, SortRange(g, 1, 3))

	assert.Equal(t, []int{5, 1, 3, 9}, g.ToSlice())
}

func TestSortFunc(t *testing.T) {
	g := FromSlice([]string{"bb", "a", "ccc"})

	g.SortFunc(func(a, b string) int { return cmp.Compare(len(b), len(a)) })
	assert.Equal(t, []string{"ccc", "bb", "a"}, g.ToSlice())

	require.NoError(t, g.SortRangeFunc(1, 3, byString))
	assert.Equal(t, []string{"ccc", "a", "bb"}, g.ToSlice())
}

func byString(a, b string) int { return cmp.Compare(a, b) }

func TestFill(t *testing.T) {
	g := FromSlice([]int{1, 2, 3, 4})

	require.NoError(t, g.FillRange(1, 3, 0))
	assert.Equal(t, []int{1, 0, 0, 4}, g.ToSlice())

	g.Fill(7)
	assert.Equal(t, []int{7, 7, 7, 7}, g.ToSlice())
}

func TestReverse(t *testing.T) {
	g := FromSlice([]int{1, 2, 3, 4, 5})

	require.NoError(t, g.ReverseRange(0, 3))
	assert.Equal(t, []int{3, 2, 1, 4, 5}, g.ToSlice())

	g.Reverse()
	assert.Equal(t, []int{5, 4, 1, 2, 3}, g.ToSlice())
}

func TestShuffle(t *testing.T) {
	elems := make([]int, 100)
	for i := range elems {
		elems[i] = i
	}
	g1, g2 := FromSlice(elems), FromSlice(elems)

	g1.Shuffle(rand.New(rand.NewPCG(1, 2)))
	g2.Shuffle(rand.New(rand.NewPCG(1, 2)))

	assert.Equal(t, g1.ToSlice(), g2.ToSlice(), "same seed, same permutation")
	assert.NotEqual(t, elems, g1.ToSlice())
	got := g1.ToSlice()
	slices.Sort(got)
	assert.Equal(t, elems, got)

	g1.Shuffle(nil)
	assert.Equal(t, 100, g1.Len())
}

func TestGrep(t *testing.T) {
	g := FromSlice([]int{1, 2, 3, 4, 5, 6})
	even := func(i int) bool { return i%2 == 0 }

	evens := g.Grep(even)
	odds := g.InverseGrep(even)

	assert.Equal(t, []int{2, 4, 6}, evens.ToSlice())
	assert.Equal(t, []int{1, 3, 5}, odds.ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, g.ToSlice())

	evens.PushBack(8)
	assert.Equal(t, 6, g.Len())
}

func TestForEach(t *testing.T) {
	g := FromSlice([]int{1, 2, 3, 4})

	var seen []int
	assert.True(t, g.ForEach(func(i int) bool {
		seen = append(seen, i)
		return true
	}))
	assert.Equal(t, []int{1, 2, 3, 4}, seen)

	seen = nil
	assert.False(t, g.ForEachDescending(func(i int) bool {
		seen = append(seen, i)
		return i > 3
	}))
	assert.Equal(t, []int{4, 3}, seen)

	assert.True(t, New[int]().ForEach(func(int) bool { return false }))
}

func TestTransformValues(t *testing.T) {
	g := FromSlice([]int{1, 2, 3})

	g.TransformValues(func(i int) int { return i * 10 })

	assert.Equal(t, []int{10, 20, 30}, g.ToSlice())
}

func TestSliceIsACopy(t *testing.T) {
	g := FromSlice([]int{0, 1, 2, 3, 4})

	s, err := g.Slice(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())

	_, err = s.Set(0, 100)
	require.NoError(t, err)
	for i := range 50 {
		s.PushBack(i)
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.ToSlice())
}

func TestFuncQueries(t *testing.T) {
	g := FromSlice([]int{1, 2, 3})

	assert.True(t, g.ContainsFunc(func(i int) bool { return i > 2 }))
	assert.False(t, g.ContainsFunc(func(i int) bool { return i > 3 }))
	assert.Equal(t, 1, g.IndexFunc(func(i int) bool { return i%2 == 0 }))
	assert.Equal(t, -1, g.IndexFunc(func(i int) bool { return i > 3 }))
}

func TestCopies(t *testing.T) {
	g := FromSlice([]int{0, 1, 2, 3, 4})

	r, err := g.CopyRange(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, r)

	dst := make([]int, 4)
	require.NoError(t, g.CopyTo(dst, 3, 1, 2))
	assert.Equal(t, []int{0, 3, 4, 0}, dst)

	err = g.CopyTo(dst, 0, 3, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, []int{0, 3, 4, 0}, dst)

	buf := make([]int, 3)
	assert.Equal(t, 2, g.CopySlice(3, buf))
	assert.Equal(t, []int{3, 4, 0}, buf)

	s := g.ToSlice()
	s[0] = 100
	assert.Equal(t, 0, g.At(0))
}
