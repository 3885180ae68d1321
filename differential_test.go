package gaparray

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMatchesSliceReference applies the same random operations to a GapArray
// and a plain slice and compares them after every step.
func TestMatchesSliceReference(t *testing.T) {
	for seed := range uint64(20) {
		r := rand.New(rand.NewPCG(seed, 42))
		g, err := NewWithCapacity[int](r.IntN(8))
		require.NoError(t, err)
		var ref []int
		prevCap := g.Cap()

		for step := range 2000 {
			n := len(ref)
			switch op := r.IntN(10); {
			case op < 3:
				i := r.IntN(n + 1)
				require.NoError(t, g.InsertAt(i, step))
				ref = slices.Insert(ref, i, step)
			case op < 5 && n > 0:
				i := r.IntN(n)
				v, err := g.RemoveAt(i)
				require.NoError(t, err)
				require.Equal(t, ref[i], v)
				ref = slices.Delete(ref, i, i+1)
			case op < 6 && n > 0:
				i := r.IntN(n)
				old, err := g.Set(i, -step)
				require.NoError(t, err)
				require.Equal(t, ref[i], old)
				ref[i] = -step
			case op < 7:
				g.PushFront(step)
				ref = slices.Insert(ref, 0, step)
			case op < 8 && n > 0:
				v, ok := g.PopFront()
				require.True(t, ok)
				require.Equal(t, ref[0], v)
				ref = ref[1:]
			case op < 9:
				i := r.IntN(n + 1)
				vals := []int{step, step + 1, step + 2}
				require.NoError(t, g.InsertRange(i, vals...))
				ref = slices.Insert(ref, i, vals...)
			default:
				if n == 0 {
					continue
				}
				from := r.IntN(n)
				to := from + r.IntN(n-from+1)
				require.NoError(t, g.RemoveRange(from, to))
				ref = slices.Delete(ref, from, to)
			}

			requireWindow(t, g)
			require.GreaterOrEqual(t, g.Cap(), prevCap)
			prevCap = g.Cap()
			require.Equal(t, len(ref), g.Len())
			require.True(t, slices.Equal(ref, g.ToSlice()), "seed %d step %d", seed, step)
		}
	}
}

// TestInsertThenRemoveEverything empties the GapArray through random
// positions.
func TestInsertThenRemoveEverything(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	g := New[int]()
	const n = 500
	for i := range n {
		require.NoError(t, g.InsertAt(r.IntN(g.Len()+1), i))
	}
	for g.Len() > 0 {
		_, err := g.RemoveAt(r.IntN(g.Len()))
		require.NoError(t, err)
	}
	require.True(t, g.Empty())
	requireWindow(t, g)
}
