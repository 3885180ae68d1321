package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencesAgree(t *testing.T) {
	for _, n := range sequences {
		t.Run(n.name, func(t *testing.T) {
			s := n.make()
			for i := range 5 {
				s.PushBack(i)
			}
			s.InsertAt(0, 10)
			s.InsertAt(6, 11)
			s.InsertAt(3, 12)
			s.Set(1, 20)
			assert.Equal(t, 4, s.RemoveAt(6))

			got := make([]int, s.Len())
			for i := range got {
				got[i] = s.Get(i)
			}
			assert.Equal(t, []int{10, 20, 1, 12, 2, 3, 11}, got)
		})
	}
}

func TestQueuesAreFIFO(t *testing.T) {
	for _, n := range queues {
		t.Run(n.name, func(t *testing.T) {
			q := n.make()
			_, ok := q.Pop()
			assert.False(t, ok)

			for i := range 40 {
				q.Push(i)
			}
			for want := range 40 {
				v, ok := q.Pop()
				require.True(t, ok)
				require.Equal(t, want, v)
			}
			assert.Equal(t, 0, q.Len())
		})
	}
}

func TestDequesAgree(t *testing.T) {
	for _, n := range deques {
		t.Run(n.name, func(t *testing.T) {
			d := n.make()
			_, ok := d.PopBack()
			assert.False(t, ok)
			_, ok = d.PopFront()
			assert.False(t, ok)

			d.PushBack(1)
			d.PushFront(0)
			d.PushBack(2)
			require.Equal(t, 3, d.Len())
			assert.Equal(t, 1, d.Get(1))

			v, _ := d.PopFront()
			assert.Equal(t, 0, v)
			v, _ = d.PopBack()
			assert.Equal(t, 2, v)
			assert.Equal(t, 1, d.Len())
		})
	}
}

func TestFindAndNames(t *testing.T) {
	assert.Equal(t, []string{GapArray, RingBuffer, Slice, LinkedList}, names(queues))

	_, ok := find(sequences, RingBuffer)
	assert.False(t, ok)
	mk, ok := find(deques, LinkedList)
	require.True(t, ok)
	assert.Equal(t, 0, mk().Len())
}
