// Package gaparray implements a centered gap array, an ordered sequence with
// O(1) random access whose elements live in a window in the middle of a
// larger buffer. Inserting near either end only shifts the elements between
// the insertion point and the nearer end of the window, so edits close to the
// front or the back are cheap.
package gaparray

import (
	"math"

	"github.com/cockroachdb/errors"
)

// GapArray is an ordered sequence backed by a single buffer. The elements are
// buf[head:tail]; the free slots before head and after tail absorb inserts at
// either end without reallocating.
//
// To create a GapArray instance, use one of the constructors, New(),
// NewWithCapacity(cap) or FromSlice(s). The zero value is not usable.
//
// A GapArray never shrinks. When an insert runs out of room on the side it
// writes to, the window is first recentered inside the same buffer; the
// buffer doubles only when recentering would not leave enough room.
//
// GapArray is not safe for concurrent use. Mutating a GapArray while
// iterating over it is a caller error that is not detected.
type GapArray[T any] struct {
	buf        []T
	head, tail int
	stats      Stats
}

// Stats counts the buffer maintenance a GapArray has performed.
type Stats struct {
	// Grows is the number of reallocations.
	Grows int
	// Recenters is the number of in-place window moves.
	Recenters int
}

const (
	defaultCapacity = 16
	// Growing an empty buffer starts here.
	minGrowCapacity = 4
	// Recentering is skipped when this few slots or less are free, since it
	// would be repeated on the very next insert.
	recenterSlack = 2
)

// maxCapacity bounds growth so doubling never overflows an int.
var maxCapacity = math.MaxInt >> 1

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// New allocates a GapArray with the default capacity of 16.
func New[T any]() *GapArray[T] {
	g, _ := NewWithCapacity[T](defaultCapacity)
	return g
}

// NewWithCapacity allocates a GapArray with exactly the given capacity and an
// empty window centered in it. Returns an error if passed a negative value.
func NewWithCapacity[T any](capacity int) (*GapArray[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if capacity > maxCapacity {
		return nil, errors.Wrapf(ErrCapacityExceeded, "capacity %d", capacity)
	}
	mid := capacity / 2
	return &GapArray[T]{buf: make([]T, capacity), head: mid, tail: mid}, nil
}

// FromSlice copies s into a new GapArray. The GapArray does not share memory
// with s.
func FromSlice[T any](s []T) *GapArray[T] {
	n := len(s)
	capacity := max(defaultCapacity, 2*n)
	head := (capacity - n) / 2
	buf := make([]T, capacity)
	copy(buf[head:], s)
	return &GapArray[T]{buf: buf, head: head, tail: head + n}
}

/*****************************************************************************
 * BUFFER
 *****************************************************************************/

// Len returns the number of elements in the GapArray or 0 if nil.
func (g *GapArray[T]) Len() int {
	if g == nil {
		return 0
	}
	return g.len()
}
func (g *GapArray[T]) len() int { return g.tail - g.head }

// Empty returns whether the GapArray is empty.
func (g *GapArray[T]) Empty() bool { return g.tail == g.head }

// Cap returns the length of the backing buffer.
func (g *GapArray[T]) Cap() int { return len(g.buf) }

// Stats returns how many times the GapArray reallocated or recentered.
func (g *GapArray[T]) Stats() Stats { return g.stats }

// Clear empties the GapArray and centers the empty window in the existing
// buffer. Capacity is retained and old elements are zeroed so the garbage
// collector can reclaim what they reference.
func (g *GapArray[T]) Clear() {
	clear(g.buf[g.head:g.tail])
	mid := len(g.buf) / 2
	g.head, g.tail = mid, mid
}

// window is the live part of the buffer. It aliases the buffer, so it must
// never escape to callers.
func (g *GapArray[T]) window() []T {
	if g == nil {
		return nil
	}
	return g.buf[g.head:g.tail]
}

// side is the end of the window a pending write grows.
type side int

const (
	frontSide side = iota
	backSide
)

// makeRoom guarantees at least n free slots on side s of the window. It moves
// the window back to the middle of the buffer when that frees enough slots on
// s, and reallocates otherwise. After a reallocation both sides hold at least
// n free slots.
func (g *GapArray[T]) makeRoom(n int, s side) {
	free := len(g.buf) - g.len()
	// Centering puts free/2 slots in front and the rest behind.
	room := free / 2
	if s == backSide {
		room = free - free/2
	}
	if free > recenterSlack && room >= n {
		g.recenter()
		return
	}
	g.grow(n)
}

func (g *GapArray[T]) recenter() {
	size := g.len()
	newHead := (len(g.buf) - size) / 2
	if newHead == g.head {
		return
	}
	copy(g.buf[newHead:], g.buf[g.head:g.tail])
	// Zero what the old window covered and the new one does not.
	if newHead < g.head {
		clear(g.buf[max(g.head, newHead+size):g.tail])
	} else {
		clear(g.buf[g.head:min(g.tail, newHead)])
	}
	g.head, g.tail = newHead, newHead+size
	g.stats.Recenters++
}

func (g *GapArray[T]) grow(n int) {
	size := g.len()
	newCap := max(2*len(g.buf), minGrowCapacity)
	for newCap <= maxCapacity && (newCap-size)/2 < n {
		newCap *= 2
	}
	if newCap > maxCapacity {
		panic(errors.Wrapf(ErrCapacityExceeded, "%d more elements with length %d", n, size))
	}

	newBuf := make([]T, newCap)
	newHead := (newCap - size) / 2
	copy(newBuf[newHead:], g.buf[g.head:g.tail])

	g.buf = newBuf
	g.head, g.tail = newHead, newHead+size
	g.stats.Grows++
}

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

func (g *GapArray[T]) checkIndex(i int) error {
	if i < 0 || i >= g.len() {
		return indexError(i, g.len())
	}
	return nil
}

func (g *GapArray[T]) checkRange(from, to int) error {
	if from < 0 || to > g.len() || from > to {
		return rangeError(from, to, g.len())
	}
	return nil
}
