package gaparray

import (
	"math/rand/v2"
	"slices"
)

/*****************************************************************************
 * RANGE API
 *****************************************************************************/

// InsertRange inserts values so that the first one becomes the element at
// offset, for 0 <= offset <= Len(). Unlike InsertAt, it always shifts the
// elements after offset towards the tail.
func (g *GapArray[T]) InsertRange(offset int, values ...T) error {
	n := g.len()
	if offset < 0 || offset > n {
		return indexError(offset, n)
	}
	k := len(values)
	if k == 0 {
		return nil
	}
	if len(g.buf)-g.tail < k {
		g.makeRoom(k, backSide)
	}
	p := g.head + offset
	copy(g.buf[p+k:g.tail+k], g.buf[p:g.tail])
	copy(g.buf[p:], values)
	g.tail += k
	return nil
}

// RemoveRange removes the elements in [from, to).
func (g *GapArray[T]) RemoveRange(from, to int) error {
	if err := g.checkRange(from, to); err != nil {
		return err
	}
	k := to - from
	if k == 0 {
		return nil
	}
	copy(g.buf[g.head+from:], g.buf[g.head+to:g.tail])
	clear(g.buf[g.tail-k : g.tail])
	g.tail -= k
	return nil
}

// SetRange overwrites the elements starting at offset with values. It fails
// if values do not fit in the current length.
func (g *GapArray[T]) SetRange(offset int, values ...T) error {
	if err := g.checkRange(offset, offset+len(values)); err != nil {
		return err
	}
	copy(g.buf[g.head+offset:], values)
	return nil
}

// Slice returns a new GapArray holding a copy of the elements in [from, to).
// The result never shares memory with g.
func (g *GapArray[T]) Slice(from, to int) (*GapArray[T], error) {
	if err := g.checkRange(from, to); err != nil {
		return nil, err
	}
	return FromSlice(g.buf[g.head+from : g.head+to]), nil
}

// Fill sets every element to t.
func (g *GapArray[T]) Fill(t T) {
	w := g.window()
	for i := range w {
		w[i] = t
	}
}

// FillRange sets every element in [from, to) to t.
func (g *GapArray[T]) FillRange(from, to int, t T) error {
	if err := g.checkRange(from, to); err != nil {
		return err
	}
	w := g.buf[g.head+from : g.head+to]
	for i := range w {
		w[i] = t
	}
	return nil
}

// Reverse reverses the order of the elements in place.
func (g *GapArray[T]) Reverse() { slices.Reverse(g.window()) }

// ReverseRange reverses the elements in [from, to) in place.
func (g *GapArray[T]) ReverseRange(from, to int) error {
	if err := g.checkRange(from, to); err != nil {
		return err
	}
	slices.Reverse(g.buf[g.head+from : g.head+to])
	return nil
}

// Shuffle permutes the elements uniformly at random with a Fisher-Yates
// shuffle. If r is nil, the global source from math/rand/v2 is used.
func (g *GapArray[T]) Shuffle(r *rand.Rand) {
	w := g.window()
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	for i := len(w) - 1; i > 0; i-- {
		j := intN(i + 1)
		w[i], w[j] = w[j], w[i]
	}
}

// SortFunc sorts the elements in place as determined by cmp. The sort is not
// guaranteed to be stable.
func (g *GapArray[T]) SortFunc(cmp func(a, b T) int) { slices.SortFunc(g.window(), cmp) }

// SortRangeFunc sorts the elements in [from, to) as determined by cmp,
// leaving the others in place.
func (g *GapArray[T]) SortRangeFunc(from, to int, cmp func(a, b T) int) error {
	if err := g.checkRange(from, to); err != nil {
		return err
	}
	slices.SortFunc(g.buf[g.head+from:g.head+to], cmp)
	return nil
}

// TransformValues replaces every element with fn applied to it.
func (g *GapArray[T]) TransformValues(fn func(T) T) {
	w := g.window()
	for i, t := range w {
		w[i] = fn(t)
	}
}

// Grep returns a new GapArray with the elements that satisfy f, in order. g
// is not modified.
func (g *GapArray[T]) Grep(f func(T) bool) *GapArray[T] { return g.grep(f, true) }

// InverseGrep returns a new GapArray with the elements that do not satisfy f,
// in order. g is not modified.
func (g *GapArray[T]) InverseGrep(f func(T) bool) *GapArray[T] { return g.grep(f, false) }

func (g *GapArray[T]) grep(f func(T) bool, want bool) *GapArray[T] {
	result := New[T]()
	for _, t := range g.window() {
		if f(t) == want {
			result.PushBack(t)
		}
	}
	return result
}

// ForEach calls f for every element in order until f returns false. It
// reports whether every call returned true.
func (g *GapArray[T]) ForEach(f func(T) bool) bool {
	for _, t := range g.window() {
		if !f(t) {
			return false
		}
	}
	return true
}

// ForEachDescending is ForEach from the last element to the first.
func (g *GapArray[T]) ForEachDescending(f func(T) bool) bool {
	w := g.window()
	for i := len(w) - 1; i >= 0; i-- {
		if !f(w[i]) {
			return false
		}
	}
	return true
}

// ContainsFunc returns whether an element satisfying f is in the GapArray.
// It has the same semantics as slices.ContainsFunc.
func (g *GapArray[T]) ContainsFunc(f func(T) bool) bool {
	return slices.ContainsFunc(g.window(), f)
}

// IndexFunc returns the index of the first element that satisfies f or -1 if
// none do. It has the same semantics as slices.IndexFunc.
func (g *GapArray[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(g.window(), f)
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// ToSlice allocates a slice holding a copy of every element.
func (g *GapArray[T]) ToSlice() []T {
	return slices.Clone(g.window())
}

// CopyRange allocates a slice holding a copy of length elements starting at
// offset.
func (g *GapArray[T]) CopyRange(offset, length int) ([]T, error) {
	if length < 0 {
		return nil, rangeError(offset, offset+length, g.Len())
	}
	if err := g.checkRange(offset, offset+length); err != nil {
		return nil, err
	}
	return slices.Clone(g.buf[g.head+offset : g.head+offset+length]), nil
}

// CopyTo copies length elements starting at srcOffset into dst starting at
// dstOffset. It fails without copying anything if either range is out of
// bounds.
func (g *GapArray[T]) CopyTo(dst []T, srcOffset, dstOffset, length int) error {
	if length < 0 {
		return rangeError(srcOffset, srcOffset+length, g.Len())
	}
	if err := g.checkRange(srcOffset, srcOffset+length); err != nil {
		return err
	}
	if dstOffset < 0 || dstOffset > len(dst) || length > len(dst)-dstOffset {
		return rangeError(dstOffset, dstOffset+length, len(dst))
	}
	copy(dst[dstOffset:], g.buf[g.head+srcOffset:g.head+srcOffset+length])
	return nil
}

// CopySlice has the same semantics as the copy() built-in function. It copies
// elements starting at the start index until buf is full or the GapArray is
// over, whichever happens first, and returns the number of elements copied.
// Panics if start is out of bounds.
func (g *GapArray[T]) CopySlice(start int, buf []T) int {
	return copy(buf, g.window()[start:])
}
