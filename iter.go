package gaparray

import (
	"iter"

	"github.com/cockroachdb/errors"
)

/*****************************************************************************
 * ITERATORS
 *
 * None of these detect modification during iteration. Mutating a GapArray
 * while iterating over it gives unspecified, but memory safe, results.
 *****************************************************************************/

// All returns an iterator over index-value pairs in order. It has the same
// semantics as slices.All. If you don't need indexes, use Values instead.
func (g *GapArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, t := range g.window() {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order. It has the same
// semantics as slices.Values.
func (g *GapArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range g.window() {
			if !yield(t) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from the last element
// to the first. It has the same semantics as slices.Backward.
func (g *GapArray[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		w := g.window()
		for i := len(w) - 1; i >= 0; i-- {
			if !yield(i, w[i]) {
				return
			}
		}
	}
}

// Iterator is a forward-only cursor over the elements a GapArray held when
// the Iterator was created.
type Iterator[T any] struct {
	elems []T
	next  int
}

// Iterator returns an Iterator positioned before the first element.
func (g *GapArray[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{elems: g.window()}
}

// HasNext returns whether Next would return an element.
func (it *Iterator[T]) HasNext() bool { return it.next < len(it.elems) }

// Next returns the next element, or false when the Iterator is exhausted.
func (it *Iterator[T]) Next() (t T, ok bool) {
	if !it.HasNext() {
		return
	}
	t = it.elems[it.next]
	it.next++
	return t, true
}

// Cursor moves in both directions over a GapArray and can overwrite the
// element it last returned. It does not support inserting or removing.
//
// A Cursor sits between two elements: NextIndex is the index of the element
// Next would return and PrevIndex the index of the one Prev would return.
type Cursor[T any] struct {
	g    *GapArray[T]
	pos  int
	last int
}

// Cursor returns a Cursor positioned before the i-th element, for 0 <= i <=
// Len().
func (g *GapArray[T]) Cursor(i int) (*Cursor[T], error) {
	if i < 0 || i > g.Len() {
		return nil, indexError(i, g.Len())
	}
	return &Cursor[T]{g: g, pos: i, last: -1}, nil
}

// HasNext returns whether Next would return an element.
func (c *Cursor[T]) HasNext() bool { return c.pos < c.g.Len() }

// HasPrev returns whether Prev would return an element.
func (c *Cursor[T]) HasPrev() bool { return c.pos > 0 }

// NextIndex returns the index of the element Next would return.
func (c *Cursor[T]) NextIndex() int { return c.pos }

// PrevIndex returns the index of the element Prev would return, which is -1
// at the start.
func (c *Cursor[T]) PrevIndex() int { return c.pos - 1 }

// Next advances the Cursor and returns the element it moved over, or false
// at the end.
func (c *Cursor[T]) Next() (t T, ok bool) {
	if !c.HasNext() {
		return
	}
	c.last = c.pos
	c.pos++
	return c.g.buf[c.g.head+c.last], true
}

// Prev moves the Cursor back and returns the element it moved over, or false
// at the start.
func (c *Cursor[T]) Prev() (t T, ok bool) {
	if !c.HasPrev() {
		return
	}
	c.pos--
	c.last = c.pos
	return c.g.buf[c.g.head+c.last], true
}

// Set overwrites the element last returned by Next or Prev.
func (c *Cursor[T]) Set(t T) error {
	if c.last < 0 {
		return ErrNoCurrent
	}
	_, err := c.g.Set(c.last, t)
	return err
}

// Insert always fails with ErrUnsupported.
func (c *Cursor[T]) Insert(T) error {
	return errors.Wrap(ErrUnsupported, "insert through a cursor")
}

// Remove always fails with ErrUnsupported.
func (c *Cursor[T]) Remove() error {
	return errors.Wrap(ErrUnsupported, "remove through a cursor")
}
