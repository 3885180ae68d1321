package gaparray

import (
	"cmp"
	"slices"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types Sum accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

/*****************************************************************************
 * COMPARABLE ELEMENTS
 *
 * These must not be methods, otherwise GapArray would be constrained to
 * comparable elements.
 *****************************************************************************/

// Contains returns whether t is in the GapArray. It has the same semantics as
// slices.Contains.
func Contains[T comparable](g *GapArray[T], t T) bool {
	return slices.Contains(g.window(), t)
}

// ContainsAll returns whether every one of values is in the GapArray.
func ContainsAll[T comparable](g *GapArray[T], values ...T) bool {
	w := g.window()
	for _, v := range values {
		if !slices.Contains(w, v) {
			return false
		}
	}
	return true
}

// IndexOf returns the index of the first occurrence of t or -1 if absent.
func IndexOf[T comparable](g *GapArray[T], t T) int {
	return slices.Index(g.window(), t)
}

// IndexOfFrom returns the index of the first occurrence of t at or after
// start, or -1 if absent. start may equal Len().
func IndexOfFrom[T comparable](g *GapArray[T], t T, start int) (int, error) {
	if err := g.checkRange(start, g.Len()); err != nil {
		return -1, err
	}
	i := slices.Index(g.window()[start:], t)
	if i == -1 {
		return -1, nil
	}
	return start + i, nil
}

// LastIndexOf returns the index of the last occurrence of t or -1 if absent.
func LastIndexOf[T comparable](g *GapArray[T], t T) int {
	i, _ := LastIndexOfBefore(g, t, g.Len())
	return i
}

// LastIndexOfBefore returns the index of the last occurrence of t before end,
// or -1 if absent.
func LastIndexOfBefore[T comparable](g *GapArray[T], t T, end int) (int, error) {
	if err := g.checkRange(0, end); err != nil {
		return -1, err
	}
	w := g.window()
	for i := end - 1; i >= 0; i-- {
		if w[i] == t {
			return i, nil
		}
	}
	return -1, nil
}

// Remove removes the first occurrence of t and reports whether there was
// one.
func Remove[T comparable](g *GapArray[T], t T) bool {
	i := IndexOf(g, t)
	if i == -1 {
		return false
	}
	_, _ = g.RemoveAt(i)
	return true
}

// RemoveAll removes the first occurrence of each of values, so a value listed
// twice removes two occurrences. It reports whether anything was removed.
func RemoveAll[T comparable](g *GapArray[T], values ...T) bool {
	var modified bool
	for _, v := range values {
		modified = Remove(g, v) || modified
	}
	return modified
}

// RetainAll removes every element that is not one of values, keeping the
// order of the others. It reports whether anything was removed.
func RetainAll[T comparable](g *GapArray[T], values ...T) bool {
	w := g.window()
	kept := 0
	for _, t := range w {
		if slices.Contains(values, t) {
			w[kept] = t
			kept++
		}
	}
	if kept == len(w) {
		return false
	}
	clear(w[kept:])
	g.tail = g.head + kept
	return true
}

// Replace overwrites every occurrence of oldValue with newValue and returns
// how many elements changed.
func Replace[T comparable](g *GapArray[T], oldValue, newValue T) int {
	var count int
	w := g.window()
	for i, t := range w {
		if t == oldValue {
			w[i] = newValue
			count++
		}
	}
	return count
}

// Equal returns whether both GapArrays have the same length and the same
// elements in the same order. Two nil GapArrays are equal, but an empty
// GapArray and nil are not.
func Equal[T comparable](g1, g2 *GapArray[T]) bool {
	if g1 == nil || g2 == nil {
		return g1 == g2
	}
	return slices.Equal(g1.window(), g2.window())
}

/*****************************************************************************
 * ORDERED ELEMENTS
 *****************************************************************************/

// Min returns the minimum element. It has the same semantics as slices.Min,
// except it returns ErrEmpty instead of panicking on an empty GapArray.
func Min[T cmp.Ordered](g *GapArray[T]) (T, error) {
	if g.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return slices.Min(g.window()), nil
}

// Max returns the maximum element. It has the same semantics as slices.Max,
// except it returns ErrEmpty instead of panicking on an empty GapArray.
func Max[T cmp.Ordered](g *GapArray[T]) (T, error) {
	if g.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return slices.Max(g.window()), nil
}

// Sort sorts the elements in ascending order.
func Sort[T cmp.Ordered](g *GapArray[T]) { slices.Sort(g.window()) }

// SortRange sorts the elements in [from, to) in ascending order, leaving the
// others in place.
func SortRange[T cmp.Ordered](g *GapArray[T], from, to int) error {
	if err := g.checkRange(from, to); err != nil {
		return err
	}
	slices.Sort(g.window()[from:to])
	return nil
}

// BinarySearch searches for t in an ascending GapArray. It returns the index
// of a matching element, or -(i + 1) where i is the index t would be inserted
// at. The result is meaningless if the GapArray is not sorted.
func BinarySearch[T cmp.Ordered](g *GapArray[T], t T) int {
	i, _ := BinarySearchRange(g, 0, g.Len(), t)
	return i
}

// BinarySearchRange is BinarySearch restricted to [from, to), which must be
// sorted. Indexes in the result count from the start of the GapArray, not
// from.
func BinarySearchRange[T cmp.Ordered](g *GapArray[T], from, to int, t T) (int, error) {
	if err := g.checkRange(from, to); err != nil {
		return 0, err
	}
	i, found := slices.BinarySearch(g.window()[from:to], t)
	if found {
		return from + i, nil
	}
	return -(from + i + 1), nil
}

/*****************************************************************************
 * NUMERIC ELEMENTS
 *****************************************************************************/

// Sum returns the sum of every element, or 0 for an empty GapArray.
func Sum[T Number](g *GapArray[T]) T {
	var sum T
	for _, t := range g.window() {
		sum += t
	}
	return sum
}

// NoEntryValue returns the value used to mean "absent" where an integer has
// to be returned anyway: the minimum of T, which is 0 for unsigned types.
func NoEntryValue[T constraints.Integer]() T {
	var v T
	if ^v > 0 {
		return 0
	}
	// Shifting 1 into the sign bit wraps around to the minimum.
	one := T(1)
	return one << (8*unsafe.Sizeof(v) - 1)
}
