package gaparray

/*****************************************************************************
 * POSITIONAL API
 *****************************************************************************/

// At indexes into the i-th position in the GapArray. Panics if out of bounds.
func (g *GapArray[T]) At(i int) T {
	if err := g.checkIndex(i); err != nil {
		panic(err)
	}
	return g.buf[g.head+i]
}

// Get returns the i-th element, or an error wrapping ErrIndexOutOfRange.
func (g *GapArray[T]) Get(i int) (t T, err error) {
	if err = g.checkIndex(i); err != nil {
		return
	}
	return g.buf[g.head+i], nil
}

// Set writes t to the i-th position and returns the element it replaced.
func (g *GapArray[T]) Set(i int, t T) (old T, err error) {
	if err = g.checkIndex(i); err != nil {
		return
	}
	p := g.head + i
	old, g.buf[p] = g.buf[p], t
	return old, nil
}

// InsertAt inserts t so that it becomes the i-th element, for 0 <= i <=
// Len(). Elements in the front half are shifted towards the head and
// elements in the back half towards the tail, so the cost is proportional to
// the distance from i to the nearer end of the window. When the front has no
// free slot the back is used instead, even for an index near the front.
func (g *GapArray[T]) InsertAt(i int, t T) error {
	n := g.len()
	if i < 0 || i > n {
		return indexError(i, n)
	}

	front := 2*i < n
	if g.tail == len(g.buf) && (g.head == 0 || !front) {
		g.makeRoom(1, backSide)
	}

	if front && g.head > 0 {
		g.head--
		copy(g.buf[g.head:g.head+i], g.buf[g.head+1:g.head+1+i])
		g.buf[g.head+i] = t
		return nil
	}

	p := g.head + i
	copy(g.buf[p+1:g.tail+1], g.buf[p:g.tail])
	g.buf[p] = t
	g.tail++
	return nil
}

// RemoveAt removes the i-th element and returns it. Removal always closes the
// gap by shifting the elements after i towards the head, so removing near the
// front costs O(Len()). Use PopFront to remove the first element in O(1).
func (g *GapArray[T]) RemoveAt(i int) (t T, err error) {
	if err = g.checkIndex(i); err != nil {
		return
	}
	p := g.head + i
	t = g.buf[p]
	copy(g.buf[p:g.tail-1], g.buf[p+1:g.tail])
	g.tail--
	var zero T
	g.buf[g.tail] = zero
	return t, nil
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// PushBack takes in a variable number of arguments and appends them in
// order. It makes room at most once, no matter how many arguments.
func (g *GapArray[T]) PushBack(ts ...T) {
	n := len(ts)
	if n == 0 {
		return
	}
	if len(g.buf)-g.tail < n {
		g.makeRoom(n, backSide)
	}
	copy(g.buf[g.tail:], ts)
	g.tail += n
}

// PushFront takes in a variable number of arguments and puts them at the
// front of the GapArray. The last argument is the new front of the list.
func (g *GapArray[T]) PushFront(ts ...T) {
	n := len(ts)
	if n == 0 {
		return
	}
	if g.head < n {
		g.makeRoom(n, frontSide)
	}
	for i, t := range ts {
		g.buf[g.head-1-i] = t
	}
	g.head -= n
}

// PeekFront returns the first element. If the GapArray is empty, it returns
// false.
func (g *GapArray[T]) PeekFront() (t T, ok bool) {
	if g.Empty() {
		return
	}
	return g.buf[g.head], true
}

// PeekBack returns the last element. If the GapArray is empty, it returns
// false.
func (g *GapArray[T]) PeekBack() (t T, ok bool) {
	if g.Empty() {
		return
	}
	return g.buf[g.tail-1], true
}

// PopFront removes the first element in O(1) and returns it. If the GapArray
// is empty, it returns false. The vacated slot is zeroed.
func (g *GapArray[T]) PopFront() (t T, ok bool) {
	if t, ok = g.PeekFront(); ok {
		var zero T
		g.buf[g.head] = zero
		g.head++
	}
	return
}

// PopBack removes the last element and returns it. If the GapArray is empty,
// it returns false. The vacated slot is zeroed.
func (g *GapArray[T]) PopBack() (t T, ok bool) {
	if t, ok = g.PeekBack(); ok {
		g.tail--
		var zero T
		g.buf[g.tail] = zero
	}
	return
}
