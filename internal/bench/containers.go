package bench

import (
	"container/list"
	"slices"

	"github.com/eapache/queue"
	"github.com/lucasgdosr/gaparray"
)

// Container names accepted by --containers.
const (
	GapArray   = "gaparray"
	Slice      = "slice"
	LinkedList = "linkedlist"
	RingBuffer = "ringbuffer"
)

// named pairs a container name with its constructor.
type named[C any] struct {
	name string
	make func() C
}

func find[C any](all []named[C], name string) (func() C, bool) {
	for _, n := range all {
		if n.name == name {
			return n.make, true
		}
	}
	return nil, false
}

func names[C any](all []named[C]) []string {
	s := make([]string, len(all))
	for i, n := range all {
		s[i] = n.name
	}
	return s
}

// mustNot panics on errors that only a bug in a workload can cause, such as
// an index the workload computed from Len.
func mustNot(err error) {
	if err != nil {
		panic(err)
	}
}

/*****************************************************************************
 * SEQUENCES
 *****************************************************************************/

// Sequence is the positional list the list workload drives. Indexes are
// always in range.
type Sequence interface {
	Len() int
	Get(i int) int
	Set(i, v int)
	PushBack(v int)
	InsertAt(i, v int)
	RemoveAt(i int) int
}

var sequences = []named[Sequence]{
	{GapArray, func() Sequence { return &gapSequence{g: gaparray.New[int]()} }},
	{Slice, func() Sequence { return &sliceSequence{} }},
	{LinkedList, func() Sequence { return &listSequence{l: list.New()} }},
}

type gapSequence struct{ g *gaparray.GapArray[int] }

func (s *gapSequence) Len() int          { return s.g.Len() }
func (s *gapSequence) Get(i int) int     { return s.g.At(i) }
func (s *gapSequence) PushBack(v int)    { s.g.PushBack(v) }
func (s *gapSequence) InsertAt(i, v int) { mustNot(s.g.InsertAt(i, v)) }
func (s *gapSequence) Set(i, v int) {
	_, err := s.g.Set(i, v)
	mustNot(err)
}
func (s *gapSequence) RemoveAt(i int) int {
	v, err := s.g.RemoveAt(i)
	mustNot(err)
	return v
}

type sliceSequence struct{ s []int }

func (s *sliceSequence) Len() int          { return len(s.s) }
func (s *sliceSequence) Get(i int) int     { return s.s[i] }
func (s *sliceSequence) Set(i, v int)      { s.s[i] = v }
func (s *sliceSequence) PushBack(v int)    { s.s = append(s.s, v) }
func (s *sliceSequence) InsertAt(i, v int) { s.s = slices.Insert(s.s, i, v) }
func (s *sliceSequence) RemoveAt(i int) int {
	v := s.s[i]
	s.s = slices.Delete(s.s, i, i+1)
	return v
}

type listSequence struct{ l *list.List }

// at walks to the i-th element from the nearer end.
func (s *listSequence) at(i int) *list.Element {
	n := s.l.Len()
	if i < n/2 {
		e := s.l.Front()
		for range i {
			e = e.Next()
		}
		return e
	}
	e := s.l.Back()
	for range n - 1 - i {
		e = e.Prev()
	}
	return e
}

func (s *listSequence) Len() int       { return s.l.Len() }
func (s *listSequence) Get(i int) int  { return s.at(i).Value.(int) }
func (s *listSequence) Set(i, v int)   { s.at(i).Value = v }
func (s *listSequence) PushBack(v int) { s.l.PushBack(v) }
func (s *listSequence) InsertAt(i, v int) {
	if i == s.l.Len() {
		s.l.PushBack(v)
		return
	}
	s.l.InsertBefore(v, s.at(i))
}
func (s *listSequence) RemoveAt(i int) int { return s.l.Remove(s.at(i)).(int) }

/*****************************************************************************
 * QUEUES
 *****************************************************************************/

// Queue is the FIFO the queue workload drives.
type Queue interface {
	Len() int
	Push(v int)
	// Pop returns false on an empty queue.
	Pop() (int, bool)
}

var queues = []named[Queue]{
	{GapArray, func() Queue { return &gapQueue{g: gaparray.New[int]()} }},
	{RingBuffer, func() Queue { return &ringQueue{q: queue.New()} }},
	{Slice, func() Queue { return &sliceQueue{} }},
	{LinkedList, func() Queue { return &listQueue{l: list.New()} }},
}

type gapQueue struct{ g *gaparray.GapArray[int] }

func (q *gapQueue) Len() int         { return q.g.Len() }
func (q *gapQueue) Push(v int)       { q.g.PushBack(v) }
func (q *gapQueue) Pop() (int, bool) { return q.g.PopFront() }

type ringQueue struct{ q *queue.Queue }

func (q *ringQueue) Len() int   { return q.q.Length() }
func (q *ringQueue) Push(v int) { q.q.Add(v) }
func (q *ringQueue) Pop() (int, bool) {
	if q.q.Length() == 0 {
		return 0, false
	}
	return q.q.Remove().(int), true
}

type sliceQueue struct{ s []int }

func (q *sliceQueue) Len() int   { return len(q.s) }
func (q *sliceQueue) Push(v int) { q.s = append(q.s, v) }
func (q *sliceQueue) Pop() (int, bool) {
	if len(q.s) == 0 {
		return 0, false
	}
	v := q.s[0]
	q.s = q.s[1:]
	return v, true
}

type listQueue struct{ l *list.List }

func (q *listQueue) Len() int   { return q.l.Len() }
func (q *listQueue) Push(v int) { q.l.PushBack(v) }
func (q *listQueue) Pop() (int, bool) {
	e := q.l.Front()
	if e == nil {
		return 0, false
	}
	return q.l.Remove(e).(int), true
}

/*****************************************************************************
 * DEQUES
 *****************************************************************************/

// Deque is the double-ended queue the parallel workload drives.
type Deque interface {
	Len() int
	Get(i int) int
	PushFront(v int)
	PushBack(v int)
	PopFront() (int, bool)
	PopBack() (int, bool)
}

var deques = []named[Deque]{
	{GapArray, func() Deque { return &gapDeque{g: gaparray.New[int]()} }},
	{Slice, func() Deque { return &sliceDeque{} }},
	{LinkedList, func() Deque { return &listDeque{listSequence{l: list.New()}} }},
}

type gapDeque struct{ g *gaparray.GapArray[int] }

func (d *gapDeque) Len() int              { return d.g.Len() }
func (d *gapDeque) Get(i int) int         { return d.g.At(i) }
func (d *gapDeque) PushFront(v int)       { d.g.PushFront(v) }
func (d *gapDeque) PushBack(v int)        { d.g.PushBack(v) }
func (d *gapDeque) PopFront() (int, bool) { return d.g.PopFront() }
func (d *gapDeque) PopBack() (int, bool)  { return d.g.PopBack() }

type sliceDeque struct{ s []int }

func (d *sliceDeque) Len() int        { return len(d.s) }
func (d *sliceDeque) Get(i int) int   { return d.s[i] }
func (d *sliceDeque) PushFront(v int) { d.s = slices.Insert(d.s, 0, v) }
func (d *sliceDeque) PushBack(v int)  { d.s = append(d.s, v) }
func (d *sliceDeque) PopFront() (int, bool) {
	if len(d.s) == 0 {
		return 0, false
	}
	v := d.s[0]
	d.s = d.s[1:]
	return v, true
}
func (d *sliceDeque) PopBack() (int, bool) {
	if len(d.s) == 0 {
		return 0, false
	}
	v := d.s[len(d.s)-1]
	d.s = d.s[:len(d.s)-1]
	return v, true
}

type listDeque struct{ listSequence }

func (d *listDeque) PushFront(v int) { d.l.PushFront(v) }
func (d *listDeque) PopFront() (int, bool) {
	e := d.l.Front()
	if e == nil {
		return 0, false
	}
	return d.l.Remove(e).(int), true
}
func (d *listDeque) PopBack() (int, bool) {
	e := d.l.Back()
	if e == nil {
		return 0, false
	}
	return d.l.Remove(e).(int), true
}
