package bench

import (
	"context"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Lookup returns the workload with the given name.
func Lookup(name string) (Workload, error) {
	switch name {
	case ListWorkload{}.Name():
		return ListWorkload{}, nil
	case QueueWorkload{}.Name():
		return QueueWorkload{}, nil
	case ParallelWorkload{}.Name():
		return ParallelWorkload{}, nil
	default:
		return nil, errors.Newf("unknown workload %q", name)
	}
}

func newRand(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

/*****************************************************************************
 * LIST
 *****************************************************************************/

// ListWorkload appends size elements, then runs Ops random operations: 30%
// insert at a random index, 30% remove, 30% read and 10% spike. A spike
// inserts or removes Len()/10 elements at random positions, alternating
// between the two on every spike. The cycle repeats Iterations times on the
// same container, which keeps growing.
type ListWorkload struct{}

func (ListWorkload) Name() string         { return "list" }
func (ListWorkload) Phases() []string     { return []string{"Time"} }
func (ListWorkload) Containers() []string { return names(sequences) }

func (w ListWorkload) Measure(
	ctx context.Context, container string, size int, cfg Config, seed uint64,
) ([]time.Duration, error) {
	newSeq, ok := find(sequences, container)
	if !ok {
		return nil, errors.Newf("unknown %s container %q", w.Name(), container)
	}
	s := newSeq()
	rng := newRand(seed, 0)
	removing := false
	var read int

	start := time.Now()
	for range cfg.Iterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := range size {
			s.PushBack(j)
		}
		for j := range cfg.Ops {
			n := s.Len()
			if n == 0 {
				continue
			}
			i := rng.IntN(n)
			switch op := rng.IntN(100); {
			case op < 30:
				s.InsertAt(i, j)
			case op < 60:
				s.RemoveAt(i)
			case op < 90:
				read += s.Get(i)
			default:
				spike(s, rng, removing)
				removing = !removing
			}
		}
	}
	elapsed := time.Since(start)
	runtime.KeepAlive(read)
	return []time.Duration{elapsed}, nil
}

func spike(s Sequence, rng *rand.Rand, removing bool) {
	k := s.Len() / 10
	for v := range k {
		if removing {
			if s.Len() == 0 {
				return
			}
			s.RemoveAt(rng.IntN(s.Len()))
		} else {
			s.InsertAt(rng.IntN(s.Len()+1), v)
		}
	}
}

/*****************************************************************************
 * QUEUE
 *****************************************************************************/

// queuePhases are the push percentages of each queue phase.
var queuePhases = []struct {
	name    string
	pushPct int
}{
	{"Push-heavy", 80},
	{"Mixed", 50},
	{"Pop-heavy", 20},
}

// QueueWorkload fills a fresh queue with size elements, untimed, then times
// Ops random pushes and pops. It does so three times, with 80%, 50% and 20%
// pushes. Iterations is ignored.
type QueueWorkload struct{}

func (QueueWorkload) Name() string         { return "queue" }
func (QueueWorkload) Containers() []string { return names(queues) }
func (QueueWorkload) Phases() []string {
	p := make([]string, len(queuePhases))
	for i, ph := range queuePhases {
		p[i] = ph.name
	}
	return p
}

func (w QueueWorkload) Measure(
	ctx context.Context, container string, size int, cfg Config, seed uint64,
) ([]time.Duration, error) {
	newQueue, ok := find(queues, container)
	if !ok {
		return nil, errors.Newf("unknown %s container %q", w.Name(), container)
	}
	rng := newRand(seed, 1)
	var popped int

	times := make([]time.Duration, len(queuePhases))
	for p, ph := range queuePhases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		q := newQueue()
		for i := range size {
			q.Push(i)
		}

		start := time.Now()
		for i := range cfg.Ops {
			if rng.IntN(100) < ph.pushPct {
				q.Push(i)
			} else {
				v, _ := q.Pop()
				popped += v
			}
		}
		times[p] = time.Since(start)
	}
	runtime.KeepAlive(popped)
	return times, nil
}

/*****************************************************************************
 * PARALLEL
 *****************************************************************************/

const (
	// Deques longer than this are cut back by trimCount elements.
	trimAbove = 100
	trimCount = 95
	burstLen  = 50
)

// ParallelWorkload creates size independent deques holding 10 elements each
// and drives each from its own goroutine with Ops random operations: 15%
// push front, 15% push back, 20% pop front, 20% pop back, 5% push 50 at the
// front, 5% push 50 at the back and 20% random read. A deque longer than 100
// elements is cut back by popping 95 from the front. Deques are never shared
// between goroutines.
type ParallelWorkload struct{}

func (ParallelWorkload) Name() string         { return "parallel" }
func (ParallelWorkload) Phases() []string     { return []string{"Time"} }
func (ParallelWorkload) Containers() []string { return names(deques) }

func (w ParallelWorkload) Measure(
	ctx context.Context, container string, size int, cfg Config, seed uint64,
) ([]time.Duration, error) {
	newDeque, ok := find(deques, container)
	if !ok {
		return nil, errors.Newf("unknown %s container %q", w.Name(), container)
	}
	ds := make([]Deque, size)
	for i := range ds {
		ds[i] = newDeque()
		for j := range 10 {
			ds[i].PushFront(j)
		}
	}

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, d := range ds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			driveDeque(d, newRand(seed, uint64(i)+2), cfg.Ops)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return []time.Duration{time.Since(start)}, nil
}

func driveDeque(d Deque, rng *rand.Rand, ops int) {
	var read int
	for j := range ops {
		switch op := rng.IntN(100); {
		case op < 15:
			d.PushFront(j)
		case op < 30:
			d.PushBack(j)
		case op < 50:
			d.PopFront()
		case op < 70:
			d.PopBack()
		case op < 75:
			for k := range burstLen {
				d.PushFront(k)
			}
		case op < 80:
			for k := range burstLen {
				d.PushBack(k)
			}
		default:
			if n := d.Len(); n > 0 {
				read += d.Get(rng.IntN(n))
			}
		}
		if d.Len() > trimAbove {
			for range trimCount {
				d.PopFront()
			}
		}
	}
	runtime.KeepAlive(read)
}
