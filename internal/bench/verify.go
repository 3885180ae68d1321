package bench

import (
	"github.com/cockroachdb/errors"
	"github.com/eapache/queue"
	"github.com/lucasgdosr/gaparray"
)

// VerifyQueue pushes and pops the same random stream through a GapArray, a
// slice and a ring buffer, 80% pushes, and fails on the first value or
// length that differs between them.
func VerifyQueue(seed uint64, ops int) error {
	rng := newRand(seed, 3)
	g := gaparray.New[int]()
	var s []int
	ring := queue.New()

	for op := range ops {
		v := int(rng.Int64())
		if rng.IntN(5) < 4 {
			g.PushBack(v)
			s = append(s, v)
			ring.Add(v)
			continue
		}
		if len(s) == 0 {
			continue
		}
		v1, _ := g.PopFront()
		v2 := s[0]
		s = s[1:]
		v3 := ring.Remove().(int)
		if v1 != v2 || v2 != v3 {
			return errors.Newf("op %d: popped %d from gaparray, %d from slice, %d from ring buffer", op, v1, v2, v3)
		}
	}

	if g.Len() != len(s) || len(s) != ring.Length() {
		return errors.Newf("length mismatch: gaparray %d, slice %d, ring buffer %d", g.Len(), len(s), ring.Length())
	}
	for i, want := range s {
		if got := g.At(i); got != want {
			return errors.Newf("index %d: gaparray has %d, slice has %d", i, got, want)
		}
		if got := ring.Get(i).(int); got != want {
			return errors.Newf("index %d: ring buffer has %d, slice has %d", i, got, want)
		}
	}
	return nil
}

// VerifySequence applies the same random positional inserts, removes and
// overwrites to every Sequence container and compares their contents every
// checkEvery operations and at the end.
func VerifySequence(seed uint64, ops int) error {
	const checkEvery = 64
	rng := newRand(seed, 4)
	seqs := make([]Sequence, len(sequences))
	for i, n := range sequences {
		seqs[i] = n.make()
	}
	ref := seqs[0]

	for op := range ops {
		n := ref.Len()
		switch r := rng.IntN(10); {
		case r < 5:
			i := rng.IntN(n + 1)
			for _, s := range seqs {
				s.InsertAt(i, op)
			}
		case r < 8 && n > 0:
			i := rng.IntN(n)
			want := ref.RemoveAt(i)
			for k, s := range seqs[1:] {
				if got := s.RemoveAt(i); got != want {
					return errors.Newf("op %d: removed %d from %s, %d from %s",
						op, got, sequences[k+1].name, want, sequences[0].name)
				}
			}
		case n > 0:
			i := rng.IntN(n)
			for _, s := range seqs {
				s.Set(i, -op)
			}
		}
		if op%checkEvery == 0 || op == ops-1 {
			if err := compareSequences(seqs); err != nil {
				return errors.Wrapf(err, "after op %d", op)
			}
		}
	}
	return nil
}

func compareSequences(seqs []Sequence) error {
	ref := seqs[0]
	for k, s := range seqs[1:] {
		name := sequences[k+1].name
		if s.Len() != ref.Len() {
			return errors.Newf("%s has length %d, %s has %d", name, s.Len(), sequences[0].name, ref.Len())
		}
		for i := range ref.Len() {
			if got, want := s.Get(i), ref.Get(i); got != want {
				return errors.Newf("index %d: %s has %d, %s has %d", i, name, got, sequences[0].name, want)
			}
		}
	}
	return nil
}
