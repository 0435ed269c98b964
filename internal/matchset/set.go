package matchset

import (
	"fmt"
	"math/bits"
)

// InlineCapacity is the largest capacity held without allocating.
const InlineCapacity = 128

const wordBits = 64

// Set is a fixed-capacity set of marked positions in [0, Len()).
// The zero value is an empty set of capacity 0.
type Set struct {
	words    [InlineCapacity / wordBits]uint64
	flags    []bool
	capacity int
}

// New returns a Set for exactly capacity positions, all unmarked.
func New(capacity int) Set {
	if capacity < 0 {
		panic(fmt.Sprintf("matchset: negative capacity %d", capacity))
	}

	if capacity <= InlineCapacity {
		return Set{capacity: capacity}
	}

	return Set{
		flags:    make([]bool, capacity),
		capacity: capacity,
	}
}

// Get reports whether i has been marked.
func (s *Set) Get(i int) bool {
	if s.flags != nil {
		return s.flags[i]
	}

	s.checkIndex(i)

	return s.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Mark marks i. Marking an already marked position is a no-op.
func (s *Set) Mark(i int) {
	if s.flags != nil {
		s.flags[i] = true

		return
	}

	s.checkIndex(i)
	s.words[i/wordBits] |= 1 << (uint(i) % wordBits)
}

// Len returns the capacity the set was built with.
func (s *Set) Len() int {
	return s.capacity
}

// Count returns the number of marked positions.
func (s *Set) Count() int {
	if s.flags == nil {
		n := 0
		for _, w := range s.words {
			n += bits.OnesCount64(w)
		}

		return n
	}

	n := 0

	for _, f := range s.flags {
		if f {
			n++
		}
	}

	return n
}

// Kind returns the representation chosen by New.
func (s *Set) Kind() Kind {
	if s.flags != nil {
		return KindSlice
	}

	return KindBitmask
}

// checkIndex keeps the inline form as strict as the slice form, which
// would otherwise accept indices between capacity and InlineCapacity.
func (s *Set) checkIndex(i int) {
	if uint(i) >= uint(s.capacity) {
		panic(fmt.Sprintf("matchset: index %d out of range [0:%d]", i, s.capacity))
	}
}
