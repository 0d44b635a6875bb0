// SPDX-License-Identifier: MIT

package orderedset

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrKeyNotPresent is returned by Remove for an element not in the set.
	ErrKeyNotPresent = errors.New("orderedset: key not present")

	// ErrIndexOutOfRange is returned by At for i outside [0, Len()).
	ErrIndexOutOfRange = errors.New("orderedset: index out of range")
)

// slot is one arena cell. Removed elements leave a dead slot behind until
// the next compaction.
type slot[T comparable] struct {
	val  T
	live bool
}

// Set is an insertion-ordered set of distinct elements.
//
// The arena (slots) is the source of truth; pos maps each live element to
// its slot. The positional index (keys) is a derived cache: Add extends it
// while it is clean, any removal marks it dirty, and At rebuilds it on demand.
//
// The zero value is an empty set ready to use.
type Set[T comparable] struct {
	slots []slot[T]
	pos   map[T]int
	dead  int // number of dead slots

	keys  []T
	dirty bool
}

// New returns a Set holding items in order; repeated items keep their first
// position.
func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		slots: make([]slot[T], 0, len(items)),
		pos:   make(map[T]int, len(items)),
		dirty: true,
	}
	for _, v := range items {
		s.Add(v)
	}

	return s
}

// Len returns the number of elements.
func (s *Set[T]) Len() int { return len(s.pos) }

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.pos[v]
	return ok
}

// Add inserts v at the end. Adding an element already present is a no-op
// and keeps its original position. A clean index is extended in place.
func (s *Set[T]) Add(v T) {
	if s.pos == nil {
		s.pos = make(map[T]int)
		s.dirty = true
	}
	if _, ok := s.pos[v]; ok {
		return
	}
	s.pos[v] = len(s.slots)
	s.slots = append(s.slots, slot[T]{val: v, live: true})
	if !s.dirty {
		s.keys = append(s.keys, v)
	}
}

// Remove deletes v, returning ErrKeyNotPresent if v is absent.
// The positional index is invalidated.
func (s *Set[T]) Remove(v T) error {
	if !s.Discard(v) {
		return fmt.Errorf("Remove(%v): %w", v, ErrKeyNotPresent)
	}

	return nil
}

// Discard deletes v if present and reports whether it was.
func (s *Set[T]) Discard(v T) bool {
	i, ok := s.pos[v]
	if !ok {
		return false
	}
	delete(s.pos, v)
	var zero T
	s.slots[i] = slot[T]{val: zero}
	s.dead++
	s.dirty = true
	s.keys = nil
	s.maybeCompact()

	return true
}

// DifferenceUpdate removes every element of items that is present; absent
// ones are ignored. The positional index is invalidated.
func (s *Set[T]) DifferenceUpdate(items ...T) {
	for _, v := range items {
		s.Discard(v)
	}
	s.dirty = true
	s.keys = nil
}

// At returns the i-th element in insertion order, rebuilding the positional
// index first if a removal made it stale.
func (s *Set[T]) At(i int) (T, error) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, fmt.Errorf("At(%d) with length %d: %w", i, s.Len(), ErrIndexOutOfRange)
	}
	if s.dirty {
		s.rebuildIndex()
	}

	return s.keys[i], nil
}

// All returns an iterator over the elements in insertion order.
// The set must not be modified during iteration.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, sl := range s.slots {
			if sl.live && !yield(sl.val) {
				return
			}
		}
	}
}

// Slice returns the elements in insertion order as a new slice.
func (s *Set[T]) Slice() []T {
	out := make([]T, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}

	return out
}

// rebuildIndex recomputes keys from the arena and clears the dirty flag.
func (s *Set[T]) rebuildIndex() {
	s.keys = s.Slice()
	s.dirty = false
}

// maybeCompact drops dead slots once they outnumber live ones, keeping
// iteration O(Len) amortised. Positions in pos are rewritten.
func (s *Set[T]) maybeCompact() {
	if s.dead <= len(s.pos) {
		return
	}
	live := s.slots[:0]
	for _, sl := range s.slots {
		if sl.live {
			s.pos[sl.val] = len(live)
			live = append(live, sl)
		}
	}
	clear(s.slots[len(live):])
	s.slots = live
	s.dead = 0
}
