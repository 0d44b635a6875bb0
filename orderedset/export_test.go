// SPDX-License-Identifier: MIT

package orderedset

// IndexDirty exposes the positional-index state to external tests.
func (s *Set[T]) IndexDirty() bool { return s.dirty }

// ArenaLen exposes the arena size (live + dead slots) to external tests.
func (s *Set[T]) ArenaLen() int { return len(s.slots) }
