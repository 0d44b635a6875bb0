// SPDX-License-Identifier: MIT

// Package orderedset provides Set, an insertion-ordered collection of
// distinct elements.
//
// Heuristics keep pools such as "unrouted customers" in a Set: a plain map
// loses the processing order and a plain slice makes removal O(n).
//
// Guarantees:
//   - iteration follows first insertion order of the elements still present;
//   - Contains, Add and Remove are amortised O(1);
//   - At(i) is O(1) after a lazy O(n) index rebuild, paid only when indexed
//     access follows a removal.
//
// Set carries no locks: a Set is owned by one goroutine at a time.
//
// Usage:
//
//	unrouted := orderedset.New(1, 2, 3, 4)
//	_ = unrouted.Remove(2)
//	third, _ := unrouted.At(2) // 4
//	for c := range unrouted.All() { ... }
package orderedset
