// SPDX-License-Identifier: MIT
// Package orderedset_test validates ordering, membership and the lazy
// positional index of orderedset.Set.
package orderedset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vrpkit/orderedset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DeduplicatesKeepingFirstPosition(t *testing.T) {
	t.Parallel()

	s := orderedset.New(3, 1, 3, 2, 1)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{3, 1, 2}, s.Slice())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(4))
}

func TestZeroValueIsUsable(t *testing.T) {
	t.Parallel()

	var s orderedset.Set[string]
	assert.Zero(t, s.Len())
	_, err := s.At(0)
	require.ErrorIs(t, err, orderedset.ErrIndexOutOfRange)
	require.ErrorIs(t, s.Remove("x"), orderedset.ErrKeyNotPresent)

	s.Add("b")
	s.Add("a")
	v, err := s.At(1)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}

func TestAddRemove(t *testing.T) {
	t.Parallel()

	s := orderedset.New(1, 2, 3)
	require.NoError(t, s.Remove(2))
	require.ErrorIs(t, s.Remove(2), orderedset.ErrKeyNotPresent)
	assert.False(t, s.Discard(42))

	s.Add(2) // re-added elements go to the end
	s.Add(1) // present: no-op
	assert.Equal(t, []int{1, 3, 2}, s.Slice())
	assert.Equal(t, 3, s.Len())
}

func TestDifferenceUpdate(t *testing.T) {
	t.Parallel()

	s := orderedset.New(1, 2, 3, 4, 5)
	_, err := s.At(0)
	require.NoError(t, err)
	require.False(t, s.IndexDirty())

	s.DifferenceUpdate(2, 4, 99)
	assert.True(t, s.IndexDirty())
	assert.Equal(t, []int{1, 3, 5}, s.Slice())

	s.DifferenceUpdate()
	assert.Equal(t, 3, s.Len())
}

// TestLazyIndex verifies the index is rebuilt only when At follows a
// removal, and that appends keep a clean index clean.
func TestLazyIndex(t *testing.T) {
	t.Parallel()

	s := orderedset.New("a", "b", "c")
	assert.True(t, s.IndexDirty(), "index is built on first At")

	v, err := s.At(2)
	require.NoError(t, err)
	assert.Equal(t, "c", v)
	assert.False(t, s.IndexDirty())

	s.Add("d")
	assert.False(t, s.IndexDirty(), "append extends a clean index")
	v, err = s.At(3)
	require.NoError(t, err)
	assert.Equal(t, "d", v)

	s.Add("a") // present: index must not grow a duplicate
	_, err = s.At(4)
	require.ErrorIs(t, err, orderedset.ErrIndexOutOfRange)

	require.NoError(t, s.Remove("b"))
	assert.True(t, s.IndexDirty(), "removal invalidates the index")

	v, err = s.At(1)
	require.NoError(t, err)
	assert.Equal(t, "c", v)
	assert.False(t, s.IndexDirty())

	_, err = s.At(-1)
	require.ErrorIs(t, err, orderedset.ErrIndexOutOfRange)
}

func TestAll_StopsEarly(t *testing.T) {
	t.Parallel()

	s := orderedset.New(5, 6, 7, 8)
	var got []int
	for v := range s.All() {
		if v == 7 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{5, 6}, got)
}

func TestCompaction(t *testing.T) {
	t.Parallel()

	s := orderedset.New[int]()
	for i := 0; i < 100; i++ {
		s.Add(i)
	}
	for i := 0; i < 90; i++ {
		require.NoError(t, s.Remove(i))
	}
	assert.Equal(t, 10, s.Len())
	assert.LessOrEqual(t, s.ArenaLen(), 2*s.Len()+1, "dead slots are reclaimed")

	want := []int{90, 91, 92, 93, 94, 95, 96, 97, 98, 99}
	assert.Equal(t, want, s.Slice())
	for i, w := range want {
		v, err := s.At(i)
		require.NoError(t, err)
		assert.Equal(t, w, v)
	}

	// Positions stay valid after compaction.
	require.NoError(t, s.Remove(95))
	s.Add(95)
	assert.Equal(t, []int{90, 91, 92, 93, 94, 96, 97, 98, 99, 95}, s.Slice())
}

// TestRandomOpsMatchReference replays random add/remove/at operations against
// a slice-based reference model.
func TestRandomOpsMatchReference(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	s := orderedset.New[int]()
	var ref []int

	indexOf := func(v int) int {
		for i, x := range ref {
			if x == v {
				return i
			}
		}
		return -1
	}

	for step := 0; step < 5000; step++ {
		v := rng.Intn(50)
		switch rng.Intn(4) {
		case 0, 1:
			s.Add(v)
			if indexOf(v) < 0 {
				ref = append(ref, v)
			}
		case 2:
			err := s.Remove(v)
			if i := indexOf(v); i >= 0 {
				require.NoError(t, err)
				ref = append(ref[:i], ref[i+1:]...)
			} else {
				require.ErrorIs(t, err, orderedset.ErrKeyNotPresent)
			}
		case 3:
			if len(ref) == 0 {
				continue
			}
			i := rng.Intn(len(ref))
			got, err := s.At(i)
			require.NoError(t, err)
			require.Equal(t, ref[i], got, "step %d", step)
		}
		require.Equal(t, len(ref), s.Len(), "step %d", step)
	}
	assert.Equal(t, ref, s.Slice())
}

func BenchmarkAddRemoveAt(b *testing.B) {
	const n = 1000
	for i := 0; i < b.N; i++ {
		s := orderedset.New[int]()
		for v := 0; v < n; v++ {
			s.Add(v)
		}
		for v := 0; v < n; v += 2 {
			_ = s.Remove(v)
		}
		for k := 0; k < s.Len(); k++ {
			_, _ = s.At(k)
		}
	}
}
