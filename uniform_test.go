// Copyright (c) 2025-2026 The alea Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package alea

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, algo Algorithm) *State {
	t.Helper()
	seed := make([]byte, SeedSize(algo))
	for i := range seed {
		seed[i] = byte(i * 7)
	}
	s, err := New(seed, algo)
	require.NoError(t, err)
	return s
}

// Test_Uint32InRange_RejectsSmallRange verifies the precondition on range.
func Test_Uint32InRange_RejectsSmallRange(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	s := newTestState(t, Shake128)
	_, err := s.Uint32InRange(1)
	is.ErrorIs(err, ErrInvalidRange)

	_, err = s.Uint64InRange(0)
	is.ErrorIs(err, ErrInvalidRange)
}

// Test_Uint32ArrayInRange_Bounds verifies that every drawn value is in
// [0, range) and that empirical bin counts land within 3 sigma of the
// expected count for the large majority of bins.
func Test_Uint32ArrayInRange_Bounds(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	const rng = 100
	const n = 100000

	s := newTestState(t, Shake256)
	dst := make([]uint32, n)
	require.NoError(t, s.Uint32ArrayInRange(dst, rng))

	counts := make([]int, rng)
	for _, v := range dst {
		is.Less(v, uint32(rng))
		counts[v]++
	}

	expected := float64(n) / float64(rng)
	sigma := math.Sqrt(expected * (1 - 1.0/rng))
	outOfRange := 0
	for _, c := range counts {
		if math.Abs(float64(c)-expected) > 3*sigma {
			outOfRange++
		}
	}
	is.LessOrEqual(outOfRange, int(0.03*rng))
}

// Test_Uint64ArrayInRange_Bounds mirrors Test_Uint32ArrayInRange_Bounds for
// the 64-bit path and a wide range, exercising the uint64 mask arithmetic.
func Test_Uint64ArrayInRange_Bounds(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	const rng = uint64(1) << 33
	const n = 2000

	s := newTestState(t, Shake128)
	dst := make([]uint64, n)
	require.NoError(t, s.Uint64ArrayInRange(dst, rng))

	for _, v := range dst {
		is.Less(v, rng)
	}
}

// Test_Uint32Array_Determinism verifies that the array uniform operations
// are deterministic for a given seed.
func Test_Uint32Array_Determinism(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	seed := make([]byte, SeedSize(Shake128))
	s1, err := New(seed, Shake128)
	require.NoError(t, err)
	s2, err := New(seed, Shake128)
	require.NoError(t, err)

	d1 := make([]uint32, 50)
	d2 := make([]uint32, 50)
	require.NoError(t, s1.Uint32Array(d1))
	require.NoError(t, s2.Uint32Array(d2))

	is.Equal(d1, d2)
}

// Test_ArrayInRange_AllocationGuard verifies the guard rail on array
// lengths.
func Test_ArrayInRange_AllocationGuard(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	s, err := New(make([]byte, SeedSize(Shake128)), Shake128, WithMaxSampleLength(4))
	require.NoError(t, err)

	err = s.Uint32ArrayInRange(make([]uint32, 5), 10)
	is.ErrorIs(err, ErrAllocation)
}
