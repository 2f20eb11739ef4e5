// Copyright (c) 2025-2026 The alea Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package alea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_IsochronousIndices_Range verifies that every produced index si[i] is
// within [0, n-1-i), and that the last slot is left untouched at 0.
func Test_IsochronousIndices_Range(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	const n = 300
	s := newTestState(t, Shake256)
	si, err := isochronousIndices(s, n)
	require.NoError(t, err)
	require.Len(t, si, n)

	for i := 0; i < n-1; i++ {
		is.GreaterOrEqual(si[i], int32(0))
		is.Less(si[i], int32(n-1-i))
	}
	is.Equal(int32(0), si[n-1])
}

// Test_IsochronousIndices_InvalidLength verifies the n > 0 precondition.
func Test_IsochronousIndices_InvalidLength(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	s := newTestState(t, Shake128)
	_, err := isochronousIndices(s, 0)
	is.ErrorIs(err, ErrInvalidHammingWeight)

	_, err = isochronousIndices(s, -5)
	is.ErrorIs(err, ErrInvalidHammingWeight)
}

// Test_IsochronousIndices_ExceedsTwoToL verifies that a request larger than
// 2^L is rejected rather than silently producing degenerate indices.
func Test_IsochronousIndices_ExceedsTwoToL(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	s, err := New(make([]byte, SeedSize(Shake128)), Shake128, WithL(4), WithMaxSampleLength(1<<20))
	require.NoError(t, err)

	_, err = isochronousIndices(s, 17) // 2^4 = 16
	is.ErrorIs(err, ErrAllocation)

	_, err = isochronousIndices(s, 16)
	is.NoError(err)
}

// Test_IsochronousIndices_Determinism verifies that two States seeded
// identically produce identical index sequences.
func Test_IsochronousIndices_Determinism(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	seed := make([]byte, SeedSize(Shake128))
	s1, err := New(seed, Shake128)
	require.NoError(t, err)
	s2, err := New(seed, Shake128)
	require.NoError(t, err)

	si1, err := isochronousIndices(s1, 64)
	require.NoError(t, err)
	si2, err := isochronousIndices(s2, 64)
	require.NoError(t, err)

	is.Equal(si1, si2)
}
