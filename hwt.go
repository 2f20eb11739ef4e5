// Copyright (c) 2025-2026 The alea Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package alea

import "crypto/subtle"

// SampleHWT fills dst with a fixed Hamming-weight ternary vector: exactly
// hwt entries are ±1 (independent, uniform sign), the rest are 0, and the
// positions of the nonzero entries are uniform over the C(len(dst), hwt)
// possible supports.
//
// SampleHWT is generic over the three output widths the reference
// implementation specifies (int8, int32, int64); all three share the exact
// same branch-free placement algorithm, differing only in the width of the
// stored ±1.
//
// hwt must be in (0, len(dst)]; a value outside that range returns
// ErrInvalidHammingWeight. The algorithm is isochronous: its control flow
// and memory access pattern do not depend on which positions end up
// nonzero.
func SampleHWT[T int8 | int32 | int64](state *State, dst []T, hwt int) error {
	if hwt <= 0 || hwt > len(dst) {
		return ErrInvalidHammingWeight
	}
	for i := range dst {
		dst[i] = 0
	}

	si, err := isochronousIndices(state, len(dst))
	if err != nil {
		return err
	}
	defer zeroizeInt32(si)

	c0 := len(dst) - hwt
	var rnd [1]byte
	for i := range dst {
		// t0 is an all-ones mask when si[i] < c0, else all-zeros. ge is
		// computed with crypto/subtle rather than a plain comparison, the
		// same constant-time-select idiom used for secret-dependent
		// comparisons elsewhere in the example pack.
		ge := subtle.ConstantTimeLessOrEq(c0, int(si[i]))
		t0 := int32(ge - 1)
		c0 += int(t0)

		tentative := 1 + t0 // 1 when t0 == 0, 0 when t0 == -1

		if err := state.GetBytes(rnd[:]); err != nil {
			return err
		}
		sign := int32(1 - (int32(rnd[0]&1) << 1)) // +1 or -1
		dst[i] = T((-tentative) & sign)
	}
	return nil
}

func zeroizeInt32(s []int32) {
	for i := range s {
		s[i] = 0
	}
}
