// Copyright (c) 2025-2026 The alea Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package alea

import "math/bits"

// SampleCBD fills dst with independent draws from a centered binomial
// distribution on {-numFlips, ..., +numFlips}: each sample is
// popcount(A) - popcount(B) for independent uniform numFlips-bit words A
// and B. The distribution has variance numFlips/2.
//
// SampleCBD consumes 2*ceil(numFlips/8) PRG bytes per output element, makes
// no rejection and no branch on secret data, and runs in constant time per
// element.
func SampleCBD[T int32 | int64](state *State, dst []T, numFlips int) error {
	if len(dst) > state.cfg.MaxSampleLength {
		return ErrAllocation
	}

	mask := uint64(1)<<uint(numFlips) - 1
	numBytes := (numFlips + 7) / 8

	// wordBuf/wordBuf2 are zero-initialized once; only their first
	// numBytes are ever overwritten, so the unused high-order bytes of the
	// 64-bit words they form stay zero for the life of the loop.
	var wordBuf, wordBuf2 [8]byte
	a := wordBuf[:numBytes]
	b := wordBuf2[:numBytes]

	for i := range dst {
		if err := state.GetBytes(a); err != nil {
			return err
		}
		if err := state.GetBytes(b); err != nil {
			return err
		}

		wordA := littleEndianWord(wordBuf[:]) & mask
		wordB := littleEndianWord(wordBuf2[:]) & mask

		dst[i] = T(bits.OnesCount64(wordA) - bits.OnesCount64(wordB))
	}
	return nil
}

func littleEndianWord(b []byte) uint64 {
	var w uint64
	for i := 7; i >= 0; i-- {
		w = w<<8 | uint64(b[i])
	}
	return w
}
