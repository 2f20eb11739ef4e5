// Copyright (c) 2025-2026 The alea Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package alea

import "math"

const twoPi = 6.28318530717958647692

// SampleGaussian fills dst with a discrete Gaussian sample of standard
// deviation stdev, drawn two entries at a time via the Box-Muller
// transform. len(dst) must be even; an odd length returns
// ErrInvalidGaussianLength.
//
// Each pair consumes one 64-bit PRG word, split into an upper half rn1 and
// lower half rn2. r1 = rn1/2^32 lands in [0, 1); r2 = (rn2+1)/2^32 lands in
// (0, 1], the +1 avoiding log(0). Output is rounded to the target integer
// width with ties away from zero (the same convention as C's lround and
// llround).
//
// This sampler is not constant-time: its runtime and output both depend on
// the drawn values. Callers needing side-channel resistance should draw
// from SampleCBD or SampleHWT instead.
func SampleGaussian[T int32 | int64](state *State, dst []T, stdev float64) error {
	if len(dst)%2 != 0 {
		return ErrInvalidGaussianLength
	}
	if len(dst) > state.cfg.MaxSampleLength {
		return ErrAllocation
	}

	for i := 0; i < len(dst); i += 2 {
		word, err := state.Uint64()
		if err != nil {
			return err
		}

		rn1 := word >> 32
		rn2 := word & 0xFFFFFFFF
		r1 := float64(rn1) / 4294967296.0
		r2 := (float64(rn2) + 1.0) / 4294967296.0

		theta := r1 * twoPi
		rr := math.Sqrt(-2.0*math.Log(r2)) * stdev

		dst[i] = T(math.Round(rr * math.Cos(theta)))
		dst[i+1] = T(math.Round(rr * math.Sin(theta)))
	}
	return nil
}
