// Copyright (c) 2025-2026 The alea Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package alea

// isochronousIndices implements the isochronous rejection sampler behind
// the fixed Hamming-weight sampler. For a requested length n it produces
// si[0..n-2] such that si[i] is uniform on [0, n-1-i), using a
// constant-time rejection scheme on L-bit words; si's last slot is left
// at 0.
//
// This is the one routine in the library where runtime must not depend on
// the accepted values at all: the number of trials per index depends only
// on the public quantity s = n-1-i, never on si itself or on any drawn
// value that is discarded. Callers must not add an early exit based on si.
func isochronousIndices(s *State, n int) ([]int32, error) {
	if n <= 0 {
		return nil, ErrInvalidHammingWeight
	}
	if n > s.cfg.MaxSampleLength {
		return nil, ErrAllocation
	}

	L := uint(s.cfg.L)
	twoToL := uint64(1) << L
	if uint64(n) > twoToL {
		return nil, ErrAllocation
	}
	lBytes := int((L + 7) / 8)

	si := make([]int32, n)
	var rndBuf [8]byte
	rnd := rndBuf[:lBytes]

	for i := 0; i < n-1; i++ {
		sLen := uint64(n - 1 - i)
		t := twoToL % sLen

		var m, l uint64
		for {
			for j := range rnd {
				rnd[j] = 0
			}
			if err := s.GetBytes(rnd); err != nil {
				return nil, err
			}
			var word uint64
			for j := lBytes - 1; j >= 0; j-- {
				word = word<<8 | uint64(rnd[j])
			}
			word &= twoToL - 1
			m = word * sLen
			l = m & (twoToL - 1)
			if l >= t {
				break
			}
		}
		si[i] = int32(m >> L)
	}

	return si, nil
}
