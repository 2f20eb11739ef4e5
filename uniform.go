// Copyright (c) 2025-2026 The alea Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package alea

import "encoding/binary"

// Uint32 returns the next 4 bytes of PRG output interpreted as an unsigned
// 32-bit little-endian integer. The wire endianness is fixed and documented
// here per the library's compatibility contract; ports that read raw host
// memory instead are not interoperable across architectures.
func (s *State) Uint32() (uint32, error) {
	var buf [4]byte
	if err := s.GetBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// Uint64 returns the next 8 bytes of PRG output interpreted as an unsigned
// 64-bit little-endian integer.
func (s *State) Uint64() (uint64, error) {
	var buf [8]byte
	if err := s.GetBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Uint32InRange draws a single value uniformly distributed on [0, rng) via
// classical unbiased rejection sampling. rng must be >= 2; a smaller value
// returns ErrInvalidRange. Expected iteration count is at most 2; this
// operation is not constant-time (its runtime depends on the drawn value).
func (s *State) Uint32InRange(rng uint32) (uint32, error) {
	if rng < 2 {
		return 0, ErrInvalidRange
	}
	min := -rng % rng
	for {
		v, err := s.Uint32()
		if err != nil {
			return 0, err
		}
		if v >= min {
			return v % rng, nil
		}
	}
}

// Uint64InRange draws a single value uniformly distributed on [0, rng) via
// classical unbiased rejection sampling. All mask arithmetic is performed
// in uint64 throughout, so wide ranges never lose bits to a narrower
// intermediate type.
func (s *State) Uint64InRange(rng uint64) (uint64, error) {
	if rng < 2 {
		return 0, ErrInvalidRange
	}
	min := -rng % rng
	for {
		v, err := s.Uint64()
		if err != nil {
			return 0, err
		}
		if v >= min {
			return v % rng, nil
		}
	}
}

// Uint32Array fills dst with independent draws from Uint32.
func (s *State) Uint32Array(dst []uint32) error {
	if len(dst) > s.cfg.MaxSampleLength {
		return ErrAllocation
	}
	for i := range dst {
		v, err := s.Uint32()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// Uint64Array fills dst with independent draws from Uint64.
func (s *State) Uint64Array(dst []uint64) error {
	if len(dst) > s.cfg.MaxSampleLength {
		return ErrAllocation
	}
	for i := range dst {
		v, err := s.Uint64()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// Uint32ArrayInRange fills dst with independent draws uniform on [0, rng).
// On a rejected draw the loop does not advance: it keeps consuming PRG
// bytes at the same output position until a value is accepted.
func (s *State) Uint32ArrayInRange(dst []uint32, rng uint32) error {
	if rng < 2 {
		return ErrInvalidRange
	}
	if len(dst) > s.cfg.MaxSampleLength {
		return ErrAllocation
	}
	min := -rng % rng
	for i := range dst {
		for {
			v, err := s.Uint32()
			if err != nil {
				return err
			}
			if v >= min {
				dst[i] = v % rng
				break
			}
		}
	}
	return nil
}

// Uint64ArrayInRange fills dst with independent draws uniform on [0, rng),
// with the same fixed-iterator rejection discipline as Uint32ArrayInRange.
func (s *State) Uint64ArrayInRange(dst []uint64, rng uint64) error {
	if rng < 2 {
		return ErrInvalidRange
	}
	if len(dst) > s.cfg.MaxSampleLength {
		return ErrAllocation
	}
	min := -rng % rng
	for i := range dst {
		for {
			v, err := s.Uint64()
			if err != nil {
				return err
			}
			if v >= min {
				dst[i] = v % rng
				break
			}
		}
	}
	return nil
}
