// Copyright (c) 2025-2026 The alea Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package alea

// State is the sole stateful object in the PRG core. It owns a Sponge, a
// rate-sized output buffer, and a cursor into that buffer.
//
// State is not safe for concurrent use: callers must give each goroutine
// its own State (or externally synchronize access), matching the exclusive-
// access resource model described by the library — independent States
// share no data and may be driven from separate goroutines without
// interference.
type State struct {
	algorithm Algorithm
	sponge    Sponge
	buffer    []byte
	cursor    int
	cfg       Config
	released  bool
}

// New constructs a State by absorbing seed into a fresh sponge for
// algorithm and squeezing the first block. seed must be exactly
// SeedSize(algorithm) bytes.
//
// New returns ErrUnknownAlgorithm if algorithm is not Shake128 or Shake256,
// and ErrSeedLength if seed does not match SeedSize(algorithm). On any
// error no State is returned and nothing needs to be released.
func New(seed []byte, algorithm Algorithm, opts ...Option) (*State, error) {
	seedSize := SeedSize(algorithm)
	if seedSize == 0 {
		return nil, ErrUnknownAlgorithm
	}
	if len(seed) != seedSize {
		return nil, ErrSeedLength
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.applyDefaults()

	sponge := newShakeSponge(algorithm)
	s := &State{
		algorithm: algorithm,
		sponge:    sponge,
		buffer:    make([]byte, sponge.Rate()),
		cfg:       cfg,
	}
	sponge.AbsorbOnce(seed)
	sponge.SqueezeBlock(s.buffer)
	s.cursor = 0
	return s, nil
}

// Algorithm returns the Algorithm this State was constructed with.
func (s *State) Algorithm() Algorithm {
	return s.algorithm
}

// Config returns a copy of the non-secret configuration in effect for this
// State.
func (s *State) Config() Config {
	return s.cfg
}

// Reseed absorbs a fresh seed into the sponge, discarding any buffered
// output from the prior seed, and resets the cursor to the start of the
// newly-squeezed block.
//
// After Reseed(seed), subsequent output is identical to that of a freshly
// constructed State built from New(seed, algorithm).
func (s *State) Reseed(seed []byte) error {
	if s.released {
		return ErrStateReleased
	}
	if len(seed) != SeedSize(s.algorithm) {
		return ErrSeedLength
	}
	s.sponge.AbsorbOnce(seed)
	s.sponge.SqueezeBlock(s.buffer)
	s.cursor = 0
	return nil
}

// Free securely erases the State's buffer and releases its sponge. The
// State must not be used after Free; once Free has run, Reseed and GetBytes
// (and so every draw built on GetBytes) return ErrStateReleased.
func (s *State) Free() {
	if s.released {
		return
	}
	zeroize(s.buffer)
	s.buffer = nil
	s.sponge = nil
	s.released = true
}

// GetBytes fills dst with exactly len(dst) bytes of PRG output.
//
// For a given (seed, algorithm), any sequence of GetBytes calls whose
// requested lengths sum to L produces output identical to a single
// len-L GetBytes call on a freshly-seeded State — the PRG's determinism
// invariant is independent of call chunking.
func (s *State) GetBytes(dst []byte) error {
	if s.released {
		return ErrStateReleased
	}
	if len(dst) > s.cfg.MaxOutputLength {
		return ErrAllocation
	}
	return s.fill(dst)
}

// fill implements the refill-and-copy loop backing GetBytes, written
// iteratively rather than with tail recursion to keep stack depth bounded
// on very large requests.
func (s *State) fill(dst []byte) error {
	rate := len(s.buffer)
	for len(dst) > 0 {
		if s.cursor == rate {
			s.sponge.SqueezeBlock(s.buffer)
			s.cursor = 0
		}
		available := rate - s.cursor
		n := len(dst)
		if n > available {
			n = available
		}
		copy(dst[:n], s.buffer[s.cursor:s.cursor+n])
		s.cursor += n
		dst = dst[n:]
	}
	return nil
}

// zeroize overwrites b with zeros in place before a buffer is released.
// Go has no portable way to guarantee a write survives compiler dead-store
// elimination, but a simple loop-and-overwrite is the best available
// effort short of an assembly barrier.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
