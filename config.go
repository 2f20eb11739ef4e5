// Copyright (c) 2025-2026 The alea Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.
//
// Package alea provides a cryptographically-seeded pseudorandom generator
// and the structured samplers (fixed Hamming-weight ternary, centered
// binomial, discrete Gaussian) that lattice-based cryptographic schemes
// draw from it.
//
// The package is deterministic: two States constructed from the same seed
// and Algorithm produce byte-for-byte identical output for any identical
// sequence of calls, independent of how those calls are chunked. See State
// for the core type and Config for the tunable, non-secret parameters that
// govern it.
package alea

// Config defines the tunable, non-secret parameters for a State and for the
// structured samplers built on top of it.
//
// Config carries no seed material or runtime state; it only governs the
// isochronous rejection sampler's bit width and the guard rails that
// bound allocation size before it happens (see ErrAllocation).
type Config struct {
	// L is the bit width used by the isochronous rejection sampler (see
	// isochronousIndices). The sampler requires dst_len <= 2^L and reads
	// ceil(L/8) bytes per trial. If zero, DefaultL is used.
	L int

	// MaxSampleLength bounds the len(dst) accepted by SampleHWT, SampleCBD,
	// SampleGaussian, and the uniform array operations (Uint32Array,
	// Uint64Array, Uint32ArrayInRange, Uint64ArrayInRange). Requests above
	// this bound return ErrAllocation before any scratch buffer is
	// allocated. If zero, DefaultMaxSampleLength is used.
	MaxSampleLength int

	// MaxOutputLength bounds the len(dst) accepted by GetBytes. Requests
	// above this bound return ErrAllocation. If zero, DefaultMaxOutputLength
	// is used.
	MaxOutputLength int
}

// Default configuration constants for alea.
const (
	// DefaultL is the bit width used by the isochronous rejection sampler
	// when a Config leaves L unset.
	DefaultL = 30

	// DefaultMaxSampleLength bounds structured-sampler and uniform-array
	// requests. 2^24
	// elements is comfortably above any lattice parameter set in current
	// NTRU/Ring-LWE schemes while still catching runaway allocations.
	DefaultMaxSampleLength = 1 << 24

	// DefaultMaxOutputLength bounds raw GetBytes requests.
	DefaultMaxOutputLength = 1 << 28
)

// DefaultConfig returns a Config populated with the library's recommended
// defaults.
func DefaultConfig() Config {
	return Config{
		L:               DefaultL,
		MaxSampleLength: DefaultMaxSampleLength,
		MaxOutputLength: DefaultMaxOutputLength,
	}
}

// Option defines a functional option for customizing a Config, in the same
// style used throughout this module's ancestry for constructing immutable
// configuration values.
type Option func(*Config)

// WithL returns an Option that sets the isochronous rejection sampler's bit
// width. n must satisfy 2^n >= the largest dst_len ever passed to SampleHWT;
// a longer dst makes SampleHWT return ErrAllocation.
func WithL(n int) Option {
	return func(cfg *Config) { cfg.L = n }
}

// WithMaxSampleLength returns an Option that sets the guard rail for
// structured-sampler and uniform-array output lengths.
func WithMaxSampleLength(n int) Option {
	return func(cfg *Config) { cfg.MaxSampleLength = n }
}

// WithMaxOutputLength returns an Option that sets the guard rail for
// GetBytes request lengths.
func WithMaxOutputLength(n int) Option {
	return func(cfg *Config) { cfg.MaxOutputLength = n }
}

func (c *Config) applyDefaults() {
	if c.L <= 0 {
		c.L = DefaultL
	}
	if c.MaxSampleLength <= 0 {
		c.MaxSampleLength = DefaultMaxSampleLength
	}
	if c.MaxOutputLength <= 0 {
		c.MaxOutputLength = DefaultMaxOutputLength
	}
}
