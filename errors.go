// Copyright (c) 2025-2026 The alea Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package alea

import "errors"

// Sentinel errors returned by the PRG core and structured samplers.
//
// These correspond to the library's two error regimes: a single
// recoverable allocation-guard failure (ErrAllocation) and a set of
// precondition violations, both reported as hard errors rather than
// assertions.
var (
	// ErrUnknownAlgorithm is returned by New when the requested Algorithm is
	// not one of Shake128 or Shake256.
	ErrUnknownAlgorithm = errors.New("alea: unknown algorithm")

	// ErrSeedLength is returned by New and Reseed when the seed is not
	// exactly SeedSize(algorithm) bytes long.
	ErrSeedLength = errors.New("alea: wrong seed length for algorithm")

	// ErrStateReleased is returned by Reseed and GetBytes, and by every draw
	// built on GetBytes, when called after Free.
	ErrStateReleased = errors.New("alea: state has been released")

	// ErrAllocation is returned when a requested output or scratch buffer
	// size exceeds the configured guard rail (Config.MaxSampleLength or
	// Config.MaxOutputLength). Go cannot recover from a true allocation
	// failure, so the library bounds the request beforehand instead.
	ErrAllocation = errors.New("alea: requested size exceeds allocation guard rail")

	// ErrInvalidRange is returned by the uniform-in-range operations when
	// range < 2.
	ErrInvalidRange = errors.New("alea: range must be >= 2")

	// ErrInvalidHammingWeight is returned by SampleHWT when hwt <= 0 or
	// hwt > len(dst).
	ErrInvalidHammingWeight = errors.New("alea: hamming weight must be > 0 and <= len(dst)")

	// ErrInvalidGaussianLength is returned by SampleGaussian when len(dst)
	// is odd.
	ErrInvalidGaussianLength = errors.New("alea: gaussian output length must be even")
)
