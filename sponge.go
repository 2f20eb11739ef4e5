// Copyright (c) 2025-2026 The alea Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package alea

import "golang.org/x/crypto/sha3"

// Algorithm tags the XOF that backs a State. It is the only admitted
// enumeration the library exposes: SHAKE128 and SHAKE256.
type Algorithm int

const (
	// Shake128 selects SHAKE128 (rate 168 bytes, 32-byte seed).
	Shake128 Algorithm = iota + 1
	// Shake256 selects SHAKE256 (rate 136 bytes, 64-byte seed).
	Shake256
)

// String implements fmt.Stringer for diagnostic output.
func (a Algorithm) String() string {
	switch a {
	case Shake128:
		return "SHAKE128"
	case Shake256:
		return "SHAKE256"
	default:
		return "unknown"
	}
}

// SeedSize returns the required seed length, in bytes, for algorithm. It
// returns 0 for an unrecognized algorithm.
func SeedSize(algorithm Algorithm) int {
	switch algorithm {
	case Shake128:
		return 32
	case Shake256:
		return 64
	default:
		return 0
	}
}

// Rate returns the sponge's block size, in bytes, for algorithm. It returns
// 0 for an unrecognized algorithm.
func Rate(algorithm Algorithm) int {
	switch algorithm {
	case Shake128:
		return 168
	case Shake256:
		return 136
	default:
		return 0
	}
}

// Sponge is the abstract interface the PRG core consumes. It models a
// Keccak-family sponge reduced to exactly the two operations the core
// needs: absorb a seed once, and squeeze one rate-sized block at a time.
//
// The Keccak permutation itself is out of scope for this library; the
// two concrete implementations constructed by newShakeSponge adapt
// golang.org/x/crypto/sha3's SHAKE XOFs to this interface.
type Sponge interface {
	// AbsorbOnce absorbs seed into a freshly-reset sponge state. It is
	// "absorb-once": a single absorb followed only by squeezes, per
	// FIPS-202 domain separation for SHAKE.
	AbsorbOnce(seed []byte)

	// SqueezeBlock fills out, which must be exactly Rate() bytes long, with
	// the next squeezed block.
	SqueezeBlock(out []byte)

	// Rate returns the sponge's fixed block size in bytes.
	Rate() int
}

type shakeSponge struct {
	hash sha3.ShakeHash
	new  func() sha3.ShakeHash
	rate int
}

func newShakeSponge(algorithm Algorithm) Sponge {
	switch algorithm {
	case Shake128:
		return &shakeSponge{hash: sha3.NewShake128(), new: sha3.NewShake128, rate: 168}
	case Shake256:
		return &shakeSponge{hash: sha3.NewShake256(), new: sha3.NewShake256, rate: 136}
	default:
		return nil
	}
}

func (s *shakeSponge) AbsorbOnce(seed []byte) {
	// A fresh ShakeHash has never been Read from, so a single Write here is
	// a true absorb-once: no Keccak permute has been forced by a prior
	// squeeze. Reseeding discards all prior state rather than mixing the
	// new seed in.
	s.hash = s.new()
	_, _ = s.hash.Write(seed)
}

func (s *shakeSponge) SqueezeBlock(out []byte) {
	_, _ = s.hash.Read(out)
}

func (s *shakeSponge) Rate() int {
	return s.rate
}
