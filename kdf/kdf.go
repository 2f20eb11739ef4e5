// Copyright (c) 2025-2026 The alea Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package kdf implements the keyed key-derivation primitives the alea
// library depends on for deterministic key expansion: HMAC instantiated
// over SHA3-256, and the HKDF-Extract/Expand construction (RFC 5869 shape)
// built on top of it.
//
// Unlike the alea package's State, kdf is stateless — every function here
// is a pure function of its inputs, and the package is safe for concurrent
// use by any number of goroutines.
package kdf

import (
	"errors"

	"golang.org/x/crypto/sha3"
)

const (
	hashSize  = 32  // SHA3-256 output size, in bytes.
	blockSize = 136 // SHA3-256 rate, in bytes; HMAC's key block size.

	// MaxOutputLength is the largest okm length HKDFExpand/HKDF will
	// produce: 255 * hashSize, per RFC 5869's counter-octet limit.
	MaxOutputLength = 255 * hashSize
)

// ErrOutputTooLong is returned by HKDFExpand and HKDF when the requested
// output length exceeds MaxOutputLength.
var ErrOutputTooLong = errors.New("alea/kdf: output length exceeds 8160 bytes")

// HMACSHA3256 computes HMAC over SHA3-256 for key and data.
//
// This always hashes key through SHA3-256 first, even when key is shorter
// than the block size — a deliberate deviation from RFC 2104's short-key
// branch (which would zero-pad a short key directly). This deviation is
// required for byte-for-byte compatibility with the reference
// implementation's output and must not be "fixed" to match RFC 2104
// without minting a new, incompatible KDF version.
func HMACSHA3256(key, data []byte) [hashSize]byte {
	hashedKey := sha3.Sum256(key)

	var keyBlock [blockSize]byte
	copy(keyBlock[:], hashedKey[:])

	var ipad, opad [blockSize]byte
	for i := 0; i < blockSize; i++ {
		ipad[i] = keyBlock[i] ^ 0x36
		opad[i] = keyBlock[i] ^ 0x5c
	}

	inner := make([]byte, 0, blockSize+len(data))
	inner = append(inner, ipad[:]...)
	inner = append(inner, data...)
	innerHash := sha3.Sum256(inner)

	outer := make([]byte, 0, blockSize+hashSize)
	outer = append(outer, opad[:]...)
	outer = append(outer, innerHash[:]...)
	return sha3.Sum256(outer)
}

// HKDFExtract computes HKDF-Extract(salt, ikm) = HMACSHA3256(salt, ikm),
// producing a 32-byte pseudorandom key.
func HKDFExtract(salt, ikm []byte) [hashSize]byte {
	return HMACSHA3256(salt, ikm)
}

// HKDFExpand computes HKDF-Expand(prk, info, length): the RFC 5869 T(1),
// T(2), ... construction over HMACSHA3256, truncated to length bytes.
// length must be <= MaxOutputLength; a longer request returns
// ErrOutputTooLong.
func HKDFExpand(prk, info []byte, length int) ([]byte, error) {
	if length > MaxOutputLength {
		return nil, ErrOutputTooLong
	}
	if length == 0 {
		return []byte{}, nil
	}

	n := (length + hashSize - 1) / hashSize
	okm := make([]byte, 0, n*hashSize)

	var prev []byte
	for i := 1; i <= n; i++ {
		block := make([]byte, 0, hashSize+len(info)+1)
		block = append(block, prev...)
		block = append(block, info...)
		block = append(block, byte(i))

		t := HMACSHA3256(prk, block)
		prev = t[:]
		okm = append(okm, t[:]...)
	}

	return okm[:length], nil
}

// HKDF composes HKDFExtract and HKDFExpand: HKDF(ikm, salt, info, length)
// derives a pseudorandom key from ikm and salt, then expands it to length
// bytes of output keying material bound to info. length must be <=
// MaxOutputLength.
func HKDF(ikm, salt, info []byte, length int) ([]byte, error) {
	prk := HKDFExtract(salt, ikm)
	return HKDFExpand(prk[:], info, length)
}
