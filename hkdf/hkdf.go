// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hkdf implements RFC 5869 HKDF extract-then-expand key
// derivation (spec §4.9), built on hmac.
package hkdf

import (
	"github.com/luxfi/ordo/hmac"
	"github.com/luxfi/ordo/primitive"
)

const maxExpandBlocks = 255

// Extract computes PRK = HMAC(salt, ikm). A nil or empty salt is
// replaced by a zero string of the hash's digest length, per RFC 5869.
func Extract(hashID primitive.Id, salt, ikm []byte) ([]byte, error) {
	if len(salt) == 0 {
		h, ok := primitive.NewHash(hashID)
		if !ok {
			return nil, primitive.Err(primitive.Arg, "unknown hash for HKDF")
		}
		if err := h.Init(nil); err != nil {
			return nil, err
		}
		salt = make([]byte, h.DigestSize())
	}

	var m hmac.HMAC
	if err := m.Init(hashID, salt, nil); err != nil {
		return nil, err
	}
	m.Update(ikm)
	prk := make([]byte, m.DigestSize())
	m.Final(prk)
	return prk, nil
}

// Expand fills out with OKM derived from prk and info (spec §4.9).
// Fails Arg when out requires more than 255 HMAC blocks.
//
// The PRK-keyed HMAC is Init'ed once and Clone'd per T(i) block
// instead of re-run through key setup each time, the same way
// pbkdf2.Derive reuses its password-keyed HMAC; grounded on
// original_source/src/hkdf.c's identical `ctx = cst;` per-iteration
// struct copy.
func Expand(hashID primitive.Id, prk, info []byte, out []byte) error {
	if len(out) == 0 {
		return primitive.Err(primitive.Arg, "HKDF out_len must be positive")
	}

	h, ok := primitive.NewHash(hashID)
	if !ok {
		return primitive.Err(primitive.Arg, "unknown hash for HKDF")
	}
	if err := h.Init(nil); err != nil {
		return err
	}
	d := h.DigestSize()

	numBlocks := (len(out) + d - 1) / d
	if numBlocks > maxExpandBlocks {
		return primitive.Err(primitive.Arg, "HKDF output too large: more than 255 blocks required")
	}

	var keyed hmac.HMAC
	if err := keyed.Init(hashID, prk, nil); err != nil {
		return err
	}

	var t []byte
	produced := 0
	for i := 1; i <= numBlocks; i++ {
		m := keyed.Clone()
		m.Update(t)
		m.Update(info)
		m.Update([]byte{byte(i)})
		t = make([]byte, d)
		m.Final(t)
		produced += copy(out[produced:], t)
	}
	return nil
}

// Derive runs Extract followed by Expand in one call.
func Derive(hashID primitive.Id, salt, ikm, info []byte, out []byte) error {
	prk, err := Extract(hashID, salt, ikm)
	if err != nil {
		return err
	}
	return Expand(hashID, prk, info, out)
}
