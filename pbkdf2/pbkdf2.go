// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pbkdf2 implements RFC 2898 PBKDF2 (spec §4.8), built on hmac.
package pbkdf2

import (
	"github.com/luxfi/ordo/bitops"
	"github.com/luxfi/ordo/hmac"
	"github.com/luxfi/ordo/primitive"
)

const maxBlockCounter = 0xffffffff

// Derive fills out with PBKDF2(password, salt, iterations) output
// using the hash registered under hashID (spec §4.8). Fails Arg when
// password, iterations, or out is empty, or when out is too long for
// the 32-bit block counter to address.
//
// The HMAC keyed by password is initialized once and Clone'd for
// every U_1 seed and every U_j feedback step, rather than re-run
// through key setup each time: password never changes across
// iterations, so only the clone's Update/Final differ. This mirrors
// original_source/src/pbkdf2.c's own comment ("This HMAC
// initialization need be done only once... thanks to the design of
// HMAC, most of the work can then be precomputed") and its `ctx =
// cst;` struct-copy per iteration.
func Derive(hashID primitive.Id, password, salt []byte, iterations int, out []byte) error {
	if len(password) == 0 || iterations <= 0 || len(out) == 0 {
		return primitive.Err(primitive.Arg, "PBKDF2 requires a non-empty password, iterations > 0, and out_len > 0")
	}

	h, ok := primitive.NewHash(hashID)
	if !ok {
		return primitive.Err(primitive.Arg, "unknown hash for PBKDF2")
	}
	if err := h.Init(nil); err != nil {
		return err
	}
	d := h.DigestSize()

	numBlocks := (len(out) + d - 1) / d
	if numBlocks > maxBlockCounter {
		return primitive.Err(primitive.Arg, "PBKDF2 output too large for the 32-bit block counter")
	}

	var keyed hmac.HMAC
	if err := keyed.Init(hashID, password, nil); err != nil {
		return err
	}

	produced := 0
	for i := 1; i <= numBlocks; i++ {
		var ctr [4]byte
		bitops.PutBE32(ctr[:], uint32(i))

		step := keyed.Clone()
		step.Update(salt)
		step.Update(ctr[:])
		u := make([]byte, d)
		step.Final(u)

		t := append([]byte(nil), u...)
		for j := 2; j <= iterations; j++ {
			next := keyed.Clone()
			next.Update(u)
			next.Final(u)
			bitops.XORInto(t, u)
		}

		produced += copy(out[produced:], t)
	}
	return nil
}
