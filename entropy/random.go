// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package entropy wraps the OS-provided CSPRNG (spec §6.3). It is
// intentionally a thin layer over stdlib crypto/rand rather than a
// hand-rolled or third-party generator: the spec treats the entropy
// source as an external collaborator, and the teacher itself reaches
// for crypto/rand directly (see ecies/contract.go) rather than
// wrapping a bespoke RNG.
package entropy

import (
	"crypto/rand"

	"github.com/luxfi/ordo/primitive"
)

// Random fills out with len(out) cryptographically secure random
// bytes. On unavailability it returns a Fail error and leaves out's
// contents indeterminate (spec §6.3).
func Random(out []byte) error {
	if _, err := rand.Read(out); err != nil {
		return primitive.Err(primitive.Fail, "entropy source unavailable: "+err.Error())
	}
	return nil
}

// SecureRandom is the high-quality blocking variant spec §6.3 allows
// implementations to distinguish; crypto/rand already blocks until the
// OS CSPRNG is seeded, so it shares Random's implementation.
func SecureRandom(out []byte) error {
	return Random(out)
}
