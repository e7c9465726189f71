// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hmac implements RFC 2104 HMAC (spec §4.7) over any
// registered primitive.Hash. It blank-imports hash so callers only
// need to import this package to name a hash by primitive.Id.
package hmac

import (
	_ "github.com/luxfi/ordo/hash"
	"github.com/luxfi/ordo/primitive"
)

// outerXor is 0x5c XOR 0x36: XORing it into the already-formed inner
// pad turns it into the outer pad in place, avoiding a second pass
// over the zero-padded key (spec §4.7).
const outerXor = 0x5c ^ 0x36

// HMAC computes a keyed hash over a registered primitive.Hash.
type HMAC struct {
	hashID    primitive.Id
	inner     primitive.Hash
	pad       []byte // inner pad until Final, then transformed to the outer pad
	digestLen int
}

// Init prepares HMAC keyed by key, using the hash registered under
// hashID. params is forwarded only to the inner hash and must not
// change its digest length (spec §4.7).
func (m *HMAC) Init(hashID primitive.Id, key []byte, params any) error {
	h, ok := primitive.NewHash(hashID)
	if !ok {
		return primitive.Err(primitive.Arg, "unknown hash for HMAC")
	}
	if err := h.Init(params); err != nil {
		return err
	}
	blockSize := h.HashBlockSize()
	digestLen := h.DigestSize()

	keyPrime := key
	if len(key) > blockSize {
		h.Update(key)
		reduced := make([]byte, digestLen)
		h.Final(reduced)
		keyPrime = reduced
		if err := h.Init(params); err != nil {
			return err
		}
	}

	pad := make([]byte, blockSize)
	copy(pad, keyPrime)
	for i := range pad {
		pad[i] ^= 0x36
	}
	h.Update(pad)

	m.hashID = hashID
	m.inner = h
	m.pad = pad
	m.digestLen = digestLen
	return nil
}

// Update feeds data into the inner digest.
func (m *HMAC) Update(data []byte) {
	m.inner.Update(data)
}

// Final writes the DigestSize()-byte MAC to out (spec §4.7).
func (m *HMAC) Final(out []byte) {
	scratch := make([]byte, m.digestLen)
	m.inner.Final(scratch)

	for i := range m.pad {
		m.pad[i] ^= outerXor
	}

	outer, _ := primitive.NewHash(m.hashID)
	_ = outer.Init(nil)
	outer.Update(m.pad)
	outer.Update(scratch)
	outer.Final(out)
}

// DigestSize returns the output length in bytes, equal to the
// underlying hash's digest length.
func (m *HMAC) DigestSize() int { return m.digestLen }

// Clone returns a deep, independent copy of m's current state. This is
// the Go analog of the plain struct assignment (`ctx = cst;`)
// original_source/src/pbkdf2.c and src/hkdf.c use to branch a
// password- or PRK-keyed HMAC per iteration without re-deriving the
// inner/outer pads from the key each time: callers key once, Clone
// per message, then Update/Final the clone.
func (m *HMAC) Clone() *HMAC {
	return &HMAC{
		hashID:    m.hashID,
		inner:     m.inner.Clone(),
		pad:       append([]byte(nil), m.pad...),
		digestLen: m.digestLen,
	}
}

// Sum computes one complete HMAC over data, writing DigestSize()
// bytes to out: init, feed data, finalize in one call.
func Sum(hashID primitive.Id, params any, key, data, out []byte) error {
	var m HMAC
	if err := m.Init(hashID, key, params); err != nil {
		return err
	}
	m.Update(data)
	m.Final(out)
	return nil
}
