// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"github.com/luxfi/ordo/bitops"
	"github.com/luxfi/ordo/primitive"
)

// sha256K holds the 64 round constants, the first 32 bits of the
// fractional parts of the cube roots of the first 64 primes, per
// FIPS 180-4.
var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

func sha256Compress(state *[8]uint32, block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = bitops.BE32(block[4*i:])
	}
	for i := 16; i < 64; i++ {
		s0 := bitops.RotR32(w[i-15], 7) ^ bitops.RotR32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := bitops.RotR32(w[i-2], 17) ^ bitops.RotR32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]
	for i := 0; i < 64; i++ {
		s1 := bitops.RotR32(e, 6) ^ bitops.RotR32(e, 11) ^ bitops.RotR32(e, 25)
		ch := (e & f) ^ (^e & g)
		temp1 := h + s1 + ch + sha256K[i] + w[i]
		s0 := bitops.RotR32(a, 2) ^ bitops.RotR32(a, 13) ^ bitops.RotR32(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := s0 + maj

		h, g, f, e = g, f, e, d+temp1
		d, c, b, a = c, b, a, temp1+temp2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// SHA256 implements FIPS 180-4 (spec §4.4).
type SHA256 struct {
	state [8]uint32
	buf   *buffer
}

func init() {
	primitive.RegisterHash(primitive.SHA256, func() primitive.Hash { return &SHA256{} })
	primitive.RegisterQuery(primitive.SHA256, primitive.ComposeQueries(
		primitive.FixedQuery(primitive.BlockSizeQ, 64),
		primitive.FixedQuery(primitive.DigestLenQ, 32),
	))
}

// Init resets the hash to its initial state; params is unused.
func (s *SHA256) Init(params any) error {
	s.state = [8]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
	s.buf = newBuffer(64)
	return nil
}

// Update feeds data into the hash.
func (s *SHA256) Update(data []byte) {
	s.buf.write(data, func(block []byte) { sha256Compress(&s.state, block) })
}

// Final appends Merkle-Damgard padding, processes the remaining
// block(s), and writes the 32-byte digest to out.
func (s *SHA256) Final(out []byte) {
	pad := mdPad(s.buf.total, 64, true)
	s.buf.write(pad, func(block []byte) { sha256Compress(&s.state, block) })

	for i, v := range s.state {
		bitops.PutBE32(out[4*i:], v)
	}
}

func (s *SHA256) DigestSize() int    { return 32 }
func (s *SHA256) HashBlockSize() int { return 64 }

// Clone returns a deep copy of s's current state.
func (s *SHA256) Clone() primitive.Hash {
	return &SHA256{state: s.state, buf: s.buf.clone()}
}
