// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"github.com/luxfi/ordo/bitops"
	"github.com/luxfi/ordo/primitive"
)

func sha1Compress(state *[5]uint32, block []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = bitops.BE32(block[4*i:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bitops.RotL32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := state[0], state[1], state[2], state[3], state[4]
	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & d)
			k = 0x5a827999
		case i < 40:
			f = b ^ c ^ d
			k = 0x6ed9eba1
		case i < 60:
			f = (b & c) | (b & d) | (c & d)
			k = 0x8f1bbcdc
		default:
			f = b ^ c ^ d
			k = 0xca62c1d6
		}
		temp := bitops.RotL32(a, 5) + f + e + k + w[i]
		e = d
		d = c
		c = bitops.RotL32(b, 30)
		b = a
		a = temp
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
}

// SHA1 implements RFC 3174 (spec §4.4); retained for interoperability
// with legacy protocols, not recommended for new designs.
type SHA1 struct {
	state [5]uint32
	buf   *buffer
}

func init() {
	primitive.RegisterHash(primitive.SHA1, func() primitive.Hash { return &SHA1{} })
	primitive.RegisterQuery(primitive.SHA1, primitive.ComposeQueries(
		primitive.FixedQuery(primitive.BlockSizeQ, 64),
		primitive.FixedQuery(primitive.DigestLenQ, 20),
	))
}

// Init resets the hash to its initial state; params is unused.
func (s *SHA1) Init(params any) error {
	s.state = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
	s.buf = newBuffer(64)
	return nil
}

// Update feeds data into the hash.
func (s *SHA1) Update(data []byte) {
	s.buf.write(data, func(block []byte) { sha1Compress(&s.state, block) })
}

// Final appends Merkle-Damgard padding, processes the remaining
// block(s), and writes the 20-byte digest to out.
func (s *SHA1) Final(out []byte) {
	pad := mdPad(s.buf.total, 64, true)
	s.buf.write(pad, func(block []byte) { sha1Compress(&s.state, block) })

	for i, v := range s.state {
		bitops.PutBE32(out[4*i:], v)
	}
}

func (s *SHA1) DigestSize() int    { return 20 }
func (s *SHA1) HashBlockSize() int { return 64 }

// Clone returns a deep copy of s's current state.
func (s *SHA1) Clone() primitive.Hash {
	return &SHA1{state: s.state, buf: s.buf.clone()}
}
