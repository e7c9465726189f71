// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"github.com/luxfi/ordo/bitops"
	"github.com/luxfi/ordo/primitive"
)

// md5K holds the 64 round constants, floor(abs(sin(i+1)) * 2^32),
// per RFC 1321.
var md5K = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

var md5Shift = [64]uint{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

func md5Compress(state *[4]uint32, block []byte) {
	var m [16]uint32
	for i := range m {
		m[i] = bitops.LE32(block[4*i:])
	}

	a, b, c, d := state[0], state[1], state[2], state[3]
	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & c) | (^b & d)
			g = i
		case i < 32:
			f = (d & b) | (^d & c)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ d
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			g = (7 * i) % 16
		}
		f += a + md5K[i] + m[g]
		a, d, c = d, c, b
		b += bitops.RotL32(f, md5Shift[i])
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
}

// MD5 implements RFC 1321 (spec §4.4); retained for interoperability
// with legacy protocols, not recommended for new designs.
type MD5 struct {
	state [4]uint32
	buf   *buffer
}

func init() {
	primitive.RegisterHash(primitive.MD5, func() primitive.Hash { return &MD5{} })
	primitive.RegisterQuery(primitive.MD5, primitive.ComposeQueries(
		primitive.FixedQuery(primitive.BlockSizeQ, 64),
		primitive.FixedQuery(primitive.DigestLenQ, 16),
	))
}

// Init resets the hash to its initial state; params is unused.
func (m *MD5) Init(params any) error {
	m.state = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}
	m.buf = newBuffer(64)
	return nil
}

// Update feeds data into the hash.
func (m *MD5) Update(data []byte) {
	m.buf.write(data, func(block []byte) { md5Compress(&m.state, block) })
}

// Final appends Merkle-Damgard padding, processes the remaining
// block(s), and writes the 16-byte digest to out.
func (m *MD5) Final(out []byte) {
	pad := mdPad(m.buf.total, 64, false)
	m.buf.write(pad, func(block []byte) { md5Compress(&m.state, block) })

	for i, s := range m.state {
		bitops.PutLE32(out[4*i:], s)
	}
}

func (m *MD5) DigestSize() int    { return 16 }
func (m *MD5) HashBlockSize() int { return 64 }

// Clone returns a deep copy of m's current state.
func (m *MD5) Clone() primitive.Hash {
	return &MD5{state: m.state, buf: m.buf.clone()}
}
