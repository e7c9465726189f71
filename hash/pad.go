// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hash implements the toolkit's hash functions (spec §4.4):
// MD5, SHA-1, and SHA-256 share the classic Merkle-Damgard
// buffer-then-compress streaming shape; Skein-256 instead drives
// Threefish-256 through the Unique Block Iteration construction.
package hash

// mdPad returns the Merkle-Damgard padding (0x80, zero bytes, then an
// 8-byte bit-length field) to append so that totalLen+len(padding) is
// a multiple of blockSize. bigEndianLength selects SHA-1/SHA-256's
// big-endian length field; MD5 uses little-endian.
func mdPad(totalLen uint64, blockSize int, bigEndianLength bool) []byte {
	bitLen := totalLen * 8
	tailLen := 1 + 8 // 0x80 plus the 8-byte length field
	zeros := ((blockSize-tailLen-int(totalLen%uint64(blockSize)))%blockSize + blockSize) % blockSize

	pad := make([]byte, 1+zeros+8)
	pad[0] = 0x80
	lengthField := pad[1+zeros:]
	if bigEndianLength {
		for i := 0; i < 8; i++ {
			lengthField[7-i] = byte(bitLen >> (8 * i))
		}
	} else {
		for i := 0; i < 8; i++ {
			lengthField[i] = byte(bitLen >> (8 * i))
		}
	}
	return pad
}

// buffer accumulates Update calls into blockSize-sized chunks,
// invoking compress on each full block as it fills, matching the
// incremental-hashing contract every Hash implementation needs
// (spec §4.4).
type buffer struct {
	blockSize int
	data      []byte
	total     uint64
}

func newBuffer(blockSize int) *buffer {
	return &buffer{blockSize: blockSize, data: make([]byte, 0, blockSize)}
}

func (b *buffer) write(in []byte, compress func(block []byte)) {
	b.total += uint64(len(in))
	if len(b.data) > 0 {
		n := copy(b.data[len(b.data):cap(b.data)], in)
		b.data = b.data[:len(b.data)+n]
		in = in[n:]
		if len(b.data) == b.blockSize {
			compress(b.data)
			b.data = b.data[:0]
		}
	}
	for len(in) >= b.blockSize {
		compress(in[:b.blockSize])
		in = in[b.blockSize:]
	}
	if len(in) > 0 {
		b.data = append(b.data, in...)
	}
}

func (b *buffer) reset() {
	b.data = b.data[:0]
	b.total = 0
}

// clone returns a deep, independent copy of b: the backing array is
// not shared, so writes to the clone never alias the original (spec's
// original_source/src/digest.c "digest_copy" operation, which this
// package's per-hash Clone methods are grounded on).
func (b *buffer) clone() *buffer {
	nb := &buffer{blockSize: b.blockSize, total: b.total, data: make([]byte, len(b.data), b.blockSize)}
	copy(nb.data, b.data)
	return nb
}
