// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"github.com/luxfi/ordo/bitops"
	"github.com/luxfi/ordo/block"
	"github.com/luxfi/ordo/primitive"
)

const skeinBlockSize = 32

// Tweak type-field values for Skein's Unique Block Iteration, per the
// Skein specification (spec §4.4, §6.2): each UBI invocation processes
// one "kind" of input distinguished by this field.
const (
	skeinTypeCfg = 4
	skeinTypeMsg = 48
	skeinTypeOut = 63
)

// skeinTweak packs a UBI tweak from the byte position processed so
// far and the first/final block flags.
func skeinTweak(pos uint64, typ byte, first, final bool) [2]uint64 {
	t1 := uint64(typ) << 56
	if first {
		t1 |= 1 << 62
	}
	if final {
		t1 |= 1 << 63
	}
	return [2]uint64{pos, t1}
}

func skeinLoadBlock(b []byte) [4]uint64 {
	var m [4]uint64
	for i := range m {
		m[i] = bitops.LE64(b[8*i:])
	}
	return m
}

func skeinStoreBlock(m [4]uint64, b []byte) {
	for i := range m {
		bitops.PutLE64(b[8*i:], m[i])
	}
}

// skeinG is Skein's Matyas-Meyer-Oseas compression step: Threefish-256
// keyed by the running chaining value h, tweaked per UBI, applied to
// block m and fed back by XOR (spec §4.4).
func skeinG(h [4]uint64, m [4]uint64, tweak [2]uint64) [4]uint64 {
	ks := block.ScheduleThreefish256(h, tweak)
	e := block.Threefish256Encrypt(ks, m)
	return [4]uint64{e[0] ^ m[0], e[1] ^ m[1], e[2] ^ m[2], e[3] ^ m[3]}
}

// skeinConfigBlock builds the 32-byte Skein configuration block (spec
// §6.2): a 4-byte schema identifier, a 2-byte version, 2 reserved
// bytes, the output length in bits as a little-endian uint64, and 16
// unused bytes.
func skeinConfigBlock(outLenBits uint64) [4]uint64 {
	var b [32]byte
	copy(b[0:4], "SHA3")
	b[4], b[5] = 1, 0
	bitops.PutLE64(b[8:], outLenBits)
	return skeinLoadBlock(b[:])
}

// Skein256Params configures Skein256.Init's digest length (spec
// §4.4). OutLen is in bytes; 0 is rejected (a hash with no output has
// no meaning).
type Skein256Params struct {
	OutLen int
}

// Skein256 implements the Skein-256-256 hash via Threefish-256's
// Unique Block Iteration construction (spec §4.4), supporting a
// configurable output length.
type Skein256 struct {
	h      [4]uint64
	buf    []byte
	pos    uint64
	first  bool
	outLen int
}

func init() {
	primitive.RegisterHash(primitive.Skein256, func() primitive.Hash { return &Skein256{} })
	primitive.RegisterQuery(primitive.Skein256, primitive.ComposeQueries(
		primitive.FixedQuery(primitive.BlockSizeQ, skeinBlockSize),
		primitive.FixedQuery(primitive.DigestLenQ, 32),
	))
}

// Init runs the configuration UBI pass and resets the message buffer.
// params may supply a non-default output length via Skein256Params.
func (s *Skein256) Init(params any) error {
	outLen := 32
	if params != nil {
		p, ok := params.(*Skein256Params)
		if !ok {
			return primitive.Err(primitive.Arg, "Skein256 params must be *Skein256Params")
		}
		if p.OutLen <= 0 {
			return primitive.Err(primitive.Arg, "Skein256 output length must be positive")
		}
		outLen = p.OutLen
	}

	cfg := skeinConfigBlock(uint64(outLen) * 8)
	tweak := skeinTweak(skeinBlockSize, skeinTypeCfg, true, true)
	s.h = skeinG([4]uint64{}, cfg, tweak)

	s.buf = s.buf[:0]
	s.pos = 0
	s.first = true
	s.outLen = outLen
	return nil
}

func (s *Skein256) absorb(chunk []byte, actualLen int, final bool) {
	padded := chunk
	if len(padded) < skeinBlockSize {
		padded = make([]byte, skeinBlockSize)
		copy(padded, chunk)
	}
	s.pos += uint64(actualLen)
	tweak := skeinTweak(s.pos, skeinTypeMsg, s.first, final)
	s.h = skeinG(s.h, skeinLoadBlock(padded), tweak)
	s.first = false
}

// Update feeds data into the message UBI pass.
func (s *Skein256) Update(data []byte) {
	s.buf = append(s.buf, data...)
	for len(s.buf) > skeinBlockSize {
		s.absorb(s.buf[:skeinBlockSize], skeinBlockSize, false)
		s.buf = append([]byte(nil), s.buf[skeinBlockSize:]...)
	}
}

// Final closes the message UBI pass (with the correctly flagged final
// block, even an empty one) and runs the output UBI pass to produce
// DigestSize() bytes in out.
func (s *Skein256) Final(out []byte) {
	s.absorb(s.buf, len(s.buf), true)

	produced := 0
	for ctr := uint64(0); produced < s.outLen; ctr++ {
		var counter [4]uint64
		counter[0] = ctr
		tweak := skeinTweak(8, skeinTypeOut, true, true)
		res := skeinG(s.h, counter, tweak)

		var outBlock [32]byte
		skeinStoreBlock(res, outBlock[:])
		n := copy(out[produced:], outBlock[:])
		produced += n
	}
}

func (s *Skein256) DigestSize() int    { return s.outLen }
func (s *Skein256) HashBlockSize() int { return skeinBlockSize }

// Clone returns a deep copy of s's current state.
func (s *Skein256) Clone() primitive.Hash {
	return &Skein256{
		h:      s.h,
		buf:    append([]byte(nil), s.buf...),
		pos:    s.pos,
		first:  s.first,
		outLen: s.outLen,
	}
}
