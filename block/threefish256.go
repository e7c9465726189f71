// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package block

import (
	"github.com/luxfi/ordo/bitops"
	"github.com/luxfi/ordo/primitive"
)

// threefishC240 is the Skein key-schedule parity constant (spec §6.2).
const threefishC240 = 0x1BD11BDAA9FC1A22

// threefishRotation holds the two rotation constants used by each of
// the 8 rounds in a Threefish-256 round cycle (spec §6.2).
var threefishRotation = [8][2]uint{
	{14, 16}, {52, 57}, {23, 40}, {5, 37},
	{25, 33}, {46, 12}, {58, 22}, {32, 32},
}

const threefishRounds = 72

// Threefish256Params carries a 128-bit tweak (spec §4.2); a nil params
// or a zero-valued Tweak requests the default all-zero tweak.
type Threefish256Params struct {
	Tweak [2]uint64
}

// ExpandedKey256 is the 19-subkey schedule derived from a 256-bit key
// and 128-bit tweak, per the Skein specification's general key
// schedule (spec §6.2).
type ExpandedKey256 [19][4]uint64

// ScheduleThreefish256 derives the 19-subkey Threefish-256 schedule
// from a 256-bit key and 128-bit tweak.
func ScheduleThreefish256(key [4]uint64, tweak [2]uint64) ExpandedKey256 {
	k := [5]uint64{key[0], key[1], key[2], key[3], threefishC240 ^ key[0] ^ key[1] ^ key[2] ^ key[3]}
	t := [3]uint64{tweak[0], tweak[1], tweak[0] ^ tweak[1]}

	var ks ExpandedKey256
	for s := 0; s < 19; s++ {
		ks[s][0] = k[s%5]
		ks[s][1] = k[(s+1)%5] + t[s%3]
		ks[s][2] = k[(s+2)%5] + t[(s+1)%3]
		ks[s][3] = k[(s+3)%5] + uint64(s)
	}
	return ks
}

// Threefish256Encrypt is the raw tweakable-block-cipher permutation
// Threefish-256 specifies, exposed so hash.Skein256's UBI driver can
// drive it directly with per-call tweaks without going through the
// BlockCipher Init/Forward lifecycle (spec §4.4's Matyas–Meyer–Oseas
// construction needs a fresh tweak on every compression call).
func Threefish256Encrypt(ks ExpandedKey256, block [4]uint64) [4]uint64 {
	x := [4]uint64{
		block[0] + ks[0][0],
		block[1] + ks[0][1],
		block[2] + ks[0][2],
		block[3] + ks[0][3],
	}

	for d := 0; d < threefishRounds; d++ {
		r := threefishRotation[d%8]
		x[0] += x[1]
		x[1] = bitops.RotL64(x[1], r[0])
		x[1] ^= x[0]
		x[2] += x[3]
		x[3] = bitops.RotL64(x[3], r[1])
		x[3] ^= x[2]
		x[1], x[3] = x[3], x[1]

		if (d+1)%4 == 0 {
			s := (d + 1) / 4
			x[0] += ks[s][0]
			x[1] += ks[s][1]
			x[2] += ks[s][2]
			x[3] += ks[s][3]
		}
	}
	return x
}

func Threefish256Decrypt(ks ExpandedKey256, block [4]uint64) [4]uint64 {
	x := block

	for d := threefishRounds - 1; d >= 0; d-- {
		if (d+1)%4 == 0 {
			s := (d + 1) / 4
			x[0] -= ks[s][0]
			x[1] -= ks[s][1]
			x[2] -= ks[s][2]
			x[3] -= ks[s][3]
		}
		x[1], x[3] = x[3], x[1]
		r := threefishRotation[d%8]
		x[1] = bitops.RotR64(x[1]^x[0], r[0])
		x[0] -= x[1]
		x[3] = bitops.RotR64(x[3]^x[2], r[1])
		x[2] -= x[3]
	}

	return [4]uint64{
		x[0] - ks[0][0],
		x[1] - ks[0][1],
		x[2] - ks[0][2],
		x[3] - ks[0][3],
	}
}

func loadWords256(block []byte) [4]uint64 {
	var w [4]uint64
	for i := 0; i < 4; i++ {
		w[i] = bitops.LE64(block[8*i:])
	}
	return w
}

func storeWords256(w [4]uint64, block []byte) {
	for i := 0; i < 4; i++ {
		bitops.PutLE64(block[8*i:], w[i])
	}
}

// Threefish256 implements the Skein specification's Threefish-256
// tweakable block cipher as a plain block cipher with a zero default
// tweak (spec §4.2).
type Threefish256 struct {
	ks          ExpandedKey256
	initialized bool
}

func init() {
	primitive.RegisterBlockCipher(primitive.Threefish256, func() primitive.BlockCipher { return &Threefish256{} })
	primitive.RegisterQuery(primitive.Threefish256, primitive.ComposeQueries(
		primitive.FixedQuery(primitive.KeyLenQ, 32),
		primitive.FixedQuery(primitive.BlockSizeQ, 32),
	))
}

// Init performs the Threefish-256 key/tweak schedule. key_len must be
// exactly 32 bytes (256 bits); params may supply a 128-bit tweak,
// defaulting to zero (spec §4.2).
func (t *Threefish256) Init(key []byte, params any) error {
	if len(key) != 32 {
		return primitive.Err(primitive.KeyLen, "Threefish-256 key must be 32 bytes")
	}
	var tweak [2]uint64
	if params != nil {
		p, ok := params.(*Threefish256Params)
		if !ok {
			return primitive.Err(primitive.Arg, "Threefish256 params must be *Threefish256Params")
		}
		tweak = p.Tweak
	}
	t.ks = ScheduleThreefish256(loadWords256(key), tweak)
	t.initialized = true
	return nil
}

func (t *Threefish256) BlockSize() int { return 32 }

// Forward applies the Threefish-256 forward permutation to one
// 32-byte block in place.
func (t *Threefish256) Forward(block []byte) {
	storeWords256(Threefish256Encrypt(t.ks, loadWords256(block)), block)
}

// Inverse applies the Threefish-256 inverse permutation to one
// 32-byte block in place.
func (t *Threefish256) Inverse(block []byte) {
	storeWords256(Threefish256Decrypt(t.ks, loadWords256(block)), block)
}

func (t *Threefish256) Final() {
	t.ks = ExpandedKey256{}
	t.initialized = false
}
