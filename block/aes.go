// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package block

import (
	"github.com/luxfi/ordo/primitive"
)

// AESParams configures AES.Init's round count (spec §4.2). A Rounds of
// 0 requests the standard default for the supplied key length
// (10/12/14 for 128/192/256-bit keys).
type AESParams struct {
	Rounds int
}

// AES implements FIPS-197 Rijndael with a configurable round count,
// matching spec §4.2's allowance for a non-standard Nr (debug/testing
// use, bounded to (0, 20]).
type AES struct {
	roundKeys [][4]byte // Nb*(Nr+1) words, 4 bytes each
	nr        int
	nk        int
}

var aesSbox [256]byte
var aesInvSbox [256]byte

func init() {
	aesSbox = [256]byte{
		0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
		0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0, 0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
		0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
		0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
		0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0, 0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
		0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
		0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
		0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5, 0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
		0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
		0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
		0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c, 0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
		0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
		0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
		0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e, 0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
		0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
		0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
	}
	for i, v := range aesSbox {
		aesInvSbox[v] = byte(i)
	}

	primitive.RegisterBlockCipher(primitive.AES, func() primitive.BlockCipher { return &AES{} })
	primitive.RegisterQuery(primitive.AES, primitive.ComposeQueries(
		primitive.DiscreteQuery(primitive.KeyLenQ, []int{16, 24, 32}),
		primitive.FixedQuery(primitive.BlockSizeQ, 16),
	))
}

func xtime(b byte) byte {
	if b&0x80 != 0 {
		return (b << 1) ^ 0x1b
	}
	return b << 1
}

func gmul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

func subWord(w [4]byte) [4]byte {
	return [4]byte{aesSbox[w[0]], aesSbox[w[1]], aesSbox[w[2]], aesSbox[w[3]]}
}

func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

func xorWord(a, b [4]byte) [4]byte {
	return [4]byte{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// defaultRounds returns the standard Nr for a given key length in
// bytes, per FIPS-197 Table 4.
func defaultRounds(keyLen int) int {
	switch keyLen {
	case 16:
		return 10
	case 24:
		return 12
	case 32:
		return 14
	default:
		return 0
	}
}

// Init performs the AES key schedule (spec §4.2). key_len must be
// 16, 24, or 32; params may supply a non-standard round count in
// (0, 20].
func (a *AES) Init(key []byte, params any) error {
	nk := len(key) / 4
	if len(key)%4 != 0 || (len(key) != 16 && len(key) != 24 && len(key) != 32) {
		return primitive.Err(primitive.KeyLen, "AES key length must be 16, 24, or 32 bytes")
	}

	nr := defaultRounds(len(key))
	if params != nil {
		p, ok := params.(*AESParams)
		if !ok {
			return primitive.Err(primitive.Arg, "AES params must be *AESParams")
		}
		if p.Rounds != 0 {
			if p.Rounds < 0 || p.Rounds > 20 {
				return primitive.Err(primitive.Arg, "AES round count must be in (0, 20]")
			}
			nr = p.Rounds
		}
	}

	totalWords := 4 * (nr + 1)
	w := make([][4]byte, totalWords)
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}

	rcon := byte(1)
	for i := nk; i < totalWords; i++ {
		temp := w[i-1]
		if i%nk == 0 {
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon
			rcon = xtime(rcon)
		} else if nk > 6 && i%nk == 4 {
			temp = subWord(temp)
		}
		w[i] = xorWord(w[i-nk], temp)
	}

	a.roundKeys = w
	a.nr = nr
	a.nk = nk
	return nil
}

func (a *AES) BlockSize() int { return 16 }

func (a *AES) Final() {
	for i := range a.roundKeys {
		a.roundKeys[i] = [4]byte{}
	}
	a.roundKeys = nil
	a.nr, a.nk = 0, 0
}

func addRoundKey(state *[4][4]byte, w [][4]byte, round int) {
	for c := 0; c < 4; c++ {
		word := w[round*4+c]
		for r := 0; r < 4; r++ {
			state[r][c] ^= word[r]
		}
	}
}

func loadState(state *[4][4]byte, block []byte) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			state[r][c] = block[4*c+r]
		}
	}
}

func storeState(state *[4][4]byte, block []byte) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			block[4*c+r] = state[r][c]
		}
	}
}

func subBytes(state *[4][4]byte) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			state[r][c] = aesSbox[state[r][c]]
		}
	}
}

func invSubBytes(state *[4][4]byte) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			state[r][c] = aesInvSbox[state[r][c]]
		}
	}
}

func shiftRows(state *[4][4]byte) {
	for r := 1; r < 4; r++ {
		row := state[r]
		var shifted [4]byte
		for c := 0; c < 4; c++ {
			shifted[c] = row[(c+r)%4]
		}
		state[r] = shifted
	}
}

func invShiftRows(state *[4][4]byte) {
	for r := 1; r < 4; r++ {
		row := state[r]
		var shifted [4]byte
		for c := 0; c < 4; c++ {
			shifted[(c+r)%4] = row[c]
		}
		state[r] = shifted
	}
}

func mixColumns(state *[4][4]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := state[0][c], state[1][c], state[2][c], state[3][c]
		state[0][c] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		state[1][c] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		state[2][c] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		state[3][c] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
}

func invMixColumns(state *[4][4]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := state[0][c], state[1][c], state[2][c], state[3][c]
		state[0][c] = gmul(a0, 0x0e) ^ gmul(a1, 0x0b) ^ gmul(a2, 0x0d) ^ gmul(a3, 0x09)
		state[1][c] = gmul(a0, 0x09) ^ gmul(a1, 0x0e) ^ gmul(a2, 0x0b) ^ gmul(a3, 0x0d)
		state[2][c] = gmul(a0, 0x0d) ^ gmul(a1, 0x09) ^ gmul(a2, 0x0e) ^ gmul(a3, 0x0b)
		state[3][c] = gmul(a0, 0x0b) ^ gmul(a1, 0x0d) ^ gmul(a2, 0x09) ^ gmul(a3, 0x0e)
	}
}

// Forward applies the forward Rijndael permutation to one 16-byte
// block in place (spec §4.2).
func (a *AES) Forward(block []byte) {
	var state [4][4]byte
	loadState(&state, block)

	addRoundKey(&state, a.roundKeys, 0)
	for round := 1; round < a.nr; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, a.roundKeys, round)
	}
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, a.roundKeys, a.nr)

	storeState(&state, block)
}

// Inverse applies the inverse Rijndael permutation to one 16-byte
// block in place (spec §4.2).
func (a *AES) Inverse(block []byte) {
	var state [4][4]byte
	loadState(&state, block)

	addRoundKey(&state, a.roundKeys, a.nr)
	for round := a.nr - 1; round >= 1; round-- {
		invShiftRows(&state)
		invSubBytes(&state)
		addRoundKey(&state, a.roundKeys, round)
		invMixColumns(&state)
	}
	invShiftRows(&state)
	invSubBytes(&state)
	addRoundKey(&state, a.roundKeys, 0)

	storeState(&state, block)
}
