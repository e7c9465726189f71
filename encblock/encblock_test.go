// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package encblock

import (
	"encoding/hex"
	"testing"

	"github.com/luxfi/ordo/primitive"
	"github.com/stretchr/testify/require"
)

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEncBlockAESECBUnpaddedSingleBlock(t *testing.T) {
	key := unhex(t, "000102030405060708090a0b0c0d0e0f")
	pt := unhex(t, "00112233445566778899aabbccddeeff")

	out := make([]byte, len(pt)+16)
	n, err := EncBlock(primitive.AES, nil, primitive.ECB, key, nil, true, false, pt, out)
	require.NoError(t, err)
	require.Equal(t, "69c4e0d86a7b0430d8cdb78070b4c55a", hex.EncodeToString(out[:n]))
}

func TestEncBlockAESCBCRoundTrip(t *testing.T) {
	key := unhex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	iv := unhex(t, "000102030405060708090a0b0c0d0e0f")
	pt := unhex(t, "6bc1bee22e409f96e93d7e117393172a")[:14]

	ct := make([]byte, len(pt)+16)
	n, err := EncBlock(primitive.AES, nil, primitive.CBC, key, iv, true, true, pt, ct)
	require.NoError(t, err)

	pt2 := make([]byte, n+16)
	m, err := EncBlock(primitive.AES, nil, primitive.CBC, key, iv, false, true, ct[:n], pt2)
	require.NoError(t, err)
	require.Equal(t, pt, pt2[:m])
}

func TestEncBlockStreamingContext(t *testing.T) {
	key := unhex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	iv := unhex(t, "000102030405060708090a0b0c0d0e0f")
	pt := []byte("streamed across several calls to Update, unevenly chunked")

	var enc Context
	require.NoError(t, enc.Init(primitive.AES, nil, primitive.CTR, key, iv[:8], true, false))
	ct := make([]byte, len(pt))
	n := 0
	for _, chunk := range [][]byte{pt[:5], pt[5:5], pt[5:20], pt[20:]} {
		k, err := enc.Update(ct[n:], chunk)
		require.NoError(t, err)
		n += k
	}
	tail, err := enc.Final(ct[n:])
	require.NoError(t, err)
	require.Equal(t, len(pt), n+tail)

	var dec Context
	require.NoError(t, dec.Init(primitive.AES, nil, primitive.CTR, key, iv[:8], false, false))
	pt2 := make([]byte, len(pt))
	m, err := dec.Update(pt2, ct)
	require.NoError(t, err)
	_, err = dec.Final(pt2[m:])
	require.NoError(t, err)
	require.Equal(t, pt, pt2)
}

func TestEncBlockUnknownIDs(t *testing.T) {
	var c Context
	require.Error(t, c.Init(primitive.Id(9999), nil, primitive.ECB, nil, nil, true, false))
	require.Error(t, c.Init(primitive.AES, nil, primitive.Id(9999), make([]byte, 16), nil, true, false))
}
