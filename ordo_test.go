// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ordo

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

func TestFacadeDigestSHA256ABC(t *testing.T) {
	out := make([]byte, 32)
	require.NoError(t, Digest(primitive.SHA256, nil, []byte("abc"), out))
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(out))
}

func TestFacadeHMACSHA256RFC4231Test1(t *testing.T) {
	key := make([]byte, 20)
	for i := range key {
		key[i] = 0x0b
	}
	out := make([]byte, 32)
	require.NoError(t, HMAC(primitive.SHA256, nil, key, []byte("Hi There"), out))
	require.Equal(t, "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7", hex.EncodeToString(out))
}

func TestFacadeEncBlockAESECB(t *testing.T) {
	key := unhex(t, "000102030405060708090a0b0c0d0e0f")
	pt := unhex(t, "00112233445566778899aabbccddeeff")

	out := make([]byte, len(pt)+16)
	n, err := EncBlock(primitive.AES, nil, primitive.ECB, key, nil, true, false, pt, out)
	require.NoError(t, err)
	require.Equal(t, "69c4e0d86a7b0430d8cdb78070b4c55a", hex.EncodeToString(out[:n]))
}

func TestFacadeEncStreamRoundTrip(t *testing.T) {
	key := unhex(t, "0102030405")
	plain := []byte("facade round trip")
	buf := append([]byte(nil), plain...)

	require.NoError(t, EncStream(primitive.RC4, nil, key, buf))
	require.NotEqual(t, plain, buf)
	require.NoError(t, EncStream(primitive.RC4, nil, key, buf))
	require.Equal(t, plain, buf)
}
