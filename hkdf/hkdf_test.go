// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hkdf

import (
	"encoding/hex"
	"testing"

	_ "github.com/luxfi/ordo/hash"
	"github.com/luxfi/ordo/primitive"
	"github.com/stretchr/testify/require"
)

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestHKDFRFC5869TestCase1(t *testing.T) {
	ikm := unhex(t, "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt := unhex(t, "000102030405060708090a0b0c")
	info := unhex(t, "f0f1f2f3f4f5f6f7f8f9")

	prk, err := Extract(primitive.SHA256, salt, ikm)
	require.NoError(t, err)
	require.Equal(t, "077709362c2e32df0ddc3f0dc47bba6390b6c73bb50f9c3122ec844ad7c2b3e5", hex.EncodeToString(prk))

	out := make([]byte, 42)
	require.NoError(t, Expand(primitive.SHA256, prk, info, out))
	require.Equal(t, "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865", hex.EncodeToString(out))
}

func TestHKDFRFC5869TestCase3ZeroLengthSaltAndInfo(t *testing.T) {
	ikm := unhex(t, "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")

	prk, err := Extract(primitive.SHA256, nil, ikm)
	require.NoError(t, err)
	require.Equal(t, "19ef24a32c717b167f33a91d6f648bdf96596776afdb6377ac434c1c293ccb04", hex.EncodeToString(prk))

	out := make([]byte, 42)
	require.NoError(t, Expand(primitive.SHA256, prk, nil, out))
	require.Equal(t, "8da4e775a563c18f715f802a063c5a31b8a11f5c5ee1879ec3454e5f3c738d2d9d201395faa4b61a96c8", hex.EncodeToString(out))
}

func TestHKDFDeriveMatchesExtractThenExpand(t *testing.T) {
	ikm := []byte("input keying material")
	salt := []byte("a salt value")
	info := []byte("context info")

	out1 := make([]byte, 64)
	require.NoError(t, Derive(primitive.SHA256, salt, ikm, info, out1))

	prk, err := Extract(primitive.SHA256, salt, ikm)
	require.NoError(t, err)
	out2 := make([]byte, 64)
	require.NoError(t, Expand(primitive.SHA256, prk, info, out2))

	require.Equal(t, out1, out2)
}

func TestHKDFRejectsEmptyOutput(t *testing.T) {
	prk := make([]byte, 32)
	err := Expand(primitive.SHA256, prk, nil, nil)
	require.ErrorIs(t, err, primitive.Err(primitive.Arg, ""))
}

func TestHKDFRejectsUnknownHash(t *testing.T) {
	out := make([]byte, 20)
	_, err := Extract(primitive.Id(9999), []byte("salt"), []byte("ikm"))
	require.ErrorIs(t, err, primitive.Err(primitive.Arg, ""))

	err = Expand(primitive.Id(9999), []byte("prk"), nil, out)
	require.ErrorIs(t, err, primitive.Err(primitive.Arg, ""))
}

func TestHKDFRejectsTooLargeOutput(t *testing.T) {
	prk := make([]byte, 20)
	out := make([]byte, 256*20+1) // more than 255 HMAC-SHA1 blocks
	err := Expand(primitive.SHA1, prk, nil, out)
	require.ErrorIs(t, err, primitive.Err(primitive.Arg, ""))
}
