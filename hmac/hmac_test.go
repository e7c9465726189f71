// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hmac

import (
	"encoding/hex"
	"testing"

	"github.com/luxfi/ordo/primitive"
	"github.com/stretchr/testify/require"
)

func TestHMACSHA256RFC4231Test1(t *testing.T) {
	key := make([]byte, 20)
	for i := range key {
		key[i] = 0x0b
	}

	var m HMAC
	require.NoError(t, m.Init(primitive.SHA256, key, nil))
	m.Update([]byte("Hi There"))
	out := make([]byte, m.DigestSize())
	m.Final(out)

	require.Equal(t, "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7", hex.EncodeToString(out))
}

func TestHMACLongKeyIsHashed(t *testing.T) {
	key := make([]byte, 200) // longer than SHA-256's 64-byte block size
	for i := range key {
		key[i] = byte(i)
	}

	var m HMAC
	require.NoError(t, m.Init(primitive.SHA256, key, nil))
	m.Update([]byte("data"))
	out1 := make([]byte, m.DigestSize())
	m.Final(out1)

	// A key longer than the block size is replaced by its digest, so
	// keying with SHA-256(key) directly must give the same MAC.
	h, ok := primitive.NewHash(primitive.SHA256)
	require.True(t, ok)
	require.NoError(t, h.Init(nil))
	h.Update(key)
	hashedKey := make([]byte, h.DigestSize())
	h.Final(hashedKey)

	var m2 HMAC
	require.NoError(t, m2.Init(primitive.SHA256, hashedKey, nil))
	m2.Update([]byte("data"))
	out2 := make([]byte, m2.DigestSize())
	m2.Final(out2)

	require.Equal(t, out1, out2)
}

func TestHMACConcatenationInvariance(t *testing.T) {
	key := []byte("secret key")
	data := []byte("the quick brown fox jumps over the lazy dog")

	var whole HMAC
	require.NoError(t, whole.Init(primitive.SHA256, key, nil))
	whole.Update(data)
	wantOut := make([]byte, whole.DigestSize())
	whole.Final(wantOut)

	var chunked HMAC
	require.NoError(t, chunked.Init(primitive.SHA256, key, nil))
	for i := 0; i < len(data); i += 5 {
		end := i + 5
		if end > len(data) {
			end = len(data)
		}
		chunked.Update(data[i:end])
	}
	gotOut := make([]byte, chunked.DigestSize())
	chunked.Final(gotOut)

	require.Equal(t, wantOut, gotOut)
}

func TestHMACUnknownHash(t *testing.T) {
	var m HMAC
	err := m.Init(primitive.Id(9999), []byte("key"), nil)
	require.Error(t, err)
	require.ErrorIs(t, err, primitive.Err(primitive.Arg, ""))
}

// TestHMACCloneIsIndependent exercises Clone directly (indirectly also
// covered by pbkdf2's multi-iteration and hkdf's multi-block vector
// tests): a cloned HMAC keyed once must finalize independently of the
// original and agree with keying+hashing the same message from scratch.
func TestHMACCloneIsIndependent(t *testing.T) {
	key := []byte("clone test key")

	var keyed HMAC
	require.NoError(t, keyed.Init(primitive.SHA256, key, nil))

	first := keyed.Clone()
	first.Update([]byte("message one"))
	out1 := make([]byte, first.DigestSize())
	first.Final(out1)

	second := keyed.Clone()
	second.Update([]byte("message two"))
	out2 := make([]byte, second.DigestSize())
	second.Final(out2)

	require.NotEqual(t, out1, out2)

	var want1 HMAC
	require.NoError(t, want1.Init(primitive.SHA256, key, nil))
	want1.Update([]byte("message one"))
	wantOut1 := make([]byte, want1.DigestSize())
	want1.Final(wantOut1)
	require.Equal(t, wantOut1, out1)

	var want2 HMAC
	require.NoError(t, want2.Init(primitive.SHA256, key, nil))
	want2.Update([]byte("message two"))
	wantOut2 := make([]byte, want2.DigestSize())
	want2.Final(wantOut2)
	require.Equal(t, wantOut2, out2)
}

func TestHMACMD5AndSHA1DigestSizes(t *testing.T) {
	var m HMAC
	require.NoError(t, m.Init(primitive.MD5, []byte("key"), nil))
	require.Equal(t, 16, m.DigestSize())

	var s HMAC
	require.NoError(t, s.Init(primitive.SHA1, []byte("key"), nil))
	require.Equal(t, 20, s.DigestSize())
}
