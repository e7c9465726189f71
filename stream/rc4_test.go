// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stream

import (
	"encoding/hex"
	"testing"

	"github.com/luxfi/ordo/primitive"
	"github.com/stretchr/testify/require"
)

// TestRC4KeystreamNoDrop checks the well-known "Secret" / "Attack at
// dawn" RC4 test vector (no initial drop).
func TestRC4KeystreamNoDrop(t *testing.T) {
	r := &RC4{}
	require.NoError(t, r.Init([]byte("Secret"), &RC4Params{Drop: 0, HasDrop: true}))

	buf := []byte("Attack at dawn")
	r.Update(buf)

	want, err := hex.DecodeString("45a01f645fc35b383552544b9bf5")
	require.NoError(t, err)
	require.Equal(t, want, buf)
}

func TestRC4KeystreamAgainstZeroBlock(t *testing.T) {
	r := &RC4{}
	require.NoError(t, r.Init([]byte{0x01, 0x02, 0x03, 0x04, 0x05}, &RC4Params{Drop: 0, HasDrop: true}))

	buf := make([]byte, 16)
	r.Update(buf)

	want, err := hex.DecodeString("b2396305f03dc027ccc3524a0a1118a8")
	require.NoError(t, err)
	require.Equal(t, want, buf)
}

func TestRC4DecryptIsEncrypt(t *testing.T) {
	key := []byte("Secret")
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	enc := &RC4{}
	require.NoError(t, enc.Init(key, &RC4Params{Drop: 0, HasDrop: true}))
	ciphertext := append([]byte(nil), plaintext...)
	enc.Update(ciphertext)
	require.NotEqual(t, plaintext, ciphertext)

	dec := &RC4{}
	require.NoError(t, dec.Init(key, &RC4Params{Drop: 0, HasDrop: true}))
	dec.Update(ciphertext)
	require.Equal(t, plaintext, ciphertext)
}

func TestRC4DefaultDropChangesKeystream(t *testing.T) {
	key := []byte("Secret")

	noDrop := &RC4{}
	require.NoError(t, noDrop.Init(key, &RC4Params{Drop: 0, HasDrop: true}))
	a := make([]byte, 8)
	noDrop.Update(a)

	defaultDrop := &RC4{}
	require.NoError(t, defaultDrop.Init(key, nil))
	b := make([]byte, 8)
	defaultDrop.Update(b)

	require.NotEqual(t, a, b)
}

func TestRC4KeyLenBounds(t *testing.T) {
	r := &RC4{}
	require.Error(t, r.Init(make([]byte, 4), nil))
	require.NoError(t, r.Init(make([]byte, 5), nil))
	require.NoError(t, r.Init(make([]byte, 256), nil))

	err := r.Init(make([]byte, 257), nil)
	require.Error(t, err)
	require.ErrorIs(t, err, primitive.Err(primitive.KeyLen, ""))
}

func TestRC4FinalZeroizes(t *testing.T) {
	r := &RC4{}
	require.NoError(t, r.Init([]byte("Secret"), nil))
	r.Final()
	require.Equal(t, [256]byte{}, r.s)
}

func TestRC4QueryRange(t *testing.T) {
	v, ok := primitive.Query(primitive.RC4, primitive.KeyLenQ, 0)
	require.True(t, ok)
	require.Equal(t, 5, v)

	v, ok = primitive.Query(primitive.RC4, primitive.KeyLenQ, primitive.SizeMax)
	require.True(t, ok)
	require.Equal(t, 256, v)
}
