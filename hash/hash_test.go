// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"encoding/hex"
	"testing"

	"github.com/luxfi/ordo/primitive"
	"github.com/stretchr/testify/require"
)

func digestHex(t *testing.T, h primitive.Hash, data []byte) string {
	t.Helper()
	require.NoError(t, h.Init(nil))
	h.Update(data)
	out := make([]byte, h.DigestSize())
	h.Final(out)
	return hex.EncodeToString(out)
}

func TestMD5Vectors(t *testing.T) {
	m := &MD5{}
	require.Equal(t, 64, m.HashBlockSize())
	require.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", digestHex(t, m, []byte("")))
	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", digestHex(t, m, []byte("abc")))
}

func TestSHA1Vectors(t *testing.T) {
	s := &SHA1{}
	require.Equal(t, 64, s.HashBlockSize())
	require.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", digestHex(t, s, []byte("")))
	require.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", digestHex(t, s, []byte("abc")))
}

func TestSHA256Vectors(t *testing.T) {
	s := &SHA256{}
	require.Equal(t, 64, s.HashBlockSize())
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", digestHex(t, s, []byte("")))
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", digestHex(t, s, []byte("abc")))
}

// TestMDPadBoundaryAt55Bytes exercises the Merkle-Damgard padding
// boundary where totalLen%blockSize == 55: the 0x80 byte plus the
// 8-byte length field exactly fill out the current block with zero
// extra zero bytes, so a single block of padding (not two) must be
// appended. This is the classic MD5/SHA-1/SHA-256 edge case.
func TestMDPadBoundaryAt55Bytes(t *testing.T) {
	msg := make([]byte, 55)
	for i := range msg {
		msg[i] = 'a'
	}

	m := &MD5{}
	require.Equal(t, "ef1772b6dff9a122358552954ad0df65", digestHex(t, m, msg))

	s1 := &SHA1{}
	require.Equal(t, "c1c8bbdc22796e28c0e15163d20899b65621d65a", digestHex(t, s1, msg))

	s256 := &SHA256{}
	require.Equal(t, "9f4390f8d30c2dd92ec9f095b65e2b9ae9b0a925a5258e241c9f1e910f734318", digestHex(t, s256, msg))
}

func TestSHA256MultiBlock(t *testing.T) {
	s := &SHA256{}
	require.NoError(t, s.Init(nil))

	msg := make([]byte, 1000)
	for i := range msg {
		msg[i] = byte(i)
	}
	// Feed in uneven chunks to exercise the buffering path.
	for i := 0; i < len(msg); i += 17 {
		end := i + 17
		if end > len(msg) {
			end = len(msg)
		}
		s.Update(msg[i:end])
	}
	out := make([]byte, 32)
	s.Final(out)

	whole := &SHA256{}
	require.NoError(t, whole.Init(nil))
	whole.Update(msg)
	want := make([]byte, 32)
	whole.Final(want)

	require.Equal(t, want, out)
}

// TestHashCloneIsIndependent exercises Clone (grounded on
// original_source/src/digest.c's digest_copy): feeding different
// suffixes into the original and its clone after a shared prefix must
// not let either computation observe the other's bytes, and each must
// agree with hashing its own full message from scratch.
func TestHashCloneIsIndependent(t *testing.T) {
	for _, h := range []primitive.Hash{&MD5{}, &SHA1{}, &SHA256{}, &Skein256{}} {
		require.NoError(t, h.Init(nil))
		h.Update([]byte("shared prefix"))

		clone := h.Clone()

		h.Update([]byte(" original tail"))
		outOriginal := make([]byte, h.DigestSize())
		h.Final(outOriginal)

		clone.Update([]byte(" clone tail"))
		outClone := make([]byte, clone.DigestSize())
		clone.Final(outClone)

		require.NotEqual(t, outOriginal, outClone)
		require.Equal(t, digestHex(t, h, []byte("shared prefix original tail")), hex.EncodeToString(outOriginal))
		require.Equal(t, digestHex(t, clone, []byte("shared prefix clone tail")), hex.EncodeToString(outClone))
	}
}

func TestRegistryDispatchHash(t *testing.T) {
	h, ok := primitive.NewHash(primitive.SHA256)
	require.True(t, ok)
	require.NoError(t, h.Init(nil))
	h.Update([]byte("abc"))
	out := make([]byte, h.DigestSize())
	h.Final(out)
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(out))
}

func TestHashQueriesRegistered(t *testing.T) {
	v, ok := primitive.Query(primitive.SHA256, primitive.DigestLenQ, 0)
	require.True(t, ok)
	require.Equal(t, 32, v)

	v, ok = primitive.Query(primitive.MD5, primitive.DigestLenQ, 0)
	require.True(t, ok)
	require.Equal(t, 16, v)
}
