// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package primitive

// BlockCipher is the contract every block-cipher state satisfies
// (spec §4.2). Params is algorithm-specific (e.g. *block.AESParams)
// and may be nil to request defaults.
type BlockCipher interface {
	Init(key []byte, params any) error
	Forward(block []byte)
	Inverse(block []byte)
	BlockSize() int
	Final()
}

// StreamCipher is the contract every stream-cipher state satisfies
// (spec §4.3).
type StreamCipher interface {
	Init(key []byte, params any) error
	Update(buf []byte)
	Final()
}

// Hash is the contract every hash state satisfies (spec §4.4). It does
// not implement stdlib hash.Hash (there is no Write/Sum/Reset/Size/
// BlockSize); it exposes its own Init(params)/Update/Final lifecycle,
// with the Init(params) hook Skein-256 needs for its configurable
// output length.
type Hash interface {
	Init(params any) error
	Update(data []byte)
	Final(out []byte)
	DigestSize() int
	HashBlockSize() int

	// Clone returns a deep, independent copy of the hash's current
	// state (chaining variables plus any buffered partial block), so
	// callers can branch a computation without re-feeding the common
	// prefix. Grounded in original_source/src/digest.c's digest_copy
	// and the struct-assignment clone (ctx = cst) both pbkdf2.c and
	// hkdf.c use to avoid re-deriving the same HMAC key per iteration.
	Clone() Hash
}

// Mode is the contract every block-mode state satisfies (spec §4.5).
// Update returns the number of output bytes written to dst, which must
// be sized for at least len(src)+BlockSize() when padding is enabled.
type Mode interface {
	Init(cipher BlockCipher, iv []byte, encrypt bool, padded bool) error
	Update(dst, src []byte) (int, error)
	Final(dst []byte) (int, error)
}

// BlockCipherFactory constructs a fresh, zero-valued BlockCipher state
// for registration under an Id.
type BlockCipherFactory func() BlockCipher

// StreamCipherFactory constructs a fresh StreamCipher state.
type StreamCipherFactory func() StreamCipher

// HashFactory constructs a fresh Hash state.
type HashFactory func() Hash

// ModeFactory constructs a fresh Mode state.
type ModeFactory func() Mode

var (
	blockCiphers  = map[Id]BlockCipherFactory{}
	streamCiphers = map[Id]StreamCipherFactory{}
	hashes        = map[Id]HashFactory{}
	modes         = map[Id]ModeFactory{}
)

// RegisterBlockCipher installs fn as the constructor for id.
func RegisterBlockCipher(id Id, fn BlockCipherFactory) { blockCiphers[id] = fn }

// RegisterStreamCipher installs fn as the constructor for id.
func RegisterStreamCipher(id Id, fn StreamCipherFactory) { streamCiphers[id] = fn }

// RegisterHash installs fn as the constructor for id.
func RegisterHash(id Id, fn HashFactory) { hashes[id] = fn }

// RegisterMode installs fn as the constructor for id.
func RegisterMode(id Id, fn ModeFactory) { modes[id] = fn }

// NewBlockCipher allocates an uninitialized BlockCipher state for id.
func NewBlockCipher(id Id) (BlockCipher, bool) {
	fn, ok := blockCiphers[id]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// NewStreamCipher allocates an uninitialized StreamCipher state for id.
func NewStreamCipher(id Id) (StreamCipher, bool) {
	fn, ok := streamCiphers[id]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// NewHash allocates an uninitialized Hash state for id.
func NewHash(id Id) (Hash, bool) {
	fn, ok := hashes[id]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// NewMode allocates an uninitialized Mode state for id.
func NewMode(id Id) (Mode, bool) {
	fn, ok := modes[id]
	if !ok {
		return nil, false
	}
	return fn(), true
}
