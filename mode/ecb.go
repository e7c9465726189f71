// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mode

import (
	"github.com/luxfi/ordo/bitops"
	"github.com/luxfi/ordo/primitive"
)

// ECB implements electronic codebook mode (spec §4.5.1): each block is
// enciphered independently, with no chaining and no IV.
type ECB struct {
	cipher  primitive.BlockCipher
	bs      int
	encrypt bool
	padded  bool
	buf     []byte
}

func init() {
	primitive.RegisterMode(primitive.ECB, func() primitive.Mode { return &ECB{} })
	primitive.RegisterQuery(primitive.ECB, primitive.FixedQuery(primitive.IvLenQ, 0))
}

// Init binds cipher and validates that iv is empty; ECB takes no IV.
func (e *ECB) Init(cipher primitive.BlockCipher, iv []byte, encrypt bool, padded bool) error {
	if len(iv) != 0 {
		return primitive.Err(primitive.Arg, "ECB takes no IV")
	}
	e.cipher = cipher
	e.bs = cipher.BlockSize()
	e.encrypt = encrypt
	e.padded = padded
	e.buf = e.buf[:0]
	return nil
}

// Update feeds src through the cipher one block at a time, writing
// ciphertext (or plaintext) to dst and returning the byte count
// written (spec §4.5.1).
func (e *ECB) Update(dst, src []byte) (int, error) {
	n := 0
	keepOne := e.padded && !e.encrypt
	e.buf = accumulate(e.buf, src, e.bs, keepOne, func(block []byte) {
		b := append([]byte(nil), block...)
		if e.encrypt {
			e.cipher.Forward(b)
		} else {
			e.cipher.Inverse(b)
		}
		n += copy(dst[n:], b)
	})
	return n, nil
}

// Final flushes the last block, applying or validating PKCS#7 padding
// when enabled (spec §4.5.1).
func (e *ECB) Final(dst []byte) (int, error) {
	if !e.padded {
		if len(e.buf) > 0 {
			return 0, primitive.ErrLeftover(len(e.buf))
		}
		return 0, nil
	}

	if e.encrypt {
		block := append(append([]byte(nil), e.buf...), bitops.Pad7(len(e.buf), e.bs)...)
		e.cipher.Forward(block)
		n := copy(dst, block)
		e.buf = e.buf[:0]
		return n, nil
	}

	if len(e.buf) != e.bs {
		return 0, primitive.Err(primitive.Padding, "ciphertext is not a multiple of the block size")
	}
	block := append([]byte(nil), e.buf...)
	e.cipher.Inverse(block)
	plainLen, ok := bitops.Unpad7(block, e.bs)
	if !ok {
		return 0, primitive.Err(primitive.Padding, "invalid PKCS#7 padding")
	}
	n := copy(dst, block[:plainLen])
	e.buf = e.buf[:0]
	return n, nil
}
