// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mode

import (
	"github.com/luxfi/ordo/bitops"
	"github.com/luxfi/ordo/primitive"
)

// CBC implements cipher block chaining mode (spec §4.5.2): each
// plaintext block is XORed with the previous ciphertext block (or the
// IV, for the first block) before encryption.
type CBC struct {
	cipher  primitive.BlockCipher
	bs      int
	encrypt bool
	padded  bool
	iv      []byte
	buf     []byte
}

func init() {
	primitive.RegisterMode(primitive.CBC, func() primitive.Mode { return &CBC{} })
}

// Init binds cipher and the running IV/chaining value; iv_len must
// equal the cipher's block size.
func (c *CBC) Init(cipher primitive.BlockCipher, iv []byte, encrypt bool, padded bool) error {
	if len(iv) != cipher.BlockSize() {
		return primitive.Err(primitive.Arg, "CBC IV length must equal the cipher block size")
	}
	c.cipher = cipher
	c.bs = cipher.BlockSize()
	c.encrypt = encrypt
	c.padded = padded
	c.iv = append([]byte(nil), iv...)
	c.buf = c.buf[:0]
	return nil
}

// Update chains full blocks through the cipher (spec §4.5.2).
func (c *CBC) Update(dst, src []byte) (int, error) {
	n := 0
	keepOne := c.padded && !c.encrypt
	c.buf = accumulate(c.buf, src, c.bs, keepOne, func(block []byte) {
		if c.encrypt {
			b := append([]byte(nil), block...)
			bitops.XORInto(b, c.iv)
			c.cipher.Forward(b)
			c.iv = b
			n += copy(dst[n:], b)
		} else {
			cipherBlock := append([]byte(nil), block...)
			plain := append([]byte(nil), block...)
			c.cipher.Inverse(plain)
			bitops.XORInto(plain, c.iv)
			c.iv = cipherBlock
			n += copy(dst[n:], plain)
		}
	})
	return n, nil
}

// Final flushes the last block, applying or validating PKCS#7 padding
// when enabled (spec §4.5.2).
func (c *CBC) Final(dst []byte) (int, error) {
	if !c.padded {
		if len(c.buf) > 0 {
			return 0, primitive.ErrLeftover(len(c.buf))
		}
		return 0, nil
	}

	if c.encrypt {
		block := append(append([]byte(nil), c.buf...), bitops.Pad7(len(c.buf), c.bs)...)
		bitops.XORInto(block, c.iv)
		c.cipher.Forward(block)
		n := copy(dst, block)
		c.iv = block
		c.buf = c.buf[:0]
		return n, nil
	}

	if len(c.buf) != c.bs {
		return 0, primitive.Err(primitive.Padding, "ciphertext is not a multiple of the block size")
	}
	cipherBlock := append([]byte(nil), c.buf...)
	plain := append([]byte(nil), c.buf...)
	c.cipher.Inverse(plain)
	bitops.XORInto(plain, c.iv)
	plainLen, ok := bitops.Unpad7(plain, c.bs)
	if !ok {
		return 0, primitive.Err(primitive.Padding, "invalid PKCS#7 padding")
	}
	n := copy(dst, plain[:plainLen])
	c.iv = cipherBlock
	c.buf = c.buf[:0]
	return n, nil
}
