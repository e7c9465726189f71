// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mode

import "github.com/luxfi/ordo/primitive"

// CFB implements cipher feedback mode (spec §4.5.5): the keystream
// block is fed back with the ciphertext byte it just produced (or
// consumed), not its own output, distinguishing it from OFB.
type CFB struct {
	cipher  primitive.BlockCipher
	bs      int
	encrypt bool
	state   []byte
	used    int
}

func init() {
	primitive.RegisterMode(primitive.CFB, func() primitive.Mode { return &CFB{} })
}

// Init binds cipher and encrypts iv to produce the first keystream
// block; iv_len must equal the cipher's block size.
func (c *CFB) Init(cipher primitive.BlockCipher, iv []byte, encrypt bool, padded bool) error {
	if len(iv) != cipher.BlockSize() {
		return primitive.Err(primitive.Arg, "CFB IV length must equal the cipher block size")
	}
	c.cipher = cipher
	c.bs = cipher.BlockSize()
	c.encrypt = encrypt
	c.state = append([]byte(nil), iv...)
	c.cipher.Forward(c.state)
	c.used = 0
	return nil
}

// Update encrypts or decrypts src a byte at a time, feeding the
// ciphertext byte (produced on encrypt, consumed on decrypt) back
// into the state block, and re-encrypts the state whenever a
// keystream block is exhausted (spec §4.5.5).
func (c *CFB) Update(dst, src []byte) (int, error) {
	for i := range src {
		if c.used == c.bs {
			c.cipher.Forward(c.state)
			c.used = 0
		}
		if c.encrypt {
			ct := src[i] ^ c.state[c.used]
			c.state[c.used] = ct
			dst[i] = ct
		} else {
			ct := src[i]
			dst[i] = ct ^ c.state[c.used]
			c.state[c.used] = ct
		}
		c.used++
	}
	return len(src), nil
}

// Final emits no bytes: CFB needs no padding.
func (c *CFB) Final(dst []byte) (int, error) {
	return 0, nil
}
