// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mode

import (
	"github.com/luxfi/ordo/bitops"
	"github.com/luxfi/ordo/primitive"
)

// CTR implements counter mode (spec §4.5.3): a block cipher turned
// into a stream cipher by encrypting a monotonically incrementing
// counter block and XORing the result into the data. Encryption and
// decryption are the same operation.
type CTR struct {
	cipher    primitive.BlockCipher
	bs        int
	counter   []byte
	keystream []byte
	used      int
}

func init() {
	primitive.RegisterMode(primitive.CTR, func() primitive.Mode { return &CTR{} })
}

// Init binds cipher and seeds the counter block from iv, which must
// be exactly block_size-8 bytes: the remaining low 8 bytes form the
// counter itself, starting at zero (spec §4.5.3).
func (c *CTR) Init(cipher primitive.BlockCipher, iv []byte, encrypt bool, padded bool) error {
	bs := cipher.BlockSize()
	if len(iv) != bs-8 {
		return primitive.Err(primitive.Arg, "CTR IV length must equal block_size-8")
	}
	c.cipher = cipher
	c.bs = bs
	c.counter = make([]byte, bs)
	copy(c.counter, iv)

	c.keystream = append([]byte(nil), c.counter...)
	c.cipher.Forward(c.keystream)
	c.used = 0
	return nil
}

// Update XORs the counter keystream into src, writing to dst, and
// advances the counter whenever a keystream block is exhausted (spec
// §4.5.3).
func (c *CTR) Update(dst, src []byte) (int, error) {
	for i := range src {
		if c.used == c.bs {
			bitops.IncrementBE(c.counter)
			copy(c.keystream, c.counter)
			c.cipher.Forward(c.keystream)
			c.used = 0
		}
		dst[i] = src[i] ^ c.keystream[c.used]
		c.used++
	}
	return len(src), nil
}

// Final emits no bytes: CTR needs no padding.
func (c *CTR) Final(dst []byte) (int, error) {
	return 0, nil
}
