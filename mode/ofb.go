// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mode

import "github.com/luxfi/ordo/primitive"

// OFB implements output feedback mode (spec §4.5.4): the keystream is
// generated by repeatedly re-encrypting its own previous output,
// independent of the plaintext/ciphertext. Encryption and decryption
// are the same operation.
type OFB struct {
	cipher    primitive.BlockCipher
	bs        int
	keystream []byte
	used      int
}

func init() {
	primitive.RegisterMode(primitive.OFB, func() primitive.Mode { return &OFB{} })
}

// Init binds cipher and encrypts iv to produce the first keystream
// block; iv_len must equal the cipher's block size.
func (o *OFB) Init(cipher primitive.BlockCipher, iv []byte, encrypt bool, padded bool) error {
	if len(iv) != cipher.BlockSize() {
		return primitive.Err(primitive.Arg, "OFB IV length must equal the cipher block size")
	}
	o.cipher = cipher
	o.bs = cipher.BlockSize()
	o.keystream = append([]byte(nil), iv...)
	o.cipher.Forward(o.keystream)
	o.used = 0
	return nil
}

// Update XORs the OFB keystream into src, writing to dst, and
// re-encrypts the keystream block in place whenever it is exhausted
// (spec §4.5.4).
func (o *OFB) Update(dst, src []byte) (int, error) {
	for i := range src {
		if o.used == o.bs {
			o.cipher.Forward(o.keystream)
			o.used = 0
		}
		dst[i] = src[i] ^ o.keystream[o.used]
		o.used++
	}
	return len(src), nil
}

// Final emits no bytes: OFB needs no padding.
func (o *OFB) Final(dst []byte) (int, error) {
	return 0, nil
}
