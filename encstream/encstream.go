// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package encstream wraps a stream cipher in a single streaming
// encryption session (spec §4.5's "enc-stream harness", §2): a
// Context owns the keyed primitive.StreamCipher state so a caller
// drives it through Init/Update/Final like encblock.Context, without
// the mode layer a block cipher needs.
package encstream

import (
	_ "github.com/luxfi/ordo/stream"
	"github.com/luxfi/ordo/primitive"
)

// Context owns one keyed stream cipher.
type Context struct {
	cipher primitive.StreamCipher
}

// Init selects cipherID and keys it. params is forwarded to the
// cipher's Init (e.g. RC4's drop count).
func (c *Context) Init(cipherID primitive.Id, key []byte, params any) error {
	cipher, ok := primitive.NewStreamCipher(cipherID)
	if !ok {
		return primitive.Err(primitive.Arg, "unknown stream cipher id")
	}
	if err := cipher.Init(key, params); err != nil {
		return err
	}
	c.cipher = cipher
	return nil
}

// Update XORs the keystream into buf in place. Encryption and
// decryption are the same operation for a stream cipher.
func (c *Context) Update(buf []byte) {
	c.cipher.Update(buf)
}

// Final zeroizes the cipher state.
func (c *Context) Final() {
	c.cipher.Final()
}

// EncStream runs one complete in-place stream encryption: init,
// XOR the keystream into inout, finalize (spec §4.11's
// ordo_enc_stream).
func EncStream(cipherID primitive.Id, params any, key, inout []byte) error {
	var c Context
	if err := c.Init(cipherID, key, params); err != nil {
		return err
	}
	c.Update(inout)
	c.Final()
	return nil
}
