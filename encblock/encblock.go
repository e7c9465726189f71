// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package encblock composes a block cipher and a block mode into a
// single streaming encryption session (spec §4.5's "enc-block
// harness", §2): a Context owns both the primitive.BlockCipher state
// and the primitive.Mode state wrapped around it, so a caller drives
// one object through Init/Update/Final instead of wiring cipher and
// mode by hand.
package encblock

import (
	_ "github.com/luxfi/ordo/block"
	_ "github.com/luxfi/ordo/mode"
	"github.com/luxfi/ordo/primitive"
)

// Context owns both the keyed block cipher and the mode state
// layered over it (spec §3's EncBlockContext: "owns both").
type Context struct {
	cipher primitive.BlockCipher
	mode   primitive.Mode
	bs     int
}

// Init selects cipherID/modeID, keys the cipher, and initializes the
// mode with iv, direction (encrypt), and padded. cipherParams is
// forwarded to the cipher's Init (e.g. AES round count); there is no
// mode params argument, since no mode in spec §4.5 takes one beyond
// iv/direction/padded.
func (c *Context) Init(cipherID primitive.Id, cipherParams any, modeID primitive.Id, key, iv []byte, encrypt, padded bool) error {
	cipher, ok := primitive.NewBlockCipher(cipherID)
	if !ok {
		return primitive.Err(primitive.Arg, "unknown block cipher id")
	}
	if err := cipher.Init(key, cipherParams); err != nil {
		return err
	}

	m, ok := primitive.NewMode(modeID)
	if !ok {
		cipher.Final()
		return primitive.Err(primitive.Arg, "unknown block mode id")
	}
	if err := m.Init(cipher, iv, encrypt, padded); err != nil {
		cipher.Final()
		return err
	}

	c.cipher = cipher
	c.mode = m
	c.bs = cipher.BlockSize()
	return nil
}

// Update streams src through the mode, writing output to dst, which
// must be sized for at least len(src)+BlockSize() when padding is
// enabled (spec §4.5.6). Returns the number of bytes written.
func (c *Context) Update(dst, src []byte) (int, error) {
	return c.mode.Update(dst, src)
}

// Final flushes any buffered input, applying or validating padding
// per the underlying mode, and zeroizes the cipher state.
func (c *Context) Final(dst []byte) (int, error) {
	n, err := c.mode.Final(dst)
	c.cipher.Final()
	return n, err
}

// BlockSize returns the underlying cipher's block size.
func (c *Context) BlockSize() int { return c.bs }

// EncBlock runs one complete block-cipher-mode encryption or
// decryption: init, stream in, finalize, concatenating the byte
// counts from Update and Final (spec §4.11's ordo_enc_block). out
// must be sized for at least len(in)+BlockSize() when padded is true.
func EncBlock(cipherID primitive.Id, cipherParams any, modeID primitive.Id, key, iv []byte, encrypt, padded bool, in, out []byte) (int, error) {
	var c Context
	if err := c.Init(cipherID, cipherParams, modeID, key, iv, encrypt, padded); err != nil {
		return 0, err
	}
	n, err := c.Update(out, in)
	if err != nil {
		return n, err
	}
	tail, err := c.Final(out[n:])
	return n + tail, err
}
