// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package digest is the thin streaming façade spec §4.6 calls for: a
// Context pairs a primitive.Id with the primitive.Hash state it
// dispatches to, so callers drive any registered hash through the same
// Init/Update/Final lifecycle without importing the hash package
// directly.
package digest

import (
	_ "github.com/luxfi/ordo/hash"
	"github.com/luxfi/ordo/primitive"
)

// Context drives one hash computation, identified by primitive.Id.
type Context struct {
	id primitive.Id
	h  primitive.Hash
}

// Init allocates and initializes the hash registered under id. params
// is forwarded to the hash's own Init (e.g. Skein-256's output length).
func (c *Context) Init(id primitive.Id, params any) error {
	h, ok := primitive.NewHash(id)
	if !ok {
		return primitive.Err(primitive.Arg, "unknown hash id")
	}
	if err := h.Init(params); err != nil {
		return err
	}
	c.id = id
	c.h = h
	return nil
}

// Update feeds data into the underlying hash.
func (c *Context) Update(data []byte) {
	c.h.Update(data)
}

// Final writes the digest to out, sized DigestSize().
func (c *Context) Final(out []byte) {
	c.h.Final(out)
}

// DigestSize returns the underlying hash's output length in bytes.
func (c *Context) DigestSize() int { return c.h.DigestSize() }

// Clone returns a deep, independent copy of c's current state, so a
// caller can branch a streaming computation without re-feeding the
// common prefix (original_source/src/digest.c's digest_copy).
func (c *Context) Clone() *Context {
	return &Context{id: c.id, h: c.h.Clone()}
}

// Digest runs one complete digest computation: init, feed in, finalize
// into out (spec §4.6's ordo_digest one-shot).
func Digest(id primitive.Id, params any, in []byte, out []byte) error {
	var c Context
	if err := c.Init(id, params); err != nil {
		return err
	}
	c.Update(in)
	c.Final(out)
	return nil
}
