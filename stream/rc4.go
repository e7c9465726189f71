// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stream implements the toolkit's stream ciphers (spec §4.3).
package stream

import "github.com/luxfi/ordo/primitive"

// defaultDrop is the number of initial keystream bytes RC4.Init
// discards by default, guarding against the cipher's well-known
// keystream bias in its first few hundred bytes (spec §4.3).
const defaultDrop = 2048

// RC4Params configures RC4.Init's keystream drop count (spec §4.3). A
// nil params, or HasDrop false, requests defaultDrop; with HasDrop
// true, Drop is used as given, and 0 requests no drop.
type RC4Params struct {
	Drop    int
	HasDrop bool
}

// RC4 implements the RC4 stream cipher with a configurable keystream
// drop count (spec §4.3).
type RC4 struct {
	s           [256]byte
	i, j        byte
	initialized bool
}

func init() {
	primitive.RegisterStreamCipher(primitive.RC4, func() primitive.StreamCipher { return &RC4{} })
	primitive.RegisterQuery(primitive.RC4, primitive.RangeQuery(primitive.KeyLenQ, 5, 256))
}

// Init performs the RC4 key-scheduling algorithm (spec §4.3). key_len
// must be in [5, 256] bytes; params may supply a non-default drop
// count via RC4Params.
func (r *RC4) Init(key []byte, params any) error {
	if len(key) < 5 || len(key) > 256 {
		return primitive.Err(primitive.KeyLen, "RC4 key length must be in [5, 256] bytes")
	}

	drop := defaultDrop
	if params != nil {
		p, ok := params.(*RC4Params)
		if !ok {
			return primitive.Err(primitive.Arg, "RC4 params must be *RC4Params")
		}
		if p.HasDrop {
			drop = p.Drop
		}
	}

	for i := 0; i < 256; i++ {
		r.s[i] = byte(i)
	}
	var j byte
	for i := 0; i < 256; i++ {
		j += r.s[i] + key[i%len(key)]
		r.s[i], r.s[j] = r.s[j], r.s[i]
	}
	r.i, r.j = 0, 0
	r.initialized = true

	if drop > 0 {
		sink := make([]byte, drop)
		r.Update(sink)
	}
	return nil
}

// Update XORs the RC4 keystream into buf in place (spec §4.3).
func (r *RC4) Update(buf []byte) {
	for k := range buf {
		r.i++
		r.j += r.s[r.i]
		r.s[r.i], r.s[r.j] = r.s[r.j], r.s[r.i]
		buf[k] ^= r.s[r.s[r.i]+r.s[r.j]]
	}
}

// Final zeroizes the permutation state (spec §4.3).
func (r *RC4) Final() {
	r.s = [256]byte{}
	r.i, r.j = 0, 0
	r.initialized = false
}
