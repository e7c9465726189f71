// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ordo is the high-level façade spec §4.11 describes: one-shot
// entry points that compose the primitive/mode/digest/hmac layers
// below it into the four operations most callers need without owning
// a streaming context themselves.
package ordo

import (
	"github.com/luxfi/ordo/digest"
	"github.com/luxfi/ordo/encblock"
	"github.com/luxfi/ordo/encstream"
	"github.com/luxfi/ordo/hmac"
	"github.com/luxfi/ordo/primitive"
)

// Digest computes one digest with the hash registered under id,
// writing DigestSize() bytes to out (spec §4.11's ordo_digest).
func Digest(id primitive.Id, params any, in, out []byte) error {
	return digest.Digest(id, params, in, out)
}

// HMAC computes one RFC 2104 HMAC with the hash registered under id,
// writing DigestSize() bytes to out (spec §4.11's ordo_hmac).
func HMAC(id primitive.Id, params any, key, in, out []byte) error {
	return hmac.Sum(id, params, key, in, out)
}

// EncBlock runs one complete block-cipher-mode encryption or
// decryption (spec §4.11's ordo_enc_block), returning the total bytes
// written across Update and Final. out must be sized for at least
// len(in)+BlockSize(cipher) when padded is true.
func EncBlock(cipherID primitive.Id, cipherParams any, modeID primitive.Id, key, iv []byte, encrypt, padded bool, in, out []byte) (int, error) {
	return encblock.EncBlock(cipherID, cipherParams, modeID, key, iv, encrypt, padded, in, out)
}

// EncStream runs one complete in-place stream-cipher encryption (spec
// §4.11's ordo_enc_stream).
func EncStream(cipherID primitive.Id, params any, key, inout []byte) error {
	return encstream.EncStream(cipherID, params, key, inout)
}
