// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package x25519 implements X25519 elliptic-curve Diffie-Hellman over
// Curve25519 (spec §4.10): key generation, public-key derivation, and
// shared-secret computation. Curve25519's field arithmetic is
// explicitly out of scope for this toolkit (spec §1: "specify only
// its four public operations"), so this package is a thin wrapper
// over golang.org/x/crypto/curve25519, the same way the teacher wraps
// crypto/elliptic rather than hand-rolling field math for its own
// elliptic-curve precompile (ecies/contract.go).
package x25519

import (
	"golang.org/x/crypto/curve25519"

	"github.com/luxfi/ordo/entropy"
	"github.com/luxfi/ordo/primitive"
)

// KeySize is the length in bytes of an X25519 private key, public
// key, and shared secret.
const KeySize = 32

// Generate fills priv with a fresh private scalar read from the OS
// entropy source and clamped per spec §4.10
// (priv[0] &= 248; priv[31] &= 127; priv[31] |= 64).
func Generate(priv []byte) error {
	if len(priv) != KeySize {
		return primitive.Err(primitive.Arg, "X25519 private key must be 32 bytes")
	}
	if err := entropy.Random(priv); err != nil {
		return err
	}
	clamp(priv)
	return nil
}

// clamp applies the Curve25519 scalar-clamping bits spec §4.10
// mandates on a freshly generated private key.
func clamp(priv []byte) {
	priv[0] &= 248
	priv[31] &= 127
	priv[31] |= 64
}

// PublicKey writes to pub the public key derived from priv by
// multiplying the Curve25519 basepoint (u=9) by priv via the
// Montgomery ladder (spec §4.10).
func PublicKey(pub, priv []byte) error {
	if len(priv) != KeySize {
		return primitive.Err(primitive.Arg, "X25519 private key must be 32 bytes")
	}
	if len(pub) != KeySize {
		return primitive.Err(primitive.Arg, "X25519 public key must be 32 bytes")
	}
	out, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return primitive.Err(primitive.Fail, "X25519 public key derivation failed: "+err.Error())
	}
	copy(pub, out)
	return nil
}

// Shared writes to shared the X25519 shared secret between priv and
// peerPub: scalar multiplication of peerPub by priv (spec §4.10).
func Shared(shared, priv, peerPub []byte) error {
	if len(priv) != KeySize || len(peerPub) != KeySize {
		return primitive.Err(primitive.Arg, "X25519 keys must be 32 bytes")
	}
	if len(shared) != KeySize {
		return primitive.Err(primitive.Arg, "X25519 shared secret must be 32 bytes")
	}
	out, err := curve25519.X25519(priv, peerPub)
	if err != nil {
		return primitive.Err(primitive.Fail, "X25519 ECDH failed: "+err.Error())
	}
	copy(shared, out)
	return nil
}
