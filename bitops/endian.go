// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bitops provides the endianness, rotation, padding, XOR, and
// constant-time comparison helpers every primitive in ordo is built on
// (spec §3's "Endianness & bit utilities"). Functions here are pure and
// contain no host-specific intrinsics, so they behave identically on
// big- and little-endian targets.
package bitops

import "encoding/binary"

// LE32 decodes a little-endian uint32 from the first 4 bytes of b.
func LE32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// PutLE32 encodes v as little-endian into the first 4 bytes of b.
func PutLE32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// LE64 decodes a little-endian uint64 from the first 8 bytes of b.
func LE64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

// PutLE64 encodes v as little-endian into the first 8 bytes of b.
func PutLE64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

// BE32 decodes a big-endian uint32 from the first 4 bytes of b.
func BE32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// PutBE32 encodes v as big-endian into the first 4 bytes of b.
func PutBE32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

// BE64 decodes a big-endian uint64 from the first 8 bytes of b.
func BE64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

// PutBE64 encodes v as big-endian into the first 8 bytes of b.
func PutBE64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

// RotL32 rotates x left by n bits (0 <= n < 32).
func RotL32(x uint32, n uint) uint32 { return (x << n) | (x >> (32 - n)) }

// RotR32 rotates x right by n bits (0 <= n < 32).
func RotR32(x uint32, n uint) uint32 { return (x >> n) | (x << (32 - n)) }

// RotL64 rotates x left by n bits (0 <= n < 64).
func RotL64(x uint64, n uint) uint64 { return (x << n) | (x >> (64 - n)) }

// RotR64 rotates x right by n bits (0 <= n < 64).
func RotR64(x uint64, n uint) uint64 { return (x >> n) | (x << (64 - n)) }
