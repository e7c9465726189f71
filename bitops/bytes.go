// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bitops

import "crypto/subtle"

// XOR sets dst[i] = a[i] ^ b[i] for i in [0, n), where n = len(dst).
// dst, a, and b must each have length >= n.
func XOR(dst, a, b []byte) {
	n := len(dst)
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
}

// XORInto XORs src into dst in place: dst[i] ^= src[i].
func XORInto(dst, src []byte) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// IncrementBE treats block as a big-endian unsigned integer and adds 1
// to it in place, carrying from the last byte toward the first (spec
// §4.5.3's CTR counter increment).
func IncrementBE(block []byte) {
	for i := len(block) - 1; i >= 0; i-- {
		block[i]++
		if block[i] != 0 {
			return
		}
	}
}

// CTEqual reports whether a and b are equal, in constant time with
// respect to where they differ (spec §5, §8): it never short-circuits
// on the first mismatching byte. Unequal lengths are not constant
// time to reject, matching crypto/subtle.ConstantTimeCompare.
func CTEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
