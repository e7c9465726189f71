// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bitops

// Pad7 returns the PKCS#7 padding to append to a buffer holding
// bufferedLen bytes so the total is a multiple of blockSize (spec
// §4.5.1, §6.2). The returned padding value is always in [1, blockSize].
func Pad7(bufferedLen, blockSize int) []byte {
	n := blockSize - (bufferedLen % blockSize)
	pad := make([]byte, n)
	for i := range pad {
		pad[i] = byte(n)
	}
	return pad
}

// Unpad7 validates a PKCS#7-padded final block and returns the number
// of plaintext bytes to emit. block must be exactly blockSize long.
// Validation fails if the trailing value is outside [1, blockSize] or
// the trailing bytes are not all equal to it.
func Unpad7(block []byte, blockSize int) (int, bool) {
	p := int(block[blockSize-1])
	if p < 1 || p > blockSize {
		return 0, false
	}
	for i := blockSize - p; i < blockSize; i++ {
		if int(block[i]) != p {
			return 0, false
		}
	}
	return blockSize - p, true
}
