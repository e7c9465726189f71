// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package mode implements the toolkit's block-cipher modes of
// operation (spec §4.5): ECB, CBC, CTR, OFB, and CFB, each driving an
// already-keyed primitive.BlockCipher.
package mode

// accumulate appends in to buf, then repeatedly hands full blockSize
// blocks to consume, removing them from buf. When keepOne is true, one
// full block is always left buffered even if another is available —
// the lookahead padded-decrypt modes need to tell the true final
// block (which may carry padding) from an interior one (spec §4.5.1's
// "one-block lookahead preserved during decrypt when padding is
// enabled").
func accumulate(buf []byte, in []byte, blockSize int, keepOne bool, consume func(block []byte)) []byte {
	buf = append(buf, in...)
	for {
		if keepOne {
			if len(buf) <= blockSize {
				break
			}
		} else if len(buf) < blockSize {
			break
		}
		consume(buf[:blockSize])
		buf = append([]byte(nil), buf[blockSize:]...)
	}
	return buf
}
