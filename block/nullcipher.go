// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package block

import "github.com/luxfi/ordo/primitive"

// NullCipher is the identity block cipher (spec §4.2): Forward and
// Inverse are no-ops. It exists for debugging mode implementations
// without the noise of a real cipher, never for production use.
type NullCipher struct {
	initialized bool
}

func init() {
	primitive.RegisterBlockCipher(primitive.NullCipher, func() primitive.BlockCipher { return &NullCipher{} })
	primitive.RegisterQuery(primitive.NullCipher, primitive.ComposeQueries(
		primitive.FixedQuery(primitive.KeyLenQ, 0),
		primitive.FixedQuery(primitive.BlockSizeQ, 16),
	))
}

// Init accepts only the zero-length key (spec §4.2).
func (n *NullCipher) Init(key []byte, params any) error {
	if len(key) != 0 {
		return primitive.Err(primitive.KeyLen, "NullCipher accepts only a zero-length key")
	}
	n.initialized = true
	return nil
}

func (n *NullCipher) BlockSize() int { return 16 }

// Forward is the identity permutation.
func (n *NullCipher) Forward(block []byte) {}

// Inverse is the identity permutation.
func (n *NullCipher) Inverse(block []byte) {}

func (n *NullCipher) Final() { n.initialized = false }
