// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package primitive

import "math"

// QueryTag enumerates the parameter kinds a primitive can be asked
// about (spec §3).
type QueryTag int

const (
	KeyLenQ QueryTag = iota
	BlockSizeQ
	DigestLenQ
	IvLenQ
)

// SizeMax is the "largest possible value" sentinel a caller passes to
// Query to discover a primitive's maximum for a tag (spec §3).
const SizeMax = math.MaxInt

// QueryFunc answers a single (tag, suggested) pair for one primitive.
// It must satisfy the contract in spec §3:
//
//   - Query(tag, 0) returns the smallest valid value.
//   - Query(tag, SizeMax) returns the largest valid value.
//   - Query(tag, n) == n iff n is valid.
//   - if n is below the largest valid value, Query(tag, n) > n.
//   - Query(tag, n+1) == n signals n is the maximum.
type QueryFunc func(tag QueryTag, suggested int) (int, bool)

var queryTable = map[Id]QueryFunc{}

// RegisterQuery installs the QueryFunc that answers parameter queries
// for id. Called from each algorithm's init().
func RegisterQuery(id Id, fn QueryFunc) {
	queryTable[id] = fn
}

// Query dispatches to the QueryFunc registered for id. The second
// return value is false if id has no registered query function or the
// tag is not applicable to it.
func Query(id Id, tag QueryTag, suggested int) (int, bool) {
	fn, ok := queryTable[id]
	if !ok {
		return 0, false
	}
	return fn(tag, suggested)
}

// DiscreteQuery builds a QueryFunc for a primitive with a small,
// explicit set of valid sizes for one tag (e.g. AES key lengths
// 16/24/32). Sizes must be supplied in increasing order.
func DiscreteQuery(tag QueryTag, sizes []int) func(QueryTag, int) (int, bool) {
	return func(t QueryTag, suggested int) (int, bool) {
		if t != tag {
			return 0, false
		}
		if suggested <= sizes[0] {
			return sizes[0], true
		}
		last := sizes[len(sizes)-1]
		if suggested >= last {
			return last, true
		}
		for _, s := range sizes {
			if suggested <= s {
				return s, true
			}
		}
		return last, true
	}
}

// RangeQuery builds a QueryFunc for a primitive whose valid sizes for
// one tag form a contiguous [lo, hi] range (e.g. RC4 key length).
func RangeQuery(tag QueryTag, lo, hi int) func(QueryTag, int) (int, bool) {
	return func(t QueryTag, suggested int) (int, bool) {
		if t != tag {
			return 0, false
		}
		switch {
		case suggested <= lo:
			return lo, true
		case suggested == SizeMax || suggested >= hi:
			return hi, true
		default:
			return suggested, true
		}
	}
}

// FixedQuery builds a QueryFunc for a primitive with exactly one valid
// size for a tag (e.g. a hash's DigestLen, or ECB's zero IvLen).
func FixedQuery(tag QueryTag, size int) func(QueryTag, int) (int, bool) {
	return func(t QueryTag, suggested int) (int, bool) {
		if t != tag {
			return 0, false
		}
		return size, true
	}
}

// ComposeQueries merges several single-tag QueryFuncs (as produced by
// DiscreteQuery/RangeQuery/FixedQuery) into one QueryFunc, the shape
// every algorithm's init() registers.
func ComposeQueries(fns ...func(QueryTag, int) (int, bool)) QueryFunc {
	return func(tag QueryTag, suggested int) (int, bool) {
		for _, fn := range fns {
			if v, ok := fn(tag, suggested); ok {
				return v, true
			}
		}
		return 0, false
	}
}
