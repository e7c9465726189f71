// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package primitive defines the tagged-primitive identity system shared
// by every algorithm in ordo: a single enumerator (Id) naming each
// cipher, hash, and mode, the Type classification, the Query parameter
// contract, and the shared Error taxonomy. Concrete algorithms live in
// sibling packages (block, stream, hash, mode) and register themselves
// here by Id at init time, the way crypto.RegisterHash lets stdlib hash
// packages register without the registrar importing them.
package primitive

// Id names a single algorithm, unique across every primitive family.
type Id int

const (
	Invalid Id = iota

	// Block ciphers.
	AES
	Threefish256
	NullCipher

	// Stream ciphers.
	RC4

	// Hash functions.
	MD5
	SHA1
	SHA256
	Skein256

	// Block modes.
	ECB
	CBC
	CTR
	CFB
	OFB
)

// Type classifies a primitive. Every Id belongs to exactly one Type.
type Type int

const (
	TypeInvalid Type = iota
	TypeBlock
	TypeStream
	TypeHash
	TypeBlockMode
)

func (t Type) String() string {
	switch t {
	case TypeBlock:
		return "block"
	case TypeStream:
		return "stream"
	case TypeHash:
		return "hash"
	case TypeBlockMode:
		return "blockmode"
	default:
		return "invalid"
	}
}

type idInfo struct {
	id   Id
	name string
	typ  Type
}

// table is built once at package init by this file's init; it never
// changes after process start, matching spec §5's immutability
// requirement for primitive-identity tables. Sibling packages register
// constructors and query functions separately (RegisterBlockCipher,
// RegisterQuery, ...), not entries of this table.
var table []idInfo

func register(id Id, name string, typ Type) {
	for _, e := range table {
		if e.id == id {
			panic("primitive: duplicate registration for id " + name)
		}
	}
	table = append(table, idInfo{id: id, name: name, typ: typ})
}

func init() {
	register(AES, "AES", TypeBlock)
	register(Threefish256, "Threefish256", TypeBlock)
	register(NullCipher, "NullCipher", TypeBlock)
	register(RC4, "RC4", TypeStream)
	register(MD5, "MD5", TypeHash)
	register(SHA1, "SHA1", TypeHash)
	register(SHA256, "SHA256", TypeHash)
	register(Skein256, "Skein256", TypeHash)
	register(ECB, "ECB", TypeBlockMode)
	register(CBC, "CBC", TypeBlockMode)
	register(CTR, "CTR", TypeBlockMode)
	register(CFB, "CFB", TypeBlockMode)
	register(OFB, "OFB", TypeBlockMode)
}

// Name returns the canonical name of id, and false if id is unknown.
func Name(id Id) (string, bool) {
	for _, e := range table {
		if e.id == id {
			return e.name, true
		}
	}
	return "", false
}

// FromName returns the Id named by s, and false if no primitive is
// registered under that name.
func FromName(s string) (Id, bool) {
	for _, e := range table {
		if e.name == s {
			return e.id, true
		}
	}
	return Invalid, false
}

// TypeOf returns the Type of id, or TypeInvalid if id is unknown.
func TypeOf(id Id) Type {
	for _, e := range table {
		if e.id == id {
			return e.typ
		}
	}
	return TypeInvalid
}

// Ids returns every registered Id of the given Type, in a stable order
// (registration order), so callers can iterate compiled-in algorithms
// without compile-time knowledge of which ones are available.
func Ids(typ Type) []Id {
	var out []Id
	for _, e := range table {
		if e.typ == typ {
			out = append(out, e.id)
		}
	}
	return out
}
