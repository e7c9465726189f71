// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package primitive

// Kind is the shared error taxonomy (spec §7): every operation in ordo
// returns either nil or an *Error carrying one of these kinds, so
// callers can branch on category without string matching.
type Kind int

const (
	Success Kind = iota
	Fail
	Leftover
	KeyLen
	Padding
	Arg
)

// String returns a short, English, non-localized description suitable
// for debug logs, per spec §7.
func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Fail:
		return "external operation failed"
	case Leftover:
		return "unconsumed buffered input at finalization"
	case KeyLen:
		return "invalid key length"
	case Padding:
		return "padding validation failed"
	case Arg:
		return "invalid argument"
	default:
		return "unknown error"
	}
}

// Error is the value-typed error ordo operations return. Leftover
// carries the buffered-byte count the caller needs (spec §4.5.6).
type Error struct {
	Kind    Kind
	Message string
	N       int // meaningful only when Kind == Leftover
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}

// Is supports errors.Is(err, primitive.Err(primitive.Arg, "")) style
// matching on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Err constructs an *Error of the given kind and message.
func Err(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// ErrLeftover constructs a Leftover error carrying the buffered count.
func ErrLeftover(n int) *Error {
	return &Error{Kind: Leftover, Message: "buffered input remains", N: n}
}
