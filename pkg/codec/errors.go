// Package codec implements the deterministic, byte-exact primitive
// serialization shapes shared by instruction arguments, account state, and
// event payloads: fixed-width little-endian integers, bools, fixed byte
// arrays, public keys, options, enums, and length-prefixed vectors.
package codec

import "fmt"

// Code identifies a codec failure mode. The set is closed and stable;
// implementers must not repurpose an existing Code for a different failure.
type Code string

const (
	CodeTruncated                 Code = "TRUNCATED"
	CodeTrailingBytes             Code = "TRAILING_BYTES"
	CodeUnknownEnumTag            Code = "UNKNOWN_ENUM_TAG"
	CodeInvalidBooleanByte        Code = "INVALID_BOOLEAN_BYTE"
	CodeVectorLengthExceedsBuffer Code = "VECTOR_LENGTH_EXCEEDS_BUFFER"
)

// CodecError is the single sum-type error every primitive-codec operation
// raises. It carries a stable Code plus a human-readable message, and never
// wraps further errors — codec failures are leaves, not chains.
type CodecError struct {
	Code Code
	Msg  string
}

func (e *CodecError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func newErr(code Code, msg string) error {
	return &CodecError{Code: code, Msg: msg}
}

// AsCodecError reports whether err is a *CodecError and returns it.
func AsCodecError(err error) (*CodecError, bool) {
	ce, ok := err.(*CodecError)
	return ce, ok
}
