// Package idl is the schema registry: the static, versioned catalog of every
// account, instruction-args, and event type, each keyed by its 8-byte
// discriminator and decoded/encoded field-by-field against its declared
// zero-copy or borsh layout.
package idl

import "fmt"

// Code identifies a schema-registry failure mode, distinct from the
// lower-level codec.Code values a decode may also surface.
type Code string

const (
	CodeDiscriminatorMismatch Code = "DISCRIMINATOR_MISMATCH"
	CodeSizeMismatch          Code = "SIZE_MISMATCH"
	CodeUnknownSchema         Code = "UNKNOWN_SCHEMA"
)

// SchemaError is the registry-level sum-type error, shaped identically to
// codec.CodecError: a stable Code plus a human message, no wrapping.
type SchemaError struct {
	Code Code
	Msg  string
}

func (e *SchemaError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func newErr(code Code, msg string) error {
	return &SchemaError{Code: code, Msg: msg}
}

func newErrf(code Code, format string, args ...any) error {
	return &SchemaError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// AsSchemaError reports whether err is a *SchemaError and returns it.
func AsSchemaError(err error) (*SchemaError, bool) {
	se, ok := err.(*SchemaError)
	return se, ok
}
