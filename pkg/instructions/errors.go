package instructions

import "fmt"

// Code identifies an instruction-builder failure mode, distinct from
// codec.Code and idl.Code — the builder layer has its own small taxonomy
// (unknown name, wrong args type, missing account) on top of whatever the
// codec raises while encoding args.
type Code string

const (
	CodeUnknownInstruction Code = "UNKNOWN_INSTRUCTION"
	CodeArgsTypeMismatch   Code = "ARGS_TYPE_MISMATCH"
	CodeMissingAccount     Code = "MISSING_ACCOUNT"
)

// BuildError is the builder-level sum-type error, shaped like
// codec.CodecError and idl.SchemaError: a stable Code plus a human message.
type BuildError struct {
	Code Code
	Msg  string
}

func (e *BuildError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func newErr(code Code, msg string) error {
	return &BuildError{Code: code, Msg: msg}
}

func newErrf(code Code, format string, args ...any) error {
	return &BuildError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// AsBuildError reports whether err is a *BuildError and returns it.
func AsBuildError(err error) (*BuildError, bool) {
	be, ok := err.(*BuildError)
	return be, ok
}
