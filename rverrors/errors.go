// Package rverrors defines the single tagged error type the codec
// returns on failure, mirroring the wrapping-error-with-context pattern
// the teacher's encoder and parser packages use for assembly diagnostics.
package rverrors

import "fmt"

// Kind tags the category of codec failure, matching the taxonomy in the
// specification's error handling section.
type Kind string

const (
	InvalidOpcode        Kind = "InvalidOpcode"
	InvalidFunct         Kind = "InvalidFunct"
	InvalidFence         Kind = "InvalidFence"
	NonZeroReserved      Kind = "NonZeroReserved"
	ShiftOutOfRange      Kind = "ShiftOutOfRange"
	BadShtyp             Kind = "BadShtyp"
	IsaMismatch          Kind = "IsaMismatch"
	UnknownMnemonic      Kind = "UnknownMnemonic"
	OperandSyntax        Kind = "OperandSyntax"
	ImmediateOutOfRange  Kind = "ImmediateOutOfRange"
	BadRegister          Kind = "BadRegister"
	BadCsr               Kind = "BadCsr"
	MalformedInput       Kind = "MalformedInput"
	InternalErrorKind    Kind = "InternalError"
	MalformedFieldKind   Kind = "MalformedField"
)

// Error is the single error type the codec ever returns. It carries a
// Kind for programmatic dispatch and a human message for display,
// exactly as the teacher's EncodingError wraps an underlying cause with
// context instead of returning bare fmt.Errorf strings across package
// boundaries.
type Error struct {
	Kind    Kind
	Message string
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// New creates an Error of the given kind with no wrapped cause.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind around an existing error. If
// err is already an *Error of the same or any kind, it is still wrapped
// (unlike the teacher's double-wrap guard for EncodingError) because the
// codec never re-wraps its own errors across more than one boundary.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// Is reports whether err is an *Error carrying the given Kind, allowing
// callers to use errors.Is-style dispatch: `rverrors.Is(err, rverrors.BadRegister)`.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if ae, ok := err.(*Error); ok {
			e = ae
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind
}
