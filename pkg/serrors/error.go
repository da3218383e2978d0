package serrors

import (
	"errors"
	"fmt"
)

// Error is an error with a Kind, an optional cause and a message meant for
// clients. errors.Is and errors.As match both the kind and the cause.
type Error struct {
	kind   Kind
	err    error
	msg    string
	fields []FieldError
}

// FieldError names one invalid input field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap attaches k and a message to err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Invalid is a BAD_REQUEST error listing the offending fields.
func Invalid(fields []FieldError, msgFmt string, args ...any) *Error {
	return &Error{kind: ErrBadRequest, msg: fmt.Sprintf(msgFmt, args...), fields: fields}
}

func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error renders "msg: cause", falling back to whichever part is set and
// finally to the kind's code.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	}

	return "unknown error"
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil {
		return target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) || (e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) || (e.err != nil && errors.As(e.err, target))
}

func (e *Error) Kind() Kind           { return e.kind }
func (e *Error) Message() string      { return e.msg }
func (e *Error) Cause() error         { return e.err }
func (e *Error) Fields() []FieldError { return e.fields }

// KindOf returns the first kind found in err's chain, or ErrInternal.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}
