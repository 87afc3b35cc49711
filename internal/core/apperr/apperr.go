package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the transport layer can pick a status code
// without parsing messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthenticated
	KindNotFound
	KindForbidden
	KindInvalid
	KindDependency
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// Message is the human-readable part, safe to show a caller for every kind
// except KindDependency.
func (e *Error) Message() string { return e.msg }

func (e *Error) Kind() Kind { return e.kind }

func Unauthenticated(msg string) *Error { return &Error{kind: KindUnauthenticated, msg: msg} }
func NotFound(msg string) *Error        { return &Error{kind: KindNotFound, msg: msg} }
func Forbidden(msg string) *Error       { return &Error{kind: KindForbidden, msg: msg} }
func Invalid(msg string) *Error         { return &Error{kind: KindInvalid, msg: msg} }

// Dependency wraps a persistence or upstream failure. The wrapped error stays
// available for logs; callers only ever see the message.
func Dependency(msg string, err error) *Error {
	return &Error{kind: KindDependency, msg: msg, err: err}
}

// KindOf walks the error chain and reports the first classified kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}
