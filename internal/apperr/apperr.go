// Package apperr carries the error taxonomy shared by all request
// handlers: every recoverable failure is tagged with a kind that maps
// to an HTTP status at the boundary.
package apperr

import "errors"

type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindConflict
	KindPermission
	KindNotFound
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

func Permission(msg string) *Error {
	return &Error{Kind: KindPermission, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// KindOf returns the kind of err, or KindUnexpected for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}
