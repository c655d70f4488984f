// Package apperr defines the business error type shared by all services.
// Business failures carry a stable message and an HTTP status; anything
// else is treated as an infrastructure error by the handlers.
package apperr

import (
	"errors"
	"net/http"
)

// Kind is the closed set of business failure categories.
type Kind int

const (
	Invalid Kind = iota + 1
	Unauthorized
	NotFound
	Conflict
)

// Error is a business-rule failure surfaced to the caller. Status defaults
// to 200 with a non-zero envelope code; Unauthorized maps to 401.
type Error struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports kind equality so callers can match with errors.Is against a
// bare-kind sentinel, e.g. errors.Is(err, &Error{Kind: Conflict}).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Code returns the stable envelope code for the error kind.
func (e *Error) Code() int {
	return int(e.Kind)
}

func newError(kind Kind, msg string, status int) *Error {
	return &Error{Kind: kind, Message: msg, Status: status}
}

func NewInvalid(msg string) *Error {
	return newError(Invalid, msg, http.StatusOK)
}

func NewUnauthorized(msg string) *Error {
	return newError(Unauthorized, msg, http.StatusUnauthorized)
}

func NewNotFound(msg string) *Error {
	return newError(NotFound, msg, http.StatusOK)
}

func NewConflict(msg string) *Error {
	return newError(Conflict, msg, http.StatusOK)
}

// IsKind reports whether err is a business error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
