// Package apperr defines the error taxonomy shared by all tool handlers.
package apperr

import (
	"errors"
	"fmt"
)

// Sentinel categories. Handlers wrap these with a human-readable message;
// the MCP layer renders the message, tests branch on the category.
var (
	ErrTraversal     = errors.New("path traversal")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrIO            = errors.New("i/o failure")
	ErrCommand       = errors.New("external command failed")
)

// Error carries a category sentinel and a message suitable for returning
// to the caller verbatim.
type Error struct {
	kind error
	msg  string
}

// New creates an Error of the given category with a formatted message.
func New(kind error, format string, a ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, a...)}
}

func (e *Error) Error() string { return e.msg }

// Unwrap exposes the category for errors.Is.
func (e *Error) Unwrap() error { return e.kind }
