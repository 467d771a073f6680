// Package exiterror carries the exit code of the program along with an error.
package exiterror

import (
	"errors"

	"github.com/hashicorp/errwrap"
)

const (
	// Failure is the exit code for errors without a custom code
	Failure = 1

	// Usage is the exit code for invalid commands, flags, or arguments
	Usage = 2
)

// Error with exit code.
type Error struct {
	err  error
	code int
}

// Error message.
func (e Error) Error() string {
	return e.err.Error()
}

// Code for the exit syscall.
func (e Error) Code() int {
	return e.code
}

// WrappedErrors lets errwrap walk into the cause.
func (e Error) WrappedErrors() []error {
	return []error{e.err}
}

// Unwrap returns the cause.
func (e Error) Unwrap() error {
	return e.err
}

// New returns an error that formats as the given text with an associated exit code.
func New(text string, code int) Error {
	return Wrap(errors.New(text), code)
}

// Wrap err with an exit code.
func Wrap(err error, code int) Error {
	return Error{
		err:  err,
		code: code,
	}
}

// Code to exit with after err: 0 when nil, the code of a wrapped Error, or Failure.
func Code(err error) int {
	if err == nil {
		return 0
	}

	if e, ok := errwrap.GetType(err, Error{}).(Error); ok {
		return e.Code()
	}

	return Failure
}
