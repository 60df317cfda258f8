// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try provides deferrable helpers which fold late failures,
// like panics and close errors, into a function's named error result.
package try

import (
	"errors"
	"fmt"
	"io"
)

// PanicError is the value a recovered panic is reported as.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap returns the panic value if it was an error.
func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// CloseError is reported when closing a resource fails.
type CloseError struct {
	Cause error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Classifier maps a late failure onto the caller's own error type.
// A nil Classifier leaves the failure as is.
type Classifier func(error) error

func (f Classifier) classify(err error) error {
	if f == nil {
		return err
	}
	return f(err)
}

// Recover must be deferred. It turns a panic into a PanicError, passes
// it through classify and stores the result in err.
func Recover(err *error, classify Classifier) {
	r := recover()
	if r == nil {
		return
	}
	merge(err, classify.classify(PanicError{Value: r}))
}

// Close must be deferred. It closes c, if c is non-nil, and stores
// any failure, wrapped in a CloseError and passed through classify, in err.
func Close(err *error, c io.Closer, classify Classifier) {
	if c == nil {
		return
	}

	cerr := c.Close()
	if cerr == nil {
		return
	}
	merge(err, classify.classify(CloseError{Cause: cerr}))
}

func merge(dst *error, err error) {
	if *dst == nil {
		*dst = err
		return
	}
	*dst = errors.Join(*dst, err)
}
