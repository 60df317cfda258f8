// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package textres

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies why accessing a text resource failed.
// The set of kinds is closed.
type Kind int

const (
	// NotFound means the resource does not exist and was not created.
	NotFound Kind = iota + 1

	// PermissionDenied means the underlying storage refused access.
	PermissionDenied

	// Other covers every remaining failure, including failures to
	// create a missing resource and failures while reading.
	Other
)

// Kinds lists every Kind.
var Kinds = []Kind{NotFound, PermissionDenied, Other}

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case Other:
		return "other"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error implements the error interface so a Kind can be
// used as the target of errors.Is.
func (k Kind) Error() string {
	return k.String()
}

// ErrEmptyPath is the cause reported when an operation is given an empty path.
var ErrEmptyPath = errors.New("empty path")

// AccessError is returned by every failing operation in this package.
type AccessError struct {
	Kind  Kind
	Op    string
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	return fmt.Sprintf("%s %s: %s: %s", e.Op, e.Path, e.Kind, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e *AccessError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the Kind of e.
func (e *AccessError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the Kind of the first AccessError in err's tree.
// It returns 0 if there is none.
func KindOf(err error) Kind {
	var aerr *AccessError
	if !errors.As(err, &aerr) {
		return 0
	}
	return aerr.Kind
}

// classify maps a storage failure for op on path to an AccessError.
func classify(op, path string, err error) *AccessError {
	var aerr *AccessError
	if errors.As(err, &aerr) {
		return aerr
	}

	kind := Other
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = NotFound
	case errors.Is(err, fs.ErrPermission):
		kind = PermissionDenied
	}
	return &AccessError{
		Kind:  kind,
		Op:    op,
		Path:  path,
		Cause: err,
	}
}

// other reports err as an Other failure regardless of its cause.
func other(op, path string, err error) *AccessError {
	return &AccessError{
		Kind:  Other,
		Op:    op,
		Path:  path,
		Cause: err,
	}
}
