// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package textres

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	t.Run("will return a distinct name", func(t *testing.T) {
		t.Run("for every known kind", func(t *testing.T) {
			seen := make(map[string]Kind)
			for _, k := range Kinds {
				s := k.String()
				if !assert.NotContains(t, seen, s) {
					return
				}
				seen[s] = k
			}
		})

		t.Run("for an unknown kind", func(t *testing.T) {
			if !assert.Equal(t, "Kind(42)", Kind(42).String()) {
				return
			}
		})
	})
}

func TestAccessError_Is(t *testing.T) {
	t.Run("will match", func(t *testing.T) {
		t.Run("its own kind", func(t *testing.T) {
			for _, k := range Kinds {
				err := fmt.Errorf("wrapped: %w", &AccessError{Kind: k, Op: "open", Path: "greeting", Cause: errors.New("oops")})
				if !assert.ErrorIs(t, err, k) {
					return
				}
			}
		})

		t.Run("its cause", func(t *testing.T) {
			err := &AccessError{Kind: NotFound, Op: "open", Path: "greeting", Cause: fs.ErrNotExist}
			if !assert.ErrorIs(t, err, fs.ErrNotExist) {
				return
			}
		})
	})

	t.Run("will not match", func(t *testing.T) {
		t.Run("any other kind", func(t *testing.T) {
			err := &AccessError{Kind: NotFound, Op: "open", Path: "greeting", Cause: fs.ErrNotExist}
			if !assert.NotErrorIs(t, err, PermissionDenied) {
				return
			}
			if !assert.NotErrorIs(t, err, Other) {
				return
			}
		})
	})
}

func TestAccessError_Error(t *testing.T) {
	t.Run("will include the op, path, kind and cause", func(t *testing.T) {
		err := &AccessError{Kind: PermissionDenied, Op: "open", Path: "greeting", Cause: errors.New("nope")}

		if !assert.Equal(t, "open greeting: permission denied: nope", err.Error()) {
			return
		}
	})
}

func TestKindOf(t *testing.T) {
	t.Run("will return zero", func(t *testing.T) {
		t.Run("if the error is nil", func(t *testing.T) {
			if !assert.Equal(t, Kind(0), KindOf(nil)) {
				return
			}
		})

		t.Run("if the error is not an AccessError", func(t *testing.T) {
			if !assert.Equal(t, Kind(0), KindOf(errors.New("oops"))) {
				return
			}
		})
	})

	t.Run("will find the kind", func(t *testing.T) {
		t.Run("if the AccessError is joined with other errors", func(t *testing.T) {
			err := errors.Join(errors.New("oops"), &AccessError{Kind: Other, Cause: errors.New("read")})
			if !assert.Equal(t, Other, KindOf(err)) {
				return
			}
		})
	})
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		Name string
		Err  error
		Kind Kind
	}{
		{
			Name: "fs.ErrNotExist",
			Err:  &fs.PathError{Op: "open", Path: "greeting", Err: fs.ErrNotExist},
			Kind: NotFound,
		},
		{
			Name: "ENOENT",
			Err:  &fs.PathError{Op: "open", Path: "greeting", Err: syscall.ENOENT},
			Kind: NotFound,
		},
		{
			Name: "fs.ErrPermission",
			Err:  &fs.PathError{Op: "open", Path: "greeting", Err: fs.ErrPermission},
			Kind: PermissionDenied,
		},
		{
			Name: "EACCES",
			Err:  &fs.PathError{Op: "open", Path: "greeting", Err: syscall.EACCES},
			Kind: PermissionDenied,
		},
		{
			Name: "unknown error",
			Err:  errors.New("disk on fire"),
			Kind: Other,
		},
		{
			Name: "an existing AccessError",
			Err:  &AccessError{Kind: PermissionDenied, Op: "open", Path: "greeting", Cause: errors.New("nope")},
			Kind: PermissionDenied,
		},
	}

	for _, testCase := range testCases {
		t.Run("will classify "+testCase.Name, func(t *testing.T) {
			aerr := classify("open", "greeting", testCase.Err)

			if !assert.Equal(t, testCase.Kind, aerr.Kind) {
				return
			}
			if !assert.ErrorIs(t, aerr, testCase.Err) {
				return
			}
		})
	}
}
