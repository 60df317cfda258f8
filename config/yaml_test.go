// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/z5labs/textres/config/key"

	"github.com/stretchr/testify/assert"
)

type readFunc func([]byte) (int, error)

func (f readFunc) Read(b []byte) (int, error) {
	return f(b)
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestYaml_Apply(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the underlying io.Reader fails", func(t *testing.T) {
			readErr := errors.New("failed to read")
			r := readFunc(func(b []byte) (int, error) {
				return 0, readErr
			})

			store := storeFunc(func(k key.Keyer, a any) error {
				return nil
			})

			err := FromYaml(r).Apply(store)
			if !assert.ErrorIs(t, err, readErr) {
				return
			}
		})

		t.Run("if the io.Reader contains invalid YAML", func(t *testing.T) {
			r := strings.NewReader("root")

			store := storeFunc(func(k key.Keyer, a any) error {
				return nil
			})

			err := FromYaml(r).Apply(store)

			var ierr InvalidYamlError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
			if !assert.NotNil(t, ierr.Unwrap()) {
				return
			}
		})
	})

	t.Run("will close the reader", func(t *testing.T) {
		t.Run("if it is an io.Closer", func(t *testing.T) {
			r := &closeTracker{Reader: strings.NewReader("root: /srv")}

			err := FromYaml(r).Apply(make(memStore))
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, r.closed) {
				return
			}
		})
	})
}
