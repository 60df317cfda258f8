// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"testing"

	"github.com/z5labs/textres/config/key"

	"github.com/stretchr/testify/assert"
)

type myKeyer string

func (myKeyer) Key() string {
	return "my key"
}

type storeFunc func(key.Keyer, any) error

func (f storeFunc) Set(k key.Keyer, v any) error {
	return f(k, v)
}

func TestMemStore_Set(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if an unknown key.Keyer is used", func(t *testing.T) {
			store := make(memStore)
			err := store.Set(myKeyer("root"), "/tmp")

			var ierr UnknownKeyerError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
		})

		t.Run("if an empty key.Chain is used", func(t *testing.T) {
			store := make(memStore)
			err := store.Set(key.Chain{}, "/tmp")

			var ierr EmptyKeyChainError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
		})

		t.Run("if the value type is attempted to be changed while overriding an existing key", func(t *testing.T) {
			store := make(memStore)
			err := store.Set(key.Name("log"), "debug")
			if !assert.Nil(t, err) {
				return
			}

			err = store.Set(key.Chain{key.Name("log"), key.Name("level")}, "debug")

			var ierr UnexpectedKeyValueTypeError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
		})
	})

	t.Run("will nest values", func(t *testing.T) {
		t.Run("if a key.Chain is used", func(t *testing.T) {
			store := make(memStore)
			err := store.Set(key.Chain{key.Name("log"), key.Name("level")}, "debug")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, map[string]any{"level": "debug"}, store["log"]) {
				return
			}
		})
	})
}
