// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"

	"github.com/z5labs/textres/config/key"
)

// Store represents a general key value structure.
type Store interface {
	Set(key.Keyer, any) error
}

// UnknownKeyerError occurs when a Source sets a value with a
// key.Keyer which is neither a key.Name nor a key.Chain.
type UnknownKeyerError struct {
	Key key.Keyer
}

// Error implements the error interface.
func (e UnknownKeyerError) Error() string {
	return fmt.Sprintf("config source tried setting config value with unknown key.Keyer: %s", e.Key.Key())
}

// EmptyKeyChainError occurs when a Source sets a value with an empty key.Chain.
type EmptyKeyChainError struct {
	Value any
}

// Error implements the error interface.
func (e EmptyKeyChainError) Error() string {
	return fmt.Sprintf("attempted to set value to an empty key chain: %v", e.Value)
}

// UnexpectedKeyValueTypeError represents the situation when
// a source tries setting a key to a different type than it
// had previously been set to.
type UnexpectedKeyValueTypeError struct {
	Key          string
	ExpectedType string
}

// Error implements the error interface.
func (e UnexpectedKeyValueTypeError) Error() string {
	return fmt.Sprintf("expected key value to be a %s: %s", e.ExpectedType, e.Key)
}

type memStore map[string]any

func (m memStore) Set(k key.Keyer, v any) error {
	return set(m, k, v)
}

func set(m map[string]any, k key.Keyer, v any) error {
	switch x := k.(type) {
	case key.Name:
		m[string(x)] = v
	case key.Chain:
		return setKeyChain(m, x, v)
	default:
		return UnknownKeyerError{Key: k}
	}
	return nil
}

func setKeyChain(m map[string]any, chain key.Chain, v any) error {
	if len(chain) == 0 {
		return EmptyKeyChainError{Value: v}
	}

	root := chain[0]
	if len(chain) == 1 {
		return set(m, root, v)
	}

	old, ok := m[root.Key()]
	if !ok {
		old = make(map[string]any)
		m[root.Key()] = old
	}

	subM, ok := old.(map[string]any)
	if !ok {
		return UnexpectedKeyValueTypeError{
			Key:          root.Key(),
			ExpectedType: "map[string]any",
		}
	}
	return set(subM, chain[1:], v)
}
