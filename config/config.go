// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config reads settings for textres components from layered sources.
package config

import (
	"encoding"
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Source defines valid config sources as those who can
// serialize themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// Manager holds the merged values of every Source it was read from.
type Manager struct {
	store memStore
}

// Read applies every source, in order, to a fresh store.
// Subsequent sources override previous sources.
func Read(srcs ...Source) (*Manager, error) {
	store := make(memStore)
	for _, src := range srcs {
		err := src.Apply(store)
		if err != nil {
			return nil, err
		}
	}
	return &Manager{store: store}, nil
}

// Unmarshal decodes the merged values into v, which must be a pointer to
// a struct. Fields are matched by their `config` tag.
func (m *Manager) Unmarshal(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  v,
		DecodeHook: composeDecodeHooks(
			textUnmarshalerHookFunc(),
			fileModeHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(m.store))
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to unmarshal a config
// value to a struct field whose type does not match the config
// value type, up to, coercion.
type TypeCoercionError struct {
	From  string
	To    string
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.From, e.To, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				From:  f.Type().String(),
				To:    t.Type().String(),
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t)
		u, ok := result.Interface().(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}
		return result.Elem().Interface(), nil
	}
}

var fileModeType = reflect.TypeOf(fs.FileMode(0))

// fileModeHookFunc accepts octal strings, like "0644" or "0o644",
// and plain integers.
func fileModeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != fileModeType {
			return nil, errInvalidDecodeCondition
		}

		switch f.Kind() {
		case reflect.String:
			s := strings.TrimPrefix(strings.TrimPrefix(data.(string), "0o"), "0O")
			n, err := strconv.ParseUint(s, 8, 32)
			if err != nil {
				return nil, err
			}
			return fs.FileMode(n), nil
		case reflect.Int:
			return fs.FileMode(data.(int)), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}
