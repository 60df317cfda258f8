// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"os"
	"strings"
)

// Env represents a Source where its underlying values
// are extracted from environment variables.
type Env struct {
	prefix  string
	environ func() []string
}

// FromEnv returns a Source which applies every environment variable
// starting with prefix. The prefix is stripped and the remainder
// lower cased, so with the prefix "TEXTRES_" the variable
// TEXTRES_CREATE_MODE sets the key create_mode.
func FromEnv(prefix string) Env {
	return Env{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	m := make(Map)
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		k, ok = strings.CutPrefix(k, src.prefix)
		if !ok || k == "" {
			continue
		}
		m[strings.ToLower(k)] = v
	}
	return m.Apply(store)
}
