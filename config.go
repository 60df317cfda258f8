// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package textres

import (
	"io/fs"
)

// EnvPrefix is the prefix of environment variables which set Config
// fields through config.FromEnv, e.g. TEXTRES_ROOT and TEXTRES_CREATE_MODE.
const EnvPrefix = "TEXTRES_"

// Config describes an Accessor over a directory. It is meant to be
// decoded by the config package.
type Config struct {
	// Root is the directory resources are resolved against.
	// It defaults to the working directory at the time FromConfig is called.
	Root string `config:"root"`

	// CreateMode defaults to DefaultCreateMode.
	CreateMode fs.FileMode `config:"create_mode"`
}

// FromConfig returns an Accessor over Dir(cfg.Root).
// Options given explicitly take precedence over cfg.
func FromConfig(cfg Config, opts ...Option) *Accessor {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	if cfg.CreateMode != 0 {
		opts = append([]Option{CreateMode(cfg.CreateMode)}, opts...)
	}
	return New(Dir(root), opts...)
}
