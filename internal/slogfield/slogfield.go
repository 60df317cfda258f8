// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides the log attributes shared across textres.
package slogfield

import (
	"log/slog"
)

// Bool returns an slog.Attr for a bool.
func Bool(key string, value bool) slog.Attr {
	return slog.Bool(key, value)
}

// Error returns an slog.Attr for a error.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// Int returns an slog.Attr for a int.
func Int(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// String returns an slog.Attr for a string.
func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Path returns an slog.Attr for a text resource path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Kind returns an slog.Attr for a failure classification.
func Kind(kind interface{ String() string }) slog.Attr {
	return slog.String("kind", kind.String())
}
