// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package noop provides implementations which do nothing.
package noop

import (
	"context"
	"log/slog"
)

// LogHandler discards every record. It is the default handler
// for components which were not given one.
type LogHandler struct{}

func (LogHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (LogHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (h LogHandler) WithAttrs(_ []slog.Attr) slog.Handler        { return h }
func (h LogHandler) WithGroup(_ string) slog.Handler             { return h }
