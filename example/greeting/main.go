// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command greeting prints the contents of a greeting file, creating it
// empty first if it is missing. Unlike the textres package itself, it
// treats every failure as fatal.
//
// Settings are read from greeting.yaml in the working directory, if
// present, then from GREETING_* and TEXTRES_* environment variables.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/z5labs/textres"
	"github.com/z5labs/textres/config"
	"github.com/z5labs/textres/lines"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type settings struct {
	textres.Config `config:",squash"`

	Path     string     `config:"path"`
	LogLevel slog.Level `config:"log_level"`
}

func readSettings(ctx context.Context) (settings, error) {
	srcs := []config.Source{
		config.Map{
			"path":      "hello.txt",
			"log_level": "info",
		},
	}

	s, err := textres.ReadAllText(ctx, textres.Dir("."), "greeting.yaml")
	switch textres.KindOf(err) {
	case 0:
		srcs = append(srcs, config.FromYaml(strings.NewReader(s)))
	case textres.NotFound:
	default:
		return settings{}, fmt.Errorf("problem reading greeting.yaml: %w", err)
	}
	srcs = append(srcs, config.FromEnv("GREETING_"), config.FromEnv(textres.EnvPrefix))

	m, err := config.Read(srcs...)
	if err != nil {
		return settings{}, err
	}

	var cfg settings
	err = m.Unmarshal(&cfg)
	if err != nil {
		return settings{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, stdout, stderr io.Writer) error {
	cfg, err := readSettings(ctx)
	if err != nil {
		return err
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(stderr))
	if err != nil {
		return err
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	defer tp.Shutdown(ctx)

	acc := textres.FromConfig(
		cfg.Config,
		textres.LogHandler(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel})),
		textres.TracerProvider(tp),
	)

	h, err := acc.OpenOrCreate(ctx, cfg.Path, true)
	if err != nil {
		return fmt.Errorf("problem opening the file: %w", err)
	}
	err = h.Close()
	if err != nil {
		return err
	}

	greeting, err := acc.ReadAllText(ctx, cfg.Path)
	if err != nil {
		return fmt.Errorf("%s should be readable: %w", cfg.Path, err)
	}

	fmt.Fprint(stdout, greeting)
	if r, ok := lines.LastRuneOfFirstLine(greeting); ok {
		fmt.Fprintf(stdout, "\nlast character of the first line: %q\n", r)
	}
	return nil
}

func main() {
	err := run(context.Background(), os.Stdout, os.Stderr)
	if err != nil {
		panic(err)
	}
}
