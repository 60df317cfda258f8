// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package textres

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/z5labs/textres/internal/noop"
	"github.com/z5labs/textres/internal/otelslog"
	"github.com/z5labs/textres/internal/slogfield"
	"github.com/z5labs/textres/internal/try"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultCreateMode is the permission new resources are created with.
const DefaultCreateMode fs.FileMode = 0o644

type options struct {
	logHandler slog.Handler
	createMode fs.FileMode
	tracer     trace.TracerProvider
}

// Option configures an Accessor.
type Option func(*options)

// LogHandler sets the slog.Handler the Accessor logs to.
// Records are correlated with the active span.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		o.logHandler = h
	}
}

// CreateMode sets the permission missing resources are created with.
func CreateMode(perm fs.FileMode) Option {
	return func(o *options) {
		o.createMode = perm
	}
}

// TracerProvider overrides the globally registered trace.TracerProvider.
func TracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracer = tp
	}
}

// Accessor resolves paths to the full text of the resources they name.
//
// An Accessor holds no mutable state, so it may be shared between
// goroutines as long as its Storage may be.
type Accessor struct {
	storage    Storage
	log        *slog.Logger
	createMode fs.FileMode
	tracer     trace.Tracer
}

// New returns an Accessor which reads resources from storage.
func New(storage Storage, opts ...Option) *Accessor {
	o := &options{
		logHandler: noop.LogHandler{},
		createMode: DefaultCreateMode,
	}
	for _, opt := range opts {
		opt(o)
	}
	tp := o.tracer
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Accessor{
		storage:    storage,
		log:        otelslog.New(o.logHandler),
		createMode: o.createMode,
		tracer:     tp.Tracer("textres"),
	}
}

// OpenOrCreate opens the resource at path for reading. If it does not
// exist and createIfMissing is set, an empty resource is created in its
// place. The returned Handle must be closed by the caller.
func (a *Accessor) OpenOrCreate(ctx context.Context, path string, createIfMissing bool) (_ *Handle, err error) {
	spanCtx, span := a.tracer.Start(ctx, "Accessor.OpenOrCreate", trace.WithAttributes(
		attribute.String("textres.path", path),
		attribute.Bool("textres.create_if_missing", createIfMissing),
	))
	defer span.End()
	defer a.report(spanCtx, span, path, &err)
	defer try.Recover(&err, func(perr error) error {
		return other("open", path, perr)
	})

	h, err := a.open(path)
	if err == nil {
		return h, nil
	}
	if !createIfMissing || KindOf(err) != NotFound {
		return nil, err
	}

	h, err = a.create(path)
	if err != nil {
		return nil, err
	}
	a.log.DebugContext(spanCtx, "resolved missing text resource", slogfield.Path(path), slogfield.Bool("created", h.created))
	return h, nil
}

// ReadAllText returns the complete contents of the resource at path.
// A missing resource is never created.
func (a *Accessor) ReadAllText(ctx context.Context, path string) (_ string, err error) {
	spanCtx, span := a.tracer.Start(ctx, "Accessor.ReadAllText", trace.WithAttributes(
		attribute.String("textres.path", path),
	))
	defer span.End()
	defer a.report(spanCtx, span, path, &err)
	defer try.Recover(&err, func(perr error) error {
		return other("open", path, perr)
	})

	h, err := a.open(path)
	if err != nil {
		return "", err
	}

	s, err := h.ReadAll()
	if err != nil {
		return "", err
	}

	span.SetAttributes(attribute.Int("textres.bytes", len(s)))
	a.log.DebugContext(spanCtx, "read text resource", slogfield.Path(path), slogfield.Int("bytes", len(s)))
	return s, nil
}

func (a *Accessor) open(path string) (*Handle, error) {
	if path == "" {
		return nil, other("open", path, ErrEmptyPath)
	}

	rc, err := a.storage.Open(path)
	if err != nil {
		return nil, classify("open", path, err)
	}
	return &Handle{path: path, rc: rc}, nil
}

func (a *Accessor) create(path string) (*Handle, error) {
	rc, err := a.storage.Create(path, a.createMode)
	if err == nil {
		return &Handle{path: path, created: true, rc: rc}, nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return nil, other("create", path, err)
	}

	// Someone else created it between our open and create.
	rc, err = a.storage.Open(path)
	if err != nil {
		return nil, classify("open", path, err)
	}
	return &Handle{path: path, rc: rc}, nil
}

func (a *Accessor) report(ctx context.Context, span trace.Span, path string, err *error) {
	if *err == nil {
		return
	}
	span.RecordError(*err)
	span.SetStatus(codes.Error, (*err).Error())
	a.log.WarnContext(
		ctx,
		"failed to access text resource",
		slogfield.Path(path),
		slogfield.Kind(KindOf(*err)),
		slogfield.Error(*err),
	)
}

// ReadAllText reads the complete contents of the resource at path
// from storage using an Accessor with default options.
func ReadAllText(ctx context.Context, storage Storage, path string) (string, error) {
	return New(storage).ReadAllText(ctx, path)
}
