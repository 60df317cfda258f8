// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package textres

import (
	"errors"
	"io"

	"github.com/z5labs/textres/internal/try"
)

// Handle is an open text resource. Nothing has been read from it
// when it is returned by OpenOrCreate.
type Handle struct {
	path    string
	created bool
	rc      io.ReadCloser
}

// Path returns the path the Handle was opened with.
func (h *Handle) Path() string {
	return h.path
}

// Created reports whether the resource was created by OpenOrCreate.
func (h *Handle) Created() bool {
	return h.created
}

// Read implements the io.Reader interface. Failures other than
// io.EOF are reported as an Other AccessError.
func (h *Handle) Read(b []byte) (int, error) {
	n, err := h.rc.Read(b)
	if err == nil || errors.Is(err, io.EOF) {
		return n, err
	}
	return n, other("read", h.path, err)
}

// Close implements the io.Closer interface.
func (h *Handle) Close() error {
	err := h.rc.Close()
	if err != nil {
		return other("close", h.path, err)
	}
	return nil
}

// ReadAll reads the remaining contents of the resource and closes it.
// The Handle is closed on every return path.
func (h *Handle) ReadAll() (_ string, err error) {
	defer try.Close(&err, h.rc, h.classifier("close"))
	defer try.Recover(&err, h.classifier("read"))

	b, err := io.ReadAll(h.rc)
	if err != nil {
		return "", other("read", h.path, err)
	}
	return string(b), nil
}

func (h *Handle) classifier(op string) try.Classifier {
	return func(err error) error {
		return other(op, h.path, err)
	}
}
