// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package textres

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Storage is the host environment primitive an Accessor reads
// text resources from.
//
// Open must report a missing resource with an error matching fs.ErrNotExist
// and Create must report an already existing resource with an error
// matching fs.ErrExist.
type Storage interface {
	// Open opens an existing resource for reading.
	Open(path string) (io.ReadCloser, error)

	// Create exclusively creates a new empty resource, opened for reading.
	Create(path string, perm fs.FileMode) (io.ReadCloser, error)
}

// ErrNotLocal is the cause reported for a path which is absolute
// or leaves the root of a Dir.
var ErrNotLocal = errors.New("path is not local to the storage root")

// FsStorage is a Storage backed by an afero.Fs.
type FsStorage struct {
	fs        afero.Fs
	localOnly bool
}

// FromFs returns a Storage which serves resources from the given afero.Fs.
func FromFs(fs afero.Fs) FsStorage {
	return FsStorage{fs: fs}
}

// Dir returns a Storage which serves resources from files under
// the root directory. A relative root is resolved against the working
// directory when Dir is called. Paths must be local to root, as
// reported by filepath.IsLocal.
func Dir(root string) FsStorage {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return FsStorage{
		fs:        afero.NewBasePathFs(afero.NewOsFs(), root),
		localOnly: true,
	}
}

// Mem returns a Storage which keeps resources in memory.
func Mem() FsStorage {
	return FromFs(afero.NewMemMapFs())
}

// Fs returns the underlying afero.Fs.
func (s FsStorage) Fs() afero.Fs {
	return s.fs
}

// Open implements the Storage interface.
func (s FsStorage) Open(path string) (io.ReadCloser, error) {
	if err := s.checkLocal("open", path); err != nil {
		return nil, err
	}
	return s.fs.Open(path)
}

// Create implements the Storage interface.
func (s FsStorage) Create(path string, perm fs.FileMode) (io.ReadCloser, error) {
	if err := s.checkLocal("create", path); err != nil {
		return nil, err
	}
	return s.fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
}

func (s FsStorage) checkLocal(op, path string) error {
	if !s.localOnly || filepath.IsLocal(path) {
		return nil
	}
	return &fs.PathError{Op: op, Path: path, Err: ErrNotLocal}
}
