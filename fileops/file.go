// Package fileops provides a path value type with convenience operations
// layered on the platform's delete, move and rename primitives.
package fileops

import (
	"fmt"
	"path/filepath"

	"github.com/steelcutops/fileops/fileops/fsys"
	"github.com/steelcutops/fileops/logger"
)

// File represents an absolute filesystem path. The path is normalized once
// at construction and never changes afterwards; operations like Delete have
// external side effects only. A File does not hold any handle or resource,
// it is a pure descriptor.
type File struct {
	path string
	fs   fsys.FS
	log  logger.Logger
}

type Option func(*File)

// WithFS sets the filesystem implementation used by the File's operations.
func WithFS(fs fsys.FS) Option {
	return func(f *File) {
		f.fs = fs
	}
}

// WithLogger sets the Logger that receives soft-failure diagnostics.
func WithLogger(log logger.Logger) Option {
	return func(f *File) {
		f.log = log
	}
}

// New returns a File representing the current working directory.
func New(options ...Option) (*File, error) {
	return NewPath("", options...)
}

// NewPath returns a File for the given path, resolved to its absolute form.
func NewPath(path string, options ...Option) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve %q: %w", path, err)
	}

	f := &File{
		path: abs,
		fs:   fsys.NewOSFS(),
		log:  logger.New(),
	}
	for _, option := range options {
		option(f)
	}
	return f, nil
}

// NewChild returns a File for the entry named child under parent. Parent and
// child are joined with a literal "/" independent of the native separator;
// on platforms with a different separator callers should join paths
// themselves and use NewPath.
func NewChild(parent, child string, options ...Option) (*File, error) {
	return NewPath(fmt.Sprintf("%s/%s", parent, child), options...)
}

// From returns a File holding the same absolute path as origin.
func From(origin *File, options ...Option) (*File, error) {
	return NewPath(origin.path, options...)
}

// Path returns the stored absolute path.
func (f *File) Path() string {
	return f.path
}

func (f *File) String() string {
	return f.path
}

// Name returns the last element of the path.
func (f *File) Name() string {
	return filepath.Base(f.path)
}

// Parent returns the path of the parent directory.
func (f *File) Parent() string {
	return filepath.Dir(f.path)
}

func (f *File) entryExists(path string) bool {
	_, err := f.fs.Stat(path)
	return err == nil
}
