package fsys

import "os"

// FS represents the filesystem primitives that file operations are built on.
// Keeping the surface this narrow makes the operations testable without
// touching a real filesystem.
type FS interface {
	Stat(path string) (os.FileInfo, error)
	Remove(path string) error
	Rename(oldPath, newPath string) error
}
