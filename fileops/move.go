package fileops

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// MoveTo moves the entry into folder, keeping its name. The destination is
// validated before anything is touched: it must exist (the returned error
// matches fs.ErrNotExist otherwise) and it must be a directory. The move
// itself is a rename, atomic when source and destination share a volume.
//
// Unlike Delete and Rename, failures here are hard: they come back as
// errors, not as a diagnostic plus false.
func (f *File) MoveTo(folder *File) (bool, error) {
	info, err := f.fs.Stat(folder.Path())
	if err != nil {
		return false, fmt.Errorf("%s does not exist: %w", folder, fs.ErrNotExist)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("can't move %s: %s is not a directory", f, folder)
	}

	target := filepath.Join(folder.Path(), f.Name())
	if err := f.fs.Rename(f.path, target); err != nil {
		return false, fmt.Errorf("could not move %s to %s: %w", f, folder, err)
	}
	return true, nil
}

// MoveToPath is MoveTo with the destination given as a raw path. The path is
// resolved with the File's own filesystem and logger; the contract is
// otherwise identical.
func (f *File) MoveToPath(path string) (bool, error) {
	folder, err := NewPath(path, WithFS(f.fs), WithLogger(f.log))
	if err != nil {
		return false, err
	}
	return f.MoveTo(folder)
}
