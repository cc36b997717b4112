package fileops

import (
	"path/filepath"
	"strings"
)

// Rename gives the entry a new name under its current parent directory.
// A blank name is rejected up front with no side effect. If an entry already
// exists under the new name the rename is refused, a diagnostic goes to the
// logger and false is returned.
//
// The existence check and the rename are two separate calls; a concurrent
// writer can slip between them. The platform rename is also not guaranteed
// atomic or cross-volume capable, so the result must always be checked.
func (f *File) Rename(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}

	candidate := filepath.Join(f.Parent(), name)
	if f.entryExists(candidate) {
		f.log.Error(candidate + " already exist.")
		return false
	}
	return f.fs.Rename(f.path, candidate) == nil
}
