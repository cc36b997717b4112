package fsys

import "os"

// OSFS implements FS with direct calls into the os package.
type OSFS struct{}

func NewOSFS() *OSFS {
	return &OSFS{}
}

func (*OSFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (*OSFS) Remove(path string) error {
	return os.Remove(path)
}

// Rename delegates to os.Rename, which is atomic when oldPath and newPath
// live on the same filesystem volume. Cross-volume behavior is
// platform-dependent and not papered over here.
func (*OSFS) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}
