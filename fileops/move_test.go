package fileops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/steelcutops/fileops/fileops/fsys"
	"github.com/steelcutops/fileops/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFile(t *testing.T, path string) *File {
	t.Helper()
	f, err := NewPath(path, WithLogger(logger.NewDiscard()))
	require.NoError(t, err)
	return f
}

func TestMoveToMissingDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	mustWriteFile(t, src)

	missing := filepath.Join(dir, "nodir")
	ok, err := newTestFile(t, src).MoveTo(newTestFile(t, missing))

	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), missing)

	// source untouched
	_, err = os.Stat(src)
	assert.NoError(t, err)
}

func TestMoveToDestinationIsFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dest := filepath.Join(dir, "not-a-dir.txt")
	mustWriteFile(t, src)
	mustWriteFile(t, dest)

	ok, err := newTestFile(t, src).MoveTo(newTestFile(t, dest))

	assert.False(t, ok)
	require.Error(t, err)
	assert.False(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), src)

	_, err = os.Stat(src)
	assert.NoError(t, err)
}

func TestMoveToDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dest := filepath.Join(dir, "sub")
	mustWriteFile(t, src)
	require.NoError(t, os.Mkdir(dest, 0755))

	ok, err := newTestFile(t, src).MoveTo(newTestFile(t, dest))

	assert.True(t, ok)
	require.NoError(t, err)

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dest, "a.txt"))
	assert.NoError(t, err)
}

func TestMoveToPath(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dest := filepath.Join(dir, "sub")
	mustWriteFile(t, src)
	require.NoError(t, os.Mkdir(dest, 0755))

	ok, err := newTestFile(t, src).MoveToPath(dest)

	assert.True(t, ok)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dest, "a.txt"))
	assert.NoError(t, err)
}

func TestMoveToPropagatesRenameFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dest := filepath.Join(dir, "sub")
	mustWriteFile(t, src)
	require.NoError(t, os.Mkdir(dest, 0755))

	f, err := NewPath(src,
		WithFS(&failingFS{FS: fsys.NewOSFS(), renameErr: errForced}),
		WithLogger(logger.NewDiscard()))
	require.NoError(t, err)

	ok, err := f.MoveTo(newTestFile(t, dest))
	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errForced))
}
