// Package fileops reads and writes whole PNG files.
package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/meigma/pngchunk/internal/sizing"
)

// DefaultMaxFileSize bounds ReadFile when callers do not choose a limit.
const DefaultMaxFileSize = 64 << 20 // 64MB

// ErrFileTooLarge is returned when a file exceeds the read limit.
var ErrFileTooLarge = errors.New("pngchunk: file too large")

// ReadFile reads the whole file at path.
// Files larger than maxSize fail with ErrFileTooLarge; 0 disables the limit.
func ReadFile(path string, maxSize uint64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if maxSize > 0 {
		if info, err := f.Stat(); err == nil && info.Mode().IsRegular() && uint64(info.Size()) > maxSize { //nolint:gosec // size of a regular file is non-negative
			return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrFileTooLarge, path, info.Size(), maxSize)
		}
	}
	data, err := sizing.ReadAllWithLimit(f, maxSize, ErrFileTooLarge)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// WriteFileAtomic writes data to a temp file then renames it to target,
// ensuring atomic replacement of the target file.
//
// An existing target keeps its permission bits; a new one gets perm.
func WriteFileAtomic(target string, data []byte, perm fs.FileMode) error {
	if info, err := os.Stat(target); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".pngchunk-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
