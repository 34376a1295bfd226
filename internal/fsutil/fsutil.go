// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
)

// FileExists reports whether path names an existing regular file. Any
// error other than "not exist" is returned so callers can surface
// permission problems instead of silently skipping the file.
func FileExists(path string) (bool, error) {
	if path == "" {
		panic("path must not be empty")
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, &fs.PathError{Op: "stat", Path: path, Err: errors.New("is a directory")}
	}
	return true, nil
}
