package local

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var errNotDirectory = errors.New("path needs to be a directory")

// New returns a Root for path. Relative paths are resolved against the
// process working directory and symlinks are evaluated once.
func New(path string) (*Root, error) {
	rootPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	rootPath, err = filepath.EvalSymlinks(rootPath)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate symlinks: %w", err)
	}

	fi, err := os.Lstat(rootPath)
	if err != nil {
		return nil, err
	}

	if !fi.Mode().IsDir() {
		return nil, errNotDirectory
	}

	return &Root{path: rootPath}, nil
}
