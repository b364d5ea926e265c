package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"gitlab.com/gitlab-org/gitlab-pages-resolver/internal/vfs"
)

// Root is a directory on the local filesystem
type Root struct {
	path string
}

// Path returns the absolute path of the root directory
func (r *Root) Path() string {
	return r.path
}

func (r *Root) contains(fullPath string) error {
	if fullPath == r.path {
		return nil
	}

	prefix := r.path
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	// The requested path resolved to somewhere outside of the `r.path` directory
	if !strings.HasPrefix(fullPath, prefix) {
		return &vfs.InvalidPathError{Root: r.path, FullPath: fullPath}
	}

	return nil
}

// FullPath joins name onto the root, collapsing `.` and `..` segments, and
// follows symlinks. Both the joined and the evaluated path must stay inside
// the root.
func (r *Root) FullPath(name string) (string, error) {
	fullPath := filepath.Join(r.path, name)
	if err := r.contains(fullPath); err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(fullPath)
	if err != nil {
		return "", err
	}

	if err := r.contains(resolved); err != nil {
		return "", err
	}

	return resolved, nil
}

// Lstat describes the file found at name after symlinks inside the root
// have been evaluated
func (r *Root) Lstat(ctx context.Context, name string) (os.FileInfo, error) {
	fullPath, err := r.FullPath(name)
	if err != nil {
		return nil, err
	}

	return os.Lstat(fullPath)
}

// Open opens name for reading
func (r *Root) Open(ctx context.Context, name string) (vfs.File, error) {
	fullPath, err := r.FullPath(name)
	if err != nil {
		return nil, err
	}

	file, err := os.OpenFile(fullPath, os.O_RDONLY|unix.O_NOFOLLOW, 0)
	if err != nil {
		return nil, err
	}

	return file, nil
}
