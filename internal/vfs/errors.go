package vfs

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// InvalidPathError is returned when a name resolves to a location outside of the root
type InvalidPathError struct {
	Root     string
	FullPath string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%q should be in %q", e.FullPath, e.Root)
}

func (e *InvalidPathError) Is(target error) bool {
	// nolint: errorlint // implementing type equality for errors.Is
	_, ok := target.(*InvalidPathError)
	return ok
}

// IsInvalidPath reports whether err was caused by a name escaping the root
func IsInvalidPath(err error) bool {
	return errors.Is(err, &InvalidPathError{})
}

// IsNotExist reports whether err means that nothing can be found at the
// requested name, including when a path component is not a directory
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
