package vfs

import (
	"io"
	"os"
)

// File represents an open file, which will typically be the response body of a resolved request.
type File interface {
	io.Reader
	io.Closer
	Stat() (os.FileInfo, error)
}
