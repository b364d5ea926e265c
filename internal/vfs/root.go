package vfs

import (
	"context"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"gitlab.com/gitlab-org/gitlab-pages-resolver/metrics"
)

// Root abstracts the things the resolver needs to probe and read files
// located under a given root path.
type Root interface {
	Path() string
	Lstat(ctx context.Context, name string) (os.FileInfo, error)
	Open(ctx context.Context, name string) (File, error)
}

// Instrumented wraps root so that every operation is counted and traced
func Instrumented(root Root, name string) Root {
	return &instrumentedRoot{root: root, name: name}
}

type instrumentedRoot struct {
	root Root
	name string
}

func (i *instrumentedRoot) increment(operation string, err error) {
	metrics.VFSOperations.WithLabelValues(i.name, operation, strconv.FormatBool(err == nil)).Inc()
}

func (i *instrumentedRoot) Path() string {
	return i.root.Path()
}

func (i *instrumentedRoot) Lstat(ctx context.Context, name string) (os.FileInfo, error) {
	fi, err := i.root.Lstat(ctx, name)
	i.increment("Lstat", err)

	log.WithField("vfs", i.name).
		WithField("path", i.root.Path()).
		WithField("name", name).
		WithError(err).
		Traceln("Lstat call")

	return fi, err
}

func (i *instrumentedRoot) Open(ctx context.Context, name string) (File, error) {
	f, err := i.root.Open(ctx, name)
	i.increment("Open", err)

	log.WithField("vfs", i.name).
		WithField("path", i.root.Path()).
		WithField("name", name).
		WithError(err).
		Traceln("Open call")

	return f, err
}
