package resolver

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"gitlab.com/gitlab-org/gitlab-pages-resolver/internal/logging"
	"gitlab.com/gitlab-org/gitlab-pages-resolver/internal/urlpath"
	"gitlab.com/gitlab-org/gitlab-pages-resolver/internal/vfs"
	"gitlab.com/gitlab-org/gitlab-pages-resolver/internal/vfs/local"
	"gitlab.com/gitlab-org/gitlab-pages-resolver/metrics"
)

const (
	outcomeFile         = "file"
	outcomeFallbackFile = "fallback_file"
	outcomeFallbackFunc = "fallback_func"
	outcomeAbsent       = "absent"
)

// Resolver maps requests onto files below a root directory. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	root     vfs.Root
	mapping  map[string]string
	fallback Fallback

	// fallbackName is the root-relative name probed for a FallbackPath
	fallbackName string
}

// New validates cfg and returns a Resolver serving files from cfg.Root
func New(cfg Config) (*Resolver, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	root, err := local.New(cfg.Root)
	if err != nil {
		return nil, err
	}

	return newWithRoot(vfs.Instrumented(root, "local"), cfg)
}

func newWithRoot(root vfs.Root, cfg Config) (*Resolver, error) {
	r := &Resolver{
		root:     root,
		mapping:  make(map[string]string, len(cfg.Mapping)),
		fallback: cfg.Fallback,
	}

	for pathname, target := range cfg.Mapping {
		r.mapping[pathname] = target
	}

	if cfg.Fallback.kind == FallbackPath {
		name, err := rootRelative(root.Path(), cfg.Fallback.path)
		if err != nil {
			return nil, err
		}

		r.fallbackName = name
	}

	return r, nil
}

// rootRelative resolves path against rootPath once and returns it as a
// name relative to the root
func rootRelative(rootPath, path string) (string, error) {
	fullPath := filepath.Join(rootPath, path)

	rel, err := filepath.Rel(rootPath, fullPath)
	if err != nil {
		return "", err
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errFallbackEscapes
	}

	return string(filepath.Separator) + rel, nil
}

// Root returns the absolute root directory
func (r *Resolver) Root() string {
	return r.root.Path()
}

// Resolve determines the response for req. A nil response with a nil error
// means that no file matched and no fallback produced a response, so the
// request should be handled elsewhere.
func (r *Resolver) Resolve(req *http.Request) (*Response, error) {
	resp, outcome, err := r.resolve(req)
	if err != nil {
		return nil, err
	}

	metrics.ResolverOutcomes.WithLabelValues(outcome).Inc()
	logging.LogRequest(req).WithField("outcome", outcome).Debug("request resolved")

	return resp, nil
}

func (r *Resolver) resolve(req *http.Request) (*Response, string, error) {
	pathname := req.URL.EscapedPath()
	if mapped, ok := r.mapping[pathname]; ok {
		pathname = mapped
	}

	if name, err := urlpath.Decode(pathname); err != nil {
		r.logDecodeFailure(req, err)
	} else {
		resp, err := r.tryFile(req.Context(), name)
		if err != nil || resp != nil {
			return resp, outcomeFile, err
		}
	}

	return r.tryFallback(req)
}

func (r *Resolver) tryFallback(req *http.Request) (*Response, string, error) {
	switch r.fallback.kind {
	case FallbackPath:
		resp, err := r.tryFile(req.Context(), r.fallbackName)
		if err != nil || resp != nil {
			return resp, outcomeFallbackFile, err
		}
	case FallbackFunc:
		resp, err := r.fallback.fn(req)
		return resp, outcomeFallbackFunc, err
	case FallbackNone:
	}

	return nil, outcomeAbsent, nil
}

// tryFile returns a response for a regular file found at name. Names that
// do not exist, are not regular files or resolve outside of the root yield
// a nil response.
func (r *Resolver) tryFile(ctx context.Context, name string) (*Response, error) {
	fi, err := r.root.Lstat(ctx, name)
	if err != nil {
		return nil, r.classify(err)
	}

	// The file exists, but is not a supported type to serve. Directories are
	// never listed.
	if !fi.Mode().IsRegular() {
		return nil, nil
	}

	file, err := r.root.Open(ctx, name)
	if err != nil {
		return nil, r.classify(err)
	}

	metrics.ServedFileSize.Observe(float64(fi.Size()))

	return newFileResponse(filepath.Join(r.root.Path(), name), file, fi.Size(), fi.ModTime()), nil
}

// classify turns errors that mean "no file here" into a nil error
func (r *Resolver) classify(err error) error {
	switch {
	case vfs.IsInvalidPath(err):
		metrics.ResolverContainmentFailures.Inc()
		return nil
	case vfs.IsNotExist(err):
		return nil
	}

	return err
}

func (r *Resolver) logDecodeFailure(req *http.Request, err error) {
	reason := "malformed"
	if errors.Is(err, urlpath.ErrTooManyRounds) {
		reason = "too_many_rounds"
	}

	metrics.ResolverDecodeFailures.WithLabelValues(reason).Inc()
	logging.LogRequest(req).WithError(err).Debug("could not decode request path")
}
