package resolver

import "net/http"

// FallbackKind tags the active Fallback variant
type FallbackKind int

const (
	// FallbackNone resolves every miss to absence
	FallbackNone FallbackKind = iota
	// FallbackPath serves a file under the root on a miss, if it exists
	FallbackPath
	// FallbackFunc hands every miss to a callback
	FallbackFunc
)

func (k FallbackKind) String() string {
	switch k {
	case FallbackNone:
		return "none"
	case FallbackPath:
		return "path"
	case FallbackFunc:
		return "func"
	}

	return "unknown"
}

// Func produces the response for a request that could not be resolved to a
// file. The returned response is used as is, a returned error is passed on
// to the caller of Resolve.
type Func func(r *http.Request) (*Response, error)

// Fallback describes what to do when a request does not resolve to a file.
// The zero value is NoFallback.
type Fallback struct {
	kind FallbackKind
	path string
	fn   Func
}

// NoFallback configures misses to resolve to absence
func NoFallback() Fallback {
	return Fallback{kind: FallbackNone}
}

// WithFallbackPath configures misses to serve the file at path, relative to the root
func WithFallbackPath(path string) Fallback {
	return Fallback{kind: FallbackPath, path: path}
}

// WithFallbackFunc configures misses to be answered by fn
func WithFallbackFunc(fn Func) Fallback {
	return Fallback{kind: FallbackFunc, fn: fn}
}

// Kind returns the active variant
func (f Fallback) Kind() FallbackKind {
	return f.kind
}

// Path returns the configured relative path of a FallbackPath variant
func (f Fallback) Path() string {
	return f.path
}
