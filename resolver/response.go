package resolver

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gitlab.com/gitlab-org/gitlab-pages-resolver/internal/vfs"
)

// Response is the outcome of a resolved request. Body is owned by the
// Response and released by Write or Close.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser

	// Path is the absolute location of the served file, empty when the
	// response was produced by a fallback func
	Path string
	// Size is the length of Body in bytes, or -1 when unknown
	Size    int64
	ModTime time.Time
}

// NewResponse returns a response with the given status and body. body may be nil.
func NewResponse(status int, body io.Reader) *Response {
	resp := &Response{
		StatusCode: status,
		Header:     make(http.Header),
		Size:       -1,
	}

	switch b := body.(type) {
	case nil:
	case io.ReadCloser:
		resp.Body = b
	default:
		resp.Body = io.NopCloser(b)
	}

	return resp
}

// NewStringResponse returns a response with the given status and text body
func NewStringResponse(status int, body string) *Response {
	resp := NewResponse(status, strings.NewReader(body))
	resp.Size = int64(len(body))

	return resp
}

func newFileResponse(path string, file vfs.File, size int64, modTime time.Time) *Response {
	resp := NewResponse(http.StatusOK, file)
	resp.Path = path
	resp.Size = size
	resp.ModTime = modTime

	// Content-Type is only inferred from the extension, net/http sniffs the rest
	if contentType := mime.TypeByExtension(filepath.Ext(path)); contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}

	return resp
}

// Close releases the body
func (resp *Response) Close() error {
	if resp.Body == nil {
		return nil
	}

	return resp.Body.Close()
}

// Write copies the response onto w and closes the body. The body is
// skipped for HEAD requests.
func (resp *Response) Write(w http.ResponseWriter, r *http.Request) error {
	defer resp.Close()

	for key, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}

	if resp.Size >= 0 && w.Header().Get("Content-Length") == "" {
		w.Header().Set("Content-Length", strconv.FormatInt(resp.Size, 10))
	}

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	w.WriteHeader(status)

	if r.Method == http.MethodHead || resp.Body == nil {
		return nil
	}

	if resp.Size >= 0 {
		_, err := io.CopyN(w, resp.Body, resp.Size)
		return err
	}

	_, err := io.Copy(w, resp.Body)
	return err
}
