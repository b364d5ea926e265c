package resolver

import (
	"net/http"

	"gitlab.com/gitlab-org/gitlab-pages-resolver/internal/httperrors"
	"gitlab.com/gitlab-org/gitlab-pages-resolver/internal/logging"
)

// Middleware serves resolved requests and passes the rest to next. With a
// nil next, unresolved requests get a generic 404 page.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		resp, err := r.Resolve(req)
		if err != nil {
			httperrors.Serve500WithRequest(w, req, "could not resolve request", err)
			return
		}

		if resp == nil {
			if next == nil {
				httperrors.Serve404(w)
				return
			}

			next.ServeHTTP(w, req)
			return
		}

		if err := resp.Write(w, req); err != nil {
			logging.LogRequest(req).WithError(err).Error("could not write response")
		}
	})
}

// ServeHTTP implements http.Handler
func (r *Resolver) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.Middleware(nil).ServeHTTP(w, req)
}
