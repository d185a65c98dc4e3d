package sunbreeze

import (
	"context"
	"net/http"
)

// Request is the framework's view of one incoming HTTP request. It carries
// the method and path used for dispatch plus the underlying *http.Request
// when one exists. Requests built directly (outside an HTTP server, e.g. in
// tests) may have no underlying request.
type Request struct {
	Method string
	Path   string

	raw *http.Request
}

// NewRequest builds a transport-independent request for direct dispatch.
func NewRequest(method, path string) *Request {
	return &Request{Method: method, Path: path}
}

// newHTTPRequest adapts an *http.Request for dispatch.
func newHTTPRequest(r *http.Request) *Request {
	return &Request{Method: r.Method, Path: r.URL.Path, raw: r}
}

// Context returns the request context, or context.Background for requests
// built outside an HTTP server.
func (r *Request) Context() context.Context {
	if r.raw != nil {
		return r.raw.Context()
	}
	return context.Background()
}

// Raw returns the underlying *http.Request, or nil for requests built
// outside an HTTP server.
func (r *Request) Raw() *http.Request { return r.raw }

// Query returns the first query parameter for key, or "".
func (r *Request) Query(key string) string {
	if r.raw == nil {
		return ""
	}
	return r.raw.URL.Query().Get(key)
}

// Header returns the first request header for key, or "".
func (r *Request) Header(key string) string {
	if r.raw == nil {
		return ""
	}
	return r.raw.Header.Get(key)
}
