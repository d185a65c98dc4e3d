package sunbreeze

import "net/http"

// HandlerFunc is the core handler shape: it receives the request, the
// mutable response, and the path parameters bound by the route pattern.
// A returned error trips the error boundary.
type HandlerFunc func(req *Request, resp *Response, params Params) error

// Resource handlers expose one operation per HTTP method. A value registered
// with Handle is probed once, at registration time, against these interfaces
// and the matching operations become the route's method table. HEAD falls
// back to Get when the value implements Getter only; net/http discards the
// body for HEAD responses.

// Getter serves GET (and, absent a dedicated HEAD operation, HEAD).
type Getter interface {
	Get(req *Request, resp *Response, params Params) error
}

// Poster serves POST.
type Poster interface {
	Post(req *Request, resp *Response, params Params) error
}

// Putter serves PUT.
type Putter interface {
	Put(req *Request, resp *Response, params Params) error
}

// Patcher serves PATCH.
type Patcher interface {
	Patch(req *Request, resp *Response, params Params) error
}

// Deleter serves DELETE.
type Deleter interface {
	Delete(req *Request, resp *Response, params Params) error
}

// resourceOps builds the explicit method table for a resource value. The
// table is fixed for the route's lifetime; dispatch never inspects the value
// again.
func resourceOps(res any) map[string]HandlerFunc {
	ops := make(map[string]HandlerFunc)
	if g, ok := res.(Getter); ok {
		ops[http.MethodGet] = g.Get
		ops[http.MethodHead] = g.Get
	}
	if p, ok := res.(Poster); ok {
		ops[http.MethodPost] = p.Post
	}
	if p, ok := res.(Putter); ok {
		ops[http.MethodPut] = p.Put
	}
	if p, ok := res.(Patcher); ok {
		ops[http.MethodPatch] = p.Patch
	}
	if d, ok := res.(Deleter); ok {
		ops[http.MethodDelete] = d.Delete
	}
	return ops
}
