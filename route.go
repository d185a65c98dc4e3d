package sunbreeze

import (
	"net/http"
	"slices"
)

// defaultMethods is the method set for routes registered without an explicit
// one.
var defaultMethods = []string{http.MethodGet, http.MethodHead}

// route associates one compiled pattern with its method table. Owned
// exclusively by the Router; mutated only by registration, before the table
// freezes.
type route struct {
	pattern string
	segs    []segment
	name    string
	ops     map[string]HandlerFunc
}

// methods returns the route's allowed methods in sorted order.
func (r *route) methods() []string {
	out := make([]string, 0, len(r.ops))
	for m := range r.ops {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// routeConfig collects registration-time options.
type routeConfig struct {
	name    string
	methods []string
}

// RouteOption configures a route at registration time.
type RouteOption func(*routeConfig)

// WithRouteName names the route for reverse lookup via PathFor.
func WithRouteName(name string) RouteOption {
	return func(rc *routeConfig) {
		rc.name = name
	}
}

// WithMethods sets the HTTP methods a function route responds to. The
// default is GET and HEAD.
func WithMethods(methods ...string) RouteOption {
	return func(rc *routeConfig) {
		rc.methods = methods
	}
}

// RouteInfo is a read-only summary of one registration, in table order.
type RouteInfo struct {
	Pattern string
	Name    string
	Methods []string
}
