package sunbreeze

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Router is the route table: an ordered collection of (pattern, handler,
// methods) registrations. Lookup walks the table in registration order and
// returns the first pattern that matches, so ordering is part of the
// contract. Registration happens during application setup; the table freezes
// when serving starts and is read-only from then on, which makes concurrent
// lookups safe without locking.
type Router struct {
	routes []*route
	frozen atomic.Bool
}

// NewRouter returns an empty route table.
func NewRouter() *Router {
	return &Router{}
}

// HandleFunc registers a function handler for the pattern. The handler
// serves every method in the route's method set (default GET and HEAD).
// Registering a pattern and method combination twice fails with a
// *DuplicateRouteError and leaves the first registration active; the same
// pattern with a disjoint method set extends the existing route.
func (r *Router) HandleFunc(pattern string, h HandlerFunc, opts ...RouteOption) error {
	if h == nil {
		return fmt.Errorf("register %s: nil handler", pattern)
	}

	rc := routeConfig{methods: defaultMethods}
	for _, opt := range opts {
		opt(&rc)
	}

	ops := make(map[string]HandlerFunc, len(rc.methods))
	for _, m := range rc.methods {
		ops[strings.ToUpper(m)] = h
	}

	return r.add(pattern, rc.name, ops)
}

// Handle registers a resource handler for the pattern. The resource's method
// table is built once here from the operations the value implements (see
// Getter, Poster, Putter, Patcher, Deleter). The value itself declares its
// methods, so passing WithMethods is a registration error.
func (r *Router) Handle(pattern string, res any, opts ...RouteOption) error {
	ops := resourceOps(res)
	if len(ops) == 0 {
		return fmt.Errorf("register %s: resource %T implements no operations", pattern, res)
	}

	var rc routeConfig
	for _, opt := range opts {
		opt(&rc)
	}
	if rc.methods != nil {
		return fmt.Errorf("register %s: WithMethods does not apply to resources", pattern)
	}

	return r.add(pattern, rc.name, ops)
}

func (r *Router) add(pattern, name string, ops map[string]HandlerFunc) error {
	if r.frozen.Load() {
		return fmt.Errorf("register %s: %w", pattern, ErrFrozen)
	}

	segs, err := compilePattern(pattern)
	if err != nil {
		return err
	}

	// An identical pattern with a disjoint method set extends the existing
	// route's method table, keeping its position in the table so the
	// first-match contract still reaches every registered method.
	for _, existing := range r.routes {
		if existing.pattern != pattern {
			continue
		}
		for method := range ops {
			if _, ok := existing.ops[method]; ok {
				return &DuplicateRouteError{Pattern: pattern, Method: method}
			}
		}
		for method, op := range ops {
			existing.ops[method] = op
		}
		if existing.name == "" {
			existing.name = name
		}
		return nil
	}

	r.routes = append(r.routes, &route{
		pattern: pattern,
		segs:    segs,
		name:    name,
		ops:     ops,
	})
	return nil
}

// lookup resolves a request path to the first matching route in registration
// order, together with its bound parameters.
func (r *Router) lookup(path string) (*route, Params, bool) {
	for _, rt := range r.routes {
		if params, ok := matchPath(rt.segs, path); ok {
			return rt, params, true
		}
	}
	return nil, nil, false
}

// freeze marks the table read-only. Called when serving starts; further
// registration fails with ErrFrozen.
func (r *Router) freeze() {
	r.frozen.Store(true)
}

// Routes returns a summary of every registration in table order.
func (r *Router) Routes() []RouteInfo {
	out := make([]RouteInfo, 0, len(r.routes))
	for _, rt := range r.routes {
		out = append(out, RouteInfo{
			Pattern: rt.pattern,
			Name:    rt.name,
			Methods: rt.methods(),
		})
	}
	return out
}

// PathFor builds a concrete path for a named route, substituting params into
// the route's placeholders. It fails with *UnknownRouteError when no route
// carries the name, and with an error when a placeholder has no value.
func (r *Router) PathFor(name string, params Params) (string, error) {
	for _, rt := range r.routes {
		if rt.name != name || name == "" {
			continue
		}

		var b strings.Builder
		for _, seg := range rt.segs {
			b.WriteByte('/')
			if seg.param == "" {
				b.WriteString(seg.literal)
				continue
			}
			val, ok := params[seg.param]
			if !ok || val == "" {
				return "", fmt.Errorf("route %q: missing value for placeholder {%s}", name, seg.param)
			}
			b.WriteString(val)
		}
		return b.String(), nil
	}
	return "", &UnknownRouteError{Name: name}
}
