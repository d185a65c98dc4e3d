package sunbreeze

import (
	"errors"
	"fmt"
)

// ErrFrozen is returned when a route is registered after the application has
// started serving. Registration must complete before the first request.
var ErrFrozen = errors.New("route table is frozen")

// DuplicateRouteError is returned when a pattern and method combination is
// registered twice. The first registration stays active.
type DuplicateRouteError struct {
	Pattern string
	Method  string
}

// Error returns the conflict description.
func (e *DuplicateRouteError) Error() string {
	return fmt.Sprintf("route %s %s is already registered", e.Method, e.Pattern)
}

// PatternError is returned when a route pattern fails to compile.
type PatternError struct {
	Pattern string
	Reason  string
}

// Error returns the compilation failure description.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid route pattern %q: %s", e.Pattern, e.Reason)
}

// UnknownRouteError is returned by PathFor when no registered route carries
// the requested name.
type UnknownRouteError struct {
	Name string
}

// Error returns the lookup failure description.
func (e *UnknownRouteError) Error() string {
	return fmt.Sprintf("no route named %q", e.Name)
}
