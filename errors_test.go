package sunbreeze_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunbreeze/sunbreeze"
)

func TestDuplicateRouteError(t *testing.T) {
	t.Parallel()

	err := &sunbreeze.DuplicateRouteError{Pattern: "/home", Method: http.MethodGet}
	assert.EqualError(t, err, "route GET /home is already registered")
}

func TestPatternError(t *testing.T) {
	t.Parallel()

	err := &sunbreeze.PatternError{Pattern: "/pair/{x}/{x}", Reason: "duplicate placeholder {x}"}
	assert.EqualError(t, err, `invalid route pattern "/pair/{x}/{x}": duplicate placeholder {x}`)
}

func TestUnknownRouteError(t *testing.T) {
	t.Parallel()

	err := &sunbreeze.UnknownRouteError{Name: "greeting"}
	assert.EqualError(t, err, `no route named "greeting"`)
}
