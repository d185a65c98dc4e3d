// Package sunbreeze is a minimal web-application micro-framework built
// around three pieces: a path pattern matcher, an ordered route table, and a
// dispatcher with an error boundary.
//
// Route patterns are literal path segments mixed with {name} placeholders,
// each placeholder binding exactly one non-empty segment:
//
//	app := sunbreeze.New()
//	app.HandleFunc("/hello/{name}", func(req *sunbreeze.Request, resp *sunbreeze.Response, params sunbreeze.Params) error {
//	    resp.Text("Hello, " + params["name"])
//	    return nil
//	})
//
// Lookup walks the table in registration order and takes the first match, so
// earlier registrations shadow later ones. Registering the same pattern and
// method twice fails with a *DuplicateRouteError.
//
// Resource values serve one operation per HTTP method. The method table is
// built once at registration from the interfaces the value implements:
//
//	type books struct{}
//
//	func (books) Get(req *sunbreeze.Request, resp *sunbreeze.Response, _ sunbreeze.Params) error {
//	    resp.Text("Books Page")
//	    return nil
//	}
//
//	app.Handle("/book", books{})
//
// A request with no matching route gets a 404; a matching route without an
// operation for the method gets a 405. Errors and panics inside a handler are
// caught once, at the dispatch boundary: with WithDebug(true) the 500 body
// carries the message and stack trace through the error.html template, and
// in production it is a fixed generic line. Failures are logged either way.
//
// The App also mounts /static (directory created on demand), renders
// templates from a user directory with built-in fallback, and optionally
// throttles clients (WithRateLimit) and serves Prometheus metrics
// (WithMetrics).
package sunbreeze
