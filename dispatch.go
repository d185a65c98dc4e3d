package sunbreeze

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

// Fixed bodies for the dispatcher's terminal states.
const (
	notFoundBody         = "Not Found"
	methodNotAllowedBody = "Method Not Allowed"
	internalErrorBody    = "Something ducky happened."
)

// errorTemplate is the template rendered for failures in debug mode. Resolved
// through the template set, so an application can ship its own error.html.
const errorTemplate = "error.html"

// Dispatch resolves and invokes the handler for one request, returning the
// finished response. The state machine: no matching route is a 404; a
// matching route without an operation for the method is a 405; otherwise the
// operation runs inside the error boundary and the response is whatever it
// left behind. Dispatch is transport-agnostic — ServeHTTP is a thin adapter
// over it.
func (a *App) Dispatch(req *Request) *Response {
	resp := NewResponse()

	rt, params, ok := a.router.lookup(req.Path)
	if !ok {
		resp.SetStatus(http.StatusNotFound)
		resp.Text(notFoundBody)
		return resp
	}

	op, ok := rt.ops[req.Method]
	if !ok {
		resp.SetStatus(http.StatusMethodNotAllowed)
		resp.Text(methodNotAllowedBody)
		return resp
	}

	a.invoke(op, req, resp, params)
	return resp
}

// invoke runs one handler operation inside the error boundary. Any returned
// error or panic is converted to a 500 exactly once, here. http.ErrAbortHandler
// is the transport's abort signal: it is logged and re-panicked, never
// converted to a response.
func (a *App) invoke(op HandlerFunc, req *Request, resp *Response, params Params) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
			a.logger.Error("handler aborted",
				"method", req.Method,
				"path", req.Path,
			)
			panic(rec)
		}
		a.fail(req, resp, fmt.Errorf("panic: %v", rec), debug.Stack())
	}()

	if err := op(req, resp, params); err != nil {
		a.fail(req, resp, err, debug.Stack())
	}
}

// fail turns a handler failure into the 500 response. The failure is always
// logged. In debug mode the response carries the message and stack trace,
// rendered through error.html when possible; in production the body is a
// fixed generic line with no diagnostic detail.
func (a *App) fail(req *Request, resp *Response, err error, stack []byte) {
	a.logger.Error("handler failure",
		"method", req.Method,
		"path", req.Path,
		"err", err,
		"stack", string(stack),
	)

	resp.reset()
	resp.SetStatus(http.StatusInternalServerError)

	if !a.debug {
		resp.Text(internalErrorBody)
		return
	}

	body, rerr := a.templates.Render(errorTemplate, map[string]any{
		"Method":    req.Method,
		"Path":      req.Path,
		"Error":     err.Error(),
		"Traceback": string(stack),
	})
	if rerr != nil {
		resp.Text(fmt.Sprintf("%s\n\n%s", err, stack))
		return
	}
	resp.HTML(body)
}
