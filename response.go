package sunbreeze

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
)

// Response accumulates the status, media type, headers, and body for one
// request. Handlers mutate it in place; it is written to the transport once
// dispatch completes and must not be touched afterwards.
type Response struct {
	status int
	media  string
	header http.Header
	body   bytes.Buffer
}

// NewResponse returns a response with status 200 and a plain-text media type.
func NewResponse() *Response {
	return &Response{
		status: http.StatusOK,
		media:  "text/plain; charset=utf-8",
		header: make(http.Header),
	}
}

// Status returns the response status code.
func (r *Response) Status() int { return r.status }

// SetStatus sets the response status code.
func (r *Response) SetStatus(code int) { r.status = code }

// MediaType returns the response media type.
func (r *Response) MediaType() string { return r.media }

// SetMediaType sets the response media type.
func (r *Response) SetMediaType(media string) { r.media = media }

// Header returns the response headers for mutation.
func (r *Response) Header() http.Header { return r.header }

// Write appends raw bytes to the body. Implements io.Writer so the response
// can be a template or encoder target.
func (r *Response) Write(p []byte) (int, error) {
	return r.body.Write(p)
}

// Text replaces the body with s and sets a plain-text media type.
func (r *Response) Text(s string) {
	r.body.Reset()
	r.body.WriteString(s)
	r.media = "text/plain; charset=utf-8"
}

// HTML replaces the body with b and sets an HTML media type.
func (r *Response) HTML(b []byte) {
	r.body.Reset()
	r.body.Write(b)
	r.media = "text/html; charset=utf-8"
}

// JSON replaces the body with the JSON encoding of v and sets a JSON media
// type.
func (r *Response) JSON(v any) error {
	r.body.Reset()
	if err := json.NewEncoder(&r.body).Encode(v); err != nil {
		return err
	}
	r.media = "application/json"
	return nil
}

// Body returns the body bytes accumulated so far.
func (r *Response) Body() []byte { return r.body.Bytes() }

// BodyString returns the body accumulated so far as a string.
func (r *Response) BodyString() string { return r.body.String() }

// reset discards everything a handler may have set before the error boundary
// replaces the response. Headers survive a reset; a failed handler's partial
// body and status must not.
func (r *Response) reset() {
	r.status = http.StatusOK
	r.media = "text/plain; charset=utf-8"
	r.body.Reset()
}

// writeTo hands the finished response to the transport layer.
func (r *Response) writeTo(w http.ResponseWriter) {
	h := w.Header()
	for k, vs := range r.header {
		h[k] = vs
	}
	h.Set("Content-Type", r.media)
	h.Set("Content-Length", strconv.Itoa(r.body.Len()))
	w.WriteHeader(r.status)
	//nolint:errcheck,gosec // best-effort after WriteHeader
	w.Write(r.body.Bytes())
}
