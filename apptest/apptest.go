// Package apptest provides test helpers for the sunbreeze framework.
package apptest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sunbreeze/sunbreeze"
)

// Client wraps an httptest.Server for convenient application testing.
type Client struct {
	Server *httptest.Server
}

// NewClient starts a test server for the application. The server is torn
// down with the test.
func NewClient(t testing.TB, app *sunbreeze.App) *Client {
	t.Helper()
	srv := httptest.NewServer(app)
	t.Cleanup(srv.Close)
	return &Client{Server: srv}
}

// Response holds one decoded test response.
type Response struct {
	Status int
	Header http.Header
	Body   string
}

// Get sends a GET request.
func (c *Client) Get(t testing.TB, path string) Response {
	t.Helper()
	return c.Do(t, http.MethodGet, path, "")
}

// Post sends a POST request with an optional plain-text body.
func (c *Client) Post(t testing.TB, path, body string) Response {
	t.Helper()
	return c.Do(t, http.MethodPost, path, body)
}

// Do sends a request with the given method and optional body.
func (c *Client) Do(t testing.TB, method, path, body string) Response {
	t.Helper()

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, c.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("apptest: build request: %v", err)
	}

	resp, err := c.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("apptest: %s %s: %v", method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Fatalf("apptest: close response body: %v", err)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("apptest: read response body: %v", err)
	}

	return Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   string(raw),
	}
}
