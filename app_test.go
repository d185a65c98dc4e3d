package sunbreeze_test

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunbreeze/sunbreeze"
	"github.com/sunbreeze/sunbreeze/apptest"
)

func TestApp_ServeHTTP_scenario(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	require.NoError(t, app.HandleFunc("/hello/{name}", func(_ *sunbreeze.Request, resp *sunbreeze.Response, params sunbreeze.Params) error {
		resp.Text("Hello, " + params["name"])
		return nil
	}))

	c := apptest.NewClient(t, app)

	resp := c.Get(t, "/hello/Ada")
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "Hello, Ada", resp.Body)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))

	resp = c.Get(t, "/missing")
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "Not Found", resp.Body)

	resp = c.Post(t, "/hello/Ada", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Status)
	assert.Equal(t, "Method Not Allowed", resp.Body)
}

func TestApp_ServeHTTP_handlerHeaders(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	require.NoError(t, app.HandleFunc("/tagged", func(_ *sunbreeze.Request, resp *sunbreeze.Response, _ sunbreeze.Params) error {
		resp.Header().Set("X-Custom", "applied")
		resp.Text("ok")
		return nil
	}))

	c := apptest.NewClient(t, app)
	resp := c.Get(t, "/tagged")
	assert.Equal(t, "applied", resp.Header.Get("X-Custom"))
}

func TestApp_ServeHTTP_freezesTable(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	require.NoError(t, app.HandleFunc("/home", noop))

	c := apptest.NewClient(t, app)
	c.Get(t, "/home")

	err := app.HandleFunc("/late", noop)
	require.ErrorIs(t, err, sunbreeze.ErrFrozen)
}

func TestApp_ServeHTTP_queryIgnoredByMatch(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	require.NoError(t, app.HandleFunc("/search", func(req *sunbreeze.Request, resp *sunbreeze.Response, _ sunbreeze.Params) error {
		resp.Text("q=" + req.Query("q"))
		return nil
	}))

	c := apptest.NewClient(t, app)
	resp := c.Get(t, "/search?q=ducks")
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "q=ducks", resp.Body)
}

func TestApp_static(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body { color: teal }"), 0o600))

	app := newTestApp(sunbreeze.WithStaticDir(dir))
	c := apptest.NewClient(t, app)

	resp := c.Get(t, "/static/style.css")
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "body { color: teal }", resp.Body)

	resp = c.Get(t, "/static/missing.css")
	assert.Equal(t, http.StatusNotFound, resp.Status)
}

func TestApp_static_createsDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "assets")
	app := newTestApp(sunbreeze.WithStaticDir(dir))
	c := apptest.NewClient(t, app)

	// First hit creates the directory on demand.
	c.Get(t, "/static/anything")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestApp_metrics(t *testing.T) {
	t.Parallel()

	app := newTestApp(sunbreeze.WithMetrics())
	require.NoError(t, app.HandleFunc("/home", noop))

	c := apptest.NewClient(t, app)
	c.Get(t, "/home")

	resp := c.Get(t, "/metrics")
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Contains(t, resp.Body, "sunbreeze_requests_total")
	assert.Contains(t, resp.Body, `method="GET"`)
}

func TestApp_rateLimit(t *testing.T) {
	t.Parallel()

	app := newTestApp(sunbreeze.WithRateLimit(1, 1))
	require.NoError(t, app.HandleFunc("/home", noop))

	c := apptest.NewClient(t, app)

	first := c.Get(t, "/home")
	assert.Equal(t, http.StatusOK, first.Status)

	second := c.Get(t, "/home")
	assert.Equal(t, http.StatusTooManyRequests, second.Status)
	assert.NotEmpty(t, second.Header.Get("Retry-After"))
}

func TestApp_rateLimit_nonPositiveRateDisabled(t *testing.T) {
	t.Parallel()

	app := newTestApp(sunbreeze.WithRateLimit(0, 1))
	require.NoError(t, app.HandleFunc("/home", noop))

	c := apptest.NewClient(t, app)
	for i := 0; i < 3; i++ {
		resp := c.Get(t, "/home")
		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Empty(t, resp.Header.Get("Retry-After"))
	}
}

func TestApp_accessLog(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	app := sunbreeze.New(sunbreeze.WithLogger(logger))
	require.NoError(t, app.HandleFunc("/home", noop))

	c := apptest.NewClient(t, app)
	c.Get(t, "/home")

	log := buf.String()
	assert.Contains(t, log, "msg=request")
	assert.Contains(t, log, "path=/home")
	assert.Contains(t, log, "status=200")
}

func TestApp_Render(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	out, err := app.Render("error.html", map[string]any{
		"Method":    "GET",
		"Path":      "/x",
		"Error":     "boom",
		"Traceback": "trace here",
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "boom")
	assert.Contains(t, string(out), "trace here")
}

func TestApp_PathFor(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	require.NoError(t, app.HandleFunc("/hello/{name}", noop, sunbreeze.WithRouteName("greeting")))

	path, err := app.PathFor("greeting", sunbreeze.Params{"name": "Grace"})
	require.NoError(t, err)
	assert.Equal(t, "/hello/Grace", path)
}
