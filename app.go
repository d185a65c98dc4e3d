package sunbreeze

import (
	"log/slog"
	"net/http"
	"time"
)

// metricsNamespace prefixes every metric the framework records.
const metricsNamespace = "sunbreeze"

// App ties the route table, template set, static mount, and error boundary
// together behind a single http.Handler. Build one with New, register routes,
// then serve; the route table freezes on the first request.
type App struct {
	router    *Router
	templates *TemplateSet
	logger    *slog.Logger

	debug   bool
	name    string
	version string

	templateDir  string
	staticPrefix string
	staticDir    string
	static       *staticMount

	limiter *rateLimiter
	metrics *appMetrics
}

// Option configures an App at construction time.
type Option func(*App)

// WithDebug enables debug mode: failure responses carry the error message
// and stack trace instead of the generic body.
func WithDebug(debug bool) Option {
	return func(a *App) {
		a.debug = debug
	}
}

// WithLogger sets the application logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithName sets the application name.
func WithName(name string) Option {
	return func(a *App) {
		a.name = name
	}
}

// WithVersion sets the application version.
func WithVersion(version string) Option {
	return func(a *App) {
		a.version = version
	}
}

// WithTemplateDir sets the directory searched for templates before the
// built-in ones. The default is "templates".
func WithTemplateDir(dir string) Option {
	return func(a *App) {
		a.templateDir = dir
	}
}

// WithStaticDir sets the directory served under /static. The directory is
// created on demand. The default is "static".
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithRateLimit applies a per-client request throttle of r requests per
// second with the given burst. Throttled requests get a 429 before dispatch.
// A non-positive rate leaves the throttle disabled.
func WithRateLimit(r float64, burst int) Option {
	return func(a *App) {
		if r <= 0 {
			a.limiter = nil
			return
		}
		a.limiter = newRateLimiter(r, burst)
	}
}

// WithMetrics enables Prometheus request metrics, served at /metrics.
func WithMetrics() Option {
	return func(a *App) {
		a.metrics = newAppMetrics(metricsNamespace)
	}
}

// New creates an App with the given options.
func New(opts ...Option) *App {
	a := &App{
		router:       NewRouter(),
		logger:       slog.Default(),
		name:         "sunbreeze",
		version:      "0.1.0",
		templateDir:  "templates",
		staticPrefix: "/static",
		staticDir:    "static",
	}
	for _, opt := range opts {
		opt(a)
	}

	a.templates = NewTemplateSet(a.templateDir)
	a.static = newStaticMount(a.staticPrefix, a.staticDir)

	a.logger.Info("application initialized",
		"name", a.name,
		"version", a.version,
		"debug", a.debug,
	)
	return a
}

// Router returns the application's route table.
func (a *App) Router() *Router { return a.router }

// HandleFunc registers a function handler on the application's route table.
func (a *App) HandleFunc(pattern string, h HandlerFunc, opts ...RouteOption) error {
	return a.router.HandleFunc(pattern, h, opts...)
}

// Handle registers a resource handler on the application's route table.
func (a *App) Handle(pattern string, res any, opts ...RouteOption) error {
	return a.router.Handle(pattern, res, opts...)
}

// PathFor builds a concrete path for a named route.
func (a *App) PathFor(name string, params Params) (string, error) {
	return a.router.PathFor(name, params)
}

// Render executes a named template with ctx and returns the output bytes.
func (a *App) Render(name string, ctx any) ([]byte, error) {
	return a.templates.Render(name, ctx)
}

// ServeHTTP is the transport adapter. The first request freezes the route
// table; every request is access-logged and, when enabled, counted in the
// metrics.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.freeze()

	start := time.Now()
	rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

	a.serve(rec, r)

	logRequest(a.logger, r, rec, start)
	if a.metrics != nil {
		a.metrics.observe(r.Method, rec.status, time.Since(start))
	}
}

// serve routes one request to the metrics endpoint, the static mount, or the
// dispatcher.
func (a *App) serve(w http.ResponseWriter, r *http.Request) {
	if a.metrics != nil && r.URL.Path == metricsPath {
		a.metrics.handler.ServeHTTP(w, r)
		return
	}

	if a.static.matches(r.URL.Path) {
		a.static.ServeHTTP(w, r)
		return
	}

	if a.limiter != nil && !a.limiter.allow(r) {
		w.Header().Set("Retry-After", a.limiter.retryAfter())
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		return
	}

	resp := a.Dispatch(newHTTPRequest(r))
	resp.writeTo(w)
}
