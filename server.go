package sunbreeze

import (
	"context"
	"net/http"
	"time"
)

// ListenAndServe starts an HTTP server for the application on the given
// address. It blocks until the context is cancelled, then shuts down
// gracefully.
func (a *App) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.logger.Info("server starting", "addr", addr, "name", a.name, "version", a.version)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
