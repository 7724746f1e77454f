package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability/attr"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// Start serves the API until ctx is cancelled, then shuts down gracefully.
// When a metrics address is configured, /metrics is also served there.
func (app *App) Start(ctx context.Context) error {
	logger := app.Observability.Logger

	srv := &http.Server{
		Addr:              app.Config.HTTP.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	servers := []*http.Server{srv}

	if addr := app.Config.Observability.MetricsAddress; addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(app.Observability.Registry, promhttp.HandlerOpts{}))
		servers = append(servers, &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second})
	}

	errCh := make(chan error, len(servers))
	for _, s := range servers {
		go func(s *http.Server) {
			logger.InfoContext(ctx, "HTTP server listening", attr.String("addr", s.Addr))
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("server on %s failed: %w", s.Addr, err)
			}
		}(s)
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.InfoContext(ctx, "Shutting down HTTP servers")
	case runErr = <-errCh:
		logger.ErrorContext(ctx, "HTTP server stopped", attr.Error(runErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, s := range servers {
		if err := s.Shutdown(shutdownCtx); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("failed to shut down %s: %w", s.Addr, err))
		}
	}
	return runErr
}
