package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/MatBureau/devops-portfolio/internal/config"
	"github.com/MatBureau/devops-portfolio/internal/metrics"
)

const shutdownGrace = 5 * time.Second

func newHTTPServer(addr string, h http.Handler, sc config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  sc.ReadTimeout,
		WriteTimeout: sc.WriteTimeout,
		IdleTimeout:  sc.IdleTimeout,
	}
}

// Run serves h on addr, and the prometheus registry of m on metricsAddr when
// set, until ctx is cancelled or a listener fails.
func Run(ctx context.Context, addr string, h http.Handler, sc config.ServerConfig, metricsAddr string, m *metrics.Metrics) error {
	servers := []*http.Server{newHTTPServer(addr, h, sc)}
	if metricsAddr != "" && m != nil {
		mux := http.NewServeMux()
		mux.Handle("GET /metrics", m.Handler())
		servers = append(servers, newHTTPServer(metricsAddr, mux, sc))
	}

	errc := make(chan error, len(servers))
	for _, srv := range servers {
		go func(srv *http.Server) {
			slog.Info("listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- err
				return
			}
			errc <- nil
		}(srv)
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errc:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("shutdown", "addr", srv.Addr, "err", err)
		}
	}
	return runErr
}
