package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the default prometheus registry on /metrics.
type Server struct {
	listener net.Listener
	httpAddr string
}

func NewServer(address string, listener net.Listener) *Server {
	return &Server{
		httpAddr: address,
		listener: listener,
	}
}

// Router returns the handler serving /metrics.
func Router() http.Handler {
	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	return router
}

func (m *Server) Run(ctx context.Context) error {
	zap.S().Named("metrics_server").Info("Initializing metrics server")
	srv := http.Server{Addr: m.httpAddr, Handler: Router()}

	go func() {
		<-ctx.Done()
		zap.S().Named("metrics_server").Info("Shutdown signal received:", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
	}()

	zap.S().Named("metrics_server").Infof("Listening on %s...", m.listener.Addr().String())
	if err := srv.Serve(m.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
