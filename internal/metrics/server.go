package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"max.ks1230/fx-converter/internal/logger"
)

const (
	metricsPath     = "/metrics"
	shutdownTimeout = 5 * time.Second
)

type config interface {
	Addr() string
}

// Serve exposes the Prometheus registry until ctx is done. It returns
// immediately when no address is configured.
func Serve(ctx context.Context, cfg config) error {
	addr := cfg.Addr()
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown", zap.Error(err))
		}
	}()

	logger.Info("metrics server listening", zap.String("addr", addr))
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve metrics")
	}
	return nil
}
