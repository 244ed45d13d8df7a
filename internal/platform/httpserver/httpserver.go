package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// Serve runs handler on addr until ctx is cancelled, then drains in-flight
// requests. A listener failure is returned immediately.
func Serve(ctx context.Context, name, addr string, handler http.Handler, logger zerolog.Logger) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return ServeListener(ctx, name, listener, handler, logger)
}

func ServeListener(ctx context.Context, name string, listener net.Listener, handler http.Handler, logger zerolog.Logger) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       2 * time.Minute,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	logger.Info().Str("server", name).Str("addr", listener.Addr().String()).Msg("listening")

	emergencyShutdown := make(chan error, 1)
	go func() {
		emergencyShutdown <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		logger.Info().Str("server", name).Msg("shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-emergencyShutdown:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
