// geodserver serves the geodesic routines over HTTP. It is configured from
// GEOD_* environment variables, see internal/config.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geodlib/geodesic"
	"github.com/geodlib/geodesic/internal/config"
	"github.com/geodlib/geodesic/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: cfg.LogLevel}))
	geodesic.SetLogger(log)

	e, err := geodesic.NewEllipsoid(cfg.Ellipsoid.Radius, cfg.Ellipsoid.Flattening)
	if err != nil {
		log.Error("ellipsoid", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.New(cfg, e, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Info("server listening", "addr", cfg.Server.Addr,
			"radius", e.Radius(), "flattening", e.Flattening())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen", "err", err)
			os.Exit(1)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", "err", err)
	}
	log.Info("server stopped")
}
