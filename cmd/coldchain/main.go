// Package main boots the cold-chain shipment tracking HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/verichain/coldchain/internal/config"
	"github.com/verichain/coldchain/internal/httpapi"
	"github.com/verichain/coldchain/internal/obs"
	"github.com/verichain/coldchain/internal/seed"
	"github.com/verichain/coldchain/internal/store"
	"github.com/verichain/coldchain/internal/tracking"
	"github.com/verichain/coldchain/internal/weather"
)

func main() {
	_ = godotenv.Load()
	obs.InitLogger()
	cfg, err := config.Load()
	if err != nil {
		obs.Logger.Error("config_error", "error", err)
		os.Exit(1)
	}
	obs.Logger.Info("service_starting")

	st := store.New()
	if cfg.SeedDemoData {
		seed.Populate(st)
	}
	ws := weather.New(cfg)
	tracker := tracking.NewService(st, ws)

	app := httpapi.NewApp(cfg, st, tracker, ws)
	mux := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}
