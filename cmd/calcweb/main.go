package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calckit/internal/app"
)

func main() {
	var (
		home       string
		configFile string
		addr       string
	)
	flag.StringVar(&home, "home", "", "config dir (default ~/.calckit)")
	flag.StringVar(&configFile, "config", "", "config file (default <home>/config.yaml)")
	flag.StringVar(&addr, "addr", "", "HTTP listen address (overrides listen)")
	flag.Parse()

	if err := run(home, configFile, addr); err != nil {
		log.Fatal(err)
	}
}

func run(home, configFile, addr string) error {
	cfg, err := app.LoadConfig(home, configFile)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Listen = addr
	}
	// The server always computes locally.
	cfg.Remote = ""

	logger, err := app.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	wire, err := app.NewWire(cfg, logger)
	if err != nil {
		return err
	}
	defer wire.Close()

	site, err := app.NewServer(wire)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           site.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("calcweb listening", "addr", cfg.Listen, "history", cfg.History.Enabled)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
