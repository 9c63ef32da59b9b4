package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cheatsheet "github.com/goliatone/go-cheatsheet"
)

func main() {
	if err := runServer(os.Args[1:]); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func runServer(args []string) error {
	fs := flag.NewFlagSet("cheatsheet-server", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "Listen address")
	contentDir := fs.String("content-dir", "", "Path to the markdown content root (defaults to probing ./content)")
	baseURL := fs.String("base-url", "", "Canonical site origin used for generated URLs")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal)")
	logFormat := fs.String("log-format", "json", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := cheatsheet.DefaultConfig()
	cfg.Content.Dir = *contentDir
	cfg.Site.BaseURL = *baseURL
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	module, err := cheatsheet.New(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	logger := module.Logger("cheatsheet.server")

	// Warm the catalog so content defects surface at startup instead of
	// on the first request.
	if _, err := module.Catalog().SearchEntries(context.Background()); err != nil {
		return fmt.Errorf("warm catalog: %w", err)
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           module.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server.listening", "addr", *addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("server.shutdown", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
