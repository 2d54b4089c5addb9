package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ChizhovVadim/CounterXO/internal/config"
	"github.com/ChizhovVadim/CounterXO/internal/logging"
	"github.com/ChizhovVadim/CounterXO/internal/server"
	"github.com/ChizhovVadim/CounterXO/pkg/engine"
)

var flgConfig string

func main() {
	flag.StringVar(&flgConfig, "config", "", "Path to config file")
	flag.Parse()

	var err = run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg, err = config.Load(flgConfig)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var options = engine.NewOptions()
	options.Threads = cfg.Threads
	options.Parallel = cfg.Parallel

	var srv = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.NewHandler(logger, options).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var serveErr = make(chan error, 1)
	go func() {
		logger.Infow("server started", "addr", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("received shutdown signal")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
