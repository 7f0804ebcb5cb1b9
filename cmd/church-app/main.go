package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"church-app-go/internal/app"
	"church-app-go/pkg/logger"
)

func main() {
	log := logger.NewFromEnv()

	application, err := app.New(log)
	if err != nil {
		log.Critical("startup failed", "err", err)
		os.Exit(1)
	}

	if err := run(application, log); err != nil {
		os.Exit(1)
	}
	log.Info("stopped")
}

// run serves HTTP until a termination signal or a server error, then drains
// in-flight requests within the configured shutdown window.
func run(application *app.App, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := application.HTTPServer()
	serveErr := make(chan error, 1)
	go func() {
		log.Info("serving", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var failed bool
	select {
	case <-ctx.Done():
		log.Info("termination signal received")
	case err := <-serveErr:
		if err != nil {
			log.Critical("server failed", "addr", srv.Addr, "err", err)
			failed = true
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), application.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("shutdown incomplete", "err", err)
		failed = true
	}
	if err := application.Close(); err != nil {
		log.Error("resource close failed", "err", err)
		failed = true
	}

	if failed {
		return errors.New("exited with errors")
	}
	return nil
}
