package main

import (
	"context"
	"errors"
	"fmt"
	"inkwell/internal/domain/config"
	"inkwell/internal/serve"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	path := os.Getenv("INKWELL_CONFIG")
	if path == "" {
		path = "./inkwell.yaml"
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := serve.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "serve init error:", err.Error())
		os.Exit(1)
	}
	defer s.Close()

	if err := s.ListenAndServe(ctx, cfg.Serve.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintln(os.Stderr, "serve error:", err.Error())
		os.Exit(1)
	}
}
