package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-formdesigner/internal/config"
	"github.com/goliatone/go-formdesigner/internal/httpapi"
	"github.com/goliatone/go-formdesigner/pkg/fields"
	"github.com/goliatone/go-formdesigner/pkg/forms"
	"github.com/goliatone/go-formdesigner/pkg/forms/sqlite"
	"github.com/goliatone/go-formdesigner/pkg/render"
	"github.com/goliatone/go-formdesigner/pkg/renderers/html"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	registry := fields.Default()
	htmlRenderer, err := html.New(
		html.WithRegistry(registry),
		html.WithStylesheetURL("/assets/"+html.StylesheetName),
	)
	if err != nil {
		return err
	}
	renderers := render.NewRegistry()
	if err := renderers.Register(htmlRenderer); err != nil {
		return err
	}

	service := forms.NewService(store, forms.WithLogger(logger))
	handler := httpapi.New(service,
		httpapi.WithLogger(logger),
		httpapi.WithRegistry(registry),
		httpapi.WithRenderers(renderers),
		httpapi.WithBaseURL(cfg.BaseURL),
		httpapi.WithAssets(html.AssetsFS()),
	)
	return httpapi.Serve(ctx, cfg.Addr, handler.Routes(), cfg.ShutdownTimeout, logger)
}

func openStore(ctx context.Context, cfg config.Config) (forms.Store, func(), error) {
	if cfg.Store == config.StoreMemory {
		return forms.NewMemoryStore(), func() {}, nil
	}
	store, err := sqlite.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return store, func() { _ = store.Close() }, nil
}
