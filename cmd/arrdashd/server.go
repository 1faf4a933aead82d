package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/vmunix/arrdash/internal/api/v1"
	"github.com/vmunix/arrdash/internal/apiclient"
	"github.com/vmunix/arrdash/internal/config"
	"github.com/vmunix/arrdash/internal/dashboard"
	"github.com/vmunix/arrdash/internal/demo"
	"github.com/vmunix/arrdash/internal/download"
	"github.com/vmunix/arrdash/internal/library"
	"github.com/vmunix/arrdash/internal/server"
)

// retryDelay is the initial backoff between upstream attempts.
const retryDelay = 200 * time.Millisecond

func runServer(configPath string) error {
	if configPath == "" {
		found, err := config.Discover()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		configPath = found
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	out, closer := server.LogOutput(os.Stdout, cfg.Server.LogFile)
	defer func() { _ = closer.Close() }()
	logger := server.NewLogger(out, cfg.Server.LogLevel)

	handler, err := buildHandler(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("server starting",
		"addr", cfg.Addr(),
		"config", configPath,
		"sonarr", cfg.Services.Sonarr != nil,
		"radarr", cfg.Services.Radarr != nil,
		"sabnzbd", cfg.Services.SABnzbd != nil,
		"demo", cfg.Demo.Enabled,
		"log_level", cfg.Server.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(server.Config{Addr: cfg.Addr()}, handler, logger)
	return runner.Run(ctx)
}

// buildHandler wires the upstream clients, the dashboard and the API.
func buildHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	opts := []apiclient.Option{
		apiclient.WithTimeout(cfg.HTTP.Timeout),
		apiclient.WithLogger(logger),
	}
	if cfg.HTTP.RateLimit > 0 {
		opts = append(opts, apiclient.WithRateLimit(cfg.HTTP.RateLimit, cfg.HTTP.Burst))
	}
	if cfg.HTTP.Retries > 0 {
		opts = append(opts, apiclient.WithRetry(uint(cfg.HTTP.Retries)+1, retryDelay))
	}
	api := apiclient.New(opts...)

	src := dashboard.Sources{
		Series:    library.NewClient(api, endpoint(apiclient.SeriesManager, cfg.Services.Sonarr), logger),
		Movies:    library.NewClient(api, endpoint(apiclient.MovieManager, cfg.Services.Radarr), logger),
		Downloads: download.NewClient(api, endpoint(apiclient.DownloadManager, cfg.Services.SABnzbd), logger),
	}
	svc := dashboard.New(src, demo.New(cfg.Demo.Enabled), dashboard.Options{
		RecentLimit:     cfg.Dashboard.RecentLimit,
		HistoryPageSize: cfg.Dashboard.HistoryPageSize,
	}, logger)

	apiV1, err := v1.New(v1.ServerDeps{Dashboard: svc, Version: version}, logger)
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}

	mux := http.NewServeMux()
	apiV1.RegisterRoutes(mux)
	return mux, nil
}

// endpoint converts a service section. A missing section yields an
// endpoint that reports itself unconfigured.
func endpoint(kind apiclient.ServiceKind, sc *config.ServiceConfig) apiclient.Endpoint {
	ep := apiclient.Endpoint{Kind: kind}
	if sc != nil {
		ep.BaseURL = sc.URL
		ep.APIKey = sc.APIKey
	}
	return ep
}
