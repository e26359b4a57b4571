// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/cf-cookie-client/internal/adapter"
	"github.com/MKhiriev/cf-cookie-client/internal/config"
	"github.com/MKhiriev/cf-cookie-client/internal/logger"
	"github.com/MKhiriev/cf-cookie-client/internal/report"
	"github.com/MKhiriev/cf-cookie-client/internal/service"
	"github.com/MKhiriev/cf-cookie-client/internal/tui"
)

// App carries the wired-up services shared by all three tools.
type App struct {
	cfg     *config.StructuredConfig
	log     *logger.Logger
	refresh *service.RefreshService
	batch   *service.BatchService
	reports *report.Writer
}

// NewApp loads configuration and builds the full service stack.
func NewApp(log *logger.Logger) (*App, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPRefreshAdapter(cfg.Server, cfg.Timeouts, log)
	if err != nil {
		return nil, err
	}

	refresh := service.NewRefreshService(serverAdapter, log)

	return &App{
		cfg:     cfg,
		log:     log,
		refresh: refresh,
		batch:   service.NewBatchService(refresh, cfg.Batch.Delay, log),
		reports: report.NewWriter(cfg.Output.Dir),
	}, nil
}

// CheckServer probes the refresh server once. On failure it prints a startup
// hint and returns false; the tools then exit cleanly instead of dropping
// the user into a UI that cannot work.
func (a *App) CheckServer(ctx context.Context) bool {
	if err := a.refresh.Probe(ctx); err != nil {
		a.log.Warn().Err(err).Str("base_url", a.cfg.Server.BaseURL).Msg("server probe failed")
		fmt.Fprintf(os.Stdout, "Refresh server is not reachable at %s\n", a.cfg.Server.BaseURL)
		fmt.Fprintln(os.Stdout, "Start the server first, then run this tool again.")
		return false
	}
	return true
}

// RunTUI starts the full-screen interactive client.
func (a *App) RunTUI(ctx context.Context) error {
	if !a.CheckServer(ctx) {
		return nil
	}

	return tui.NewTUI(a.refresh, a.batch, a.reports, a.log).Run(ctx)
}
