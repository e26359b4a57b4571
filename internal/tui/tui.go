// Package tui is the full-screen interactive front end. A root router model
// owns one model per page and switches between them with NavigateTo
// messages; every remote call runs inside a tea.Cmd so the UI never blocks.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cf-cookie-client/internal/logger"
	"github.com/MKhiriev/cf-cookie-client/internal/report"
	"github.com/MKhiriev/cf-cookie-client/internal/service"
)

type TUI struct {
	refresh *service.RefreshService
	batch   *service.BatchService
	reports *report.Writer
	logger  *logger.Logger
}

func NewTUI(refresh *service.RefreshService, batch *service.BatchService, reports *report.Writer, log *logger.Logger) *TUI {
	return &TUI{
		refresh: refresh,
		batch:   batch,
		reports: reports,
		logger:  log,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":    NewMenuModel(),
		"refresh": NewRefreshModel(t.refresh, t.reports),
		"cookies": NewCookiesModel(t.refresh),
		"batch":   NewBatchModel(t.batch, t.reports),
		"stats":   NewStatsModel(t.refresh),
	}

	root := NewRootModel(pages, "menu")

	program := tea.NewProgram(root, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		t.logger.Error().Err(err).Msg("tui terminated abnormally")
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
