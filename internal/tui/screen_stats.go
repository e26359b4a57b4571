package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cf-cookie-client/internal/render"
	"github.com/MKhiriev/cf-cookie-client/internal/service"
	"github.com/MKhiriev/cf-cookie-client/models"
)

// StatsModel is the cache statistics page. It loads on entry and refreshes
// on demand; the stats request shares the short probe timeout, so a dead
// server shows up quickly.
type StatsModel struct {
	svc *service.RefreshService

	loading bool
	stats   models.CacheStats
	errMsg  string
}

func NewStatsModel(svc *service.RefreshService) *StatsModel {
	return &StatsModel{svc: svc}
}

func (m *StatsModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = render.RequestError(msg.err)
			return m, nil
		}
		m.stats = msg.stats
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case msg.String() == "r":
			return m, m.Init()
		}
	}

	return m, nil
}

func (m *StatsModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.svc.CacheStats(context.Background())
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m *StatsModel) View() string {
	if m.loading {
		return renderPage("CACHE STATISTICS", "Loading...", "")
	}
	if m.errMsg != "" {
		return renderPage("CACHE STATISTICS", errorStyle.Render(m.errMsg), "r: retry │ esc: menu")
	}
	return renderPage("CACHE STATISTICS", render.CacheStats(m.stats), "r: reload │ esc: menu")
}
