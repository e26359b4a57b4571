package tui

import (
	"github.com/MKhiriev/cf-cookie-client/internal/service"
	"github.com/MKhiriev/cf-cookie-client/models"
)

// NavigateTo switches the root router to another page. Payload, when set, is
// re-dispatched to the target page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

type refreshDoneMsg struct {
	targetURL string
	result    models.RefreshResult
	err       error
}

type cookiesLoadedMsg struct {
	targetURL string
	cookies   map[string]string
	err       error
}

// showCookiesFor is the payload the refresh screen sends when the user jumps
// straight to the cookie view for the URL just refreshed.
type showCookiesFor struct {
	targetURL string
}

// batchProgressMsg is delivered once per finished batch item while the run
// is still going.
type batchProgressMsg struct {
	progress service.BatchProgress
}

type batchDoneMsg struct {
	entries []models.BatchEntry
}

type statsLoadedMsg struct {
	stats models.CacheStats
	err   error
}

type savedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	name string
	err  error
}
