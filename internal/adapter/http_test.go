// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/cf-cookie-client/internal/config"
	"github.com/MKhiriev/cf-cookie-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpRefreshAdapter {
	t.Helper()

	timeouts := config.Timeouts{
		Refresh: 2 * time.Second,
		Cookies: 2 * time.Second,
		Probe:   time.Second,
	}

	a, err := NewHTTPRefreshAdapter(config.Server{BaseURL: serverURL}, timeouts, logger.Nop())
	require.NoError(t, err)
	return a.(*httpRefreshAdapter)
}

// ── Refresh ─────────────────────────────────────────────────────────────────

func TestRefresh_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cache/refresh", r.URL.Path)
		assert.Equal(t, "https://example.com", r.URL.Query().Get("url"))
		assert.Equal(t, "socks5://proxy:1080", r.URL.Query().Get("proxy"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","hostname":"example.com","cookies_count":5,"user_agent":"UA","generation_time_ms":1500}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Refresh(context.Background(), "https://example.com", "socks5://proxy:1080")

	require.NoError(t, err)
	assert.True(t, got.Succeeded())
	assert.Equal(t, "example.com", got.Hostname)
	assert.Equal(t, 5, got.CookiesCount)
	assert.Equal(t, "UA", got.UserAgent)
	assert.Equal(t, int64(1500), got.GenerationTimeMS)
}

func TestRefresh_NoProxyParamWhenEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasProxy := r.URL.Query()["proxy"]
		assert.False(t, hasProxy)

		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Refresh(context.Background(), "https://example.com", "")
	require.NoError(t, err)
}

func TestRefresh_RemoteDetailSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"detail":"rate limited"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Refresh(context.Background(), "https://example.com", "")

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusTooManyRequests, remoteErr.StatusCode)
	assert.Equal(t, "rate limited", remoteErr.Detail)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestRefresh_MissingDetailFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Refresh(context.Background(), "https://example.com", "")

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "unknown server error", remoteErr.Detail)
}

func TestRefresh_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	a := newTestAdapter(t, srv.URL)
	_, err := a.Refresh(context.Background(), "https://example.com", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnreachable)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestRefresh_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.timeouts.Refresh = 50 * time.Millisecond

	_, err := a.Refresh(context.Background(), "https://example.com", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.NotErrorIs(t, err, ErrServerUnreachable)
}

// ── Cookies ─────────────────────────────────────────────────────────────────

func TestCookies_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cookies", r.URL.Path)
		assert.Equal(t, "https://example.com", r.URL.Query().Get("url"))

		_, _ = w.Write([]byte(`{"cookies":{"cf_clearance":"abc","session":"xyz"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Cookies(context.Background(), "https://example.com")

	require.NoError(t, err)
	require.Len(t, got.Cookies, 2)
	assert.Equal(t, "abc", got.Cookies["cf_clearance"])
}

func TestCookies_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"no cookies cached for hostname"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Cookies(context.Background(), "https://example.com")

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "no cookies cached for hostname", remoteErr.Detail)
}

// ── Stats / Probe ───────────────────────────────────────────────────────────

func TestStats_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cache/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"cached_entries":2,"total_hostnames":2,"hostnames":["a.com","b.com"]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, got.CachedEntries)
	assert.Equal(t, []string{"a.com", "b.com"}, got.Hostnames)
}

func TestProbe_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cached_entries":0,"total_hostnames":0,"hostnames":[]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Probe(context.Background()))
}

func TestProbe_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Probe(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnreachable)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8000", "http://localhost:8000", false},
		{"no scheme", "localhost:8000", "http://localhost:8000", false},
		{"trailing slash", "http://localhost:8000/", "http://localhost:8000", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
