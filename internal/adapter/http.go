package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/cf-cookie-client/internal/config"
	"github.com/MKhiriev/cf-cookie-client/internal/logger"
	"github.com/MKhiriev/cf-cookie-client/internal/utils"
	"github.com/MKhiriev/cf-cookie-client/models"
)

type httpRefreshAdapter struct {
	client   *utils.HTTPClient
	timeouts config.Timeouts

	logger *logger.Logger
}

// NewHTTPRefreshAdapter constructs an HTTP implementation of
// [ServiceAdapter]. It normalises and validates the base URL from serverCfg,
// and configures the underlying HTTP client with the resolved base URL.
// Request deadlines are applied per call from timeouts because the three
// endpoints carry different budgets (120 s refresh, 60 s lookup, 5 s probe).
//
// Returns an error if serverCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPRefreshAdapter(serverCfg config.Server, timeouts config.Timeouts, log *logger.Logger) (ServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(serverCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)

	return &httpRefreshAdapter{client: client, timeouts: timeouts, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Refresh implements [ServiceAdapter]. It POSTs to /cache/refresh with the
// target URL (and proxy, when set) passed as query parameters — the server
// expects them on the query string, not in a body. The call is bounded by
// the refresh timeout.
func (h *httpRefreshAdapter) Refresh(ctx context.Context, targetURL, proxy string) (models.RefreshResult, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeouts.Refresh)
	defer cancel()

	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("url", targetURL)
	if proxy != "" {
		req.SetQueryParam("proxy", proxy)
	}

	started := time.Now()
	resp, err := req.Post("/cache/refresh")
	if err != nil {
		return models.RefreshResult{}, classifyTransportError(err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return models.RefreshResult{}, err
	}

	var result models.RefreshResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.RefreshResult{}, fmt.Errorf("decode refresh response: %w", err)
	}

	h.logger.Debug().
		Str("url", targetURL).
		Str("hostname", result.Hostname).
		Int("cookies_count", result.CookiesCount).
		Int64("generation_time_ms", result.GenerationTimeMS).
		Dur("round_trip", time.Since(started)).
		Msg("cache refresh completed")

	return result, nil
}

// Cookies implements [ServiceAdapter]. It GETs /cookies?url=… bounded by the
// cookie-lookup timeout. Failures are returned as typed errors; callers
// decide how loudly to report them.
func (h *httpRefreshAdapter) Cookies(ctx context.Context, targetURL string) (models.CookiesResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeouts.Cookies)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("url", targetURL).
		Get("/cookies")
	if err != nil {
		return models.CookiesResponse{}, classifyTransportError(err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return models.CookiesResponse{}, err
	}

	var result models.CookiesResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.CookiesResponse{}, fmt.Errorf("decode cookies response: %w", err)
	}

	return result, nil
}

// Stats implements [ServiceAdapter]. It GETs /cache/stats bounded by the
// cookie-lookup timeout.
func (h *httpRefreshAdapter) Stats(ctx context.Context) (models.CacheStats, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeouts.Cookies)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/cache/stats")
	if err != nil {
		return models.CacheStats{}, classifyTransportError(err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return models.CacheStats{}, err
	}

	var result models.CacheStats
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.CacheStats{}, fmt.Errorf("decode stats response: %w", err)
	}

	return result, nil
}

// Probe implements [ServiceAdapter]. It performs a short GET /cache/stats
// bounded by the probe timeout, used once at startup to verify the server
// is running before any interactive flow begins.
func (h *httpRefreshAdapter) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeouts.Probe)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/cache/stats")
	if err != nil {
		return classifyTransportError(err)
	}

	return mapHTTPError(resp.StatusCode(), resp.Body())
}

// mapHTTPError converts a non-2xx response into a [*RemoteError] carrying
// the "detail" field of the JSON error body. A missing or unparsable body
// falls back to a generic message so the caller always gets something to
// show.
func mapHTTPError(statusCode int, body []byte) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	detail := "unknown server error"

	var errBody struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil && strings.TrimSpace(errBody.Detail) != "" {
		detail = errBody.Detail
	}

	return &RemoteError{StatusCode: statusCode, Detail: detail}
}
