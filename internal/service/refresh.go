// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/cf-cookie-client/internal/adapter"
	"github.com/MKhiriev/cf-cookie-client/internal/logger"
	"github.com/MKhiriev/cf-cookie-client/models"
)

// RefreshService is the application-facing facade over the server adapter.
// It adds structured logging around every remote call; all protocol detail
// stays in the adapter.
type RefreshService struct {
	adapter adapter.ServiceAdapter
	logger  *logger.Logger
}

func NewRefreshService(a adapter.ServiceAdapter, log *logger.Logger) *RefreshService {
	return &RefreshService{adapter: a, logger: log}
}

// Refresh forces the server to regenerate cookies for targetURL. The URL is
// expected to be normalized already (see utils.NormalizeTargetURL).
func (s *RefreshService) Refresh(ctx context.Context, targetURL, proxy string) (models.RefreshResult, error) {
	s.logger.Info().Str("url", targetURL).Str("proxy", proxy).Msg("refreshing cookies")

	result, err := s.adapter.Refresh(ctx, targetURL, proxy)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", targetURL).Msg("refresh failed")
		return models.RefreshResult{}, err
	}

	return result, nil
}

// CachedCookies returns the server's cached cookie set for targetURL.
// Every failure is returned as a typed error; the caller chooses whether to
// show a soft notice or the full cause (the original tools differed here,
// the adapter no longer swallows anything).
func (s *RefreshService) CachedCookies(ctx context.Context, targetURL string) (map[string]string, error) {
	resp, err := s.adapter.Cookies(ctx, targetURL)
	if err != nil {
		s.logger.Debug().Err(err).Str("url", targetURL).Msg("cookie lookup failed")
		return nil, err
	}

	return resp.Cookies, nil
}

// CacheStats returns a snapshot of the server's cookie cache.
func (s *RefreshService) CacheStats(ctx context.Context) (models.CacheStats, error) {
	stats, err := s.adapter.Stats(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Msg("cache stats failed")
		return models.CacheStats{}, err
	}

	return stats, nil
}

// Probe checks server connectivity once at startup.
func (s *RefreshService) Probe(ctx context.Context) error {
	return s.adapter.Probe(ctx)
}
