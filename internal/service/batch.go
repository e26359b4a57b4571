// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/cf-cookie-client/internal/logger"
	"github.com/MKhiriev/cf-cookie-client/internal/utils"
	"github.com/MKhiriev/cf-cookie-client/models"
)

// BatchProgress is emitted after every finished batch item so each front end
// can render progress in its own style.
type BatchProgress struct {
	Index int // 1-based position among the valid URLs
	Total int
	Entry models.BatchEntry
}

// BatchService runs refreshes over an ordered URL list strictly one at a
// time, pausing a fixed delay between items. Sequential execution is
// deliberate: a refresh costs the server 10-30 seconds of browser work, so
// the client never keeps more than one request in flight and never retries.
type BatchService struct {
	refresher Refresher
	delay     time.Duration
	logger    *logger.Logger

	// sleep is swappable so tests can assert pacing without waiting.
	sleep func(time.Duration)
}

func NewBatchService(refresher Refresher, delay time.Duration, log *logger.Logger) *BatchService {
	return &BatchService{
		refresher: refresher,
		delay:     delay,
		logger:    log,
		sleep:     time.Sleep,
	}
}

// Prepare normalizes and validates raw user-typed URLs, preserving input
// order. Invalid entries are discarded (returned separately for per-item
// warnings) and never reach the server or the final batch results.
func (b *BatchService) Prepare(raw []string) (valid []string, invalid []string) {
	for _, r := range raw {
		normalized, err := utils.NormalizeTargetURL(r)
		if err != nil {
			b.logger.Warn().Str("url", r).Err(err).Msg("skipping invalid batch url")
			invalid = append(invalid, r)
			continue
		}
		valid = append(valid, normalized)
	}

	return valid, invalid
}

// Run refreshes every URL in order and returns one entry per URL. The
// configured delay is inserted between consecutive calls but never after the
// last one. A cancelled context stops the run early; entries for items
// already completed are returned.
func (b *BatchService) Run(ctx context.Context, urls []string, proxy string, onProgress func(BatchProgress)) []models.BatchEntry {
	entries := make([]models.BatchEntry, 0, len(urls))

	for i, targetURL := range urls {
		if ctx.Err() != nil {
			break
		}

		entry := models.BatchEntry{URL: targetURL, Status: models.BatchStatusFailed}

		result, err := b.refresher.Refresh(ctx, targetURL, proxy)
		if err == nil && result.Succeeded() {
			entry.Status = models.BatchStatusSuccess
			entry.Hostname = result.Hostname
			entry.CookiesCount = result.CookiesCount
			entry.TimeMS = result.GenerationTimeMS
		}

		entries = append(entries, entry)
		if onProgress != nil {
			onProgress(BatchProgress{Index: i + 1, Total: len(urls), Entry: entry})
		}

		if i < len(urls)-1 {
			b.sleep(b.delay)
		}
	}

	return entries
}
