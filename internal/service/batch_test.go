// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/cf-cookie-client/internal/logger"
	"github.com/MKhiriev/cf-cookie-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRefresher records call order and returns scripted results per URL.
type fakeRefresher struct {
	calls   []string
	results map[string]models.RefreshResult
	errs    map[string]error
}

func (f *fakeRefresher) Refresh(_ context.Context, targetURL, _ string) (models.RefreshResult, error) {
	f.calls = append(f.calls, targetURL)
	if err, ok := f.errs[targetURL]; ok {
		return models.RefreshResult{}, err
	}
	return f.results[targetURL], nil
}

func newTestBatch(refresher Refresher) (*BatchService, *[]time.Duration) {
	b := NewBatchService(refresher, 2*time.Second, logger.Nop())

	var pauses []time.Duration
	b.sleep = func(d time.Duration) { pauses = append(pauses, d) }
	return b, &pauses
}

func TestBatchRun_SequentialWithSinglePause(t *testing.T) {
	refresher := &fakeRefresher{
		results: map[string]models.RefreshResult{
			"https://a.com": {Status: "success", Hostname: "a.com", CookiesCount: 3, GenerationTimeMS: 1000},
			"https://b.com": {Status: "success", Hostname: "b.com", CookiesCount: 4, GenerationTimeMS: 3000},
		},
	}
	b, pauses := newTestBatch(refresher)

	entries := b.Run(context.Background(), []string{"https://a.com", "https://b.com"}, "", nil)

	// Exactly two sequential calls in input order, exactly one 2s pause.
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, refresher.calls)
	require.Len(t, *pauses, 1)
	assert.Equal(t, 2*time.Second, (*pauses)[0])

	require.Len(t, entries, 2)
	summary := models.Summarize(entries)
	assert.Equal(t, 2, summary.Success)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, int64(4000), summary.TotalTimeMS)
	assert.Equal(t, int64(2000), summary.AvgTimeMS)
}

func TestBatchRun_FailedItemKeepsOrder(t *testing.T) {
	refresher := &fakeRefresher{
		results: map[string]models.RefreshResult{
			"https://a.com": {Status: "success", Hostname: "a.com", CookiesCount: 3, GenerationTimeMS: 1200},
		},
		errs: map[string]error{
			"https://b.com": errors.New("boom"),
		},
	}
	b, _ := newTestBatch(refresher)

	entries := b.Run(context.Background(), []string{"https://a.com", "https://b.com"}, "", nil)

	require.Len(t, entries, 2)
	assert.Equal(t, models.BatchStatusSuccess, entries[0].Status)
	assert.Equal(t, models.BatchStatusFailed, entries[1].Status)
	// Failed entries carry no result fields.
	assert.Empty(t, entries[1].Hostname)
	assert.Zero(t, entries[1].TimeMS)

	summary := models.Summarize(entries)
	assert.Equal(t, 1, summary.Success)
	assert.Equal(t, 1, summary.Failed)
}

func TestBatchRun_NonSuccessStatusCountsAsFailed(t *testing.T) {
	refresher := &fakeRefresher{
		results: map[string]models.RefreshResult{
			"https://a.com": {Status: "error"},
		},
	}
	b, _ := newTestBatch(refresher)

	entries := b.Run(context.Background(), []string{"https://a.com"}, "", nil)

	require.Len(t, entries, 1)
	assert.Equal(t, models.BatchStatusFailed, entries[0].Status)
}

func TestBatchRun_NoPauseAfterLastItem(t *testing.T) {
	refresher := &fakeRefresher{results: map[string]models.RefreshResult{
		"https://a.com": {Status: "success"},
	}}
	b, pauses := newTestBatch(refresher)

	b.Run(context.Background(), []string{"https://a.com"}, "", nil)

	assert.Empty(t, *pauses)
}

func TestBatchRun_ProgressCallback(t *testing.T) {
	refresher := &fakeRefresher{results: map[string]models.RefreshResult{
		"https://a.com": {Status: "success", Hostname: "a.com"},
		"https://b.com": {Status: "success", Hostname: "b.com"},
	}}
	b, _ := newTestBatch(refresher)

	var seen []BatchProgress
	b.Run(context.Background(), []string{"https://a.com", "https://b.com"}, "", func(p BatchProgress) {
		seen = append(seen, p)
	})

	require.Len(t, seen, 2)
	assert.Equal(t, 1, seen[0].Index)
	assert.Equal(t, 2, seen[0].Total)
	assert.Equal(t, "a.com", seen[0].Entry.Hostname)
	assert.Equal(t, 2, seen[1].Index)
}

func TestBatchRun_CancelledContextStopsEarly(t *testing.T) {
	refresher := &fakeRefresher{results: map[string]models.RefreshResult{}}
	b, _ := newTestBatch(refresher)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries := b.Run(ctx, []string{"https://a.com", "https://b.com"}, "", nil)

	assert.Empty(t, entries)
	assert.Empty(t, refresher.calls)
}

func TestPrepare(t *testing.T) {
	b, _ := newTestBatch(&fakeRefresher{})

	valid, invalid := b.Prepare([]string{"a.com", "https://", "b.com", "   "})

	assert.Equal(t, []string{"https://a.com", "https://b.com"}, valid)
	assert.Equal(t, []string{"https://", "   "}, invalid)
}
