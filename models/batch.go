// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Batch entry statuses. Invalid URLs are discarded before the batch starts
// and never produce an entry.
const (
	BatchStatusSuccess = "success"
	BatchStatusFailed  = "failed"
)

// BatchEntry is one item of a batch refresh run, accumulated in input order.
// Hostname, CookiesCount and TimeMS are only populated for successful items.
type BatchEntry struct {
	URL          string `json:"url"`
	Hostname     string `json:"hostname,omitempty"`
	CookiesCount int    `json:"cookies_count,omitempty"`
	TimeMS       int64  `json:"time_ms,omitempty"`
	Status       string `json:"status"`
}

// BatchSummary is the reduction over a finished batch run: plain counts plus
// total and average generation time over the successful items only.
type BatchSummary struct {
	Total       int
	Success     int
	Failed      int
	TotalTimeMS int64
	AvgTimeMS   int64
}

// Summarize folds entries into a [BatchSummary]. It is a straightforward
// reduction; no estimation or weighting is involved.
func Summarize(entries []BatchEntry) BatchSummary {
	s := BatchSummary{Total: len(entries)}

	for _, e := range entries {
		if e.Status != BatchStatusSuccess {
			s.Failed++
			continue
		}
		s.Success++
		s.TotalTimeMS += e.TimeMS
	}

	if s.Success > 0 {
		s.AvgTimeMS = s.TotalTimeMS / int64(s.Success)
	}

	return s
}
