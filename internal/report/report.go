// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report persists refresh results as human-readable JSON files.
// Persistence is strictly opt-in (the user confirms every save) and a
// failed write is reported, never fatal.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/cf-cookie-client/internal/utils"
	"github.com/MKhiriev/cf-cookie-client/models"
)

// filenameStamp is the timestamp layout embedded into report file names.
const filenameStamp = "20060102_150405"

// Writer writes report documents into a fixed output directory. File names
// embed the current timestamp (or the target hostname for quick saves) and
// are not user-configurable.
type Writer struct {
	dir string
	ids *utils.UUIDGenerator

	// now is swappable so tests get stable file names.
	now func() time.Time
}

func NewWriter(dir string) *Writer {
	return &Writer{
		dir: dir,
		ids: utils.NewUUIDGenerator(),
		now: time.Now,
	}
}

// SaveRefresh writes a single refresh result as
// cookie_refresh_<YYYYMMDD_HHMMSS>.json and returns the written path.
func (w *Writer) SaveRefresh(targetURL string, res models.RefreshResult) (string, error) {
	now := w.now()

	doc := models.RefreshReport{
		Timestamp:        now.Format(time.RFC3339),
		RunID:            w.ids.Generate(),
		URL:              targetURL,
		Hostname:         res.Hostname,
		CookiesCount:     res.CookiesCount,
		UserAgent:        res.UserAgent,
		GenerationTimeMS: res.GenerationTimeMS,
	}

	name := fmt.Sprintf("cookie_refresh_%s.json", now.Format(filenameStamp))
	return w.write(name, doc)
}

// SaveBatch writes a finished batch run as
// cookie_refresh_batch_<YYYYMMDD_HHMMSS>.json, including the aggregate
// counts and every entry in input order.
func (w *Writer) SaveBatch(entries []models.BatchEntry) (string, error) {
	now := w.now()
	summary := models.Summarize(entries)

	doc := models.BatchReport{
		Timestamp: now.Format(time.RFC3339),
		RunID:     w.ids.Generate(),
		Total:     summary.Total,
		Success:   summary.Success,
		Failed:    summary.Failed,
		Results:   entries,
	}

	name := fmt.Sprintf("cookie_refresh_batch_%s.json", now.Format(filenameStamp))
	return w.write(name, doc)
}

// SaveQuick writes the raw refresh result as cookie_<hostname>.json — the
// simplified tool's historical format, kept for compatibility with scripts
// that consume it.
func (w *Writer) SaveQuick(targetURL string, res models.RefreshResult) (string, error) {
	name := fmt.Sprintf("cookie_%s.json", utils.Hostname(targetURL))
	return w.write(name, res)
}

func (w *Writer) write(name string, doc any) (string, error) {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(w.dir, name)
	if err = os.WriteFile(path, payload, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return path, nil
}
