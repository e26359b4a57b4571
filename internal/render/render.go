// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render contains the pure text formatters shared by all three
// tools. Functions never mutate their input and substitute "-" for missing
// optional fields, so they are safe to call on partially filled responses.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/cf-cookie-client/internal/utils"
	"github.com/MKhiriev/cf-cookie-client/models"
)

const divider = "──────────────────────────────────────────────────────"

// maxCookieValueLen is the display cutoff for cookie values; longer values
// are truncated with an ellipsis.
const maxCookieValueLen = 40

// maxOtherCookies caps the "other cookies" listing; the remainder is shown
// as a count.
const maxOtherCookies = 5

// RefreshResult renders a successful refresh as a labeled block with the
// elapsed time in both milliseconds and seconds.
func RefreshResult(res models.RefreshResult) string {
	var b strings.Builder

	b.WriteString(divider)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Hostname:        %s\n", valueOrDash(res.Hostname))
	fmt.Fprintf(&b, "Cookies:         %d\n", res.CookiesCount)
	fmt.Fprintf(&b, "User-Agent:      %s\n", valueOrDash(res.UserAgent))
	fmt.Fprintf(&b, "Generation time: %d ms (%.1f s)\n", res.GenerationTimeMS, float64(res.GenerationTimeMS)/1000)
	b.WriteString(divider)

	return b.String()
}

// Cookies renders a cookie set for targetURL, grouped into Cloudflare
// cookies and everything else. Names are sorted so output is deterministic;
// the "other" group is capped at maxOtherCookies entries with a remainder
// count.
func Cookies(targetURL string, cookies map[string]string) string {
	cfNames := make([]string, 0, len(cookies))
	otherNames := make([]string, 0, len(cookies))
	for name := range cookies {
		if models.IsCloudflareCookie(name) {
			cfNames = append(cfNames, name)
		} else {
			otherNames = append(otherNames, name)
		}
	}
	sort.Strings(cfNames)
	sort.Strings(otherNames)

	var b strings.Builder

	b.WriteString(divider)
	b.WriteString("\n")
	fmt.Fprintf(&b, "URL:     %s\n", utils.Hostname(targetURL))
	fmt.Fprintf(&b, "Cookies: %d\n", len(cookies))

	if len(cfNames) > 0 {
		b.WriteString("\nCloudflare cookies:\n")
		for _, name := range cfNames {
			fmt.Fprintf(&b, "  • %s: %s\n", name, truncateValue(cookies[name]))
		}
	}

	if len(otherNames) > 0 {
		fmt.Fprintf(&b, "\nOther cookies (%d):\n", len(otherNames))
		shown := otherNames
		if len(shown) > maxOtherCookies {
			shown = shown[:maxOtherCookies]
		}
		for _, name := range shown {
			fmt.Fprintf(&b, "  • %s: %s\n", name, truncateValue(cookies[name]))
		}
		if rest := len(otherNames) - maxOtherCookies; rest > 0 {
			fmt.Fprintf(&b, "  ... %d more\n", rest)
		}
	}

	b.WriteString(divider)

	return b.String()
}

// BatchSummary renders the reduction over a finished batch run. Average and
// total times only appear when at least one item succeeded.
func BatchSummary(entries []models.BatchEntry) string {
	s := models.Summarize(entries)

	var b strings.Builder

	b.WriteString(divider)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total:   %d\n", s.Total)
	fmt.Fprintf(&b, "Success: %d\n", s.Success)
	fmt.Fprintf(&b, "Failed:  %d\n", s.Failed)

	if s.Success > 0 {
		fmt.Fprintf(&b, "\nAverage time: %d ms\n", s.AvgTimeMS)
		fmt.Fprintf(&b, "Total time:   %d ms (%.1f s)\n", s.TotalTimeMS, float64(s.TotalTimeMS)/1000)
	}

	b.WriteString(divider)

	return b.String()
}

// BatchEntryLine renders a single batch item as a one-line progress note.
func BatchEntryLine(p int, total int, entry models.BatchEntry) string {
	if entry.Status == models.BatchStatusSuccess {
		return fmt.Sprintf("[%d/%d] %s - %d cookies - %d ms", p, total, entry.Hostname, entry.CookiesCount, entry.TimeMS)
	}
	return fmt.Sprintf("[%d/%d] %s - failed", p, total, utils.Hostname(entry.URL))
}

// CacheStats renders the server cache snapshot.
func CacheStats(stats models.CacheStats) string {
	var b strings.Builder

	b.WriteString(divider)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Cached entries:  %d\n", stats.CachedEntries)
	fmt.Fprintf(&b, "Total hostnames: %d\n", stats.TotalHostnames)

	if len(stats.Hostnames) > 0 {
		b.WriteString("\nHostnames:\n")
		for _, h := range stats.Hostnames {
			fmt.Fprintf(&b, "  • %s\n", h)
		}
	}

	b.WriteString(divider)

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// truncateValue cuts on rune boundaries so multi-byte values survive the
// display cutoff intact.
func truncateValue(v string) string {
	runes := []rune(v)
	if len(runes) <= maxCookieValueLen {
		return v
	}
	return string(runes[:maxCookieValueLen]) + "..."
}
