// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/cf-cookie-client/internal/render"
	"github.com/MKhiriev/cf-cookie-client/internal/report"
	"github.com/MKhiriev/cf-cookie-client/internal/service"
	"github.com/MKhiriev/cf-cookie-client/internal/utils"
)

// QuickSession is the minimal line-mode flow: prompt for a URL, refresh,
// show the result, optionally save, repeat. It reads from in and writes to
// out so the loop is testable without a terminal.
type QuickSession struct {
	refresh *service.RefreshService
	reports *report.Writer

	in  *bufio.Scanner
	out io.Writer
}

func NewQuickSession(refresh *service.RefreshService, reports *report.Writer, in io.Reader, out io.Writer) *QuickSession {
	return &QuickSession{
		refresh: refresh,
		reports: reports,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops until the user quits or input ends. A failed refresh is
// reported and the user is offered a retry; nothing in this loop is fatal.
func (q *QuickSession) Run(ctx context.Context) error {
	fmt.Fprintln(q.out, "Quick cookie refresh")
	fmt.Fprintln(q.out, "Type q to quit.")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		raw, ok := q.prompt("\nURL: ")
		if !ok {
			return nil
		}
		switch strings.ToLower(raw) {
		case "q", "quit", "exit":
			fmt.Fprintln(q.out, "Bye!")
			return nil
		}

		targetURL, err := utils.NormalizeTargetURL(raw)
		if err != nil {
			fmt.Fprintln(q.out, "Invalid URL, try again (e.g. example.com).")
			continue
		}

		proxy := q.askProxy()

		fmt.Fprintf(q.out, "\nRefreshing cookies for %s (this may take 10-30 seconds)...\n", targetURL)

		result, err := q.refresh.Refresh(ctx, targetURL, proxy)
		if err != nil {
			fmt.Fprintln(q.out, "Refresh failed: "+render.RequestError(err))
			if !q.askYesNo("Retry? (y/n): ") {
				fmt.Fprintln(q.out, "Bye!")
				return nil
			}
			continue
		}

		fmt.Fprintln(q.out, render.RefreshResult(result))

		if q.askYesNo("Save cookies to file? (y/n): ") {
			path, saveErr := q.reports.SaveQuick(targetURL, result)
			if saveErr != nil {
				fmt.Fprintln(q.out, "Save failed: "+saveErr.Error())
			} else {
				fmt.Fprintln(q.out, "Saved to "+path)
			}
		}

		if !q.askYesNo("Refresh another URL? (y/n): ") {
			fmt.Fprintln(q.out, "Bye!")
			return nil
		}
	}
}

func (q *QuickSession) askProxy() string {
	if !q.askYesNo("Use a proxy? (y/n): ") {
		return ""
	}

	raw, ok := q.prompt("Proxy URL: ")
	if !ok {
		return ""
	}

	if err := utils.ValidateProxyURL(raw); err != nil {
		fmt.Fprintln(q.out, "Invalid proxy, continuing without one.")
		return ""
	}
	return raw
}

func (q *QuickSession) prompt(label string) (string, bool) {
	fmt.Fprint(q.out, label)
	if !q.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(q.in.Text()), true
}

func (q *QuickSession) askYesNo(label string) bool {
	answer, ok := q.prompt(label)
	if !ok {
		return false
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

// RunQuick starts the quick line-mode tool on stdin/stdout.
func (a *App) RunQuick(ctx context.Context) error {
	if !a.CheckServer(ctx) {
		return nil
	}

	return NewQuickSession(a.refresh, a.reports, os.Stdin, os.Stdout).Run(ctx)
}
