// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"net/url"
	"strings"
)

// Errors returned by the URL helpers. They abort the current user action
// only; callers re-prompt instead of exiting.
var (
	ErrEmptyURL     = errors.New("url must not be empty")
	ErrInvalidURL   = errors.New("url must include scheme and host")
	ErrInvalidProxy = errors.New("proxy must start with http://, https://, socks4:// or socks5://")
)

var proxySchemes = []string{"http://", "https://", "socks4://", "socks5://"}

// NormalizeTargetURL prepares a raw user-typed address for the refresh
// server: whitespace is trimmed, a missing http/https prefix is replaced
// with "https://" (exactly once), and the result must parse with both a
// scheme and a host. Pure function, no network access.
func NormalizeTargetURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyURL
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", ErrInvalidURL
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	return raw, nil
}

// ValidateProxyURL checks that raw carries one of the proxy schemes the
// refresh server accepts. An empty string is valid and means "no proxy".
func ValidateProxyURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, scheme := range proxySchemes {
		if strings.HasPrefix(raw, scheme) {
			return nil
		}
	}

	return ErrInvalidProxy
}

// Hostname extracts the host part of an absolute URL for display and
// report-file naming. Returns "-" if rawURL cannot be parsed.
func Hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "-"
	}
	return u.Host
}
