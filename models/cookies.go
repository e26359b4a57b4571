package models

import "strings"

// CookiesResponse is the envelope returned by GET /cookies.
type CookiesResponse struct {
	Cookies map[string]string `json:"cookies"`
}

// IsCloudflareCookie reports whether name belongs to Cloudflare's own cookie
// namespace (`cf_` / `__cf` prefixes, e.g. cf_clearance, __cf_bm).
// The split is purely presentational; the server does not group cookies.
func IsCloudflareCookie(name string) bool {
	return strings.HasPrefix(name, "cf_") || strings.HasPrefix(name, "__cf")
}
