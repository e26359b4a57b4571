package models

// CacheStats is a read-only snapshot of the server's cookie cache,
// returned by GET /cache/stats.
type CacheStats struct {
	CachedEntries  int      `json:"cached_entries"`
	TotalHostnames int      `json:"total_hostnames"`
	Hostnames      []string `json:"hostnames"`
}
