package models

// StatusSuccess is the status value the refresh server reports when a
// hostname's cookies were regenerated successfully.
const StatusSuccess = "success"

// RefreshResult is the response body of POST /cache/refresh.
//
// The struct is read-only on the client side: it is decoded, displayed and
// optionally written to a report file, never mutated or sent back.
type RefreshResult struct {
	Status           string `json:"status"`
	Hostname         string `json:"hostname"`
	CookiesCount     int    `json:"cookies_count"`
	UserAgent        string `json:"user_agent"`
	GenerationTimeMS int64  `json:"generation_time_ms"`
}

// Succeeded reports whether the server marked the refresh as successful.
func (r RefreshResult) Succeeded() bool {
	return r.Status == StatusSuccess
}
