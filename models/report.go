package models

// RefreshReport is the JSON document persisted after a single successful
// refresh when the user confirms saving.
type RefreshReport struct {
	Timestamp        string `json:"timestamp"`
	RunID            string `json:"run_id"`
	URL              string `json:"url"`
	Hostname         string `json:"hostname"`
	CookiesCount     int    `json:"cookies_count"`
	UserAgent        string `json:"user_agent"`
	GenerationTimeMS int64  `json:"generation_time_ms"`
}

// BatchReport is the JSON document persisted after a batch run. Results keep
// the original input order, including failed items.
type BatchReport struct {
	Timestamp string       `json:"timestamp"`
	RunID     string       `json:"run_id"`
	Total     int          `json:"total"`
	Success   int          `json:"success"`
	Failed    int          `json:"failed"`
	Results   []BatchEntry `json:"results"`
}
