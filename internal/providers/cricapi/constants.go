package cricapi

import "time"

const (
	defaultBaseURL     = "https://api.cricapi.com/v1"
	defaultPerPage     = 25
	defaultHTTPTimeout = 10 * time.Second
	defaultMaxPages    = 10
)
