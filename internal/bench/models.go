package bench

import "time"

type Result struct {
	File     string
	Language string
	Duration time.Duration
	Err      error
	Size     int64
	// ServerTime is the responseTime reported by the server.
	ServerTime time.Duration
}

type Agg struct {
	Count      int
	Total      time.Duration
	ServerTime time.Duration
	TotalBytes int64
}
