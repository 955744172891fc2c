package notification

import "time"

// Notification summarizes one request with unseen activity: its status and
// the span of its requested days.
type Notification struct {
	RequestID    int       `json:"request_id"`
	Status       string    `json:"status"`
	EarliestDate time.Time `json:"earliest_date"`
	LatestDate   time.Time `json:"latest_date"`
}
