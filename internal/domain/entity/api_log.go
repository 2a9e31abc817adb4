package entity

import "time"

// APILog represents a stored log entry for a call to the eSignatures.io API
type APILog struct {
	ID           int64     `json:"id"`
	RequestID    string    `json:"request_id"`
	Operation    string    `json:"operation"`
	Endpoint     string    `json:"endpoint"`
	Method       string    `json:"method"`
	RequestBody  string    `json:"request_body"`
	ResponseBody string    `json:"response_body"`
	StatusCode   int       `json:"status_code"`
	Duration     int64     `json:"duration_ms"`
	Error        string    `json:"error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
