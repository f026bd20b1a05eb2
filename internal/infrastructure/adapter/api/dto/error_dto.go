package dto

import "time"

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Status    int            `json:"status"`
	Error     string         `json:"error"`
	Message   string         `json:"message"`
	Code      int            `json:"code"`
	Timestamp time.Time      `json:"timestamp"`
	Path      string         `json:"path"`
	Details   map[string]any `json:"details,omitempty"`
}
