package domain

import "time"

// SortRequest describes one sort run.
type SortRequest struct {
	Input  string
	Output string
	Count  int
	Mode   string

	// Exact fails the run when the input holds fewer than Count records.
	Exact bool
}

// SortReport summarizes a completed sort run.
type SortReport struct {
	RunID     string    `json:"run_id"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Mode      string    `json:"mode"`
	Ordering  string    `json:"ordering"`
	Requested int       `json:"requested"`
	Loaded    int       `json:"loaded"`
	Truncated bool      `json:"truncated"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}
