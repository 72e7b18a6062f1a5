package store

import (
	"encoding/json"
	"time"
)

// Check is one evaluation of a set of suites.
type Check struct {
	ID     string `json:"id"`
	Seq    int64  `json:"seq"`
	Source string `json:"source"`
	Filter string `json:"filter,omitempty"`

	// StartedAt is informational only; ordering always uses Seq.
	StartedAt time.Time `json:"started_at"`
}

// CheckSummary is a Check with its run counts.
type CheckSummary struct {
	Check
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Run is the outcome of one case within a check.
type Run struct {
	ID      string `json:"id"`
	CheckID string `json:"check_id"`
	Seq     int64  `json:"seq"`

	Suite string `json:"suite"`
	Case  string `json:"case"`
	Kind  string `json:"kind"`

	// InputHash addresses Input; equal inputs share a hash across checks.
	InputHash string          `json:"input_hash"`
	Input     json.RawMessage `json:"input"`

	// Output is the canonical JSON of what the kata produced, or null when it
	// returned an error.
	Output    json.RawMessage `json:"output"`
	ErrorKind string          `json:"error_kind,omitempty"`

	Pass    bool   `json:"pass"`
	Message string `json:"message,omitempty"`
}

// RunFilter narrows ListRuns. Zero fields match everything.
type RunFilter struct {
	CheckID    string
	Suite      string
	InputHash  string
	FailedOnly bool

	// Limit caps the number of rows; 0 means no limit.
	Limit int
}
