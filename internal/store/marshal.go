package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/katas/internal/canon"
)

// EncodeInput returns the canonical JSON of a case input and its
// content hash.
func EncodeInput(v any) (json.RawMessage, string, error) {
	data, err := canon.Marshal(v)
	if err != nil {
		return nil, "", fmt.Errorf("marshal input: %w", err)
	}
	hash, err := canon.Hash(canon.DomainCaseInput, v)
	if err != nil {
		return nil, "", err
	}
	return data, hash, nil
}

// EncodeOutput returns the canonical JSON of a kata result. A nil value
// encodes as null.
func EncodeOutput(v any) (json.RawMessage, error) {
	data, err := canon.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal output: %w", err)
	}
	return data, nil
}

func rawOrNull(data json.RawMessage) string {
	if len(data) == 0 {
		return "null"
	}
	return string(data)
}

const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse started_at %q: %w", s, err)
	}
	return t, nil
}
