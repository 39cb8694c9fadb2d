package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// marshalJSONList encodes a string-like slice as a JSON array for SQLite
// storage. A nil slice stores as "[]" so reads never see NULL.
func marshalJSONList[T ~string](values []T) (string, error) {
	if values == nil {
		values = []T{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encoding list: %w", err)
	}
	return string(raw), nil
}

func unmarshalJSONList[T ~string](raw string) ([]T, error) {
	if raw == "" {
		return nil, nil
	}
	var values []T
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a stored RFC3339 timestamp, tolerating empty or malformed
// values as the zero time.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
