package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Field decoders for the detection batch schema. Each mirrors the original
// contract: a field may be its declared type or JSON null, and anything else
// rejects the element.

var jsonNull = []byte("null")

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

// stringOrNull decodes a field that must be a JSON string or null.
func stringOrNull(raw json.RawMessage, field string) (*string, error) {
	if isNull(raw) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%s must be a string or null", field)
	}
	return &s, nil
}

// numberOrNull decodes a field that must be a JSON number or null.
func numberOrNull(raw json.RawMessage, field string) (*float64, error) {
	if isNull(raw) {
		return nil, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s must be a number or null", field)
	}
	return &f, nil
}

// uuidOrNull decodes a field that must be a UUID string or null.
func uuidOrNull(raw json.RawMessage, field string) (*string, error) {
	s, err := stringOrNull(raw, field)
	if err != nil || s == nil {
		return s, err
	}
	if _, err := uuid.Parse(*s); err != nil {
		return nil, fmt.Errorf("%s must be a valid UUID", field)
	}
	return s, nil
}

// timestamp decodes a field that must be an RFC 3339 timestamp string.
func timestamp(raw json.RawMessage) (time.Time, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, fmt.Errorf("detected_at must be a timestamp string")
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("detected_at must be a valid RFC 3339 timestamp")
	}
	return ts.UTC(), nil
}
