// Package jsonutil provides shared helpers for JSON encode/decode with
// contextual error wrapping.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// MarshalWithContext marshals v with indentation and wraps any error with
// the provided context message.
func MarshalWithContext(v interface{}, context string) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}
	return data, nil
}

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}
