package utils

import (
	"fmt"

	"github.com/goccy/go-json"
)

// SingletonError is returned when a mapping expected to hold exactly one
// entry holds zero or several
type SingletonError struct {
	Field string
	Count int
}

func (e *SingletonError) Error() string {
	return fmt.Sprintf("expected exactly one entry under %q, found %d", e.Field, e.Count)
}

// SoleValue returns the only value of a single-entry map. The key is not
// known in advance, which is the case for the service-generated offer and
// rate codes in a price list document.
func SoleValue[K comparable, V any](field string, m map[K]V) (V, error) {
	var zero V
	if len(m) != 1 {
		return zero, &SingletonError{Field: field, Count: len(m)}
	}
	for _, v := range m {
		return v, nil
	}
	return zero, &SingletonError{Field: field}
}

// ParseJSON decodes a JSON document into v
func ParseJSON(jsonStr string, v any) error {
	if err := json.Unmarshal([]byte(jsonStr), v); err != nil {
		return fmt.Errorf("error parsing JSON: %w", err)
	}
	return nil
}
