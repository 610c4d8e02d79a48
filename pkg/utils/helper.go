package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// ParseID parses a path or query id. Only strict digit strings are accepted,
// rejected before any data-store access.
func ParseID(value string) (int64, error) {
	if !digitsOnly.MatchString(value) {
		return 0, fmt.Errorf("invalid id format: %q", value)
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id format: %q", value)
	}

	return id, nil
}

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 0 {
		return defaultValue
	}

	return result
}
