package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDelay turns a spoken time phrase like "in 10 seconds" or "5 minutes"
// into a duration. The first integer token is the count; the unit is found by
// substring containment, so "minutes", "minute" and "a minute from now" all
// resolve the same way. Anything without a recognized unit fails.
func ParseDelay(phrase string) (time.Duration, error) {
	lowered := strings.ToLower(strings.TrimSpace(phrase))
	if lowered == "" {
		return 0, fmt.Errorf("empty time phrase")
	}

	var unit time.Duration
	switch {
	case strings.Contains(lowered, "second"):
		unit = time.Second
	case strings.Contains(lowered, "minute"):
		unit = time.Minute
	case strings.Contains(lowered, "hour"):
		unit = time.Hour
	default:
		return 0, fmt.Errorf("no time unit in %q", phrase)
	}

	count, err := leadingCount(lowered)
	if err != nil {
		return 0, fmt.Errorf("parse count in %q: %w", phrase, err)
	}

	return time.Duration(count) * unit, nil
}

// leadingCount returns the first integer token of the phrase. Speech
// recognizers usually emit "in 10 seconds" or "10 seconds", so we scan
// tokens rather than insisting the number comes first.
func leadingCount(lowered string) (int, error) {
	for _, tok := range strings.Fields(lowered) {
		if n, err := strconv.Atoi(tok); err == nil {
			if n <= 0 {
				return 0, fmt.Errorf("count must be positive, got %d", n)
			}
			return n, nil
		}
	}
	return 0, fmt.Errorf("no number found")
}
