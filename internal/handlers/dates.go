package handlers

import (
	"errors"
	"fmt"
	"time"
)

const (
	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// parseDate accepts the formats the clients actually send: RFC3339,
// 'YYYY-MM-DD HH:MM:SS', or a bare date. Result is normalized to UTC.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'", s)
}

// dateRule adapts parseDate into an ozzo rule with a fixed client message.
func dateRule(msg string) func(value interface{}) error {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			// Required covers absence.
			return nil
		}
		if _, err := parseDate(s); err != nil {
			return errors.New(msg)
		}
		return nil
	}
}
