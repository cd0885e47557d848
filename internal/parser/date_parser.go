package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseHistoryDate parses the date filter formats accepted by the history
// views. Supported formats:
// - dd/mm/yyyy (e.g., "15/01/2024")
// - yyyy-mm-dd (e.g., "2024-01-15")
// - "today", "yesterday"
// - "X days ago" (e.g., "3 days ago")
// An empty input means no filter and returns nil.
func ParseHistoryDate(input string) (*time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return nil, nil
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "today":
		return &today, nil
	case "yesterday":
		d := today.AddDate(0, 0, -1)
		return &d, nil
	}

	if d, err := parseDaysAgo(input, today); err == nil {
		return d, nil
	}
	if d, err := parseAbsoluteDate(input); err == nil {
		return d, nil
	}

	return nil, fmt.Errorf("invalid date %q. Use dd/mm/yyyy, yyyy-mm-dd, today, yesterday or 'X days ago'", input)
}

var daysAgoRegex = regexp.MustCompile(`^(\d+)\s+days?\s+ago$`)

func parseDaysAgo(input string, today time.Time) (*time.Time, error) {
	matches := daysAgoRegex.FindStringSubmatch(input)
	if len(matches) != 2 {
		return nil, fmt.Errorf("not a relative date")
	}
	days, err := strconv.Atoi(matches[1])
	if err != nil || days < 0 || days > 3650 {
		return nil, fmt.Errorf("days must be between 0 and 3650")
	}
	d := today.AddDate(0, 0, -days)
	return &d, nil
}

func parseAbsoluteDate(input string) (*time.Time, error) {
	for _, layout := range []string{"02/01/2006", "2006-01-02"} {
		if parsed, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("not an absolute date")
}
