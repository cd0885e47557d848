package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParsedSet represents a set parsed from quick-entry notation.
type ParsedSet struct {
	Weight float64
	Reps   int
}

var setNotationRegex = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*[xX]\s*(\d+)$`)

// ParseSetNotation parses the WEIGHTxREPS shorthand used by quick logging,
// e.g. "80x8", "102.5x5", "7,5x12" (comma decimals accepted).
func ParseSetNotation(input string) (*ParsedSet, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty set notation")
	}

	matches := setNotationRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid set notation %q. Use WEIGHTxREPS, e.g. 80x8", input)
	}

	weight, err := strconv.ParseFloat(strings.ReplaceAll(matches[1], ",", "."), 64)
	if err != nil || weight <= 0 {
		return nil, fmt.Errorf("weight must be a positive number")
	}

	reps, err := strconv.Atoi(matches[2])
	if err != nil || reps <= 0 {
		return nil, fmt.Errorf("reps must be a positive integer")
	}
	if reps > 1000 {
		return nil, fmt.Errorf("reps must be at most 1000")
	}

	return &ParsedSet{Weight: weight, Reps: reps}, nil
}
