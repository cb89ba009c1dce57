package matcher

import (
	"fmt"
	"strings"
)

// NewMatcher creates the appropriate Matcher based on the provided options.
// Selection logic:
//   - Fixed, case-sensitive, 1 pattern -> FixedMatcher
//   - Fixed otherwise -> PCREMatcher over the quoted literals
//   - Otherwise -> PCREMatcher, patterns joined with |
func NewMatcher(patterns []string, fixed bool, ignoreCase bool, invert bool) (Matcher, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no patterns provided")
	}

	if fixed && !ignoreCase && len(patterns) == 1 {
		return NewFixedMatcher(patterns[0], invert), nil
	}

	parts := make([]string, len(patterns))
	for i, p := range patterns {
		if fixed {
			p = quoteLiteral(p)
		}
		parts[i] = "(?:" + p + ")"
	}
	pattern := parts[0]
	if len(parts) > 1 {
		pattern = strings.Join(parts, "|")
	}

	m, err := NewPCREMatcher(pattern, ignoreCase, invert)
	if err != nil {
		return nil, fmt.Errorf("compile pattern: %w", err)
	}
	return m, nil
}
