package matcher

import "bytes"

// FixedMatcher finds a literal byte string, case-sensitively.
type FixedMatcher struct {
	pattern []byte
	invert  bool
}

// NewFixedMatcher creates a FixedMatcher for pattern.
func NewFixedMatcher(pattern string, invert bool) *FixedMatcher {
	return &FixedMatcher{pattern: []byte(pattern), invert: invert}
}

func (m *FixedMatcher) MatchLine(line []byte) ([][2]int, bool) {
	if len(m.pattern) == 0 {
		// An empty pattern matches every line without highlighting anything.
		return nil, !m.invert
	}

	var locs [][2]int
	pos := 0
	for pos <= len(line)-len(m.pattern) {
		idx := bytes.Index(line[pos:], m.pattern)
		if idx < 0 {
			break
		}
		start := pos + idx
		locs = append(locs, [2]int{start, start + len(m.pattern)})
		pos = start + len(m.pattern)
	}
	if m.invert {
		return nil, len(locs) == 0
	}
	return locs, len(locs) > 0
}
