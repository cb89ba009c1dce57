package matcher

import (
	"strings"

	"go.elara.ws/pcre"
)

// PCREMatcher matches using PCRE2-compatible regexes via the pure Go pcre package.
// Supports lookahead, lookbehind, backreferences, atomic groups, and all PCRE2 features.
type PCREMatcher struct {
	re     *pcre.Regexp
	invert bool
}

// NewPCREMatcher creates a PCREMatcher from a PCRE2 pattern string.
func NewPCREMatcher(pattern string, ignoreCase bool, invert bool) (*PCREMatcher, error) {
	var opts pcre.CompileOption
	if ignoreCase {
		opts |= pcre.Caseless
	}

	re, err := pcre.CompileOpts(pattern, opts)
	if err != nil {
		return nil, err
	}

	return &PCREMatcher{
		re:     re,
		invert: invert,
	}, nil
}

func (m *PCREMatcher) MatchLine(line []byte) ([][2]int, bool) {
	ok := m.re.Match(line)
	if m.invert {
		return nil, !ok
	}
	if !ok {
		return nil, false
	}

	// FindAllIndex skips empty matches, so it only supplies highlight spans.
	found := m.re.FindAllIndex(line, -1)
	locs := make([][2]int, 0, len(found))
	for _, loc := range found {
		// Zero-width matches select the line but have nothing to highlight.
		if loc[1] > loc[0] {
			locs = append(locs, [2]int{loc[0], loc[1]})
		}
	}
	return locs, true
}

// quoteLiteral wraps s in \Q...\E so PCRE treats it literally.
func quoteLiteral(s string) string {
	return `\Q` + strings.ReplaceAll(s, `\E`, `\E\\E\Q`) + `\E`
}
