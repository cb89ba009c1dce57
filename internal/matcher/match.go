package matcher

// Matcher selects lines.
type Matcher interface {
	// MatchLine reports whether line is selected. For a selected line it also
	// returns the start/end byte offsets of each occurrence of the pattern,
	// which are empty for inverted matchers.
	MatchLine(line []byte) ([][2]int, bool)
}
