package output

import (
	"strconv"
)

// LineFormatter renders selected lines for `gofile lines`.
type LineFormatter struct {
	styles      Styles
	lineNumbers bool
}

// NewLineFormatter creates a LineFormatter.
func NewLineFormatter(styles Styles, lineNumbers bool) *LineFormatter {
	return &LineFormatter{
		styles:      styles,
		lineNumbers: lineNumbers,
	}
}

// Format appends one rendered line to buf and returns the result.
// positions are start/end byte offsets within text to highlight.
func (f *LineFormatter) Format(buf []byte, num int, text string, positions [][2]int) []byte {
	if f.lineNumbers {
		buf = f.appendLineNum(buf, num)
	}

	if !f.styles.Enabled() || len(positions) == 0 {
		buf = append(buf, text...)
		return append(buf, '\n')
	}

	prev := 0
	for _, pos := range positions {
		start, end := pos[0], pos[1]
		if start > len(text) {
			break
		}
		if end > len(text) {
			end = len(text)
		}
		if start > prev {
			buf = append(buf, text[prev:start]...)
		}
		buf = append(buf, f.styles.Match.Render(text[start:end])...)
		prev = end
	}
	if prev < len(text) {
		buf = append(buf, text[prev:]...)
	}
	return append(buf, '\n')
}

// FormatInvalid appends a placeholder for a line that could not be decoded.
func (f *LineFormatter) FormatInvalid(buf []byte, num int) []byte {
	if f.lineNumbers {
		buf = f.appendLineNum(buf, num)
	}
	const msg = "<invalid UTF-8>"
	if f.styles.Enabled() {
		buf = append(buf, f.styles.Invalid.Render(msg)...)
	} else {
		buf = append(buf, msg...)
	}
	return append(buf, '\n')
}

func (f *LineFormatter) appendLineNum(buf []byte, num int) []byte {
	if !f.styles.Enabled() {
		buf = strconv.AppendInt(buf, int64(num), 10)
		return append(buf, ':')
	}
	buf = append(buf, f.styles.LineNum.Render(strconv.Itoa(num))...)
	return append(buf, f.styles.Separator.Render(":")...)
}
