package fileio

import (
	"bufio"
	"bytes"
	"fmt"
	"iter"
	"os"
	"unicode/utf8"
)

// MaxLineSize bounds a single line. Longer lines end iteration with
// bufio.ErrTooLong.
const MaxLineSize = 64 * 1024 * 1024

// Line is a single line read from a file.
// Err is set when the line is not valid UTF-8 (Text is then empty) or when
// reading stopped; in the latter case it is the last Line yielded.
type Line struct {
	Text   string
	Num    int
	Offset int64
	Err    error
}

// Lines returns a sequence over the lines of the file at path, with line
// terminators stripped. The file is opened when iteration starts and closed
// when it ends, including when the caller stops early.
//
// A line that is not valid UTF-8 yields a Line with Err wrapping
// ErrInvalidUTF8 and iteration continues. Open and read failures yield a
// final Line carrying the error.
func Lines(path string) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		fd, err := openRead(path)
		if err != nil {
			yield(Line{Err: fmt.Errorf("open %s: %w", path, err)})
			return
		}
		f := os.NewFile(uintptr(fd), path)
		defer f.Close()

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
		scanner.Split(scanTerminatedLines)

		lineNum := 0
		var offset int64
		for scanner.Scan() {
			lineNum++
			raw := scanner.Bytes()
			line := Line{Num: lineNum, Offset: offset}
			offset += int64(len(raw))

			text := raw
			if t, ok := bytes.CutSuffix(raw, []byte{'\n'}); ok {
				text = bytes.TrimSuffix(t, []byte{'\r'})
			}
			if utf8.Valid(text) {
				line.Text = string(text)
			} else {
				line.Err = fmt.Errorf("%s:%d: %w", path, lineNum, ErrInvalidUTF8)
			}
			if !yield(line) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(Line{Num: lineNum + 1, Offset: offset, Err: fmt.Errorf("read %s: %w", path, err)})
		}
	}
}

// scanTerminatedLines splits like bufio.ScanLines but leaves the "\n" (and
// any "\r" before it) on the token. A final line without "\n" is returned
// as is, so a trailing "\r" there is data.
func scanTerminatedLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ReadLines reads all lines of the file at path.
// It stops at the first line that fails and returns that error.
func ReadLines(path string) ([]string, error) {
	var lines []string
	for line := range Lines(path) {
		if line.Err != nil {
			return nil, line.Err
		}
		lines = append(lines, line.Text)
	}
	return lines, nil
}
