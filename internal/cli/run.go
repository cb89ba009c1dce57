package cli

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/dl/gofile/internal/fileio"
	"github.com/dl/gofile/internal/matcher"
	"github.com/dl/gofile/internal/output"
)

// Exit codes: 0 = success, 1 = negative result, 2 = error.
const (
	exitOK       = 0
	exitNegative = 1
	exitError    = 2
)

// flushSize is the buffered output size at which `lines` writes to stdout.
const flushSize = 64 * 1024

// runCat writes each file to w. Unreadable files are logged and skipped.
func runCat(paths []string, text bool, w *output.Writer, logger *log.Logger) int {
	failed := false
	for _, path := range paths {
		var data []byte
		if text {
			s, err := fileio.GetText(path)
			if err != nil {
				logger.Error("read failed", "path", path, "err", err)
				failed = true
				continue
			}
			data = []byte(s)
		} else {
			var err error
			data, err = fileio.Get(path)
			if err != nil {
				logger.Error("read failed", "path", path, "err", err)
				failed = true
				continue
			}
		}
		if _, err := w.Write(data); err != nil {
			logger.Error("write failed", "err", err)
			return exitError
		}
	}
	if failed {
		return exitError
	}
	return exitOK
}

// runPut replaces path with everything read from r.
func runPut(path string, r io.Reader, text bool, logger *log.Logger) int {
	data, err := io.ReadAll(r)
	if err != nil {
		logger.Error("read stdin failed", "err", err)
		return exitError
	}

	if text {
		if !utf8.Valid(data) {
			logger.Error("refusing to write", "path", path, "err", fileio.ErrInvalidUTF8)
			return exitError
		}
		err = fileio.PutText(path, string(data))
	} else {
		err = fileio.Put(path, data)
	}
	if err != nil {
		logger.Error("write failed", "path", path, "err", err)
		return exitError
	}
	logger.Debug("wrote file", "path", path, "bytes", len(data))
	return exitOK
}

// runCopy copies src to dst, overwriting dst.
func runCopy(src, dst string, logger *log.Logger) int {
	data, err := fileio.Get(src)
	if err != nil {
		logger.Error("read failed", "path", src, "err", err)
		return exitError
	}
	if err := fileio.Put(dst, data); err != nil {
		logger.Error("write failed", "path", dst, "err", err)
		return exitError
	}
	logger.Debug("copied file", "src", src, "dst", dst, "bytes", len(data))
	return exitOK
}

// runLines prints the lines of path, filtered by m when it is non-nil.
func runLines(path string, m matcher.Matcher, f *output.LineFormatter, onInvalid InvalidLineMode, w *output.Writer, logger *log.Logger) int {
	buf := make([]byte, 0, flushSize)
	flush := func() bool {
		if _, err := w.Write(buf); err != nil {
			logger.Error("write failed", "err", err)
			return false
		}
		buf = buf[:0]
		return true
	}

	selected := 0
	for line := range fileio.Lines(path) {
		if line.Err != nil {
			if !errors.Is(line.Err, fileio.ErrInvalidUTF8) || onInvalid == InvalidStop || onInvalid == "" {
				flush()
				logger.Error("read failed", "path", path, "line", line.Num, "err", line.Err)
				return exitError
			}
			logger.Warn("invalid UTF-8", "path", path, "line", line.Num)
			if onInvalid == InvalidMark {
				buf = f.FormatInvalid(buf, line.Num)
			}
			continue
		}

		var positions [][2]int
		if m != nil {
			pos, ok := m.MatchLine([]byte(line.Text))
			if !ok {
				continue
			}
			positions = pos
		}
		selected++
		buf = f.Format(buf, line.Num, line.Text, positions)
		if len(buf) >= flushSize && !flush() {
			return exitError
		}
	}
	if !flush() {
		return exitError
	}

	if m != nil && selected == 0 {
		return exitNegative
	}
	return exitOK
}

// runCheck reports whether each path holds valid UTF-8 text. Paths matched
// by ign are skipped.
func runCheck(paths []string, ign pathMatcher, styles output.Styles, w *output.Writer, logger *log.Logger) int {
	failed, invalid := false, false
	var buf []byte
	for _, path := range paths {
		if ign != nil && ign.MatchesPath(path) {
			logger.Debug("ignored", "path", path)
			continue
		}

		_, err := fileio.GetText(path)
		switch {
		case err == nil:
			buf = append(buf, path...)
			buf = append(buf, ": ok\n"...)
		case errors.Is(err, fileio.ErrInvalidUTF8):
			invalid = true
			buf = append(buf, path...)
			buf = append(buf, ": "...)
			if styles.Enabled() {
				buf = append(buf, styles.Invalid.Render("invalid UTF-8")...)
			} else {
				buf = append(buf, "invalid UTF-8"...)
			}
			buf = append(buf, '\n')
		default:
			logger.Error("read failed", "path", path, "err", err)
			failed = true
		}
	}
	if _, err := w.Write(buf); err != nil {
		logger.Error("write failed", "err", err)
		return exitError
	}

	switch {
	case failed:
		return exitError
	case invalid:
		return exitNegative
	}
	return exitOK
}

// pathMatcher is satisfied by *ignore.GitIgnore.
type pathMatcher interface {
	MatchesPath(path string) bool
}
