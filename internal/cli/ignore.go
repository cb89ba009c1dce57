package cli

import (
	"errors"
	"io/fs"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/dl/gofile/internal/fileio"
)

// defaultIgnoreFile is read by `check` when --ignore-file is not given.
const defaultIgnoreFile = ".gofileignore"

// loadIgnore compiles gitignore-style patterns from path.
// A missing file is an error only when required is set; otherwise it yields
// a nil matcher.
func loadIgnore(path string, required bool) (*ignore.GitIgnore, error) {
	lines, err := fileio.ReadLines(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return ignore.CompileIgnoreLines(lines...), nil
}
