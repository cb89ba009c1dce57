package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/dl/gofile/internal/fileio"
)

// LoadConfigArgs reads the gofile config file and returns parsed arguments.
// Config file location: GOFILE_CONFIG_PATH env var, or ~/.gofile.
// Format: one global flag per line, # comments, empty lines ignored.
// Returns nil if no config file found.
func LoadConfigArgs() ([]string, error) {
	path := os.Getenv("GOFILE_CONFIG_PATH")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil
		}
		path = filepath.Join(home, ".gofile")
	}
	return readConfigArgs(path)
}

func readConfigArgs(path string) ([]string, error) {
	var args []string
	read := false
	for line := range fileio.Lines(path) {
		if line.Err != nil {
			if !read && !errors.Is(line.Err, fileio.ErrInvalidUTF8) {
				// Nothing readable at path means no config.
				return nil, nil
			}
			return nil, line.Err
		}
		read = true
		text := strings.TrimSpace(line.Text)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		args = append(args, text)
	}
	return args, nil
}
