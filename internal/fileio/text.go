package fileio

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when file contents are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("file did not contain valid UTF-8")

// GetText reads the whole file at path as UTF-8 text.
// Contents that do not decode return an error wrapping ErrInvalidUTF8.
func GetText(path string) (string, error) {
	data, err := Get(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}
	return string(data), nil
}

// PutText writes text to path as-is, with the same overwrite semantics as Put.
func PutText(path, text string) error {
	return Put(path, []byte(text))
}
