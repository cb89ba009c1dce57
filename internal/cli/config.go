package cli

import "fmt"

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// ParseColorMode parses the --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// InvalidLineMode controls what `lines` does with a line that is not valid UTF-8.
type InvalidLineMode string

const (
	InvalidStop InvalidLineMode = "stop" // report the error and exit
	InvalidSkip InvalidLineMode = "skip" // warn and omit the line
	InvalidMark InvalidLineMode = "mark" // warn and print a placeholder
)

// Config holds all configuration for a gofile invocation.
type Config struct {
	Color    ColorMode
	LogLevel string

	// cat, put
	Text bool

	// lines
	Patterns    []string
	Fixed       bool
	IgnoreCase  bool
	Invert      bool
	LineNumbers bool
	OnInvalid   InvalidLineMode

	// check
	IgnoreFile string
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	switch c.OnInvalid {
	case "", InvalidStop, InvalidSkip, InvalidMark:
	default:
		return fmt.Errorf("invalid --invalid mode %q (want stop, skip or mark)", c.OnInvalid)
	}
	if len(c.Patterns) == 0 && (c.Fixed || c.IgnoreCase || c.Invert) {
		return fmt.Errorf("-F, -i and -v require a pattern (-e)")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
