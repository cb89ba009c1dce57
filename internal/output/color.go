package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for output formatting.
type Styles struct {
	LineNum   lipgloss.Style
	Separator lipgloss.Style
	Match     lipgloss.Style
	Invalid   lipgloss.Style
	enabled   bool
}

// NewStyles creates the default color styles. The renderer is forced to the
// ANSI profile since the caller has already decided color is wanted,
// whatever w turns out to be.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return Styles{
		LineNum:   r.NewStyle().Foreground(lipgloss.Color("2")), // green
		Separator: r.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		Match:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).TabWidth(lipgloss.NoTabConversion), // bold red
		Invalid:   r.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		enabled:   true,
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		LineNum:   lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle(),
		Match:     lipgloss.NewStyle(),
		Invalid:   lipgloss.NewStyle(),
	}
}

// Enabled reports whether the styles emit escape sequences.
func (s Styles) Enabled() bool {
	return s.enabled
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}
