package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Status prints coloured one-line outcomes.
type Status struct {
	w       io.Writer
	profile termenv.Profile
}

// NewStatus writes to w. Colour is used only when color is true.
func NewStatus(w io.Writer, color bool) *Status {
	profile := termenv.Ascii
	if color {
		profile = termenv.ColorProfile()
	}
	return &Status{w: w, profile: profile}
}

// Success prints a green check line.
func (s *Status) Success(format string, args ...any) {
	s.line("✔", "#22c55e", format, args...)
}

// Failure prints a red cross line.
func (s *Status) Failure(format string, args ...any) {
	s.line("✘", "#ef4444", format, args...)
}

// Warn prints a yellow bullet line.
func (s *Status) Warn(format string, args ...any) {
	s.line("•", "#eab308", format, args...)
}

func (s *Status) line(mark, color, format string, args ...any) {
	prefix := termenv.String(mark).Foreground(s.profile.Color(color)).Bold()
	fmt.Fprintf(s.w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
