// Package ui prints coloured status lines for the converter.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// UI writes ✓/✗/ℹ status lines. Colour is used only when the writer is a
// terminal and NO_COLOR is unset.
type UI struct {
	out *termenv.Output
}

// New creates a UI writing to w (os.Stderr when nil).
func New(w io.Writer) *UI {
	if w == nil {
		w = os.Stderr
	}

	if os.Getenv("NO_COLOR") != "" {
		return NewPlain(w)
	}

	return &UI{out: termenv.NewOutput(w)}
}

// NewPlain creates a UI that never emits colour codes.
func NewPlain(w io.Writer) *UI {
	return &UI{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

// Success prints a success message in green.
func (u *UI) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("✓ "+msg).Foreground(termenv.ANSIGreen))
}

// Error prints an error message in red.
func (u *UI) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("✗ "+msg).Foreground(termenv.ANSIRed))
}

// Info prints an informational message in blue.
func (u *UI) Info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("ℹ "+msg).Foreground(termenv.ANSIBlue))
}
