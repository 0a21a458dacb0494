// Package terminal resolves the process's "is color enabled" decision and
// provides a Printer that gates style output behind it.
package terminal

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/sgr/pkg/sgr"
)

// Detect determines whether styled output should be enabled for the given
// output file: the terminal must be capable and the user must not have
// explicitly disabled color. The result combines as
// capability AND NOT disabled.
func Detect(output *os.File) bool {
	// Explicit user opt-outs.
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	// Check if we're being piped or redirected.
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	// Check terminal color support.
	return termenv.ColorProfile() != termenv.Ascii
}

// Printer writes styles and styled text to a sink. It holds the resolved
// color decision as plain state: when disabled, every style write is a no-op
// producing zero bytes, while plain text always passes through. The decision
// is consulted on each call, so a Printer can be toggled between sections of
// output.
//
// Printer also tracks the last style written, which lets Transition emit
// only the minimal escape fragments for each style change.
type Printer struct {
	w       io.Writer
	enabled bool
	last    sgr.Style
}

// NewPrinter returns a printer writing to w with the given color decision.
// Callers typically pass Detect's result for the real terminal, or false for
// pipes and tests.
func NewPrinter(w io.Writer, enabled bool) *Printer {
	return &Printer{w: w, enabled: enabled}
}

// Enabled reports the current color decision.
func (p *Printer) Enabled() bool {
	return p.enabled
}

// SetEnabled changes the color decision for subsequent writes.
func (p *Printer) SetEnabled(enabled bool) {
	p.enabled = enabled
}

// Write passes plain text through to the sink untouched, making Printer an
// io.Writer for unstyled output.
func (p *Printer) Write(b []byte) (int, error) {
	return p.w.Write(b)
}

// WriteStyle renders s in full and records it as the active style.
func (p *Printer) WriteStyle(s sgr.Style) error {
	if !p.enabled {
		return nil
	}
	if _, err := s.WriteTo(p.w); err != nil {
		return err
	}
	p.last = s
	return nil
}

// Transition writes the minimal escape fragments taking the terminal from
// the last written style to next, then records next as active.
func (p *Printer) Transition(next sgr.Style) error {
	if !p.enabled {
		return nil
	}
	if _, err := next.WriteDifference(p.w, p.last); err != nil {
		return err
	}
	p.last = next
	return nil
}

// Reset transitions back to the default style.
func (p *Printer) Reset() error {
	return p.Transition(sgr.NewStyle())
}

// Styled writes text wrapped in s and a trailing reset. When color is
// disabled the bare text is written.
func (p *Printer) Styled(s sgr.Style, text string) error {
	if err := p.WriteStyle(s); err != nil {
		return err
	}
	if _, err := io.WriteString(p.w, text); err != nil {
		return err
	}
	return p.Reset()
}
