// Package progress shows what the tool is waiting on while provider calls
// are in flight.
package progress

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Notifier receives progress messages
type Notifier interface {
	// Update replaces the current progress message
	Update(msg string)
	// Clear removes the progress indicator
	Clear()
}

// Spinner is a Notifier drawing a terminal spinner on stderr
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a stopped spinner writing to w (stderr when nil)
func NewSpinner(w io.Writer) *Spinner {
	if w == nil {
		w = os.Stderr
	}
	opt := spinner.WithWriter(w)
	if f, ok := w.(*os.File); ok {
		opt = spinner.WithWriterFile(f)
	}
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, opt)
	s.Color("blue")
	return &Spinner{s: s}
}

// Update starts the spinner if needed and sets its message
func (p *Spinner) Update(msg string) {
	p.s.Suffix = " " + msg
	if !p.s.Active() {
		p.s.Start()
	}
}

// Clear stops the spinner and erases its line
func (p *Spinner) Clear() {
	p.s.Stop()
}

// Discard drops every message; used for structured output and tests
type Discard struct{}

func (Discard) Update(string) {}
func (Discard) Clear()        {}
