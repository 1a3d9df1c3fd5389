package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleDestination writes log records to an output stream, os.Stdout by
// default. Each record is one line: "[<Title>] <message>". The stream is
// swappable, which is also how tests capture output.
//
// The line format is a de facto wire format for anything scraping the log
// stream as plain text; change it and downstream tooling breaks.
type ConsoleDestination struct {
	SeverityBounds

	mu  sync.Mutex
	out io.Writer
}

// NewConsoleDestination returns a destination writing to os.Stdout that
// admits every severity.
func NewConsoleDestination() *ConsoleDestination {
	return &ConsoleDestination{
		SeverityBounds: AllSeverities(),
		out:            os.Stdout,
	}
}

// SetOutput swaps the output stream.
func (d *ConsoleDestination) SetOutput(w io.Writer) {
	d.mu.Lock()
	d.out = w
	d.mu.Unlock()
}

// Output returns the current output stream.
func (d *ConsoleDestination) Output() io.Writer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.out
}

// LogMessage writes "[<Title>] <message>\n".
func (d *ConsoleDestination) LogMessage(severity Severity, message string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := fmt.Fprintf(d.out, "[%s] %s\n", severity.Title(), message)
	return err
}

// LogError writes "[<Title>] caught exception: <error>\n".
func (d *ConsoleDestination) LogError(severity Severity, err error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, werr := fmt.Fprintf(d.out, "[%s] caught exception: %s\n", severity.Title(), errorText(err))
	return werr
}

// LogMessageError writes "[<Title>] <message> with caught exception <error>\n".
func (d *ConsoleDestination) LogMessageError(severity Severity, message string, err error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, werr := fmt.Fprintf(d.out, "[%s] %s with caught exception %s\n", severity.Title(), message, errorText(err))
	return werr
}
