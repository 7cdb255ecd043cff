// Package display implementation for terminal-based output.
package display

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// consoleDisplay handles terminal output.
type consoleDisplay struct {
	out io.Writer
	err io.Writer
	in  *bufio.Reader
}

// NewConsole creates a Display that prints to standard output and logs to
// standard error, reading confirmations from standard input.
func NewConsole() Display {
	return &consoleDisplay{
		out: os.Stdout,
		err: os.Stderr,
		in:  bufio.NewReader(os.Stdin),
	}
}

// NewWriterDisplay creates a Display backed by the provided streams.
func NewWriterDisplay(out, errw io.Writer, in io.Reader) Display {
	return &consoleDisplay{
		out: out,
		err: errw,
		in:  bufio.NewReader(in),
	}
}

// Print writes a message directly to the output writer.
func (d *consoleDisplay) Print(msg string) {
	fmt.Fprint(d.out, msg)
}

// Log writes a diagnostic message to the error writer.
func (d *consoleDisplay) Log(msg string) {
	fmt.Fprintln(d.err, msg)
}

// Confirm prints the prompt and reads one answer line.
func (d *consoleDisplay) Confirm(prompt string) bool {
	fmt.Fprint(d.out, prompt)
	line, err := d.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.TrimSpace(line) {
	case "y", "Y", "yes":
		return true
	}
	return false
}

func (d *consoleDisplay) Close() {}
