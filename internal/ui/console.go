// Where: internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize colors and structure across menu actions.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

// Console provides helper methods for formatted output.
type Console struct {
	Out io.Writer
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Header prints a bold section header preceded by a blank line.
func (c *Console) Header(title string) {
	fmt.Fprintf(c.Out, "\n%s\n", bold(title))
}

// Plain prints an unstyled line.
func (c *Console) Plain(msg string) {
	fmt.Fprintln(c.Out, msg)
}

// Success prints a success message in green.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s\n", green(msg))
}

// Info prints an info message with an arrow.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "➜ %s\n", msg)
}

// Warn prints a warning message in yellow.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "%s\n", yellow(msg))
}

// Error prints an error message in red.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Out, "%s %s\n", red("✗"), red(msg))
}

// Detail prints captured diagnostic text (tool stderr) dimmed.
func (c *Console) Detail(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintf(c.Out, "%s\n", faint(msg))
}

// DisableColor turns off all styling, for --no-color or non-TTY output.
func DisableColor() {
	color.NoColor = true
}
