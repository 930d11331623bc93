// Where: internal/interaction/interaction.go
// What: Interactive prompt primitives and TTY detection.
// Why: Centralize user interaction so the menu loop stays testable without a terminal.
package interaction

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// SelectOption represents a single option in a selection menu.
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// Prompter defines the interface for interactive user input.
type Prompter interface {
	// Input asks for a line of text. An empty answer falls back to def.
	Input(title, def string) (string, error)
	// Secret asks for a line of text without echoing it.
	Secret(title string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(title string, def bool) (bool, error)
	// Select asks the user to pick one option and returns its value.
	Select(title string, options []SelectOption) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsAborted reports whether the error is the user interrupting a prompt
// (Ctrl-C / Esc). Callers treat it as a graceful-exit request, not a fault.
func IsAborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}
