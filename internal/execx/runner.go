// Where: internal/execx/runner.go
// What: External command execution with outcome classification.
// Why: Every caller must distinguish missing tool, failed run, and success.
package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result captures a single invocation of an external tool.
// A non-zero exit is a normal result here, not an error.
type Result struct {
	Tool      string
	Args      []string
	ToolFound bool
	ExitCode  int
	Stdout    string
	Stderr    string
}

// Ok reports whether the tool was found and exited zero.
func (r Result) Ok() bool {
	return r.ToolFound && r.ExitCode == 0
}

// Err converts the result into the typed error taxonomy, or nil on success.
func (r Result) Err() error {
	if !r.ToolFound {
		return &NotFoundError{Tool: r.Tool}
	}
	if r.ExitCode != 0 {
		return &ExitError{Tool: r.Tool, ExitCode: r.ExitCode, Stderr: strings.TrimSpace(r.Stderr)}
	}
	return nil
}

// NotFoundError indicates the executable could not be located at all.
type NotFoundError struct {
	Tool string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("the %q CLI is not installed or not in PATH", e.Tool)
}

// ExitError indicates the tool ran and reported a non-zero exit.
type ExitError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with code %d", e.Tool, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Tool, e.ExitCode, e.Stderr)
}

// Runner defines the interface for executing external commands.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// ExecRunner implements Runner using os/exec with captured output.
type ExecRunner struct{}

// Run executes the command and classifies the outcome. No retries are
// performed; a retry is always a fresh caller decision.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) Result {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Tool:      name,
		Args:      args,
		ToolFound: true,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
	}
	if err == nil {
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res
	}
	if errors.Is(err, exec.ErrNotFound) {
		res.ToolFound = false
		res.ExitCode = -1
		return res
	}

	// Startup faults other than a missing binary (permissions, cancelled
	// context before spawn) surface through the stderr text.
	res.ExitCode = -1
	if res.Stderr == "" {
		res.Stderr = err.Error()
	}
	return res
}
