// Where: internal/menu/login_test.go
// What: Tests for startup login and the retry-login flow.
// Why: Credentials from the environment must never trigger a prompt, and
//      the authenticated flag only follows a reported success.
package menu

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/argonaut-cli/argonaut/internal/config"
	"github.com/argonaut-cli/argonaut/internal/execx"
)

func fullCreds() config.Credentials {
	return config.Credentials{
		Host:     config.Value{Raw: "argocd.example.com", Set: true},
		Port:     config.Value{Raw: "8443", Set: true},
		Username: config.Value{Raw: "admin", Set: true},
		Password: config.Value{Raw: "pw", Set: true},
		Insecure: config.Flag{On: true, Set: true},
	}
}

func TestStartupLoginEnvCompleteIssuesNoPrompt(t *testing.T) {
	runner := &fakeRunner{}
	prompter := &mockPrompter{}
	m, _ := newTestMenu(t, runner, prompter)

	if err := m.StartupLogin(context.Background(), fullCreds()); err != nil {
		t.Fatalf("StartupLogin returned %v", err)
	}
	if prompter.promptCount() != 0 {
		t.Errorf("prompts issued for env-supplied fields: inputs=%v confirms=%v secrets=%v",
			prompter.inputTitles, prompter.confirmTitles, prompter.secretTitles)
	}
	if !m.Authenticated() {
		t.Errorf("expected authenticated state after successful login")
	}

	want := []string{"argocd", "login", "argocd.example.com:8443", "--username", "admin", "--password", "pw", "--insecure"}
	if !reflect.DeepEqual(runner.calls[0], want) {
		t.Errorf("login call = %v, want %v", runner.calls[0], want)
	}
}

func TestStartupLoginPromptsOnlyMissingFields(t *testing.T) {
	creds := fullCreds()
	creds.Username = config.Value{}
	creds.Password = config.Value{}

	runner := &fakeRunner{}
	prompter := &mockPrompter{inputs: []string{"operator"}, secrets: []string{"hunter2"}}
	m, _ := newTestMenu(t, runner, prompter)

	if err := m.StartupLogin(context.Background(), creds); err != nil {
		t.Fatalf("StartupLogin returned %v", err)
	}
	if len(prompter.inputTitles) != 1 || len(prompter.secretTitles) != 1 {
		t.Errorf("prompt titles = %v / %v, want exactly username and password",
			prompter.inputTitles, prompter.secretTitles)
	}

	call := runner.calls[0]
	joined := strings.Join(call, " ")
	if !strings.Contains(joined, "--username operator") || !strings.Contains(joined, "--password hunter2") {
		t.Errorf("login call = %v", call)
	}
}

func TestStartupLoginPromptDefaultsForHostAndPort(t *testing.T) {
	runner := &fakeRunner{}
	// Empty queues: every Input falls back to the prompt default.
	prompter := &mockPrompter{}
	m, _ := newTestMenu(t, runner, prompter)

	creds := config.Credentials{} // nothing in the environment
	if err := m.StartupLogin(context.Background(), creds); err != nil {
		t.Fatalf("StartupLogin returned %v", err)
	}
	if runner.calls[0][2] != "localhost:8080" {
		t.Errorf("server = %q, want localhost:8080", runner.calls[0][2])
	}
}

func TestStartupLoginFailureStaysUnauthenticated(t *testing.T) {
	runner := &fakeRunner{script: func(name string, args []string) execx.Result {
		return execx.Result{Tool: name, Args: args, ToolFound: true, ExitCode: 1, Stderr: "invalid credentials"}
	}}
	m, out := newTestMenu(t, runner, &mockPrompter{})

	if err := m.StartupLogin(context.Background(), fullCreds()); err != nil {
		t.Fatalf("a failed login is not a fault, got %v", err)
	}
	if m.Authenticated() {
		t.Errorf("authenticated after failed login")
	}
	if !strings.Contains(out.String(), "Authentication failed") {
		t.Errorf("output = %q", out.String())
	}
	if !strings.Contains(out.String(), "invalid credentials") {
		t.Errorf("diagnostic text missing from output: %q", out.String())
	}
}

func TestStartupLoginMissingToolIsFatal(t *testing.T) {
	runner := &fakeRunner{script: func(name string, args []string) execx.Result {
		return execx.Result{Tool: name, Args: args, ToolFound: false, ExitCode: -1}
	}}
	m, out := newTestMenu(t, runner, &mockPrompter{})

	err := m.StartupLogin(context.Background(), fullCreds())
	var notFound *execx.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want *execx.NotFoundError", err)
	}
	if m.Authenticated() {
		t.Errorf("authenticated after missing tool")
	}
	if !strings.Contains(out.String(), "not installed") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRetryLoginDeclineReturnsUnauthenticated(t *testing.T) {
	runner := &fakeRunner{script: func(name string, args []string) execx.Result {
		return execx.Result{Tool: name, Args: args, ToolFound: true, ExitCode: 1, Stderr: "nope"}
	}}
	prompter := &mockPrompter{
		inputs:   []string{"h", "1", "u"},
		secrets:  []string{"p"},
		confirms: []bool{true, false}, // insecure, then decline retry
	}
	m, _ := newTestMenu(t, runner, prompter)

	if err := m.retryLogin(context.Background()); err != nil {
		t.Fatalf("retryLogin returned %v", err)
	}
	if m.Authenticated() {
		t.Errorf("authenticated after declined retry")
	}
	if len(runner.calls) != 1 {
		t.Errorf("login attempts = %d, want 1", len(runner.calls))
	}
}

func TestRetryLoginSecondAttemptSucceeds(t *testing.T) {
	attempts := 0
	runner := &fakeRunner{script: func(name string, args []string) execx.Result {
		attempts++
		if attempts == 1 {
			return execx.Result{Tool: name, Args: args, ToolFound: true, ExitCode: 1, Stderr: "bad password"}
		}
		return execx.Result{Tool: name, Args: args, ToolFound: true}
	}}
	prompter := &mockPrompter{
		inputs:   []string{"h", "1", "u", "h", "1", "u"},
		secrets:  []string{"wrong", "right"},
		confirms: []bool{true, true, true}, // insecure, retry?, insecure
	}
	m, _ := newTestMenu(t, runner, prompter)

	if err := m.retryLogin(context.Background()); err != nil {
		t.Fatalf("retryLogin returned %v", err)
	}
	if !m.Authenticated() {
		t.Errorf("expected authenticated after second attempt")
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestRetryLoginMissingToolAbortsOperationOnly(t *testing.T) {
	runner := &fakeRunner{script: func(name string, args []string) execx.Result {
		return execx.Result{Tool: name, Args: args, ToolFound: false, ExitCode: -1}
	}}
	prompter := &mockPrompter{
		inputs:   []string{"h", "1", "u"},
		secrets:  []string{"p"},
		confirms: []bool{true},
	}
	m, out := newTestMenu(t, runner, prompter)

	// Inside the loop a missing binary aborts the action, not the program.
	if err := m.retryLogin(context.Background()); err != nil {
		t.Fatalf("retryLogin returned %v", err)
	}
	if m.Authenticated() {
		t.Errorf("authenticated without a successful login")
	}
	if !strings.Contains(out.String(), "not installed") {
		t.Errorf("output = %q", out.String())
	}
}
