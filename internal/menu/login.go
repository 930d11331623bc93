// Where: internal/menu/login.go
// What: Startup login and the interactive retry-login flow.
// Why: Authenticated is only ever set from an explicit successful login result.
package menu

import (
	"context"
	"fmt"

	"github.com/argonaut-cli/argonaut/internal/argocd"
	"github.com/argonaut-cli/argonaut/internal/config"
	"github.com/argonaut-cli/argonaut/internal/execx"
)

// StartupLogin performs the single login attempt at startup. Environment
// values win per-field; each missing field is prompted for. A missing
// argocd binary is fatal here, unlike in-loop retries.
func (m *Menu) StartupLogin(ctx context.Context, creds config.Credentials) error {
	opts, err := m.resolveStartupCredentials(creds)
	if err != nil {
		return err
	}

	m.console.Info(fmt.Sprintf("Attempting to log in to %s...", opts.Server))
	res := m.argo.Login(ctx, opts)
	m.log.Invocation("login", res)

	if !res.ToolFound {
		m.console.Error((&execx.NotFoundError{Tool: res.Tool}).Error())
		return res.Err()
	}
	if res.ExitCode != 0 {
		m.console.Error("Authentication failed. Check credentials and connection details.")
		m.console.Detail(res.Stderr)
		return nil
	}

	m.authenticated = true
	m.console.Success("Authentication successful.")
	return nil
}

// resolveStartupCredentials fills every field the environment did not
// supply from a prompt. No default is ever substituted silently: defaults
// appear only inside the prompt itself.
func (m *Menu) resolveStartupCredentials(creds config.Credentials) (argocd.LoginOptions, error) {
	var opts argocd.LoginOptions
	var err error

	host := creds.Host.Raw
	if !creds.Host.Set {
		if host, err = m.prompter.Input("Enter ArgoCD host", "localhost"); err != nil {
			return opts, err
		}
	}
	port := creds.Port.Raw
	if !creds.Port.Set {
		if port, err = m.prompter.Input("Enter ArgoCD port", "8080"); err != nil {
			return opts, err
		}
	}
	username := creds.Username.Raw
	if !creds.Username.Set {
		if username, err = m.prompter.Input("Enter ArgoCD username", ""); err != nil {
			return opts, err
		}
	}
	password := creds.Password.Raw
	if !creds.Password.Set {
		if password, err = m.prompter.Secret("Enter ArgoCD password"); err != nil {
			return opts, err
		}
	}
	insecure := creds.Insecure.On
	if !creds.Insecure.Set {
		if insecure, err = m.prompter.Confirm("Skip TLS certificate verification (insecure)?", false); err != nil {
			return opts, err
		}
	}

	opts = argocd.LoginOptions{
		Server:   host + ":" + port,
		Username: username,
		Password: password,
		Insecure: insecure,
	}
	return opts, nil
}

// retryLogin prompts for full fresh credentials (no environment defaults)
// and attempts login, repeating while the user wants to try again. A
// missing binary aborts the operation but not the program.
func (m *Menu) retryLogin(ctx context.Context) error {
	for {
		m.console.Header("Enter ArgoCD Credentials")

		host, err := m.prompter.Input("Enter ArgoCD host", "localhost")
		if err != nil {
			return err
		}
		port, err := m.prompter.Input("Enter ArgoCD port", "8080")
		if err != nil {
			return err
		}
		username, err := m.prompter.Input("Enter ArgoCD username", "")
		if err != nil {
			return err
		}
		password, err := m.prompter.Secret("Enter ArgoCD password")
		if err != nil {
			return err
		}
		insecure, err := m.prompter.Confirm("Skip TLS certificate verification (insecure)?", true)
		if err != nil {
			return err
		}

		opts := argocd.LoginOptions{
			Server:   host + ":" + port,
			Username: username,
			Password: password,
			Insecure: insecure,
		}
		m.console.Info(fmt.Sprintf("Attempting to log in to %s...", opts.Server))
		res := m.argo.Login(ctx, opts)
		m.log.Invocation("login", res)

		if !res.ToolFound {
			m.console.Error((&execx.NotFoundError{Tool: res.Tool}).Error())
			return nil
		}
		if res.Ok() {
			m.authenticated = true
			m.console.Success("Authentication successful.")
			return nil
		}

		m.console.Error("Authentication failed.")
		m.console.Detail(res.Stderr)

		again, err := m.prompter.Confirm("Login failed. Do you want to try again with different credentials?", false)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
