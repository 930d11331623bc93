// Where: cmd/argonaut/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/argonaut-cli/argonaut/internal/app"
	"github.com/argonaut-cli/argonaut/internal/execx"
	"github.com/argonaut-cli/argonaut/internal/interaction"
)

// buildDependencies constructs the runtime dependencies for the CLI.
// The audit log is opened later, once the flag surface has been parsed.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:      os.Stdout,
		Prompter: interaction.HuhPrompter{},
		Runner:   execx.ExecRunner{},
	}
}
