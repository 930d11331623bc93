// Where: internal/app/run.go
// What: CLI entrypoint logic.
// Why: Parse the outer surface, wire the session, own the exit-code policy.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/argonaut-cli/argonaut/internal/argocd"
	"github.com/argonaut-cli/argonaut/internal/audit"
	"github.com/argonaut-cli/argonaut/internal/config"
	"github.com/argonaut-cli/argonaut/internal/execx"
	"github.com/argonaut-cli/argonaut/internal/interaction"
	"github.com/argonaut-cli/argonaut/internal/kubectl"
	"github.com/argonaut-cli/argonaut/internal/menu"
	"github.com/argonaut-cli/argonaut/internal/ui"
	"github.com/argonaut-cli/argonaut/internal/version"
)

// Dependencies holds the injected collaborators for command execution.
// Swapping them enables tests without a TTY or the wrapped binaries.
type Dependencies struct {
	Out      io.Writer
	Prompter interaction.Prompter
	Runner   execx.Runner
	Log      *audit.Log
}

// CLI defines the command-line interface structure parsed by Kong. The
// program stays menu-driven; only the outer surface is flag-based.
type CLI struct {
	EnvFile string     `name:"env-file" help:"Path to the ARGO_* key-value file (default: .env)"`
	LogFile string     `name:"log-file" help:"Path to the operational log (default: argonaut.log)"`
	NoColor bool       `name:"no-color" help:"Disable colored output"`
	Menu    MenuCmd    `cmd:"" default:"1" help:"Run the interactive menu (default)"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type (
	MenuCmd    struct{}
	VersionCmd struct{}
)

// Run is the main entry point. Returns 0 on success or graceful interrupt,
// 1 on any fault.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	if kctx.Command() == "version" {
		fmt.Fprintln(out, version.GetVersion())
		return 0
	}

	if cli.NoColor || !interaction.IsTerminal(os.Stdout) {
		ui.DisableColor()
	}

	return runMenu(cli, deps, out)
}

func runMenu(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	log := deps.Log
	if log == nil {
		log = audit.Open(cli.LogFile)
	}
	runner := deps.Runner
	if runner == nil {
		runner = execx.ExecRunner{}
	}
	prompter := deps.Prompter
	if prompter == nil {
		prompter = interaction.HuhPrompter{}
	}

	// Interrupts end the loop at the next safe point: after the current
	// subprocess call returns or during a prompt wait.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console.Plain("Welcome to the ArgoCD Interactive CLI")

	session := menu.New(menu.Deps{
		Console:  console,
		Prompter: prompter,
		Argo:     argocd.NewClient(runner),
		Kube:     kubectl.NewClient(runner),
		Log:      log,
	})

	creds := config.Load(cli.EnvFile)
	if err := session.StartupLogin(ctx, creds); err != nil {
		if interaction.IsAborted(err) || ctx.Err() != nil {
			console.Warn("Interrupted. Exiting gracefully.")
			return 0
		}
		var notFound *execx.NotFoundError
		if errors.As(err, &notFound) {
			// Setup-phase login cannot proceed without the binary.
			return 1
		}
		log.Error("startup-login", err.Error())
		return exitWithError(out, err)
	}

	if err := session.Loop(ctx); err != nil {
		log.Error("main-loop", err.Error())
		console.Error(fmt.Sprintf("An unexpected error occurred: %v", err))
		return 1
	}
	return 0
}
