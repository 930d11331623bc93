// Where: internal/argocd/client.go
// What: Invocations of the argocd CLI (login, repos, credentials, applications).
// Why: Keep argument construction in one place, executed through an injected runner.
package argocd

import (
	"context"

	"github.com/argonaut-cli/argonaut/internal/execx"
)

// DefaultBin is the control-plane client binary name.
const DefaultBin = "argocd"

// Client shells out to the argocd binary. All business logic (auth, sync,
// health) lives inside that tool; the client only builds argument lists.
type Client struct {
	Bin    string
	Runner execx.Runner
}

// NewClient returns a client for the default binary name.
func NewClient(runner execx.Runner) *Client {
	return &Client{Bin: DefaultBin, Runner: runner}
}

// LoginOptions describe one login attempt. The server address is the
// host:port pair already joined by the caller.
type LoginOptions struct {
	Server   string
	Username string
	Password string
	Insecure bool
}

// SyncPolicy mirrors the optional automated-sync flags of app create.
type SyncPolicy struct {
	Automated bool
	AutoPrune bool
	SelfHeal  bool
}

// AppSpec holds the arguments of a single app create invocation.
type AppSpec struct {
	Name          string
	RepoURL       string
	Revision      string
	Path          string
	DestServer    string
	DestNamespace string
	Project       string
	Sync          SyncPolicy
}

// Login runs argocd login. The wrapped CLI persists its own token; this
// program never holds one.
func (c *Client) Login(ctx context.Context, opts LoginOptions) execx.Result {
	args := []string{"login", opts.Server, "--username", opts.Username, "--password", opts.Password}
	if opts.Insecure {
		args = append(args, "--insecure")
	}
	return c.Runner.Run(ctx, c.Bin, args...)
}

// RepoList fetches all registered repositories as a JSON array.
func (c *Client) RepoList(ctx context.Context) execx.Result {
	return c.Runner.Run(ctx, c.Bin, "repo", "list", "-o", "json")
}

// RepoAdd registers a repository, relying on any matching credential template.
func (c *Client) RepoAdd(ctx context.Context, repoURL string) execx.Result {
	return c.Runner.Run(ctx, c.Bin, "repo", "add", repoURL)
}

// RepoCredsAdd stores a username/password keyed by URL prefix.
func (c *Client) RepoCredsAdd(ctx context.Context, urlPrefix, username, password string) execx.Result {
	return c.Runner.Run(ctx, c.Bin, "repocreds", "add", urlPrefix, "--username", username, "--password", password)
}

// AppCreate creates a single application.
func (c *Client) AppCreate(ctx context.Context, spec AppSpec) execx.Result {
	return c.Runner.Run(ctx, c.Bin, appCreateArgs(spec)...)
}

// AppList fetches all applications as a JSON array.
func (c *Client) AppList(ctx context.Context) execx.Result {
	return c.Runner.Run(ctx, c.Bin, "app", "list", "-o", "json")
}

// AppDelete deletes an application without a second CLI-side confirmation;
// the interactive confirmation already happened in the menu.
func (c *Client) AppDelete(ctx context.Context, name string) execx.Result {
	return c.Runner.Run(ctx, c.Bin, "app", "delete", name, "--yes")
}

func appCreateArgs(spec AppSpec) []string {
	args := []string{
		"app", "create", spec.Name,
		"--repo", spec.RepoURL,
		"--revision", spec.Revision,
		"--path", spec.Path,
		"--dest-server", spec.DestServer,
		"--dest-namespace", spec.DestNamespace,
		"--project", spec.Project,
	}
	if spec.Sync.Automated {
		args = append(args, "--sync-policy", "automated")
		if spec.Sync.AutoPrune {
			args = append(args, "--auto-prune")
		}
		if spec.Sync.SelfHeal {
			args = append(args, "--self-heal")
		}
	}
	return args
}
