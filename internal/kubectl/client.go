// Where: internal/kubectl/client.go
// What: Invocations of the kubectl CLI for install, status, and uninstall.
// Why: Raw cluster operations stay behind one small surface.
package kubectl

import (
	"context"
	"strings"

	"github.com/argonaut-cli/argonaut/internal/execx"
)

// DefaultBin is the cluster client binary name.
const DefaultBin = "kubectl"

// InstallManifestURL is the upstream stable Argo CD installation manifest.
const InstallManifestURL = "https://raw.githubusercontent.com/argoproj/argo-cd/stable/manifests/install.yaml"

// Client shells out to kubectl through an injected runner.
type Client struct {
	Bin    string
	Runner execx.Runner
}

// NewClient returns a client for the default binary name.
func NewClient(runner execx.Runner) *Client {
	return &Client{Bin: DefaultBin, Runner: runner}
}

// CreateNamespace creates a namespace.
func (c *Client) CreateNamespace(ctx context.Context, namespace string) execx.Result {
	return c.Runner.Run(ctx, c.Bin, "create", "namespace", namespace)
}

// Apply applies a manifest URL into a namespace.
func (c *Client) Apply(ctx context.Context, namespace, manifestURL string) execx.Result {
	return c.Runner.Run(ctx, c.Bin, "apply", "-n", namespace, "-f", manifestURL)
}

// GetPods lists pods in a namespace in kubectl's own tabular format.
func (c *Client) GetPods(ctx context.Context, namespace string) execx.Result {
	return c.Runner.Run(ctx, c.Bin, "get", "pods", "-n", namespace)
}

// DeleteManifest deletes the resources of a manifest URL from a namespace.
func (c *Client) DeleteManifest(ctx context.Context, namespace, manifestURL string) execx.Result {
	return c.Runner.Run(ctx, c.Bin, "delete", "-n", namespace, "-f", manifestURL)
}

// DeleteNamespace deletes an entire namespace.
func (c *Client) DeleteNamespace(ctx context.Context, namespace string) execx.Result {
	return c.Runner.Run(ctx, c.Bin, "delete", "namespace", namespace)
}

// IsAlreadyExists reports whether a failed create was caused by the resource
// already existing. kubectl exposes no structured error kind across the
// subprocess boundary, so this is a stderr substring check. Known
// limitation, kept in one place.
func IsAlreadyExists(res execx.Result) bool {
	return res.ToolFound && res.ExitCode != 0 && strings.Contains(res.Stderr, "already exists")
}
