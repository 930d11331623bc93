// Where: internal/argocd/client_test.go
// What: Tests for argocd argument construction.
// Why: The argument lists are the whole contract with the wrapped CLI.
package argocd

import (
	"context"
	"reflect"
	"testing"

	"github.com/argonaut-cli/argonaut/internal/execx"
)

type fakeRunner struct {
	calls  [][]string
	result execx.Result
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) execx.Result {
	call := append([]string{name}, args...)
	f.calls = append(f.calls, call)
	res := f.result
	res.Tool = name
	res.Args = args
	return res
}

func okRunner() *fakeRunner {
	return &fakeRunner{result: execx.Result{ToolFound: true}}
}

func TestLoginArgs(t *testing.T) {
	runner := okRunner()
	client := NewClient(runner)

	client.Login(context.Background(), LoginOptions{
		Server:   "argocd.example.com:8080",
		Username: "admin",
		Password: "pw",
	})

	want := []string{"argocd", "login", "argocd.example.com:8080", "--username", "admin", "--password", "pw"}
	if !reflect.DeepEqual(runner.calls[0], want) {
		t.Errorf("call = %v, want %v", runner.calls[0], want)
	}
}

func TestLoginInsecureAppendsFlag(t *testing.T) {
	runner := okRunner()
	client := NewClient(runner)

	client.Login(context.Background(), LoginOptions{Server: "h:1", Username: "u", Password: "p", Insecure: true})

	call := runner.calls[0]
	if call[len(call)-1] != "--insecure" {
		t.Errorf("expected trailing --insecure, got %v", call)
	}
}

func TestRepoCommands(t *testing.T) {
	runner := okRunner()
	client := NewClient(runner)
	ctx := context.Background()

	client.RepoList(ctx)
	client.RepoAdd(ctx, "https://github.com/org/repo.git")
	client.RepoCredsAdd(ctx, "https://github.com/org", "bot", "token")

	want := [][]string{
		{"argocd", "repo", "list", "-o", "json"},
		{"argocd", "repo", "add", "https://github.com/org/repo.git"},
		{"argocd", "repocreds", "add", "https://github.com/org", "--username", "bot", "--password", "token"},
	}
	if !reflect.DeepEqual(runner.calls, want) {
		t.Errorf("calls = %v, want %v", runner.calls, want)
	}
}

func TestAppCreateArgsWithoutSyncPolicy(t *testing.T) {
	spec := AppSpec{
		Name:          "shop",
		RepoURL:       "https://github.com/org/gitops.git",
		Revision:      "HEAD",
		Path:          "shop/overlay/dev",
		DestServer:    "https://kubernetes.default.svc",
		DestNamespace: "shop",
		Project:       "default",
	}
	want := []string{
		"app", "create", "shop",
		"--repo", "https://github.com/org/gitops.git",
		"--revision", "HEAD",
		"--path", "shop/overlay/dev",
		"--dest-server", "https://kubernetes.default.svc",
		"--dest-namespace", "shop",
		"--project", "default",
	}
	if got := appCreateArgs(spec); !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestAppCreateArgsSyncPolicyVariants(t *testing.T) {
	base := AppSpec{Name: "a", RepoURL: "r", Revision: "v", Path: "p", DestServer: "s", DestNamespace: "n", Project: "pr"}

	automated := base
	automated.Sync = SyncPolicy{Automated: true}
	got := appCreateArgs(automated)
	if got[len(got)-2] != "--sync-policy" || got[len(got)-1] != "automated" {
		t.Errorf("automated args = %v", got)
	}

	full := base
	full.Sync = SyncPolicy{Automated: true, AutoPrune: true, SelfHeal: true}
	got = appCreateArgs(full)
	tail := got[len(got)-4:]
	want := []string{"automated", "--auto-prune", "--self-heal"}
	if !reflect.DeepEqual(tail[1:], want) {
		t.Errorf("full sync args tail = %v, want %v", tail[1:], want)
	}

	// Prune/heal flags must not leak out without automated sync.
	pruneOnly := base
	pruneOnly.Sync = SyncPolicy{AutoPrune: true, SelfHeal: true}
	got = appCreateArgs(pruneOnly)
	for _, arg := range got {
		if arg == "--auto-prune" || arg == "--self-heal" || arg == "--sync-policy" {
			t.Errorf("unexpected sync flag in %v", got)
		}
	}
}

func TestAppListAndDelete(t *testing.T) {
	runner := okRunner()
	client := NewClient(runner)
	ctx := context.Background()

	client.AppList(ctx)
	client.AppDelete(ctx, "shop")

	want := [][]string{
		{"argocd", "app", "list", "-o", "json"},
		{"argocd", "app", "delete", "shop", "--yes"},
	}
	if !reflect.DeepEqual(runner.calls, want) {
		t.Errorf("calls = %v, want %v", runner.calls, want)
	}
}
