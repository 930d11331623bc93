// Where: internal/presenters/tables.go
// What: JSON list parsing and tabular rendering for repositories, applications, and batch results.
// Why: Keep projection rules (missing field -> empty cell, empty list -> notice) in one place.
package presenters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/argonaut-cli/argonaut/internal/argocd"
	"github.com/argonaut-cli/argonaut/internal/batch"
)

// MalformedJSONError indicates the payload was not the expected JSON array.
// Distinct from an empty list, which is a normal render.
type MalformedJSONError struct {
	Source string
	Err    error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("could not parse %s output as JSON: %v", e.Source, e.Err)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}

// RenderRepositories parses a JSON array of repositories and writes a table.
func RenderRepositories(out io.Writer, payload string) error {
	var repos []argocd.Repository
	if err := json.Unmarshal([]byte(payload), &repos); err != nil {
		return &MalformedJSONError{Source: "argocd repo list", Err: err}
	}
	if len(repos) == 0 {
		fmt.Fprintln(out, "No repositories found.")
		return nil
	}

	table := newTable(out)
	table.Header("REPO", "NAME", "STATUS", "CONNECTION", "PROJECT")
	for _, repo := range repos {
		_ = table.Append(repo.Repo, repo.Name, repo.Status, repo.ConnectionState.Status, repo.Project)
	}
	return table.Render()
}

// RenderApplications parses a JSON array of applications and writes a table.
func RenderApplications(out io.Writer, payload string) error {
	var apps []argocd.Application
	if err := json.Unmarshal([]byte(payload), &apps); err != nil {
		return &MalformedJSONError{Source: "argocd app list", Err: err}
	}
	if len(apps) == 0 {
		fmt.Fprintln(out, "No applications found.")
		return nil
	}

	table := newTable(out)
	table.Header("NAME", "PROJECT", "SERVER", "NAMESPACE", "SYNC STATUS", "HEALTH STATUS")
	for _, app := range apps {
		_ = table.Append(
			app.Metadata.Name,
			app.Spec.Project,
			app.Spec.Destination.Server,
			app.Spec.Destination.Namespace,
			app.Status.Sync.Status,
			app.Status.Health.Status,
		)
	}
	return table.Render()
}

// RenderBatchSummary writes the aggregated batch outcome: successes in input
// order first, then failures in input order.
func RenderBatchSummary(out io.Writer, outcome batch.Outcome) error {
	table := newTable(out)
	table.Header("APPLICATION", "STATUS", "DETAILS")
	for _, name := range outcome.Succeeded {
		_ = table.Append(name, "Success", "Application created.")
	}
	for _, failure := range outcome.Failed {
		_ = table.Append(failure.Name, "Failed", failure.Reason)
	}
	return table.Render()
}

func newTable(out io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
}
