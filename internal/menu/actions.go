// Where: internal/menu/actions.go
// What: Handlers for every menu action.
// Why: Each external-invocation site converts failures to a user message plus a log entry.
package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/argonaut-cli/argonaut/internal/argocd"
	"github.com/argonaut-cli/argonaut/internal/batch"
	"github.com/argonaut-cli/argonaut/internal/execx"
	"github.com/argonaut-cli/argonaut/internal/kubectl"
	"github.com/argonaut-cli/argonaut/internal/presenters"
)

// reportTool logs an invocation and prints the standard failure messages.
// Returns true when the tool ran and exited zero.
func (m *Menu) reportTool(action string, res execx.Result, failMsg string) bool {
	m.log.Invocation(action, res)
	switch {
	case !res.ToolFound:
		m.console.Error((&execx.NotFoundError{Tool: res.Tool}).Error())
		return false
	case res.ExitCode != 0:
		m.console.Error(failMsg)
		m.console.Detail(strings.TrimSpace(res.Stderr))
		return false
	}
	return true
}

func (m *Menu) installArgoCD(ctx context.Context) error {
	m.console.Header("Install ArgoCD into a Kubernetes Cluster")
	m.console.Plain("This requires kubectl to be installed and configured to access your cluster.")

	namespace, err := m.prompter.Input("Enter the namespace for ArgoCD installation", "argocd")
	if err != nil {
		return err
	}

	m.console.Info(fmt.Sprintf("Attempting to create namespace %q...", namespace))
	res := m.kube.CreateNamespace(ctx, namespace)
	m.log.Invocation("create-namespace", res)
	switch {
	case !res.ToolFound:
		m.console.Error((&execx.NotFoundError{Tool: res.Tool}).Error())
		return nil
	case res.Ok():
		m.console.Success(fmt.Sprintf("Namespace %q created.", namespace))
	case kubectl.IsAlreadyExists(res):
		m.console.Warn(fmt.Sprintf("Namespace %q already exists. Continuing.", namespace))
	default:
		m.console.Error("An error occurred during the installation process.")
		m.console.Detail(strings.TrimSpace(res.Stderr))
		return nil
	}

	m.console.Info("Applying ArgoCD installation manifest...")
	res = m.kube.Apply(ctx, namespace, kubectl.InstallManifestURL)
	if !m.reportTool("install", res, "An error occurred during the installation process.") {
		return nil
	}

	m.console.Success(fmt.Sprintf("ArgoCD installation manifest applied successfully to namespace %q.", namespace))
	m.console.Plain("Run 'Check ArgoCD Installation Status' to see the pods start up.")
	return nil
}

func (m *Menu) checkInstallStatus(ctx context.Context) error {
	m.console.Header("Check ArgoCD Installation Status")

	namespace, err := m.prompter.Input("Enter the namespace where ArgoCD is installed", "argocd")
	if err != nil {
		return err
	}

	m.console.Info(fmt.Sprintf("Fetching pod status in namespace %q...", namespace))
	res := m.kube.GetPods(ctx, namespace)
	if !m.reportTool("get-pods", res, "An error occurred while fetching pod status.") {
		return nil
	}
	m.console.Plain(strings.TrimRight(res.Stdout, "\n"))
	return nil
}

func (m *Menu) uninstallArgoCD(ctx context.Context) error {
	m.console.Header("Uninstall ArgoCD from a Kubernetes Cluster")

	namespace, err := m.prompter.Input("Enter the namespace where ArgoCD is installed", "argocd")
	if err != nil {
		return err
	}

	m.console.Warn(fmt.Sprintf("Warning: this is a destructive action that will remove all ArgoCD resources from the %q namespace.", namespace))
	confirmed, err := m.prompter.Confirm(fmt.Sprintf("Are you sure you want to proceed with uninstalling ArgoCD from namespace %q?", namespace), false)
	if err != nil {
		return err
	}
	if !confirmed {
		m.console.Plain("Uninstallation cancelled.")
		return nil
	}

	m.console.Info(fmt.Sprintf("Deleting ArgoCD resources from namespace %q...", namespace))
	res := m.kube.DeleteManifest(ctx, namespace, kubectl.InstallManifestURL)
	if !m.reportTool("uninstall", res, "An error occurred during the uninstallation process.") {
		return nil
	}
	m.console.Success("ArgoCD resources have been deleted.")

	deleteNS, err := m.prompter.Confirm(fmt.Sprintf("Do you also want to delete the entire %q namespace?", namespace), false)
	if err != nil {
		return err
	}
	if !deleteNS {
		return nil
	}

	m.console.Info(fmt.Sprintf("Deleting namespace %q...", namespace))
	res = m.kube.DeleteNamespace(ctx, namespace)
	if !m.reportTool("delete-namespace", res, "An error occurred during the uninstallation process.") {
		return nil
	}
	m.console.Success(fmt.Sprintf("Namespace %q has been deleted.", namespace))
	return nil
}

func (m *Menu) addCredentialTemplate(ctx context.Context) error {
	m.console.Header("Add Repository Credential Template")
	m.console.Plain("This will store credentials for a URL prefix (e.g., 'https://github.com/my-org').")

	urlPrefix, err := m.prompter.Input("Enter Repository URL Prefix", "")
	if err != nil {
		return err
	}
	username, err := m.prompter.Input("Enter repository username", "")
	if err != nil {
		return err
	}
	password, err := m.prompter.Secret("Enter repository password or PAT")
	if err != nil {
		return err
	}

	m.console.Info(fmt.Sprintf("Adding credentials for %s...", urlPrefix))
	res := m.argo.RepoCredsAdd(ctx, urlPrefix, username, password)
	if !m.reportTool("repocreds-add", res, "Failed to add credential template.") {
		return nil
	}
	m.console.Success("Successfully added credential template.")
	return nil
}

func (m *Menu) addRepository(ctx context.Context) error {
	m.console.Header("Add a new Repository to ArgoCD")
	m.console.Plain("Note: if this is a private repository, ensure you have added a matching credential template first.")

	repoURL, err := m.prompter.Input("Enter the full Repository URL (e.g., https://github.com/my-org/my-repo.git)", "")
	if err != nil {
		return err
	}

	m.console.Info("Registering repository...")
	res := m.argo.RepoAdd(ctx, repoURL)
	if !m.reportTool("repo-add", res, "Failed to register repository. Ensure the URL is correct and credentials have been added.") {
		return nil
	}
	m.console.Success(fmt.Sprintf("Successfully registered repository %s.", repoURL))
	return nil
}

// promptSyncPolicy asks the automated-sync questions. The prune and
// self-heal prompts only appear once automated sync is enabled.
func (m *Menu) promptSyncPolicy(scope string) (argocd.SyncPolicy, error) {
	var policy argocd.SyncPolicy
	var err error

	if policy.Automated, err = m.prompter.Confirm("Enable automated sync"+scope+"?", false); err != nil {
		return policy, err
	}
	if !policy.Automated {
		return policy, nil
	}
	if policy.AutoPrune, err = m.prompter.Confirm("Enable auto-pruning"+scope+"?", false); err != nil {
		return policy, err
	}
	if policy.SelfHeal, err = m.prompter.Confirm("Enable self-healing"+scope+"?", false); err != nil {
		return policy, err
	}
	return policy, nil
}

func (m *Menu) createApplication(ctx context.Context) error {
	m.console.Header("Create a new ArgoCD Application")

	spec := argocd.AppSpec{}
	var err error
	if spec.Name, err = m.prompter.Input("Application Name", ""); err != nil {
		return err
	}
	if spec.RepoURL, err = m.prompter.Input("Repository URL", ""); err != nil {
		return err
	}
	if spec.Revision, err = m.prompter.Input("Target branch/revision", "HEAD"); err != nil {
		return err
	}
	if spec.Path, err = m.prompter.Input("Path to manifests in repository", ""); err != nil {
		return err
	}
	if spec.DestServer, err = m.prompter.Input("Destination cluster URL", "https://kubernetes.default.svc"); err != nil {
		return err
	}
	if spec.DestNamespace, err = m.prompter.Input("Destination namespace", ""); err != nil {
		return err
	}
	if spec.Project, err = m.prompter.Input("ArgoCD Project", "default"); err != nil {
		return err
	}
	if spec.Sync, err = m.promptSyncPolicy(""); err != nil {
		return err
	}

	m.console.Info(fmt.Sprintf("Creating application %s...", spec.Name))
	res := m.argo.AppCreate(ctx, spec)
	if !m.reportTool("app-create", res, "Failed to create application.") {
		return nil
	}
	m.console.Success(fmt.Sprintf("Successfully created application %q.", spec.Name))
	return nil
}

func (m *Menu) deleteApplication(ctx context.Context) error {
	m.console.Header("Delete an ArgoCD Application")

	name, err := m.prompter.Input("Enter the name of the application to delete", "")
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		m.console.Warn("No application name entered. Aborting.")
		return nil
	}

	confirmed, err := m.prompter.Confirm(fmt.Sprintf("Are you sure you want to delete the application %q?", name), false)
	if err != nil {
		return err
	}
	if !confirmed {
		m.console.Plain("Deletion cancelled.")
		return nil
	}

	m.console.Info(fmt.Sprintf("Deleting application %s...", name))
	res := m.argo.AppDelete(ctx, name)
	if !m.reportTool("app-delete", res, "Failed to delete application. It may not exist.") {
		return nil
	}
	m.console.Success(fmt.Sprintf("Successfully deleted application %q.", name))
	return nil
}

func (m *Menu) listRepositories(ctx context.Context) error {
	m.console.Header("Fetching Repositories...")

	res := m.argo.RepoList(ctx)
	if !m.reportTool("repo-list", res, "Failed to list repositories.") {
		return nil
	}
	if err := presenters.RenderRepositories(m.console.Out, res.Stdout); err != nil {
		return m.reportParseFailure("repo-list", err)
	}
	return nil
}

func (m *Menu) listApplications(ctx context.Context) error {
	m.console.Header("Fetching Applications...")

	res := m.argo.AppList(ctx)
	if !m.reportTool("app-list", res, "Failed to list applications.") {
		return nil
	}
	if err := presenters.RenderApplications(m.console.Out, res.Stdout); err != nil {
		return m.reportParseFailure("app-list", err)
	}
	return nil
}

// reportParseFailure handles malformed-JSON output distinctly from an
// empty result. Anything else is an unexpected fault and unwinds.
func (m *Menu) reportParseFailure(action string, err error) error {
	var malformed *presenters.MalformedJSONError
	if errors.As(err, &malformed) {
		m.log.Error(action, malformed.Error())
		m.console.Error("Could not parse the data received from the ArgoCD CLI.")
		return nil
	}
	return err
}

func (m *Menu) createApplicationBatch(ctx context.Context) error {
	m.console.Header("Create a Batch of ArgoCD Applications")

	namesRaw, err := m.prompter.Input("Enter application names (comma-separated)", "")
	if err != nil {
		return err
	}
	names := splitNames(namesRaw)
	if len(names) == 0 {
		m.console.Warn("No application names entered. Aborting.")
		return nil
	}

	m.console.Header("Enter shared configuration for the batch:")
	shared := argocd.AppSpec{}
	if shared.RepoURL, err = m.prompter.Input("Repository URL", ""); err != nil {
		return err
	}
	if shared.Revision, err = m.prompter.Input("Target branch/revision", "HEAD"); err != nil {
		return err
	}
	environment, err := m.prompter.Input("Environment (e.g., dev, test, uat, prod)", "")
	if err != nil {
		return err
	}
	if shared.DestServer, err = m.prompter.Input("Destination cluster URL", "https://kubernetes.default.svc"); err != nil {
		return err
	}
	if shared.DestNamespace, err = m.prompter.Input("Destination namespace", ""); err != nil {
		return err
	}
	if shared.Project, err = m.prompter.Input("ArgoCD Project", "default"); err != nil {
		return err
	}
	if shared.Sync, err = m.promptSyncPolicy(" for all apps"); err != nil {
		return err
	}

	m.console.Header("Starting batch creation...")
	orchestrator := &batch.Orchestrator{
		Create: func(name, path string) error {
			spec := shared
			spec.Name = name
			spec.Path = path
			m.console.Info(fmt.Sprintf("Creating application %s with path %q...", name, path))
			res := m.argo.AppCreate(ctx, spec)
			m.log.Invocation("app-create-batch", res)
			return res.Err()
		},
		OnError: func(name string, err error) {
			m.console.Error(fmt.Sprintf("Error creating %q.", name))
			m.console.Detail(err.Error())
		},
		Continue: func() (bool, error) {
			return m.prompter.Confirm("An error occurred. Continue with the next application?", false)
		},
	}

	outcome := orchestrator.Run(names, environment)
	if outcome.Aborted {
		m.console.Warn("Batch creation aborted by user.")
	}

	m.console.Header("Batch Creation Summary")
	if err := presenters.RenderBatchSummary(m.console.Out, outcome); err != nil {
		return err
	}
	m.console.Plain("Batch processing finished.")
	return nil
}

// splitNames turns comma-separated input into trimmed, de-duplicated names
// preserving first-occurrence order.
func splitNames(raw string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
