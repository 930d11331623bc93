// Where: internal/menu/menu.go
// What: Session state machine, action registry, and the interactive loop.
// Why: The offered action set changes with login state; dispatch stays a fixed table.
package menu

import (
	"context"
	"sort"

	"github.com/argonaut-cli/argonaut/internal/argocd"
	"github.com/argonaut-cli/argonaut/internal/audit"
	"github.com/argonaut-cli/argonaut/internal/interaction"
	"github.com/argonaut-cli/argonaut/internal/kubectl"
	"github.com/argonaut-cli/argonaut/internal/ui"
)

// Action enumerates every menu operation. The set is fixed at startup;
// availability is the only thing that changes with session state.
type Action int

const (
	ActionNone Action = iota
	ActionInstall
	ActionStatus
	ActionUninstall
	ActionAddCredTemplate
	ActionAddRepository
	ActionCreateApp
	ActionCreateAppBatch
	ActionDeleteApp
	ActionListApps
	ActionListRepos
	ActionRetryLogin
	ActionExit
)

type entry struct {
	action       Action
	label        string
	requiresAuth bool
}

// registry is the immutable action set. Setup actions are always offered;
// auth-required actions are swapped for a single retry-login entry while
// unauthenticated.
var registry = []entry{
	{ActionInstall, "Install ArgoCD", false},
	{ActionStatus, "Check ArgoCD Installation Status", false},
	{ActionUninstall, "Uninstall ArgoCD", false},
	{ActionAddCredTemplate, "Add Credential Template", true},
	{ActionAddRepository, "Add Repository", true},
	{ActionCreateApp, "Create Application", true},
	{ActionCreateAppBatch, "Create Application Batch", true},
	{ActionDeleteApp, "Delete Application", true},
	{ActionListApps, "List Applications", true},
	{ActionListRepos, "List Repositories", true},
}

const (
	retryLoginLabel = "Login to ArgoCD"
	exitLabel       = "Exit"
)

// Deps are the collaborators of the interactive session.
type Deps struct {
	Console  *ui.Console
	Prompter interaction.Prompter
	Argo     *argocd.Client
	Kube     *kubectl.Client
	Log      *audit.Log
}

// Menu owns the session state and runs the interactive loop.
type Menu struct {
	console  *ui.Console
	prompter interaction.Prompter
	argo     *argocd.Client
	kube     *kubectl.Client
	log      *audit.Log

	authenticated bool
	handlers      map[Action]func(context.Context) error
}

// New builds a menu in the Unauthenticated state.
func New(deps Deps) *Menu {
	m := &Menu{
		console:  deps.Console,
		prompter: deps.Prompter,
		argo:     deps.Argo,
		kube:     deps.Kube,
		log:      deps.Log,
	}
	m.handlers = map[Action]func(context.Context) error{
		ActionInstall:         m.installArgoCD,
		ActionStatus:          m.checkInstallStatus,
		ActionUninstall:       m.uninstallArgoCD,
		ActionAddCredTemplate: m.addCredentialTemplate,
		ActionAddRepository:   m.addRepository,
		ActionCreateApp:       m.createApplication,
		ActionCreateAppBatch:  m.createApplicationBatch,
		ActionDeleteApp:       m.deleteApplication,
		ActionListApps:        m.listApplications,
		ActionListRepos:       m.listRepositories,
	}
	return m
}

// Authenticated reports the current session state.
func (m *Menu) Authenticated() bool {
	return m.authenticated
}

// options returns the live choice set: valid labels sorted lexicographically
// with Exit forced last. Choices are made against this exact slice, so a
// stale or out-of-range ordinal cannot occur.
func (m *Menu) options() []interaction.SelectOption {
	var entries []entry
	for _, e := range registry {
		if e.requiresAuth && !m.authenticated {
			continue
		}
		entries = append(entries, e)
	}
	if !m.authenticated {
		entries = append(entries, entry{ActionRetryLogin, retryLoginLabel, false})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].label < entries[j].label })
	entries = append(entries, entry{ActionExit, exitLabel, false})

	options := make([]interaction.SelectOption, len(entries))
	for i, e := range entries {
		options[i] = interaction.SelectOption{Label: e.label, Value: e.label}
	}
	return options
}

// actionByLabel maps a selected label back to its action.
func (m *Menu) actionByLabel(label string) Action {
	switch label {
	case retryLoginLabel:
		return ActionRetryLogin
	case exitLabel:
		return ActionExit
	}
	for _, e := range registry {
		if e.label == label {
			return e.action
		}
	}
	return ActionNone
}

// Loop runs the main menu until exit or interruption. Only unexpected
// faults are returned; invocation failures are handled in place.
func (m *Menu) Loop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			m.console.Warn("Interrupted. Exiting gracefully.")
			return nil
		}

		label, err := m.prompter.Select("Main Menu", m.options())
		if err != nil {
			if interaction.IsAborted(err) || ctx.Err() != nil {
				m.console.Warn("Interrupted. Exiting gracefully.")
				return nil
			}
			return err
		}

		switch action := m.actionByLabel(label); action {
		case ActionExit:
			m.console.Plain("Exiting.")
			return nil
		case ActionRetryLogin:
			if err := m.retryLogin(ctx); err != nil {
				if interaction.IsAborted(err) {
					m.console.Warn("Interrupted. Exiting gracefully.")
					return nil
				}
				return err
			}
		default:
			handler, ok := m.handlers[action]
			if !ok {
				continue
			}
			if err := handler(ctx); err != nil {
				if interaction.IsAborted(err) {
					m.console.Warn("Interrupted. Exiting gracefully.")
					return nil
				}
				return err
			}
		}
	}
}
