// Where: internal/menu/mock_prompter_test.go
// What: Test helper prompter with scripted answers.
// Why: Deterministic input/select/confirm behavior without a TTY.
package menu

import (
	"github.com/argonaut-cli/argonaut/internal/interaction"
)

// useDefault makes a scripted Input answer fall back to the prompt default.
const useDefault = "\x00default"

type mockPrompter struct {
	inputs   []string
	secrets  []string
	confirms []bool
	selects  []string

	// selectErr is returned once the selects queue is drained, to script
	// an aborted prompt. Otherwise a drained queue selects Exit.
	selectErr error

	inputTitles   []string
	secretTitles  []string
	confirmTitles []string
	offered       [][]string
}

func (m *mockPrompter) Input(title, def string) (string, error) {
	m.inputTitles = append(m.inputTitles, title)
	if len(m.inputs) == 0 {
		return def, nil
	}
	value := m.inputs[0]
	m.inputs = m.inputs[1:]
	if value == useDefault {
		return def, nil
	}
	return value, nil
}

func (m *mockPrompter) Secret(title string) (string, error) {
	m.secretTitles = append(m.secretTitles, title)
	if len(m.secrets) == 0 {
		return "", nil
	}
	value := m.secrets[0]
	m.secrets = m.secrets[1:]
	return value, nil
}

func (m *mockPrompter) Confirm(title string, def bool) (bool, error) {
	m.confirmTitles = append(m.confirmTitles, title)
	if len(m.confirms) == 0 {
		return def, nil
	}
	value := m.confirms[0]
	m.confirms = m.confirms[1:]
	return value, nil
}

func (m *mockPrompter) Select(_ string, options []interaction.SelectOption) (string, error) {
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}
	m.offered = append(m.offered, labels)

	if len(m.selects) == 0 {
		if m.selectErr != nil {
			return "", m.selectErr
		}
		return exitLabel, nil
	}
	value := m.selects[0]
	m.selects = m.selects[1:]
	return value, nil
}

// promptCount is the total number of prompts issued.
func (m *mockPrompter) promptCount() int {
	return len(m.inputTitles) + len(m.secretTitles) + len(m.confirmTitles)
}
