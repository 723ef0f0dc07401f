package tui

import tea "github.com/charmbracelet/bubbletea"

// RootModel wraps the login page: it owns the global ctrl+c and finishes
// the program once a login succeeds.
type RootModel struct {
	current    tea.Model
	quitByUser bool
}

func NewRootModel(start tea.Model) RootModel {
	return RootModel{current: start}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		r.quitByUser = true
		return r, tea.Quit
	}

	if result, ok := msg.(loginResultMsg); ok && result.err == nil {
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}
	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.current == nil {
		return renderPage("INFAQ", "", "")
	}
	return r.current.View()
}
