package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tutsync/internal/adapters/tui/styles"
)

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, PlanKeys.Quit) {
			return m, tea.Quit
		}
		return m, func() tea.Msg { return SwitchToPlanMsg{} }
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	rows := []struct {
		keys string
		desc string
	}{
		{"↑/k, ↓/j", "move between plan entries"},
		{"s, enter", "start a sync (asks for confirmation)"},
		{"r", "recompute the plan"},
		{"c", "copy the selected document's workspace path"},
		{"e", "open the selected working copy in $EDITOR"},
		{"?", "this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(styles.HelpKey.Render(row.keys))
		b.WriteString("\n  ")
		b.WriteString(styles.HelpDesc.Render(row.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("press any key to return"))

	return styles.App.Render(b.String())
}
