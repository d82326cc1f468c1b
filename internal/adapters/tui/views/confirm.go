package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tutsync/internal/adapters/tui/styles"
	"tutsync/internal/application/commands"
)

// ConfirmModel is the model for the sync confirmation view
type ConfirmModel struct {
	ConfirmationModel
	result *commands.PlanResult
}

// NewConfirmModel creates a new sync confirmation view model
func NewConfirmModel() *ConfirmModel {
	return &ConfirmModel{
		ConfirmationModel: NewConfirmationModel(),
	}
}

// SetPlan sets the plan awaiting confirmation
func (m *ConfirmModel) SetPlan(result *commands.PlanResult) {
	m.result = result
}

// Init initializes the confirmation view
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return ApplyConfirmedMsg{Result: m.result} },
			func() tea.Msg { return SwitchToPlanMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

// View renders the confirmation view
func (m *ConfirmModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Sync Confirmation"))
	b.WriteString("\n\n")

	if m.result != nil {
		plan := m.result.Plan
		b.WriteString(styles.InputLabel.Render(fmt.Sprintf("Apply release %s:", m.result.Version)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %d refreshed, %d added, %d removed\n", len(plan.Refreshed), len(plan.Added), len(plan.Removed)))
		b.WriteString("\n")
	}

	b.WriteString(styles.ErrorMsg.Render("Working copies in these categories will be overwritten or deleted!"))
	b.WriteString("\n\n")

	b.WriteString(RenderConfirmPrompt("Are you sure?"))

	return styles.App.Render(b.String())
}
