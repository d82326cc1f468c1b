package views

import (
	"bytes"
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tutsync/internal/adapters/tui/styles"
	"tutsync/internal/application/commands"
	"tutsync/internal/ports"
)

// ApplyModel is the model for the apply results view
type ApplyModel struct {
	ViewState
	release   ports.ReleaseStore
	workspace ports.Workspace
	journal   ports.Journal

	running bool
	lines   []string
	summary string
	err     error
}

// NewApplyModel creates a new apply view model
func NewApplyModel(release ports.ReleaseStore, workspace ports.Workspace, journal ports.Journal) *ApplyModel {
	return &ApplyModel{
		release:   release,
		workspace: workspace,
		journal:   journal,
	}
}

// applyDoneMsg carries the outcome of an apply run
type applyDoneMsg struct {
	lines   []string
	summary string
	err     error
}

// Start applies the confirmed plan and collects one line per operation
func (m *ApplyModel) Start(result *commands.PlanResult) tea.Cmd {
	m.running = true
	m.lines = nil
	m.summary = ""
	m.err = nil

	return func() tea.Msg {
		var out bytes.Buffer
		cmd := commands.NewApplyCommand(m.release, m.workspace, m.journal, &out, result)
		applied, err := cmd.Execute(context.Background())

		var lines []string
		if trimmed := strings.TrimSpace(out.String()); trimmed != "" {
			lines = strings.Split(trimmed, "\n")
		}

		msg := applyDoneMsg{lines: lines, err: err}
		if applied != nil {
			msg.summary = applied.Message
		}
		return msg
	}
}

// Init initializes the apply view
func (m *ApplyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the apply view
func (m *ApplyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case applyDoneMsg:
		m.running = false
		m.lines = msg.lines
		m.summary = msg.summary
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.running {
			return m, nil
		}
		switch {
		case key.Matches(msg, PlanKeys.Quit):
			return m, tea.Quit
		default:
			// Any other key returns to the (recomputed) plan
			return m, func() tea.Msg { return SwitchToPlanMsg{} }
		}
	}

	return m, nil
}

// View renders the apply view
func (m *ApplyModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Applying Sync"))
	b.WriteString("\n\n")

	if m.running {
		b.WriteString(styles.MutedText.Render("Copying and deleting documents..."))
		return styles.App.Render(b.String())
	}

	for _, line := range m.lines {
		if strings.HasPrefix(line, "delete ") {
			b.WriteString(styles.EntryRemove.Render(line))
		} else {
			b.WriteString(styles.EntryAdd.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(styles.ErrorMsg.Render(m.err.Error()))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("The workspace may be partially updated; re-run to recompute the plan."))
	} else {
		b.WriteString(styles.SuccessMsg.Render(m.summary))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("press any key to return, "))
	b.WriteString(styles.HelpKey.Render("q"))
	b.WriteString(styles.HelpDesc.Render(" to quit"))

	return styles.App.Render(b.String())
}
