package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tutsync/internal/adapters/tui/styles"
	"tutsync/internal/application"
	"tutsync/internal/application/commands"
	"tutsync/internal/ports"
)

// PlanKeyMap defines key bindings for the plan view
type PlanKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Sync     key.Binding
	Reload   key.Binding
	CopyPath key.Binding
	Edit     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// PlanKeys returns the default plan view key bindings
var PlanKeys = PlanKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Sync: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "sync"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy path"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PlanModel is the model for the plan browser view
type PlanModel struct {
	ViewState
	release    ports.ReleaseStore
	workspace  ports.Workspace
	exclusions []string
	canEdit    bool

	result  *commands.PlanResult
	entries []application.PlanEntry
	cursor  int
	keys    PlanKeyMap
}

// NewPlanModel creates a new plan view model
func NewPlanModel(release ports.ReleaseStore, workspace ports.Workspace, exclusions []string, canEdit bool) *PlanModel {
	return &PlanModel{
		release:    release,
		workspace:  workspace,
		exclusions: exclusions,
		canEdit:    canEdit,
		keys:       PlanKeys,
	}
}

// planLoadedMsg carries a freshly computed plan
type planLoadedMsg struct {
	result *commands.PlanResult
}

// planErrMsg indicates the plan could not be computed
type planErrMsg struct {
	err error
}

// Init initializes the plan view
func (m *PlanModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload recomputes the plan from current store state
func (m *PlanModel) Reload() tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewPlanCommand(m.release, m.workspace, m.exclusions)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return planErrMsg{err: err}
		}
		return planLoadedMsg{result: result}
	}
}

// Update handles messages for the plan view
func (m *PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case planLoadedMsg:
		m.result = msg.result
		m.entries = msg.result.Plan.Entries()
		if m.cursor >= len(m.entries) {
			m.cursor = 0
		}
		m.ClearMessage()
		return m, nil

	case planErrMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *PlanModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.Reload()

	case key.Matches(msg, m.keys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, m.keys.Sync):
		if m.result == nil || m.result.Plan.IsEmpty() {
			m.SetMessage("Workspace is up to date, nothing to sync", false)
			return m, nil
		}
		result := m.result
		return m, func() tea.Msg { return SwitchToConfirmMsg{Result: result} }

	case key.Matches(msg, m.keys.CopyPath):
		if entry, ok := m.selected(); ok {
			path := m.workspace.Path(entry.Name)
			clipboard.WriteAll(path)
			m.SetMessage(fmt.Sprintf("Copied %s", path), false)
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if !m.canEdit {
			return m, nil
		}
		// Removed documents have no working copy left to edit
		if entry, ok := m.selected(); ok && entry.Kind != application.OpRemove {
			path := m.workspace.Path(entry.Name)
			return m, func() tea.Msg { return OpenEditorMsg{Path: path} }
		}
		return m, nil
	}

	return m, nil
}

func (m *PlanModel) selected() (application.PlanEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return application.PlanEntry{}, false
	}
	return m.entries[m.cursor], true
}

// View renders the plan view
func (m *PlanModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("tutsync"))
	b.WriteString("\n")

	if m.result != nil {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("Release version: %s", m.result.Version)))
		b.WriteString("\n")
	}

	if len(m.entries) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Workspace is up to date."))
		b.WriteString("\n")
	} else {
		for i, entry := range m.entries {
			b.WriteString("\n")
			b.WriteString(m.renderEntry(entry, i == m.cursor))
		}
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.SuccessMsg.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return styles.App.Render(b.String())
}

func (m *PlanModel) renderEntry(entry application.PlanEntry, selected bool) string {
	label := fmt.Sprintf("%-8s %s", entry.Kind.String(), entry.Name)
	if selected {
		return styles.EntrySelected.Render("> " + label)
	}

	switch entry.Kind {
	case application.OpAdd:
		return "  " + styles.EntryAdd.Render(label)
	case application.OpRemove:
		return "  " + styles.EntryRemove.Render(label)
	default:
		return "  " + styles.EntryRefresh.Render(label)
	}
}

func (m *PlanModel) renderHelp() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Sync, m.keys.Reload, m.keys.CopyPath,
	}
	if m.canEdit {
		bindings = append(bindings, m.keys.Edit)
	}
	bindings = append(bindings, m.keys.Help, m.keys.Quit)

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpDesc.Render(" • "))
}
