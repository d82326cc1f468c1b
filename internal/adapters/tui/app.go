package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tutsync/internal/adapters/editor"
	"tutsync/internal/adapters/tui/views"
	"tutsync/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPlan ViewState = iota
	ViewConfirm
	ViewApply
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor *editor.Opener

	state   ViewState
	plan    *views.PlanModel
	confirm *views.ConfirmModel
	apply   *views.ApplyModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(release ports.ReleaseStore, workspace ports.Workspace, journal ports.Journal, exclusions []string, ed *editor.Opener) *App {
	return &App{
		editor:  ed,
		state:   ViewPlan,
		plan:    views.NewPlanModel(release, workspace, exclusions, ed != nil),
		confirm: views.NewConfirmModel(),
		apply:   views.NewApplyModel(release, workspace, journal),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.plan.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.plan.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.apply.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToConfirmMsg:
		a.state = ViewConfirm
		a.confirm.SetPlan(msg.Result)
		return a, a.confirm.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToPlanMsg:
		a.state = ViewPlan
		return a, a.plan.Reload()

	case views.ApplyConfirmedMsg:
		a.state = ViewApply
		return a, a.apply.Start(msg.Result)

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPlan:
		_, cmd = a.plan.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewApply:
		_, cmd = a.apply.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewConfirm:
		return a.confirm.View()
	case ViewApply:
		return a.apply.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.plan.View()
	}
}
