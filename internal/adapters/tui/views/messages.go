package views

import "tutsync/internal/application/commands"

// SwitchToPlanMsg returns to the plan browser (the plan is recomputed)
type SwitchToPlanMsg struct{}

// SwitchToConfirmMsg asks for confirmation of the given plan
type SwitchToConfirmMsg struct {
	Result *commands.PlanResult
}

// SwitchToHelpMsg shows the help view
type SwitchToHelpMsg struct{}

// ApplyConfirmedMsg indicates the operator confirmed the plan
type ApplyConfirmedMsg struct {
	Result *commands.PlanResult
}

// OpenEditorMsg asks the app to open a document in the external editor
type OpenEditorMsg struct {
	Path string
}
