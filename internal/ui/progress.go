package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressController manages the bubbletea program for progress display
type ProgressController struct {
	program *tea.Program
}

// StartProgress starts the progress display if in interactive mode.
// Returns nil if not in interactive mode; all controller methods are
// nil-safe so callers need no guards.
func (ui *UI) StartProgress() *ProgressController {
	if ui.Mode != OutputModeInteractive {
		return nil
	}

	p := tea.NewProgram(NewModel(), tea.WithOutput(ui.ErrWriter))
	ctrl := &ProgressController{program: p}

	go func() {
		_, _ = p.Run()
	}()

	return ctrl
}

// SetStage updates the current stage
func (pc *ProgressController) SetStage(stage Stage) {
	if pc != nil && pc.program != nil {
		pc.program.Send(StageMsg(stage))
	}
}

// SetAnalyzer updates the analyzer name shown as currently running
func (pc *ProgressController) SetAnalyzer(name string) {
	if pc != nil && pc.program != nil {
		pc.program.Send(AnalyzerMsg(name))
	}
}

// SetPercent updates overall completion (0-100)
func (pc *ProgressController) SetPercent(percent float64) {
	if pc != nil && pc.program != nil {
		pc.program.Send(PercentMsg(percent))
	}
}

// Done signals that all work is complete and waits for teardown
func (pc *ProgressController) Done(err error) {
	if pc != nil && pc.program != nil {
		pc.program.Send(DoneMsg{Err: err})
		pc.program.Wait()
	}
}
