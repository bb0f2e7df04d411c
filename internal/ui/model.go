package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stage represents the current stage of a review run
type Stage int

const (
	StageLoadDocument Stage = iota
	StageLoadGuideline
	StageRunAnalyzers
	StageDone
)

// Message types for updating the model
type (
	StageMsg    Stage
	AnalyzerMsg string  // display name of the analyzer now running
	PercentMsg  float64 // overall completion, 0-100
	DoneMsg     struct{ Err error }
)

// Model is the Bubbletea model for progress display
type Model struct {
	stage    Stage
	spinner  spinner.Model
	progress progress.Model
	analyzer string
	percent  float64
	width    int
	quitting bool
	err      error
}

// NewModel creates a new progress model
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := progress.New(progress.WithDefaultGradient())

	return Model{
		stage:    StageLoadDocument,
		spinner:  s,
		progress: p,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 4
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StageMsg:
		m.stage = Stage(msg)
		return m, nil

	case AnalyzerMsg:
		m.analyzer = string(msg)
		return m, nil

	case PercentMsg:
		// progress only moves forward within one run
		if float64(msg) > m.percent {
			m.percent = float64(msg)
		}
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	switch m.stage {
	case StageLoadDocument:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Loading document...")

	case StageLoadGuideline:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Loading guideline...")

	case StageRunAnalyzers:
		sb.WriteString(m.progress.ViewAs(m.percent / 100))
		sb.WriteString("\n")
		sb.WriteString(m.spinner.View())
		sb.WriteString(" ")
		if m.analyzer != "" {
			sb.WriteString(fmt.Sprintf("Running %s...", m.analyzer))
		} else {
			sb.WriteString("Running analyzers...")
		}
	}

	return sb.String()
}
