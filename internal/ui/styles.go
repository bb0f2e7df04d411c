package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style

	// Score styles by band
	ScoreGood lipgloss.Style
	ScoreOK   lipgloss.Style
	ScoreBad  lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Dim       lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconError   string
	IconWarning string
	IconInfo    string
	IconSuccess string
}

// NewStyles creates a new Styles instance.
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))    // Red
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
		s.Info = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))    // Blue
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green

		s.ScoreGood = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
		s.ScoreOK = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
		s.ScoreBad = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))                // Gray

		s.IconError = "✗"
		s.IconWarning = "⚠"
		s.IconInfo = "ℹ"
		s.IconSuccess = "✓"
	} else {
		s.Error = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Info = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		s.ScoreGood = lipgloss.NewStyle()
		s.ScoreOK = lipgloss.NewStyle()
		s.ScoreBad = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Dim = lipgloss.NewStyle()

		s.IconError = "ERROR:"
		s.IconWarning = "WARN:"
		s.IconInfo = "INFO:"
		s.IconSuccess = "OK:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Score returns the style matching a 0-100 score band.
func (s *Styles) Score(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return s.ScoreGood
	case score >= 60:
		return s.ScoreOK
	default:
		return s.ScoreBad
	}
}

// SeverityIcon returns the icon for a severity name.
func (s *Styles) SeverityIcon(severity string) (string, lipgloss.Style) {
	switch severity {
	case "error":
		return s.IconError, s.Error
	case "warning":
		return s.IconWarning, s.Warning
	default:
		return s.IconInfo, s.Info
	}
}
