// Package tui provides terminal output for conveyor.
//
// All colors use AdaptiveColor for light/dark terminal support, and every
// status display carries icon + color + text so state is readable without
// color. Call CheckNoColor at the start of commands that print styled text
// to honor the NO_COLOR convention.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/conveyorci/conveyor/internal/constants"
)

//nolint:gochecknoglobals // Package-level style constants
var (
	// ColorPrimary is blue, used for headings and neutral emphasis.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for successful steps, jobs and runs.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for tolerated failures.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for fatal failures.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for skipped items and secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
)

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
	Header  lipgloss.Style
}

// NewOutputStyles creates the common output styles.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning),
		Info:    lipgloss.NewStyle().Foreground(ColorPrimary),
		Dim:     lipgloss.NewStyle().Foreground(ColorMuted),
		Header:  lipgloss.NewStyle().Bold(true),
	}
}

// CheckNoColor disables styling when the environment asks for it.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value, including empty) or
// TERM=dumb, per https://no-color.org/.
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// StepStatusIcon returns the icon for a step status.
func StepStatusIcon(status constants.StepStatus) string {
	icons := map[constants.StepStatus]string{
		constants.StepStatusSuccess:         "✓",
		constants.StepStatusFailedFatal:     "✗",
		constants.StepStatusFailedTolerated: "⚠",
		constants.StepStatusSkipped:         "○",
	}
	if icon, ok := icons[status]; ok {
		return icon
	}
	return "?"
}

// JobStatusIcon returns the icon for a job status.
func JobStatusIcon(status constants.JobStatus) string {
	icons := map[constants.JobStatus]string{
		constants.JobStatusSuccess: "✓",
		constants.JobStatusFailed:  "✗",
		constants.JobStatusSkipped: "○",
	}
	if icon, ok := icons[status]; ok {
		return icon
	}
	return "?"
}

// StepStatusStyle returns the render style for a step status.
func (s *OutputStyles) StepStatusStyle(status constants.StepStatus) lipgloss.Style {
	switch status {
	case constants.StepStatusSuccess:
		return s.Success
	case constants.StepStatusFailedFatal:
		return s.Error
	case constants.StepStatusFailedTolerated:
		return s.Warning
	default:
		return s.Dim
	}
}

// JobStatusStyle returns the render style for a job status.
func (s *OutputStyles) JobStatusStyle(status constants.JobStatus) lipgloss.Style {
	switch status {
	case constants.JobStatusSuccess:
		return s.Success
	case constants.JobStatusFailed:
		return s.Error
	default:
		return s.Dim
	}
}
