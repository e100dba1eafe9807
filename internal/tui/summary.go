package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/conveyorci/conveyor/internal/domain"
)

// RenderRunSummary renders a completed run as a styled per-job, per-step
// report. Every declared job and step appears with icon, status text and,
// where it ran, its duration and exit code.
func RenderRunSummary(result *domain.RunResult) string {
	styles := NewOutputStyles()
	var b strings.Builder

	if result.Status == domain.RunStatusSkipped {
		b.WriteString(styles.Dim.Render(
			fmt.Sprintf("○ %s skipped (triggers did not match the event)", result.WorkflowName)))
		b.WriteString("\n")
		return b.String()
	}

	header := fmt.Sprintf("%s %s", result.WorkflowName, result.Status)
	switch result.Status {
	case domain.RunStatusSuccess:
		b.WriteString(styles.Success.Render("✓ " + header))
	default:
		b.WriteString(styles.Error.Render("✗ " + header))
	}
	b.WriteString(styles.Dim.Render(fmt.Sprintf("  (%s)", formatDuration(result.CompletedAt.Sub(result.StartedAt)))))
	b.WriteString("\n")

	for i := range result.Jobs {
		renderJob(&b, styles, &result.Jobs[i])
	}

	return b.String()
}

func renderJob(b *strings.Builder, styles *OutputStyles, job *domain.JobResult) {
	style := styles.JobStatusStyle(job.Status)
	b.WriteString(style.Render(fmt.Sprintf("%s %s", JobStatusIcon(job.Status), job.JobName)))
	b.WriteString(styles.Dim.Render("  " + string(job.Status)))
	b.WriteString("\n")

	for i := range job.Steps {
		step := &job.Steps[i]
		line := fmt.Sprintf("  %s %s", StepStatusIcon(step.Status), step.StepName)
		b.WriteString(styles.StepStatusStyle(step.Status).Render(line))

		switch step.Status {
		case domain.StepStatusSkipped:
			b.WriteString(styles.Dim.Render("  skipped"))
		case domain.StepStatusSuccess:
			b.WriteString(styles.Dim.Render("  " + formatDuration(step.CompletedAt.Sub(step.StartedAt))))
		default:
			b.WriteString(styles.Dim.Render(fmt.Sprintf("  exit %d, %s",
				step.ExitCode, formatDuration(step.CompletedAt.Sub(step.StartedAt)))))
		}
		b.WriteString("\n")
	}
}

// formatDuration renders a duration at a resolution a terminal reader
// cares about: sub-second runs keep milliseconds, everything longer is
// rounded to tenths of a second.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
