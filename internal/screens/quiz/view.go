package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/edukite/pathfinder/internal/assessment"
	"github.com/edukite/pathfinder/internal/ui/components"
	"github.com/edukite/pathfinder/internal/ui/theme"
)

// urgentThreshold is the remaining-seconds mark where the timer turns red.
const urgentThreshold = 10

func (s *QuizScreen) View(width, height int) string {
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}

	switch s.state.Phase {
	case assessment.PhaseAcquiring:
		return renderCentered(width, "Preparing your assessment...")
	case assessment.PhaseErrored:
		return s.renderErrored(width)
	case assessment.PhaseActive:
		return s.renderQuestion(width)
	case assessment.PhaseAnalyzing:
		return renderCentered(width, "Analyzing your answers...")
	}
	return ""
}

func (s *QuizScreen) renderQuestion(width int) string {
	state := s.state
	total := len(state.Questions)

	var b strings.Builder

	// Position and countdown line.
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", state.Index+1, total),
		float64(state.Index)/float64(total),
		false,
		width/2,
	)

	timerStyle := theme.TimerCalm
	if state.Remaining <= urgentThreshold {
		timerStyle = theme.TimerUrgent
	}
	timer := timerStyle.Render(fmt.Sprintf("⏱ %2ds", state.Remaining))

	infoLeft := "  " + progress.View()
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(timer) - 4
	if rightPad < 1 {
		rightPad = 1
	}
	b.WriteString(infoLeft + strings.Repeat(" ", rightPad) + timer)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	q := assessment.Current(state)
	if q != nil {
		category := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(string(q.Category))
		b.WriteString(category)
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	return b.String()
}

func (s *QuizScreen) renderErrored(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("We couldn't prepare your assessment."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.state.AcquisitionErr))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Press R to start over."))
	return b.String()
}

func renderCentered(width int, text string) string {
	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(text)
}

func renderQuitConfirm(width int) string {
	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Quit the assessment? Your progress will be lost. (y/n)")
}
