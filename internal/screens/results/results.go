// Package results presents the final recommendations and hands the
// completed session to the exporter and the local history store.
package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/edukite/pathfinder/internal/assessment"
	"github.com/edukite/pathfinder/internal/export"
	"github.com/edukite/pathfinder/internal/router"
	"github.com/edukite/pathfinder/internal/screen"
	"github.com/edukite/pathfinder/internal/store"
	"github.com/edukite/pathfinder/internal/ui/components"
	"github.com/edukite/pathfinder/internal/ui/layout"
	"github.com/edukite/pathfinder/internal/ui/theme"
)

// Deps are the side-effect services the results screen drives.
type Deps struct {
	Exporter export.Exporter
	Store    *store.Store
	Logger   *zap.Logger
}

// submittedMsg confirms the one-shot export attempt finished, success or
// not. It only clears the "submitting" hint.
type submittedMsg struct{}

// ResultsScreen implements screen.Screen for the recommendation display.
type ResultsScreen struct {
	record   assessment.SessionRecord
	deps     Deps
	selected int
	exported bool

	retakeFactory func() screen.Screen
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a completed session.
func New(record assessment.SessionRecord, deps Deps, retakeFactory func() screen.Screen) *ResultsScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &ResultsScreen{
		record:        record,
		deps:          deps,
		retakeFactory: retakeFactory,
	}
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

// Init fires the single export attempt and the history append. Both are
// best-effort: the results stay on screen whatever happens to them.
func (s *ResultsScreen) Init() tea.Cmd {
	rec := s.record
	exporter := s.deps.Exporter
	st := s.deps.Store
	logger := s.deps.Logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		if exporter != nil {
			exporter.Export(ctx, rec)
		}

		if st != nil {
			if err := st.AppendSession(ctx, buildSummary(rec)); err != nil {
				logger.Warn("history append failed",
					zap.String("session_id", rec.SessionID), zap.Error(err))
			}
		}

		return submittedMsg{}
	}
}

func buildSummary(rec assessment.SessionRecord) store.SessionSummaryData {
	var top string
	if len(rec.Recommendations) > 0 {
		top = rec.Recommendations[0].Title
	}
	return store.SessionSummaryData{
		SessionID:         rec.SessionID,
		Name:              rec.Identity.Name,
		Email:             rec.Identity.Email,
		TotalQuestions:    rec.Stats.TotalQuestions,
		Answered:          rec.Stats.Answered,
		TimedOut:          rec.Stats.TimedOut,
		DurationSecs:      rec.Stats.DurationSecs,
		TopRecommendation: top,
		FallbackUsed:      rec.FallbackUsed,
	}
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "R", Description: "Retake"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		s.exported = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q", "esc":
			return s, tea.Quit
		case "r", "R":
			return s.retake()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.record.Recommendations)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

// retake discards this session entirely and starts a fresh intake.
func (s *ResultsScreen) retake() (screen.Screen, tea.Cmd) {
	next := s.retakeFactory()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	answered := fmt.Sprintf("You answered %d of %d questions in %s.",
		s.record.Stats.Answered,
		s.record.Stats.TotalQuestions,
		formatDuration(s.record.Stats.DurationSecs),
	)
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("Great work, %s!", firstName(s.record.Identity.Name))))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(answered))
	b.WriteString("\n\n")

	cardWidth := min(width-8, 76)
	for i := range s.record.Recommendations {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderRecommendation(i, cardWidth)))
		b.WriteString("\n")
	}

	if !s.exported {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Saving your results..."))
	}

	return b.String()
}

func (s *ResultsScreen) renderRecommendation(i, cardWidth int) string {
	rec := s.record.Recommendations[i]

	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%d. %s", i+1, rec.Title))
	match := components.NewProgressBar("Match", float64(rec.MatchPercentage)/100, true, cardWidth-8)

	lines := []string{header, match.View()}

	if i == s.selected {
		body := theme.Body.Render(rec.Description)
		skills := theme.Hint.Render("Skills: " + strings.Join(rec.Skills, ", "))
		path := theme.Hint.Render("Path: " + strings.Join(rec.EducationPath, " · "))
		lines = append(lines, "", body, skills, path)
		if rec.Link != "" {
			lines = append(lines, theme.Hint.Render("More: "+rec.Link))
		}
	}

	style := theme.Card.Width(cardWidth)
	if i == s.selected {
		style = style.BorderForeground(theme.Primary)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func firstName(full string) string {
	if idx := strings.IndexByte(full, ' '); idx > 0 {
		return full[:idx]
	}
	return full
}

func formatDuration(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}
