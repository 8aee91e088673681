package results

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edukite/pathfinder/internal/assessment"
	"github.com/edukite/pathfinder/internal/recommend"
	"github.com/edukite/pathfinder/internal/router"
	"github.com/edukite/pathfinder/internal/screen"
)

// countingExporter implements export.Exporter.
type countingExporter struct {
	calls int
	last  assessment.SessionRecord
}

func (e *countingExporter) Export(_ context.Context, rec assessment.SessionRecord) {
	e.calls++
	e.last = rec
}

func testRecord() assessment.SessionRecord {
	return assessment.SessionRecord{
		SessionID:       "sess-1",
		Identity:        assessment.UserDetails{Name: "Jane Doe", Email: "jane@example.com"},
		Recommendations: recommend.Fallback(),
		FallbackUsed:    true,
		Stats:           assessment.Stats{TotalQuestions: 10, Answered: 9, TimedOut: 1, DurationSecs: 184},
	}
}

func TestInitExportsExactlyOnce(t *testing.T) {
	exporter := &countingExporter{}
	s := New(testRecord(), Deps{Exporter: exporter}, nil)

	msg := s.Init()()
	if _, ok := msg.(submittedMsg); !ok {
		t.Fatalf("Init produced %T", msg)
	}
	if exporter.calls != 1 {
		t.Fatalf("exporter called %d times, want 1", exporter.calls)
	}
	if exporter.last.SessionID != "sess-1" {
		t.Errorf("exported record %+v", exporter.last)
	}

	// Browsing and redraws never export again.
	s.Update(msg)
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if exporter.calls != 1 {
		t.Errorf("exporter called %d times after updates, want 1", exporter.calls)
	}
}

func TestBuildSummary(t *testing.T) {
	sum := buildSummary(testRecord())

	if sum.TopRecommendation != recommend.Fallback()[0].Title {
		t.Errorf("top = %q", sum.TopRecommendation)
	}
	if !sum.FallbackUsed || sum.Answered != 9 || sum.TimedOut != 1 || sum.DurationSecs != 184 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestRetakeReplacesWithFreshIntake(t *testing.T) {
	fresh := &stubScreen{}
	s := New(testRecord(), Deps{Exporter: &countingExporter{}}, func() screen.Screen { return fresh })

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("retake produced %T", cmd())
	}
	if replace.Screen != screen.Screen(fresh) {
		t.Error("retake did not use the factory screen")
	}
}

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return "" }
