package quiz

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edukite/pathfinder/internal/assessment"
	"github.com/edukite/pathfinder/internal/catalog"
	"github.com/edukite/pathfinder/internal/quizgen"
	"github.com/edukite/pathfinder/internal/recommend"
	"github.com/edukite/pathfinder/internal/router"
	"github.com/edukite/pathfinder/internal/screen"
	"github.com/edukite/pathfinder/internal/screens/results"
)

var testDetails = assessment.UserDetails{Name: "Jane Doe", Email: "jane@example.com", Phone: "9876543210"}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// stubGenerator implements quizgen.Generator.
type stubGenerator struct {
	questions []quizgen.Question
	err       error
	calls     int
}

func (g *stubGenerator) Generate(_ context.Context, _ []catalog.Offering) ([]quizgen.Question, error) {
	g.calls++
	return g.questions, g.err
}

// stubAnalyzer implements recommend.Analyzer.
type stubAnalyzer struct {
	recs  []recommend.Recommendation
	err   error
	calls int
}

func (a *stubAnalyzer) Analyze(_ context.Context, _ []recommend.AnswerInput, _ []catalog.Offering) ([]recommend.Recommendation, error) {
	a.calls++
	return a.recs, a.err
}

func makeQuestions(n int) []quizgen.Question {
	qs := make([]quizgen.Question, n)
	for i := range qs {
		qs[i] = quizgen.Question{
			ID:       i + 1,
			Text:     fmt.Sprintf("Question %d?", i+1),
			Options:  []string{"w", "x", "y", "z"},
			Category: quizgen.Categories[i],
		}
	}
	return qs
}

func catalogServer(t *testing.T) *catalog.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"id": "c1", "title": "Course One"}]}`))
	}))
	t.Cleanup(srv.Close)
	return catalog.NewClient(srv.URL)
}

// startActive drives a fresh QuizScreen through acquisition into the
// active phase.
func startActive(t *testing.T, gen *stubGenerator, an *stubAnalyzer) *QuizScreen {
	t.Helper()
	deps := Deps{
		Generator: gen,
		Analyzer:  an,
		Catalog:   catalogServer(t),
	}
	s := New(deps, testDetails, func() screen.Screen { return nil })

	msg := s.Init()()
	acq, ok := msg.(acquiredMsg)
	if !ok {
		t.Fatalf("Init produced %T", msg)
	}
	s.Update(acq)
	return s
}

func TestAcquisitionStartsSession(t *testing.T) {
	gen := &stubGenerator{questions: makeQuestions(10)}
	s := startActive(t, gen, &stubAnalyzer{})

	if s.state.Phase != assessment.PhaseActive {
		t.Fatalf("phase = %v, want active", s.state.Phase)
	}
	if len(s.state.Offerings) != 1 || s.state.Offerings[0].ID != "c1" {
		t.Errorf("offering cache = %+v", s.state.Offerings)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestAcquisitionFailureIsFatal(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model overloaded")}
	s := startActive(t, gen, &stubAnalyzer{})

	if s.state.Phase != assessment.PhaseErrored {
		t.Fatalf("phase = %v, want errored", s.state.Phase)
	}
	// No second attempt happens on its own.
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}

	// Answers are refused; only restart leaves this state.
	s.Update(specialKey(tea.KeyEnter))
	if len(s.state.Answers) != 0 {
		t.Error("errored session recorded an answer")
	}
}

func TestCountdownExpiryAutoSubmitsEmpty(t *testing.T) {
	gen := &stubGenerator{questions: makeQuestions(10)}
	s := startActive(t, gen, &stubAnalyzer{})

	for i := 0; i < assessment.QuestionTimeLimit; i++ {
		s.Update(timerTickMsg{Epoch: s.state.Epoch, Index: 0})
	}

	if len(s.state.Answers) != 1 {
		t.Fatalf("got %d answers, want 1", len(s.state.Answers))
	}
	if s.state.Answers[0].ChosenOption != "" {
		t.Errorf("timeout answer = %q, want empty", s.state.Answers[0].ChosenOption)
	}
	if s.state.Index != 1 {
		t.Errorf("index = %d, want 1", s.state.Index)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	gen := &stubGenerator{questions: makeQuestions(10)}
	s := startActive(t, gen, &stubAnalyzer{})

	before := s.state.Remaining

	// A tick for a previous question or a previous session does nothing.
	s.Update(timerTickMsg{Epoch: s.state.Epoch, Index: 5})
	s.Update(timerTickMsg{Epoch: s.state.Epoch - 1, Index: 0})

	if s.state.Remaining != before {
		t.Errorf("stale tick changed countdown: %d -> %d", before, s.state.Remaining)
	}
}

func TestManualSubmitRequiresSelection(t *testing.T) {
	gen := &stubGenerator{questions: makeQuestions(10)}
	s := startActive(t, gen, &stubAnalyzer{})

	s.Update(specialKey(tea.KeyEnter))
	if len(s.state.Answers) != 0 {
		t.Fatal("submit without selection recorded an answer")
	}

	s.Update(keyPress('j'))
	s.Update(specialKey(tea.KeyEnter))
	if len(s.state.Answers) != 1 {
		t.Fatalf("got %d answers, want 1", len(s.state.Answers))
	}
	if s.state.Answers[0].ChosenOption != "w" {
		t.Errorf("answer = %q, want first option", s.state.Answers[0].ChosenOption)
	}
}

func TestLastAnswerTriggersAnalysis(t *testing.T) {
	gen := &stubGenerator{questions: makeQuestions(2)}
	an := &stubAnalyzer{recs: recommend.Fallback()[:2]}
	s := startActive(t, gen, an)

	for i := 0; i < 2; i++ {
		s.Update(keyPress('j'))
		_, cmd := s.Update(specialKey(tea.KeyEnter))
		if i == 1 {
			if s.state.Phase != assessment.PhaseAnalyzing {
				t.Fatalf("phase = %v, want analyzing", s.state.Phase)
			}
			msg := cmd()
			analyzed, ok := msg.(analyzedMsg)
			if !ok {
				t.Fatalf("analysis produced %T", msg)
			}
			if analyzed.FallbackUsed {
				t.Error("successful analysis flagged as fallback")
			}
			_, pushCmd := s.Update(analyzed)
			push, ok := pushCmd().(router.PushScreenMsg)
			if !ok {
				t.Fatalf("expected results push, got %T", pushCmd())
			}
			if _, ok := push.Screen.(*results.ResultsScreen); !ok {
				t.Errorf("pushed %T", push.Screen)
			}
		}
	}

	if an.calls != 1 {
		t.Errorf("analyzer called %d times, want 1", an.calls)
	}
}

func TestAnalysisFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{questions: makeQuestions(1)}
	an := &stubAnalyzer{err: errors.New("refused to rank")}
	s := startActive(t, gen, an)

	s.Update(keyPress('j'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	analyzed, ok := cmd().(analyzedMsg)
	if !ok {
		t.Fatalf("analysis produced %T", cmd())
	}
	if !analyzed.FallbackUsed {
		t.Fatal("failed analysis did not fall back")
	}
	if len(analyzed.Recs) != 3 {
		t.Errorf("fallback produced %d recommendations", len(analyzed.Recs))
	}
	if an.calls != 1 {
		t.Errorf("analyzer called %d times, want 1 (no retry)", an.calls)
	}

	s.Update(analyzed)
	if s.state.Phase != assessment.PhaseResults || !s.state.FallbackUsed {
		t.Errorf("state after fallback: phase=%v fallback=%v", s.state.Phase, s.state.FallbackUsed)
	}
}

func TestRestartAfterFailureResetsSession(t *testing.T) {
	gen := &stubGenerator{err: errors.New("bad gateway")}
	s := startActive(t, gen, &stubAnalyzer{})

	oldEpoch := s.state.Epoch
	_, cmd := s.Update(keyPress('r'))

	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("restart produced %T", cmd())
	}
	if s.state.Epoch == oldEpoch {
		t.Error("restart did not bump the epoch")
	}
	if s.state.Identity != (assessment.UserDetails{}) {
		t.Error("restart kept the identity")
	}
}
