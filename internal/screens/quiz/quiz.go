// Package quiz drives the active session: acquisition, the timed question
// loop, analysis, and the hand-off to results.
package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/edukite/pathfinder/internal/assessment"
	"github.com/edukite/pathfinder/internal/catalog"
	"github.com/edukite/pathfinder/internal/export"
	"github.com/edukite/pathfinder/internal/quizgen"
	"github.com/edukite/pathfinder/internal/recommend"
	"github.com/edukite/pathfinder/internal/router"
	"github.com/edukite/pathfinder/internal/screen"
	"github.com/edukite/pathfinder/internal/screens/results"
	"github.com/edukite/pathfinder/internal/store"
	"github.com/edukite/pathfinder/internal/ui/components"
	"github.com/edukite/pathfinder/internal/ui/layout"
)

// Deps are the external services the quiz flow needs.
type Deps struct {
	Generator quizgen.Generator
	Analyzer  recommend.Analyzer
	Catalog   *catalog.Client
	Exporter  export.Exporter
	Store     *store.Store
	Logger    *zap.Logger
}

// QuizScreen implements screen.Screen for a running session.
type QuizScreen struct {
	deps  Deps
	state *assessment.State

	choice      components.OptionChoice
	quitConfirm bool

	// intakeFactory builds a fresh intake screen for restart and retake.
	intakeFactory func() screen.Screen
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the given identity.
func New(deps Deps, details assessment.UserDetails, intakeFactory func() screen.Screen) *QuizScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &QuizScreen{
		deps:          deps,
		state:         assessment.NewState(details),
		intakeFactory: intakeFactory,
	}
}

func (s *QuizScreen) Title() string {
	return "Assessment"
}

func (s *QuizScreen) Init() tea.Cmd {
	assessment.BeginAcquisition(s.state)
	return s.acquire()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.state.Phase {
	case assessment.PhaseErrored:
		return []layout.KeyHint{
			{Key: "R", Description: "Restart"},
			{Key: "Esc", Description: "Quit"},
		}
	case assessment.PhaseActive:
		return []layout.KeyHint{
			{Key: "1-4/↑↓", Description: "Select"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case acquiredMsg:
		return s.handleAcquired(msg)
	case timerTickMsg:
		return s.handleTick(msg)
	case analyzedMsg:
		return s.handleAnalyzed(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// acquire fetches the active offerings and generates the question set in
// one shot. Either failure is fatal for the session; there is no partial
// start and no retry.
func (s *QuizScreen) acquire() tea.Cmd {
	epoch := s.state.Epoch
	return func() tea.Msg {
		ctx := context.Background()

		offerings, err := s.deps.Catalog.FetchActive(ctx)
		if err != nil {
			return acquiredMsg{Epoch: epoch, Err: err}
		}

		questions, err := s.deps.Generator.Generate(ctx, offerings)
		if err != nil {
			return acquiredMsg{Epoch: epoch, Err: err}
		}

		return acquiredMsg{Epoch: epoch, Offerings: offerings, Questions: questions}
	}
}

func (s *QuizScreen) handleAcquired(msg acquiredMsg) (screen.Screen, tea.Cmd) {
	if msg.Epoch != s.state.Epoch {
		return s, nil
	}
	if msg.Err != nil {
		s.deps.Logger.Error("acquisition failed",
			zap.String("session_id", s.state.SessionID), zap.Error(msg.Err))
		assessment.FailAcquisition(s.state, msg.Err)
		return s, nil
	}

	assessment.BeginQuestions(s.state, msg.Offerings, msg.Questions, time.Now())
	s.installQuestion()
	return s, s.tickCmd()
}

// installQuestion rebuilds the option selector for the current question.
func (s *QuizScreen) installQuestion() {
	q := assessment.Current(s.state)
	if q == nil {
		return
	}
	s.choice = components.NewOptionChoice(q.Text, q.Options)
}

// tickCmd schedules the next countdown tick, bound to the current epoch
// and question index.
func (s *QuizScreen) tickCmd() tea.Cmd {
	epoch := s.state.Epoch
	index := s.state.Index
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{Epoch: epoch, Index: index, At: t}
	})
}

func (s *QuizScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Epoch != s.state.Epoch || msg.Index != s.state.Index {
		return s, nil
	}
	if s.state.Phase != assessment.PhaseActive {
		return s, nil
	}

	if assessment.Tick(s.state) {
		// Countdown expiry submits an empty answer for this question.
		return s.submit("")
	}
	return s, s.tickCmd()
}

// submit records the answer for the current question and advances. The
// state machine ignores a second submit for the same question, so a manual
// submit racing the expiry tick records exactly one answer.
func (s *QuizScreen) submit(chosen string) (screen.Screen, tea.Cmd) {
	assessment.RecordAnswer(s.state, chosen, time.Now())

	if s.state.Phase == assessment.PhaseAnalyzing {
		return s, s.analyze()
	}

	s.installQuestion()
	return s, s.tickCmd()
}

// analyze runs the recommendation call. An unusable result is absorbed
// here: the fixed fallback list is substituted and the failure is logged,
// never shown.
func (s *QuizScreen) analyze() tea.Cmd {
	epoch := s.state.Epoch
	answers := assessment.AnswerInputs(s.state)
	offerings := s.state.Offerings
	sessionID := s.state.SessionID
	return func() tea.Msg {
		recs, err := s.deps.Analyzer.Analyze(context.Background(), answers, offerings)
		if err != nil {
			s.deps.Logger.Warn("analysis failed, using fallback recommendations",
				zap.String("session_id", sessionID), zap.Error(err))
			return analyzedMsg{Epoch: epoch, Recs: recommend.Fallback(), FallbackUsed: true}
		}
		return analyzedMsg{Epoch: epoch, Recs: recs}
	}
}

func (s *QuizScreen) handleAnalyzed(msg analyzedMsg) (screen.Screen, tea.Cmd) {
	if msg.Epoch != s.state.Epoch {
		return s, nil
	}

	assessment.Complete(s.state, msg.Recs, msg.FallbackUsed)
	rec := assessment.BuildRecord(s.state)

	next := results.New(rec, results.Deps{
		Exporter: s.deps.Exporter,
		Store:    s.deps.Store,
		Logger:   s.deps.Logger,
	}, s.intakeFactory)

	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, tea.Quit
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	switch s.state.Phase {
	case assessment.PhaseErrored:
		if key == "r" || key == "R" {
			return s.restart()
		}
		return s, nil

	case assessment.PhaseActive:
		if key == "enter" {
			// Submitting requires a selection; expiry is the only path
			// that records an empty answer.
			if !s.choice.HasSelection() {
				return s, nil
			}
			return s.submit(s.choice.Value())
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd
	}

	return s, nil
}

// restart abandons the failed session and returns to intake. The reset
// bumps the epoch so anything still in flight is recognized as stale.
func (s *QuizScreen) restart() (screen.Screen, tea.Cmd) {
	assessment.Reset(s.state)
	next := s.intakeFactory()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}
