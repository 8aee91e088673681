// Package assessment owns the session lifecycle: Intake, the active timed
// questionnaire, analysis, and results. State transitions are pure functions
// over State so the invariants (one answer per question, in order, append
// only) are testable without a running UI.
package assessment

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/edukite/pathfinder/internal/catalog"
	"github.com/edukite/pathfinder/internal/quizgen"
	"github.com/edukite/pathfinder/internal/recommend"
)

// QuestionTimeLimit is the per-question countdown, in seconds.
const QuestionTimeLimit = 30

// timeSlack bounds recorded time above the limit to absorb scheduling delay
// between the final tick and the auto-submit.
const timeSlack = 2.0

// Phase is the current lifecycle phase of a session.
type Phase int

const (
	// PhaseIntake collects identity before anything external happens.
	PhaseIntake Phase = iota

	// PhaseAcquiring covers the offering fetch and question generation call.
	PhaseAcquiring

	// PhaseActive serves questions under the countdown.
	PhaseActive

	// PhaseAnalyzing covers the recommendation call after the last answer.
	PhaseAnalyzing

	// PhaseResults is terminal until an explicit retake.
	PhaseResults

	// PhaseErrored is entered only on acquisition failure. The only exit is
	// a restart back to intake; the session never runs with a short set.
	PhaseErrored
)

// UserDetails is the validated identity collected at intake.
type UserDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Answer is one timed response. Created exactly once per question, in
// question order; never mutated afterwards. An empty ChosenOption denotes a
// countdown expiry.
type Answer struct {
	QuestionID   int
	ChosenOption string
	TimeSpent    float64 // seconds
	Category     quizgen.Category
}

// epochCounter issues session epochs. Asynchronous provider results carry
// the epoch they were started under; results from a superseded epoch are
// discarded rather than applied to a newer session.
var epochCounter atomic.Uint64

// NextEpoch returns a fresh session epoch.
func NextEpoch() uint64 {
	return epochCounter.Add(1)
}

// State tracks one session. It is owned by the quiz flow; nothing outside
// the update loop mutates it.
type State struct {
	// SessionID identifies this session in exports and local history.
	SessionID string

	// Epoch tags asynchronous work started for this session.
	Epoch uint64

	// Phase is the current lifecycle phase.
	Phase Phase

	// Identity is the intake result.
	Identity UserDetails

	// Offerings is the session-scoped catalog cache: written once on the
	// first acquisition, read by analysis, discarded on reset.
	Offerings []catalog.Offering

	// Questions is the immutable generated set.
	Questions []quizgen.Question

	// Answers accumulates one entry per question, append-only, in order.
	Answers []Answer

	// Index is the current question index into Questions.
	Index int

	// Remaining is the countdown value for the current question, in seconds.
	Remaining int

	// QuestionStart is when the current question was shown.
	QuestionStart time.Time

	// StartTime is when the first question was shown.
	StartTime time.Time

	// Recommendations is the final ranked list (provider or fallback).
	Recommendations []recommend.Recommendation

	// FallbackUsed records that analysis was unusable and the fixed list
	// was substituted. Diagnostics only; never shown to the candidate.
	FallbackUsed bool

	// AcquisitionErr holds the surfaced error message in PhaseErrored.
	AcquisitionErr string
}

// NewState creates a session in the intake phase for the given identity.
func NewState(identity UserDetails) *State {
	return &State{
		SessionID: uuid.New().String(),
		Epoch:     NextEpoch(),
		Phase:     PhaseIntake,
		Identity:  identity,
	}
}

// BeginAcquisition marks the session as waiting on question generation.
func BeginAcquisition(s *State) {
	s.Phase = PhaseAcquiring
}

// BeginQuestions installs the acquired offerings and question set and enters
// the active phase at question 1 with a fresh countdown.
func BeginQuestions(s *State, offerings []catalog.Offering, questions []quizgen.Question, now time.Time) {
	s.Offerings = offerings
	s.Questions = questions
	s.Answers = make([]Answer, 0, len(questions))
	s.Index = 0
	s.Remaining = QuestionTimeLimit
	s.QuestionStart = now
	s.StartTime = now
	s.Phase = PhaseActive
}

// FailAcquisition enters the errored sub-state. The session must not proceed
// with fewer questions than the configured set.
func FailAcquisition(s *State, err error) {
	s.Phase = PhaseErrored
	s.AcquisitionErr = err.Error()
}

// Current returns the active question, or nil outside the active phase.
func Current(s *State) *quizgen.Question {
	if s.Phase != PhaseActive || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Tick decrements the current countdown by one second and reports whether
// it reached zero. Outside the active phase it is a no-op.
func Tick(s *State) (expired bool) {
	if s.Phase != PhaseActive {
		return false
	}
	if s.Remaining > 0 {
		s.Remaining--
	}
	return s.Remaining == 0
}

// RecordAnswer appends the answer for the current question and advances.
// An empty chosen option denotes a countdown expiry. The answers slice is
// the guard against a double submit: if the current question already has an
// answer (a manual submit racing the timeout), the call is a no-op.
func RecordAnswer(s *State, chosen string, now time.Time) {
	if s.Phase != PhaseActive || s.Index >= len(s.Questions) {
		return
	}
	if len(s.Answers) != s.Index {
		return
	}

	q := s.Questions[s.Index]
	s.Answers = append(s.Answers, Answer{
		QuestionID:   q.ID,
		ChosenOption: chosen,
		TimeSpent:    clampTimeSpent(now.Sub(s.QuestionStart).Seconds()),
		Category:     q.Category,
	})

	s.Index++
	if s.Index >= len(s.Questions) {
		s.Phase = PhaseAnalyzing
		return
	}

	s.Remaining = QuestionTimeLimit
	s.QuestionStart = now
}

// Complete installs the final recommendations and enters the results phase.
func Complete(s *State, recs []recommend.Recommendation, fallbackUsed bool) {
	s.Recommendations = recs
	s.FallbackUsed = fallbackUsed
	s.Phase = PhaseResults
}

// Reset clears all session data unconditionally: questions, answers,
// recommendations, identity, and the offering cache. The epoch is bumped so
// any still in-flight provider response is recognized as stale. The next
// session must re-fetch offerings.
func Reset(s *State) {
	s.Epoch = NextEpoch()
	s.Phase = PhaseIntake
	s.Identity = UserDetails{}
	s.Offerings = nil
	s.Questions = nil
	s.Answers = nil
	s.Recommendations = nil
	s.FallbackUsed = false
	s.AcquisitionErr = ""
	s.Index = 0
	s.Remaining = 0
}

// AnswerInputs maps the accumulated answers into the analysis wire shape.
func AnswerInputs(s *State) []recommend.AnswerInput {
	inputs := make([]recommend.AnswerInput, len(s.Answers))
	for i, a := range s.Answers {
		inputs[i] = recommend.AnswerInput{
			QuestionID: a.QuestionID,
			Answer:     a.ChosenOption,
			TimeSpent:  a.TimeSpent,
			Category:   string(a.Category),
		}
	}
	return inputs
}

func clampTimeSpent(secs float64) float64 {
	if secs < 0 {
		return 0
	}
	if max := float64(QuestionTimeLimit) + timeSlack; secs > max {
		return max
	}
	return secs
}
