package assessment

import (
	"math"

	"github.com/edukite/pathfinder/internal/quizgen"
	"github.com/edukite/pathfinder/internal/recommend"
)

// Stats are figures derived from a completed answer set.
type Stats struct {
	TotalQuestions int
	Answered       int // answers with a chosen option
	TimedOut       int // answers recorded on countdown expiry
	DurationSecs   int // total time across questions, rounded
}

// SessionRecord is the completed-session snapshot handed to the exporter
// and the local history store.
type SessionRecord struct {
	SessionID       string
	Identity        UserDetails
	Questions       []quizgen.Question
	Answers         []Answer
	Recommendations []recommend.Recommendation
	FallbackUsed    bool
	Stats           Stats
}

// BuildRecord assembles the record for a session that has reached results.
func BuildRecord(s *State) SessionRecord {
	return SessionRecord{
		SessionID:       s.SessionID,
		Identity:        s.Identity,
		Questions:       s.Questions,
		Answers:         s.Answers,
		Recommendations: s.Recommendations,
		FallbackUsed:    s.FallbackUsed,
		Stats:           buildStats(s),
	}
}

func buildStats(s *State) Stats {
	st := Stats{TotalQuestions: len(s.Questions)}
	var total float64
	for _, a := range s.Answers {
		total += a.TimeSpent
		if a.ChosenOption == "" {
			st.TimedOut++
		} else {
			st.Answered++
		}
	}
	st.DurationSecs = int(math.Round(total))
	return st
}
