package quiz

import (
	"time"

	"github.com/edukite/pathfinder/internal/catalog"
	"github.com/edukite/pathfinder/internal/quizgen"
	"github.com/edukite/pathfinder/internal/recommend"
)

// acquiredMsg is sent when the offering fetch and question generation call
// finish. Epoch identifies the session the work was started for; results
// from a superseded session are discarded.
type acquiredMsg struct {
	Epoch     uint64
	Offerings []catalog.Offering
	Questions []quizgen.Question
	Err       error
}

// timerTickMsg fires once per second for one specific question of one
// specific session. A tick that arrives after the question has advanced or
// the session has reset carries a stale index or epoch and is ignored.
type timerTickMsg struct {
	Epoch uint64
	Index int
	At    time.Time
}

// analyzedMsg is sent when the recommendation call finishes. FallbackUsed
// is set when the provider result was unusable and the fixed list was
// substituted.
type analyzedMsg struct {
	Epoch        uint64
	Recs         []recommend.Recommendation
	FallbackUsed bool
}
