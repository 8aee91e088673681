package assessment

import (
	"testing"
	"time"

	"github.com/edukite/pathfinder/internal/recommend"
)

func TestBuildRecord(t *testing.T) {
	s, now := activeState(t, 3)

	RecordAnswer(s, "a", now.Add(4*time.Second))
	now = now.Add(4 * time.Second)
	RecordAnswer(s, "", now.Add(30*time.Second)) // timed out
	now = now.Add(30 * time.Second)
	RecordAnswer(s, "c", now.Add(2500*time.Millisecond))

	Complete(s, recommend.Fallback(), true)
	rec := BuildRecord(s)

	if rec.SessionID != s.SessionID {
		t.Errorf("session id %q, want %q", rec.SessionID, s.SessionID)
	}
	if rec.Identity != testIdentity {
		t.Errorf("identity %+v", rec.Identity)
	}
	if !rec.FallbackUsed || len(rec.Recommendations) != 3 {
		t.Errorf("recommendations not carried: fallback=%v n=%d", rec.FallbackUsed, len(rec.Recommendations))
	}

	st := rec.Stats
	if st.TotalQuestions != 3 {
		t.Errorf("total = %d", st.TotalQuestions)
	}
	if st.Answered != 2 || st.TimedOut != 1 {
		t.Errorf("answered=%d timedOut=%d, want 2/1", st.Answered, st.TimedOut)
	}
	// 4 + 30 + 2.5 rounds to 37.
	if st.DurationSecs != 37 {
		t.Errorf("duration = %d, want 37", st.DurationSecs)
	}
}

func TestBuildRecordEmptySession(t *testing.T) {
	s := NewState(testIdentity)
	rec := BuildRecord(s)

	if rec.Stats.TotalQuestions != 0 || rec.Stats.DurationSecs != 0 {
		t.Errorf("empty session stats = %+v", rec.Stats)
	}
}
