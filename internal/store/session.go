package store

import (
	"context"
	"time"
)

// SessionSummaryData captures the outcome of one finished assessment for the
// local history listing. It is a trimmed view, not the full SessionRecord;
// the full record goes to the remote endpoint via the exporter.
type SessionSummaryData struct {
	SessionID         string
	Name              string
	Email             string
	TotalQuestions    int
	Answered          int // questions answered with a non-empty option
	TimedOut          int // questions auto-submitted on countdown expiry
	DurationSecs      int
	TopRecommendation string
	FallbackUsed      bool
}

// SessionSummary is a stored session row.
type SessionSummary struct {
	ID        int
	Timestamp time.Time
	SessionSummaryData
}

// AppendSession stores a finished session summary.
func (s *Store) AppendSession(ctx context.Context, data SessionSummaryData) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions
			(session_id, name, email, total_questions, answered, timed_out,
			 duration_secs, top_recommendation, fallback_used)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Name, data.Email, data.TotalQuestions,
		data.Answered, data.TimedOut, data.DurationSecs,
		data.TopRecommendation, data.FallbackUsed,
	)
	return err
}

// QuerySessions returns the most recent session summaries, newest first.
// limit <= 0 means no limit.
func (s *Store) QuerySessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := `
		SELECT id, created_at, session_id, name, email, total_questions,
		       answered, timed_out, duration_secs, top_recommendation, fallback_used
		FROM sessions ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var ss SessionSummary
		if err := rows.Scan(
			&ss.ID, &ss.Timestamp, &ss.SessionID, &ss.Name, &ss.Email,
			&ss.TotalQuestions, &ss.Answered, &ss.TimedOut, &ss.DurationSecs,
			&ss.TopRecommendation, &ss.FallbackUsed,
		); err != nil {
			return nil, err
		}
		out = append(out, ss)
	}
	return out, rows.Err()
}
