package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// LLMEventData captures the data for a single LLM request event.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMEventData
}

// LLMEventRecorder is the narrow interface the llm logging middleware needs.
type LLMEventRecorder interface {
	AppendLLMEvent(ctx context.Context, data LLMEventData) error
}

// AppendLLMEvent stores one LLM request event.
func (s *Store) AppendLLMEvent(ctx context.Context, data LLMEventData) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.InputTokens,
		data.OutputTokens, data.LatencyMs, data.Success,
		data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	return err
}

// QueryLLMEvents returns the most recent LLM events, newest first.
// Bodies are omitted; use GetLLMEvent for the full record.
func (s *Store) QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	q := `
		SELECT id, created_at, provider, model, purpose, input_tokens,
		       output_tokens, latency_ms, success, error_message
		FROM llm_events ORDER BY id DESC`
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

	var out []LLMEvent
	for rows.Next() {
		var e LLMEvent
		if err := rows.Scan(
			&e.ID, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
			&e.ErrorMessage,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetLLMEvent returns the full event by ID, or nil if not found.
func (s *Store) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	var e LLMEvent
	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, provider, model, purpose, input_tokens,
		       output_tokens, latency_ms, success, error_message,
		       request_body, response_body
		FROM llm_events WHERE id = ?`, id).Scan(
		&e.ID, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
