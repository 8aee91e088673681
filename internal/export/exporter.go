// Package export delivers a completed session snapshot to the backend.
// Export is strictly best-effort: it runs once per completed session, and
// any failure is logged and swallowed. The candidate still sees results and
// nothing is retried.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/edukite/pathfinder/internal/assessment"
	"github.com/edukite/pathfinder/internal/quizgen"
	"github.com/edukite/pathfinder/internal/recommend"
)

const submitPath = "/api/routes/test"

// Payload is the wire shape for a session submission.
type Payload struct {
	Questions       []questionPayload          `json:"questions"`
	Answers         []answerPayload            `json:"answers"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	UserDetails     assessment.UserDetails     `json:"userDetails"`
	TestDuration    int                        `json:"testDuration"`
	TotalQuestions  int                        `json:"totalQuestions"`
}

type questionPayload struct {
	ID       int              `json:"id"`
	Question string           `json:"question"`
	Options  []string         `json:"options"`
	Category quizgen.Category `json:"category"`
}

type answerPayload struct {
	QuestionID int     `json:"questionId"`
	Answer     string  `json:"answer"`
	TimeSpent  float64 `json:"timeSpent"`
	Category   string  `json:"category"`
}

// Exporter submits a completed session record.
type Exporter interface {
	Export(ctx context.Context, rec assessment.SessionRecord)
}

// HTTPExporter posts session records to the backend API.
type HTTPExporter struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewHTTPExporter creates an exporter against the given API base URL.
func NewHTTPExporter(baseURL string, logger *zap.Logger) *HTTPExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPExporter{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// Export posts the record. Every failure path logs and returns; the caller
// gets no error because there is nothing it should do with one.
func (e *HTTPExporter) Export(ctx context.Context, rec assessment.SessionRecord) {
	body, err := json.Marshal(buildPayload(rec))
	if err != nil {
		e.logger.Warn("export: encode failed",
			zap.String("session_id", rec.SessionID), zap.Error(err))
		return
	}

	url := e.baseURL + submitPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		e.logger.Warn("export: build request failed",
			zap.String("session_id", rec.SessionID), zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.http.Do(req)
	if err != nil {
		e.logger.Warn("export: request failed",
			zap.String("session_id", rec.SessionID), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e.logger.Warn("export: backend rejected submission",
			zap.String("session_id", rec.SessionID),
			zap.Int("status", resp.StatusCode))
		return
	}

	// The response body is informational only; a 2xx with an unreadable
	// body is still logged as a failed export, without any follow-up.
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		e.logger.Warn("export: reading response failed",
			zap.String("session_id", rec.SessionID), zap.Error(err))
		return
	}

	e.logger.Info("export: session submitted",
		zap.String("session_id", rec.SessionID),
		zap.Int("status", resp.StatusCode))
}

func buildPayload(rec assessment.SessionRecord) Payload {
	questions := make([]questionPayload, len(rec.Questions))
	for i, q := range rec.Questions {
		questions[i] = questionPayload{
			ID:       q.ID,
			Question: q.Text,
			Options:  q.Options,
			Category: q.Category,
		}
	}
	answers := make([]answerPayload, len(rec.Answers))
	for i, a := range rec.Answers {
		answers[i] = answerPayload{
			QuestionID: a.QuestionID,
			Answer:     a.ChosenOption,
			TimeSpent:  a.TimeSpent,
			Category:   string(a.Category),
		}
	}
	return Payload{
		Questions:       questions,
		Answers:         answers,
		Recommendations: rec.Recommendations,
		UserDetails:     rec.Identity,
		TestDuration:    rec.Stats.DurationSecs,
		TotalQuestions:  rec.Stats.TotalQuestions,
	}
}

// NopExporter discards records. Used when no API base URL is configured.
type NopExporter struct {
	logger *zap.Logger
}

// NewNopExporter returns an exporter that only logs.
func NewNopExporter(logger *zap.Logger) *NopExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NopExporter{logger: logger}
}

// Export logs that the record was dropped.
func (e *NopExporter) Export(_ context.Context, rec assessment.SessionRecord) {
	e.logger.Info("export: no backend configured, dropping session",
		zap.String("session_id", rec.SessionID))
}

var _ Exporter = (*HTTPExporter)(nil)
var _ Exporter = (*NopExporter)(nil)
