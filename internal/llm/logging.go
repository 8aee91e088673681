package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/edukite/pathfinder/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event
// in the local history store.
type LoggingProvider struct {
	inner    Provider
	recorder store.LLMEventRecorder
}

// WithLogging wraps a Provider with event logging. A nil recorder disables
// logging without changing behavior.
func WithLogging(p Provider, recorder store.LLMEventRecorder) Provider {
	if recorder == nil {
		return p
	}
	return &LoggingProvider{inner: p, recorder: recorder}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = resp.Text
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Best-effort: a failed event write must not fail the request.
	_ = l.recorder.AppendLLMEvent(ctx, data)

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	return b.String()
}
