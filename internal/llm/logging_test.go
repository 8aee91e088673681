package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/edukite/pathfinder/internal/store"
)

// recordingStore implements store.LLMEventRecorder.
type recordingStore struct {
	events []store.LLMEventData
	err    error
}

func (r *recordingStore) AppendLLMEvent(_ context.Context, data store.LLMEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProviderRecordsSuccess(t *testing.T) {
	rec := &recordingStore{}
	mock := NewMockProvider(MockResponse{
		Text:  "hello [1]",
		Usage: Usage{InputTokens: 10, OutputTokens: 20},
	})
	p := WithLogging(mock, rec)

	ctx := WithPurpose(context.Background(), "question-gen")
	req := Request{
		System:   "You are an assessor.",
		Messages: []Message{{Role: RoleUser, Content: "go"}},
	}
	resp, err := p.Generate(ctx, req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Text != "hello [1]" {
		t.Errorf("response text = %q", resp.Text)
	}

	if len(rec.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(rec.events))
	}
	e := rec.events[0]
	if e.Purpose != "question-gen" || !e.Success {
		t.Errorf("event = %+v", e)
	}
	if e.InputTokens != 10 || e.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "[system]") || !strings.Contains(e.RequestBody, "[user]") {
		t.Errorf("request body = %q", e.RequestBody)
	}
	if e.ResponseBody != "hello [1]" {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLoggingProviderRecordsFailure(t *testing.T) {
	rec := &recordingStore{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("boom")}})
	p := WithLogging(mock, rec)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected provider error")
	}

	if len(rec.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(rec.events))
	}
	e := rec.events[0]
	if e.Success || e.ErrorMessage == "" {
		t.Errorf("event = %+v", e)
	}
}

func TestLoggingProviderSwallowsRecorderError(t *testing.T) {
	rec := &recordingStore{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithLogging(mock, rec)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil || resp.Text != "ok" {
		t.Errorf("recorder failure leaked: resp=%v err=%v", resp, err)
	}
}

func TestWithLoggingNilRecorder(t *testing.T) {
	mock := NewMockProvider()
	if p := WithLogging(mock, nil); p != Provider(mock) {
		t.Error("nil recorder should return the provider unchanged")
	}
}
