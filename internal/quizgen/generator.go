// Package quizgen acquires the assessment question set from the LLM.
// Acquisition is all-or-nothing: either the full set of questions comes back
// well-formed, or the session fails with a descriptive error. There is no
// fallback question set.
package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/edukite/pathfinder/internal/catalog"
	"github.com/edukite/pathfinder/internal/llm"
)

// Generator produces the full question set for one session.
type Generator interface {
	Generate(ctx context.Context, offerings []catalog.Offering) ([]Question, error)
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// NumQuestions is the fixed session question count N.
	NumQuestions int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		NumQuestions: 10,
		MaxTokens:    2000,
		Temperature:  0.8,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is one entry of the raw LLM response before checks.
type questionOutput struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Category string   `json:"category"`
}

// Generate requests the full question set in a single call and validates it.
func (g *LLMGenerator) Generate(ctx context.Context, offerings []catalog.Offering) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System:      buildSystemPrompt(g.config.NumQuestions, catalog.Titles(offerings)),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	raw, err := llm.ExtractArray(resp.Text)
	if err != nil {
		return nil, fmt.Errorf("no question array in response: %w", err)
	}

	if err := llm.Validate(QuestionListSchema, raw); err != nil {
		return nil, fmt.Errorf("question set rejected: %w", err)
	}

	var outputs []questionOutput
	if err := json.Unmarshal(raw, &outputs); err != nil {
		return nil, fmt.Errorf("decode question set: %w", err)
	}

	questions := make([]Question, len(outputs))
	for i, out := range outputs {
		questions[i] = Question{
			ID:       i + 1,
			Text:     out.Question,
			Options:  out.Options,
			Category: Category(out.Category),
		}
	}

	if err := checkQuestionSet(questions, g.config.NumQuestions); err != nil {
		return nil, err
	}

	return questions, nil
}

// checkQuestionSet enforces the structural invariants of a usable set:
// exactly n questions, 4 distinct options each, and one question per
// distinct category from the fixed list.
func checkQuestionSet(questions []Question, n int) error {
	if len(questions) != n {
		return fmt.Errorf("expected %d questions, got %d", n, len(questions))
	}

	seenCategories := make(map[Category]bool, n)
	for _, q := range questions {
		if q.Text == "" {
			return fmt.Errorf("question %d has empty text", q.ID)
		}
		if len(q.Options) != OptionsPerQuestion {
			return fmt.Errorf("question %d has %d options, want %d", q.ID, len(q.Options), OptionsPerQuestion)
		}
		seenOptions := make(map[string]bool, OptionsPerQuestion)
		for _, opt := range q.Options {
			if opt == "" {
				return fmt.Errorf("question %d has an empty option", q.ID)
			}
			if seenOptions[opt] {
				return fmt.Errorf("question %d has duplicate option %q", q.ID, opt)
			}
			seenOptions[opt] = true
		}
		if !IsValidCategory(q.Category) {
			return fmt.Errorf("question %d has unknown category %q", q.ID, q.Category)
		}
		if seenCategories[q.Category] {
			return fmt.Errorf("category %q used by more than one question", q.Category)
		}
		seenCategories[q.Category] = true
	}

	return nil
}
