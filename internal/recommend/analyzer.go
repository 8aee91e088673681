// Package recommend converts a completed answer set into ranked career
// recommendations. A provider failure here is recoverable: the session falls
// back to the fixed recommendation list and proceeds.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/edukite/pathfinder/internal/catalog"
	"github.com/edukite/pathfinder/internal/llm"
)

// Analyzer produces ranked recommendations from a completed answer set.
type Analyzer interface {
	Analyze(ctx context.Context, answers []AnswerInput, offerings []catalog.Offering) ([]Recommendation, error)
}

// Config controls the behavior of the LLMAnalyzer.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1500,
		Temperature: 0.7,
	}
}

// LLMAnalyzer implements Analyzer using the LLM provider.
type LLMAnalyzer struct {
	provider llm.Provider
	baseURL  string
	config   Config
}

// NewAnalyzer creates an LLMAnalyzer. baseURL is used to construct detail
// links for enriched recommendations.
func NewAnalyzer(provider llm.Provider, baseURL string, cfg Config) *LLMAnalyzer {
	return &LLMAnalyzer{provider: provider, baseURL: baseURL, config: cfg}
}

// recommendationOutput is one entry of the raw LLM response.
type recommendationOutput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	MatchPercentage int      `json:"matchPercentage"`
	Skills          []string `json:"skills"`
	EducationPath   []string `json:"educationPath"`
	ID              string   `json:"id"`
}

// Analyze sends the answers and the offering catalog to the LLM and returns
// the enriched recommendations. Entries whose id does not resolve to a cached
// offering are dropped silently; an empty result after enrichment is an error
// so the caller falls back.
func (a *LLMAnalyzer) Analyze(ctx context.Context, answers []AnswerInput, offerings []catalog.Offering) ([]Recommendation, error) {
	ctx = llm.WithPurpose(ctx, "analysis")

	userMsg, err := buildUserMessage(answers, offerings)
	if err != nil {
		return nil, err
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	raw, err := llm.ExtractArray(resp.Text)
	if err != nil {
		return nil, fmt.Errorf("no recommendation array in response: %w", err)
	}

	if err := llm.Validate(RecommendationListSchema, raw); err != nil {
		return nil, fmt.Errorf("recommendations rejected: %w", err)
	}

	var outputs []recommendationOutput
	if err := json.Unmarshal(raw, &outputs); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}

	recs := enrich(outputs, offerings, a.baseURL)
	if len(recs) == 0 {
		return nil, fmt.Errorf("no recommendation resolved to a known offering")
	}

	return recs, nil
}

// enrich cross-references each entry against the offering catalog by id,
// attaching the offering's image and a constructed detail link. Entries that
// do not resolve are discarded. The provider is not trusted to pre-sort, so
// the survivors get a stable sort by descending match percentage.
func enrich(outputs []recommendationOutput, offerings []catalog.Offering, baseURL string) []Recommendation {
	byID := catalog.ByID(offerings)

	var recs []Recommendation
	for _, out := range outputs {
		offering, ok := byID[out.ID]
		if !ok {
			continue
		}
		recs = append(recs, Recommendation{
			Title:           out.Title,
			Description:     out.Description,
			MatchPercentage: out.MatchPercentage,
			Skills:          out.Skills,
			EducationPath:   out.EducationPath,
			Image:           offering.Image,
			Link:            catalog.DetailLink(baseURL, offering.ID),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchPercentage > recs[j].MatchPercentage
	})

	return recs
}
