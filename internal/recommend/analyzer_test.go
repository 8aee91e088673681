package recommend

import (
	"context"
	"strings"
	"testing"

	"github.com/edukite/pathfinder/internal/catalog"
	"github.com/edukite/pathfinder/internal/llm"
)

const testBaseURL = "https://api.example.edu"

var testOfferings = []catalog.Offering{
	{ID: "biz-101", Title: "Business Management", Image: "/img/biz.png"},
	{ID: "web-201", Title: "Full Stack Web Development", Image: "/img/web.png"},
	{ID: "hosp-301", Title: "Hospitality Management", Image: "/img/hosp.png"},
}

var testAnswers = []AnswerInput{
	{QuestionID: 1, Answer: "Leading a team", TimeSpent: 12.5, Category: "Motivation"},
	{QuestionID: 2, Answer: "", TimeSpent: 32, Category: "Work Pace"},
}

const analysisResponse = `Based on the answers, here are my picks:
[
  {"title": "Web Development", "description": "Analytical fit.", "matchPercentage": 78,
   "skills": ["Programming"], "educationPath": ["1 Year Course"], "id": "web-201"},
  {"title": "Business Management", "description": "Leadership fit.", "matchPercentage": 92,
   "skills": ["Leadership"], "educationPath": ["6 Months Course"], "id": "biz-101"},
  {"title": "Made Up Course", "description": "Hallucinated.", "matchPercentage": 99,
   "skills": ["None"], "educationPath": ["None"], "id": "ghost-999"}
]
Hope that helps!`

func TestAnalyzeEnrichesAndRanks(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Text: analysisResponse})
	analyzer := NewAnalyzer(provider, testBaseURL, DefaultConfig())

	recs, err := analyzer.Analyze(context.Background(), testAnswers, testOfferings)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// The hallucinated id is dropped; the survivors are ranked by match.
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Title != "Business Management" || recs[1].Title != "Web Development" {
		t.Errorf("wrong order: %q then %q", recs[0].Title, recs[1].Title)
	}

	// Enrichment attaches the catalog image and a constructed link.
	if recs[0].Image != "/img/biz.png" {
		t.Errorf("image = %q", recs[0].Image)
	}
	if recs[1].Link != testBaseURL+"/courses/web-201" {
		t.Errorf("link = %q", recs[1].Link)
	}

	// The request carries the answers and the catalog, one call only.
	if provider.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", provider.CallCount())
	}
	user := provider.Calls[0].Messages[0].Content
	if !strings.Contains(user, "Leading a team") || !strings.Contains(user, "biz-101") {
		t.Errorf("user message missing answers or catalog: %s", user)
	}
}

func TestAnalyzeStableOrderOnTies(t *testing.T) {
	tied := `[
  {"title": "First", "description": "d", "matchPercentage": 80,
   "skills": [], "educationPath": [], "id": "biz-101"},
  {"title": "Second", "description": "d", "matchPercentage": 80,
   "skills": [], "educationPath": [], "id": "web-201"}
]`
	provider := llm.NewMockProvider(llm.MockResponse{Text: tied})
	analyzer := NewAnalyzer(provider, testBaseURL, DefaultConfig())

	recs, err := analyzer.Analyze(context.Background(), testAnswers, testOfferings)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if recs[0].Title != "First" || recs[1].Title != "Second" {
		t.Errorf("tie broke response order: %q then %q", recs[0].Title, recs[1].Title)
	}
}

func TestAnalyzeFailures(t *testing.T) {
	allUnresolved := `[{"title": "Ghost", "description": "d", "matchPercentage": 90,
		"skills": [], "educationPath": [], "id": "nope"}]`

	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}},
		{"no json", llm.MockResponse{Text: "I cannot rank these."}},
		{"schema violation", llm.MockResponse{Text: `[{"title": "x"}]`}},
		{"nothing resolves", llm.MockResponse{Text: allUnresolved}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := llm.NewMockProvider(tt.resp)
			analyzer := NewAnalyzer(provider, testBaseURL, DefaultConfig())

			if _, err := analyzer.Analyze(context.Background(), testAnswers, testOfferings); err == nil {
				t.Error("Analyze returned no error")
			}
			if provider.CallCount() != 1 {
				t.Errorf("provider called %d times, want 1", provider.CallCount())
			}
		})
	}
}
