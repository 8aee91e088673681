package recommend

// Recommendation is one ranked career suggestion presented on the results
// screen and shipped with the exported session record.
type Recommendation struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	MatchPercentage int      `json:"matchPercentage"`
	Skills          []string `json:"skills"`
	EducationPath   []string `json:"educationPath"`
	Image           string   `json:"image,omitempty"`
	Link            string   `json:"link,omitempty"`
}

// AnswerInput is the wire shape of one timed answer sent to the analysis
// call. The state machine maps its answers into this form.
type AnswerInput struct {
	QuestionID int     `json:"questionId"`
	Answer     string  `json:"answer"`
	TimeSpent  float64 `json:"timeSpent"`
	Category   string  `json:"category"`
}
