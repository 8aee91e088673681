package recommend

import (
	"encoding/json"
	"fmt"

	"github.com/edukite/pathfinder/internal/catalog"
)

const systemPrompt = `You are a career counselor AI. You will receive a list of available courses and a student's psychometric test answers. Recommend the 3 best-fit courses ONLY from the provided list.
Return ONLY a JSON array in this exact format:
[
  {
    "title": "Course Title",
    "description": "Why this course fits",
    "matchPercentage": 85,
    "skills": ["Skill 1", "Skill 2", "Skill 3", "Skill 4"],
    "educationPath": ["Step 1", "Step 2"],
    "id": "course id"
  }
]

Base recommendations on the student's answer patterns and provide realistic, actionable career paths.
Do not recommend any course not in the provided list.
Ensure only to send json in the response, no additional text or explanations.`

// buildUserMessage serializes the full answer set and offering catalog for
// the analysis call.
func buildUserMessage(answers []AnswerInput, offerings []catalog.Offering) (string, error) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("marshal answers: %w", err)
	}
	offeringsJSON, err := json.Marshal(offerings)
	if err != nil {
		return "", fmt.Errorf("marshal offerings: %w", err)
	}
	return fmt.Sprintf("Student answers: %s\nAvailable courses: %s", answersJSON, offeringsJSON), nil
}
