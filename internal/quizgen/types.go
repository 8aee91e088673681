package quizgen

// Category is one of the fixed assessment dimensions a question probes.
type Category string

// Categories is the process-wide constant list of assessment dimensions.
// The generation prompt instructs the model to select from exactly this list.
var Categories = []Category{
	"Motivation",
	"Communication",
	"Decision Making",
	"Work Environment",
	"Learning Style",
	"Achievement",
	"Stress Management",
	"Job Satisfaction",
	"Daily Activities",
	"Presentation Style",
	"Career Drivers",
	"Resilience",
	"Team Role",
	"Feedback Preference",
	"Priorities",
	"Work Pace",
	"Industry Interest",
	"Energy Source",
	"Success Metrics",
	"Future Vision",
}

// IsValidCategory reports whether c is in the fixed category list.
func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// OptionsPerQuestion is the fixed number of answer options per question.
const OptionsPerQuestion = 4

// Question is a single generated assessment question. Questions are created
// only here and are immutable once the session starts.
type Question struct {
	// ID is the 1-based sequence position within the generated set.
	ID int `json:"id"`

	// Text is the question prompt shown to the candidate.
	Text string `json:"question"`

	// Options holds exactly 4 distinct answer options, each representing a
	// different personality trait or preference.
	Options []string `json:"options"`

	// Category is the assessment dimension this question probes, drawn from
	// the fixed category list.
	Category Category `json:"category"`
}
