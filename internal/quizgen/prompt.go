package quizgen

import (
	"fmt"
	"strings"
)

// buildSystemPrompt constructs the generation instruction. One call covers the
// whole question set: the model selects n distinct categories from the fixed
// list and produces one question per selected category, with content kept
// relevant to the offering titles so the later analysis step stays coherent.
func buildSystemPrompt(n int, offeringTitles []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a psychometric test expert. Generate %d unique psychometric questions for career assessment targeted at students.\n\n", n)

	fmt.Fprintf(&b, "First, select %d different relevant categories from this list: %s.\n", n, joinCategories())
	b.WriteString("Then generate exactly 1 question for each selected category.\n\n")

	b.WriteString("Return ONLY a JSON array in this exact format:\n")
	b.WriteString(`[
  {
    "question": "Your question here",
    "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
    "category": "Selected Category Name"
  }
]
`)

	b.WriteString("\nRequirements:\n")
	fmt.Fprintf(&b, "- Select %d different categories from the provided list\n", n)
	b.WriteString("- Generate exactly 1 question for each selected category\n")
	b.WriteString("- Questions should help assess personality, aptitude, and career preferences\n")
	fmt.Fprintf(&b, "- %d distinct answer options for each question\n", OptionsPerQuestion)
	b.WriteString("- Student-friendly language\n")
	b.WriteString("- Each option should represent different personality traits or preferences\n")
	if len(offeringTitles) > 0 {
		fmt.Fprintf(&b, "- Ensure questions are relevant to the available courses: %s\n", quotedList(offeringTitles))
	}
	b.WriteString("- Make sure each question covers a different aspect of personality/career assessment")

	return b.String()
}

func joinCategories() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func quotedList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
