package recommend

// Fallback returns the fixed recommendation list used whenever analysis is
// unusable. Pure and deterministic: no inputs, no side effects, identical
// output on every call. The session treats reaching this path as normal
// operation, never as an error the candidate sees.
func Fallback() []Recommendation {
	return []Recommendation{
		{
			Title:           "Diploma in Business and Retail Management",
			Description:     "Based on your responses, you show strong leadership and organizational skills that are perfect for business management. This course will equip you with essential skills in modern business management and retail operations.",
			MatchPercentage: 95,
			Skills:          []string{"Business Management", "Retail Operations", "Customer Relations", "Team Leadership"},
			EducationPath:   []string{"6 Months Course", "6 Months Internship", "Industry Certification"},
		},
		{
			Title:           "Diploma in Hospitality and Tourism Management",
			Description:     "Your interpersonal skills and customer service orientation make you an excellent fit for hospitality and tourism. This program provides comprehensive training for dynamic careers in the hospitality sector.",
			MatchPercentage: 88,
			Skills:          []string{"Customer Service", "Hospitality Operations", "Event Management", "Tourism Planning"},
			EducationPath:   []string{"6 Months Course", "6 Months Internship", "Industry Placement"},
		},
		{
			Title:           "Full Stack Web Development",
			Description:     "Your analytical thinking and problem-solving abilities align perfectly with web development. This comprehensive course will teach you both frontend and backend technologies.",
			MatchPercentage: 85,
			Skills:          []string{"Programming", "Web Technologies", "Problem Solving", "User Experience"},
			EducationPath:   []string{"1 Year Course", "Project-Based Learning", "Industry Projects"},
		},
	}
}
