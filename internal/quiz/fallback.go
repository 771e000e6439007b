package quiz

import (
	"strings"
	"time"
)

var sampleQuestions = map[string][]Question{
	"physics": {
		{
			Question:    "What is the SI unit of force?",
			Options:     []string{"Joule", "Newton", "Watt", "Pascal"},
			Correct:     1,
			Explanation: "The SI unit of force is Newton (N), defined as kg⋅m/s²",
			Difficulty:  "easy",
		},
		{
			Question:    "In uniform circular motion, which quantity remains constant?",
			Options:     []string{"Velocity", "Acceleration", "Speed", "Force"},
			Correct:     2,
			Explanation: "Speed remains constant while velocity changes direction continuously",
			Difficulty:  "medium",
		},
		{
			Question:    "What is the escape velocity from Earth's surface?",
			Options:     []string{"11.2 km/s", "7.8 km/s", "15.4 km/s", "9.8 km/s"},
			Correct:     0,
			Explanation: "The escape velocity from Earth is approximately 11.2 km/s",
			Difficulty:  "hard",
		},
	},
	"chemistry": {
		{
			Question:    "Which is the most electronegative element?",
			Options:     []string{"Oxygen", "Fluorine", "Chlorine", "Nitrogen"},
			Correct:     1,
			Explanation: "Fluorine is the most electronegative element in the periodic table",
			Difficulty:  "easy",
		},
		{
			Question:    "What is the IUPAC name of CH₃CH₂OH?",
			Options:     []string{"Methanol", "Ethanol", "Propanol", "Butanol"},
			Correct:     1,
			Explanation: "CH₃CH₂OH is ethanol (ethyl alcohol)",
			Difficulty:  "easy",
		},
	},
	"mathematics": {
		{
			Question:    "What is the derivative of sin(x)?",
			Options:     []string{"cos(x)", "-cos(x)", "sin(x)", "-sin(x)"},
			Correct:     0,
			Explanation: "The derivative of sin(x) is cos(x)",
			Difficulty:  "easy",
		},
		{
			Question:    "What is the value of ∫(1/x)dx?",
			Options:     []string{"x + C", "ln|x| + C", "1/x² + C", "e^x + C"},
			Correct:     1,
			Explanation: "The integral of 1/x is ln|x| + C",
			Difficulty:  "medium",
		},
	},
}

// DetectSubject picks the sample bank for a topic by keyword.
func DetectSubject(topic string) string {
	t := strings.ToLower(topic)
	switch {
	case strings.Contains(t, "chemistry"), strings.Contains(t, "organic"), strings.Contains(t, "inorganic"):
		return "chemistry"
	case strings.Contains(t, "math"), strings.Contains(t, "calculus"), strings.Contains(t, "algebra"):
		return "mathematics"
	default:
		return "physics"
	}
}

// Fallback builds a deterministic placeholder quiz for when the upstream
// generator is unavailable. It is a pure function of its arguments apart
// from the timestamp.
func Fallback(topic string, numQuestions int, difficulty, pattern string, now time.Time) Quiz {
	if pattern == "" {
		pattern = "fun"
	}

	bank := sampleQuestions[DetectSubject(topic)]
	questions := make([]Question, 0, numQuestions)
	for i := 0; i < numQuestions; i++ {
		q := bank[i%len(bank)]
		q.ID = i + 1
		questions = append(questions, q)
	}

	return Quiz{
		Questions:      questions,
		Topic:          topic,
		TotalQuestions: numQuestions,
		Pattern:        pattern,
		Difficulty:     difficulty,
		Timestamp:      now.UTC().Format(time.RFC3339),
	}
}
