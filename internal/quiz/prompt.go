// Package quiz holds the quiz content types, the prompt the generator
// sends upstream, and the deterministic fallback used when the upstream
// call fails.
package quiz

import "fmt"

// Message is one chat-completion message forwarded to the upstream API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Question is a single multiple-choice question.
type Question struct {
	ID          int      `json:"id,omitempty"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
	Difficulty  string   `json:"difficulty"`
}

// Quiz is the generated quiz payload handed to the UI.
type Quiz struct {
	Questions      []Question `json:"quiz"`
	Topic          string     `json:"topic"`
	TotalQuestions int        `json:"totalQuestions"`
	Pattern        string     `json:"pattern,omitempty"`
	Difficulty     string     `json:"difficulty,omitempty"`
	Timestamp      string     `json:"timestamp,omitempty"`
}

func scoringText(pattern string) string {
	switch pattern {
	case "jee":
		return "+4 for correct, -1 for wrong"
	case "boards":
		return "No negative marking"
	default:
		return "+1 for correct, -1 for wrong"
	}
}

// BuildMessages constructs the system/user message pair for a quiz
// generation request.
func BuildMessages(topic, difficulty string, numQuestions int, pattern string) []Message {
	system := fmt.Sprintf(`You are an expert educator creating quiz questions for JEE and Class 12 Non-Medical students.

STRICT REQUIREMENTS:
1. Generate EXACTLY %d multiple-choice questions
2. ONLY create questions for Physics, Chemistry, and Mathematics topics
3. Each question must have 4 options with only ONE correct answer
4. Difficulty level: %s
5. Scoring pattern: %s

Return the response in this EXACT JSON format:
{
  "quiz": [
    {
      "question": "question text",
      "options": ["option1", "option2", "option3", "option4"],
      "correct": 0,
      "explanation": "brief explanation of the answer",
      "difficulty": "%s"
    }
  ],
  "topic": "%s",
  "totalQuestions": %d
}`, numQuestions, difficulty, scoringText(pattern), difficulty, topic, numQuestions)

	return []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: fmt.Sprintf("Generate a quiz on: %s", topic)},
	}
}
