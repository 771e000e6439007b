package quiz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Tech-T1tans/StudyBuddy-version-control/pkg/metrics"
)

// Client calls the quiz-proxy endpoint and parses the completion into a
// Quiz. Any failure along the way degrades to the local fallback quiz,
// so callers always get something to render.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	now        func() time.Time
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     logger,
		now:        time.Now,
	}
}

type generateRequest struct {
	Prompt   string    `json:"prompt"`
	Messages []Message `json:"messages"`
}

// completionResponse is the upstream chat-completion shape, trimmed to
// the fields the client reads.
type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate requests a quiz on the topic. On any transport, status, or
// parse failure the deterministic fallback is returned instead.
func (c *Client) Generate(ctx context.Context, topic, difficulty string, numQuestions int, pattern string) Quiz {
	q, err := c.generate(ctx, topic, difficulty, numQuestions, pattern)
	if err != nil {
		c.logger.Warn("Quiz generation failed, using fallback",
			zap.String("topic", topic), zap.Error(err))
		metrics.IncrementQuizGeneration("fallback")
		return Fallback(topic, numQuestions, difficulty, pattern, c.now())
	}
	metrics.IncrementQuizGeneration("success")
	return q
}

func (c *Client) generate(ctx context.Context, topic, difficulty string, numQuestions int, pattern string) (Quiz, error) {
	body, err := json.Marshal(generateRequest{
		Prompt:   topic,
		Messages: BuildMessages(topic, difficulty, numQuestions, pattern),
	})
	if err != nil {
		return Quiz{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-quiz", bytes.NewReader(body))
	if err != nil {
		return Quiz{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Quiz{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quiz{}, fmt.Errorf("quiz proxy returned %d", resp.StatusCode)
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return Quiz{}, err
	}
	if len(completion.Choices) == 0 {
		return Quiz{}, fmt.Errorf("invalid response format from AI")
	}

	var quiz Quiz
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &quiz); err != nil {
		return Quiz{}, fmt.Errorf("failed to parse quiz content: %w", err)
	}

	quiz.Pattern = pattern
	quiz.Difficulty = difficulty
	quiz.Timestamp = c.now().UTC().Format(time.RFC3339)
	return quiz, nil
}

// Healthy reports whether the quiz proxy answers its health check.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
