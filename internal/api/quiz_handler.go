package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/quiz"
	"github.com/Tech-T1tans/StudyBuddy-version-control/pkg/metrics"
)

const (
	DefaultUpstreamURL = "https://openrouter.ai/api/v1/chat/completions"
	DefaultModel       = "anthropic/claude-3-haiku"
)

// QuizHandler forwards quiz generation requests to the upstream
// chat-completions API. One best-effort forward per request: no retries,
// no timeout, no rate limiting.
type QuizHandler struct {
	upstreamURL string
	apiKey      string
	model       string
	httpClient  *http.Client
	logger      *zap.Logger
}

func NewQuizHandler(upstreamURL, apiKey, model string, logger *zap.Logger) *QuizHandler {
	if upstreamURL == "" {
		upstreamURL = DefaultUpstreamURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &QuizHandler{
		upstreamURL: upstreamURL,
		apiKey:      apiKey,
		model:       model,
		httpClient:  &http.Client{},
		logger:      logger,
	}
}

type generateQuizRequest struct {
	Prompt   string         `json:"prompt"`
	Messages []quiz.Message `json:"messages"`
}

type upstreamRequest struct {
	Model          string            `json:"model"`
	Messages       []quiz.Message    `json:"messages"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens"`
	ResponseFormat map[string]string `json:"response_format"`
}

type upstreamError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateQuiz proxies POST /api/generate-quiz to the upstream API with
// injected authorization and fixed model parameters. The upstream body is
// relayed unchanged on success; upstream errors keep their status code.
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	var req generateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid quiz request body", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	body, err := json.Marshal(upstreamRequest{
		Model:          h.model,
		Messages:       req.Messages,
		Temperature:    0.7,
		MaxTokens:      4000,
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	upReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, h.upstreamURL, bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	referer := c.GetHeader("Referer")
	if referer == "" {
		referer = "http://localhost:3000"
	}
	upReq.Header.Set("Content-Type", "application/json")
	upReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", h.apiKey))
	upReq.Header.Set("HTTP-Referer", referer)
	upReq.Header.Set("X-Title", "AI Quiz Generator")

	start := time.Now()
	resp, err := h.httpClient.Do(upReq)
	if err != nil {
		metrics.RecordUpstreamCallLatency("error", time.Since(start))
		h.logger.Error("Upstream request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer resp.Body.Close()
	metrics.RecordUpstreamCallLatency(fmt.Sprintf("%d", resp.StatusCode), time.Since(start))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.IncrementQuizGeneration("upstream_error")

		message := "API request failed"
		var upErr upstreamError
		if err := json.Unmarshal(respBody, &upErr); err == nil && upErr.Error.Message != "" {
			message = upErr.Error.Message
		}
		h.logger.Error("Upstream returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("message", message),
		)
		c.JSON(resp.StatusCode, gin.H{"error": message})
		return
	}

	metrics.IncrementQuizGeneration("success")
	c.Data(http.StatusOK, "application/json", respBody)
}

// Health answers the static health check.
func (h *QuizHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
}
