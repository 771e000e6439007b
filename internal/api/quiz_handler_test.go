package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newQuizRouter(upstreamURL, apiKey string) *gin.Engine {
	h := NewQuizHandler(upstreamURL, apiKey, "", zap.NewNop())
	r := gin.New()
	r.POST("/api/generate-quiz", h.GenerateQuiz)
	r.GET("/api/health", h.Health)
	return r
}

func TestGenerateQuiz_ForwardsToUpstream(t *testing.T) {
	var gotBody map[string]any
	var gotAuth, gotTitle, gotReferer string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTitle = r.Header.Get("X-Title")
		gotReferer = r.Header.Get("HTTP-Referer")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Write([]byte(`{"choices":[{"message":{"content":"{}"}}]}`))
	}))
	defer upstream.Close()

	router := newQuizRouter(upstream.URL, "sk-test")
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz",
		strings.NewReader(`{"prompt":"forces","messages":[{"role":"user","content":"Generate a quiz on: forces"}]}`))
	req.Header.Set("Referer", "https://studybuddy.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"choices":[{"message":{"content":"{}"}}]}`, w.Body.String())

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "AI Quiz Generator", gotTitle)
	assert.Equal(t, "https://studybuddy.example", gotReferer)
	assert.Equal(t, DefaultModel, gotBody["model"])
	assert.Equal(t, 0.7, gotBody["temperature"])
	assert.Equal(t, float64(4000), gotBody["max_tokens"])
	assert.Equal(t, map[string]any{"type": "json_object"}, gotBody["response_format"])

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
}

func TestGenerateQuiz_DefaultsReferer(t *testing.T) {
	var gotReferer string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReferer = r.Header.Get("HTTP-Referer")
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	router := newQuizRouter(upstream.URL, "sk-test")
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", strings.NewReader(`{"messages":[]}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", gotReferer)
}

func TestGenerateQuiz_PropagatesUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer upstream.Close()

	router := newQuizRouter(upstream.URL, "sk-test")
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", strings.NewReader(`{"messages":[]}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"rate limited"}`, w.Body.String())
}

func TestGenerateQuiz_GenericMessageForOpaqueUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream exploded`))
	}))
	defer upstream.Close()

	router := newQuizRouter(upstream.URL, "sk-test")
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", strings.NewReader(`{"messages":[]}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"API request failed"}`, w.Body.String())
}

func TestGenerateQuiz_InvalidBody(t *testing.T) {
	router := newQuizRouter("http://127.0.0.1:0", "sk-test")
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestGenerateQuiz_UnreachableUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	router := newQuizRouter(upstream.URL, "sk-test")
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", strings.NewReader(`{"messages":[]}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	router := newQuizRouter("http://127.0.0.1:0", "")
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","message":"Server is running"}`, w.Body.String())
}
