package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverrideServerFromEnv(t *testing.T) {
	cfg := ServerConfig{Port: "3000"}

	OverrideServerFromEnv(&cfg)
	assert.Equal(t, "3000", cfg.Port)

	t.Setenv("PORT", "8080")
	OverrideServerFromEnv(&cfg)
	assert.Equal(t, "8080", cfg.Port)
}

func TestOverrideRedisFromEnv(t *testing.T) {
	cfg := RedisConfig{Addr: "localhost:6379", DB: 0}

	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "3")
	OverrideRedisFromEnv(&cfg)

	assert.Equal(t, "redis:6379", cfg.Addr)
	assert.Equal(t, 3, cfg.DB)
}

func TestOverrideRedisFromEnv_IgnoresBadDB(t *testing.T) {
	cfg := RedisConfig{DB: 1}

	t.Setenv("REDIS_DB", "not-a-number")
	OverrideRedisFromEnv(&cfg)

	assert.Equal(t, 1, cfg.DB)
}

func TestOverrideUpstreamFromEnv(t *testing.T) {
	cfg := UpstreamConfig{Model: "anthropic/claude-3-haiku"}

	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("OPENROUTER_MODEL", "anthropic/claude-3-sonnet")
	OverrideUpstreamFromEnv(&cfg)

	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "anthropic/claude-3-sonnet", cfg.Model)
}

func TestGetEnv(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("STUDYBUDDY_TEST_UNSET", "fallback"))

	t.Setenv("STUDYBUDDY_TEST_SET", "value")
	assert.Equal(t, "value", GetEnv("STUDYBUDDY_TEST_SET", "fallback"))
}
