package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("LLM_API_URL", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("HOSTING_API_URL", "")
	t.Setenv("PODCAST_ID", "")
	t.Setenv("PUBLISH_TIMEZONE", "")
	t.Setenv("OUTPUT_DIR", "")

	cfg := Load()

	assert.Equal(t, "https://api.anthropic.com/v1/messages", cfg.LLMAPIURL)
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.LLMModel)
	assert.Equal(t, "America/Halifax", cfg.PublishTimezone)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Empty(t, cfg.LLMAPIKey)
	assert.Empty(t, cfg.HostingAPIURL)
	assert.Empty(t, cfg.PodcastID)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("LLM_API_URL", "http://llm.local/v1/messages")
	t.Setenv("LLM_MODEL", "test-model")
	t.Setenv("HOSTING_API_URL", "http://hosting.local/episodes")
	t.Setenv("PODCAST_ID", "pod-42")
	t.Setenv("PUBLISH_TIMEZONE", "Europe/Berlin")
	t.Setenv("OUTPUT_DIR", "/tmp/episodes")

	cfg := Load()

	assert.Equal(t, "sk-test", cfg.LLMAPIKey)
	assert.Equal(t, "http://llm.local/v1/messages", cfg.LLMAPIURL)
	assert.Equal(t, "test-model", cfg.LLMModel)
	assert.Equal(t, "http://hosting.local/episodes", cfg.HostingAPIURL)
	assert.Equal(t, "pod-42", cfg.PodcastID)
	assert.Equal(t, "Europe/Berlin", cfg.PublishTimezone)
	assert.Equal(t, "/tmp/episodes", cfg.OutputDir)
}
