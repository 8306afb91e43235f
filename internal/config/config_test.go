package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("NEWS_API_KEY", "news-key")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "or-key", cfg.OpenRouterAPIKey)
	assert.Equal(t, "news-key", cfg.NewsAPIKey)
}

func TestFromEnvMissingCompletionKey(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("NEWS_API_KEY", "news-key")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENROUTER_API_KEY")
}

func TestFromEnvMissingNewsKey(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("NEWS_API_KEY", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEWS_API_KEY")
}
