// Package config reads the daemon's environment configuration.
package config

import (
	"fmt"
	"os"
)

// Config holds everything the daemon reads from the environment. Both API
// keys are required; the loops must not start without them.
type Config struct {
	OpenRouterAPIKey string
	NewsAPIKey       string
}

func FromEnv() (Config, error) {
	cfg := Config{
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		NewsAPIKey:       os.Getenv("NEWS_API_KEY"),
	}

	if cfg.OpenRouterAPIKey == "" {
		return cfg, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	if cfg.NewsAPIKey == "" {
		return cfg, fmt.Errorf("NEWS_API_KEY not set")
	}

	return cfg, nil
}
