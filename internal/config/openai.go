package config

import (
	"errors"
	"time"
)

const (
	DefaultOpenAIURL     = "https://api.openai.com/v1/chat/completions"
	DefaultOpenAIModel   = "gpt-3.5-turbo"
	DefaultOpenAITimeout = 30 * time.Second
)

var ErrMissingOpenAIToken = errors.New("OPENAI_TOKEN environment variable not set")

// OpenAIConfig holds everything the completion gateway needs to reach the upstream API.
type OpenAIConfig struct {
	URL     string
	Token   string
	Model   string
	Timeout time.Duration
}

// LoadOpenAIConfig reads the upstream settings from the environment.
func LoadOpenAIConfig() (OpenAIConfig, error) {
	cfg := OpenAIConfig{
		URL:     GetEnvOrDefault("OPENAI_URL", DefaultOpenAIURL),
		Token:   GetEnvOrDefault("OPENAI_TOKEN", ""),
		Model:   GetEnvOrDefault("OPENAI_MODEL", DefaultOpenAIModel),
		Timeout: getEnvAsDurationOrDefault("OPENAI_TIMEOUT", DefaultOpenAITimeout),
	}

	if cfg.Token == "" {
		return cfg, ErrMissingOpenAIToken
	}
	return cfg, nil
}
