package config

import (
	"fmt"

	"github.com/joho/godotenv"
)

// Config is read once at start-up and passed down explicitly.
type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
}

// Load reads configuration from the environment, after loading a .env file if one exists.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	server, err := LoadServerConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}

	openAI, err := LoadOpenAIConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAI config: %w", err)
	}

	return &Config{
		Server: server,
		OpenAI: openAI,
	}, nil
}
