package config

import (
	"fmt"
	"strings"
)

const (
	ValidatorSchema = "schema"
	ValidatorTrim   = "trim"
)

type ServerConfig struct {
	Port      int
	LogLevel  string
	LogFormat string
	Validator string
}

// Addr returns the listen address for the HTTP server
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func LoadServerConfig() (ServerConfig, error) {
	cfg := ServerConfig{
		Port:      getEnvAsPortOrDefault("PORT", 8080),
		LogLevel:  GetEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: GetEnvOrDefault("LOG_FORMAT", "json"),
		Validator: strings.ToLower(GetEnvOrDefault("CHAT_VALIDATOR", ValidatorSchema)),
	}

	switch cfg.Validator {
	case ValidatorSchema, ValidatorTrim:
	default:
		return cfg, fmt.Errorf("unknown CHAT_VALIDATOR %q, expected %q or %q", cfg.Validator, ValidatorSchema, ValidatorTrim)
	}

	return cfg, nil
}
