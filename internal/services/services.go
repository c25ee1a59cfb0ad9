package services

import (
	"fmt"

	"github.com/deepgram/quickchat/internal/config"
	"github.com/deepgram/quickchat/internal/infrastructure/openai"
	"github.com/deepgram/quickchat/internal/services/chat"
	"github.com/rs/zerolog/log"
)

type Services struct {
	chatGateway   chat.Gateway
	chatValidator chat.Validator
}

// InitializeServices builds the request-independent collaborators once at start-up
func InitializeServices(cfg *config.Config) (*Services, error) {
	log.Info().Msg("Initializing core services")

	openAIService, err := openai.NewService(cfg.OpenAI)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize OpenAI service - required for chat completions")
		return nil, fmt.Errorf("failed to initialize OpenAI service: %w", err)
	}

	chatValidator := chat.NewValidator(cfg.Server.Validator)
	log.Info().Str("validator", cfg.Server.Validator).Msg("Initializing chat validator")

	log.Info().Msg("All services initialized successfully")

	return &Services{
		chatGateway:   chat.NewService(openAIService),
		chatValidator: chatValidator,
	}, nil
}

// GetChatGateway returns the completion gateway
func (s *Services) GetChatGateway() chat.Gateway {
	return s.chatGateway
}

// GetChatValidator returns the form validator
func (s *Services) GetChatValidator() chat.Validator {
	return s.chatValidator
}
