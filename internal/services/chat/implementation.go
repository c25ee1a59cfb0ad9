package chat

import (
	"context"
	"strings"
	"time"

	infra "github.com/deepgram/quickchat/internal/infrastructure/openai"
	"github.com/deepgram/quickchat/internal/services/chat/models"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

type Implementation struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewService(openAIService *infra.Service) *Implementation {
	return &Implementation{
		client:  openAIService.GetClient(),
		model:   openAIService.Model(),
		timeout: openAIService.Timeout(),
	}
}

func (s *Implementation) Complete(ctx context.Context, input string) (*models.CompletionResponse, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: input,
			},
		},
	})
	if err != nil {
		upstreamErr := newUpstreamError(err)
		log.Error().
			Err(err).
			Int("status", upstreamErr.StatusCode).
			Bool("timeout", upstreamErr.Timeout()).
			Dur("elapsed", time.Since(start)).
			Msg("Failed to get chat completion")
		return nil, upstreamErr
	}

	if len(resp.Choices) == 0 {
		log.Error().Str("response_id", resp.ID).Msg("Chat completion returned no choices")
		return nil, &UpstreamError{Err: ErrMalformedResponse}
	}

	// A missing or null message decodes to the zero value.
	message := resp.Choices[0].Message
	if message.Role == "" && message.Content == "" {
		log.Error().Str("response_id", resp.ID).Msg("Chat completion choice has no message")
		return nil, &UpstreamError{Err: ErrMalformedResponse}
	}

	log.Debug().
		Str("response_id", resp.ID).
		Int("input_length", len(input)).
		Dur("elapsed", time.Since(start)).
		Msg("Chat completion received")

	return &models.CompletionResponse{Text: message.Content}, nil
}
