package chat

import (
	"context"

	"github.com/deepgram/quickchat/internal/services/chat/models"
)

// Gateway defines the single-turn completion operation
type Gateway interface {
	// Complete sends input as one user message and returns the first reply
	Complete(ctx context.Context, input string) (*models.CompletionResponse, error)
}
