package chat

import (
	"context"
	"mime"
	"net/http"
	"strings"

	"github.com/deepgram/quickchat/internal/services/chat"
	"github.com/deepgram/quickchat/internal/services/chat/models"
	"github.com/deepgram/quickchat/pkg/httpext"
	"github.com/rs/zerolog"
)

const maxFormMemory = 1 << 20

// ActionResponse is the JSON body returned by the chat form action
type ActionResponse struct {
	Response string           `json:"response,omitempty"`
	Error    string           `json:"error,omitempty"`
	Form     models.FormState `json:"form"`
}

// HandleChatAction validates the submitted form and, when valid, asks the gateway for a
// reply. Gateway failures are returned to the caller unhandled.
func HandleChatAction(validator chat.Validator, gateway chat.Gateway, w http.ResponseWriter, r *http.Request) error {
	logger := zerolog.Ctx(r.Context())

	if err := parseForm(r); err != nil {
		logger.Warn().Err(err).Msg("Client sent malformed form body")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return nil
	}

	result := validator.Validate(r.PostForm)
	if !result.Valid() {
		logger.Warn().Interface("field_errors", result.FieldErrors).Msg("Chat form validation failed")
		resp := ActionResponse{
			Error: result.FirstError(),
			Form: models.FormState{
				Valid:  false,
				Data:   models.ChatRequest{Input: r.PostForm.Get(models.InputField)},
				Errors: result.FieldErrors,
			},
		}
		return respond(w, r, http.StatusBadRequest, resp, nil)
	}

	logger.Info().
		Int("input_length", len(result.Input)).
		Str("client_ip", r.RemoteAddr).
		Msg("Received chat form submission")

	// Client disconnects do not cancel the upstream call; the gateway timeout bounds it.
	completion, err := gateway.Complete(context.WithoutCancel(r.Context()), result.Input)
	if err != nil {
		return err
	}

	resp := ActionResponse{
		Response: completion.Text,
		Form: models.FormState{
			Valid: true,
			Data:  models.ChatRequest{Input: result.Input},
		},
	}
	transcript := []models.ChatMessage{
		{Role: models.RoleUser, Message: result.Input},
		{Role: models.RoleBot, Message: completion.Text},
	}
	return respond(w, r, http.StatusOK, resp, transcript)
}

func respond(w http.ResponseWriter, r *http.Request, code int, resp ActionResponse, transcript []models.ChatMessage) error {
	if wantsJSON(r) {
		httpext.JsonResponse(w, code, resp)
		return nil
	}

	if transcript == nil {
		transcript = []models.ChatMessage{}
	}
	return renderPage(w, r, code, pageData{
		Messages: transcript,
		Form:     resp.Form,
		Error:    resp.Error,
	})
}

func parseForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(maxFormMemory)
	}
	return r.ParseForm()
}

func wantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mediaType == "application/json" {
			return true
		}
	}
	return false
}
