package chat

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/deepgram/quickchat/internal/services/chat/models"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

type pageData struct {
	Messages []models.ChatMessage
	Form     models.FormState
	Error    string
}

// HandleChatPage renders the chat page with an empty transcript
func HandleChatPage(w http.ResponseWriter, r *http.Request) error {
	return renderPage(w, r, http.StatusOK, pageData{
		Messages: []models.ChatMessage{},
	})
}

func renderPage(w http.ResponseWriter, r *http.Request, code int, data pageData) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("Failed to write page")
	}
	return nil
}
