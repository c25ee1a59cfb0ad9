package routes

import (
	"net/http"

	chathandlers "github.com/deepgram/quickchat/internal/api/handlers/chat"
	"github.com/deepgram/quickchat/internal/api/middleware"
	"github.com/deepgram/quickchat/internal/services"
	"github.com/deepgram/quickchat/pkg/httpext"
	"github.com/gorilla/mux"
)

// RegisterRoutes wires the chat page, its form action and the health check
func RegisterRoutes(router *mux.Router, services *services.Services) {
	router.Use(middleware.RequestLogger)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpext.JsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	router.Handle("/", httpext.Handle(chathandlers.HandleChatPage)).Methods("GET")
	router.Handle("/", httpext.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return chathandlers.HandleChatAction(services.GetChatValidator(), services.GetChatGateway(), w, r)
	})).Methods("POST")
}
