package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deepgram/quickchat/internal/api/routes"
	"github.com/deepgram/quickchat/internal/config"
	"github.com/deepgram/quickchat/internal/services"
	"github.com/deepgram/quickchat/pkg/logger"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.Server.LogLevel, cfg.Server.LogFormat)

	svcs, err := services.InitializeServices(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           setupRouter(svcs),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	// Leave room for an in-flight completion to finish.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.OpenAI.Timeout+5*time.Second)
	defer cancel()

	log.Info().Msg("Shutting down server")
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func setupRouter(svcs *services.Services) *mux.Router {
	r := mux.NewRouter()
	routes.RegisterRoutes(r, svcs)
	return r
}
