package main

import (
	"github.com/rs/zerolog/log"

	httpapi "amalgam/internal/api/http"
	"amalgam/internal/api/ws"
	"amalgam/internal/config"
	"amalgam/internal/room"
	"amalgam/internal/store"
)

// @title Amalgam Game API
// @version 1.0
// @description REST + WebSocket API for the Amalgam two-player board game
// @BasePath /
func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	hub := ws.NewHub()
	rm := room.NewManager(mem, cfg, hub)
	r := httpapi.NewRouter(rm, hub, cfg)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
