package http

import (
	"github.com/gin-gonic/gin"

	"amalgam/internal/api/ws"
	"amalgam/internal/config"
	"amalgam/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- GAME ENDPOINTS ---
	r.POST("/create-game", CreateGameHandler(rm))
	r.POST("/join-game", JoinGameHandler(rm))
	r.GET("/game", GetGameHandler(rm))

	// --- SETUP ENDPOINTS ---
	r.POST("/place", PlaceHandler(rm))
	r.POST("/auto-setup", AutoSetupHandler(rm))

	// --- GAMEPLAY ENDPOINTS ---
	r.GET("/legal-destinations", LegalDestinationsHandler(rm))
	r.POST("/move", MoveHandler(rm))
	r.POST("/swap", SwapHandler(rm))
	r.POST("/reset-turn", ResetTurnHandler(rm))

	// --- ABILITY ENDPOINTS ---
	r.POST("/ability/confirm", ConfirmAbilityHandler(rm))
	r.POST("/ability/cancel", CancelAbilityHandler(rm))
	r.POST("/launch/select", LaunchSelectHandler(rm))
	r.POST("/launch/destination", LaunchDestinationHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config/rules", GetRulesHandler(cfg))
	r.GET("/config/rules/game", GetGameRulesHandler(rm))

	return r
}
