package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"amalgam/internal/config"
	"amalgam/internal/room"
)

// @Summary Get effective rule configuration
// @Description Returns the rule knobs applied to newly created games
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/rules [get]
func GetRulesHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		rules := cfg.GameRules()
		c.JSON(http.StatusOK, gin.H{
			"firstMover":       rules.FirstMover.String(),
			"eliminationScope": rules.Elimination.String(),
			"arrivalCapture":   cfg.ArrivalCapture,
		})
	}
}

// @Summary Get rule configuration of one game
// @Description Returns the rule set a running game was created with
// @Tags Config
// @Produce json
// @Param gameCode query string true "Game Code"
// @Success 200 {object} map[string]interface{}
// @Router /config/rules/game [get]
func GetGameRulesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := rm.Get(c.Query("gameCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		rules := g.Session.Rules()
		c.JSON(http.StatusOK, gin.H{
			"gameCode":         g.Code,
			"firstMover":       rules.FirstMover.String(),
			"eliminationScope": rules.Elimination.String(),
		})
	}
}
