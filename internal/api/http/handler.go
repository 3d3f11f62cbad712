package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"amalgam/internal/game"
	"amalgam/internal/room"
	"amalgam/internal/shared"
)

// statusFor maps engine and room rejections onto HTTP status codes. Intents
// that are well formed but out of order conflict with the session state.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, game.ErrWrongPhase),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, room.ErrGameFull),
		errors.Is(err, room.ErrWaitingForOpponent):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// @Summary Create new game
// @Description Create a game session and seat the creator on the south side
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.CreateGameRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /create-game [post]
func CreateGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGameRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		g := rm.CreateGame(req.PlayerName)
		c.JSON(http.StatusOK, gin.H{
			"gameCode": g.Code,
			"playerId": g.Seats[0].ID,
			"game":     room.StateView(g),
		})
	}
}

// @Summary Join an existing game
// @Description Seat the second player on the north side
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.JoinGameRequest true "Join info"
// @Success 200 {object} map[string]interface{}
// @Router /join-game [post]
func JoinGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinGameRequest
		if err := c.BindJSON(&req); err != nil || req.GameCode == "" || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gameCode and playerName required"})
			return
		}
		g, ok := rm.Get(req.GameCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		seat, err := rm.Join(g, req.PlayerName)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"playerId": seat.ID,
			"side":     seat.SideName,
			"game":     room.StateView(g),
		})
	}
}

// @Summary Place a gem during setup
// @Description Submit one alternating setup placement inside the player's zone
// @Tags Setup
// @Accept json
// @Produce json
// @Param request body http.PlaceRequest true "Placement data"
// @Success 200 {object} map[string]interface{}
// @Router /place [post]
func PlaceHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		g, ok := rm.Get(req.GameCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		kind, ok := shared.ParsePieceKind(req.Kind)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown piece kind"})
			return
		}
		if err := rm.Place(g, req.PlayerID, kind, req.At); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"game": room.StateView(g)})
	}
}

// @Summary Apply the default setup
// @Description Fill both sides' default arrangements and start gameplay
// @Tags Setup
// @Accept json
// @Produce json
// @Param request body http.AutoSetupRequest true "Game info"
// @Success 200 {object} map[string]interface{}
// @Router /auto-setup [post]
func AutoSetupHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AutoSetupRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		g, ok := rm.Get(req.GameCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		if err := rm.AutoSetup(g, req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"game": room.StateView(g)})
	}
}

// @Summary Get legal destinations for a piece
// @Description Returns every intersection the piece at the coordinate may move to
// @Tags Gameplay
// @Produce json
// @Param gameCode query string true "Game Code"
// @Param x query int true "X coordinate"
// @Param y query int true "Y coordinate"
// @Success 200 {object} map[string]interface{}
// @Router /legal-destinations [get]
func LegalDestinationsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := rm.Get(c.Query("gameCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		x, errX := strconv.Atoi(c.Query("x"))
		y, errY := strconv.Atoi(c.Query("y"))
		if errX != nil || errY != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "x and y required"})
			return
		}
		from := shared.Coord{X: x, Y: y}
		dests := rm.LegalDestinations(g, from)
		if dests == nil {
			dests = []shared.Coord{}
		}
		c.JSON(http.StatusOK, gin.H{"from": from, "destinations": dests})
	}
}

// @Summary Player moves a piece
// @Description Commit the turn's primary move to an empty reachable intersection
// @Tags Gameplay
// @Accept json
// @Produce json
// @Param request body http.MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		g, ok := rm.Get(req.GameCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		if err := rm.Move(g, req.PlayerID, req.From, req.To); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"game":   room.StateView(g),
			"winner": g.Session.Winner(),
		})
	}
}

// @Summary Portal swap
// @Description Exchange a Portal with a piece that could legally travel the other way
// @Tags Gameplay
// @Accept json
// @Produce json
// @Param request body http.MoveRequest true "Swap data"
// @Success 200 {object} map[string]interface{}
// @Router /swap [post]
func SwapHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		g, ok := rm.Get(req.GameCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		if err := rm.Swap(g, req.PlayerID, req.From, req.To); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"game":   room.StateView(g),
			"winner": g.Session.Winner(),
		})
	}
}

// @Summary Confirm a pending ability
// @Description Resolve a detected ability, destroying the chosen targets
// @Tags Ability
// @Accept json
// @Produce json
// @Param request body http.ConfirmAbilityRequest true "Confirmation data"
// @Success 200 {object} map[string]interface{}
// @Router /ability/confirm [post]
func ConfirmAbilityHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConfirmAbilityRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		g, ok := rm.Get(req.GameCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		kind, ok := shared.ParseAbilityKind(req.Kind)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown ability kind"})
			return
		}
		if err := rm.ConfirmAbility(g, req.PlayerID, kind, req.Targets); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"game":   room.StateView(g),
			"winner": g.Session.Winner(),
		})
	}
}

// @Summary Decline pending abilities
// @Description Decline the turn's pending abilities, or disarm a launch selection
// @Tags Ability
// @Accept json
// @Produce json
// @Param request body http.CancelAbilityRequest true "Cancel data"
// @Success 200 {object} map[string]interface{}
// @Router /ability/cancel [post]
func CancelAbilityHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CancelAbilityRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		g, ok := rm.Get(req.GameCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		if err := rm.CancelAbility(g, req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"game": room.StateView(g)})
	}
}

// @Summary Select the piece to launch
// @Description Arm one of the launchable pieces offered by a pending Launch
// @Tags Ability
// @Accept json
// @Produce json
// @Param request body http.LaunchSelectRequest true "Selection data"
// @Success 200 {object} map[string]interface{}
// @Router /launch/select [post]
func LaunchSelectHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LaunchSelectRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		g, ok := rm.Get(req.GameCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		if err := rm.SelectLaunch(g, req.PlayerID, req.Piece); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"game": room.StateView(g)})
	}
}

// @Summary Land the launched piece
// @Description Send the armed piece to one of its legal landing intersections
// @Tags Ability
// @Accept json
// @Produce json
// @Param request body http.LaunchDestinationRequest true "Landing data"
// @Success 200 {object} map[string]interface{}
// @Router /launch/destination [post]
func LaunchDestinationHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LaunchDestinationRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		g, ok := rm.Get(req.GameCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		if err := rm.LaunchTo(g, req.PlayerID, req.Dest); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"game":   room.StateView(g),
			"winner": g.Session.Winner(),
		})
	}
}

// @Summary Reset the active turn
// @Description Roll the board back to the start of the active turn
// @Tags Gameplay
// @Accept json
// @Produce json
// @Param request body http.ResetTurnRequest true "Reset data"
// @Success 200 {object} map[string]interface{}
// @Router /reset-turn [post]
func ResetTurnHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetTurnRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		g, ok := rm.Get(req.GameCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		if err := rm.ResetTurn(g, req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"game": room.StateView(g)})
	}
}

// @Summary Get current game state
// @Description Returns the full snapshot of a game
// @Tags Game
// @Produce json
// @Param gameCode query string true "Game Code"
// @Success 200 {object} map[string]interface{}
// @Router /game [get]
func GetGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := rm.Get(c.Query("gameCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"game":   room.StateView(g),
			"winner": g.Session.Winner(),
		})
	}
}
