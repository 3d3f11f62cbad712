package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Hub fans live state updates out to every socket subscribed to a game code.
// All intents arrive over HTTP; the socket is a one-way update channel, so the
// read loop only keeps the connection alive and detects disconnects.
type Hub struct {
	mu    sync.RWMutex
	games map[string]map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		games: make(map[string]map[*websocket.Conn]struct{}),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	gameCode := c.Query("game_code")
	if gameCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing game_code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.mu.Lock()
	if _, ok := h.games[gameCode]; !ok {
		h.games[gameCode] = make(map[*websocket.Conn]struct{})
	}
	h.games[gameCode][conn] = struct{}{}
	h.mu.Unlock()

	log.Debug().Str("code", gameCode).Msg("websocket subscribed")

	defer func() {
		h.mu.Lock()
		delete(h.games[gameCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Debug().Err(err).Str("code", gameCode).Msg("websocket closed")
			break
		}
		// Inbound messages are ignored; intents go through the HTTP API.
	}
}

func (h *Hub) Broadcast(gameCode string, action string, data interface{}) {
	// Full lock: broadcasts both write to shared connections and prune dead
	// ones from the map.
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.games[gameCode]
	if !ok {
		return
	}

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Warn().Err(err).Str("code", gameCode).Msg("dropping websocket client")
			conn.Close()
			delete(clients, conn)
		}
	}
}
