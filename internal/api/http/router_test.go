package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"amalgam/internal/api/ws"
	"amalgam/internal/config"
	"amalgam/internal/room"
	"amalgam/internal/store"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Load()
	mem := store.NewMemoryStore()
	hub := ws.NewHub()
	rm := room.NewManager(mem, cfg, hub)
	return NewRouter(rm, hub, cfg)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestGameLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter()

	code, resp := doJSON(t, r, http.MethodPost, "/create-game", gin.H{"playerName": "alice"})
	require.Equal(t, http.StatusOK, code)
	gameCode, _ := resp["gameCode"].(string)
	aliceID, _ := resp["playerId"].(string)
	require.NotEmpty(t, gameCode)
	require.NotEmpty(t, aliceID)

	code, resp = doJSON(t, r, http.MethodPost, "/join-game", gin.H{"gameCode": gameCode, "playerName": "bob"})
	require.Equal(t, http.StatusOK, code)
	bobID, _ := resp["playerId"].(string)
	require.NotEmpty(t, bobID)
	require.Equal(t, "north", resp["side"])

	code, _ = doJSON(t, r, http.MethodPost, "/join-game", gin.H{"gameCode": gameCode, "playerName": "carol"})
	require.Equal(t, http.StatusConflict, code)

	code, _ = doJSON(t, r, http.MethodPost, "/auto-setup", gin.H{"gameCode": gameCode, "playerId": aliceID})
	require.Equal(t, http.StatusOK, code)

	code, resp = doJSON(t, r, http.MethodGet, "/game?gameCode="+gameCode, nil)
	require.Equal(t, http.StatusOK, code)
	game := resp["game"].(map[string]interface{})
	state := game["state"].(map[string]interface{})
	require.Equal(t, "gameplay", state["phaseName"])
	require.Len(t, state["pieces"], 24)

	path := fmt.Sprintf("/legal-destinations?gameCode=%s&x=-2&y=-2", gameCode)
	code, resp = doJSON(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, resp["destinations"])

	// North cannot move first.
	code, _ = doJSON(t, r, http.MethodPost, "/move", gin.H{
		"gameCode": gameCode, "playerId": bobID,
		"from": gin.H{"x": -2, "y": 2}, "to": gin.H{"x": -2, "y": 1},
	})
	require.Equal(t, http.StatusConflict, code)

	code, resp = doJSON(t, r, http.MethodPost, "/move", gin.H{
		"gameCode": gameCode, "playerId": aliceID,
		"from": gin.H{"x": -2, "y": -2}, "to": gin.H{"x": -2, "y": -1},
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, resp["ok"])
	require.Nil(t, resp["winner"])
}

func TestSetupOverHTTP(t *testing.T) {
	r := newTestRouter()

	_, resp := doJSON(t, r, http.MethodPost, "/create-game", gin.H{"playerName": "alice"})
	gameCode := resp["gameCode"].(string)
	aliceID := resp["playerId"].(string)
	_, resp = doJSON(t, r, http.MethodPost, "/join-game", gin.H{"gameCode": gameCode, "playerName": "bob"})
	bobID := resp["playerId"].(string)

	code, _ := doJSON(t, r, http.MethodPost, "/place", gin.H{
		"gameCode": gameCode, "playerId": aliceID,
		"kind": "ruby", "at": gin.H{"x": 0, "y": -2},
	})
	require.Equal(t, http.StatusOK, code)

	// Out of turn: alice placed, so bob places next.
	code, _ = doJSON(t, r, http.MethodPost, "/place", gin.H{
		"gameCode": gameCode, "playerId": aliceID,
		"kind": "ruby", "at": gin.H{"x": 1, "y": -2},
	})
	require.Equal(t, http.StatusConflict, code)

	code, _ = doJSON(t, r, http.MethodPost, "/place", gin.H{
		"gameCode": gameCode, "playerId": bobID,
		"kind": "unobtainium", "at": gin.H{"x": 0, "y": 2},
	})
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = doJSON(t, r, http.MethodPost, "/place", gin.H{
		"gameCode": gameCode, "playerId": bobID,
		"kind": "ruby", "at": gin.H{"x": 0, "y": 2},
	})
	require.Equal(t, http.StatusOK, code)
}

func TestUnknownGameIs404(t *testing.T) {
	r := newTestRouter()

	code, _ := doJSON(t, r, http.MethodGet, "/game?gameCode=NOPE42", nil)
	require.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, r, http.MethodPost, "/move", gin.H{
		"gameCode": "NOPE42", "playerId": "x",
		"from": gin.H{"x": 0, "y": 0}, "to": gin.H{"x": 0, "y": 1},
	})
	require.Equal(t, http.StatusNotFound, code)
}

func TestRulesConfigEndpoint(t *testing.T) {
	r := newTestRouter()

	code, resp := doJSON(t, r, http.MethodGet, "/config/rules", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "placer-first", resp["firstMover"])
	require.Equal(t, "all", resp["eliminationScope"])
	require.Equal(t, "none", resp["arrivalCapture"])
}
