package room

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"amalgam/internal/config"
	"amalgam/internal/game"
	"amalgam/internal/shared"
)

var (
	ErrGameFull           = errors.New("game already has two players")
	ErrUnknownPlayer      = errors.New("player not seated in this game")
	ErrWaitingForOpponent = errors.New("waiting for an opponent to join")
)

// Seat binds one connected player to an engine side.
type Seat struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Side     shared.Player `json:"side"`
	SideName string        `json:"sideName"`
}

// Game is one hosted session plus its seat bookkeeping.
type Game struct {
	ID        string        `json:"id"`
	Code      string        `json:"code"`
	Session   *game.Session `json:"-"`
	Seats     []Seat        `json:"seats"`
	CreatedAt time.Time     `json:"createdAt"`
}

type Store interface {
	GetGame(code string) (*Game, bool)
	SaveGame(g *Game)
}

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	return &Manager{store: s, cfg: cfg, hub: hub}
}

// CreateGame starts a session under a fresh code and seats the creator South.
func (m *Manager) CreateGame(creatorName string) *Game {
	g := &Game{
		ID:        uuid.NewString(),
		Code:      randCode(m.cfg.CodeLength),
		Session:   game.NewSession(m.cfg.GameRules()),
		CreatedAt: time.Now(),
	}
	g.Seats = append(g.Seats, newSeat(creatorName, shared.South))
	m.store.SaveGame(g)
	log.Info().Str("code", g.Code).Str("player", creatorName).Msg("game created")
	return g
}

// Join seats the second player North. A third player is rejected.
func (m *Manager) Join(g *Game, playerName string) (Seat, error) {
	if len(g.Seats) >= 2 {
		return Seat{}, ErrGameFull
	}
	seat := newSeat(playerName, shared.North)
	g.Seats = append(g.Seats, seat)
	m.store.SaveGame(g)
	log.Info().Str("code", g.Code).Str("player", playerName).Msg("player joined")
	m.hub.Broadcast(g.Code, "state-updated", StateView(g))
	return seat, nil
}

func (m *Manager) Get(code string) (*Game, bool) {
	return m.store.GetGame(code)
}

// side resolves a seated player ID to its engine side.
func (m *Manager) side(g *Game, playerID string) (shared.Player, error) {
	for _, seat := range g.Seats {
		if seat.ID == playerID {
			if len(g.Seats) < 2 {
				return 0, ErrWaitingForOpponent
			}
			return seat.Side, nil
		}
	}
	return 0, ErrUnknownPlayer
}

func newSeat(name string, side shared.Player) Seat {
	return Seat{
		ID:       uuid.NewString(),
		Name:     name,
		Side:     side,
		SideName: side.String(),
	}
}

// StateView is the broadcast and response payload for a game: the seats plus
// the full session snapshot.
func StateView(g *Game) map[string]interface{} {
	return map[string]interface{}{
		"code":  g.Code,
		"seats": g.Seats,
		"state": g.Session.Snapshot(),
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	if n <= 0 {
		n = 6
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
