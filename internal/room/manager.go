package room

import (
	"github.com/rs/zerolog/log"

	"amalgam/internal/shared"
)

// Intent methods. Each resolves the caller's seat, forwards the intent to the
// session, and on success persists and broadcasts the new state. Rejected
// intents change nothing and are returned verbatim for the transport layer to
// map onto a status code.

func (m *Manager) Place(g *Game, playerID string, kind shared.PieceKind, at shared.Coord) error {
	side, err := m.side(g, playerID)
	if err != nil {
		return err
	}
	if err := g.Session.Place(side, kind, at); err != nil {
		return err
	}
	m.afterIntent(g, "state-updated")
	return nil
}

func (m *Manager) AutoSetup(g *Game, playerID string) error {
	if _, err := m.side(g, playerID); err != nil {
		return err
	}
	if err := g.Session.AutoSetup(); err != nil {
		return err
	}
	m.afterIntent(g, "state-updated")
	return nil
}

func (m *Manager) Move(g *Game, playerID string, from, to shared.Coord) error {
	side, err := m.side(g, playerID)
	if err != nil {
		return err
	}
	if err := g.Session.Move(side, from, to); err != nil {
		return err
	}
	m.afterIntent(g, "move-applied")
	return nil
}

func (m *Manager) Swap(g *Game, playerID string, from, to shared.Coord) error {
	side, err := m.side(g, playerID)
	if err != nil {
		return err
	}
	if err := g.Session.Swap(side, from, to); err != nil {
		return err
	}
	m.afterIntent(g, "move-applied")
	return nil
}

func (m *Manager) ConfirmAbility(g *Game, playerID string, kind shared.AbilityKind, targets []shared.Coord) error {
	side, err := m.side(g, playerID)
	if err != nil {
		return err
	}
	if err := g.Session.ConfirmAbility(side, kind, targets); err != nil {
		return err
	}
	m.afterIntent(g, "state-updated")
	return nil
}

func (m *Manager) CancelAbility(g *Game, playerID string) error {
	side, err := m.side(g, playerID)
	if err != nil {
		return err
	}
	if err := g.Session.CancelAbility(side); err != nil {
		return err
	}
	m.afterIntent(g, "state-updated")
	return nil
}

func (m *Manager) SelectLaunch(g *Game, playerID string, piece shared.Coord) error {
	side, err := m.side(g, playerID)
	if err != nil {
		return err
	}
	if err := g.Session.SelectLaunch(side, piece); err != nil {
		return err
	}
	m.afterIntent(g, "state-updated")
	return nil
}

func (m *Manager) LaunchTo(g *Game, playerID string, dest shared.Coord) error {
	side, err := m.side(g, playerID)
	if err != nil {
		return err
	}
	if err := g.Session.LaunchTo(side, dest); err != nil {
		return err
	}
	m.afterIntent(g, "move-applied")
	return nil
}

func (m *Manager) ResetTurn(g *Game, playerID string) error {
	side, err := m.side(g, playerID)
	if err != nil {
		return err
	}
	if err := g.Session.ResetTurn(side); err != nil {
		return err
	}
	m.afterIntent(g, "state-updated")
	return nil
}

// LegalDestinations is a read-only query; it never broadcasts.
func (m *Manager) LegalDestinations(g *Game, from shared.Coord) []shared.Coord {
	return g.Session.LegalDestinations(from)
}

func (m *Manager) afterIntent(g *Game, action string) {
	m.store.SaveGame(g)
	if win := g.Session.Winner(); win != nil {
		log.Info().
			Str("code", g.Code).
			Str("winner", win.Winner.String()).
			Str("victory", win.Kind.String()).
			Msg("game over")
		m.hub.Broadcast(g.Code, "game-over", StateView(g))
		return
	}
	m.hub.Broadcast(g.Code, action, StateView(g))
}
