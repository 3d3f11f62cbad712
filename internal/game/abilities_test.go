package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollinear(t *testing.T) {
	require.True(t, collinear(Coord{X: -1, Y: 0}, Coord{X: 3, Y: 0}))
	require.True(t, collinear(Coord{X: 0, Y: -2}, Coord{X: 0, Y: 4}))
	require.True(t, collinear(Coord{X: -2, Y: -2}, Coord{X: 1, Y: 1}))
	require.True(t, collinear(Coord{X: -1, Y: 2}, Coord{X: 1, Y: 0}))
	require.False(t, collinear(Coord{X: 0, Y: 0}, Coord{X: 2, Y: 1}))
	require.False(t, collinear(Coord{X: 1, Y: 1}, Coord{X: 1, Y: 1}), "a point is not a line")
}

func TestOnOpenSegment(t *testing.T) {
	a, b := Coord{X: -3, Y: 0}, Coord{X: 3, Y: 0}
	require.True(t, onOpenSegment(Coord{X: 0, Y: 0}, a, b))
	require.True(t, onOpenSegment(Coord{X: -2, Y: 0}, a, b))
	require.False(t, onOpenSegment(a, a, b), "endpoints are excluded")
	require.False(t, onOpenSegment(Coord{X: 0, Y: 1}, a, b))
	require.False(t, onOpenSegment(Coord{X: 0, Y: 0}, Coord{X: 0, Y: 0}, Coord{X: 2, Y: 1}))
}

func TestFireballDetectionTargetsFirstEnemyBeyondPair(t *testing.T) {
	s := bareSession(DefaultRules())
	put(t, s, South, Ruby, Coord{X: -1, Y: 0})
	put(t, s, South, Ruby, Coord{X: 1, Y: 1})
	put(t, s, North, Pearl, Coord{X: 3, Y: 0})
	put(t, s, North, Jade, Coord{X: 0, Y: 4})

	require.NoError(t, s.Move(South, Coord{X: 1, Y: 1}, Coord{X: 1, Y: 0}))

	require.Equal(t, StepAbility, s.TurnStep())
	pending := s.Pending(South)
	require.Len(t, pending, 1)
	require.Equal(t, Fireball, pending[0].Kind)
	require.Len(t, pending[0].Pairs, 1)
	require.Equal(t, AbilityPair{A: Coord{X: -1, Y: 0}, B: Coord{X: 1, Y: 0}}, pending[0].Pairs[0].Pair)
	require.Equal(t, []Coord{{X: 3, Y: 0}}, pending[0].Pairs[0].Targets)
}

func TestFireballBlockedByFriendlyPiece(t *testing.T) {
	s := bareSession(DefaultRules())
	put(t, s, South, Ruby, Coord{X: -1, Y: 0})
	put(t, s, South, Ruby, Coord{X: 1, Y: 1})
	put(t, s, South, Amber, Coord{X: 2, Y: 0})
	put(t, s, North, Pearl, Coord{X: 3, Y: 0})
	put(t, s, North, Jade, Coord{X: 0, Y: 4})

	require.NoError(t, s.Move(South, Coord{X: 1, Y: 1}, Coord{X: 1, Y: 0}))

	// The friendly Amber shields the Pearl; no ability arises and the turn
	// passes immediately.
	require.Empty(t, s.Pending(South))
	require.Equal(t, StepPrimary, s.TurnStep())
	require.Equal(t, North, s.CurrentPlayer())
}

func TestTidalwaveCollectsEnemiesUntilFriendlyBlocker(t *testing.T) {
	s := bareSession(DefaultRules())
	put(t, s, South, Pearl, Coord{X: 0, Y: -1})
	put(t, s, South, Pearl, Coord{X: 1, Y: 2})
	put(t, s, South, Jade, Coord{X: 0, Y: 4})
	put(t, s, North, Ruby, Coord{X: 0, Y: 2})
	put(t, s, North, Amber, Coord{X: 0, Y: 3})
	put(t, s, North, Void, Coord{X: 0, Y: 5})

	require.NoError(t, s.Move(South, Coord{X: 1, Y: 2}, Coord{X: 0, Y: 1}))

	pending := s.Pending(South)
	require.Len(t, pending, 1)
	require.Equal(t, Tidalwave, pending[0].Kind)
	require.Len(t, pending[0].Pairs, 1)
	// The wave sweeps past empty squares, takes both enemies, and stops at
	// the friendly Jade; the Void behind it is safe.
	require.Equal(t, []Coord{{X: 0, Y: 2}, {X: 0, Y: 3}}, pending[0].Pairs[0].Targets)
}

func TestSapTriggersWhenMoverLandsOnSegment(t *testing.T) {
	s := bareSession(DefaultRules())
	put(t, s, South, Amber, Coord{X: -3, Y: 0})
	put(t, s, South, Amber, Coord{X: 3, Y: 0})
	put(t, s, South, Pearl, Coord{X: -1, Y: 1})
	put(t, s, North, Ruby, Coord{X: 1, Y: 0})
	put(t, s, North, Jade, Coord{X: 0, Y: 4})

	// The Pearl is adjacent to neither Amber but lands between them.
	require.NoError(t, s.Move(South, Coord{X: -1, Y: 1}, Coord{X: -1, Y: 0}))

	pending := s.Pending(South)
	require.Len(t, pending, 1)
	require.Equal(t, Sap, pending[0].Kind)
	require.Len(t, pending[0].Pairs, 1)
	require.Equal(t, []Coord{{X: 1, Y: 0}}, pending[0].Pairs[0].Targets)
}

func TestSapIgnoresAdjacencyOffSegment(t *testing.T) {
	s := bareSession(DefaultRules())
	put(t, s, South, Amber, Coord{X: -3, Y: 0})
	put(t, s, South, Amber, Coord{X: 3, Y: 0})
	put(t, s, South, Pearl, Coord{X: -2, Y: 1})
	put(t, s, North, Ruby, Coord{X: 1, Y: 0})

	// Adjacent to an Amber but off the segment: a non-Void mover does not
	// trigger Sap.
	require.NoError(t, s.Move(South, Coord{X: -2, Y: 1}, Coord{X: -3, Y: 1}))

	require.Empty(t, s.Pending(South))
	require.Equal(t, North, s.CurrentPlayer())
}

func TestVoidAmplifiesAdjacentPair(t *testing.T) {
	s := bareSession(DefaultRules())
	put(t, s, South, Ruby, Coord{X: -1, Y: 2})
	put(t, s, South, Ruby, Coord{X: 1, Y: 2})
	put(t, s, South, Void, Coord{X: 0, Y: 0})
	put(t, s, North, Pearl, Coord{X: 2, Y: 2})
	put(t, s, North, Amber, Coord{X: 4, Y: 0})

	// The Void is not a member of the Ruby pair; ending adjacent to one
	// member is enough to trigger it.
	require.NoError(t, s.Move(South, Coord{X: 0, Y: 0}, Coord{X: 0, Y: 1}))

	pending := s.Pending(South)
	require.Len(t, pending, 1)
	require.Equal(t, Fireball, pending[0].Kind)
	require.Len(t, pending[0].Pairs, 1)
	require.Equal(t, AbilityPair{A: Coord{X: -1, Y: 2}, B: Coord{X: 1, Y: 2}}, pending[0].Pairs[0].Pair)
	require.Equal(t, []Coord{{X: 2, Y: 2}}, pending[0].Pairs[0].Targets)
}

func TestDetectionNeverResolvesAnything(t *testing.T) {
	s := bareSession(DefaultRules())
	put(t, s, South, Ruby, Coord{X: -1, Y: 0})
	put(t, s, South, Ruby, Coord{X: 1, Y: 1})
	put(t, s, North, Pearl, Coord{X: 3, Y: 0})
	put(t, s, North, Jade, Coord{X: 0, Y: 4})

	require.NoError(t, s.Move(South, Coord{X: 1, Y: 1}, Coord{X: 1, Y: 0}))

	// The exposed target is still on the board until a confirmation intent.
	require.NotNil(t, s.PieceAt(Coord{X: 3, Y: 0}))
	require.Nil(t, s.Winner())
}

func TestLaunchOptionsGeometry(t *testing.T) {
	s := bareSession(DefaultRules())
	put(t, s, South, Jade, Coord{X: 0, Y: -3})
	put(t, s, South, Jade, Coord{X: 1, Y: -2})
	put(t, s, South, Pearl, Coord{X: 0, Y: -1})
	put(t, s, North, Ruby, Coord{X: 0, Y: 2})
	put(t, s, North, Amber, Coord{X: 4, Y: 0})

	require.NoError(t, s.Move(South, Coord{X: 0, Y: -3}, Coord{X: 0, Y: -2}))

	pending := s.Pending(South)
	require.Len(t, pending, 1)
	require.Equal(t, Launch, pending[0].Kind)
	require.Len(t, pending[0].Options, 1)

	opt := pending[0].Options[0]
	require.Equal(t, Coord{X: 0, Y: -1}, opt.Piece)
	// Two rays, one per adjacent pair member: north over empties onto the
	// first enemy, northwest over empties to the board edge.
	require.Equal(t, []Coord{
		{X: -2, Y: 1}, {X: -1, Y: 0},
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
	}, opt.Landings)

	phase, _, _ := s.LaunchState()
	require.Equal(t, AwaitingLaunchSource, phase)
}
