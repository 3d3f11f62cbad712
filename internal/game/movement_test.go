package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalDestinationsNonPortal(t *testing.T) {
	s := bareSession(DefaultRules())
	put(t, s, South, Ruby, Coord{X: 0, Y: 0})
	put(t, s, South, Pearl, Coord{X: 1, Y: 1})
	put(t, s, North, Amber, Coord{X: 0, Y: 1})

	want := []Coord{
		{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
		{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0},
	}
	require.Equal(t, want, s.LegalDestinations(Coord{X: 0, Y: 0}))
	require.Equal(t, want, s.LegalDestinations(Coord{X: 0, Y: 0}), "repeat query must not drift")
}

func TestLegalDestinationsPortalUsesRails(t *testing.T) {
	s := bareSession(DefaultRules())
	put(t, s, South, Portal, Coord{X: 2, Y: 0})

	require.Equal(t, []Coord{
		{X: -2, Y: 0},
		{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 2, Y: -1}, {X: 2, Y: 1},
		{X: 3, Y: -1}, {X: 3, Y: 0}, {X: 3, Y: 1},
	}, s.LegalDestinations(Coord{X: 2, Y: 0}))

	// An occupied rail node is not a destination.
	put(t, s, North, Ruby, Coord{X: -2, Y: 0})
	require.NotContains(t, s.LegalDestinations(Coord{X: 2, Y: 0}), Coord{X: -2, Y: 0})
}

func TestLegalDestinationsPortalOffRail(t *testing.T) {
	s := bareSession(DefaultRules())
	put(t, s, South, Portal, Coord{X: 1, Y: 1})

	require.Equal(t, []Coord{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
		{X: 1, Y: 0}, {X: 1, Y: 2},
		{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
	}, s.LegalDestinations(Coord{X: 1, Y: 1}))
}

func TestLegalDestinationsEmptySource(t *testing.T) {
	s := bareSession(DefaultRules())
	require.Nil(t, s.LegalDestinations(Coord{X: 0, Y: 0}))
	require.Nil(t, s.LegalDestinations(Coord{X: 9, Y: 9}))
}

func TestShapeReachable(t *testing.T) {
	tests := []struct {
		name     string
		kind     PieceKind
		from, to Coord
		want     bool
	}{
		{"gem one step", Ruby, Coord{X: 0, Y: 0}, Coord{X: 1, Y: 1}, true},
		{"gem two steps", Ruby, Coord{X: 0, Y: 0}, Coord{X: 2, Y: 0}, false},
		{"portal hub crossing", Portal, Coord{X: 2, Y: 0}, Coord{X: -2, Y: 0}, true},
		{"portal tip ring", Portal, Coord{X: 0, Y: 6}, Coord{X: 6, Y: 0}, true},
		{"portal skips along chain", Portal, Coord{X: 0, Y: 4}, Coord{X: 0, Y: 6}, false},
		{"non-portal on rails", Pearl, Coord{X: 2, Y: 0}, Coord{X: -2, Y: 0}, false},
		{"same square", Ruby, Coord{X: 0, Y: 0}, Coord{X: 0, Y: 0}, false},
		{"off board", Portal, Coord{X: 2, Y: 0}, Coord{X: 9, Y: 9}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, shapeReachable(tt.kind, tt.from, tt.to))
		})
	}
}
