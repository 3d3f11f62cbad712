package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryPlace(t *testing.T) {
	r := NewRegistry()

	pc, err := r.Place(South, Ruby, Coord{X: 0, Y: 0})
	require.NoError(t, err)
	require.Equal(t, 1, pc.ID)
	require.Equal(t, South, pc.Owner)
	require.Equal(t, Ruby, pc.Kind)
	require.Same(t, pc, r.At(Coord{X: 0, Y: 0}))

	_, err = r.Place(North, Pearl, Coord{X: 0, Y: 0})
	require.ErrorIs(t, err, ErrOccupiedDestination)

	_, err = r.Place(North, Pearl, Coord{X: 9, Y: 9})
	require.ErrorIs(t, err, ErrInvalidCoordinate)

	require.Equal(t, 1, r.Count())
}

func TestRegistryRelocate(t *testing.T) {
	r := NewRegistry()
	pc, err := r.Place(South, Jade, Coord{X: 1, Y: 1})
	require.NoError(t, err)

	require.ErrorIs(t, r.Relocate(Coord{X: 0, Y: 0}, Coord{X: 0, Y: 1}), ErrEmptySource)
	require.ErrorIs(t, r.Relocate(Coord{X: 1, Y: 1}, Coord{X: 9, Y: 9}), ErrInvalidCoordinate)

	_, err = r.Place(North, Amber, Coord{X: 2, Y: 1})
	require.NoError(t, err)
	require.ErrorIs(t, r.Relocate(Coord{X: 1, Y: 1}, Coord{X: 2, Y: 1}), ErrOccupiedDestination)

	require.NoError(t, r.Relocate(Coord{X: 1, Y: 1}, Coord{X: 1, Y: 2}))
	require.Nil(t, r.At(Coord{X: 1, Y: 1}))
	require.Same(t, pc, r.At(Coord{X: 1, Y: 2}))
	require.Equal(t, Coord{X: 1, Y: 2}, pc.At)
}

func TestRegistryExchange(t *testing.T) {
	r := NewRegistry()
	a, err := r.Place(South, Portal, Coord{X: 2, Y: 0})
	require.NoError(t, err)
	b, err := r.Place(South, Pearl, Coord{X: 3, Y: 0})
	require.NoError(t, err)

	require.ErrorIs(t, r.Exchange(Coord{X: 2, Y: 0}, Coord{X: 4, Y: 0}), ErrEmptySource)

	require.NoError(t, r.Exchange(Coord{X: 2, Y: 0}, Coord{X: 3, Y: 0}))
	require.Same(t, b, r.At(Coord{X: 2, Y: 0}))
	require.Same(t, a, r.At(Coord{X: 3, Y: 0}))
	require.Equal(t, Coord{X: 3, Y: 0}, a.At)
	require.Equal(t, Coord{X: 2, Y: 0}, b.At)
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	pc, err := r.Place(North, Void, Coord{X: 0, Y: 6})
	require.NoError(t, err)

	require.Nil(t, r.Remove(Coord{X: 0, Y: 5}))
	require.Same(t, pc, r.Remove(Coord{X: 0, Y: 6}))
	require.Nil(t, r.At(Coord{X: 0, Y: 6}))
	require.Equal(t, 0, r.Count())
}

func TestRegistryPiecesOrderedAndFiltered(t *testing.T) {
	r := NewRegistry()
	for _, p := range []struct {
		owner Player
		kind  PieceKind
		at    Coord
	}{
		{South, Ruby, Coord{X: 1, Y: 0}},
		{North, Pearl, Coord{X: -1, Y: 0}},
		{South, Void, Coord{X: 0, Y: -6}},
		{South, Ruby, Coord{X: 0, Y: 0}},
	} {
		_, err := r.Place(p.owner, p.kind, p.at)
		require.NoError(t, err)
	}

	var order []Coord
	for _, pc := range r.Pieces() {
		order = append(order, pc.At)
	}
	require.Equal(t, []Coord{
		{X: -1, Y: 0}, {X: 0, Y: -6}, {X: 0, Y: 0}, {X: 1, Y: 0},
	}, order)

	rubies := r.PiecesOf(South, Ruby)
	require.Len(t, rubies, 2)
	require.Equal(t, Coord{X: 0, Y: 0}, rubies[0].At)
	require.Equal(t, Coord{X: 1, Y: 0}, rubies[1].At)

	pool := r.PiecesOf(South, Ruby, Amalgam, Void)
	require.Len(t, pool, 3)

	require.Len(t, r.PiecesOf(North), 1)
}

func TestRegistrySnapshotRestore(t *testing.T) {
	r := NewRegistry()
	_, err := r.Place(South, Amber, Coord{X: 1, Y: -3})
	require.NoError(t, err)
	_, err = r.Place(North, Jade, Coord{X: 0, Y: 3})
	require.NoError(t, err)

	snap := r.snapshot()

	require.NoError(t, r.Relocate(Coord{X: 1, Y: -3}, Coord{X: 1, Y: -2}))
	require.NotNil(t, r.Remove(Coord{X: 0, Y: 3}))
	require.Equal(t, 1, r.Count())

	r.restore(snap)
	require.Equal(t, 2, r.Count())
	require.NotNil(t, r.At(Coord{X: 1, Y: -3}))
	require.Nil(t, r.At(Coord{X: 1, Y: -2}))
	jade := r.At(Coord{X: 0, Y: 3})
	require.NotNil(t, jade)
	require.Equal(t, Jade, jade.Kind)
	require.Equal(t, North, jade.Owner)
}
