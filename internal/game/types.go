// Package game implements the Amalgam rules engine: board topology, piece
// registry, move legality, the four paired abilities, the turn state machine,
// and win evaluation. The package is pure: no logging, no globals beyond the
// immutable topology tables, no I/O.
package game

import "amalgam/internal/shared"

// Local names for the shared vocabulary so engine code reads unqualified.
type (
	Player      = shared.Player
	PieceKind   = shared.PieceKind
	AbilityKind = shared.AbilityKind
	Coord       = shared.Coord
	Phase       = shared.Phase
	Step        = shared.Step
	VictoryKind = shared.VictoryKind
	LaunchPhase = shared.LaunchPhase
)

const (
	South = shared.South
	North = shared.North

	Ruby    = shared.Ruby
	Pearl   = shared.Pearl
	Amber   = shared.Amber
	Jade    = shared.Jade
	Amalgam = shared.Amalgam
	Portal  = shared.Portal
	Void    = shared.Void

	Fireball  = shared.Fireball
	Tidalwave = shared.Tidalwave
	Sap       = shared.Sap
	Launch    = shared.Launch

	PhaseSetup    = shared.PhaseSetup
	PhaseGameplay = shared.PhaseGameplay

	StepPrimary = shared.StepPrimary
	StepAbility = shared.StepAbility

	VictoryObjective   = shared.VictoryObjective
	VictoryElimination = shared.VictoryElimination

	LaunchInactive            = shared.LaunchInactive
	AwaitingLaunchSource      = shared.AwaitingLaunchSource
	AwaitingLaunchDestination = shared.AwaitingLaunchDestination
)

// Piece is a single piece on the board.
type Piece struct {
	ID    int
	Owner Player
	Kind  PieceKind
	At    Coord
}

// AbilityPair is an unordered pair of same-side pieces satisfying an ability's
// geometric test.
type AbilityPair struct {
	A Coord `json:"a"`
	B Coord `json:"b"`
}

// PairTargets couples a triggering pair with the targets its geometry yields.
type PairTargets struct {
	Pair    AbilityPair `json:"pair"`
	Targets []Coord     `json:"targets"`
}

// LaunchOption maps one launchable piece to its legal landing intersections.
type LaunchOption struct {
	Piece    Coord   `json:"piece"`
	Landings []Coord `json:"landings"`
}

// PendingAbility is the per-turn descriptor of one detected ability. It is
// ephemeral: confirmation, cancel, reset-turn, and turn end all clear it.
type PendingAbility struct {
	Kind    AbilityKind    `json:"kind"`
	Pairs   []PairTargets  `json:"pairs"`
	Options []LaunchOption `json:"options,omitempty"` // Launch only
}

// WinResult reports the game's single winner. The engine never draws.
type WinResult struct {
	Winner Player      `json:"winner"`
	Kind   VictoryKind `json:"kind"`
}

// FirstMoverRule maps "who placed first in setup" to "who moves first".
type FirstMoverRule uint8

const (
	// MoverFirstPlacer gives the first setup placer the first gameplay turn.
	MoverFirstPlacer FirstMoverRule = iota
	// MoverSecondPlacer gives the second setup placer the first gameplay turn.
	MoverSecondPlacer
)

func (r FirstMoverRule) String() string {
	if r == MoverSecondPlacer {
		return "placer-second"
	}
	return "placer-first"
}

// EliminationScope selects which pieces count for an elimination victory.
type EliminationScope uint8

const (
	// EliminationAll requires the opponent to have zero pieces of any kind.
	EliminationAll EliminationScope = iota
	// EliminationGems requires the opponent to have zero gem pieces.
	EliminationGems
)

func (s EliminationScope) String() string {
	if s == EliminationGems {
		return "gems"
	}
	return "all"
}

// CapturePolicy decides which enemy pieces, if any, are destroyed when a piece
// arrives at dest through a committed move, swap, or launch landing. The exact
// arrival-capture rule is not fixed by the game's core rules, so it is a
// pluggable policy. The returned coordinates are removed from the board.
type CapturePolicy func(s *Session, mover Player, dest Coord) []Coord

// NoArrivalCapture is the default policy: ordinary arrival never captures;
// only abilities destroy pieces.
func NoArrivalCapture(*Session, Player, Coord) []Coord { return nil }

// Rules carries the configurable invariants of a session.
type Rules struct {
	FirstMover  FirstMoverRule
	Elimination EliminationScope
	Capture     CapturePolicy
}

// DefaultRules returns the rule set used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		FirstMover:  MoverFirstPlacer,
		Elimination: EliminationAll,
		Capture:     NoArrivalCapture,
	}
}

// gemAllotment is the per-type placement cap during setup.
const gemAllotment = 2

// totalPlacements is the number of accepted placements that end setup.
const totalPlacements = 16
