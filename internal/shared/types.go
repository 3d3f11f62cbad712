// Package shared holds the game vocabulary used across the engine and API layers.
package shared

import "fmt"

type Player uint8

const (
	South Player = iota
	North
)

func (p Player) Opposite() Player {
	if p == South {
		return North
	}
	return South
}

func (p Player) Index() int { return int(p) }

func (p Player) String() string {
	if p == South {
		return "south"
	}
	return "north"
}

func ParsePlayer(s string) (Player, bool) {
	switch s {
	case "south":
		return South, true
	case "north":
		return North, true
	default:
		return 0, false
	}
}

type PieceKind uint8

const (
	Ruby PieceKind = iota
	Pearl
	Amber
	Jade
	Amalgam
	Portal
	Void
)

func (k PieceKind) String() string {
	switch k {
	case Ruby:
		return "ruby"
	case Pearl:
		return "pearl"
	case Amber:
		return "amber"
	case Jade:
		return "jade"
	case Amalgam:
		return "amalgam"
	case Portal:
		return "portal"
	case Void:
		return "void"
	default:
		return fmt.Sprintf("piece(%d)", k)
	}
}

// IsGem reports whether the kind is one of the four placeable gem types.
func (k PieceKind) IsGem() bool {
	return k == Ruby || k == Pearl || k == Amber || k == Jade
}

// IsWildcard reports whether the kind counts toward every ability pairing.
func (k PieceKind) IsWildcard() bool {
	return k == Amalgam || k == Void
}

func ParsePieceKind(s string) (PieceKind, bool) {
	switch s {
	case "ruby":
		return Ruby, true
	case "pearl":
		return Pearl, true
	case "amber":
		return Amber, true
	case "jade":
		return Jade, true
	case "amalgam":
		return Amalgam, true
	case "portal":
		return Portal, true
	case "void":
		return Void, true
	default:
		return 0, false
	}
}

type AbilityKind uint8

const (
	Fireball AbilityKind = iota
	Tidalwave
	Sap
	Launch
)

// AbilityKinds lists every ability in resolution order.
var AbilityKinds = [4]AbilityKind{Fireball, Tidalwave, Sap, Launch}

func (a AbilityKind) String() string {
	switch a {
	case Fireball:
		return "fireball"
	case Tidalwave:
		return "tidalwave"
	case Sap:
		return "sap"
	case Launch:
		return "launch"
	default:
		return fmt.Sprintf("ability(%d)", a)
	}
}

// Gem returns the gem kind that carries this ability.
func (a AbilityKind) Gem() PieceKind {
	switch a {
	case Fireball:
		return Ruby
	case Tidalwave:
		return Pearl
	case Sap:
		return Amber
	default:
		return Jade
	}
}

func ParseAbilityKind(s string) (AbilityKind, bool) {
	switch s {
	case "fireball":
		return Fireball, true
	case "tidalwave":
		return Tidalwave, true
	case "sap":
		return Sap, true
	case "launch":
		return Launch, true
	default:
		return 0, false
	}
}

// Coord is an intersection coordinate. The board hub is (0,0); validity is
// membership in the static topology table, not a formula.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Adjacent reports whether the two coordinates differ by at most one step on
// each axis, ignoring board membership.
func (c Coord) Adjacent(o Coord) bool {
	if c == o {
		return false
	}
	dx, dy := c.X-o.X, c.Y-o.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

// Less orders coordinates x-major for deterministic iteration.
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Deltas enumerates the eight neighbor offsets.
var Deltas = [8]Coord{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseGameplay
)

func (p Phase) String() string {
	if p == PhaseSetup {
		return "setup"
	}
	return "gameplay"
}

// Step is the sub-phase within one gameplay turn.
type Step uint8

const (
	StepPrimary Step = 1 // awaiting the turn's primary action
	StepAbility Step = 2 // awaiting ability confirmation or cancel
)

type VictoryKind uint8

const (
	VictoryObjective VictoryKind = iota
	VictoryElimination
)

func (v VictoryKind) String() string {
	if v == VictoryObjective {
		return "objective"
	}
	return "elimination"
}

// LaunchPhase names the two-step launch sub-machine states.
type LaunchPhase uint8

const (
	LaunchInactive LaunchPhase = iota
	AwaitingLaunchSource
	AwaitingLaunchDestination
)

func (lp LaunchPhase) String() string {
	switch lp {
	case AwaitingLaunchSource:
		return "awaiting-source"
	case AwaitingLaunchDestination:
		return "awaiting-destination"
	default:
		return "inactive"
	}
}
