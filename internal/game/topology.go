package game

import (
	"fmt"
	"sort"

	"amalgam/internal/shared"
)

// The board is a curated diamond of intersections with four reduced-width
// arms. The shape is not derivable from a distance formula; the table below is
// the authority. All lookups after init are read-only.

var intersectionTable = []Coord{
	// diamond core, row by row
	{X: 0, Y: 4},
	{X: -1, Y: 3}, {X: 0, Y: 3}, {X: 1, Y: 3},
	{X: -2, Y: 2}, {X: -1, Y: 2}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	{X: -3, Y: 1}, {X: -2, Y: 1}, {X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1},
	{X: -4, Y: 0}, {X: -3, Y: 0}, {X: -2, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
	{X: -3, Y: -1}, {X: -2, Y: -1}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1}, {X: 2, Y: -1}, {X: 3, Y: -1},
	{X: -2, Y: -2}, {X: -1, Y: -2}, {X: 0, Y: -2}, {X: 1, Y: -2}, {X: 2, Y: -2},
	{X: -1, Y: -3}, {X: 0, Y: -3}, {X: 1, Y: -3},
	{X: 0, Y: -4},
	// north arm
	{X: -1, Y: 5}, {X: 0, Y: 5}, {X: 1, Y: 5}, {X: 0, Y: 6},
	// south arm
	{X: -1, Y: -5}, {X: 0, Y: -5}, {X: 1, Y: -5}, {X: 0, Y: -6},
	// east arm
	{X: 5, Y: -1}, {X: 5, Y: 0}, {X: 5, Y: 1}, {X: 6, Y: 0},
	// west arm
	{X: -5, Y: -1}, {X: -5, Y: 0}, {X: -5, Y: 1}, {X: -6, Y: 0},
}

// Rail chain segments link only consecutive points along each chain, never
// all pairs within a segment.
var railChains = [][]Coord{
	{{X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 4}, {X: 0, Y: 5}, {X: 0, Y: 6}},
	{{X: 0, Y: -2}, {X: 0, Y: -3}, {X: 0, Y: -4}, {X: 0, Y: -5}, {X: 0, Y: -6}},
	{{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}},
	{{X: -2, Y: 0}, {X: -3, Y: 0}, {X: -4, Y: 0}, {X: -5, Y: 0}, {X: -6, Y: 0}},
}

// Express edges jump between non-adjacent rail nodes: the two hub crossings
// and the ring connecting the four arm tips.
var railExpressEdges = [][2]Coord{
	{{X: 0, Y: 2}, {X: 0, Y: -2}},
	{{X: 2, Y: 0}, {X: -2, Y: 0}},
	{{X: 0, Y: 6}, {X: 6, Y: 0}},
	{{X: 6, Y: 0}, {X: 0, Y: -6}},
	{{X: 0, Y: -6}, {X: -6, Y: 0}},
	{{X: -6, Y: 0}, {X: 0, Y: 6}},
}

var (
	validIntersections map[Coord]struct{}
	adjacency          map[Coord][]Coord
	railEdges          map[Coord][]Coord
)

func init() {
	validIntersections = make(map[Coord]struct{}, len(intersectionTable))
	for _, c := range intersectionTable {
		if _, dup := validIntersections[c]; dup {
			panic(fmt.Sprintf("duplicate intersection %s", c))
		}
		validIntersections[c] = struct{}{}
	}
	if len(validIntersections) != len(intersectionTable) {
		panic("intersection table inconsistent")
	}

	adjacency = make(map[Coord][]Coord, len(intersectionTable))
	for _, c := range intersectionTable {
		var near []Coord
		for _, d := range shared.Deltas {
			n := Coord{X: c.X + d.X, Y: c.Y + d.Y}
			if _, ok := validIntersections[n]; ok {
				near = append(near, n)
			}
		}
		sortCoords(near)
		adjacency[c] = near
	}

	railEdges = make(map[Coord][]Coord)
	addEdge := func(a, b Coord) {
		if a == b {
			panic(fmt.Sprintf("self rail edge at %s", a))
		}
		if !IsValidIntersection(a) || !IsValidIntersection(b) {
			panic(fmt.Sprintf("rail edge %s-%s off the board", a, b))
		}
		for _, existing := range railEdges[a] {
			if existing == b {
				panic(fmt.Sprintf("duplicate rail edge %s-%s", a, b))
			}
		}
		railEdges[a] = append(railEdges[a], b)
		railEdges[b] = append(railEdges[b], a)
	}
	for _, chain := range railChains {
		for i := 0; i+1 < len(chain); i++ {
			addEdge(chain[i], chain[i+1])
		}
	}
	for _, e := range railExpressEdges {
		addEdge(e[0], e[1])
	}
	for node, others := range railEdges {
		sortCoords(others)
		for _, o := range others {
			if !railConnected(o, node) {
				panic(fmt.Sprintf("asymmetric rail edge %s-%s", node, o))
			}
		}
	}
}

func railConnected(a, b Coord) bool {
	for _, o := range railEdges[a] {
		if o == b {
			return true
		}
	}
	return false
}

func sortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
}

// IsValidIntersection reports membership in the static board table.
func IsValidIntersection(c Coord) bool {
	_, ok := validIntersections[c]
	return ok
}

// AdjacentIntersections returns the valid neighbors of c, up to eight. Unknown
// coordinates yield nil, never an error.
func AdjacentIntersections(c Coord) []Coord {
	return adjacency[c]
}

// IsRailNode reports whether c belongs to the rail network.
func IsRailNode(c Coord) bool {
	_, ok := railEdges[c]
	return ok
}

// RailNeighbors returns every intersection rail-connected to c. Non-rail
// coordinates yield nil.
func RailNeighbors(c Coord) []Coord {
	return railEdges[c]
}

// AllIntersections returns the full board table in row order.
func AllIntersections() []Coord {
	return intersectionTable
}

// HomeIntersection is the fixed objective coordinate of a side: where its Void
// begins the game. Reaching the opponent's home wins by objective.
func HomeIntersection(p Player) Coord {
	if p == South {
		return Coord{X: 0, Y: -6}
	}
	return Coord{X: 0, Y: 6}
}

// InPlacementZone reports whether a side may place a gem on c during setup.
func InPlacementZone(p Player, c Coord) bool {
	if !IsValidIntersection(c) {
		return false
	}
	if p == South {
		return c.Y >= -4 && c.Y <= -2
	}
	return c.Y >= 2 && c.Y <= 4
}

// specialStart describes one fixed special-piece opening position.
type specialStart struct {
	Kind PieceKind
	At   Coord
}

// specialStarts returns the fixed opening positions for a side: Void on the
// home tip, Amalgam one step inboard, Portals flanking the Amalgam.
func specialStarts(p Player) []specialStart {
	sign := -1
	if p == North {
		sign = 1
	}
	return []specialStart{
		{Kind: Void, At: Coord{X: 0, Y: 6 * sign}},
		{Kind: Amalgam, At: Coord{X: 0, Y: 5 * sign}},
		{Kind: Portal, At: Coord{X: -1, Y: 5 * sign}},
		{Kind: Portal, At: Coord{X: 1, Y: 5 * sign}},
	}
}

// defaultArrangement returns the auto-setup gem layout for a side.
func defaultArrangement(p Player) []specialStart {
	sign := -1
	if p == North {
		sign = 1
	}
	return []specialStart{
		{Kind: Ruby, At: Coord{X: -2, Y: 2 * sign}},
		{Kind: Ruby, At: Coord{X: 2, Y: 2 * sign}},
		{Kind: Pearl, At: Coord{X: -1, Y: 2 * sign}},
		{Kind: Pearl, At: Coord{X: 1, Y: 2 * sign}},
		{Kind: Amber, At: Coord{X: -1, Y: 3 * sign}},
		{Kind: Amber, At: Coord{X: 1, Y: 3 * sign}},
		{Kind: Jade, At: Coord{X: 0, Y: 2 * sign}},
		{Kind: Jade, At: Coord{X: 0, Y: 3 * sign}},
	}
}
