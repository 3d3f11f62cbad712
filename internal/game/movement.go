package game

// LegalDestinations computes where the piece at from may move: the empty valid
// neighbors, plus rail traversals for Portal pieces. An empty or invalid
// source yields nil. The result is deterministic and has no side effects.
func (s *Session) LegalDestinations(from Coord) []Coord {
	pc := s.pieces.At(from)
	if pc == nil {
		return nil
	}

	seen := make(map[Coord]struct{})
	var out []Coord
	add := func(c Coord) {
		if _, dup := seen[c]; dup {
			return
		}
		seen[c] = struct{}{}
		if s.pieces.At(c) == nil {
			out = append(out, c)
		}
	}

	for _, n := range AdjacentIntersections(from) {
		add(n)
	}
	if pc.Kind == Portal {
		// Adjacent rail nodes are reachable even without a direct edge; they
		// are already in the neighbor set, so only the rail edges add squares.
		for _, n := range RailNeighbors(from) {
			add(n)
		}
	}
	sortCoords(out)
	return out
}

// shapeReachable reports whether a piece of the given kind could travel from
// one intersection to the other, ignoring occupancy. This is the shared
// legality test behind moves and swaps.
func shapeReachable(kind PieceKind, from, to Coord) bool {
	if !IsValidIntersection(from) || !IsValidIntersection(to) || from == to {
		return false
	}
	if from.Adjacent(to) {
		return true
	}
	if kind != Portal {
		return false
	}
	return railConnected(from, to)
}

// swapShapeLegal applies the move legality test in both directions: the Portal
// must reach the partner's square and the partner must reach the Portal's.
func swapShapeLegal(portal, partner *Piece) bool {
	return shapeReachable(portal.Kind, portal.At, partner.At) &&
		shapeReachable(partner.Kind, partner.At, portal.At)
}

// resolveArrival applies the configured capture policy at dest and removes
// whatever it names. Ordinary arrival destroys nothing under the default.
func (s *Session) resolveArrival(mover Player, dest Coord) {
	if s.rules.Capture == nil {
		return
	}
	for _, c := range s.rules.Capture(s, mover, dest) {
		if c == dest {
			continue
		}
		s.pieces.Remove(c)
	}
}
