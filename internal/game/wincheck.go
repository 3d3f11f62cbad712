package game

// Win evaluation runs once per turn, at turn end, never mid-turn. Objective
// victory is checked before elimination; the engine never reports a draw.

func (s *Session) evaluateWin() {
	if s.winner != nil {
		return
	}
	mover := s.current
	opp := mover.Opposite()

	// The objective is claimed by the piece that just moved, not by any piece
	// that happens to sit on the opponent's home (a swap can park an enemy
	// piece there without awarding it anything).
	if s.acted && s.lastDest == HomeIntersection(opp) {
		if occ := s.pieces.At(s.lastDest); occ != nil && occ.Owner == mover {
			s.winner = &WinResult{Winner: mover, Kind: VictoryObjective}
			return
		}
	}

	var remaining []*Piece
	switch s.rules.Elimination {
	case EliminationGems:
		remaining = s.pieces.PiecesOf(opp, Ruby, Pearl, Amber, Jade)
	default:
		remaining = s.pieces.PiecesOf(opp)
	}
	if len(remaining) == 0 {
		s.winner = &WinResult{Winner: mover, Kind: VictoryElimination}
	}
}

func containsCoord(cs []Coord, c Coord) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
