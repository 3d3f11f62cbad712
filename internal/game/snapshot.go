package game

// PieceState is the serializable form of one piece.
type PieceState struct {
	ID        int       `json:"id"`
	Owner     Player    `json:"owner"`
	OwnerName string    `json:"ownerName"`
	Kind      PieceKind `json:"kind"`
	KindName  string    `json:"kindName"`
	At        Coord     `json:"at"`
}

// AbilityState describes one side's pending abilities for rendering.
type AbilityState struct {
	Kind     AbilityKind    `json:"kind"`
	KindName string         `json:"kindName"`
	Pairs    []PairTargets  `json:"pairs"`
	Options  []LaunchOption `json:"options,omitempty"`
}

// SetupState carries the setup counters.
type SetupState struct {
	PlacementIndex int            `json:"placementIndex"`
	Placer         Player         `json:"placer"`
	PlacerName     string         `json:"placerName"`
	AllotmentLeft  map[string]int `json:"allotmentLeft"`
}

// LaunchSnapshot exposes the launch sub-machine.
type LaunchSnapshot struct {
	Phase     LaunchPhase `json:"phase"`
	PhaseName string      `json:"phaseName"`
	Piece     *Coord      `json:"piece,omitempty"`
	Landings  []Coord     `json:"landings,omitempty"`
}

// WinState is the serializable form of a WinResult.
type WinState struct {
	Winner     Player      `json:"winner"`
	WinnerName string      `json:"winnerName"`
	Kind       VictoryKind `json:"kind"`
	KindName   string      `json:"kindName"`
}

// Snapshot is the full serializable game state, produced on every change for
// external collaborators. It is a copy; mutating it never touches the session.
type Snapshot struct {
	Phase       Phase                     `json:"phase"`
	PhaseName   string                    `json:"phaseName"`
	Current     Player                    `json:"current"`
	CurrentName string                    `json:"currentName"`
	Step        Step                      `json:"step"`
	Setup       *SetupState               `json:"setup,omitempty"`
	Pieces      []PieceState              `json:"pieces"`
	Pending     map[string][]AbilityState `json:"pending"`
	Launch      LaunchSnapshot            `json:"launch"`
	Winner      *WinState                 `json:"winner,omitempty"`
	GameOver    bool                      `json:"gameOver"`
}

// Snapshot renders the session's current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:       s.phase,
		PhaseName:   s.phase.String(),
		Current:     s.CurrentPlayer(),
		CurrentName: s.CurrentPlayer().String(),
		Step:        s.step,
		Pieces:      make([]PieceState, 0, s.pieces.Count()),
		Pending:     make(map[string][]AbilityState, 2),
		GameOver:    s.winner != nil,
	}

	if s.phase == PhaseSetup {
		left := make(map[string]int, 4)
		for _, k := range []PieceKind{Ruby, Pearl, Amber, Jade} {
			left[k.String()] = s.GemAllotmentLeft(s.placer, k)
		}
		snap.Setup = &SetupState{
			PlacementIndex: s.placementIndex,
			Placer:         s.placer,
			PlacerName:     s.placer.String(),
			AllotmentLeft:  left,
		}
	}

	for _, pc := range s.pieces.Pieces() {
		snap.Pieces = append(snap.Pieces, PieceState{
			ID:        pc.ID,
			Owner:     pc.Owner,
			OwnerName: pc.Owner.String(),
			Kind:      pc.Kind,
			KindName:  pc.Kind.String(),
			At:        pc.At,
		})
	}

	for _, p := range []Player{South, North} {
		states := make([]AbilityState, 0, len(s.pending[p.Index()]))
		for _, pa := range s.pending[p.Index()] {
			states = append(states, AbilityState{
				Kind:     pa.Kind,
				KindName: pa.Kind.String(),
				Pairs:    pa.Pairs,
				Options:  pa.Options,
			})
		}
		if len(states) > 0 {
			snap.Pending[p.String()] = states
		}
	}

	snap.Launch = LaunchSnapshot{Phase: s.launch.phase, PhaseName: s.launch.phase.String()}
	if s.launch.phase == AwaitingLaunchDestination {
		piece := s.launch.piece
		snap.Launch.Piece = &piece
		snap.Launch.Landings = append([]Coord(nil), s.launch.landings...)
	}

	if s.winner != nil {
		snap.Winner = &WinState{
			Winner:     s.winner.Winner,
			WinnerName: s.winner.Winner.String(),
			Kind:       s.winner.Kind,
			KindName:   s.winner.Kind.String(),
		}
	}
	return snap
}
