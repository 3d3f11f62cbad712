package game

// Session is the explicit game-session value: one two-player game from setup
// through victory. Every operation is synchronous, validates its intent
// against current state, and either mutates and reports success or leaves the
// session untouched and returns a sentinel error.
type Session struct {
	rules  Rules
	pieces *Registry
	phase  Phase

	// setup state
	placementIndex int // ordinal of the next placement, 1..16
	placer         Player
	allot          [2][4]int // gem placements used, indexed by Player and gem kind

	// gameplay state
	current   Player
	step      Step
	turnStart map[Coord]Piece // piece map at the start of the active turn
	lastDest  Coord
	acted     bool
	pending   [2][]PendingAbility
	launch    launchState
	winner    *WinResult
}

// launchState is the explicit two-step launch sub-machine.
type launchState struct {
	phase    LaunchPhase
	piece    Coord
	landings []Coord
}

// NewSession starts a fresh game in the setup phase with the fixed special
// pieces already on the board. A zero Rules value means DefaultRules.
func NewSession(rules Rules) *Session {
	if rules.Capture == nil {
		rules.Capture = NoArrivalCapture
	}
	s := &Session{
		rules:          rules,
		pieces:         NewRegistry(),
		phase:          PhaseSetup,
		placementIndex: 1,
		placer:         South,
	}
	for _, p := range []Player{South, North} {
		for _, start := range specialStarts(p) {
			if _, err := s.pieces.Place(p, start.Kind, start.At); err != nil {
				panic(err) // fixed starts are on-board and distinct
			}
		}
	}
	return s
}

// Rules returns the session's configured rule set.
func (s *Session) Rules() Rules { return s.rules }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// CurrentPlayer returns whose intent the session expects: the placer during
// setup, the mover during gameplay.
func (s *Session) CurrentPlayer() Player {
	if s.phase == PhaseSetup {
		return s.placer
	}
	return s.current
}

// TurnStep returns the gameplay turn step.
func (s *Session) TurnStep() Step { return s.step }

// PlacementIndex returns the ordinal of the next setup placement.
func (s *Session) PlacementIndex() int { return s.placementIndex }

// Winner returns the game's result, or nil while play continues.
func (s *Session) Winner() *WinResult { return s.winner }

// Pending returns the player's pending abilities for this turn.
func (s *Session) Pending(p Player) []PendingAbility { return s.pending[p.Index()] }

// LaunchState reports the launch sub-machine: its phase, and when a source is
// armed, the launched piece and its legal landing set.
func (s *Session) LaunchState() (LaunchPhase, Coord, []Coord) {
	return s.launch.phase, s.launch.piece, s.launch.landings
}

// PieceAt returns the occupant of c, or nil.
func (s *Session) PieceAt(c Coord) *Piece { return s.pieces.At(c) }

// Pieces lists every piece in coordinate order.
func (s *Session) Pieces() []*Piece { return s.pieces.Pieces() }

// GemAllotmentLeft reports how many more gems of a kind the player may place.
func (s *Session) GemAllotmentLeft(p Player, kind PieceKind) int {
	if !kind.IsGem() {
		return 0
	}
	return gemAllotment - s.allot[p.Index()][int(kind)]
}

// Place accepts one setup placement: a gem of the player's remaining allotment
// on an empty intersection inside the player's zone. The placer alternates on
// every accepted placement; the sixteenth ends setup.
func (s *Session) Place(p Player, kind PieceKind, at Coord) error {
	if s.phase != PhaseSetup {
		return ErrWrongPhase
	}
	if p != s.placer {
		return ErrNotYourTurn
	}
	if !IsValidIntersection(at) {
		return ErrInvalidCoordinate
	}
	if !InPlacementZone(p, at) {
		return ErrOutsidePlacementZone
	}
	// Only gems are placeable; special pieces have no allotment at all.
	if !kind.IsGem() || s.allot[p.Index()][int(kind)] >= gemAllotment {
		return ErrAllotmentExceeded
	}
	if _, err := s.pieces.Place(p, kind, at); err != nil {
		return err
	}
	s.allot[p.Index()][int(kind)]++
	s.placementIndex++
	s.placer = s.placer.Opposite()
	if s.placementIndex > totalPlacements {
		s.startGameplay()
	}
	return nil
}

// AutoSetup fills the fixed default arrangement for both sides at once and
// enters gameplay. Only available before any manual placement.
func (s *Session) AutoSetup() error {
	if s.phase != PhaseSetup || s.placementIndex != 1 {
		return ErrWrongPhase
	}
	for _, p := range []Player{South, North} {
		for _, g := range defaultArrangement(p) {
			if _, err := s.pieces.Place(p, g.Kind, g.At); err != nil {
				return err
			}
			s.allot[p.Index()][int(g.Kind)]++
		}
	}
	s.placementIndex = totalPlacements + 1
	s.startGameplay()
	return nil
}

func (s *Session) startGameplay() {
	s.phase = PhaseGameplay
	s.current = South // South placed first
	if s.rules.FirstMover == MoverSecondPlacer {
		s.current = North
	}
	s.step = StepPrimary
	s.beginTurn()
}

// beginTurn captures the rollback snapshot owned by the active turn.
func (s *Session) beginTurn() {
	s.turnStart = s.pieces.snapshot()
}

func (s *Session) gameplayGuard(p Player, step Step) error {
	if s.winner != nil {
		return ErrGameOver
	}
	if s.phase != PhaseGameplay {
		return ErrWrongPhase
	}
	if p != s.current {
		return ErrNotYourTurn
	}
	if s.step != step {
		return ErrWrongPhase
	}
	return nil
}

// Move commits the turn's primary action: one piece to an empty reachable
// intersection. On success, arrival capture and ability detection run; if any
// ability is pending the turn waits at step 2, otherwise it ends.
func (s *Session) Move(p Player, from, to Coord) error {
	if err := s.gameplayGuard(p, StepPrimary); err != nil {
		return err
	}
	pc := s.pieces.At(from)
	if pc == nil {
		return ErrEmptySource
	}
	if pc.Owner != p {
		return ErrNotYourTurn
	}
	if !IsValidIntersection(to) {
		return ErrInvalidCoordinate
	}
	if s.pieces.At(to) != nil {
		return ErrOccupiedDestination
	}
	if !shapeReachable(pc.Kind, from, to) {
		return ErrIllegalMoveShape
	}
	if err := s.pieces.Relocate(from, to); err != nil {
		return err
	}
	s.commitPrimary(p, to)
	s.pending[p.Index()] = s.detectAbilities(p, to)
	s.afterDetection(p)
	return nil
}

// Swap commits a Portal swap: the Portal and any piece exchange coordinates
// when each could legally travel to the other's intersection. Both resulting
// coordinates pass through arrival capture and ability detection for their
// respective owners.
func (s *Session) Swap(p Player, from, to Coord) error {
	if err := s.gameplayGuard(p, StepPrimary); err != nil {
		return err
	}
	portal := s.pieces.At(from)
	if portal == nil {
		return ErrEmptySource
	}
	if portal.Owner != p {
		return ErrNotYourTurn
	}
	partner := s.pieces.At(to)
	if partner == nil {
		return ErrEmptySource
	}
	if portal.Kind != Portal || !swapShapeLegal(portal, partner) {
		return ErrIllegalMoveShape
	}
	if err := s.pieces.Exchange(from, to); err != nil {
		return err
	}
	partnerOwner := partner.Owner
	s.commitPrimary(p, to)
	s.resolveArrival(partnerOwner, from)
	if partnerOwner == p {
		s.pending[p.Index()] = mergePending(s.detectAbilities(p, to), s.detectAbilities(p, from))
	} else {
		s.pending[p.Index()] = s.detectAbilities(p, to)
		s.pending[partnerOwner.Index()] = s.detectAbilities(partnerOwner, from)
	}
	s.afterDetection(p)
	return nil
}

// commitPrimary records the primary action's destination and runs arrival
// capture for the acting side.
func (s *Session) commitPrimary(p Player, dest Coord) {
	s.lastDest = dest
	s.acted = true
	s.resolveArrival(p, dest)
}

// afterDetection advances to step 2 when the acting side earned a pending
// ability, or ends the turn immediately.
func (s *Session) afterDetection(p Player) {
	mine := s.pending[p.Index()]
	if len(mine) == 0 {
		s.endTurn()
		return
	}
	s.step = StepAbility
	for _, pa := range mine {
		if pa.Kind == Launch {
			s.launch.phase = AwaitingLaunchSource
			break
		}
	}
}

func mergePending(a, b []PendingAbility) []PendingAbility {
	out := a
	for _, pb := range b {
		merged := false
		for i := range out {
			if out[i].Kind != pb.Kind {
				continue
			}
			out[i].Pairs = append(out[i].Pairs, pb.Pairs...)
			out[i].Options = mergeLaunchOptions(out[i].Options, pb.Options)
			merged = true
			break
		}
		if !merged {
			out = append(out, pb)
		}
	}
	return out
}

func (s *Session) pendingOf(p Player, kind AbilityKind) (PendingAbility, bool) {
	for _, pa := range s.pending[p.Index()] {
		if pa.Kind == kind {
			return pa, true
		}
	}
	return PendingAbility{}, false
}

// ConfirmAbility resolves a pending Fireball, Tidalwave, or Sap. An empty
// choice destroys every exposed target; otherwise the chosen targets must be
// a subset of the exposed union. Launch resolves through SelectLaunch and
// LaunchTo instead.
func (s *Session) ConfirmAbility(p Player, kind AbilityKind, chosen []Coord) error {
	if err := s.gameplayGuard(p, StepAbility); err != nil {
		return err
	}
	if kind == Launch || s.launch.phase == AwaitingLaunchDestination {
		return ErrWrongPhase
	}
	pa, ok := s.pendingOf(p, kind)
	if !ok {
		return ErrWrongPhase
	}
	exposed := exposedTargets(pa)
	if len(chosen) == 0 {
		chosen = exposed
	} else {
		for _, c := range chosen {
			if !containsCoord(exposed, c) {
				return ErrInvalidCoordinate
			}
		}
	}
	for _, c := range dedupCoords(append([]Coord(nil), chosen...)) {
		s.pieces.Remove(c)
	}
	s.pending[p.Index()] = nil
	s.endTurn()
	return nil
}

// CancelAbility declines the pending abilities. While a launch destination is
// armed it only disarms the selection, returning to step 2; otherwise the turn
// ends through the normal no-pending path.
func (s *Session) CancelAbility(p Player) error {
	if err := s.gameplayGuard(p, StepAbility); err != nil {
		return err
	}
	if s.launch.phase == AwaitingLaunchDestination {
		s.launch = launchState{phase: AwaitingLaunchSource}
		return nil
	}
	s.pending[p.Index()] = nil
	s.endTurn()
	return nil
}

// SelectLaunch arms one eligible launchable piece; its landing set becomes the
// only legal destinations until LaunchTo or a cancel.
func (s *Session) SelectLaunch(p Player, piece Coord) error {
	if err := s.gameplayGuard(p, StepAbility); err != nil {
		return err
	}
	if s.launch.phase != AwaitingLaunchSource {
		return ErrWrongPhase
	}
	pa, ok := s.pendingOf(p, Launch)
	if !ok {
		return ErrWrongPhase
	}
	for _, opt := range pa.Options {
		if opt.Piece == piece {
			s.launch = launchState{
				phase:    AwaitingLaunchDestination,
				piece:    piece,
				landings: opt.Landings,
			}
			return nil
		}
	}
	return ErrInvalidCoordinate
}

// LaunchTo lands the armed piece. Landing on an enemy destroys it and the
// launched piece takes its intersection; the turn then ends.
func (s *Session) LaunchTo(p Player, dest Coord) error {
	if err := s.gameplayGuard(p, StepAbility); err != nil {
		return err
	}
	if s.launch.phase != AwaitingLaunchDestination {
		return ErrWrongPhase
	}
	if !containsCoord(s.launch.landings, dest) {
		return ErrIllegalMoveShape
	}
	if occ := s.pieces.At(dest); occ != nil {
		s.pieces.Remove(dest)
	}
	if err := s.pieces.Relocate(s.launch.piece, dest); err != nil {
		return err
	}
	s.lastDest = dest
	s.resolveArrival(p, dest)
	s.pending[p.Index()] = nil
	s.endTurn()
	return nil
}

// ResetTurn restores the piece map captured at the start of the active turn
// and rewinds the turn to step 1. Single level, atomic.
func (s *Session) ResetTurn(p Player) error {
	if s.winner != nil {
		return ErrGameOver
	}
	if s.phase != PhaseGameplay {
		return ErrWrongPhase
	}
	if p != s.current {
		return ErrNotYourTurn
	}
	s.pieces.restore(s.turnStart)
	s.clearEphemeral()
	s.step = StepPrimary
	return nil
}

// endTurn evaluates victory, clears per-turn state, and hands the turn over.
func (s *Session) endTurn() {
	s.evaluateWin()
	s.clearEphemeral()
	s.step = StepPrimary
	if s.winner != nil {
		return
	}
	s.current = s.current.Opposite()
	s.beginTurn()
}

// clearEphemeral drops all per-turn state for both sides.
func (s *Session) clearEphemeral() {
	s.pending[0], s.pending[1] = nil, nil
	s.launch = launchState{}
	s.acted = false
}
