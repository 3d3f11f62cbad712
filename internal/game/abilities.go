package game

import "amalgam/internal/shared"

// Ability detection runs once per committed primary action. For each of the
// four kinds it pools the acting side's dedicated gems plus wildcards,
// enumerates unordered pairs, applies the kind's geometric test, and keeps a
// pair only if the turn's moved piece triggers it. Detection never resolves
// anything; an explicit confirmation intent does.

// collinear reports whether two distinct coordinates share a row, column, or
// 45-degree diagonal.
func collinear(a, b Coord) bool {
	if a == b {
		return false
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx == 0 || dy == 0 || dx == dy || dx == -dy
}

// unitStep returns the unit direction from a toward b. Only meaningful for
// collinear coordinates.
func unitStep(a, b Coord) Coord {
	return Coord{X: sign(b.X - a.X), Y: sign(b.Y - a.Y)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// onOpenSegment reports whether p lies strictly between a and b along their
// shared line. False when a and b are not collinear.
func onOpenSegment(p, a, b Coord) bool {
	if !collinear(a, b) || p == a || p == b {
		return false
	}
	d := unitStep(a, b)
	for c := (Coord{X: a.X + d.X, Y: a.Y + d.Y}); c != b; c = (Coord{X: c.X + d.X, Y: c.Y + d.Y}) {
		if !IsValidIntersection(c) {
			return false
		}
		if c == p {
			return true
		}
	}
	return false
}

// detectAbilities computes the pending abilities earned by acting's committed
// action ending at moved.
func (s *Session) detectAbilities(acting Player, moved Coord) []PendingAbility {
	movedPiece := s.pieces.At(moved)
	if movedPiece == nil || movedPiece.Owner != acting {
		return nil
	}

	var pending []PendingAbility
	for _, kind := range shared.AbilityKinds {
		pool := s.pieces.PiecesOf(acting, kind.Gem(), Amalgam, Void)
		var pairs []PairTargets
		var options []LaunchOption
		for i := 0; i < len(pool); i++ {
			for j := i + 1; j < len(pool); j++ {
				a, b := pool[i], pool[j]
				if !pairTriggered(kind, a.At, b.At, movedPiece) {
					continue
				}
				if kind == Launch {
					opts := s.launchOptions(acting, a, b)
					if len(opts) == 0 {
						continue
					}
					pairs = append(pairs, PairTargets{Pair: AbilityPair{A: a.At, B: b.At}})
					options = mergeLaunchOptions(options, opts)
					continue
				}
				targets := s.abilityTargets(kind, acting, a.At, b.At)
				if len(targets) == 0 {
					continue
				}
				pairs = append(pairs, PairTargets{Pair: AbilityPair{A: a.At, B: b.At}, Targets: targets})
			}
		}
		if len(pairs) > 0 {
			pending = append(pending, PendingAbility{Kind: kind, Pairs: pairs, Options: options})
		}
	}
	return pending
}

// pairTriggered applies the trigger condition: the moved piece is a member of
// the pair, or a Void mover stands adjacent to a member. Sap alone also
// triggers when the moved piece landed strictly between the pair.
func pairTriggered(kind AbilityKind, a, b Coord, moved *Piece) bool {
	if moved.At == a || moved.At == b {
		return true
	}
	if moved.Kind == Void && (moved.At.Adjacent(a) || moved.At.Adjacent(b)) {
		return true
	}
	if kind == Sap && onOpenSegment(moved.At, a, b) {
		return true
	}
	return false
}

// abilityTargets runs the kind-specific geometric test for one pair.
func (s *Session) abilityTargets(kind AbilityKind, acting Player, a, b Coord) []Coord {
	if !collinear(a, b) {
		return nil
	}
	switch kind {
	case Fireball:
		var targets []Coord
		for _, ray := range [2][2]Coord{{a, b}, {b, a}} {
			if t, ok := s.firstPieceBeyond(ray[0], ray[1]); ok && t.Owner != acting {
				targets = append(targets, t.At)
			}
		}
		sortCoords(targets)
		return targets
	case Tidalwave:
		var targets []Coord
		for _, ray := range [2][2]Coord{{a, b}, {b, a}} {
			targets = append(targets, s.enemiesAlongRay(ray[0], ray[1], acting)...)
		}
		sortCoords(targets)
		return dedupCoords(targets)
	case Sap:
		var targets []Coord
		d := unitStep(a, b)
		for c := (Coord{X: a.X + d.X, Y: a.Y + d.Y}); c != b; c = (Coord{X: c.X + d.X, Y: c.Y + d.Y}) {
			if !IsValidIntersection(c) {
				return nil
			}
			if pc := s.pieces.At(c); pc != nil && pc.Owner != acting {
				targets = append(targets, c)
			}
		}
		return targets
	default:
		return nil
	}
}

// firstPieceBeyond traces the pair's line outward past tip, away from other,
// and returns the first piece met.
func (s *Session) firstPieceBeyond(other, tip Coord) (*Piece, bool) {
	d := unitStep(other, tip)
	for c := (Coord{X: tip.X + d.X, Y: tip.Y + d.Y}); IsValidIntersection(c); c = (Coord{X: c.X + d.X, Y: c.Y + d.Y}) {
		if pc := s.pieces.At(c); pc != nil {
			return pc, true
		}
	}
	return nil, false
}

// enemiesAlongRay collects every enemy on the outward ray until a friendly
// piece blocks the wave. Empty intersections do not block.
func (s *Session) enemiesAlongRay(other, tip Coord, acting Player) []Coord {
	d := unitStep(other, tip)
	var out []Coord
	for c := (Coord{X: tip.X + d.X, Y: tip.Y + d.Y}); IsValidIntersection(c); c = (Coord{X: c.X + d.X, Y: c.Y + d.Y}) {
		pc := s.pieces.At(c)
		if pc == nil {
			continue
		}
		if pc.Owner == acting {
			break
		}
		out = append(out, c)
	}
	return out
}

// launchOptions finds up to two of acting's pieces adjacent to either pair
// member and computes each one's landing set: the ray away from the member
// through the piece, over empty squares, ending on the first enemy occupant.
func (s *Session) launchOptions(acting Player, a, b *Piece) []LaunchOption {
	var candidates []*Piece
	for _, pc := range s.pieces.PiecesOf(acting) {
		if pc == a || pc == b {
			continue
		}
		if pc.At.Adjacent(a.At) || pc.At.Adjacent(b.At) {
			candidates = append(candidates, pc)
		}
	}
	if len(candidates) > 2 {
		candidates = candidates[:2] // PiecesOf is coordinate-ordered
	}

	var opts []LaunchOption
	for _, pc := range candidates {
		var landings []Coord
		for _, member := range []*Piece{a, b} {
			if !pc.At.Adjacent(member.At) {
				continue
			}
			d := Coord{X: pc.At.X - member.At.X, Y: pc.At.Y - member.At.Y}
			for c := (Coord{X: pc.At.X + d.X, Y: pc.At.Y + d.Y}); IsValidIntersection(c); c = (Coord{X: c.X + d.X, Y: c.Y + d.Y}) {
				occ := s.pieces.At(c)
				if occ == nil {
					landings = append(landings, c)
					continue
				}
				if occ.Owner != acting {
					landings = append(landings, c)
				}
				break
			}
		}
		sortCoords(landings)
		landings = dedupCoords(landings)
		if len(landings) > 0 {
			opts = append(opts, LaunchOption{Piece: pc.At, Landings: landings})
		}
	}
	return opts
}

func mergeLaunchOptions(into, add []LaunchOption) []LaunchOption {
	for _, opt := range add {
		merged := false
		for i := range into {
			if into[i].Piece == opt.Piece {
				into[i].Landings = dedupCoords(append(into[i].Landings, opt.Landings...))
				sortCoords(into[i].Landings)
				merged = true
				break
			}
		}
		if !merged {
			into = append(into, opt)
		}
	}
	return into
}

func dedupCoords(cs []Coord) []Coord {
	if len(cs) < 2 {
		return cs
	}
	sortCoords(cs)
	out := cs[:1]
	for _, c := range cs[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return out
}

// exposedTargets returns the union of all target groups of one pending kind.
func exposedTargets(p PendingAbility) []Coord {
	var all []Coord
	for _, pt := range p.Pairs {
		all = append(all, pt.Targets...)
	}
	return dedupCoords(all)
}
