package game

import "sort"

// Registry is the authoritative coordinate-to-piece map. It validates
// coordinates against the topology and enforces one piece per intersection.
// It emits no events; the session notifies callers after mutations.
type Registry struct {
	byCoord map[Coord]*Piece
	nextID  int
}

func NewRegistry() *Registry {
	return &Registry{byCoord: make(map[Coord]*Piece), nextID: 1}
}

// At returns the occupant of c, or nil.
func (r *Registry) At(c Coord) *Piece {
	return r.byCoord[c]
}

// Place creates a new piece at an empty valid intersection.
func (r *Registry) Place(owner Player, kind PieceKind, at Coord) (*Piece, error) {
	if !IsValidIntersection(at) {
		return nil, ErrInvalidCoordinate
	}
	if r.byCoord[at] != nil {
		return nil, ErrOccupiedDestination
	}
	pc := &Piece{ID: r.nextID, Owner: owner, Kind: kind, At: at}
	r.nextID++
	r.byCoord[at] = pc
	return pc, nil
}

// Relocate moves the piece at from to an empty valid intersection.
func (r *Registry) Relocate(from, to Coord) error {
	if !IsValidIntersection(from) || !IsValidIntersection(to) {
		return ErrInvalidCoordinate
	}
	pc := r.byCoord[from]
	if pc == nil {
		return ErrEmptySource
	}
	if r.byCoord[to] != nil {
		return ErrOccupiedDestination
	}
	delete(r.byCoord, from)
	pc.At = to
	r.byCoord[to] = pc
	return nil
}

// Exchange swaps the occupants of two intersections. Both must be occupied.
func (r *Registry) Exchange(a, b Coord) error {
	if !IsValidIntersection(a) || !IsValidIntersection(b) {
		return ErrInvalidCoordinate
	}
	pa, pb := r.byCoord[a], r.byCoord[b]
	if pa == nil || pb == nil {
		return ErrEmptySource
	}
	pa.At, pb.At = b, a
	r.byCoord[a], r.byCoord[b] = pb, pa
	return nil
}

// Remove deletes and returns the piece at c, or nil if the square is empty.
func (r *Registry) Remove(c Coord) *Piece {
	pc := r.byCoord[c]
	if pc == nil {
		return nil
	}
	delete(r.byCoord, c)
	return pc
}

// Pieces returns every piece in deterministic coordinate order.
func (r *Registry) Pieces() []*Piece {
	out := make([]*Piece, 0, len(r.byCoord))
	for _, pc := range r.byCoord {
		out = append(out, pc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].At.Less(out[j].At) })
	return out
}

// PiecesOf returns owner's pieces, optionally restricted to the given kinds.
func (r *Registry) PiecesOf(owner Player, kinds ...PieceKind) []*Piece {
	var out []*Piece
	for _, pc := range r.Pieces() {
		if pc.Owner != owner {
			continue
		}
		if len(kinds) == 0 {
			out = append(out, pc)
			continue
		}
		for _, k := range kinds {
			if pc.Kind == k {
				out = append(out, pc)
				break
			}
		}
	}
	return out
}

// Count returns the number of pieces on the board.
func (r *Registry) Count() int { return len(r.byCoord) }

// snapshot copies the full piece map by value, for turn rollback.
func (r *Registry) snapshot() map[Coord]Piece {
	snap := make(map[Coord]Piece, len(r.byCoord))
	for c, pc := range r.byCoord {
		snap[c] = *pc
	}
	return snap
}

// restore replaces the piece map with a previously taken snapshot.
func (r *Registry) restore(snap map[Coord]Piece) {
	r.byCoord = make(map[Coord]*Piece, len(snap))
	for c, pc := range snap {
		copied := pc
		r.byCoord[c] = &copied
	}
}
