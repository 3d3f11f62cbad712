package game

import "errors"

// Every rejection is locally recoverable: state is left untouched and the
// caller re-issues a corrected intent.
var (
	ErrInvalidCoordinate    = errors.New("invalid coordinate")
	ErrOccupiedDestination  = errors.New("destination occupied")
	ErrEmptySource          = errors.New("no piece at source")
	ErrIllegalMoveShape     = errors.New("illegal move shape")
	ErrNotYourTurn          = errors.New("not your turn")
	ErrWrongPhase           = errors.New("wrong phase")
	ErrAllotmentExceeded    = errors.New("placement allotment exceeded")
	ErrOutsidePlacementZone = errors.New("outside placement zone")
	ErrGameOver             = errors.New("game over")
)
