package http

import "amalgam/internal/shared"

// CreateGameRequest represents the payload for /create-game.
type CreateGameRequest struct {
	PlayerName string `json:"playerName"`
}

// JoinGameRequest represents the payload for /join-game.
type JoinGameRequest struct {
	GameCode   string `json:"gameCode"`
	PlayerName string `json:"playerName"`
}

// PlaceRequest represents one setup placement.
type PlaceRequest struct {
	GameCode string       `json:"gameCode"`
	PlayerID string       `json:"playerId"`
	Kind     string       `json:"kind"`
	At       shared.Coord `json:"at"`
}

// AutoSetupRequest fills both default arrangements at once.
type AutoSetupRequest struct {
	GameCode string `json:"gameCode"`
	PlayerID string `json:"playerId"`
}

// MoveRequest represents a primary move or a Portal swap.
type MoveRequest struct {
	GameCode string       `json:"gameCode"`
	PlayerID string       `json:"playerId"`
	From     shared.Coord `json:"from"`
	To       shared.Coord `json:"to"`
}

// ConfirmAbilityRequest resolves a pending ability. An empty target list
// destroys every exposed target.
type ConfirmAbilityRequest struct {
	GameCode string         `json:"gameCode"`
	PlayerID string         `json:"playerId"`
	Kind     string         `json:"kind"`
	Targets  []shared.Coord `json:"targets"`
}

// CancelAbilityRequest declines the pending abilities.
type CancelAbilityRequest struct {
	GameCode string `json:"gameCode"`
	PlayerID string `json:"playerId"`
}

// LaunchSelectRequest arms one launchable piece.
type LaunchSelectRequest struct {
	GameCode string       `json:"gameCode"`
	PlayerID string       `json:"playerId"`
	Piece    shared.Coord `json:"piece"`
}

// LaunchDestinationRequest lands the armed piece.
type LaunchDestinationRequest struct {
	GameCode string       `json:"gameCode"`
	PlayerID string       `json:"playerId"`
	Dest     shared.Coord `json:"dest"`
}

// ResetTurnRequest rolls the active turn back to its start.
type ResetTurnRequest struct {
	GameCode string `json:"gameCode"`
	PlayerID string `json:"playerId"`
}
