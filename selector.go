// Package gambit selects chess moves. It wires a move-selection strategy
// (a full minimax searcher, or a baseline random mover) behind one Engine
// interface that a game driver feeds with observed moves and asks for the
// next move to play.
package gambit

import (
	"github.com/notnil/chess"

	"github.com/gambit/game"
)

// Engine plays one side of one game. An instance is owned by a single
// driver and is never shared across games or goroutines, so implementations
// carry no locking. ApplyMove and Search are never called concurrently.
type Engine interface {
	// ApplyMove resolves a UCI-encoded move against the current position
	// and advances the internal state. On failure (game.ErrInvalidMove)
	// the internal state is left untouched.
	ApplyMove(uci string) error

	// Search produces the move to play, or nil when the game is over or no
	// legal move exists. May be expensive; it blocks until done.
	Search() *chess.Move

	// Position is a read-only snapshot of the current game state.
	Position() *game.Position

	// IsMyTurn reports whether the engine's side is to move.
	IsMyTurn() bool
}

// New builds the engine described by conf, playing side from pos.
func New(pos *game.Position, side chess.Color, conf Config) Engine {
	if conf.Random {
		return NewRandom(pos, side)
	}
	return NewMinimax(pos, side, conf.Search)
}
