package gambit

import (
	"github.com/notnil/chess"

	"github.com/gambit/game"
	"github.com/gambit/search"
)

// minimaxEngine drives the minimax searcher. It holds the game position,
// the side it plays and the searcher with its diagnostics.
type minimaxEngine struct {
	pos      *game.Position
	side     chess.Color
	searcher *search.Minimax
}

// NewMinimax returns an engine that picks moves by fixed-depth minimax
// search with alpha-beta pruning.
func NewMinimax(pos *game.Position, side chess.Color, conf search.Config) Engine {
	return &minimaxEngine{
		pos:      pos,
		side:     side,
		searcher: search.NewMinimax(side, conf),
	}
}

func (e *minimaxEngine) ApplyMove(uci string) error {
	mv, err := e.pos.ResolveUCI(uci)
	if err != nil {
		return err
	}
	e.pos = e.pos.Apply(mv)
	return nil
}

func (e *minimaxEngine) Search() *chess.Move {
	return e.searcher.Search(e.pos)
}

func (e *minimaxEngine) Position() *game.Position {
	return e.pos
}

// IsMyTurn is false once the game is over, even if the side to move
// matches: a finished game has no turn to take.
func (e *minimaxEngine) IsMyTurn() bool {
	return !e.pos.GameOver() && e.pos.Turn() == e.side
}

// SearchStats exposes the pruning diagnostics of the last search.
func (e *minimaxEngine) SearchStats() *search.Stats {
	return e.searcher.Stats()
}
