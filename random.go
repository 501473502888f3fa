package gambit

import (
	"math/rand"
	"time"

	"github.com/notnil/chess"

	"github.com/gambit/game"
)

// randomEngine picks a uniformly random legal move. It exists as the
// simplest possible Engine: a baseline opponent and a wiring smoke test.
type randomEngine struct {
	pos  *game.Position
	side chess.Color
	r    *rand.Rand
}

// NewRandom returns an engine that plays random legal moves.
func NewRandom(pos *game.Position, side chess.Color) Engine {
	return &randomEngine{
		pos:  pos,
		side: side,
		r:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (e *randomEngine) ApplyMove(uci string) error {
	mv, err := e.pos.ResolveUCI(uci)
	if err != nil {
		return err
	}
	e.pos = e.pos.Apply(mv)
	return nil
}

func (e *randomEngine) Search() *chess.Move {
	moves := e.pos.LegalMoves()
	if len(moves) == 0 {
		return nil
	}
	return moves[e.r.Intn(len(moves))]
}

func (e *randomEngine) Position() *game.Position {
	return e.pos
}

// IsMyTurn does not consult game-over state; a finished position simply has
// no legal moves and Search reports nil.
func (e *randomEngine) IsMyTurn() bool {
	return e.pos.Turn() == e.side
}
