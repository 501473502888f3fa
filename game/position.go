package game

import (
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// ErrInvalidMove is returned when a move string cannot be resolved against
// the legal moves of the current position. It usually means the caller has
// desynced from the authoritative game state.
var ErrInvalidMove = errors.New("game: move is not legal in the current position")

var uciNotation = chess.UCINotation{}

// Position is an immutable snapshot of one chess game. Apply returns a new
// Position and never mutates the receiver, so search branches can each own
// their own copy.
type Position struct {
	g *chess.Game
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	return &Position{g: chess.NewGame()}
}

// PositionFromFEN builds a position from a FEN string.
func PositionFromFEN(fen string) (*Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "game: parse FEN %q", fen)
	}
	return &Position{g: chess.NewGame(opt)}, nil
}

// Turn returns the side to move.
func (p *Position) Turn() chess.Color {
	return p.g.Position().Turn()
}

// LegalMoves enumerates the legal moves of the position. The slice order is
// the generator's order and callers may rely on it only for tie-breaking.
func (p *Position) LegalMoves() []*chess.Move {
	return p.g.ValidMoves()
}

// Apply plays m on a copy of the position and returns the resulting
// Position. The move must come from LegalMoves of this position; applying
// anything else is a logic error.
func (p *Position) Apply(m *chess.Move) *Position {
	clone := p.g.Clone()
	if err := clone.Move(m); err != nil {
		panic(errors.Wrapf(err, "game: applying supposedly legal move %s", m))
	}
	return &Position{g: clone}
}

// ResolveUCI resolves a UCI-encoded move (e.g. "e2e4", "e7e8q") against the
// current legal-move set. Fails with ErrInvalidMove when no legal move
// matches; the position is left untouched either way.
func (p *Position) ResolveUCI(s string) (*chess.Move, error) {
	s = strings.TrimSpace(s)
	pos := p.g.Position()
	for _, m := range p.g.ValidMoves() {
		if uciNotation.Encode(pos, m) == s {
			return m, nil
		}
	}
	return nil, errors.Wrapf(ErrInvalidMove, "resolve %q", s)
}

// EncodeUCI encodes a move of this position in UCI notation.
func (p *Position) EncodeUCI(m *chess.Move) string {
	return uciNotation.Encode(p.g.Position(), m)
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.g.Position().Status() == chess.Checkmate
}

// IsStalemate reports whether the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return p.g.Position().Status() == chess.Stalemate
}

// InsufficientMaterial reports whether neither side can deliver mate.
// Covers K vs K, K+minor vs K and same-colored-bishop endings.
func (p *Position) InsufficientMaterial() bool {
	var knights, bishops, others int
	var bishopSquares []chess.Square
	for sq, piece := range p.g.Position().Board().SquareMap() {
		switch piece.Type() {
		case chess.King:
		case chess.Knight:
			knights++
		case chess.Bishop:
			bishops++
			bishopSquares = append(bishopSquares, sq)
		default:
			others++
		}
	}
	if others > 0 {
		return false
	}
	switch {
	case knights+bishops == 0:
		return true
	case knights+bishops == 1:
		return true
	case knights == 0 && bishops == 2:
		return squareShade(bishopSquares[0]) == squareShade(bishopSquares[1])
	}
	return false
}

func squareShade(sq chess.Square) int {
	return (int(sq.File()) + int(sq.Rank())) % 2
}

// GameOver reports whether the game has any legal continuation left.
func (p *Position) GameOver() bool {
	if p.g.Outcome() != chess.NoOutcome {
		return true
	}
	return p.g.Position().Status() != chess.NoMethod || p.InsufficientMaterial()
}

// Outcome reports the rules-defined result, or chess.NoOutcome for a live
// position.
func (p *Position) Outcome() chess.Outcome {
	if out := p.g.Outcome(); out != chess.NoOutcome {
		return out
	}
	// Positions loaded from FEN may be terminal without a recorded outcome.
	switch p.g.Position().Status() {
	case chess.Checkmate:
		if p.Turn() == chess.White {
			return chess.BlackWon
		}
		return chess.WhiteWon
	case chess.Stalemate:
		return chess.Draw
	}
	if p.InsufficientMaterial() {
		return chess.Draw
	}
	return chess.NoOutcome
}

// FullMoves returns the fullmove counter of the position, starting at 1.
func (p *Position) FullMoves() int {
	fields := strings.Fields(p.g.Position().String())
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Material counts side's pieces on the board by type (kings included).
func (p *Position) Material(side chess.Color) map[chess.PieceType]int {
	counts := make(map[chess.PieceType]int)
	for _, piece := range p.g.Position().Board().SquareMap() {
		if piece.Color() == side {
			counts[piece.Type()]++
		}
	}
	return counts
}

// PieceAt returns the piece on sq, or chess.NoPiece.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	return p.g.Position().Board().Piece(sq)
}

// FEN serializes the position.
func (p *Position) FEN() string {
	return p.g.Position().String()
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() *Position {
	return &Position{g: p.g.Clone()}
}

// String renders the board as text, white at the bottom.
func (p *Position) String() string {
	return p.g.Position().Board().Draw()
}
