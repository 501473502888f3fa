package search

import (
	"github.com/notnil/chess"

	"github.com/gambit/game"
)

// mateScore dominates any attainable material difference by a wide margin,
// so a found mate always outranks a material advantage.
const mateScore int32 = 1_000_000

// Strategy scores a position from side's perspective. Strategies must be
// pure and total over any reachable position.
type Strategy func(pos *game.Position, side chess.Color) Score

// strategies is the fixed, ordered list folded by Evaluate.
var strategies = []Strategy{
	materialBalance,
	checkmateJudgment,
	drawJudgment,
}

// Evaluate folds the strategy list over pos, starting from Additive(0).
func Evaluate(pos *game.Position, side chess.Color) Score {
	acc := Additive(0)
	for _, strat := range strategies {
		acc = acc.Combine(strat(pos, side))
	}
	return acc
}

var pieceValues = [...]struct {
	piece chess.PieceType
	value int32
}{
	{chess.Pawn, 1},
	{chess.Knight, 3},
	{chess.Bishop, 3},
	{chess.Rook, 5},
	{chess.Queen, 9},
}

// materialBalance is the dominant additive signal: side's piece values
// minus the opponent's.
func materialBalance(pos *game.Position, side chess.Color) Score {
	mine := pos.Material(side)
	theirs := pos.Material(side.Other())

	var diff int32
	for _, pv := range pieceValues {
		diff += pv.value * int32(mine[pv.piece]-theirs[pv.piece])
	}
	return Additive(diff)
}

// checkmateJudgment returns an absolute mate score when the position is
// checkmate. The fullmove counter is folded in so that faster mates score
// strictly higher (and slower losses strictly higher than faster ones).
func checkmateJudgment(pos *game.Position, side chess.Color) Score {
	if !pos.IsCheckmate() {
		return Additive(0)
	}
	moves := int32(pos.FullMoves())
	if pos.Turn() != side {
		// The opponent is to move and has no way out: side delivered mate.
		return Absolute(mateScore - moves)
	}
	return Absolute(-mateScore + moves)
}

// drawJudgment overrides material with an absolute zero when the position
// is a stalemate or dead by insufficient material.
func drawJudgment(pos *game.Position, side chess.Color) Score {
	if pos.IsStalemate() || pos.InsufficientMaterial() {
		return Absolute(0)
	}
	return Additive(0)
}
