package search

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambit/game"
)

func fromFEN(t *testing.T, fen string) *game.Position {
	t.Helper()
	pos, err := game.PositionFromFEN(fen)
	require.NoError(t, err)
	return pos
}

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	pos := game.NewPosition()
	assert.Equal(t, int32(0), Evaluate(pos, chess.White).Value())
	assert.Equal(t, int32(0), Evaluate(pos, chess.Black).Value())
}

func TestMaterialBalance(t *testing.T) {
	// White has an extra rook and pawn, black an extra knight.
	pos := fromFEN(t, "1nb1kbn1/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQ - 0 1")
	// white: 8P + 2N + 2B + 2R + Q = 8+6+6+10+9 = 39
	// black: 8P + 2N + 2B       = 8+6+6       = 20
	score := Evaluate(pos, chess.White)
	assert.False(t, score.IsAbsolute())
	assert.Equal(t, int32(19), score.Value())
	assert.Equal(t, int32(-19), Evaluate(pos, chess.Black).Value())
}

func TestMaterialMonotonicity(t *testing.T) {
	// Adding a white pawn while all else is fixed must not lower white's score.
	without := fromFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	with := fromFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	assert.GreaterOrEqual(t,
		Evaluate(with, chess.White).Value(),
		Evaluate(without, chess.White).Value())
}

func TestCheckmateJudgment(t *testing.T) {
	// Fool's mate: white is mated on move 3.
	pos := fromFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.True(t, pos.IsCheckmate())

	forBlack := Evaluate(pos, chess.Black)
	assert.True(t, forBlack.IsAbsolute())
	assert.Equal(t, mateScore-3, forBlack.Value())

	forWhite := Evaluate(pos, chess.White)
	assert.True(t, forWhite.IsAbsolute())
	assert.Equal(t, -mateScore+3, forWhite.Value())
}

func TestMateOutweighsAnyMaterial(t *testing.T) {
	mate := fromFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	// Seven queens up is still nowhere near a mate score.
	material := fromFEN(t, "4k3/8/8/8/8/8/PPPPPPPP/QQQQKQQQ w - - 0 1")
	assert.Greater(t,
		Evaluate(mate, chess.Black).Value(),
		Evaluate(material, chess.White).Value()+900_000)
}

func TestDrawJudgmentOverridesMaterial(t *testing.T) {
	// White is a full queen up but black is stalemated: exactly zero.
	pos := fromFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.True(t, pos.IsStalemate())
	score := Evaluate(pos, chess.White)
	assert.True(t, score.IsAbsolute())
	assert.Equal(t, int32(0), score.Value())
}

func TestDrawJudgmentInsufficientMaterial(t *testing.T) {
	pos := fromFEN(t, "8/8/8/8/8/4k3/8/4KB2 w - - 0 1")
	score := Evaluate(pos, chess.White)
	assert.True(t, score.IsAbsolute())
	assert.Equal(t, int32(0), score.Value())
}

func TestStrategiesAreTotal(t *testing.T) {
	// Every strategy must return something sane for a live middlegame position.
	pos := fromFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	for _, strat := range strategies {
		assert.NotPanics(t, func() {
			strat(pos, chess.White)
			strat(pos, chess.Black)
		})
	}
}
