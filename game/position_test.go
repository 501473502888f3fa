package game

import (
	"errors"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

func mustFEN(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := PositionFromFEN(fen)
	require.NoError(t, err)
	return pos
}

func TestNewPosition(t *testing.T) {
	pos := NewPosition()
	assert.Equal(t, chess.White, pos.Turn())
	assert.Len(t, pos.LegalMoves(), 20)
	assert.False(t, pos.GameOver())
	assert.Equal(t, 1, pos.FullMoves())
}

func TestPositionFromFENRejectsGarbage(t *testing.T) {
	_, err := PositionFromFEN("not a fen")
	assert.Error(t, err)
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	pos := NewPosition()
	before := pos.FEN()

	mv, err := pos.ResolveUCI("e2e4")
	require.NoError(t, err)
	next := pos.Apply(mv)

	assert.Equal(t, before, pos.FEN())
	assert.NotEqual(t, before, next.FEN())
	assert.Equal(t, chess.Black, next.Turn())
}

func TestResolveUCI(t *testing.T) {
	pos := NewPosition()

	mv, err := pos.ResolveUCI(" e2e4 ")
	require.NoError(t, err)
	assert.Equal(t, "e2e4", pos.EncodeUCI(mv))

	// Syntactically fine, but not legal from the start position.
	_, err = pos.ResolveUCI("e2e5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMove))

	_, err = pos.ResolveUCI("zz9")
	assert.True(t, errors.Is(err, ErrInvalidMove))
}

func TestPromotionResolves(t *testing.T) {
	pos := mustFEN(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")
	mv, err := pos.ResolveUCI("a7a8q")
	require.NoError(t, err)
	next := pos.Apply(mv)
	assert.Equal(t, chess.Queen, next.PieceAt(chess.A8).Type())
}

func TestTerminalPredicates(t *testing.T) {
	mated := mustFEN(t, foolsMateFEN)
	assert.True(t, mated.IsCheckmate())
	assert.False(t, mated.IsStalemate())
	assert.True(t, mated.GameOver())
	assert.Empty(t, mated.LegalMoves())
	assert.Equal(t, chess.BlackWon, mated.Outcome())

	stale := mustFEN(t, stalemateFEN)
	assert.True(t, stale.IsStalemate())
	assert.False(t, stale.IsCheckmate())
	assert.True(t, stale.GameOver())
	assert.Equal(t, chess.Draw, stale.Outcome())

	live := NewPosition()
	assert.False(t, live.IsCheckmate())
	assert.False(t, live.IsStalemate())
	assert.Equal(t, chess.NoOutcome, live.Outcome())
}

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"kings only", "8/8/8/8/8/4k3/8/4K3 w - - 0 1", true},
		{"lone bishop", "8/8/8/8/8/4k3/8/4KB2 w - - 0 1", true},
		{"lone knight", "8/8/8/8/8/4k3/8/4KN2 w - - 0 1", true},
		{"same-shade bishops", "8/8/8/8/2b5/4k3/8/4KB2 w - - 0 1", true},
		{"opposite-shade bishops", "8/8/8/8/1b6/4k3/8/4KB2 w - - 0 1", false},
		{"single pawn", "8/8/8/8/8/4k3/4P3/4K3 w - - 0 1", false},
		{"rook ending", "8/8/8/8/8/4k3/8/4KR2 w - - 0 1", false},
		{"start position", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := NewPosition()
			if tt.fen != "" {
				pos = mustFEN(t, tt.fen)
			}
			assert.Equal(t, tt.want, pos.InsufficientMaterial())
		})
	}
}

func TestMaterialCounts(t *testing.T) {
	pos := NewPosition()
	white := pos.Material(chess.White)
	assert.Equal(t, 8, white[chess.Pawn])
	assert.Equal(t, 2, white[chess.Knight])
	assert.Equal(t, 2, white[chess.Bishop])
	assert.Equal(t, 2, white[chess.Rook])
	assert.Equal(t, 1, white[chess.Queen])
	assert.Equal(t, 1, white[chess.King])
	assert.Equal(t, white, pos.Material(chess.Black))
}

func TestFullMoves(t *testing.T) {
	assert.Equal(t, 3, mustFEN(t, foolsMateFEN).FullMoves())

	pos := NewPosition()
	mv, err := pos.ResolveUCI("e2e4")
	require.NoError(t, err)
	pos = pos.Apply(mv)
	assert.Equal(t, 1, pos.FullMoves())
	mv, err = pos.ResolveUCI("e7e5")
	require.NoError(t, err)
	assert.Equal(t, 2, pos.Apply(mv).FullMoves())
}

func TestCloneIsIndependent(t *testing.T) {
	pos := NewPosition()
	clone := pos.Clone()
	mv, err := clone.ResolveUCI("d2d4")
	require.NoError(t, err)
	_ = clone.Apply(mv)
	assert.Equal(t, pos.FEN(), clone.FEN())
}
