package search

import (
	"math"

	"github.com/notnil/chess"

	"github.com/gambit/game"
)

const (
	// minScore sits below every reachable evaluation (|eval| <= mateScore),
	// so it doubles as the "nothing seen yet" sentinel at the root.
	minScore int32 = math.MinInt32
	maxScore int32 = math.MaxInt32
)

// Minimax is a fixed-depth minimax searcher with alpha-beta pruning,
// scoring every line from the perspective of one side. One instance serves
// one game and is not safe for concurrent use.
type Minimax struct {
	side  chess.Color
	conf  Config
	stats Stats
}

// NewMinimax returns a searcher playing side at the configured depth.
func NewMinimax(side chess.Color, conf Config) *Minimax {
	if !conf.IsValid() {
		conf = DefaultConfig()
	}
	return &Minimax{side: side, conf: conf}
}

// Stats exposes the diagnostics of the most recent search.
func (m *Minimax) Stats() *Stats {
	return &m.stats
}

// Search returns the best move for the configured side, or nil when the
// position is terminal or has no legal moves (the caller should treat nil
// as game over). Ties between equally scored root moves go to the move
// seen first in generator order; that order is an artifact, not a promise.
func (m *Minimax) Search(pos *game.Position) *chess.Move {
	moves := pos.LegalMoves()
	if len(moves) == 0 || pos.GameOver() {
		return nil
	}
	m.stats.Reset(m.conf.Depth)

	var best *chess.Move
	bestScore := minScore
	alpha, beta := minScore, maxScore
	for _, mv := range moves {
		score := m.recurse(pos.Apply(mv), m.conf.Depth-1, alpha, beta)
		if best == nil || score > bestScore {
			best, bestScore = mv, score
		}
		// Let later root branches prune against the best line found so far.
		if score > alpha {
			alpha = score
		}
	}
	m.stats.LastScore = bestScore
	return best
}

// recurse evaluates pos to the remaining depth inside the (alpha, beta)
// window. The cutoff comparisons are strict: a line that merely equals the
// bound is not pruned.
func (m *Minimax) recurse(pos *game.Position, depth int, alpha, beta int32) int32 {
	if depth == 0 || pos.GameOver() {
		return Evaluate(pos, m.side).Value()
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		// GameOver must have caught every moveless position already.
		panic("search: recursed into a non-terminal position with no legal moves")
	}

	maximizing := pos.Turn() == m.side
	best := maxScore
	if maximizing {
		best = minScore
	}
	for _, mv := range moves {
		score := m.recurse(pos.Apply(mv), depth-1, alpha, beta)
		if maximizing {
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if score > beta {
				m.stats.cutoff(depth)
				break
			}
		} else {
			if score < best {
				best = score
			}
			if score < beta {
				beta = score
			}
			if score < alpha {
				m.stats.cutoff(depth)
				break
			}
		}
	}
	return best
}
