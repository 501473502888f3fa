package gambit

import (
	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"github.com/gambit/game"
)

// Arena plays engines against each other from the starting position and
// keeps a running tally. Useful for comparing selection strategies locally.
type Arena struct {
	WhiteConf Config
	BlackConf Config

	// MaxPlies aborts unfinished games; 0 means no cap.
	MaxPlies int

	// tallies across Play calls
	WhiteWins int
	BlackWins int
	Draws     int
}

// NewArena makes an arena for the two engine configurations.
func NewArena(white, black Config) *Arena {
	return &Arena{WhiteConf: white, BlackConf: black, MaxPlies: 512}
}

// Play runs one game to completion (or the ply cap) and records the result.
// The final position is returned alongside the outcome so callers can log
// it; a capped game reports chess.NoOutcome.
func (a *Arena) Play() (chess.Outcome, *game.Position, error) {
	start := game.NewPosition()
	white := New(start, chess.White, a.WhiteConf)
	black := New(start.Clone(), chess.Black, a.BlackConf)

	var plies int
	for !white.Position().GameOver() {
		if a.MaxPlies > 0 && plies >= a.MaxPlies {
			break
		}
		mover := white
		if white.Position().Turn() == chess.Black {
			mover = black
		}
		mv := mover.Search()
		if mv == nil {
			break
		}
		uci := mover.Position().EncodeUCI(mv)
		if err := white.ApplyMove(uci); err != nil {
			return chess.NoOutcome, white.Position(), errors.WithMessage(err, "arena: white desynced")
		}
		if err := black.ApplyMove(uci); err != nil {
			return chess.NoOutcome, black.Position(), errors.WithMessage(err, "arena: black desynced")
		}
		plies++
	}

	outcome := white.Position().Outcome()
	switch outcome {
	case chess.WhiteWon:
		a.WhiteWins++
	case chess.BlackWon:
		a.BlackWins++
	case chess.Draw:
		a.Draws++
	}
	return outcome, white.Position(), nil
}

// Games returns the number of decided or drawn games recorded so far.
func (a *Arena) Games() int {
	return a.WhiteWins + a.BlackWins + a.Draws
}
