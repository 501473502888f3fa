package lichess

import (
	"context"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/gambit"
	"github.com/gambit/game"
)

// startposFEN is what lichess sends instead of a FEN in standard games.
const startposFEN = "startpos"

// Session runs one game: it owns the engine instance for that game,
// translates stream events into engine calls and plays the engine's moves
// back to the server. One session per game, one goroutine per session.
type Session struct {
	client *Client
	info   GameInfo
	conf   gambit.Config
	log    zerolog.Logger

	eng gambit.Engine
}

// NewSession prepares a session for the game announced by info.
func NewSession(client *Client, info GameInfo, conf gambit.Config, log zerolog.Logger) *Session {
	return &Session{
		client: client,
		info:   info,
		conf:   conf,
		log:    log.With().Str("game", info.ID).Logger(),
	}
}

// Run consumes the game stream until it ends. Returns nil on a normal game
// end; an error means the session aborted (and has already resigned).
func (s *Session) Run(ctx context.Context) error {
	events, errc := s.client.StreamGame(ctx, s.info.ID)
	for ev := range events {
		var err error
		switch ev.Type {
		case GameEventFull:
			err = s.handleFull(ctx, ev)
		case GameEventState:
			err = s.handleState(ctx, ev)
		default:
			s.log.Info().Str("type", ev.Type).Msg("other game event")
		}
		if err != nil {
			return err
		}
	}
	return <-errc
}

// handleFull sets up the engine from the initial position, replays any
// moves already on the board and plays if it is already our turn.
func (s *Session) handleFull(ctx context.Context, ev GameEvent) error {
	pos := game.NewPosition()
	if ev.InitialFEN != "" && ev.InitialFEN != startposFEN {
		s.log.Info().Str("fen", ev.InitialFEN).Msg("custom initial position")
		var err error
		pos, err = game.PositionFromFEN(ev.InitialFEN)
		if err != nil {
			return s.abort(ctx, err, "I could not set up the board. I will resign now.")
		}
	}

	// The event stream names our opponent; whoever isn't them is us.
	side := chess.White
	if ev.White.Name == s.info.Opponent.Username {
		side = chess.Black
	}
	s.eng = gambit.New(pos, side, s.conf)
	s.log.Info().Str("side", side.Name()).Msg("game started")

	if ev.State != nil && ev.State.Moves != "" {
		s.log.Info().Str("moves", ev.State.Moves).Msg("catching up on moves already played")
		for _, uci := range strings.Fields(ev.State.Moves) {
			if err := s.eng.ApplyMove(uci); err != nil {
				return s.abort(ctx, err, "I could not replay the game so far. I will resign now.")
			}
		}
	}

	if s.eng.IsMyTurn() {
		return s.playMove(ctx)
	}
	return nil
}

// handleState applies the opponent's (or our echoed) last move and plays
// when it is our turn.
func (s *Session) handleState(ctx context.Context, ev GameEvent) error {
	if ev.Status != StatusStarted {
		s.log.Info().Str("status", ev.Status).Str("winner", ev.Winner).Msg("game state")
		return nil
	}
	if s.eng == nil {
		return s.abort(ctx, errors.New("lichess: game state before game full"), "")
	}

	// The stream resends the full move list; only the last move is new.
	fields := strings.Fields(ev.Moves)
	if len(fields) == 0 {
		return nil
	}
	last := fields[len(fields)-1]
	s.logMove(last)
	if err := s.eng.ApplyMove(last); err != nil {
		return s.abort(ctx, err, "We got out of sync. I will resign now.")
	}

	if s.eng.IsMyTurn() {
		return s.playMove(ctx)
	}
	return nil
}

// playMove asks the engine for a move and submits it. A nil move means the
// engine sees no continuation; treat it as game over and resign politely.
func (s *Session) playMove(ctx context.Context) error {
	mv := s.eng.Search()
	if mv == nil {
		return s.abort(ctx,
			errors.New("lichess: engine found no move to play"),
			"I couldn't find a move to play. I will resign now.")
	}
	uci := s.eng.Position().EncodeUCI(mv)
	if err := s.client.PlayMove(ctx, s.info.ID, uci); err != nil {
		return s.abort(ctx, errors.WithMessagef(err, "playing %s", uci), "")
	}
	s.log.Debug().Str("move", uci).Msg("played")
	return nil
}

// logMove describes the move about to be applied, while the pre-move
// position is still around to name the piece and any capture.
func (s *Session) logMove(uci string) {
	pos := s.eng.Position()
	mv, err := pos.ResolveUCI(uci)
	if err != nil {
		return // ApplyMove will report it properly
	}
	ev := s.log.Info().
		Int("fullmove", pos.FullMoves()).
		Str("side", pos.Turn().Name()).
		Str("piece", pos.PieceAt(mv.S1()).Type().String()).
		Str("move", uci)
	if taken := pos.PieceAt(mv.S2()); taken.Type() != chess.NoPieceType {
		ev = ev.Str("takes", taken.Type().String())
	}
	ev.Msg("move played")
}

// abort logs the failure, tells the spectators what happened, resigns and
// surfaces the original error.
func (s *Session) abort(ctx context.Context, cause error, chatMessage string) error {
	s.log.Error().Err(cause).Str("fen", s.info.FEN).Msg("aborting game")

	if chatMessage != "" {
		if err := s.client.Chat(ctx, s.info.ID, ChatRoomSpectator, chatMessage); err != nil {
			s.log.Warn().Err(err).Msg("chat message failed")
		}
	}
	if err := s.client.Resign(ctx, s.info.ID); err != nil {
		s.log.Warn().Err(err).Msg("resign failed")
	}
	return cause
}
