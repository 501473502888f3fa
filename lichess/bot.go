package lichess

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/gambit"
)

// MaxSimultaneousGames caps how many games the bot plays at once; further
// challengers wait in a queue until a running game finishes.
const MaxSimultaneousGames = 3

// Bot ties the event stream to game sessions: it accepts challenges up to
// the simultaneous-games cap, queues the rest and spawns one Session per
// started game.
type Bot struct {
	client *Client
	conf   gambit.Config
	log    zerolog.Logger

	maxGames int
	waiting  []string // challenge IDs waiting for a free slot, newest first
}

// NewBot builds a bot playing with the given engine configuration.
func NewBot(client *Client, conf gambit.Config, log zerolog.Logger) *Bot {
	return &Bot{
		client:   client,
		conf:     conf,
		log:      log,
		maxGames: MaxSimultaneousGames,
	}
}

// Run consumes the account event stream until it ends or ctx is canceled.
// Sessions that fail are logged, not fatal: one lost game must not take the
// bot down. Pending challenges are declined on the way out.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info().Msg("bot connected, listening for events")

	group, ctx := errgroup.WithContext(ctx)
	events, errc := b.client.StreamEvents(ctx)
	for ev := range events {
		switch ev.Type {
		case EventChallenge:
			b.handleChallenge(ctx, ev.Challenge)
		case EventGameStart:
			if ev.Game == nil {
				continue
			}
			info := *ev.Game
			b.log.Info().Str("game", info.ID).Str("opponent", info.Opponent.Username).Msg("new game")
			session := NewSession(b.client, info, b.conf, b.log)
			group.Go(func() error {
				if err := session.Run(ctx); err != nil {
					b.log.Error().Err(err).Str("game", info.ID).Msg("session ended with error")
				} else {
					b.log.Info().Str("game", info.ID).Msg("session finished")
				}
				return nil
			})
		case EventGameFinish:
			if ev.Game != nil {
				b.log.Info().Str("game", ev.Game.ID).Msg("game finished")
			}
			b.acceptNextWaiting(ctx)
		case EventChallengeCanceled:
			if ev.Challenge != nil {
				b.dropWaiting(ev.Challenge.ID)
			}
		case EventChallengeDeclined:
			b.log.Info().Msg("challenge declined")
		default:
			b.log.Info().Str("type", ev.Type).Msg("unhandled event")
		}
	}

	streamErr := <-errc
	waitErr := group.Wait()
	declineErr := b.declineWaiting(context.WithoutCancel(ctx))

	var errs error
	for _, err := range []error{streamErr, waitErr, declineErr} {
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

// handleChallenge accepts a freshly created challenge when a game slot is
// free, otherwise parks it in the waiting queue.
func (b *Bot) handleChallenge(ctx context.Context, ch *Challenge) {
	if ch == nil || ch.Status != "created" {
		return
	}
	b.log.Info().
		Str("challenge", ch.ID).
		Str("challenger", ch.Challenger.Name).
		Int("rating", ch.Challenger.Rating).
		Str("time_control", ch.TimeControl.Show).
		Msg("challenge received")

	active, err := b.client.OngoingGames(ctx, 50)
	if err != nil {
		b.log.Error().Err(err).Msg("listing ongoing games failed, queueing challenge")
		b.waiting = append([]string{ch.ID}, b.waiting...)
		return
	}
	if len(active) < b.maxGames {
		if err := b.client.AcceptChallenge(ctx, ch.ID); err != nil {
			b.log.Error().Err(err).Str("challenge", ch.ID).Msg("accepting challenge failed")
		}
		return
	}
	b.waiting = append([]string{ch.ID}, b.waiting...)
}

// acceptNextWaiting pops the oldest queued challenge and accepts it.
func (b *Bot) acceptNextWaiting(ctx context.Context) {
	if len(b.waiting) == 0 {
		return
	}
	id := b.waiting[len(b.waiting)-1]
	b.waiting = b.waiting[:len(b.waiting)-1]
	if err := b.client.AcceptChallenge(ctx, id); err != nil {
		b.log.Error().Err(err).Str("challenge", id).Msg("accepting queued challenge failed")
	}
}

func (b *Bot) dropWaiting(challengeID string) {
	b.log.Info().Str("challenge", challengeID).Msg("challenge canceled")
	kept := b.waiting[:0]
	for _, id := range b.waiting {
		if id != challengeID {
			kept = append(kept, id)
		}
	}
	b.waiting = kept
}

// declineWaiting declines every queued challenge, collecting failures.
func (b *Bot) declineWaiting(ctx context.Context) error {
	var errs error
	for _, id := range b.waiting {
		if err := b.client.DeclineChallenge(ctx, id); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	b.waiting = nil
	return errs
}
