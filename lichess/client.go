package lichess

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production lichess endpoint.
const DefaultBaseURL = "https://lichess.org"

// Client is a minimal lichess bot API client: ndjson streams in, form
// posts out. The bot API is plain HTTP, no websockets involved.
type Client struct {
	base  string
	token string
	http  *http.Client
	log   zerolog.Logger
}

// NewClient builds a client authenticated with the given bot token.
func NewClient(token string, log zerolog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		base:  DefaultBaseURL,
		token: token,
		http:  &http.Client{},
		log:   log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different endpoint (tests).
func WithBaseURL(base string) ClientOption {
	return func(c *Client) { c.base = strings.TrimRight(base, "/") }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

func (c *Client) newRequest(ctx context.Context, method, path string, form url.Values) (*http.Request, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, errors.Wrapf(err, "lichess: build %s %s", method, path)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req, nil
}

// post issues a form POST and fails on any non-2xx response.
func (c *Client) post(ctx context.Context, path string, form url.Values) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, form)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "lichess: POST %s", path)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("lichess: POST %s: %s: %s", path, resp.Status, strings.TrimSpace(string(msg)))
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "lichess: GET %s", path)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("lichess: GET %s: %s", path, resp.Status)
	}
	return errors.Wrapf(json.NewDecoder(resp.Body).Decode(out), "lichess: decode %s", path)
}

// stream opens an ndjson stream and hands each non-empty line to handle
// until the stream ends or ctx is canceled. Empty lines are keep-alives.
func (c *Client) stream(ctx context.Context, path string, handle func([]byte) error) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "lichess: open stream %s", path)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("lichess: stream %s: %s", path, resp.Status)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := handle([]byte(line)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return errors.Wrapf(err, "lichess: read stream %s", path)
	}
	return nil
}

// StreamEvents streams the account event feed. The returned channel closes
// when the stream ends; the error channel delivers at most one error.
func (c *Client) StreamEvents(ctx context.Context) (<-chan Event, <-chan error) {
	events := make(chan Event)
	errc := make(chan error, 1)
	go func() {
		defer close(events)
		errc <- c.stream(ctx, "/api/stream/event", func(line []byte) error {
			var ev Event
			if err := json.Unmarshal(line, &ev); err != nil {
				c.log.Warn().Err(err).Str("line", string(line)).Msg("skipping undecodable event")
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		})
	}()
	return events, errc
}

// StreamGame streams the state feed of one game.
func (c *Client) StreamGame(ctx context.Context, gameID string) (<-chan GameEvent, <-chan error) {
	events := make(chan GameEvent)
	errc := make(chan error, 1)
	go func() {
		defer close(events)
		errc <- c.stream(ctx, "/api/bot/game/stream/"+gameID, func(line []byte) error {
			var ev GameEvent
			if err := json.Unmarshal(line, &ev); err != nil {
				c.log.Warn().Err(err).Str("game", gameID).Msg("skipping undecodable game event")
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		})
	}()
	return events, errc
}

// PlayMove submits a UCI move in the given game.
func (c *Client) PlayMove(ctx context.Context, gameID, uci string) error {
	return c.post(ctx, fmt.Sprintf("/api/bot/game/%s/move/%s", gameID, uci), nil)
}

// AcceptChallenge accepts a pending challenge.
func (c *Client) AcceptChallenge(ctx context.Context, challengeID string) error {
	return c.post(ctx, "/api/challenge/"+challengeID+"/accept", nil)
}

// DeclineChallenge declines a pending challenge.
func (c *Client) DeclineChallenge(ctx context.Context, challengeID string) error {
	return c.post(ctx, "/api/challenge/"+challengeID+"/decline", nil)
}

// Resign resigns the given game.
func (c *Client) Resign(ctx context.Context, gameID string) error {
	return c.post(ctx, "/api/bot/game/"+gameID+"/resign", nil)
}

// Chat rooms accepted by the chat endpoint.
const (
	ChatRoomPlayer    = "player"
	ChatRoomSpectator = "spectator"
)

// Chat posts a message to a game chat room.
func (c *Client) Chat(ctx context.Context, gameID, room, text string) error {
	return c.post(ctx, "/api/bot/game/"+gameID+"/chat", url.Values{
		"room": {room},
		"text": {text},
	})
}

// OngoingGames lists up to nb games the account is currently playing.
func (c *Client) OngoingGames(ctx context.Context, nb int) ([]OngoingGame, error) {
	var out struct {
		NowPlaying []OngoingGame `json:"nowPlaying"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/api/account/playing?nb=%d", nb), &out); err != nil {
		return nil, err
	}
	return out.NowPlaying, nil
}
