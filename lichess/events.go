package lichess

// Wire types for the Lichess bot API event and game ndjson streams. Only
// the fields this bot reads are modeled.

// Event stream (/api/stream/event) entry types.
const (
	EventChallenge         = "challenge"
	EventGameStart         = "gameStart"
	EventGameFinish        = "gameFinish"
	EventChallengeCanceled = "challengeCanceled"
	EventChallengeDeclined = "challengeDeclined"
)

// Event is one entry of the account event stream.
type Event struct {
	Type      string     `json:"type"`
	Challenge *Challenge `json:"challenge,omitempty"`
	Game      *GameInfo  `json:"game,omitempty"`
}

// Challenge describes an incoming challenge.
type Challenge struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	Challenger  User        `json:"challenger"`
	Variant     Variant     `json:"variant"`
	TimeControl TimeControl `json:"timeControl"`
}

// User identifies a lichess account.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating,omitempty"`
}

// Variant names the rule set of a game or challenge.
type Variant struct {
	Key  string `json:"key"`
	Name string `json:"name,omitempty"`
}

// TimeControl describes the clock of a challenge.
type TimeControl struct {
	Type      string `json:"type"`
	Limit     int    `json:"limit,omitempty"`
	Increment int    `json:"increment,omitempty"`
	Show      string `json:"show,omitempty"`
}

// GameInfo accompanies gameStart/gameFinish events.
type GameInfo struct {
	ID       string   `json:"id"`
	GameID   string   `json:"gameId"`
	FEN      string   `json:"fen"`
	Color    string   `json:"color"`
	Opponent Opponent `json:"opponent"`
}

// Opponent names the other player of a game.
type Opponent struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Rating   int    `json:"rating,omitempty"`
}

// Game stream (/api/bot/game/stream/{id}) entry types.
const (
	GameEventFull  = "gameFull"
	GameEventState = "gameState"
	GameEventChat  = "chatLine"
)

// StatusStarted is the status of a game in progress.
const StatusStarted = "started"

// GameEvent is one entry of a game stream. gameFull entries populate the
// players, variant and nested State; gameState entries carry Moves and
// Status at the top level.
type GameEvent struct {
	Type string `json:"type"`

	// gameFull
	InitialFEN string     `json:"initialFen,omitempty"`
	White      User       `json:"white,omitempty"`
	Black      User       `json:"black,omitempty"`
	Variant    Variant    `json:"variant,omitempty"`
	State      *GameState `json:"state,omitempty"`

	// gameState
	Moves  string `json:"moves,omitempty"`
	Status string `json:"status,omitempty"`
	Winner string `json:"winner,omitempty"`
}

// GameState is the nested state of a gameFull entry.
type GameState struct {
	Moves  string `json:"moves"`
	Status string `json:"status"`
	Winner string `json:"winner,omitempty"`
}

// OngoingGame is one entry of the account's now-playing list.
type OngoingGame struct {
	GameID   string   `json:"gameId"`
	FullID   string   `json:"fullId"`
	Color    string   `json:"color"`
	FEN      string   `json:"fen"`
	IsMyTurn bool     `json:"isMyTurn"`
	Opponent Opponent `json:"opponent"`
}
