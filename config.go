package gambit

import "github.com/gambit/search"

// Config selects and tunes the engine implementation.
type Config struct {
	// Search configures the minimax searcher.
	Search search.Config
	// Random swaps in the baseline random mover instead of the searcher.
	Random bool
}

// DefaultConfig returns a minimax engine at the stock depth.
func DefaultConfig() Config {
	return Config{Search: search.DefaultConfig()}
}

// IsValid reports whether the configuration describes a usable engine.
func (c Config) IsValid() bool {
	return c.Random || c.Search.IsValid()
}
