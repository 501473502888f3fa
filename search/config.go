package search

// Config tunes the minimax searcher.
type Config struct {
	// Depth is the fixed search horizon in plies. There is no iterative
	// deepening or time budget; the search always runs to this depth.
	Depth int
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{Depth: 4}
}

// IsValid reports whether the configuration can drive a search.
func (c Config) IsValid() bool {
	return c.Depth >= 1
}
