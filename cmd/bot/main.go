package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/gambit"
	"github.com/gambit/lichess"
	"github.com/gambit/search"
)

const tokenEnv = "LICHESS_BOT_TOKEN"

var (
	tokenFile = flag.String("token_file", "LICHESS_BOT_TOKEN", "file containing the lichess bot token, used when $LICHESS_BOT_TOKEN is unset")
	depth     = flag.Int("depth", search.DefaultConfig().Depth, "search depth in plies")
	random    = flag.Bool("random", false, "play random legal moves instead of searching")
	debug     = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(level).
		With().Timestamp().Logger()

	token, err := loadToken(*tokenFile)
	if err != nil {
		log.Fatal().Err(err).Msg("no lichess bot token")
	}

	conf := gambit.Config{
		Search: search.Config{Depth: *depth},
		Random: *random,
	}
	if !conf.IsValid() {
		log.Fatal().Int("depth", *depth).Msg("invalid engine configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := lichess.NewClient(token, log)
	bot := lichess.NewBot(client, conf, log)
	if err := bot.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot stopped")
	}
	log.Info().Msg("bot stopped")
}

// loadToken reads the bot token from the environment, falling back to a
// local token file.
func loadToken(path string) (string, error) {
	if token := strings.TrimSpace(os.Getenv(tokenEnv)); token != "" {
		return token, nil
	}
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		path = filepath.Join(wd, path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}
