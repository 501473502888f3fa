// Command selfplay pits two engine configurations against each other
// locally and prints per-game results and a final tally.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/notnil/chess"

	"github.com/gambit"
	"github.com/gambit/search"
)

var (
	games      = flag.Int("games", 10, "number of games to play")
	whiteDepth = flag.Int("white_depth", search.DefaultConfig().Depth, "white search depth in plies")
	blackDepth = flag.Int("black_depth", 0, "black search depth; 0 plays the random mover")
	maxPlies   = flag.Int("max_plies", 512, "abandon games longer than this many plies")
	showBoards = flag.Bool("boards", false, "print the final board of every game")
)

func main() {
	flag.Parse()

	out := termenv.NewOutput(os.Stdout)

	whiteConf := gambit.Config{Search: search.Config{Depth: *whiteDepth}}
	blackConf := gambit.Config{Random: true}
	if *blackDepth > 0 {
		blackConf = gambit.Config{Search: search.Config{Depth: *blackDepth}}
	}

	arena := gambit.NewArena(whiteConf, blackConf)
	arena.MaxPlies = *maxPlies

	for i := 0; i < *games; i++ {
		outcome, final, err := arena.Play()
		if err != nil {
			fmt.Fprintln(os.Stderr, out.String(err.Error()).Foreground(termenv.ANSIRed))
			os.Exit(1)
		}
		fmt.Printf("game %2d: %s\n", i+1, colorOutcome(out, outcome))
		if *showBoards {
			fmt.Println(final)
		}
	}

	fmt.Println()
	fmt.Println(out.String(fmt.Sprintf("white %d  black %d  draws %d  (of %d games)",
		arena.WhiteWins, arena.BlackWins, arena.Draws, *games)).Bold())
}

func colorOutcome(out *termenv.Output, outcome chess.Outcome) string {
	switch outcome {
	case chess.WhiteWon:
		return out.String("white wins").Foreground(termenv.ANSIGreen).String()
	case chess.BlackWon:
		return out.String("black wins").Foreground(termenv.ANSIMagenta).String()
	case chess.Draw:
		return out.String("draw").Foreground(termenv.ANSIYellow).String()
	}
	return out.String("unfinished").Faint().String()
}
