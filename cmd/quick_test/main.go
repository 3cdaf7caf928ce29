// Command quick_test plays a handful of games and prints per-game
// outcomes, for a fast sanity check that the catalogue and resolver
// agree without standing up a full simulate batch.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shift/shiftgame/engine"
	"github.com/shift/shiftgame/internal/cliutil"
	"github.com/shift/shiftgame/simulation"
)

func main() {
	games := flag.Int("games", 5, "number of games to play")
	p0Spec := flag.String("p0", "greedy", "player 0 agent: random, greedy, or lookahead[:depth]")
	p1Spec := flag.String("p1", "random", "player 1 agent: random, greedy, or lookahead[:depth]")
	seed := flag.Uint64("seed", 1, "batch seed")
	maxTurns := flag.Int("max-turns", 10, "turns per game")
	flag.Parse()

	p0, err := cliutil.ParseAgentSpec(*p0Spec)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p1, err := cliutil.ParseAgentSpec(*p1Spec)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	registry := engine.NewRegistry()
	records := simulation.RunBatch(registry, p0, p1, *games, *seed, *maxTurns)

	for i, rec := range records {
		if rec.Error != "" {
			fmt.Printf("game %d: FAILED: %s\n", i, rec.Error)
			continue
		}
		fmt.Printf("game %d: winner=%d turns=%d p0=%d p1=%d row0=%v row1=%v\n",
			i, rec.Winner, rec.Turns, rec.Player0Score, rec.Player1Score, rec.FinalRow[0], rec.FinalRow[1])
	}
}
