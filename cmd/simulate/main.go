// Command simulate runs a batch of seeded Shift games and reports
// aggregate per-card statistics. Grounded on the teacher's
// cmd/evolve/main.go conventions: stdlib flag, a banner, a progress
// line, and a final summary block.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shift/shiftgame/engine"
	"github.com/shift/shiftgame/internal/cliutil"
	"github.com/shift/shiftgame/simulation"
)

func main() {
	games := flag.Int("games", 1000, "number of games to simulate")
	p0Spec := flag.String("p0", "greedy", "player 0 agent: random, greedy, or lookahead[:depth]")
	p1Spec := flag.String("p1", "random", "player 1 agent: random, greedy, or lookahead[:depth]")
	seed := flag.Uint64("seed", 1, "batch seed (deterministic per-game seeds are derived from this)")
	maxTurns := flag.Int("max-turns", 10, "turns per game before end-of-game scoring")
	workers := flag.Int("workers", 0, "worker goroutines (0 = auto-detect CPU count, -1 = run serially)")
	reportPath := flag.String("report", "", "optional CSV path for the per-card performance report")
	topN := flag.Int("top", 10, "number of top/bottom cards to print")
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

	printBanner(*games, *p0Spec, *p1Spec, *seed, *workers)

	registry := engine.NewRegistry()
	start := time.Now()

	var records []simulation.GameRecord
	if *workers < 0 {
		records = simulation.RunBatch(registry, p0, p1, *games, *seed, *maxTurns)
	} else {
		records = simulation.RunBatchParallelN(registry, p0, p1, *games, *seed, *maxTurns, *workers)
	}

	elapsed := time.Since(start)
	fmt.Printf("Simulated %d games in %s\n\n", len(records), cliutil.FormatDuration(elapsed))

	metrics := simulation.CalculateMetrics(records)
	fmt.Println(simulation.PrintSummary(metrics))

	if *reportPath != "" {
		if err := simulation.WriteCardReport(metrics, *reportPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote card report to %s\n", *reportPath)
	}

	fmt.Printf("\nTop %d cards by win rate:\n", *topN)
	for _, cm := range simulation.TopCards(metrics, *topN, simulation.ByWinRate, 5) {
		fmt.Printf("  %-20s win_rate=%.1f%% appeared=%d\n", cm.Name, 100*cm.WinRate, cm.TimesAppeared)
	}

	fmt.Printf("\nBottom %d cards by win rate:\n", *topN)
	for _, cm := range simulation.BottomCards(metrics, *topN, simulation.ByWinRate, 5) {
		fmt.Printf("  %-20s win_rate=%.1f%% appeared=%d\n", cm.Name, 100*cm.WinRate, cm.TimesAppeared)
	}
}

func printBanner(games int, p0, p1 string, seed uint64, workers int) {
	fmt.Println()
	fmt.Println("==== Shift simulation harness ====")
	fmt.Printf("  Games:   %d\n", games)
	fmt.Printf("  P0:      %s\n", p0)
	fmt.Printf("  P1:      %s\n", p1)
	fmt.Printf("  Seed:    %d\n", seed)
	if workers < 0 {
		fmt.Println("  Mode:    serial")
	} else {
		fmt.Printf("  Workers: %d (0=auto)\n", workers)
	}
	fmt.Println()
}
