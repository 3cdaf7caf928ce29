// Command demo plays one interactive game against a bot opponent over
// stdin/stdout, driving session.GameSession the way an HTTP handler or a
// TUI would: wait for the interactive agent to suspend, print the new log
// entries and board, prompt for an answer, submit it, repeat.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shift/shiftgame/agent"
	"github.com/shift/shiftgame/engine"
	"github.com/shift/shiftgame/session"
)

func main() {
	opponent := flag.String("opponent", "greedy", "bot opponent: random, greedy, or lookahead")
	seed := flag.Uint64("seed", 1, "deal seed")
	maxTurns := flag.Int("max-turns", 10, "turns per game before end-of-game scoring")
	flag.Parse()

	registry := engine.NewRegistry()
	manager := session.NewManager(registry)

	gs, err := manager.CreateGame(session.OpponentKind(*opponent), *seed, *maxTurns, 10*time.Second)
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}

	fmt.Println("==== Shift demo ====")
	fmt.Printf("You are player 0. Opponent: %s. Seed: %d.\n\n", *opponent, *seed)

	scanner := bufio.NewScanner(os.Stdin)
	cursor := 0

	for {
		select {
		case <-gs.Done():
			printNewLog(gs, &cursor)
			if err := gs.Err(); err != nil {
				fmt.Println("game ended with an error:", err)
				return
			}
			printBoard(gs)
			fmt.Println("game over, winner:", winnerLabel(gs.Winner()))
			return
		default:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		ready := gs.WaitForReady(ctx)
		cancel()
		if !ready {
			select {
			case <-gs.Done():
				continue
			default:
				fmt.Println("timed out waiting for your turn")
				return
			}
		}

		printNewLog(gs, &cursor)
		printBoard(gs)

		kind, choice := gs.Waiting()
		switch kind {
		case agent.WaitingAction:
			promptAction(gs, scanner)
		case agent.WaitingDraw:
			promptDraw(gs, scanner)
		case agent.WaitingEffect:
			promptEffect(gs, scanner, choice)
		default:
			// The turn loop moved on between WaitForReady and here; loop
			// around and check Done()/Waiting() again.
		}
	}
}

func winnerLabel(w int) string {
	switch w {
	case 0:
		return "you"
	case 1:
		return "opponent"
	default:
		return "draw"
	}
}

func printNewLog(gs *session.GameSession, cursor *int) {
	s := gs.State()
	defer engine.PutState(s)
	entries, next := s.NewLogEntriesSince(*cursor)
	*cursor = next
	for _, e := range entries {
		fmt.Printf("  [turn %d] %s\n", e.Turn, e.Message)
	}
}

func printBoard(gs *session.GameSession) {
	s := gs.State()
	defer engine.PutState(s)

	fmt.Println()
	fmt.Printf("turn %d/%d  score: you=%d opp=%d\n", s.TurnCounter, s.MaxTurns, s.Players[0].Score, s.Players[1].Score)
	fmt.Print("your row:   ")
	printRow(s.Players[0].Row)
	fmt.Print("opp row:    ")
	printRow(s.Players[1].Row)
	fmt.Print("your hand:  ")
	printHand(s.Players[0].Hand)
	fmt.Print("market:     ")
	printMarket(s.Market)
	fmt.Println()
}

func printRow(row []engine.CardInPlay) {
	if len(row) == 0 {
		fmt.Println("(empty)")
		return
	}
	parts := make([]string, len(row))
	for i, c := range row {
		if c.FaceUp {
			parts[i] = c.Card.Name
		} else {
			parts[i] = "(face-down)"
		}
	}
	fmt.Println(strings.Join(parts, " | "))
}

func printHand(hand []*engine.Card) {
	if len(hand) == 0 {
		fmt.Println("(empty)")
		return
	}
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = fmt.Sprintf("%d:%s", i, c.Name)
	}
	fmt.Println(strings.Join(parts, "  "))
}

func printMarket(market []engine.CardInPlay) {
	if len(market) == 0 {
		fmt.Println("(empty)")
		return
	}
	parts := make([]string, len(market))
	for i, c := range market {
		parts[i] = fmt.Sprintf("%d:%s", i, c.Card.Name)
	}
	fmt.Println(strings.Join(parts, "  "))
}

func readLine(scanner *bufio.Scanner) string {
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func promptAction(gs *session.GameSession, scanner *bufio.Scanner) {
	fmt.Print("play <hand index> <left|right> [facedown]: ")
	fields := strings.Fields(readLine(scanner))
	action := engine.PlayAction{Side: engine.SideLeft}
	if len(fields) >= 1 {
		if idx, err := strconv.Atoi(fields[0]); err == nil {
			action.HandIndex = idx
		}
	}
	if len(fields) >= 2 && strings.EqualFold(fields[1], "right") {
		action.Side = engine.SideRight
	}
	if len(fields) >= 3 && strings.EqualFold(fields[2], "facedown") {
		action.FaceDown = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := gs.SubmitAction(ctx, action); err != nil {
		fmt.Println("submit failed:", err)
	}
}

func promptDraw(gs *session.GameSession, scanner *bufio.Scanner) {
	fmt.Print("draw from <deck|market> [market index]: ")
	fields := strings.Fields(readLine(scanner))
	if len(fields) >= 1 && strings.EqualFold(fields[0], "market") {
		idx := 0
		if len(fields) >= 2 {
			if v, err := strconv.Atoi(fields[1]); err == nil {
				idx = v
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := gs.SubmitMarketDraw(ctx, idx); err != nil {
			fmt.Println("submit failed:", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := gs.SubmitDraw(ctx, engine.DrawDeck); err != nil {
		fmt.Println("submit failed:", err)
	}
}

func promptEffect(gs *session.GameSession, scanner *bufio.Scanner, choice engine.EffectChoice) {
	fmt.Printf("%s options=%v: ", choice.Description, choice.Options)
	option := 0
	if v, err := strconv.Atoi(readLine(scanner)); err == nil {
		option = v
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := gs.SubmitEffectOption(ctx, option); err != nil {
		fmt.Println("submit failed:", err)
	}
}
