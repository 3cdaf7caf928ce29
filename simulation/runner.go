// Package simulation runs many seeded games to termination and
// aggregates per-card, per-game statistics. Grounded on the teacher's
// RunBatch/RunSingleGame shape, re-targeted at Shift's GameRecord instead
// of a genome-driven War/blackjack result.
package simulation

import (
	"math/rand"

	"github.com/shift/shiftgame/engine"
)

// AgentFactory builds a fresh engine.Agent for a given per-game seed.
// Agents that hold per-instance RNG state (random/greedy/lookahead) need
// a new instance per game to stay reproducible under a fixed batch seed.
type AgentFactory func(seed int64) engine.Agent

// GameRecord is the outcome of one complete game, the unit aggregated
// into SimulationMetrics and written out by report.go. Grounded on
// original_source/analytics/collector.py's GameRecord, which carries both
// an agent-identified winner and a position-identified one: spec §4.5
// requires flipping a fair coin per game to decide which agent sits in
// seat 0, so the two notions of "winner" diverge and must both be kept.
type GameRecord struct {
	Seed    uint64
	Swapped bool // true if p1 occupied seat 0 and p0 occupied seat 1 this game

	Winner         int // agent-identified: 0 (p0's agent), 1 (p1's agent), or -1 for a draw
	PositionWinner int // seat-identified: 0, 1, or -1 for a draw

	Player0Score int // seat 0's score
	Player1Score int // seat 1's score
	Turns        int
	FinalRow     [2][]string    // card names left-to-right at game end, by seat
	CardScores   map[string]int // per-card-name point totals this game
	Error        string
}

// RunSingleGame deals one game from registry and plays it to termination.
// A fair coin derived from seed decides whether p0 or p1 occupies seat 0
// (spec §4.5); the returned record exposes both the seat-based outcome
// used for card/position analytics and the outcome mapped back onto
// which AgentFactory actually won.
func RunSingleGame(registry *engine.Registry, p0, p1 AgentFactory, seed uint64, maxTurns int) GameRecord {
	s := engine.NewGame(registry, seed, maxTurns)
	defer engine.PutState(s)

	coin := rand.New(rand.NewSource(int64(seed)))
	swapped := coin.Intn(2) == 1

	var ag [2]engine.Agent
	if swapped {
		ag[0] = p1(int64(seed))
		ag[1] = p0(int64(seed) + 1)
	} else {
		ag[0] = p0(int64(seed))
		ag[1] = p1(int64(seed) + 1)
	}

	for !s.GameOver {
		if err := engine.PlayTurn(s, ag); err != nil {
			return GameRecord{Seed: seed, Swapped: swapped, Winner: -1, PositionWinner: -1, Error: err.Error()}
		}
	}

	positionWinner := engine.Winner(s)
	winner := positionWinner
	if swapped && winner != -1 {
		winner = engine.Opponent(winner)
	}

	rec := GameRecord{
		Seed:           seed,
		Swapped:        swapped,
		Winner:         winner,
		PositionWinner: positionWinner,
		Player0Score:   s.Players[0].Score,
		Player1Score:   s.Players[1].Score,
		Turns:          s.TurnCounter,
		CardScores:     make(map[string]int, len(s.CardScores)),
	}
	for name, pts := range s.CardScores {
		rec.CardScores[name] = pts
	}
	for p := 0; p < 2; p++ {
		row := make([]string, len(s.Players[p].Row))
		for i, c := range s.Players[p].Row {
			row[i] = c.Card.Name
		}
		rec.FinalRow[p] = row
	}
	return rec
}

// RunBatch plays numGames games in sequence, deriving a deterministic
// per-game seed from seed so results are reproducible regardless of
// worker count (see RunBatchParallel for the concurrent equivalent).
func RunBatch(registry *engine.Registry, p0, p1 AgentFactory, numGames int, seed uint64, maxTurns int) []GameRecord {
	records := make([]GameRecord, numGames)
	rng := rand.New(rand.NewSource(int64(seed)))

	for i := 0; i < numGames; i++ {
		gameSeed := rng.Uint64()
		records[i] = RunSingleGame(registry, p0, p1, gameSeed, maxTurns)
	}
	return records
}
