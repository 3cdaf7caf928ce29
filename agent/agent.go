// Package agent implements the decision strategies that satisfy
// engine.Agent: uniform random, single-ply greedy, greedy-modeled
// minimax lookahead, and a channel-driven interactive agent for a human
// or external caller.
package agent

import "github.com/shift/shiftgame/engine"

// cardValue estimates the general desirability of holding c, used by the
// greedy and lookahead agents for draw/discard/trash decisions. Grounded
// on the per-card constant table the teacher's reference agent used for
// the same purpose, re-keyed to this catalogue's card names.
func cardValue(c *engine.Card) float64 {
	switch c.Name {
	case "one_shot", "calibration_unit", "echo_chamber":
		return 3
	case "farewell_unit", "sacrificial_lamb":
		return 2.5
	case "loner_bot", "sequence_bot":
		return 2
	case "siphon_drone", "kickback", "magnet":
		return 1.5
	case "hollow_frame", "scavenger", "void", "donation_bot", "hot_potato":
		return 0.5
	}
	if c.Type == engine.CardTypeTrap {
		return 2
	}
	return 1
}

// bestIndexByValue returns the option in opts whose card scores highest
// under cardValue; pick maps an option index to its card (in the market,
// a row or a hand).
func bestIndexByValue(opts []int, pick func(idx int) *engine.Card) int {
	best := opts[0]
	bestVal := -1e18
	for _, idx := range opts {
		if v := cardValue(pick(idx)); v > bestVal {
			bestVal = v
			best = idx
		}
	}
	return best
}

// worstIndexByValue is bestIndexByValue's mirror, used for discard/trash
// choices where the lowest-value card should go.
func worstIndexByValue(opts []int, pick func(idx int) *engine.Card) int {
	worst := opts[0]
	worstVal := 1e18
	for _, idx := range opts {
		if v := cardValue(pick(idx)); v < worstVal {
			worstVal = v
			worst = idx
		}
	}
	return worst
}
