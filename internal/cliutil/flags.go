// Package cliutil holds small helpers shared by the cmd/ binaries:
// parsing the agent grammar and formatting durations for progress
// output, grounded on the teacher's cmd/evolve/main.go conventions.
package cliutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shift/shiftgame/agent"
	"github.com/shift/shiftgame/engine"
)

// DefaultLookaheadDepth is used when "lookahead" is given with no depth
// suffix.
const DefaultLookaheadDepth = 2

// ParseAgentSpec parses the "random | greedy | lookahead[:depth]" agent
// grammar into a factory that builds a fresh engine.Agent per game seed.
func ParseAgentSpec(spec string) (func(seed int64) engine.Agent, error) {
	kind, rest, _ := strings.Cut(spec, ":")
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "random":
		return func(seed int64) engine.Agent { return agent.NewRandomAgent(seed) }, nil
	case "greedy":
		return func(seed int64) engine.Agent { return agent.NewGreedyAgent(seed) }, nil
	case "lookahead":
		depth := DefaultLookaheadDepth
		if rest != "" {
			d, err := strconv.Atoi(rest)
			if err != nil {
				return nil, fmt.Errorf("cliutil: invalid lookahead depth %q: %w", rest, err)
			}
			depth = d
		}
		return func(seed int64) engine.Agent { return agent.NewLookaheadAgent(seed, depth) }, nil
	default:
		return nil, fmt.Errorf("cliutil: unknown agent spec %q (want random, greedy, or lookahead[:depth])", spec)
	}
}

// FormatDuration renders d the way cmd/simulate's progress line does:
// seconds under a minute, minutes+seconds under an hour, else hours+minutes.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
