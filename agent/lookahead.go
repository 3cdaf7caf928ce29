package agent

import (
	"math/rand"

	"github.com/shift/shiftgame/engine"
)

// LookaheadAgent scores each candidate action by playing it on a clone of
// the state and then playing depth-1 further turns in which a GreedyAgent
// decides for both players; it does not branch over its own later
// actions. Leaf states are scored by score differential. Grounded on the teacher's depth-bounded lookahead agent
// and textured after mcts/search.go's Clone-then-replay shape; unlike
// the retrieved original (which hand-rolled an approximate row/score
// simulator to avoid depending on the real engine), this agent drives
// genuine engine.PlayTurn calls on cloned state, since the real resolver
// is already available and is strictly more accurate than reimplementing
// an approximation of it.
type LookaheadAgent struct {
	rng    *rand.Rand
	depth  int
	greedy *GreedyAgent
}

// NewLookaheadAgent returns a LookaheadAgent searching depth turns ahead
// (minimum 1).
func NewLookaheadAgent(seed int64, depth int) *LookaheadAgent {
	if depth < 1 {
		depth = 1
	}
	return &LookaheadAgent{rng: rand.New(rand.NewSource(seed)), depth: depth, greedy: NewGreedyAgent(seed)}
}

func (a *LookaheadAgent) ChooseAction(s *engine.GameState, me int) (engine.PlayAction, error) {
	hand := s.Players[me].Hand
	if len(hand) == 0 {
		return engine.PlayAction{HandIndex: 0, Side: engine.SideLeft}, nil
	}

	var best engine.PlayAction
	bestScore := -1e18
	var ties []engine.PlayAction

	for handIdx, card := range hand {
		sides := [...]engine.Side{engine.SideLeft, engine.SideRight}
		faceDownOptions := []bool{false}
		if card.Type == engine.CardTypeTrap {
			faceDownOptions = []bool{true, false}
		}
		for _, side := range sides {
			for _, faceDown := range faceDownOptions {
				action := engine.PlayAction{HandIndex: handIdx, Side: side, FaceDown: faceDown}
				score := a.evaluateActionLookahead(s, me, action)
				switch {
				case score > bestScore:
					bestScore = score
					best = action
					ties = ties[:0]
					ties = append(ties, action)
				case score == bestScore:
					ties = append(ties, action)
				}
			}
		}
	}

	if len(ties) > 0 {
		return ties[a.rng.Intn(len(ties))], nil
	}
	return best, nil
}

// evaluateActionLookahead forces action for me's current turn on a clone
// of s, then continues the search for depth-1 further turns.
func (a *LookaheadAgent) evaluateActionLookahead(s *engine.GameState, me int, action engine.PlayAction) float64 {
	sim := s.Clone()
	defer engine.PutState(sim)

	if action.HandIndex >= len(sim.Players[me].Hand) {
		return -1e18
	}

	forced := &onceAction{agent: a.greedy, action: action}
	ag := [2]engine.Agent{a.greedy, a.greedy}
	ag[me] = forced

	if err := engine.PlayTurn(sim, ag); err != nil {
		return -1e18
	}
	return a.minimax(sim, me, a.depth-1)
}

// minimax plays depth further turns on a clone, with the greedy agent
// deciding for both players, and scores the resulting state from me's
// perspective. It does not enumerate or maximize over me's own actions in
// those turns.
func (a *LookaheadAgent) minimax(s *engine.GameState, me int, depth int) float64 {
	if depth <= 0 || s.GameOver {
		return a.evaluateState(s, me)
	}

	sim := s.Clone()
	defer engine.PutState(sim)

	ag := [2]engine.Agent{a.greedy, a.greedy}
	if err := engine.PlayTurn(sim, ag); err != nil {
		return a.evaluateState(s, me)
	}
	return a.minimax(sim, me, depth-1)
}

// evaluateState scores a leaf position from me's perspective: score
// differential, plus small hand-size and row-size bonuses.
func (a *LookaheadAgent) evaluateState(s *engine.GameState, me int) float64 {
	opp := engine.Opponent(me)
	score := float64(s.Players[me].Score - s.Players[opp].Score)
	score += 0.1 * float64(len(s.Players[me].Hand)-len(s.Players[opp].Hand))
	score += 0.05 * float64(len(s.Players[me].Row)-len(s.Players[opp].Row))
	return score
}

func (a *LookaheadAgent) ChooseDraw(s *engine.GameState, me int) (engine.DrawChoice, error) {
	return a.greedy.ChooseDraw(s, me)
}

func (a *LookaheadAgent) ChooseEffectOption(s *engine.GameState, me int, choice engine.EffectChoice) (int, error) {
	return a.greedy.ChooseEffectOption(s, me, choice)
}

// onceAction returns a forced PlayAction the first time ChooseAction is
// called, then delegates every subsequent call (including this same
// turn's draw and effect choices) to agent.
type onceAction struct {
	agent  engine.Agent
	action engine.PlayAction
	used   bool
}

func (o *onceAction) ChooseAction(s *engine.GameState, me int) (engine.PlayAction, error) {
	if !o.used {
		o.used = true
		return o.action, nil
	}
	return o.agent.ChooseAction(s, me)
}

func (o *onceAction) ChooseDraw(s *engine.GameState, me int) (engine.DrawChoice, error) {
	return o.agent.ChooseDraw(s, me)
}

func (o *onceAction) ChooseEffectOption(s *engine.GameState, me int, choice engine.EffectChoice) (int, error) {
	return o.agent.ChooseEffectOption(s, me, choice)
}
