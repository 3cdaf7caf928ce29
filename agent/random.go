package agent

import (
	"math/rand"

	"github.com/shift/shiftgame/engine"
)

// RandomAgent makes uniformly random legal choices at every suspension
// point. Grounded on the teacher's random-strategy texture (a seeded
// *rand.Rand held per instance, not the global generator, so concurrent
// games stay reproducible and race-free).
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a RandomAgent seeded with seed.
func NewRandomAgent(seed int64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) ChooseAction(s *engine.GameState, me int) (engine.PlayAction, error) {
	hand := s.Players[me].Hand
	if len(hand) == 0 {
		return engine.PlayAction{HandIndex: 0, Side: engine.SideLeft}, nil
	}
	idx := a.rng.Intn(len(hand))
	side := engine.SideLeft
	if a.rng.Intn(2) == 1 {
		side = engine.SideRight
	}
	faceDown := false
	if hand[idx].Type == engine.CardTypeTrap {
		faceDown = a.rng.Intn(2) == 1
	}
	return engine.PlayAction{HandIndex: idx, Side: side, FaceDown: faceDown}, nil
}

func (a *RandomAgent) ChooseDraw(s *engine.GameState, me int) (engine.DrawChoice, error) {
	hasDeck := len(s.Deck) > 0
	hasMarket := len(s.Market) > 0 && !s.HasEmbargo(me)
	switch {
	case hasDeck && hasMarket:
		if a.rng.Intn(2) == 1 {
			return engine.DrawMarket, nil
		}
		return engine.DrawDeck, nil
	case hasDeck:
		return engine.DrawDeck, nil
	default:
		return engine.DrawMarket, nil
	}
}

func (a *RandomAgent) ChooseEffectOption(s *engine.GameState, me int, choice engine.EffectChoice) (int, error) {
	if len(choice.Options) == 0 {
		return 0, nil
	}
	return choice.Options[a.rng.Intn(len(choice.Options))], nil
}
