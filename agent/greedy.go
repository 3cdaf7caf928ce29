package agent

import (
	"math/rand"

	"github.com/shift/shiftgame/engine"
)

// GreedyAgent evaluates every legal play by its immediate, estimated
// value and takes the best one, breaking ties randomly. Grounded on the
// teacher's single-ply heuristic agent: the same per-effect score table,
// the same small icon-diversity and face-down bonuses, applied to a
// locally simulated row rather than engine state (no mutation is
// committed here; the row insert/push arithmetic mirrors
// engine.insertRowCard without depending on its unexported helpers).
type GreedyAgent struct {
	rng *rand.Rand
}

func NewGreedyAgent(seed int64) *GreedyAgent {
	return &GreedyAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *GreedyAgent) ChooseAction(s *engine.GameState, me int) (engine.PlayAction, error) {
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
				score := a.evaluateAction(s, me, action)
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

// evaluateAction estimates the immediate net value of playing action,
// without mutating s: insertion/push is replayed on a scratch copy of
// the row.
func (a *GreedyAgent) evaluateAction(s *engine.GameState, playerIdx int, action engine.PlayAction) float64 {
	player := s.Players[playerIdx]
	if action.HandIndex >= len(player.Hand) {
		return -1e18
	}
	card := player.Hand[action.HandIndex]

	row := append([]engine.CardInPlay(nil), player.Row...)
	cip := engine.CardInPlay{Card: card, FaceUp: !action.FaceDown}

	var pushed *engine.CardInPlay
	if action.Side == engine.SideLeft {
		row = append([]engine.CardInPlay{cip}, row...)
		if len(row) > engine.RowCap {
			last := row[len(row)-1]
			pushed = &last
			row = row[:len(row)-1]
		}
	} else {
		row = append(row, cip)
		if len(row) > engine.RowCap {
			first := row[0]
			pushed = &first
			row = row[1:]
		}
	}

	score := 0.0

	if len(row) == engine.RowCap {
		center := row[1]
		if center.FaceUp && center.Card.Type == engine.CardTypeCenter {
			score += estimateCenterScore(&center, row, s, playerIdx)
		}
	}

	if pushed != nil && pushed.FaceUp && pushed.Card.Type == engine.CardTypeExit {
		score += estimateExitScore(pushed.Card)
	}

	if action.FaceDown {
		score += 0.5
	}

	if card.Name == "siphon_drone" {
		score -= 1
	}

	if !action.FaceDown && card.Icon != engine.IconNone {
		seen := false
		for _, c := range player.Row {
			if c.FaceUp && c.Card.Icon == card.Icon {
				seen = true
				break
			}
		}
		if !seen {
			score += 0.3
		}
	}

	return score
}

// estimateCenterScore approximates the points a center trigger would
// score without running the real effect routine (which may need agent
// choices this evaluation pass has no business making).
func estimateCenterScore(center *engine.CardInPlay, row []engine.CardInPlay, s *engine.GameState, playerIdx int) float64 {
	switch center.Card.Effect {
	case engine.EffectCalibrationUnit:
		return 2
	case engine.EffectSiphonDrone:
		return 3 - 2
	case engine.EffectOneShot:
		return 5
	case engine.EffectEchoChamber:
		if s.TurnCounter%2 == 0 {
			return 4
		}
		return 0
	case engine.EffectHotPotato:
		return 2
	case engine.EffectEmbargo:
		return 1
	case engine.EffectMagnet:
		return 1
	case engine.EffectKickback:
		return 2
	case engine.EffectTurncoat:
		return 2
	case engine.EffectScavenger, engine.EffectHollowFrame:
		return 0
	case engine.EffectPatienceCircuit:
		remaining := float64(s.MaxTurns-s.TurnCounter) * 2
		return remaining * 0.3
	case engine.EffectLonerBot:
		if engine.SharesIconWith(&row[0], center) || engine.SharesIconWith(&row[2], center) {
			return 0
		}
		return 4
	case engine.EffectSequenceBot:
		icons := map[engine.Icon]bool{}
		for i := range row {
			for _, ic := range row[i].EffectiveIcons() {
				icons[ic] = true
			}
		}
		if len(icons) == 3 {
			return 3
		}
		return 1
	case engine.EffectBuddySystem:
		return 0
	case engine.EffectJealousUnit:
		count := 0
		for i := range s.Players[engine.Opponent(playerIdx)].Row {
			if engine.SharesIconWith(&s.Players[engine.Opponent(playerIdx)].Row[i], center) {
				count++
			}
		}
		return float64(2 * count)
	case engine.EffectCopycat:
		return 1
	case engine.EffectMimic:
		return 2
	case engine.EffectTugOfWar:
		return 1
	case engine.EffectVoid:
		emptyAfter := engine.RowCap - len(s.Players[engine.Opponent(playerIdx)].Row)
		return float64(2 * emptyAfter)
	}
	return 1
}

func estimateExitScore(c *engine.Card) float64 {
	switch c.Effect {
	case engine.EffectFarewellUnit, engine.EffectSacrificialLamb:
		return 3
	case engine.EffectSpiteModule, engine.EffectBoomerang, engine.EffectRewinder:
		return 0.5
	case engine.EffectDonationBot:
		return -0.5
	}
	return 0
}

func (a *GreedyAgent) ChooseDraw(s *engine.GameState, me int) (engine.DrawChoice, error) {
	hasEmbargo := s.HasEmbargo(me)
	canMarket := len(s.Market) > 0 && !hasEmbargo
	canDeck := len(s.Deck) > 0

	if !canMarket {
		return engine.DrawDeck, nil
	}
	if !canDeck {
		return engine.DrawMarket, nil
	}

	bestMarket := 0.0
	for _, c := range s.Market {
		if v := cardValue(c.Card); v > bestMarket {
			bestMarket = v
		}
	}
	const deckValue = 1.5

	switch {
	case bestMarket > deckValue:
		return engine.DrawMarket, nil
	case bestMarket < deckValue:
		return engine.DrawDeck, nil
	default:
		if a.rng.Intn(2) == 1 {
			return engine.DrawMarket, nil
		}
		return engine.DrawDeck, nil
	}
}

func (a *GreedyAgent) ChooseEffectOption(s *engine.GameState, me int, choice engine.EffectChoice) (int, error) {
	if len(choice.Options) == 0 {
		return 0, nil
	}

	switch choice.Kind {
	case engine.ChoiceKickbackDirection, engine.ChoiceSabotageEdge, engine.ChoiceSpiteEdge, engine.ChoiceTugOfWarEdge:
		row := s.Players[me].Row
		if len(row) == 0 {
			break
		}
		hasLeft, hasRight := false, false
		for _, o := range choice.Options {
			if engine.Side(o) == engine.SideLeft {
				hasLeft = true
			}
			if engine.Side(o) == engine.SideRight {
				hasRight = true
			}
		}
		if hasLeft && hasRight {
			leftVal := cardValue(row[0].Card)
			rightVal := cardValue(row[len(row)-1].Card)
			if rightVal < leftVal {
				return int(engine.SideRight), nil
			}
			if leftVal < rightVal {
				return int(engine.SideLeft), nil
			}
		}

	case engine.ChoiceMarketDrawIndex, engine.ChoiceRewinderMarketCard, engine.ChoiceMagnetMarketCard:
		return bestIndexByValue(choice.Options, func(i int) *engine.Card { return s.Market[i].Card }), nil

	case engine.ChoiceDiscardHand, engine.ChoiceHotPotatoDiscard:
		return worstIndexByValue(choice.Options, func(i int) *engine.Card { return s.Players[me].Hand[i] }), nil

	case engine.ChoiceMarketTrash:
		return worstIndexByValue(choice.Options, func(i int) *engine.Card { return s.Market[i].Card }), nil

	case engine.ChoiceTurncoatTarget, engine.ChoiceParasiteTarget, engine.ChoiceExtractionTarget, engine.ChoicePurgeTarget, engine.ChoiceSniperTarget:
		opp := s.Players[engine.Opponent(me)].Row
		return bestIndexByValue(choice.Options, func(i int) *engine.Card { return opp[i].Card }), nil
	}

	return choice.Options[a.rng.Intn(len(choice.Options))], nil
}
