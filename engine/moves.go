package engine

// ShuffleDeck randomizes deck order in place using a deterministic
// LCG (Knuth's MMIX constants) seeded by seed, grounded on the teacher's
// ShuffleDeck. Kept as an LCG rather than math/rand so a given seed
// produces an identical shuffle regardless of how many other random
// numbers the rest of the engine/agents have consumed from a shared
// generator.
func (s *GameState) ShuffleDeck(seed uint64) {
	rng := seed
	n := len(s.Deck)
	for i := n - 1; i > 0; i-- {
		rng = rng*6364136223846793005 + 1442695040888963407
		j := int(rng % uint64(i+1))
		s.Deck[i], s.Deck[j] = s.Deck[j], s.Deck[i]
	}
}

// drawFromDeck pops the top card (last element) of the deck, or nil if
// empty.
func (s *GameState) drawFromDeck() *Card {
	n := len(s.Deck)
	if n == 0 {
		return nil
	}
	c := s.Deck[n-1]
	s.Deck = s.Deck[:n-1]
	return c
}

// pushDeckTop returns c to the top of the deck (used by phoenix).
func (s *GameState) pushDeckTop(c *Card) {
	s.Deck = append(s.Deck, c)
}

// removeRowCard removes and returns the CardInPlay at idx from
// playerIdx's row, shifting remaining cards down.
func removeRowCard(s *GameState, playerIdx, idx int) CardInPlay {
	row := s.Players[playerIdx].Row
	card := row[idx]
	s.Players[playerIdx].Row = append(row[:idx], row[idx+1:]...)
	return card
}

// insertRowCard inserts cip at the given side of playerIdx's row. If the
// row would exceed RowCap, the opposite edge is ejected and returned
// along with true.
func insertRowCard(s *GameState, playerIdx int, cip CardInPlay, side Side) (pushed CardInPlay, pushedSide Side, didPush bool) {
	row := &s.Players[playerIdx].Row
	if side == SideLeft {
		*row = append([]CardInPlay{cip}, *row...)
	} else {
		*row = append(*row, cip)
	}
	if len(*row) > RowCap {
		if side == SideLeft {
			// Right edge (last element) is ejected.
			last := len(*row) - 1
			pushed = (*row)[last]
			*row = (*row)[:last]
			return pushed, SideRight, true
		}
		pushed = (*row)[0]
		*row = (*row)[1:]
		return pushed, SideLeft, true
	}
	return CardInPlay{}, 0, false
}

// trash removes a card from play permanently (one_shot, purge, sabotage).
func (s *GameState) trash(c *Card) {
	s.Trashed = append(s.Trashed, c)
}

// addToMarket appends cip to the market. Callers are responsible for
// enforcing MarketCap via the agent-driven trash prompt (spec §4.1 step 8).
func (s *GameState) addToMarket(cip CardInPlay) {
	cip.FaceUp = true
	s.Market = append(s.Market, cip)
}

// removeFromMarket removes and returns the card at idx.
func (s *GameState) removeFromMarket(idx int) CardInPlay {
	c := s.Market[idx]
	s.Market = append(s.Market[:idx], s.Market[idx+1:]...)
	return c
}

// RefillMarket draws from the deck top until the market reaches cap or
// the deck empties (spec §4.1 step 11).
func (s *GameState) RefillMarket() {
	for len(s.Market) < MarketCap {
		c := s.drawFromDeck()
		if c == nil {
			return
		}
		s.Market = append(s.Market, CardInPlay{Card: c, FaceUp: true})
	}
}

// enforceHandLimit discards down to HandCap via agent choice, skipping
// protectedName if non-empty (hot_potato).
func enforceHandLimit(s *GameState, playerIdx int, ag Agent, protectedName string) error {
	for len(s.Players[playerIdx].Hand) > HandCap {
		hand := s.Players[playerIdx].Hand
		opts := make([]int, 0, len(hand))
		for i, c := range hand {
			if c.Name == protectedName {
				continue
			}
			opts = append(opts, i)
		}
		if len(opts) == 0 {
			// Every remaining card is protected; nothing lawful to discard.
			return nil
		}
		kind := ChoiceDiscardHand
		if protectedName != "" {
			kind = ChoiceHotPotatoDiscard
		}
		idx, err := ag.ChooseEffectOption(s, playerIdx, EffectChoice{
			Kind:        kind,
			Options:     opts,
			Description: "discard down to hand limit",
		})
		if err != nil {
			return err
		}
		if !containsInt(opts, idx) {
			idx = opts[0]
		}
		s.Players[playerIdx].Hand = append(hand[:idx], hand[idx+1:]...)
	}
	return nil
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// enforceMarketCap asks the current player's agent to trash market cards
// down to MarketCap (spec §4.1 step 8).
func enforceMarketCap(s *GameState, actingPlayer int, ag Agent) error {
	for len(s.Market) > MarketCap {
		opts := make([]int, len(s.Market))
		for i := range s.Market {
			opts[i] = i
		}
		idx, err := ag.ChooseEffectOption(s, actingPlayer, EffectChoice{
			Kind:        ChoiceMarketTrash,
			Options:     opts,
			Description: "market overflow: choose a card to trash",
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(s.Market) {
			idx = 0
		}
		removed := s.removeFromMarket(idx)
		s.trash(removed.Card)
	}
	return nil
}
