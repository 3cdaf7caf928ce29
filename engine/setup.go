package engine

// NewGame deals a fresh GameState from registry's catalogue: both hands
// dealt to HandCap, market filled to MarketCap, remainder shuffled into
// the deck. Grounded on the teacher's New<Thing>(seed) constructors and
// the retrieved original engine's GameEngine.__init__ (deal 2, then
// refill market to 3).
func NewGame(registry *Registry, seed uint64, maxTurns int) *GameState {
	s := GetState()
	s.MaxTurns = maxTurns
	s.Deck = registry.BuildDeck()
	s.ShuffleDeck(seed)

	for p := 0; p < 2; p++ {
		for i := 0; i < HandCap; i++ {
			if card := s.drawFromDeck(); card != nil {
				s.Players[p].Hand = append(s.Players[p].Hand, card)
			}
		}
	}

	for len(s.Market) < MarketCap {
		card := s.drawFromDeck()
		if card == nil {
			break
		}
		s.Market = append(s.Market, CardInPlay{Card: card, FaceUp: true})
	}

	return s
}
