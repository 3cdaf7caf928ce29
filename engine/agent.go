package engine

// Agent is the uniform decision interface the resolver calls into at its
// three suspension points (spec §4.4). It is defined here, not in the
// agent package, so effect routines and the resolver can call it directly
// without an import cycle; concrete strategies (random/greedy/lookahead/
// interactive) live in package agent and satisfy this interface.
type Agent interface {
	ChooseAction(s *GameState, me int) (PlayAction, error)
	ChooseDraw(s *GameState, me int) (DrawChoice, error)
	ChooseEffectOption(s *GameState, me int, choice EffectChoice) (int, error)
}

// PlayAction selects a card from hand, the edge to play it to, and whether
// it is played face-down (legal only for traps).
type PlayAction struct {
	HandIndex int
	Side      Side
	FaceDown  bool
}

// DrawChoice is where the current player draws their next card from.
type DrawChoice uint8

const (
	DrawDeck DrawChoice = iota
	DrawMarket
)

// EffectChoiceKind is the closed set of mid-resolution decisions an effect
// routine may need from an agent.
type EffectChoiceKind uint8

const (
	ChoiceKickbackDirection EffectChoiceKind = iota
	ChoiceTurncoatTarget                     // index into opponent's row
	ChoiceScavengerTarget                    // index into a combined list of face-down cards, see Options
	ChoiceMagnetMarketCard                   // index into market
	ChoiceParasiteTarget                     // index into opponent's row
	ChoiceAuctioneerNone                     // no choice needed, present for symmetry; unused
	ChoiceMarketTrash                        // index into market, when market would exceed cap
	ChoiceMarketDrawIndex                    // index into market, when drawing from market
	ChoiceDiscardHand                        // index into own hand, when forced to discard to cap
	ChoiceSniperTarget                       // index into opponent's row
	ChoiceRewinderMarketCard                 // index into market
	ChoiceRecruiterDeckIndex                 // index into deck
	ChoiceSabotageEdge                       // Side: which edge of own row to trash
	ChoiceSpiteEdge                          // Side: which edge of own row to eject
	ChoiceTugOfWarEdge                       // Side: which edge of own row to eject
	ChoiceHotPotatoDiscard                   // index into own hand, excluding the protected card
	ChoiceExtractionTarget                   // index into opponent's row
	ChoicePurgeTarget                        // index into opponent's row
)

// EffectChoice describes a decision an agent must make mid-resolution.
// Options enumerates the legal integer answers (indices, or 0/1 for a
// Side, per Kind); Description is a short human-readable prompt for an
// interactive caller.
type EffectChoice struct {
	Kind        EffectChoiceKind
	Options     []int
	Description string
}
