package engine

// TrapID is the closed set of trap trigger predicates + effects (spec
// §4.2 "Trap predicates (closed list)").
type TrapID uint8

const (
	TrapNone TrapID = iota
	TrapTripwire
	TrapFalseFlag
	TrapSnare
	TrapMirrorTrap
	TrapAmbush
	TrapTaxCollector
	TrapMirrorMatch
)

// TrapOutcome is the closed set of tags a trap effect writes back for the
// engine to consume the same turn (spec §4.2).
type TrapOutcome struct {
	Score int

	CancelScore   bool // subtract CancelAmount (set to the triggering event's points) from the event's player
	CancelAmount  int
	RedirectCard  bool // next market draw goes to the trap's owner

	// SnareCard/AmbushSteal/NullifyCard only ever fire on an EventCardPlayed
	// scan, strictly before the card they describe is inserted into any
	// row (spec §4.1 step 3 precedes step 4). The resolver diverts the
	// in-flight card itself; these are instructions, not a record of
	// something already done to a row.
	SnareCard     bool // the played card goes to the market instead of the row
	AmbushSteal   bool // the played card goes to the trap owner's hand instead of the row
	NullifyCard   bool // the played card goes to the market instead of the row
}

// trapPredicate reports whether a face-down trap at ownerIdx fires on ev,
// given the current center card of the trap's own row (needed by snare).
type trapPredicate func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) bool

// trapEffect runs the trap's scoring/tag-writing effect once its
// predicate has fired.
type trapEffect func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) TrapOutcome

var trapPredicates = map[TrapID]trapPredicate{
	TrapTripwire: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) bool {
		return ev.Kind == EventCardScored && ev.PlayerIdx != ownerIdx
	},
	TrapFalseFlag: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) bool {
		return ev.Kind == EventCardDrawnMarket && ev.PlayerIdx != ownerIdx
	},
	TrapSnare: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) bool {
		if ev.Kind != EventCardPlayed || ev.PlayerIdx == ownerIdx {
			return false
		}
		center := s.GetCenterCard(ownerIdx)
		if center == nil {
			return false
		}
		for _, icon := range center.EffectiveIcons() {
			if icon == ev.Icon && ev.Icon != IconNone {
				return true
			}
		}
		return false
	},
	TrapMirrorTrap: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) bool {
		return ev.Kind == EventCardScored && ev.PlayerIdx != ownerIdx
	},
	TrapAmbush: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) bool {
		return ev.Kind == EventCardPlayed && ev.PlayerIdx != ownerIdx && ev.HasSide && ev.Side == trapSide(s, ownerIdx, trap)
	},
	TrapTaxCollector: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) bool {
		return ev.Kind == EventCardScored && ev.PlayerIdx != ownerIdx && ev.Points >= 4
	},
	TrapMirrorMatch: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) bool {
		return ev.Kind == EventCardPlayed && ev.PlayerIdx != ownerIdx && ev.Icon != IconNone && ev.Icon == trap.Card.Icon
	},
}

var trapEffects = map[TrapID]trapEffect{
	TrapTripwire: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) TrapOutcome {
		return TrapOutcome{Score: 1, CancelScore: true, CancelAmount: ev.Points}
	},
	TrapFalseFlag: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) TrapOutcome {
		return TrapOutcome{RedirectCard: true}
	},
	TrapSnare: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) TrapOutcome {
		return TrapOutcome{SnareCard: true}
	},
	TrapMirrorTrap: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) TrapOutcome {
		return TrapOutcome{Score: ev.Points}
	},
	TrapAmbush: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) TrapOutcome {
		return TrapOutcome{AmbushSteal: true}
	},
	TrapTaxCollector: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) TrapOutcome {
		return TrapOutcome{CancelScore: true, CancelAmount: ev.Points}
	},
	TrapMirrorMatch: func(s *GameState, trap *CardInPlay, ownerIdx int, ev Event) TrapOutcome {
		return TrapOutcome{Score: 1, NullifyCard: true}
	},
}

// trapSide reports which edge a face-down ambush trap was originally
// played to. This is read from the instance's own PlayedSide tag, not
// recomputed from its current row index: a trap played to the left can
// later be shifted into the row's center slot by a subsequent left
// insertion, and ambush must keep matching the side it was actually
// played on (original engine.py stores this as action.side at play time).
func trapSide(s *GameState, ownerIdx int, trap *CardInPlay) Side {
	return trap.PlayedSide
}

// scanTraps appends ev to s.TurnEvents, then runs the synchronous trap
// scan for it against the opposing player's face-down row (spec §4.2):
// stable row order, first match only.
// It applies the trap's score and any state-mutating tags directly
// (cancel_score, redirect_card) and returns the outcome so the resolver
// can apply the tags that affect how the *current* card_played event
// resolves (snare/ambush/mirror_match divert the card before it is ever
// inserted into a row, so the resolver — not this function — decides
// where it ends up).
func scanTraps(s *GameState, ev Event) TrapOutcome {
	s.TurnEvents = append(s.TurnEvents, ev)
	opponentIdx := Opponent(ev.PlayerIdx)
	row := s.Players[opponentIdx].Row
	for i := range row {
		trap := &row[i]
		if trap.FaceUp || trap.Card.Type != CardTypeTrap {
			continue
		}
		pred, ok := trapPredicates[trap.Card.Trap]
		if !ok || !pred(s, trap, opponentIdx, ev) {
			continue
		}
		eff := trapEffects[trap.Card.Trap]
		outcome := eff(s, trap, opponentIdx, ev)
		trap.FaceUp = true

		s.Players[opponentIdx].Score += outcome.Score
		s.appendLog(LogTrapTriggered, opponentIdx, trap.Card.Name+" triggered")

		if outcome.CancelScore {
			s.Players[ev.PlayerIdx].Score -= outcome.CancelAmount
		}
		if outcome.RedirectCard {
			s.pendingRedirect = opponentIdx
		}
		// Only the first matching trap per opponent fires per event.
		return outcome
	}
	return TrapOutcome{}
}
