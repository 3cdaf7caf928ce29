package engine

// EffectID is the closed tagged variant of center/exit card behaviors
// (spec §9 "Dispatching per-card effects"): one value per distinct
// behavior, dispatched by a single switch, never a first-class function
// value stored on the Card template.
type EffectID uint8

const (
	EffectNone EffectID = iota

	// Center effects (spec §4.3 center table).
	EffectCalibrationUnit
	EffectLonerBot
	EffectCopycat
	EffectSiphonDrone
	EffectJealousUnit
	EffectSequenceBot
	EffectKickback
	EffectPatienceCircuit
	EffectTurncoat
	EffectVoid
	EffectBuddySystem
	EffectMimic
	EffectTugOfWar
	EffectHollowFrame
	EffectEchoChamber
	EffectOneShot
	EffectEmbargo
	EffectScavenger
	EffectMagnet
	EffectHotPotato
	EffectParasite
	EffectAuctioneer
	EffectChainReaction
	EffectTimeBomb
	EffectCompressor
	EffectExtraction
	EffectPurge
	EffectSniper

	// Exit effects (spec §4.3 exit table).
	EffectFarewellUnit
	EffectSpiteModule
	EffectBoomerang
	EffectDonationBot
	EffectRewinder
	EffectSacrificialLamb
	EffectPhoenix
	EffectSabotage
	EffectRoadblock
	EffectRecruiter
)

// EffectOutcome is the closed set of post-effect instructions an effect
// routine hands back to the resolver, replacing a string-keyed metadata
// bag (spec §9 "Mutable metadata bags"). Only the fields relevant to a
// given effect are set; the rest stay at zero value.
type EffectOutcome struct {
	Score int

	// Err carries a decision-layer error (an interactive agent timeout,
	// chiefly) raised while resolving a secondary choice inside the
	// routine itself — e.g. extraction/recruiter's follow-up
	// enforceHandLimit discard. The resolver returns it from PlayTurn
	// instead of silently discarding it.
	Err error

	// Structural side-effects from a CENTER trigger, consumed by the
	// resolver in the fixed order of spec §4.1 step 6: kickback, then
	// compressor, then sniper. The effect routine has already removed
	// these cards from the relevant row; the resolver only runs their
	// exit-effect/destination handling (the "push handler").
	KickbackFired    bool
	KickbackEjected  CardInPlay // the edge card the shift displaced
	KickbackExitSide Side       // which edge the displaced card occupied

	CompressorFired        bool
	CompressorEjectedLeft  CardInPlay
	CompressorEjectedRight CardInPlay

	SniperFired        bool
	SniperOwnerIdx     int // which player's row SniperEjected came from (the opponent)
	SniperEjected      CardInPlay

	// Cross-player pending ejections (resolved in step 9).
	PendingTugOfWar    bool
	PendingSpiteModule bool

	// EXIT-effect-only destination overrides (step 8).
	PhoenixToDeck           bool // self returns to deck top instead of market
	SkipMarket              bool // self is trashed instead of routed to market
	MoveSelfToOpponentHand  bool // self goes directly to opponent's hand (donation_bot)
	ReturnSelfToOwnerHand   bool // self returns to owner's hand (boomerang)
	PendingSabotage         bool // opponent must trash (not eject) an edge of their choosing
	HotPotatoToOpponentHand bool // self moves to opponent hand; opponent then enforces hand cap excluding it
}

// CenterEffectFunc is the signature of a center-effect routine (spec §4.3:
// "(state, self_card, owner_idx, agent) -> score").
type CenterEffectFunc func(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome

// ExitEffectFunc additionally receives the side the card exited from,
// needed by roadblock.
type ExitEffectFunc func(s *GameState, self *CardInPlay, ownerIdx int, ag Agent, exitSide Side) EffectOutcome

// RunCenterEffect dispatches to the bound center routine for id.
func RunCenterEffect(id EffectID, s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	fn, ok := centerEffects[id]
	if !ok {
		return EffectOutcome{}
	}
	return fn(s, self, ownerIdx, ag)
}

// RunExitEffect dispatches to the bound exit routine for id.
func RunExitEffect(id EffectID, s *GameState, self *CardInPlay, ownerIdx int, ag Agent, exitSide Side) EffectOutcome {
	fn, ok := exitEffects[id]
	if !ok {
		return EffectOutcome{}
	}
	return fn(s, self, ownerIdx, ag, exitSide)
}
