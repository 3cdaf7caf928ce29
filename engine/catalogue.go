package engine

// Registry holds the immutable set of Card templates, built once at
// startup and passed explicitly wherever a deck is needed (spec §9
// "Global card registry" — no process-wide mutable global).
type Registry struct {
	cards   []*Card
	byName  map[string]*Card
}

// NewRegistry builds and returns the full ~30-card Shift catalogue.
// Nominal icons are assigned round-robin across the four icons; the
// spec's effect table does not pin icons to names, so this assignment is
// a design decision of this registry rather than a guess at lost source.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]*Card)}

	icons := [...]Icon{IconGear, IconSpark, IconChip, IconHeart}
	next := 0
	icon := func() Icon {
		i := icons[next%len(icons)]
		next++
		return i
	}

	add := func(name string, typ CardType, text string, effect EffectID, trap TrapID) {
		c := &Card{
			Name:   name,
			Icon:   icon(),
			Type:   typ,
			Text:   text,
			Effect: effect,
			Trap:   trap,
		}
		r.cards = append(r.cards, c)
		r.byName[name] = c
	}

	// Center cards.
	add("calibration_unit", CardTypeCenter, "+2.", EffectCalibrationUnit, 0)
	add("loner_bot", CardTypeCenter, "+4 iff no adjacent card shares any effective icon.", EffectLonerBot, 0)
	add("copycat", CardTypeCenter, "+min(neighbors' last center score), default 0.", EffectCopycat, 0)
	add("siphon_drone", CardTypeCenter, "+3 self, +2 opponent.", EffectSiphonDrone, 0)
	add("jealous_unit", CardTypeCenter, "+2 per opponent row card sharing an icon.", EffectJealousUnit, 0)
	add("sequence_bot", CardTypeCenter, "+3 iff own row has 3 distinct icons, else +1.", EffectSequenceBot, 0)
	add("kickback", CardTypeCenter, "+2; shift toward chosen edge, eject displaced card.", EffectKickback, 0)
	add("patience_circuit", CardTypeCenter, "scores elapsed turns at game end.", EffectPatienceCircuit, 0)
	add("turncoat", CardTypeCenter, "+2; swap with a chosen opponent row card.", EffectTurncoat, 0)
	add("void", CardTypeCenter, "+2 per empty slot across both rows.", EffectVoid, 0)
	add("buddy_system", CardTypeCenter, "+3 iff own row has exactly 2 cards.", EffectBuddySystem, 0)
	add("mimic", CardTypeCenter, "+2; mimics left neighbor's icon.", EffectMimic, 0)
	add("tug_of_war", CardTypeCenter, "+1; opponent must eject an edge if full.", EffectTugOfWar, 0)
	add("hollow_frame", CardTypeCenter, "0; permanently counts as all icons.", EffectHollowFrame, 0)
	add("echo_chamber", CardTypeCenter, "+4 on even turns, else 0.", EffectEchoChamber, 0)
	add("one_shot", CardTypeCenter, "+5; removed from the game.", EffectOneShot, 0)
	add("embargo", CardTypeCenter, "+1; opponent cannot draw market next turn.", EffectEmbargo, 0)
	add("scavenger", CardTypeCenter, "0; may swap with any face-down card.", EffectScavenger, 0)
	add("magnet", CardTypeCenter, "+1; pull a market card adjacent.", EffectMagnet, 0)
	add("hot_potato", CardTypeCenter, "+2; moves to opponent's hand.", EffectHotPotato, 0)
	add("parasite", CardTypeCenter, "+4; swap with an opponent row card.", EffectParasite, 0)
	add("auctioneer", CardTypeCenter, "+2 per icon unique to own hand.", EffectAuctioneer, 0)
	add("chain_reaction", CardTypeCenter, "+2; also re-runs left neighbor's effect.", EffectChainReaction, 0)
	add("time_bomb", CardTypeCenter, "scores elapsed turns since last trigger.", EffectTimeBomb, 0)
	add("compressor", CardTypeCenter, "+5; ejects both own edges.", EffectCompressor, 0)
	add("extraction", CardTypeCenter, "+1; steals an opponent row card to hand.", EffectExtraction, 0)
	add("purge", CardTypeCenter, "+1; removes an opponent row card from the game.", EffectPurge, 0)
	add("sniper", CardTypeCenter, "+2; ejects an opponent row card.", EffectSniper, 0)

	// Exit cards.
	add("farewell_unit", CardTypeExit, "+3 on exit.", EffectFarewellUnit, 0)
	add("spite_module", CardTypeExit, "0; opponent must eject an edge (no center score).", EffectSpiteModule, 0)
	add("boomerang", CardTypeExit, "0; returns to owner's hand; can't replay for 2 turns.", EffectBoomerang, 0)
	add("donation_bot", CardTypeExit, "0; goes to opponent's hand, skips market.", EffectDonationBot, 0)
	add("rewinder", CardTypeExit, "0; take a market card into hand on exit.", EffectRewinder, 0)
	add("sacrificial_lamb", CardTypeExit, "+3 on exit.", EffectSacrificialLamb, 0)
	add("phoenix", CardTypeExit, "+2; returns to deck top instead of market.", EffectPhoenix, 0)
	add("sabotage", CardTypeExit, "0; opponent must trash an edge of their row.", EffectSabotage, 0)
	add("roadblock", CardTypeExit, "0; opponent can't play to the vacated side next turn.", EffectRoadblock, 0)
	add("recruiter", CardTypeExit, "0; search the deck for a card into hand.", EffectRecruiter, 0)

	// Trap cards.
	add("tripwire", CardTypeTrap, "Cancels an opponent's center score; owner scores 1.", 0, TrapTripwire)
	add("false_flag", CardTypeTrap, "Redirects the opponent's next market draw.", 0, TrapFalseFlag)
	add("snare", CardTypeTrap, "Diverts a matching-icon play to the market.", 0, TrapSnare)
	add("mirror_trap", CardTypeTrap, "Mirrors an opponent's center score.", 0, TrapMirrorTrap)
	add("ambush", CardTypeTrap, "Steals a card played to its watched side.", 0, TrapAmbush)
	add("tax_collector", CardTypeTrap, "Cancels a large opponent score.", 0, TrapTaxCollector)
	add("mirror_match", CardTypeTrap, "Nullifies a same-icon play; owner scores 1.", 0, TrapMirrorMatch)

	return r
}

// Card looks up a Card template by name. Returns nil if absent.
func (r *Registry) Card(name string) *Card {
	return r.byName[name]
}

// All returns every Card template in registry order.
func (r *Registry) All() []*Card {
	return r.cards
}

// BuildDeck returns a slice of pointers to one copy of every registered
// card, suitable as the starting deck. Cards are shared by pointer, never
// copied.
func (r *Registry) BuildDeck() []*Card {
	deck := make([]*Card, len(r.cards))
	copy(deck, r.cards)
	return deck
}
