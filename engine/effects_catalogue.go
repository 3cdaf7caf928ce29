package engine

// centerEffects binds every CardTypeCenter EffectID to its routine. Built
// once; never mutated after package init.
var centerEffects map[EffectID]CenterEffectFunc

// exitEffects binds every CardTypeExit EffectID to its routine.
var exitEffects map[EffectID]ExitEffectFunc

func init() {
	centerEffects = map[EffectID]CenterEffectFunc{
		EffectCalibrationUnit: centerCalibrationUnit,
		EffectLonerBot:        centerLonerBot,
		EffectCopycat:         centerCopycat,
		EffectSiphonDrone:     centerSiphonDrone,
		EffectJealousUnit:     centerJealousUnit,
		EffectSequenceBot:     centerSequenceBot,
		EffectKickback:        centerKickback,
		EffectPatienceCircuit: centerPatienceCircuit,
		EffectTurncoat:        centerTurncoat,
		EffectVoid:            centerVoid,
		EffectBuddySystem:     centerBuddySystem,
		EffectMimic:           centerMimic,
		EffectTugOfWar:        centerTugOfWar,
		EffectHollowFrame:     centerHollowFrame,
		EffectEchoChamber:     centerEchoChamber,
		EffectOneShot:         centerOneShot,
		EffectEmbargo:         centerEmbargo,
		EffectScavenger:       centerScavenger,
		EffectMagnet:          centerMagnet,
		EffectHotPotato:       centerHotPotato,
		EffectParasite:        centerParasite,
		EffectAuctioneer:      centerAuctioneer,
		EffectChainReaction:   centerChainReaction,
		EffectTimeBomb:        centerTimeBomb,
		EffectCompressor:      centerCompressor,
		EffectExtraction:      centerExtraction,
		EffectPurge:           centerPurge,
		EffectSniper:          centerSniper,
	}

	exitEffects = map[EffectID]ExitEffectFunc{
		EffectFarewellUnit:    exitFarewellUnit,
		EffectSpiteModule:     exitSpiteModule,
		EffectBoomerang:       exitBoomerang,
		EffectDonationBot:     exitDonationBot,
		EffectRewinder:        exitRewinder,
		EffectSacrificialLamb: exitSacrificialLamb,
		EffectPhoenix:         exitPhoenix,
		EffectSabotage:        exitSabotage,
		EffectRoadblock:       exitRoadblock,
		EffectRecruiter:       exitRecruiter,
	}
}

// ---- Center effects ----

func centerCalibrationUnit(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	return EffectOutcome{Score: 2}
}

func centerLonerBot(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	left, right := s.AdjacentCards(ownerIdx)
	if (left != nil && SharesIconWith(self, left)) || (right != nil && SharesIconWith(self, right)) {
		return EffectOutcome{Score: 0}
	}
	return EffectOutcome{Score: 4}
}

func centerCopycat(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	left, right := s.AdjacentCards(ownerIdx)
	l, r := 0, 0
	if left != nil {
		l = left.LastCenterScore
	}
	if right != nil {
		r = right.LastCenterScore
	}
	if l < r {
		return EffectOutcome{Score: l}
	}
	return EffectOutcome{Score: r}
}

func centerSiphonDrone(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	s.Players[Opponent(ownerIdx)].Score += 2
	return EffectOutcome{Score: 3}
}

func centerJealousUnit(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	count := 0
	for i := range s.Players[Opponent(ownerIdx)].Row {
		if SharesIconWith(self, &s.Players[Opponent(ownerIdx)].Row[i]) {
			count++
		}
	}
	return EffectOutcome{Score: 2 * count}
}

func centerSequenceBot(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	seen := map[Icon]bool{}
	for i := range s.Players[ownerIdx].Row {
		for _, icon := range s.Players[ownerIdx].Row[i].EffectiveIcons() {
			seen[icon] = true
		}
	}
	if len(seen) == 3 {
		return EffectOutcome{Score: 3}
	}
	return EffectOutcome{Score: 1}
}

func centerKickback(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	row := s.Players[ownerIdx].Row
	centerIdx := -1
	for i := range row {
		if &row[i] == self {
			centerIdx = i
			break
		}
	}
	if centerIdx != 1 || len(row) != RowCap {
		return EffectOutcome{Score: 2}
	}

	choice, err := ag.ChooseEffectOption(s, ownerIdx, EffectChoice{
		Kind:        ChoiceKickbackDirection,
		Options:     []int{int(SideLeft), int(SideRight)},
		Description: "kickback: choose which edge to shift toward",
	})
	dir := SideLeft
	if err == nil && Side(choice) == SideRight {
		dir = SideRight
	}

	newRow := s.Players[ownerIdx].Row
	var displaced CardInPlay
	if dir == SideLeft {
		displaced = newRow[0]
		newRow = []CardInPlay{newRow[1], newRow[2]}
	} else {
		displaced = newRow[2]
		newRow = []CardInPlay{newRow[0], newRow[1]}
	}
	s.Players[ownerIdx].Row = newRow

	return EffectOutcome{Score: 2, KickbackFired: true, KickbackEjected: displaced, KickbackExitSide: dir}
}

func centerPatienceCircuit(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	if !self.PatienceArmed {
		self.PatienceArmed = true
		self.PatienceTurn = s.TurnCounter
	}
	return EffectOutcome{Score: 0}
}

func centerTurncoat(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	opp := Opponent(ownerIdx)
	oppRow := s.Players[opp].Row
	if len(oppRow) == 0 {
		return EffectOutcome{Score: 2}
	}
	opts := make([]int, len(oppRow))
	for i := range oppRow {
		opts[i] = i
	}
	choice, err := ag.ChooseEffectOption(s, ownerIdx, EffectChoice{
		Kind:        ChoiceTurncoatTarget,
		Options:     opts,
		Description: "turncoat: choose opponent row card to swap with",
	})
	if err != nil || choice < 0 || choice >= len(oppRow) {
		choice = 0
	}
	ownRow := s.Players[ownerIdx].Row
	selfIdx := -1
	for i := range ownRow {
		if &ownRow[i] == self {
			selfIdx = i
			break
		}
	}
	if selfIdx == -1 {
		return EffectOutcome{Score: 2}
	}
	s.Players[ownerIdx].Row[selfIdx], s.Players[opp].Row[choice] = s.Players[opp].Row[choice], s.Players[ownerIdx].Row[selfIdx]
	return EffectOutcome{Score: 2}
}

func centerVoid(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	empty := (RowCap - len(s.Players[0].Row)) + (RowCap - len(s.Players[1].Row))
	return EffectOutcome{Score: 2 * empty}
}

func centerBuddySystem(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	if len(s.Players[ownerIdx].Row) == 2 {
		return EffectOutcome{Score: 3}
	}
	return EffectOutcome{Score: 0}
}

func centerMimic(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	left, _ := s.AdjacentCards(ownerIdx)
	if left != nil {
		icons := left.EffectiveIcons()
		if len(icons) > 0 {
			self.MimickedIcon = icons[0]
		}
	}
	return EffectOutcome{Score: 2}
}

func centerTugOfWar(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	return EffectOutcome{Score: 1, PendingTugOfWar: true}
}

func centerHollowFrame(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	self.AllIcons = true
	return EffectOutcome{Score: 0}
}

func centerEchoChamber(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	if s.TurnCounter%2 == 0 {
		return EffectOutcome{Score: 4}
	}
	return EffectOutcome{Score: 0}
}

func centerOneShot(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	row := s.Players[ownerIdx].Row
	for i := range row {
		if &row[i] == self {
			s.trash(row[i].Card)
			s.Players[ownerIdx].Row = append(row[:i], row[i+1:]...)
			break
		}
	}
	return EffectOutcome{Score: 5}
}

func centerEmbargo(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	s.ActiveEffects = append(s.ActiveEffects, ActiveEffect{
		Kind:        ActiveEmbargo,
		Owner:       Opponent(ownerIdx),
		ExpiresTurn: s.TurnCounter + 1,
	})
	return EffectOutcome{Score: 1}
}

func centerScavenger(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	type loc struct {
		player, idx int
	}
	var faceDown []loc
	for p := 0; p < 2; p++ {
		for i := range s.Players[p].Row {
			if !s.Players[p].Row[i].FaceUp {
				faceDown = append(faceDown, loc{p, i})
			}
		}
	}
	if len(faceDown) == 0 {
		return EffectOutcome{Score: 0}
	}
	opts := make([]int, len(faceDown))
	for i := range faceDown {
		opts[i] = i
	}
	choice, err := ag.ChooseEffectOption(s, ownerIdx, EffectChoice{
		Kind:        ChoiceScavengerTarget,
		Options:     opts,
		Description: "scavenger: choose a face-down card to swap with",
	})
	if err != nil || choice < 0 || choice >= len(faceDown) {
		choice = 0
	}
	target := faceDown[choice]

	ownRow := s.Players[ownerIdx].Row
	selfIdx := -1
	for i := range ownRow {
		if &ownRow[i] == self {
			selfIdx = i
			break
		}
	}
	if selfIdx == -1 || (target.player == ownerIdx && target.idx == selfIdx) {
		return EffectOutcome{Score: 0}
	}
	s.Players[ownerIdx].Row[selfIdx], s.Players[target.player].Row[target.idx] =
		s.Players[target.player].Row[target.idx], s.Players[ownerIdx].Row[selfIdx]
	return EffectOutcome{Score: 0}
}

func centerMagnet(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	if len(s.Market) == 0 {
		return EffectOutcome{Score: 1}
	}
	opts := make([]int, len(s.Market))
	for i := range s.Market {
		opts[i] = i
	}
	choice, err := ag.ChooseEffectOption(s, ownerIdx, EffectChoice{
		Kind:        ChoiceMagnetMarketCard,
		Options:     opts,
		Description: "magnet: choose a market card to pull adjacent",
	})
	if err != nil || choice < 0 || choice >= len(s.Market) {
		choice = 0
	}
	picked := s.removeFromMarket(choice)
	picked.FaceUp = true

	ownRow := s.Players[ownerIdx].Row
	selfIdx := 0
	for i := range ownRow {
		if &ownRow[i] == self {
			selfIdx = i
			break
		}
	}
	var newRow []CardInPlay
	var pushed *CardInPlay
	if selfIdx == 0 {
		newRow = append([]CardInPlay{picked}, ownRow...)
	} else {
		newRow = append(append([]CardInPlay{}, ownRow...), picked)
	}
	if len(newRow) > RowCap {
		if selfIdx == 0 {
			last := newRow[len(newRow)-1]
			pushed = &last
			newRow = newRow[:len(newRow)-1]
		} else {
			first := newRow[0]
			pushed = &first
			newRow = newRow[1:]
		}
	}
	s.Players[ownerIdx].Row = newRow
	if pushed != nil {
		s.addToMarket(*pushed)
	}
	return EffectOutcome{Score: 1}
}

func centerHotPotato(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	row := s.Players[ownerIdx].Row
	for i := range row {
		if &row[i] == self {
			cip := removeRowCard(s, ownerIdx, i)
			opp := Opponent(ownerIdx)
			s.Players[opp].Hand = append(s.Players[opp].Hand, cip.Card)
			s.PendingHandLimitChecks[opp] = cip.Card.Name
			break
		}
	}
	return EffectOutcome{Score: 2}
}

func centerParasite(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	opp := Opponent(ownerIdx)
	oppRow := s.Players[opp].Row
	if len(oppRow) == 0 {
		return EffectOutcome{Score: 4}
	}
	opts := make([]int, len(oppRow))
	for i := range oppRow {
		opts[i] = i
	}
	choice, err := ag.ChooseEffectOption(s, ownerIdx, EffectChoice{
		Kind:        ChoiceParasiteTarget,
		Options:     opts,
		Description: "parasite: choose opponent row card to swap with",
	})
	if err != nil || choice < 0 || choice >= len(oppRow) {
		choice = 0
	}
	ownRow := s.Players[ownerIdx].Row
	selfIdx := -1
	for i := range ownRow {
		if &ownRow[i] == self {
			selfIdx = i
			break
		}
	}
	if selfIdx == -1 {
		return EffectOutcome{Score: 4}
	}
	s.Players[ownerIdx].Row[selfIdx], s.Players[opp].Row[choice] = s.Players[opp].Row[choice], s.Players[ownerIdx].Row[selfIdx]
	return EffectOutcome{Score: 4}
}

func centerAuctioneer(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	own := map[Icon]bool{}
	for _, c := range s.Players[ownerIdx].Hand {
		if c.Icon != IconNone {
			own[c.Icon] = true
		}
	}
	opp := map[Icon]bool{}
	for _, c := range s.Players[Opponent(ownerIdx)].Hand {
		if c.Icon != IconNone {
			opp[c.Icon] = true
		}
	}
	unique := 0
	for icon := range own {
		if !opp[icon] {
			unique++
		}
	}
	return EffectOutcome{Score: 2 * unique}
}

// chainReactionExcluded are left-neighbor effects centerChainReaction will
// not re-run: each ejects a row card as part of its outcome, an outcome
// only the resolver's push handler (which chain_reaction's single-Agent
// signature has no access to) can route without losing the card.
// chain_reaction itself is excluded too (spec §9: single hop, no cascade).
var chainReactionExcluded = map[EffectID]bool{
	EffectChainReaction: true,
	EffectKickback:      true,
	EffectCompressor:    true,
	EffectSniper:        true,
}

func centerChainReaction(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	score := 2
	left, _ := s.AdjacentCards(ownerIdx)
	if left != nil && left.FaceUp && left.Card.Type == CardTypeCenter && !chainReactionExcluded[left.Card.Effect] {
		sub := RunCenterEffect(left.Card.Effect, s, left, ownerIdx, ag)
		if sub.Err != nil {
			return EffectOutcome{Err: sub.Err}
		}
		score += sub.Score
		left.LastCenterScore = sub.Score
	}
	return EffectOutcome{Score: score}
}

func centerTimeBomb(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	if !self.TimeBombArmed {
		self.TimeBombArmed = true
		self.TimeBombStored = s.TurnCounter
		return EffectOutcome{Score: 0}
	}
	score := s.TurnCounter - self.TimeBombStored
	self.TimeBombStored = s.TurnCounter
	return EffectOutcome{Score: score}
}

func centerCompressor(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	row := s.Players[ownerIdx].Row
	if len(row) != RowCap {
		return EffectOutcome{Score: 5}
	}
	left := row[0]
	right := row[2]
	s.Players[ownerIdx].Row = []CardInPlay{row[1]}
	return EffectOutcome{
		Score:                  5,
		CompressorFired:        true,
		CompressorEjectedLeft:  left,
		CompressorEjectedRight: right,
	}
}

func centerExtraction(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	opp := Opponent(ownerIdx)
	oppRow := s.Players[opp].Row
	if len(oppRow) == 0 {
		return EffectOutcome{Score: 1}
	}
	opts := make([]int, len(oppRow))
	for i := range oppRow {
		opts[i] = i
	}
	choice, err := ag.ChooseEffectOption(s, ownerIdx, EffectChoice{
		Kind:        ChoiceExtractionTarget,
		Options:     opts,
		Description: "extraction: choose opponent row card to steal",
	})
	if err != nil || choice < 0 || choice >= len(oppRow) {
		choice = 0
	}
	cip := removeRowCard(s, opp, choice)
	s.Players[ownerIdx].Hand = append(s.Players[ownerIdx].Hand, cip.Card)
	if err := enforceHandLimit(s, ownerIdx, ag, ""); err != nil {
		return EffectOutcome{Score: 1, Err: err}
	}
	return EffectOutcome{Score: 1}
}

func centerPurge(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	opp := Opponent(ownerIdx)
	oppRow := s.Players[opp].Row
	if len(oppRow) == 0 {
		return EffectOutcome{Score: 1}
	}
	opts := make([]int, len(oppRow))
	for i := range oppRow {
		opts[i] = i
	}
	choice, err := ag.ChooseEffectOption(s, ownerIdx, EffectChoice{
		Kind:        ChoicePurgeTarget,
		Options:     opts,
		Description: "purge: choose opponent row card to remove from the game",
	})
	if err != nil || choice < 0 || choice >= len(oppRow) {
		choice = 0
	}
	cip := removeRowCard(s, opp, choice)
	s.trash(cip.Card)
	return EffectOutcome{Score: 1}
}

func centerSniper(s *GameState, self *CardInPlay, ownerIdx int, ag Agent) EffectOutcome {
	opp := Opponent(ownerIdx)
	oppRow := s.Players[opp].Row
	if len(oppRow) == 0 {
		return EffectOutcome{Score: 2}
	}
	opts := make([]int, len(oppRow))
	for i := range oppRow {
		opts[i] = i
	}
	choice, err := ag.ChooseEffectOption(s, ownerIdx, EffectChoice{
		Kind:        ChoiceSniperTarget,
		Options:     opts,
		Description: "sniper: choose opponent row card to eject",
	})
	if err != nil || choice < 0 || choice >= len(oppRow) {
		choice = 0
	}
	cip := removeRowCard(s, opp, choice)
	return EffectOutcome{Score: 2, SniperFired: true, SniperOwnerIdx: opp, SniperEjected: cip}
}

// ---- Exit effects ----

func exitFarewellUnit(s *GameState, self *CardInPlay, ownerIdx int, ag Agent, exitSide Side) EffectOutcome {
	return EffectOutcome{Score: 3}
}

func exitSpiteModule(s *GameState, self *CardInPlay, ownerIdx int, ag Agent, exitSide Side) EffectOutcome {
	return EffectOutcome{Score: 0, PendingSpiteModule: true}
}

func exitBoomerang(s *GameState, self *CardInPlay, ownerIdx int, ag Agent, exitSide Side) EffectOutcome {
	s.ActiveEffects = append(s.ActiveEffects, ActiveEffect{
		Kind:        ActiveBoomerangCooldown,
		Owner:       ownerIdx,
		CardName:    self.Card.Name,
		ExpiresTurn: s.TurnCounter + 2,
	})
	return EffectOutcome{Score: 0, ReturnSelfToOwnerHand: true}
}

func exitDonationBot(s *GameState, self *CardInPlay, ownerIdx int, ag Agent, exitSide Side) EffectOutcome {
	return EffectOutcome{Score: 0, MoveSelfToOpponentHand: true, SkipMarket: true}
}

func exitRewinder(s *GameState, self *CardInPlay, ownerIdx int, ag Agent, exitSide Side) EffectOutcome {
	if len(s.Market) == 0 {
		return EffectOutcome{Score: 0}
	}
	opts := make([]int, len(s.Market))
	for i := range s.Market {
		opts[i] = i
	}
	choice, err := ag.ChooseEffectOption(s, ownerIdx, EffectChoice{
		Kind:        ChoiceRewinderMarketCard,
		Options:     opts,
		Description: "rewinder: take a market card into hand",
	})
	if err != nil || choice < 0 || choice >= len(s.Market) {
		choice = 0
	}
	picked := s.removeFromMarket(choice)
	s.Players[ownerIdx].Hand = append(s.Players[ownerIdx].Hand, picked.Card)
	return EffectOutcome{Score: 0}
}

func exitSacrificialLamb(s *GameState, self *CardInPlay, ownerIdx int, ag Agent, exitSide Side) EffectOutcome {
	return EffectOutcome{Score: 3}
}

func exitPhoenix(s *GameState, self *CardInPlay, ownerIdx int, ag Agent, exitSide Side) EffectOutcome {
	return EffectOutcome{Score: 2, PhoenixToDeck: true}
}

func exitSabotage(s *GameState, self *CardInPlay, ownerIdx int, ag Agent, exitSide Side) EffectOutcome {
	return EffectOutcome{Score: 0, PendingSabotage: true}
}

func exitRoadblock(s *GameState, self *CardInPlay, ownerIdx int, ag Agent, exitSide Side) EffectOutcome {
	s.ActiveEffects = append(s.ActiveEffects, ActiveEffect{
		Kind:        ActiveRoadblock,
		Owner:       Opponent(ownerIdx),
		BlockedSide: exitSide,
		ExpiresTurn: s.TurnCounter + 1,
	})
	return EffectOutcome{Score: 0}
}

func exitRecruiter(s *GameState, self *CardInPlay, ownerIdx int, ag Agent, exitSide Side) EffectOutcome {
	if len(s.Deck) == 0 {
		return EffectOutcome{Score: 0}
	}
	opts := make([]int, len(s.Deck))
	for i := range s.Deck {
		opts[i] = i
	}
	choice, err := ag.ChooseEffectOption(s, ownerIdx, EffectChoice{
		Kind:        ChoiceRecruiterDeckIndex,
		Options:     opts,
		Description: "recruiter: search the deck for a card",
	})
	if err != nil || choice < 0 || choice >= len(s.Deck) {
		choice = len(s.Deck) - 1
	}
	picked := s.Deck[choice]
	s.Deck = append(s.Deck[:choice], s.Deck[choice+1:]...)
	s.Players[ownerIdx].Hand = append(s.Players[ownerIdx].Hand, picked)
	seed := uint64(s.TurnCounter)*1000003 + uint64(len(s.Deck))
	s.ShuffleDeck(seed)
	if err := enforceHandLimit(s, ownerIdx, ag, ""); err != nil {
		return EffectOutcome{Err: err}
	}
	return EffectOutcome{Score: 0}
}
