package engine

// PlayTurn runs one full turn for s.CurrentPlayer and advances the turn
// counter, following the fixed pipeline of steps (play, trap check,
// insert, center trigger, structural pushes, hand-limit enforcement,
// push handling, cross-player pending effects, draw, refill, expiry, end
// check, advance). ag[i] is the agent deciding for player i.
func PlayTurn(s *GameState, ag [2]Agent) error {
	s.TurnEvents = s.TurnEvents[:0]

	current := s.CurrentPlayer

	inserted, err := runPlayPhase(s, current, ag)
	if err != nil {
		return err
	}

	if center := s.GetCenterCard(current); inserted && center != nil && center.Card.Type == CardTypeCenter {
		if err := runCenterTrigger(s, current, ag); err != nil {
			return err
		}
	}

	if err := enforcePendingHandLimitChecks(s, ag); err != nil {
		return err
	}

	if err := runPendingCrossPlayerEffects(s, ag); err != nil {
		return err
	}

	if err := runDrawPhase(s, current, ag); err != nil {
		return err
	}

	s.RefillMarket()
	s.ExpireActiveEffects()

	if err := checkTurnInvariants(s); err != nil {
		return err
	}

	if s.TurnCounter >= s.MaxTurns {
		scoreEndOfGame(s)
		s.GameOver = true
		s.appendLog(LogGameEnded, current, "game ended")
		return nil
	}

	s.appendLog(LogTurnEnded, current, "turn ended")
	advanceTurn(s)
	return nil
}

// runPlayPhase resolves spec §4.1 steps 1-4: request a play, validate it
// against roadblock/boomerang cooldown, check traps on the card_played
// event, and place the card (or divert it per a firing trap). A
// roadblocked/boomerang-blocked turn simply skips to the draw phase.
// It reports whether a card was inserted into the acting player's row,
// which gates the center trigger.
func runPlayPhase(s *GameState, current int, ag [2]Agent) (bool, error) {
	me := ag[current]
	hand := s.Players[current].Hand
	if len(hand) == 0 {
		return false, nil
	}

	action, err := me.ChooseAction(s, current)
	if err != nil {
		return false, err
	}
	idx := action.HandIndex
	if idx < 0 || idx >= len(hand) {
		return false, nil
	}

	if s.RoadblockedSide(current, action.Side) {
		return false, nil
	}
	card := hand[idx]
	if s.BoomerangBlocked(current, card.Name) {
		return false, nil
	}

	s.Players[current].Hand = append(hand[:idx], hand[idx+1:]...)

	ev := Event{
		Kind:      EventCardPlayed,
		PlayerIdx: current,
		CardName:  card.Name,
		Icon:      card.Icon,
		Side:      action.Side,
		HasSide:   true,
	}
	outcome := scanTraps(s, ev)
	s.appendLog(LogCardPlayed, current, card.Name)

	switch {
	case outcome.SnareCard || outcome.NullifyCard:
		s.addToMarket(CardInPlay{Card: card})
		return false, enforceMarketCap(s, current, me)
	case outcome.AmbushSteal:
		owner := Opponent(current)
		s.Players[owner].Hand = append(s.Players[owner].Hand, card)
		return false, enforceHandLimit(s, owner, ag[owner], "")
	default:
		cip := CardInPlay{Card: card, FaceUp: !action.FaceDown, PlayedSide: action.Side}
		pushed, pushedSide, didPush := insertRowCard(s, current, cip, action.Side)
		if didPush {
			return true, pushCard(s, pushed, current, pushedSide, ag)
		}
	}
	return true, nil
}

// runCenterTrigger resolves spec §4.1 steps 5-6: run the center effect,
// emit card_scored + trap scan, then apply structural ejections in the
// fixed order kickback, compressor, sniper.
func runCenterTrigger(s *GameState, current int, ag [2]Agent) error {
	center := s.GetCenterCard(current)
	if center == nil {
		return nil
	}
	outcome := RunCenterEffect(center.Card.Effect, s, center, current, ag[current])
	if outcome.Err != nil {
		return outcome.Err
	}
	center.LastCenterScore = outcome.Score
	applyScore(s, current, center.Card.Name, outcome.Score)

	if outcome.Score > 0 {
		ev := Event{Kind: EventCardScored, PlayerIdx: current, CardName: center.Card.Name, Points: outcome.Score}
		scanTraps(s, ev)
	}
	s.appendLog(LogCardScored, current, center.Card.Name)

	if outcome.KickbackFired {
		if err := pushCard(s, outcome.KickbackEjected, current, outcome.KickbackExitSide, ag); err != nil {
			return err
		}
	}
	if outcome.CompressorFired {
		if err := pushCard(s, outcome.CompressorEjectedLeft, current, SideLeft, ag); err != nil {
			return err
		}
		if err := pushCard(s, outcome.CompressorEjectedRight, current, SideRight, ag); err != nil {
			return err
		}
	}
	if outcome.SniperFired {
		// A center-slot sniper target has no natural edge; default to the
		// left side since it only matters to a roadblock exit effect.
		if err := pushCard(s, outcome.SniperEjected, outcome.SniperOwnerIdx, SideLeft, ag); err != nil {
			return err
		}
	}

	if outcome.PendingTugOfWar {
		s.PendingTugOfWar = true
	}
	if outcome.PendingSpiteModule {
		s.PendingSpiteModule = true
	}
	return nil
}

// applyScore adds pts to playerIdx's score and the per-card running total.
func applyScore(s *GameState, playerIdx int, cardName string, pts int) {
	s.Players[playerIdx].Score += pts
	s.CardScores[cardName] += pts
}

// pushCard runs the push handler for a card ejected from ownerIdx's row
// (spec §4.1 step 8): if it is a face-up exit card its exit effect runs
// first, whose outcome may override the card's destination; otherwise it
// lands in the shared market. Sabotage is resolved synchronously here,
// against the ejected owner's opponent, rather than deferred to step 9
// (spec groups it with the other exit-effect tags in step 8's list). A
// spite_module ejected from the acting player's own row arms the step-9
// spite ejection; one ejected from the other player's row does not.
func pushCard(s *GameState, cip CardInPlay, ownerIdx int, exitSide Side, ag [2]Agent) error {
	s.appendLog(LogCardPushed, ownerIdx, cip.Card.Name)

	if !cip.FaceUp || cip.Card.Type != CardTypeExit {
		s.addToMarket(cip)
		return enforceMarketCap(s, ownerIdx, ag[ownerIdx])
	}

	outcome := RunExitEffect(cip.Card.Effect, s, &cip, ownerIdx, ag[ownerIdx], exitSide)
	if outcome.Err != nil {
		return outcome.Err
	}
	applyScore(s, ownerIdx, cip.Card.Name, outcome.Score)
	if outcome.PendingSpiteModule && ownerIdx == s.CurrentPlayer {
		s.PendingSpiteModule = true
	}

	switch {
	case outcome.PhoenixToDeck:
		s.pushDeckTop(cip.Card)
	case outcome.MoveSelfToOpponentHand:
		opp := Opponent(ownerIdx)
		s.Players[opp].Hand = append(s.Players[opp].Hand, cip.Card)
		if err := enforceHandLimit(s, opp, ag[opp], ""); err != nil {
			return err
		}
	case outcome.ReturnSelfToOwnerHand:
		s.Players[ownerIdx].Hand = append(s.Players[ownerIdx].Hand, cip.Card)
		if err := enforceHandLimit(s, ownerIdx, ag[ownerIdx], ""); err != nil {
			return err
		}
	case outcome.SkipMarket:
		s.trash(cip.Card)
	default:
		s.addToMarket(cip)
		if err := enforceMarketCap(s, ownerIdx, ag[ownerIdx]); err != nil {
			return err
		}
	}

	if outcome.PendingSabotage {
		victim := Opponent(ownerIdx)
		if err := resolveEdgeChoice(s, victim, ag[victim], ChoiceSabotageEdge,
			"sabotage: choose an edge card to trash", func(c CardInPlay, _ Side) error {
				s.trash(c.Card)
				return nil
			}); err != nil {
			return err
		}
	}
	return nil
}

// resolveEdgeChoice asks playerIdx's agent to pick the left or right edge
// of their own row (offering only one option if the row has a single
// card), removes that card, and hands it with the side it occupied to
// apply.
func resolveEdgeChoice(s *GameState, playerIdx int, ag Agent, kind EffectChoiceKind, desc string, apply func(CardInPlay, Side) error) error {
	row := s.Players[playerIdx].Row
	if len(row) == 0 {
		return nil
	}
	opts := []int{int(SideLeft)}
	if len(row) > 1 {
		opts = append(opts, int(SideRight))
	}
	choice, err := ag.ChooseEffectOption(s, playerIdx, EffectChoice{
		Kind:        kind,
		Options:     opts,
		Description: desc,
	})
	if err != nil {
		return err
	}
	if !containsInt(opts, choice) {
		choice = opts[0]
	}
	side := Side(choice)
	idx := 0
	if side == SideRight {
		idx = len(row) - 1
	}
	cip := removeRowCard(s, playerIdx, idx)
	return apply(cip, side)
}

// enforcePendingHandLimitChecks resolves spec §4.1 step 7: any player
// whose hand limit check was armed this turn (hot_potato) discards down
// to cap, sparing the named card.
func enforcePendingHandLimitChecks(s *GameState, ag [2]Agent) error {
	for playerIdx, protected := range s.PendingHandLimitChecks {
		if err := enforceHandLimit(s, playerIdx, ag[playerIdx], protected); err != nil {
			return err
		}
		delete(s.PendingHandLimitChecks, playerIdx)
	}
	return nil
}

// runPendingCrossPlayerEffects resolves spec §4.1 step 9: tug_of_war and
// spite_module let the acting player's opponent choose one of their own
// edges to give up. The ejected card is routed through the push handler
// (its exit effect still fires) but no new center trigger is evaluated,
// since nothing was inserted. tug_of_war only applies if the opponent's
// row is full (three cards); spite_module applies whenever it is
// non-empty.
func runPendingCrossPlayerEffects(s *GameState, ag [2]Agent) error {
	current := s.CurrentPlayer
	opp := Opponent(current)

	if s.PendingTugOfWar {
		s.PendingTugOfWar = false
		if len(s.Players[opp].Row) == RowCap {
			if err := resolveEdgeChoice(s, opp, ag[opp], ChoiceTugOfWarEdge,
				"tug_of_war: choose an edge to give up", func(cip CardInPlay, side Side) error {
					return pushCard(s, cip, opp, side, ag)
				}); err != nil {
				return err
			}
		}
	}

	if s.PendingSpiteModule {
		s.PendingSpiteModule = false
		if err := resolveEdgeChoice(s, opp, ag[opp], ChoiceSpiteEdge,
			"spite_module: choose an edge to give up", func(cip CardInPlay, side Side) error {
				return pushCard(s, cip, opp, side, ag)
			}); err != nil {
			return err
		}
	}
	return nil
}

// runDrawPhase resolves spec §4.1 step 10: the acting player draws from
// the deck or the market. A market draw may be diverted to the opponent
// if false_flag armed a redirect on an earlier market draw this game.
func runDrawPhase(s *GameState, current int, ag [2]Agent) error {
	me := ag[current]

	if s.HasEmbargo(current) {
		return drawFromDeckInto(s, current, ag)
	}

	choice, err := me.ChooseDraw(s, current)
	if err != nil {
		return err
	}

	if choice == DrawDeck || len(s.Market) == 0 {
		return drawFromDeckInto(s, current, ag)
	}

	opts := make([]int, len(s.Market))
	for i := range s.Market {
		opts[i] = i
	}
	idx, err := me.ChooseEffectOption(s, current, EffectChoice{
		Kind:        ChoiceMarketDrawIndex,
		Options:     opts,
		Description: "choose a market card to draw",
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(s.Market) {
		idx = 0
	}
	removed := s.removeFromMarket(idx)

	dest := current
	if s.pendingRedirect >= 0 {
		dest = s.pendingRedirect
		s.pendingRedirect = -1
	}
	s.Players[dest].Hand = append(s.Players[dest].Hand, removed.Card)
	s.appendLog(LogDraw, dest, removed.Card.Name)

	ev := Event{Kind: EventCardDrawnMarket, PlayerIdx: current, CardName: removed.Card.Name}
	scanTraps(s, ev)

	return enforceHandLimit(s, dest, ag[dest], "")
}

func drawFromDeckInto(s *GameState, playerIdx int, ag [2]Agent) error {
	c := s.drawFromDeck()
	if c == nil {
		return nil
	}
	s.Players[playerIdx].Hand = append(s.Players[playerIdx].Hand, c)
	s.appendLog(LogDraw, playerIdx, c.Name)
	return enforceHandLimit(s, playerIdx, ag[playerIdx], "")
}

// scoreEndOfGame applies the only end-of-game scoring rule (spec §4.1
// step 13): each armed patience_circuit scores turn_counter minus the
// turn it first triggered, once, at game end.
func scoreEndOfGame(s *GameState) {
	for playerIdx := range s.Players {
		for i := range s.Players[playerIdx].Row {
			cip := &s.Players[playerIdx].Row[i]
			if cip.Card.Type == CardTypeCenter && cip.Card.Effect == EffectPatienceCircuit && cip.PatienceArmed {
				pts := s.TurnCounter - cip.PatienceTurn
				if pts > 0 {
					applyScore(s, playerIdx, cip.Card.Name, pts)
				}
			}
		}
	}
}

// checkTurnInvariants asserts the between-turns invariants of spec §3:
// row/market/hand caps and no stale active effect. Returns an
// *InvariantError (or panics, under Debug) on the first violation found.
func checkTurnInvariants(s *GameState) error {
	for i := range s.Players {
		if err := assertInvariant(len(s.Players[i].Row) <= RowCap, "row exceeds RowCap"); err != nil {
			return err
		}
		if err := assertInvariant(len(s.Players[i].Hand) <= HandCap, "hand exceeds HandCap"); err != nil {
			return err
		}
	}
	if err := assertInvariant(len(s.Market) <= MarketCap, "market exceeds MarketCap"); err != nil {
		return err
	}
	for _, ae := range s.ActiveEffects {
		if err := assertInvariant(ae.ExpiresTurn > s.TurnCounter, "stale active effect past its expiry"); err != nil {
			return err
		}
	}
	return nil
}

// advanceTurn moves play to the other player, incrementing TurnCounter
// only when it wraps back to player 0 (spec §4.1 step 14).
func advanceTurn(s *GameState) {
	s.CurrentPlayer = Opponent(s.CurrentPlayer)
	if s.CurrentPlayer == 0 {
		s.TurnCounter++
	}
}

// Winner reports the winning player index, or -1 for a draw, using
// score first and row card count as the tiebreaker (spec §4.1 end
// condition).
func Winner(s *GameState) int {
	p0, p1 := s.Players[0].Score, s.Players[1].Score
	if p0 != p1 {
		if p0 > p1 {
			return 0
		}
		return 1
	}
	r0, r1 := len(s.Players[0].Row), len(s.Players[1].Row)
	if r0 != r1 {
		if r0 > r1 {
			return 0
		}
		return 1
	}
	return -1
}
