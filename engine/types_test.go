package engine

import "testing"

func TestStatePoolReuse(t *testing.T) {
	s1 := GetState()
	s1.Players[0].Hand = append(s1.Players[0].Hand, &Card{Name: "calibration_unit"})
	PutState(s1)

	s2 := GetState()
	if len(s2.Players[0].Hand) != 0 {
		t.Errorf("Reset should clear hand, got %d cards", len(s2.Players[0].Hand))
	}
	PutState(s2)
}

func TestGameStateClone(t *testing.T) {
	s1 := GetState()
	defer PutState(s1)
	card := &Card{Name: "farewell_unit", Icon: IconGear, Type: CardTypeExit}
	s1.Players[0].Hand = append(s1.Players[0].Hand, card)
	s1.Deck = append(s1.Deck, card)

	s2 := s1.Clone()
	defer PutState(s2)

	s1.Players[0].Hand = append(s1.Players[0].Hand, &Card{Name: "one_shot"})
	if len(s2.Players[0].Hand) != 1 {
		t.Errorf("clone should not see later mutation of original, got %d cards", len(s2.Players[0].Hand))
	}
	if s2.Deck[0].Name != "farewell_unit" {
		t.Errorf("clone deck mismatch: got %q", s2.Deck[0].Name)
	}
}

func TestEffectiveIcons(t *testing.T) {
	base := &Card{Name: "x", Icon: IconGear}
	c := &CardInPlay{Card: base, FaceUp: true}
	if !c.HasIcon(IconGear) {
		t.Error("expected nominal icon to be effective")
	}

	c.MimickedIcon = IconHeart
	if c.HasIcon(IconGear) || !c.HasIcon(IconHeart) {
		t.Error("mimicked icon should override nominal icon")
	}

	c.AllIcons = true
	for _, i := range AllIconValues {
		if !c.HasIcon(i) {
			t.Errorf("all_icons should cover %v", i)
		}
	}

	c.FaceUp = false
	if len(c.EffectiveIcons()) != 0 {
		t.Error("face-down card should expose no effective icons")
	}
}

func TestHasEmbargoAndExpiry(t *testing.T) {
	s := GetState()
	defer PutState(s)
	s.TurnCounter = 5
	s.ActiveEffects = append(s.ActiveEffects, ActiveEffect{Kind: ActiveEmbargo, Owner: 1, ExpiresTurn: 6})

	if !s.HasEmbargo(1) {
		t.Error("expected embargo active for player 1")
	}
	if s.HasEmbargo(0) {
		t.Error("embargo should not apply to player 0")
	}

	s.TurnCounter = 6
	s.ExpireActiveEffects()
	if s.HasEmbargo(1) {
		t.Error("embargo should have expired once TurnCounter reached ExpiresTurn")
	}
}
