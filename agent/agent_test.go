package agent

import (
	"context"
	"testing"
	"time"

	"github.com/shift/shiftgame/engine"
)

func newTestState() *engine.GameState {
	s := engine.GetState()
	s.MaxTurns = 10
	return s
}

func TestRandomAgentChoosesWithinHand(t *testing.T) {
	s := newTestState()
	defer engine.PutState(s)

	s.Players[0].Hand = append(s.Players[0].Hand,
		&engine.Card{Name: "a", Type: engine.CardTypeCenter},
		&engine.Card{Name: "b", Type: engine.CardTypeCenter},
	)

	ra := NewRandomAgent(1)
	for i := 0; i < 20; i++ {
		action, err := ra.ChooseAction(s, 0)
		if err != nil {
			t.Fatalf("ChooseAction returned error: %v", err)
		}
		if action.HandIndex < 0 || action.HandIndex >= len(s.Players[0].Hand) {
			t.Fatalf("hand index %d out of range", action.HandIndex)
		}
	}
}

func TestRandomAgentDrawPrefersAvailableSource(t *testing.T) {
	s := newTestState()
	defer engine.PutState(s)

	ra := NewRandomAgent(2)
	// Neither deck nor market has cards except market.
	s.Market = append(s.Market, engine.CardInPlay{Card: &engine.Card{Name: "m"}, FaceUp: true})
	choice, err := ra.ChooseDraw(s, 0)
	if err != nil {
		t.Fatalf("ChooseDraw returned error: %v", err)
	}
	if choice != engine.DrawMarket {
		t.Fatalf("expected forced market draw, got %v", choice)
	}
}

func TestGreedyAgentPrefersScoringPlay(t *testing.T) {
	s := newTestState()
	defer engine.PutState(s)

	// A two-card row; the side the filler is played to decides whether
	// one_shot (score 5) or calibration_unit (score 2) lands in center.
	s.Players[0].Row = []engine.CardInPlay{
		{Card: &engine.Card{Name: "left", Type: engine.CardTypeCenter, Effect: engine.EffectCalibrationUnit}, FaceUp: true},
		{Card: &engine.Card{Name: "right", Type: engine.CardTypeCenter, Effect: engine.EffectOneShot}, FaceUp: true},
	}
	s.Players[0].Hand = append(s.Players[0].Hand,
		&engine.Card{Name: "filler", Type: engine.CardTypeCenter, Effect: engine.EffectCalibrationUnit},
	)

	ga := NewGreedyAgent(3)
	action, err := ga.ChooseAction(s, 0)
	if err != nil {
		t.Fatalf("ChooseAction returned error: %v", err)
	}
	// Playing to the right appends the new card at the edge, leaving
	// "right" (one_shot, score 5) as center; playing to the left
	// prepends, leaving "left" (calibration_unit, score 2) as center.
	// Greedy should prefer the higher-scoring outcome: side right.
	if action.Side != engine.SideRight {
		t.Fatalf("expected greedy to prefer the higher-scoring center outcome (side right), got %v", action.Side)
	}
}

func TestGreedyAgentChoosesHighestValueMarketCard(t *testing.T) {
	s := newTestState()
	defer engine.PutState(s)

	s.Market = []engine.CardInPlay{
		{Card: &engine.Card{Name: "hollow_frame"}, FaceUp: true},
		{Card: &engine.Card{Name: "one_shot"}, FaceUp: true},
		{Card: &engine.Card{Name: "donation_bot"}, FaceUp: true},
	}

	ga := NewGreedyAgent(4)
	idx, err := ga.ChooseEffectOption(s, 0, engine.EffectChoice{
		Kind:    engine.ChoiceMarketDrawIndex,
		Options: []int{0, 1, 2},
	})
	if err != nil {
		t.Fatalf("ChooseEffectOption returned error: %v", err)
	}
	if idx != 1 {
		t.Fatalf("expected one_shot (idx 1, highest value) chosen, got %d", idx)
	}
}

func TestLookaheadAgentReturnsLegalAction(t *testing.T) {
	s := newTestState()
	defer engine.PutState(s)

	s.Players[0].Hand = append(s.Players[0].Hand,
		&engine.Card{Name: "a", Type: engine.CardTypeCenter, Effect: engine.EffectCalibrationUnit},
	)
	s.Deck = append(s.Deck, &engine.Card{Name: "spare", Type: engine.CardTypeCenter, Effect: engine.EffectCalibrationUnit})

	la := NewLookaheadAgent(5, 1)
	action, err := la.ChooseAction(s, 0)
	if err != nil {
		t.Fatalf("ChooseAction returned error: %v", err)
	}
	if action.HandIndex != 0 {
		t.Fatalf("expected the only hand card to be chosen, got index %d", action.HandIndex)
	}
	// ChooseAction must not have mutated the real state via its internal
	// clone-and-simulate probes.
	if len(s.Players[0].Hand) != 1 {
		t.Fatalf("expected ChooseAction to leave real state untouched, got hand %+v", s.Players[0].Hand)
	}
}

func TestInteractiveAgentRoundTripsAction(t *testing.T) {
	ia := NewInteractiveAgent(2 * time.Second)
	s := newTestState()
	defer engine.PutState(s)

	done := make(chan engine.PlayAction, 1)
	go func() {
		action, err := ia.ChooseAction(s, 0)
		if err != nil {
			t.Errorf("ChooseAction returned error: %v", err)
		}
		done <- action
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if !ia.WaitForWaitingState(ctx) {
		t.Fatal("expected agent to report waiting for an action")
	}
	want := engine.PlayAction{HandIndex: 1, Side: engine.SideRight}
	if err := ia.SubmitAction(ctx, want); err != nil {
		t.Fatalf("SubmitAction returned error: %v", err)
	}

	select {
	case got := <-done:
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ChooseAction to return")
	}
}

func TestInteractiveAgentTimesOut(t *testing.T) {
	ia := NewInteractiveAgent(10 * time.Millisecond)
	s := newTestState()
	defer engine.PutState(s)

	if _, err := ia.ChooseDraw(s, 0); err != engine.ErrTimeout {
		t.Fatalf("expected engine.ErrTimeout, got %v", err)
	}
}
