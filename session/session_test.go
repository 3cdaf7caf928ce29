package session

import (
	"context"
	"testing"
	"time"

	"github.com/shift/shiftgame/engine"
)

func TestNewGameSessionRejectsUnknownOpponent(t *testing.T) {
	reg := engine.NewRegistry()
	if _, err := NewGameSession(reg, OpponentKind("nonsense"), 1, 10); err != ErrUnknownOpponent {
		t.Fatalf("expected ErrUnknownOpponent, got %v", err)
	}
}

func TestGameSessionRunsAgainstRandomOpponent(t *testing.T) {
	reg := engine.NewRegistry()
	gs, err := NewGameSession(reg, OpponentRandom, 7, 4)
	if err != nil {
		t.Fatalf("NewGameSession returned error: %v", err)
	}
	gs.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if !gs.WaitForReady(ctx) {
		t.Fatal("expected interactive agent to reach a waiting state")
	}

	for i := 0; i < 4; i++ {
		state := gs.State()
		if len(state.Players[0].Hand) == 0 {
			gs.Stop()
			break
		}
		submitCtx, submitCancel := context.WithTimeout(context.Background(), time.Second)
		err := gs.SubmitAction(submitCtx, engine.PlayAction{HandIndex: 0, Side: engine.SideLeft})
		submitCancel()
		if err != nil {
			break
		}

		drawCtx, drawCancel := context.WithTimeout(context.Background(), time.Second)
		waited := gs.WaitForReady(drawCtx)
		drawCancel()
		if !waited {
			break
		}
		drawSubmitCtx, drawSubmitCancel := context.WithTimeout(context.Background(), time.Second)
		_ = gs.SubmitDraw(drawSubmitCtx, engine.DrawDeck)
		drawSubmitCancel()
	}

	select {
	case <-gs.Done():
	case <-time.After(3 * time.Second):
	}

	if w := gs.Winner(); w < -1 || w > 1 {
		t.Fatalf("invalid winner %d", w)
	}
}

func TestManagerCreateGetDelete(t *testing.T) {
	reg := engine.NewRegistry()
	m := NewManager(reg)

	gs, err := m.CreateGame(OpponentGreedy, 11, 6, 2*time.Second)
	if err != nil {
		t.Fatalf("CreateGame returned error: %v", err)
	}

	got, ok := m.Get(gs.GameID)
	if !ok || got != gs {
		t.Fatalf("expected Get to return the created session")
	}

	if !m.Delete(gs.GameID) {
		t.Fatal("expected Delete to report the session existed")
	}
	if _, ok := m.Get(gs.GameID); ok {
		t.Fatal("expected session to be gone after Delete")
	}
}

func TestManagerCleanupFinishedRemovesStoppedSessions(t *testing.T) {
	reg := engine.NewRegistry()
	m := NewManager(reg)

	gs, err := m.CreateGame(OpponentRandom, 3, 1, 2*time.Second)
	if err != nil {
		t.Fatalf("CreateGame returned error: %v", err)
	}
	gs.Stop()

	select {
	case <-gs.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("expected turn loop to exit after Stop")
	}

	m.CleanupFinished()
	if _, ok := m.Get(gs.GameID); ok {
		t.Fatal("expected finished session to be cleaned up")
	}
}
