package agent

import (
	"context"
	"sync"
	"time"

	"github.com/shift/shiftgame/engine"
)

// WaitingKind is what an InteractiveAgent is currently suspended on.
type WaitingKind uint8

const (
	WaitingNone WaitingKind = iota
	WaitingAction
	WaitingDraw
	WaitingEffect
)

// InteractiveAgent suspends at each decision point until an external
// caller (an HTTP handler, a TUI, a test) submits the answer. Grounded
// on the teacher's session-suspension texture, translated from
// asyncio.Queue/Event into buffered channels and context.Context, the
// idiomatic Go equivalents for single-waiter handoff and timeout.
type InteractiveAgent struct {
	mu      sync.Mutex
	waiting WaitingKind
	choice  engine.EffectChoice

	actionCh chan engine.PlayAction
	drawCh   chan engine.DrawChoice
	optionCh chan int

	stateChanged chan struct{}
	timeout      time.Duration
}

// NewInteractiveAgent returns an InteractiveAgent whose suspension points
// time out after timeout (zero means DefaultInteractiveTimeout).
func NewInteractiveAgent(timeout time.Duration) *InteractiveAgent {
	if timeout <= 0 {
		timeout = DefaultInteractiveTimeout
	}
	return &InteractiveAgent{
		actionCh:     make(chan engine.PlayAction, 1),
		drawCh:       make(chan engine.DrawChoice, 1),
		optionCh:     make(chan int, 1),
		stateChanged: make(chan struct{}, 1),
		timeout:      timeout,
	}
}

// DefaultInteractiveTimeout mirrors the teacher's session idle timeout.
const DefaultInteractiveTimeout = 5 * time.Minute

func (a *InteractiveAgent) setWaiting(kind WaitingKind, choice engine.EffectChoice) {
	a.mu.Lock()
	a.waiting = kind
	a.choice = choice
	a.mu.Unlock()
	select {
	case a.stateChanged <- struct{}{}:
	default:
	}
}

// Waiting reports what the agent is currently suspended on, and the
// EffectChoice prompt if it's WaitingEffect.
func (a *InteractiveAgent) Waiting() (WaitingKind, engine.EffectChoice) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.waiting, a.choice
}

func (a *InteractiveAgent) ChooseAction(s *engine.GameState, me int) (engine.PlayAction, error) {
	a.setWaiting(WaitingAction, engine.EffectChoice{})
	defer a.setWaiting(WaitingNone, engine.EffectChoice{})

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	select {
	case action := <-a.actionCh:
		return action, nil
	case <-ctx.Done():
		return engine.PlayAction{}, engine.ErrTimeout
	}
}

func (a *InteractiveAgent) ChooseDraw(s *engine.GameState, me int) (engine.DrawChoice, error) {
	a.setWaiting(WaitingDraw, engine.EffectChoice{})
	defer a.setWaiting(WaitingNone, engine.EffectChoice{})

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	select {
	case choice := <-a.drawCh:
		return choice, nil
	case <-ctx.Done():
		return 0, engine.ErrTimeout
	}
}

func (a *InteractiveAgent) ChooseEffectOption(s *engine.GameState, me int, choice engine.EffectChoice) (int, error) {
	a.setWaiting(WaitingEffect, choice)
	defer a.setWaiting(WaitingNone, engine.EffectChoice{})

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	select {
	case option := <-a.optionCh:
		return option, nil
	case <-ctx.Done():
		return 0, engine.ErrTimeout
	}
}

// SubmitAction delivers an externally chosen PlayAction to a pending
// ChooseAction call.
func (a *InteractiveAgent) SubmitAction(ctx context.Context, action engine.PlayAction) error {
	select {
	case a.actionCh <- action:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SubmitDraw delivers an externally chosen DrawChoice to a pending
// ChooseDraw call.
func (a *InteractiveAgent) SubmitDraw(ctx context.Context, choice engine.DrawChoice) error {
	select {
	case a.drawCh <- choice:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SubmitEffectOption delivers an externally chosen option to a pending
// ChooseEffectOption call.
func (a *InteractiveAgent) SubmitEffectOption(ctx context.Context, option int) error {
	select {
	case a.optionCh <- option:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SubmitMarketDraw queues a market draw choice together with the market
// index in one atomic call, mirroring the teacher's paired
// submit_market_draw: a caller otherwise racing two separate submits
// could have the index land ahead of (or instead of) the draw-source
// choice it was meant to pair with.
func (a *InteractiveAgent) SubmitMarketDraw(ctx context.Context, marketIndex int) error {
	if err := a.SubmitDraw(ctx, engine.DrawMarket); err != nil {
		return err
	}
	return a.SubmitEffectOption(ctx, marketIndex)
}

// WaitForWaitingState blocks until the agent enters a waiting state, or
// ctx is done.
func (a *InteractiveAgent) WaitForWaitingState(ctx context.Context) bool {
	if kind, _ := a.Waiting(); kind != WaitingNone {
		return true
	}
	select {
	case <-a.stateChanged:
		kind, _ := a.Waiting()
		return kind != WaitingNone
	case <-ctx.Done():
		return false
	}
}
