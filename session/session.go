// Package session runs interactive games against the engine on a
// background goroutine, exposing the InteractiveAgent's suspend points
// as submit/query methods. Grounded on the retrieved original's
// GameSession/SessionManager, translated from an asyncio task per game
// into a goroutine per game and from a dict-of-sessions into a
// mutex-guarded map.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shift/shiftgame/agent"
	"github.com/shift/shiftgame/engine"
)

// OpponentKind names the bot the interactive player faces.
type OpponentKind string

const (
	OpponentRandom    OpponentKind = "random"
	OpponentGreedy    OpponentKind = "greedy"
	OpponentLookahead OpponentKind = "lookahead"
)

// ErrUnknownOpponent is returned by NewGameSession for an OpponentKind
// outside OpponentRandom/OpponentGreedy/OpponentLookahead.
var ErrUnknownOpponent = errors.New("session: unknown opponent kind")

// LookaheadDepth is the ply depth used when opponent is OpponentLookahead.
const LookaheadDepth = 2

// GameSession runs a single interactive game: player 0 is always the
// InteractiveAgent, player 1 the chosen bot. The turn loop runs on its
// own goroutine started by Start.
type GameSession struct {
	GameID string

	registry    *engine.Registry
	interactive *agent.InteractiveAgent
	opponent    engine.Agent

	mu    sync.Mutex
	state *engine.GameState
	err   error

	done chan struct{}
}

// NewGameSession deals a fresh game and wires up the interactive/bot
// agent pair. It does not start the turn loop; call Start for that.
func NewGameSession(registry *engine.Registry, opponent OpponentKind, seed uint64, maxTurns int) (*GameSession, error) {
	var bot engine.Agent
	switch opponent {
	case OpponentRandom:
		bot = agent.NewRandomAgent(int64(seed))
	case OpponentGreedy:
		bot = agent.NewGreedyAgent(int64(seed))
	case OpponentLookahead:
		bot = agent.NewLookaheadAgent(int64(seed), LookaheadDepth)
	default:
		return nil, ErrUnknownOpponent
	}

	return &GameSession{
		GameID:      uuid.NewString(),
		registry:    registry,
		interactive: agent.NewInteractiveAgent(0),
		opponent:    bot,
		state:       engine.NewGame(registry, seed, maxTurns),
		done:        make(chan struct{}),
	}, nil
}

// Start runs the turn loop in the background until the game ends or the
// interactive agent times out waiting for input.
func (gs *GameSession) Start() {
	go gs.run()
}

func (gs *GameSession) run() {
	log := logrus.WithField("game_id", gs.GameID)
	log.Info("session started")
	defer close(gs.done)

	ag := [2]engine.Agent{gs.interactive, gs.opponent}
	for {
		gs.mu.Lock()
		over := gs.state.GameOver
		gs.mu.Unlock()
		if over {
			log.Info("session stopped")
			return
		}

		err := engine.PlayTurn(gs.state, ag)

		gs.mu.Lock()
		if err != nil {
			gs.err = err
			gs.mu.Unlock()
			log.WithError(err).Warn("session ended with error")
			return
		}
		gameOver := gs.state.GameOver
		gs.mu.Unlock()
		if gameOver {
			log.WithField("winner", gs.Winner()).Info("session finished")
			return
		}
	}
}

// State returns a deep copy of the current game state, safe to read
// without racing the turn loop.
func (gs *GameSession) State() *engine.GameState {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	c := gs.state.Clone()
	c.Log = append(c.Log, gs.state.Log...)
	return c
}

// Err returns any error the turn loop terminated with.
func (gs *GameSession) Err() error {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.err
}

// Done is closed once the turn loop has returned, whether by game-over
// or by error.
func (gs *GameSession) Done() <-chan struct{} {
	return gs.done
}

// Winner reports the winning player index, or -1 for a draw/unfinished
// game.
func (gs *GameSession) Winner() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if !gs.state.GameOver {
		return -1
	}
	return engine.Winner(gs.state)
}

// Waiting reports what the interactive agent is currently suspended on.
func (gs *GameSession) Waiting() (agent.WaitingKind, engine.EffectChoice) {
	return gs.interactive.Waiting()
}

// WaitForReady blocks until the interactive agent is suspended awaiting
// input, or ctx is done.
func (gs *GameSession) WaitForReady(ctx context.Context) bool {
	return gs.interactive.WaitForWaitingState(ctx)
}

// SubmitAction delivers a play action to a pending ChooseAction call.
func (gs *GameSession) SubmitAction(ctx context.Context, action engine.PlayAction) error {
	return gs.interactive.SubmitAction(ctx, action)
}

// SubmitDraw delivers a draw-source choice to a pending ChooseDraw call.
func (gs *GameSession) SubmitDraw(ctx context.Context, choice engine.DrawChoice) error {
	return gs.interactive.SubmitDraw(ctx, choice)
}

// SubmitMarketDraw atomically submits a market draw together with the
// chosen market index.
func (gs *GameSession) SubmitMarketDraw(ctx context.Context, marketIndex int) error {
	return gs.interactive.SubmitMarketDraw(ctx, marketIndex)
}

// SubmitEffectOption delivers an externally chosen option to a pending
// ChooseEffectOption call.
func (gs *GameSession) SubmitEffectOption(ctx context.Context, option int) error {
	return gs.interactive.SubmitEffectOption(ctx, option)
}

// Stop ends the game session without waiting for natural completion.
// The in-flight PlayTurn call (if any) is left to time out on its own;
// there is no mid-turn cancellation point in the resolver.
func (gs *GameSession) Stop() {
	gs.mu.Lock()
	gs.state.GameOver = true
	gs.mu.Unlock()
}

// Manager tracks active GameSessions by ID, grounded on the retrieved
// original's global SessionManager minus its single-process-global
// instance (callers construct and hold their own Manager).
type Manager struct {
	registry *engine.Registry

	mu       sync.Mutex
	sessions map[string]*GameSession
}

// NewManager returns an empty Manager sharing registry across every
// session it creates.
func NewManager(registry *engine.Registry) *Manager {
	return &Manager{registry: registry, sessions: make(map[string]*GameSession)}
}

// CreateGame deals a new game, starts its turn loop, and waits (up to
// readyTimeout) for the interactive agent to reach its first suspension
// point before returning.
func (m *Manager) CreateGame(opponent OpponentKind, seed uint64, maxTurns int, readyTimeout time.Duration) (*GameSession, error) {
	gs, err := NewGameSession(m.registry, opponent, seed, maxTurns)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[gs.GameID] = gs
	m.mu.Unlock()

	gs.Start()

	ctx, cancel := context.WithTimeout(context.Background(), readyTimeout)
	defer cancel()
	gs.WaitForReady(ctx)

	return gs, nil
}

// Get looks up a session by ID.
func (m *Manager) Get(gameID string) (*GameSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	gs, ok := m.sessions[gameID]
	return gs, ok
}

// Delete stops and removes a session, reporting whether it existed.
func (m *Manager) Delete(gameID string) bool {
	m.mu.Lock()
	gs, ok := m.sessions[gameID]
	if ok {
		delete(m.sessions, gameID)
	}
	m.mu.Unlock()
	if ok {
		gs.Stop()
	}
	return ok
}

// CleanupFinished removes every session whose turn loop has already
// returned.
func (m *Manager) CleanupFinished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, gs := range m.sessions {
		select {
		case <-gs.Done():
			delete(m.sessions, id)
		default:
		}
	}
}
