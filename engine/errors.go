package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors per the taxonomy in spec §7. Invalid actions are
// corrected in place by the resolver and never reach a caller as an
// error; these are for the failure modes that must abort a game.
var (
	// ErrTimeout is returned when an interactive agent fails to answer a
	// suspension point within its deadline.
	ErrTimeout = errors.New("engine: timed out awaiting agent input")

	// ErrInvariant marks an internal invariant violation (row > 3,
	// market > 3, score underflow). These panic when Debug is set (see
	// assertInvariant); otherwise PlayTurn returns them as this error,
	// and the simulation runner records it per game, so one game's bug
	// does not stop a batch.
	ErrInvariant = errors.New("engine: internal invariant violated")
)

// InvariantError wraps ErrInvariant with the specific condition that
// failed, for logging and test assertions.
type InvariantError struct {
	Condition string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("engine: invariant violated: %s", e.Condition)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// Debug gates whether assertInvariant panics (test/debug builds) or
// returns an *InvariantError (release/simulation builds), per spec §7:
// "implementations must make these panics visible during testing and
// must never silently mask them in release builds."
var Debug = false

// assertInvariant checks cond and, if false, either panics (Debug) or
// returns a non-nil error describing the violated condition.
func assertInvariant(cond bool, description string) error {
	if cond {
		return nil
	}
	if Debug {
		panic(&InvariantError{Condition: description})
	}
	return &InvariantError{Condition: description}
}
