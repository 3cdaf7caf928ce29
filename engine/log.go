package engine

// LogType is the closed set of structured log entry kinds, grounded on the
// original implementation's GameLogEntry/LogType pair. Distinct from
// operational logging (see the simulation and session packages, which use
// logrus): this log is part of game state, consumed incrementally by an
// interactive caller.
type LogType uint8

const (
	LogCardPlayed LogType = iota
	LogCardScored
	LogCardPushed
	LogTrapTriggered
	LogDraw
	LogTurnEnded
	LogGameEnded
)

// LogEntry is one human-readable record of something that happened during
// resolution.
type LogEntry struct {
	Turn      int
	Type      LogType
	PlayerIdx int
	Message   string
}

func (s *GameState) appendLog(t LogType, playerIdx int, message string) {
	s.Log = append(s.Log, LogEntry{
		Turn:      s.TurnCounter,
		Type:      t,
		PlayerIdx: playerIdx,
		Message:   message,
	})
}

// NewLogEntriesSince returns every log entry recorded after cursor,
// together with the cursor value to pass on the next call.
func (s *GameState) NewLogEntriesSince(cursor int) ([]LogEntry, int) {
	if cursor >= len(s.Log) {
		return nil, len(s.Log)
	}
	return s.Log[cursor:], len(s.Log)
}
