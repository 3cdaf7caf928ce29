package simulation

import "sort"

// CardMetrics tracks one named card's performance across a batch of
// games. Grounded on original_source/analytics/metrics.py's CardMetrics.
type CardMetrics struct {
	Name             string
	TimesAppeared    int
	TimesInWinnerRow int
	TimesInLoserRow  int
	WinRate          float64 // TimesInWinnerRow / (TimesInWinnerRow + TimesInLoserRow)
}

// SimulationMetrics aggregates a batch of GameRecords. Grounded on
// original_source/analytics/metrics.py's SimulationMetrics and
// calculate_metrics.
type SimulationMetrics struct {
	TotalGames         int
	Player0Wins        int
	Player1Wins        int
	Ties               int
	AvgScoreP0         float64
	AvgScoreP1         float64
	AvgScoreMargin     float64
	AvgTurns           float64
	FirstPlayerWinRate float64
	CardMetrics        map[string]*CardMetrics
}

// CalculateMetrics reduces records into a SimulationMetrics. Returns the
// zero value if records is empty.
func CalculateMetrics(records []GameRecord) SimulationMetrics {
	if len(records) == 0 {
		return SimulationMetrics{}
	}

	m := SimulationMetrics{TotalGames: len(records), CardMetrics: make(map[string]*CardMetrics)}

	var sumP0, sumP1, sumMargin, sumTurns float64
	var position0Wins, position1Wins int
	for _, r := range records {
		switch r.Winner {
		case 0:
			m.Player0Wins++
		case 1:
			m.Player1Wins++
		default:
			m.Ties++
		}

		switch r.PositionWinner {
		case 0:
			position0Wins++
		case 1:
			position1Wins++
		}

		sumP0 += float64(r.Player0Score)
		sumP1 += float64(r.Player1Score)
		margin := r.Player0Score - r.Player1Score
		if margin < 0 {
			margin = -margin
		}
		sumMargin += float64(margin)
		sumTurns += float64(r.Turns)

		// Card performance is tracked by seat, not by agent: whichever
		// seat's row ended up on the winning side, regardless of which
		// agent (or swap) occupied it this game.
		for p, row := range r.FinalRow {
			for _, name := range row {
				cm := m.cardMetrics(name)
				cm.TimesAppeared++
				if r.PositionWinner == p {
					cm.TimesInWinnerRow++
				} else if r.PositionWinner == 1-p {
					cm.TimesInLoserRow++
				}
			}
		}
	}

	n := float64(len(records))
	m.AvgScoreP0 = sumP0 / n
	m.AvgScoreP1 = sumP1 / n
	m.AvgScoreMargin = sumMargin / n
	m.AvgTurns = sumTurns / n

	// First-player advantage is a property of seating, not of which
	// agent is stronger, so it is computed from PositionWinner rather
	// than Player0Wins/Player1Wins (spec §4.5's entire point: isolate
	// the seat effect from agent strength via the per-game coin flip).
	decisivePositions := position0Wins + position1Wins
	if decisivePositions > 0 {
		m.FirstPlayerWinRate = float64(position0Wins) / float64(decisivePositions)
	} else {
		m.FirstPlayerWinRate = 0.5
	}

	for _, cm := range m.CardMetrics {
		decisiveAppearances := cm.TimesInWinnerRow + cm.TimesInLoserRow
		if decisiveAppearances > 0 {
			cm.WinRate = float64(cm.TimesInWinnerRow) / float64(decisiveAppearances)
		} else {
			cm.WinRate = 0.5
		}
	}

	return m
}

func (m *SimulationMetrics) cardMetrics(name string) *CardMetrics {
	cm, ok := m.CardMetrics[name]
	if !ok {
		cm = &CardMetrics{Name: name}
		m.CardMetrics[name] = cm
	}
	return cm
}

// RankBy is the metric get_top_cards/get_bottom_cards sorts by.
type RankBy int

const (
	ByWinRate RankBy = iota
	ByTimesAppeared
)

// TopCards returns the n highest-ranked cards by by, excluding any card
// with fewer than minAppearances appearances.
func TopCards(m SimulationMetrics, n int, by RankBy, minAppearances int) []*CardMetrics {
	ranked := rankedCards(m, by, minAppearances)
	sort.Slice(ranked, func(i, j int) bool { return less(ranked, by)(j, i) })
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// BottomCards returns the n lowest-ranked cards by by, excluding any card
// with fewer than minAppearances appearances.
func BottomCards(m SimulationMetrics, n int, by RankBy, minAppearances int) []*CardMetrics {
	ranked := rankedCards(m, by, minAppearances)
	sort.Slice(ranked, less(ranked, by))
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

func rankedCards(m SimulationMetrics, by RankBy, minAppearances int) []*CardMetrics {
	filtered := make([]*CardMetrics, 0, len(m.CardMetrics))
	for _, cm := range m.CardMetrics {
		if cm.TimesAppeared >= minAppearances {
			filtered = append(filtered, cm)
		}
	}
	return filtered
}

func less(cards []*CardMetrics, by RankBy) func(i, j int) bool {
	return func(i, j int) bool {
		if by == ByTimesAppeared {
			return cards[i].TimesAppeared < cards[j].TimesAppeared
		}
		return cards[i].WinRate < cards[j].WinRate
	}
}
