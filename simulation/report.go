package simulation

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// cardReportHeader matches spec §6's card report columns exactly.
var cardReportHeader = []string{
	"card_name", "times_appeared", "times_in_winner_row", "times_in_loser_row", "win_rate", "impact",
}

// WriteCardReport writes one row per card in m to path: card_name,
// times_appeared, times_in_winner_row, times_in_loser_row, win_rate, and
// impact (win_rate - 0.5), sorted by name. Grounded on
// original_source/analytics/reports.py's export_to_csv; uses
// encoding/csv directly since no third-party CSV library appears
// anywhere in the retrieved pack.
func WriteCardReport(m SimulationMetrics, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("simulation: create report file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(cardReportHeader); err != nil {
		return fmt.Errorf("simulation: write report header: %w", err)
	}

	names := make([]string, 0, len(m.CardMetrics))
	for name := range m.CardMetrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cm := m.CardMetrics[name]
		row := []string{
			cm.Name,
			strconv.Itoa(cm.TimesAppeared),
			strconv.Itoa(cm.TimesInWinnerRow),
			strconv.Itoa(cm.TimesInLoserRow),
			strconv.FormatFloat(cm.WinRate, 'f', 4, 64),
			strconv.FormatFloat(cm.WinRate-0.5, 'f', 4, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("simulation: write report row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// PrintSummary writes a human-readable report of m in the teacher's plain
// key: value console-report style.
func PrintSummary(m SimulationMetrics) string {
	if m.TotalGames == 0 {
		return "no games recorded"
	}
	return fmt.Sprintf(
		"Games: %d\nP0 wins: %d (%.1f%%)\nP1 wins: %d (%.1f%%)\nTies: %d (%.1f%%)\n"+
			"First player advantage: %.1f%%\nAvg scores: P0=%.1f, P1=%.1f\nAvg margin: %.1f\nAvg turns: %.1f",
		m.TotalGames,
		m.Player0Wins, 100*float64(m.Player0Wins)/float64(m.TotalGames),
		m.Player1Wins, 100*float64(m.Player1Wins)/float64(m.TotalGames),
		m.Ties, 100*float64(m.Ties)/float64(m.TotalGames),
		100*m.FirstPlayerWinRate,
		m.AvgScoreP0, m.AvgScoreP1,
		m.AvgScoreMargin,
		m.AvgTurns,
	)
}
