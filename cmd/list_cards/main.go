// Command list_cards dumps the full card catalogue, one line per card,
// for quick reference while tuning agents or reading simulation reports.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/shift/shiftgame/engine"
)

func typeName(t engine.CardType) string {
	switch t {
	case engine.CardTypeCenter:
		return "center"
	case engine.CardTypeExit:
		return "exit"
	case engine.CardTypeTrap:
		return "trap"
	default:
		return "unknown"
	}
}

type cardRow struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Type string `json:"type"`
	Text string `json:"text"`
}

func main() {
	jsonOut := flag.Bool("json", false, "emit the catalogue as a JSON array instead of plain text")
	flag.Parse()

	registry := engine.NewRegistry()
	cards := registry.All()

	if *jsonOut {
		rows := make([]cardRow, len(cards))
		for i, c := range cards {
			rows[i] = cardRow{Name: c.Name, Icon: c.Icon.String(), Type: typeName(c.Type), Text: c.Text}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	for _, c := range cards {
		fmt.Printf("%-20s %-7s %-6s %s\n", c.Name, typeName(c.Type), c.Icon, c.Text)
	}
}
