package output

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/mprisctl/mprisctl/internal/core"
	"github.com/mprisctl/mprisctl/pkg/mpris"
)

// HumanPrinter prints human-readable output.
type HumanPrinter struct{}

// Print renders human output.
func (HumanPrinter) Print(v any) error {
	switch data := v.(type) {
	case core.PlayersResult:
		return printPlayers(data)
	case core.Chunk:
		if data == "" {
			// A fully degraded report is valid and prints nothing.
			return nil
		}
		_, err := fmt.Fprintln(os.Stdout, string(data))
		return err
	default:
		_, err := fmt.Fprintln(os.Stdout, data)
		return err
	}
}

func printPlayers(result core.PlayersResult) error {
	rows := pterm.TableData{{"PLAYER", "SERVICE"}}
	for _, player := range result.Players {
		rows = append(rows, []string{player, mpris.ServicePrefix + player})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
