package main

import (
	"github.com/spf13/cobra"

	"github.com/mprisctl/mprisctl/internal/core"
)

func playersCommand(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List running players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			players, err := app.bus.ListPlayers(cmd.Context())
			if err != nil {
				return core.WrapError(core.ExitRemote, "list players", err)
			}
			return app.printer.Print(core.PlayersResult{Players: players})
		},
	}
}
