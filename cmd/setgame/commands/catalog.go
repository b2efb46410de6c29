package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"setgame/internal/game/deck"
	"setgame/internal/render"
)

func catalogCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print all 81 cards with their keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cards := deck.New().Cards()
			if app.wantJSON() {
				return render.JSON(cmd.OutOrStdout(), cards.Keys())
			}

			r := app.renderer(cmd)
			for _, c := range cards {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", r.Card(c), c.Key()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
