package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"setgame/internal/game/card"
	"setgame/internal/game/finder"
	"setgame/internal/render"
)

type findResult struct {
	Board card.Pile       `json:"board"`
	Sets  []finder.Triple `json:"sets"`
}

func findCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find KEY...",
		Short: "List the sets among the given cards",
		Long: `Builds a board from card keys of the form shape:shading:color:count,
for example oval:striped:green:2, and lists every set on it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := parseBoard(args)
			if err != nil {
				return err
			}

			if app.wantJSON() {
				sets := finder.Collect(board)
				if sets == nil {
					sets = []finder.Triple{}
				}
				return render.JSON(cmd.OutOrStdout(), findResult{Board: board, Sets: sets})
			}

			r := app.renderer(cmd)
			if err := r.Board(board); err != nil {
				return err
			}
			n, err := r.Sets(finder.Sets(board))
			if err != nil {
				return err
			}
			app.log.Debug("sets listed", "board_size", len(board), "count", n)
			return nil
		},
	}
	return cmd
}

// parseBoard rejects unknown keys and repeated cards; a real board never
// holds the same card twice.
func parseBoard(keys []string) (card.Pile, error) {
	board := make(card.Pile, 0, len(keys))
	for _, key := range keys {
		c, err := card.GetCard(key)
		if err != nil {
			return nil, err
		}
		if board.Contains(c) {
			return nil, fmt.Errorf("card %s appears more than once", c)
		}
		board = append(board, c)
	}
	return board, nil
}
