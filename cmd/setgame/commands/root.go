package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"setgame/internal/config"
	"setgame/internal/game"
	"setgame/internal/platform/logger"
	"setgame/internal/render"
)

// appContext is filled in by the root PersistentPreRunE.
type appContext struct {
	cfg *config.Config
	log *slog.Logger
}

func (a *appContext) renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(cmd.OutOrStdout(),
		render.WithColumns(a.cfg.Output.Columns),
		render.WithColorMode(a.cfg.Output.Color))
}

func (a *appContext) wantJSON() bool {
	return a.cfg.Output.Format == "json"
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree with its own state.
func NewRootCmd() *cobra.Command {
	var configPath string
	app := &appContext{}

	root := &cobra.Command{
		Use:          "setgame",
		Short:        "Deal a Set board and list every set on it",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			app.cfg = cfg
			app.log = logger.SetupWithWriter(cfg.Log, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeal(cmd, app)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (yaml, toml or json)")
	pf.Int("columns", render.DefaultColumns, "cards per board row")
	pf.String("color", render.ColorAuto, "color output: auto, always or never")
	pf.String("format", "text", "output format: text or json")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")

	root.Flags().Int("board-size", game.DefaultBoardSize, "number of cards dealt to the board")
	root.Flags().Uint64("seed", 0, "shuffle seed (random when unset)")

	root.AddCommand(findCmd(app), catalogCmd(app))
	return root
}

func runDeal(cmd *cobra.Command, app *appContext) error {
	opts := []game.Option{
		game.WithBoardSize(app.cfg.Game.BoardSize),
		game.WithLogger(app.log),
	}
	if app.cfg.Game.Seed != nil {
		opts = append(opts, game.WithSeed(*app.cfg.Game.Seed))
	}

	g := game.New(opts...)
	app.log.Info("game dealt",
		"game_id", g.ID().String(),
		"seed", g.Seed(),
		"board_size", len(g.Board()),
		"remaining", g.Remaining())

	if app.wantJSON() {
		return render.JSON(cmd.OutOrStdout(), g.Snapshot())
	}

	r := app.renderer(cmd)
	if err := r.Board(g.Board()); err != nil {
		return err
	}
	n, err := r.Sets(g.Sets())
	if err != nil {
		return err
	}
	app.log.Info("sets listed", "game_id", g.ID().String(), "count", n)
	return nil
}
