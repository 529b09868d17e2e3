package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/benbeisheim/checkers-backend/internal/config"
	"github.com/benbeisheim/checkers-backend/internal/controller"
	"github.com/benbeisheim/checkers-backend/internal/logging"
	"github.com/benbeisheim/checkers-backend/internal/middleware"
	"github.com/benbeisheim/checkers-backend/internal/model"
	"github.com/benbeisheim/checkers-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	cfg := config.Default()

	root := &cobra.Command{
		Use:          "checkers",
		Short:        "Checkers rule engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			logging.Configure(cfg.LogLevel, cfg.PrettyLogs)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a yaml config file")

	root.AddCommand(newServeCmd(&cfg), newMovesCmd(), newPlayCmd())
	return root
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp(*cfg)

			log.Info().Str("addr", cfg.Addr).Msg("listening")
			return app.Listen(cfg.Addr)
		},
	}
}

func newApp(cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "checkers",
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Origins(),
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.RequestIDHeader,
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(middleware.EnsureRequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestID} ${status} ${method} ${path} ${latency}\n",
	}))

	// Initialize services
	analysisService := service.NewAnalysisService()

	// Initialize controllers
	analysisController := controller.NewAnalysisController(analysisService)

	api := app.Group("/api")
	analysisController.Register(api)

	return app
}

func newMovesCmd() *cobra.Command {
	var layout, player string

	cmd := &cobra.Command{
		Use:   "moves",
		Short: "Print the legal moves for a position as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			as := service.NewAnalysisService()

			var result service.Analysis
			var err error
			if layout == "" {
				result, err = as.Analyze(model.Layout(model.NewBoard()), player)
			} else {
				result, err = as.AnalyzeString(layout, player)
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().StringVarP(&layout, "layout", "l", "", `position such as "f23=wK,f34=rP" (default: starting position)`)
	cmd.Flags().StringVarP(&player, "player", "p", "", "player to move: white or red (default: white)")
	return cmd
}

func newPlayCmd() *cobra.Command {
	var layout, player string
	var maxPlies int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the first legal option for both sides and print each move",
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := newGame(layout, player)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for ply := 1; ply <= maxPlies; ply++ {
				opts := game.PossibleMoves()
				if opts.GameOver() {
					break
				}
				move := opts.Moves[0].Chains[0]
				mover := game.CurrentPlayer()
				if err := game.ApplyMove(move); err != nil {
					return err
				}
				fmt.Fprintf(out, "%3d %-5s %s\n", ply, mover, step(move))
			}

			if winner := game.Winner(); winner != model.NoPlayer {
				fmt.Fprintf(out, "winner: %s\n", winner)
			} else {
				fmt.Fprintf(out, "no winner after %d plies\n", maxPlies)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&layout, "layout", "l", "", "starting position (default: standard)")
	cmd.Flags().StringVarP(&player, "player", "p", "white", "player to move first")
	cmd.Flags().IntVar(&maxPlies, "max-plies", 200, "stop after this many moves")
	return cmd
}

func newGame(layout, player string) (*model.Game, error) {
	toMove, err := model.ParsePlayer(player)
	if err != nil {
		return nil, err
	}
	board := model.NewBoard()
	if layout != "" {
		if board, err = model.ParseLayoutString(layout); err != nil {
			return nil, err
		}
	}
	return model.NewGame(model.WithBoard(board), model.WithStartingPlayer(toMove)), nil
}

// step renders a single link of a chain.
func step(m *model.Move) string {
	s := fmt.Sprintf("%s-%s", m.From(), m.Destination)
	if m.IsCapture() {
		s += fmt.Sprintf("x%s", m.Captured.Position)
	}
	return s
}
