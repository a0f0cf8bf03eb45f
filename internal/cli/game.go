package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/upwords-go/internal/model"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameCheckCmd())
	cmd.AddCommand(newGamePlayCmd())
	cmd.AddCommand(newGamePassCmd())
	cmd.AddCommand(newGameExchangeCmd())
	cmd.AddCommand(newGameUndoCmd())
	cmd.AddCommand(newGameVerifyCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <player> [player...]",
		Short: "Start a game and deal racks",
		Long:  "Start a game. Players may be given as separate arguments or comma separated.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			players := model.ParsePlayerIDs(strings.Join(args, ","))

			game, err := app.GameController.CreateGame(cmd.Context(), players)
			if err != nil {
				return err
			}

			return printGame(cmd, game, game.CurrentPlayerID())
		},
	}
}

func newGameShowCmd() *cobra.Command {
	var viewer string

	cmd := &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show a game's board and scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := app.GameController.GetGame(cmd.Context(), model.GameID(args[0]))
			if err != nil {
				return err
			}

			player := model.PlayerID(viewer)
			if player == "" && !game.IsComplete() {
				player = game.CurrentPlayerID()
			}
			return printGame(cmd, game, player)
		},
	}

	cmd.Flags().StringVar(&viewer, "player", "", "Show this player's rack (default: player to move)")
	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored games, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.GameController.ListGames(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(summaries)
			return nil
		},
	}
}

func newGameCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <game-id> <player> " + playArgsUsage,
		Short: "Check a play from the player's rack without making it",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			play, err := parsePlay(args[2:])
			if err != nil {
				return err
			}
			if err := requireDictionary(cmd.Context()); err != nil {
				return err
			}

			result, err := app.GameController.CheckMove(cmd.Context(), model.GameID(args[0]), model.PlayerID(args[1]), play)
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(PlayView{Play: play, Result: result})
			return nil
		},
	}
}

func newGamePlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <game-id> <player> " + playArgsUsage,
		Short: "Play tiles from the player's rack",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			play, err := parsePlay(args[2:])
			if err != nil {
				return err
			}
			if err := requireDictionary(cmd.Context()); err != nil {
				return err
			}

			gameID := model.GameID(args[0])
			result, err := app.GameController.PlayMove(cmd.Context(), gameID, model.PlayerID(args[1]), play)
			if err != nil {
				return err
			}

			view := PlayView{Play: play, Result: result}
			if result.IsValid {
				game, err := app.GameController.GetGame(cmd.Context(), gameID)
				if err != nil {
					return err
				}
				view.Board = &game.Board
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(view)
			return nil
		},
	}
}

func newGamePassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pass <game-id> <player>",
		Short: "End the player's turn without playing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := app.GameController.Pass(cmd.Context(), model.GameID(args[0]), model.PlayerID(args[1]))
			if err != nil {
				return err
			}
			return printLastTurn(cmd, game, "Passed")
		},
	}
}

func newGameExchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange <game-id> <player> <letters>",
		Short: "Swap tiles with the bag and end the turn",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := app.GameController.Exchange(cmd.Context(), model.GameID(args[0]), model.PlayerID(args[1]), args[2])
			if err != nil {
				return err
			}
			return printLastTurn(cmd, game, "Exchanged")
		},
	}
}

func newGameUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <game-id>",
		Short: "Take back the last turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			turn, err := app.GameController.UndoLastMove(cmd.Context(), model.GameID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(TurnView{Action: "Undone", Turn: *turn})
			return nil
		},
	}
}

func newGameVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <game-id>",
		Short: "Replay a game's plays and check they rebuild its board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDictionary(cmd.Context()); err != nil {
				return err
			}
			if err := app.GameController.Verify(cmd.Context(), model.GameID(args[0])); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.PrintMessage("Game " + args[0] + " verified")
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a stored game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.GameController.DeleteGame(cmd.Context(), model.GameID(args[0])); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.PrintMessage("Game " + args[0] + " deleted")
			return nil
		},
	}
}

func printGame(cmd *cobra.Command, game *model.Game, viewer model.PlayerID) error {
	standings, err := app.GameController.Standings(cmd.Context(), game.ID)
	if err != nil {
		return err
	}

	out := NewOutput(cmd.OutOrStdout(), cfg.Output)
	out.Print(GameView{Game: game, Standings: standings, Viewer: viewer})
	return nil
}

func printLastTurn(cmd *cobra.Command, game *model.Game, action string) error {
	out := NewOutput(cmd.OutOrStdout(), cfg.Output)
	out.Print(TurnView{Action: action, Turn: game.History[len(game.History)-1].Turn})
	if game.IsComplete() {
		out.PrintMessage("Game complete")
	}
	return nil
}
