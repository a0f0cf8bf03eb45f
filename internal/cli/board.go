package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/upwords-go/internal/model"
	"github.com/mcoot/upwords-go/internal/services/session"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Work with boards stored as UBF files",
	}

	cmd.AddCommand(newBoardNewCmd())
	cmd.AddCommand(newBoardShowCmd())
	cmd.AddCommand(newBoardCheckCmd())
	cmd.AddCommand(newBoardPlayCmd())

	return cmd
}

func newBoardNewCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Write an empty board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			board := model.EmptyBoard()
			if err := writeBoard(path, board); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(BoardView{Path: path, Board: board})
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func newBoardShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Display a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := readBoard(args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(BoardView{Path: args[0], Board: board, Tiles: board.TileCount()})
			return nil
		},
	}
}

func newBoardCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file> " + playArgsUsage,
		Short: "Validate and score a play without changing the board",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, play, err := loadBoardPlay(cmd, args)
			if err != nil {
				return err
			}

			sess := app.NewSession(session.WithBoard(board))
			result, err := sess.CheckPlay(play)
			if err != nil {
				return err
			}

			view := PlayView{Play: play, Result: result}
			if result.IsValid {
				breakdown, err := app.ScoringService.ScoreWords(board, play)
				if err != nil {
					return err
				}
				view.Breakdown = &breakdown
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(view)
			return nil
		},
	}
}

func newBoardPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <file> " + playArgsUsage,
		Short: "Make a play and save the board if it is legal",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, play, err := loadBoardPlay(cmd, args)
			if err != nil {
				return err
			}

			breakdown, scoreErr := app.ScoringService.ScoreWords(board, play)

			sess := app.NewSession(session.WithBoard(board))
			result, err := sess.PlayTiles(play)
			if err != nil {
				return err
			}

			view := PlayView{Play: play, Result: result}
			if result.IsValid {
				after := sess.Board()
				if err := writeBoard(args[0], after); err != nil {
					return err
				}
				view.Board = &after
				if scoreErr == nil {
					view.Breakdown = &breakdown
				}
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(view)
			return nil
		},
	}
}

// loadBoardPlay reads the board file and play arguments of check and play
func loadBoardPlay(cmd *cobra.Command, args []string) (model.Board, model.Play, error) {
	board, err := readBoard(args[0])
	if err != nil {
		return model.Board{}, model.Play{}, err
	}
	play, err := parsePlay(args[1:])
	if err != nil {
		return model.Board{}, model.Play{}, err
	}
	if err := requireDictionary(cmd.Context()); err != nil {
		return model.Board{}, model.Play{}, err
	}
	return board, play, nil
}
