package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/upwords-go/internal/services/dictionary"
)

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Dictionary and word list commands",
	}

	cmd.AddCommand(newWordsPrepareCmd())
	cmd.AddCommand(newWordsLoadCmd())
	cmd.AddCommand(newWordsCheckCmd())

	return cmd
}

func newWordsPrepareCmd() *cobra.Command {
	var (
		outPath      string
		minLength    int
		maxLength    int
		joinQu       bool
		foldQu       bool
		ignoreTiles  bool
		listRemovals bool
	)

	cmd := &cobra.Command{
		Use:   "prepare <input>",
		Short: "Filter a raw word list down to playable words",
		Long: `Filter a raw word list down to words that can be built from the tile set.

Words are lower-cased and de-duplicated. With --join-qu a "qu" counts as
the single Q tile and words with a bare q are dropped.`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			// Flags left unset follow the dictionary settings
			if !cmd.Flags().Changed("min") {
				minLength = settings.Dictionary.MinLength
			}
			if !cmd.Flags().Changed("max") {
				maxLength = settings.Dictionary.MaxLength
			}
			if !cmd.Flags().Changed("join-qu") {
				joinQu = settings.Dictionary.JoinQu
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			raw, err := dictionary.ReadWords(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			opts := dictionary.DefaultPrepareOptions()
			opts.MinLength = minLength
			opts.MaxLength = maxLength
			opts.JoinQu = joinQu
			opts.FoldQu = foldQu
			if ignoreTiles {
				opts.TileCounts = nil
			}

			kept, removed := dictionary.PrepareWordList(raw, opts)

			report := PrepareReport{Input: args[0], Kept: len(kept), Removed: removed}

			body := strings.Join(kept, "\n") + "\n"
			if outPath == "" || outPath == "-" {
				fmt.Fprint(cmd.OutOrStdout(), body)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(body), 0o644); err != nil {
				return err
			}
			report.Output = outPath

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(report)
			if listRemovals && cfg.Output != "json" {
				for _, r := range removed {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", r.Word, r.Reason)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write kept words here (default: stdout)")
	cmd.Flags().IntVar(&minLength, "min", 0, "Shortest word to keep (default from config)")
	cmd.Flags().IntVar(&maxLength, "max", 0, "Longest word to keep, 0 for no limit (default from config)")
	cmd.Flags().BoolVar(&joinQu, "join-qu", false, "Treat qu as one tile (default from config)")
	cmd.Flags().BoolVar(&foldQu, "fold-qu", false, "Write qu as q in the output")
	cmd.Flags().BoolVar(&ignoreTiles, "ignore-tiles", false, "Skip the tile distribution check")
	cmd.Flags().BoolVar(&listRemovals, "list-removed", false, "List every removed word")

	return cmd
}

func newWordsLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [file]",
		Short: "Load a word list into storage for later commands",
		Long:  "Load a word list into storage. Defaults to the configured dictionary path.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := settings.Dictionary.Path
			if len(args) == 1 {
				path = args[0]
			}

			if err := app.DictionaryService.LoadFromFile(cmd.Context(), path); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.PrintMessage(fmt.Sprintf("Loaded %d words from %s", app.DictionaryService.WordCount(), path))
			return nil
		},
	}
}

func newWordsCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word> [word...]",
		Short: "Look words up in the dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDictionary(cmd.Context()); err != nil {
				return err
			}

			checks := make([]WordCheck, 0, len(args))
			for _, word := range args {
				checks = append(checks, WordCheck{
					Word:  strings.ToLower(word),
					Valid: app.DictionaryService.IsValidWord(word),
				})
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(checks)
			return nil
		},
	}
}
