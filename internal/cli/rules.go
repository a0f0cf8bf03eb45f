package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the play rules in the order they are checked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := RulesView{
				RackSize:      settings.Rules.RackSize,
				FullRackBonus: settings.Rules.FullRackBonus,
				QuBonus:       settings.Rules.QuBonus,
			}
			for _, rule := range app.ValidationService.Rules() {
				view.Rules = append(view.Rules, RuleView{
					Name:        rule.String(),
					Description: rule.Description(),
				})
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(view)
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output == "json" {
				NewOutput(cmd.OutOrStdout(), cfg.Output).Print(settings)
				return nil
			}

			data, err := settings.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", settings.Source, data)
			return nil
		},
	}
}
