package main

import (
	"github.com/spf13/cobra"
)

var oddsCmd = &cobra.Command{
	Use:   "odds [file]",
	Short: "Join an odds CSV onto the day's slate and upsert picks",
	Long:  "Reads the slate snapshot for the date, joins the odds CSV by game key, derives picks, upserts each prediction, and writes the predictions CSV snapshot. Requires a prior daily run for the date.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		pl, cleanup, err := newPipeline(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		return pl.IngestOdds(ctx, runDate(), oddsFile(args))
	},
}

func init() {
	rootCmd.AddCommand(oddsCmd)
}

// oddsFile resolves the positional odds CSV path, defaulting to
// odds.csv in the working directory.
func oddsFile(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "odds.csv"
}
