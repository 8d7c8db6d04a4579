package main

import (
	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Fetch the day's slate and upsert it",
	Long:  "Fetches the MLB schedule for the date, writes the slate CSV snapshot, and upserts one record per game with schedule fields only.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDaily(cmd)
	},
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command) error {
	ctx := cmd.Context()

	pl, cleanup, err := newPipeline(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return pl.Daily(ctx, runDate())
}
