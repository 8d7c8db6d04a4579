package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dugoutlabs/slate-cli/internal/config"
)

var (
	cfg      *config.Config
	dateFlag string
)

var rootCmd = &cobra.Command{
	Use:   "slate-cli",
	Short: "Daily MLB slate and betting picks pipeline",
	Long:  "Fetches the daily MLB schedule, joins market odds by game key, derives moneyline, total, and run line picks with confidence scores, and upserts one record per game to a Notion database.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	// Bare invocation runs the daily slate mode.
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDaily(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dateFlag, "date", "", "game date (YYYY-MM-DD, default today)")
}

// runDate resolves the --date flag, defaulting to today.
func runDate() string {
	if dateFlag != "" {
		return dateFlag
	}
	return time.Now().Format("2006-01-02")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
