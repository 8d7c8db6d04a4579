package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/dugoutlabs/slate-cli/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent pipeline runs from the local audit log",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		audit, err := initAudit(ctx)
		if err != nil {
			return err
		}
		defer audit.Close() //nolint:errcheck

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := audit.ListRuns(ctx, limit)
		if err != nil {
			return eris.Wrap(err, "list runs")
		}

		if len(runs) == 0 {
			fmt.Fprintln(os.Stderr, "No runs found.")
			return nil
		}

		formatRuns(os.Stdout, runs)
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "List the upserts recorded for a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		audit, err := initAudit(ctx)
		if err != nil {
			return err
		}
		defer audit.Close() //nolint:errcheck

		ups, err := audit.ListUpserts(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "list upserts")
		}

		if len(ups) == 0 {
			fmt.Fprintln(os.Stderr, "No upserts found for run.")
			return nil
		}

		formatUpserts(os.Stdout, ups)
		return nil
	},
}

func init() {
	runsCmd.Flags().Int("limit", 20, "max number of runs to display")
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

func formatRuns(out io.Writer, runs []store.Run) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tMODE\tDATE\tSTATUS\tPROCESSED\tSKIPPED\tCREATED")
	for _, r := range runs {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			truncateID(r.ID),
			r.Mode,
			r.GameDate,
			r.Status,
			r.Processed,
			r.Skipped,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

func formatUpserts(out io.Writer, ups []store.Upsert) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "GAME_KEY\tACTION\tPAGE_ID\tAT")
	for _, u := range ups {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			u.GameKey,
			u.Action,
			u.PageID,
			u.CreatedAt.Format(time.RFC3339),
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
