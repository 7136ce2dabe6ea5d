package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"animora/internal/tracker"
)

func newStatsCommand(cmdCtx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate collection statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, engine *tracker.Engine) error {
				stats := engine.Stats()
				if jsonFlag {
					return writeJSON(cmd, toStatsJSON(stats))
				}

				headers := []string{"Metric", "Value"}
				aligns := []columnAlignment{alignLeft, alignRight}
				rows := [][]string{
					{"Total titles", strconv.Itoa(stats.Total)},
					{"Watching", strconv.Itoa(stats.Watching)},
					{"Completed", strconv.Itoa(stats.Completed)},
					{"Plan to watch", strconv.Itoa(stats.PlanToWatch)},
					{"On hold", strconv.Itoa(stats.OnHold)},
					{"Dropped", strconv.Itoa(stats.Dropped)},
					{"Favorites", strconv.Itoa(stats.Favorites)},
					{"Episodes watched", strconv.Itoa(stats.EpisodesWatched)},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")
	return cmd
}
