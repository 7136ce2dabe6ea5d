package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"animora/internal/tracker"
)

func newListCommand(cmdCtx *commandContext) *cobra.Command {
	var statusFlag string
	var searchFlag string
	var sortFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show tracked titles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, engine *tracker.Engine) error {
				session := engine.Session()
				if cmd.Flags().Changed("status") {
					if !session.SetFilterStatus(statusFlag) {
						return fmt.Errorf("unknown status %q (expected all, watching, completed, planToWatch, onHold, or dropped)", statusFlag)
					}
				}
				if cmd.Flags().Changed("search") {
					session.SearchQuery = searchFlag
				}
				if cmd.Flags().Changed("sort") {
					key, ok := tracker.ParseSortKey(sortFlag)
					if !ok {
						return fmt.Errorf("unknown sort key %q (expected %s)", sortFlag, joinSortKeys())
					}
					session.SortBy = key
				}

				titles := engine.FilteredSorted()
				if jsonFlag {
					return writeJSON(cmd, toTitleJSONList(titles))
				}

				out := cmd.OutOrStdout()
				if len(titles) == 0 {
					fmt.Fprintln(out, "No tracked titles match.")
					return nil
				}

				headers := []string{"ID", "Title", "Status", "Progress", "Season", "Rating", "Fav", "Last Watched"}
				aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft}
				rows := make([][]string, 0, len(titles))
				for _, title := range titles {
					rows = append(rows, []string{
						shortID(title.ID),
						truncate(title.Title, 40),
						string(title.Status),
						formatProgress(title),
						fmt.Sprintf("%d/%d", title.CurrentSeason, title.TotalSeasons),
						formatRating(title.Rating),
						yesNo(title.IsFavorite),
						formatLastWatched(title.LastWatched),
					})
				}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "Filter by status (or \"all\")")
	cmd.Flags().StringVar(&searchFlag, "search", "", "Filter by title, Japanese title, or genre substring")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "Sort key: "+joinSortKeys())
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")
	return cmd
}

func joinSortKeys() string {
	keys := tracker.AllSortKeys()
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, string(key))
	}
	return strings.Join(names, ", ")
}
