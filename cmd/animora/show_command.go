package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"animora/internal/progress"
	"animora/internal/tracker"
)

func newShowCommand(cmdCtx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "show <title>",
		Short: "Show one tracked title in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, engine *tracker.Engine) error {
				title, err := resolveTitle(engine, args[0])
				if err != nil {
					return err
				}
				if jsonFlag {
					return writeJSON(cmd, toTitleJSON(title))
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s\n", title.Title)
				if title.TitleJapanese != "" {
					fmt.Fprintf(out, "  Japanese:     %s\n", title.TitleJapanese)
				}
				fmt.Fprintf(out, "  ID:           %s\n", title.ID)
				fmt.Fprintf(out, "  Status:       %s\n", title.Status)
				fmt.Fprintf(out, "  Progress:     %s\n", formatProgress(title))
				season := progress.SeasonForEpisode(title.CurrentEpisode, title.TotalEpisodes, title.TotalSeasons)
				fmt.Fprintf(out, "  Season:       %d of %d (episode maps to season %d)\n", title.CurrentSeason, title.TotalSeasons, season)
				fmt.Fprintf(out, "  Rating:       %s\n", formatRating(title.Rating))
				fmt.Fprintf(out, "  Favorite:     %s\n", yesNo(title.IsFavorite))
				if len(title.Genres) > 0 {
					fmt.Fprintf(out, "  Genres:       %s\n", strings.Join(title.Genres, ", "))
				}
				if title.Studio != "" {
					fmt.Fprintf(out, "  Studio:       %s\n", title.Studio)
				}
				if title.Year > 0 {
					fmt.Fprintf(out, "  Year:         %d\n", title.Year)
				}
				fmt.Fprintf(out, "  Added:        %s\n", formatDate(title.AddedDate))
				fmt.Fprintf(out, "  Last watched: %s\n", formatLastWatched(title.LastWatched))
				if title.Synopsis != "" {
					fmt.Fprintf(out, "  Synopsis:     %s\n", title.Synopsis)
				}
				if title.Notes != "" {
					fmt.Fprintf(out, "  Notes:        %s\n", title.Notes)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of text")
	return cmd
}
