package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"animora/internal/catalog"
	"animora/internal/config"
	"animora/internal/library"
	"animora/internal/tracker"
)

func newAddCommand(cmdCtx *commandContext) *cobra.Command {
	var (
		titleFlag    string
		japaneseFlag string
		imageFlag    string
		episodesFlag int
		seasonsFlag  int
		episodeFlag  int
		seasonFlag   int
		statusFlag   string
		ratingFlag   float64
		genresFlag   []string
		studioFlag   string
		yearFlag     int
		synopsisFlag string
		notesFlag    string
		catalogFlag  string
		pickFlag     int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a title to the tracking list",
		Long: `Add a title to the tracking list.

Provide --title and metadata flags for a manual entry, or --from-catalog
with a search query to import a catalog candidate (--pick selects a
result other than the first). Explicit flags override catalog values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var draft library.Draft

			if catalogFlag != "" {
				err := cmdCtx.withBrowser(cmd, func(ctx context.Context, browser *catalog.Browser, cfg *config.Config) error {
					candidates, err := browser.Search(ctx, catalogFlag, cfg.Catalog.PageSize, 1)
					if err != nil {
						return err
					}
					if len(candidates) == 0 {
						return fmt.Errorf("no catalog results for %q", catalogFlag)
					}
					if pickFlag < 1 || pickFlag > len(candidates) {
						return fmt.Errorf("--pick %d out of range (1-%d)", pickFlag, len(candidates))
					}
					draft = catalog.ToDraft(candidates[pickFlag-1])
					return nil
				})
				if err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				draft.Title = titleFlag
			}
			if flags.Changed("japanese") {
				draft.TitleJapanese = japaneseFlag
			}
			if flags.Changed("image") {
				draft.Image = imageFlag
			}
			if flags.Changed("episodes") {
				draft.TotalEpisodes = episodesFlag
			}
			if flags.Changed("seasons") {
				draft.TotalSeasons = seasonsFlag
			}
			if flags.Changed("episode") {
				draft.CurrentEpisode = episodeFlag
			}
			if flags.Changed("season") {
				draft.CurrentSeason = seasonFlag
			}
			if flags.Changed("status") {
				status, ok := library.ParseStatus(statusFlag)
				if !ok {
					return fmt.Errorf("unknown status %q", statusFlag)
				}
				draft.Status = status
			}
			if flags.Changed("rating") {
				draft.Rating = ratingFlag
			}
			if flags.Changed("genres") {
				draft.Genres = genresFlag
			}
			if flags.Changed("studio") {
				draft.Studio = studioFlag
			}
			if flags.Changed("year") {
				draft.Year = yearFlag
			}
			if flags.Changed("synopsis") {
				draft.Synopsis = synopsisFlag
			}
			if flags.Changed("notes") {
				draft.Notes = notesFlag
			}

			if draft.Title == "" {
				return fmt.Errorf("either --title or --from-catalog is required")
			}

			return cmdCtx.withEngine(cmd, func(ctx context.Context, engine *tracker.Engine) error {
				created, err := engine.Add(ctx, draft)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", created.Title, shortID(created.ID))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&titleFlag, "title", "", "Display title")
	cmd.Flags().StringVar(&japaneseFlag, "japanese", "", "Japanese title")
	cmd.Flags().StringVar(&imageFlag, "image", "", "Poster image URI")
	cmd.Flags().IntVar(&episodesFlag, "episodes", 0, "Total episode count")
	cmd.Flags().IntVar(&seasonsFlag, "seasons", 0, "Total season count")
	cmd.Flags().IntVar(&episodeFlag, "episode", 0, "Current episode")
	cmd.Flags().IntVar(&seasonFlag, "season", 0, "Current season")
	cmd.Flags().StringVar(&statusFlag, "status", "", "Initial status (defaults to planToWatch)")
	cmd.Flags().Float64Var(&ratingFlag, "rating", 0, "Rating 0-10 (0 means unrated)")
	cmd.Flags().StringSliceVar(&genresFlag, "genres", nil, "Genres in display order")
	cmd.Flags().StringVar(&studioFlag, "studio", "", "Animation studio")
	cmd.Flags().IntVar(&yearFlag, "year", 0, "Release year")
	cmd.Flags().StringVar(&synopsisFlag, "synopsis", "", "Synopsis text")
	cmd.Flags().StringVar(&notesFlag, "notes", "", "Personal notes")
	cmd.Flags().StringVar(&catalogFlag, "from-catalog", "", "Import the draft from a catalog search query")
	cmd.Flags().IntVar(&pickFlag, "pick", 1, "Which catalog search result to import (1-based)")
	return cmd
}
