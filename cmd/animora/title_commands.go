package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"animora/internal/library"
	"animora/internal/progress"
	"animora/internal/tracker"
)

func newProgressCommand(cmdCtx *commandContext) *cobra.Command {
	var seasonFlag int

	cmd := &cobra.Command{
		Use:   "progress <title> <episode>",
		Short: "Record watch progress",
		Long: `Record watch progress.

Without --season the season is derived from the episode number and the
title's season count. Reaching the final episode marks the title
completed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			episode, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("episode must be a number: %q", args[1])
			}
			return cmdCtx.withEngine(cmd, func(ctx context.Context, engine *tracker.Engine) error {
				title, err := resolveTitle(engine, args[0])
				if err != nil {
					return err
				}
				season := seasonFlag
				if !cmd.Flags().Changed("season") {
					season = progress.SeasonForEpisode(episode, title.TotalEpisodes, title.TotalSeasons)
				}
				updated, err := engine.SetProgress(ctx, title.ID, episode, season)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, status %s\n", updated.Title, formatProgress(updated), updated.Status)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&seasonFlag, "season", 0, "Current season (derived from the episode when omitted)")
	return cmd
}

func newStatusCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status <title> <status>",
		Short: "Set a title's watch status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, ok := library.ParseStatus(args[1])
			if !ok {
				return fmt.Errorf("unknown status %q (expected watching, completed, planToWatch, onHold, or dropped)", args[1])
			}
			return cmdCtx.withEngine(cmd, func(ctx context.Context, engine *tracker.Engine) error {
				title, err := resolveTitle(engine, args[0])
				if err != nil {
					return err
				}
				if err := engine.SetStatus(ctx, title.ID, status); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: status %s\n", title.Title, status)
				return nil
			})
		},
	}
}

func newRateCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <title> <rating>",
		Short: "Rate a title from 0 to 10",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("rating must be a number: %q", args[1])
			}
			return cmdCtx.withEngine(cmd, func(ctx context.Context, engine *tracker.Engine) error {
				title, err := resolveTitle(engine, args[0])
				if err != nil {
					return err
				}
				if err := engine.SetRating(ctx, title.ID, rating); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: rated %s\n", title.Title, formatRating(rating))
				return nil
			})
		},
	}
}

func newNotesCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "notes <title> [text...]",
		Short: "Set or clear a title's notes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			return cmdCtx.withEngine(cmd, func(ctx context.Context, engine *tracker.Engine) error {
				title, err := resolveTitle(engine, args[0])
				if err != nil {
					return err
				}
				if err := engine.SetNotes(ctx, title.ID, text); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if text == "" {
					fmt.Fprintf(out, "%s: notes cleared\n", title.Title)
				} else {
					fmt.Fprintf(out, "%s: notes updated\n", title.Title)
				}
				return nil
			})
		},
	}
}

func newFavoriteCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <title>",
		Short: "Toggle a title's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, engine *tracker.Engine) error {
				title, err := resolveTitle(engine, args[0])
				if err != nil {
					return err
				}
				favorite, err := engine.ToggleFavorite(ctx, title.ID)
				if err != nil {
					return err
				}
				if favorite {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: marked favorite\n", title.Title)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: unmarked favorite\n", title.Title)
				}
				return nil
			})
		},
	}
}

func newRemoveCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove a title from the tracking list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, engine *tracker.Engine) error {
				title, err := resolveTitle(engine, args[0])
				if err != nil {
					return err
				}
				if err := engine.Delete(ctx, title.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", title.Title)
				return nil
			})
		},
	}
}
