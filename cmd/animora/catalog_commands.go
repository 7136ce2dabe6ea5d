package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"animora/internal/catalog"
	"animora/internal/config"
)

func newSearchCommand(cmdCtx *commandContext) *cobra.Command {
	var limitFlag int
	var pageFlag int
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog for titles to add",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return cmdCtx.withBrowser(cmd, func(ctx context.Context, browser *catalog.Browser, cfg *config.Config) error {
				limit := limitFlag
				if limit <= 0 {
					limit = cfg.Catalog.PageSize
				}
				candidates, err := browser.Search(ctx, query, limit, pageFlag)
				if err != nil {
					return err
				}
				return renderCandidates(cmd, candidates, jsonFlag)
			})
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 0, "Results per page (defaults to catalog.page_size)")
	cmd.Flags().IntVar(&pageFlag, "page", 1, "Result page")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newTopCommand(cmdCtx *commandContext) *cobra.Command {
	var categoryFlag string
	var limitFlag int
	var pageFlag int
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Browse a catalog category",
		RunE: func(cmd *cobra.Command, args []string) error {
			category, ok := catalog.ParseCategory(categoryFlag)
			if !ok {
				return fmt.Errorf("unknown category %q (expected %s)", categoryFlag, joinCategories())
			}
			return cmdCtx.withBrowser(cmd, func(ctx context.Context, browser *catalog.Browser, cfg *config.Config) error {
				limit := limitFlag
				if limit <= 0 {
					limit = cfg.Catalog.PageSize
				}
				candidates, err := browser.ListTop(ctx, pageFlag, category, limit)
				if err != nil {
					return err
				}
				return renderCandidates(cmd, candidates, jsonFlag)
			})
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", string(catalog.CategoryPopular), "Category: "+joinCategories())
	cmd.Flags().IntVar(&limitFlag, "limit", 0, "Results per page (defaults to catalog.page_size)")
	cmd.Flags().IntVar(&pageFlag, "page", 1, "Result page")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")
	return cmd
}

func renderCandidates(cmd *cobra.Command, candidates []catalog.Candidate, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, toCandidateJSONList(candidates))
	}

	out := cmd.OutOrStdout()
	if len(candidates) == 0 {
		fmt.Fprintln(out, "No catalog results.")
		return nil
	}

	headers := []string{"#", "Title", "Type", "Episodes", "Year", "Studio", "Genres"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft}
	rows := make([][]string, 0, len(candidates))
	for i, candidate := range candidates {
		year := ""
		if candidate.Year > 0 {
			year = strconv.Itoa(candidate.Year)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			truncate(candidate.Title, 40),
			candidate.Kind,
			strconv.Itoa(candidate.TotalEpisodes),
			year,
			truncate(candidate.Studio, 20),
			truncate(strings.Join(candidate.Genres, ", "), 30),
		})
	}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))
	return nil
}

func joinCategories() string {
	categories := catalog.AllCategories()
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, string(category))
	}
	return strings.Join(names, ", ")
}
