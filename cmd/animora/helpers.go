package main

import (
	"fmt"
	"strings"
	"time"

	"animora/internal/library"
	"animora/internal/progress"
	"animora/internal/tracker"
)

// resolveTitle turns a command argument into a tracked title. It accepts
// a full id, a unique id prefix, or an exact case-insensitive title.
func resolveTitle(engine *tracker.Engine, arg string) (library.TrackedTitle, error) {
	needle := strings.TrimSpace(arg)
	if needle == "" {
		return library.TrackedTitle{}, fmt.Errorf("%w: empty title reference", library.ErrNotFound)
	}

	if title, ok := engine.ByID(needle); ok {
		return title, nil
	}

	var matches []library.TrackedTitle
	for _, title := range engine.All() {
		if strings.HasPrefix(title.ID, needle) || strings.EqualFold(title.Title, needle) {
			matches = append(matches, title)
		}
	}
	switch len(matches) {
	case 0:
		return library.TrackedTitle{}, fmt.Errorf("%w: no tracked title matches %q", library.ErrNotFound, needle)
	case 1:
		return matches[0], nil
	default:
		return library.TrackedTitle{}, fmt.Errorf("%q is ambiguous: %d tracked titles match", needle, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatDate(value time.Time) string {
	return value.Format(time.DateOnly)
}

func formatLastWatched(value *time.Time) string {
	if value == nil {
		return "never"
	}
	return formatDate(*value)
}

func formatProgress(title library.TrackedTitle) string {
	pct := progress.CompletionFraction(title.CurrentEpisode, title.TotalEpisodes) * 100
	return fmt.Sprintf("%d/%d (%.0f%%)", title.CurrentEpisode, title.TotalEpisodes, pct)
}

func formatRating(rating float64) string {
	if rating <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", rating)
}

func truncate(value string, limit int) string {
	if limit <= 3 || len(value) <= limit {
		return value
	}
	return value[:limit-3] + "..."
}
