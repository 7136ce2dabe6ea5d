package tracker

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"animora/internal/library"
	"animora/internal/progress"
)

// Stats aggregates the full collection, ignoring session filters.
type Stats struct {
	Total           int
	Watching        int
	Completed       int
	PlanToWatch     int
	OnHold          int
	Dropped         int
	Favorites       int
	EpisodesWatched int
}

// FilteredSorted materializes the current list view: the mirror
// filtered by the session's search query and status filter, then
// stably sorted by its sort key. Each call computes a fresh slice of
// clones from the current mirror.
func (e *Engine) FilteredSorted() []library.TrackedTitle {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]library.TrackedTitle, 0, len(e.titles))
	query := strings.ToLower(strings.TrimSpace(e.session.SearchQuery))
	for _, title := range e.titles {
		if query != "" && !matchesQuery(title, query) {
			continue
		}
		if e.session.FilterStatus != FilterAll && string(title.Status) != e.session.FilterStatus {
			continue
		}
		out = append(out, title.Clone())
	}

	sortTitles(out, e.session.SortBy)
	return out
}

// Stats recomputes aggregate counts over the full mirror.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	var stats Stats
	stats.Total = len(e.titles)
	for _, title := range e.titles {
		switch title.Status {
		case library.StatusWatching:
			stats.Watching++
		case library.StatusCompleted:
			stats.Completed++
		case library.StatusPlanToWatch:
			stats.PlanToWatch++
		case library.StatusOnHold:
			stats.OnHold++
		case library.StatusDropped:
			stats.Dropped++
		}
		if title.IsFavorite {
			stats.Favorites++
		}
		stats.EpisodesWatched += title.CurrentEpisode
	}
	return stats
}

// ByID returns a copy of the entry, with ok=false when absent.
func (e *Engine) ByID(id string) (library.TrackedTitle, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return library.TrackedTitle{}, false
	}
	return e.titles[idx].Clone(), true
}

// All returns a copy of the full mirror in insertion-recency order.
func (e *Engine) All() []library.TrackedTitle {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]library.TrackedTitle, 0, len(e.titles))
	for _, title := range e.titles {
		out = append(out, title.Clone())
	}
	return out
}

func matchesQuery(title library.TrackedTitle, query string) bool {
	if strings.Contains(strings.ToLower(title.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(title.TitleJapanese), query) {
		return true
	}
	for _, genre := range title.Genres {
		if strings.Contains(strings.ToLower(genre), query) {
			return true
		}
	}
	return false
}

func sortTitles(titles []library.TrackedTitle, key SortKey) {
	switch key {
	case SortTitle:
		collator := collate.New(language.English, collate.Loose)
		sort.SliceStable(titles, func(i, j int) bool {
			return collator.CompareString(titles[i].Title, titles[j].Title) < 0
		})
	case SortRating:
		sort.SliceStable(titles, func(i, j int) bool {
			return titles[i].Rating > titles[j].Rating
		})
	case SortProgress:
		sort.SliceStable(titles, func(i, j int) bool {
			left := progress.CompletionFraction(titles[i].CurrentEpisode, titles[i].TotalEpisodes)
			right := progress.CompletionFraction(titles[j].CurrentEpisode, titles[j].TotalEpisodes)
			return left > right
		})
	case SortAddedDate:
		sort.SliceStable(titles, func(i, j int) bool {
			return titles[i].AddedDate.After(titles[j].AddedDate)
		})
	case SortLastWatched:
		fallthrough
	default:
		// Never-watched entries rank after every watched entry and keep
		// their relative order among themselves.
		sort.SliceStable(titles, func(i, j int) bool {
			left, right := titles[i].LastWatched, titles[j].LastWatched
			if left == nil {
				return false
			}
			if right == nil {
				return true
			}
			return left.After(*right)
		})
	}
}
