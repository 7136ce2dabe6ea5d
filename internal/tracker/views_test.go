package tracker_test

import (
	"context"
	"testing"
	"time"

	"animora/internal/library"
	"animora/internal/testsupport"
	"animora/internal/tracker"
)

func ids(titles []library.TrackedTitle) []string {
	out := make([]string, len(titles))
	for i, title := range titles {
		out[i] = title.ID
	}
	return out
}

func titlesOf(titles []library.TrackedTitle) []string {
	out := make([]string, len(titles))
	for i, title := range titles {
		out[i] = title.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearchFilterMatchesTitleOnly(t *testing.T) {
	engine, _ := newEngine(t)
	mustAdd(t, engine, library.Draft{Title: "Attack on Titan", TotalEpisodes: 87})
	mustAdd(t, engine, library.Draft{Title: "Naruto", TotalEpisodes: 220})
	mustAdd(t, engine, library.Draft{Title: "One Piece", TotalEpisodes: 1000})

	engine.Session().SearchQuery = "Titan"

	got := engine.FilteredSorted()
	if len(got) != 1 || got[0].Title != "Attack on Titan" {
		t.Fatalf("expected only Attack on Titan, got %v", titlesOf(got))
	}
}

func TestSearchFilterMatchesJapaneseTitleAndGenres(t *testing.T) {
	engine, _ := newEngine(t)
	mustAdd(t, engine, library.Draft{Title: "Attack on Titan", TitleJapanese: "進撃の巨人", TotalEpisodes: 87})
	mustAdd(t, engine, library.Draft{Title: "Haikyuu", Genres: []string{"Sports", "Comedy"}, TotalEpisodes: 25})
	mustAdd(t, engine, library.Draft{Title: "Initial D", TotalEpisodes: 26})

	engine.Session().SearchQuery = "進撃"
	if got := engine.FilteredSorted(); len(got) != 1 || got[0].Title != "Attack on Titan" {
		t.Fatalf("japanese title search failed: %v", titlesOf(got))
	}

	engine.Session().SearchQuery = "sports"
	if got := engine.FilteredSorted(); len(got) != 1 || got[0].Title != "Haikyuu" {
		t.Fatalf("genre search failed: %v", titlesOf(got))
	}
}

func TestStatusFilter(t *testing.T) {
	engine, _ := newEngine(t)
	mustAdd(t, engine, library.Draft{Title: "A", TotalEpisodes: 12, Status: library.StatusWatching})
	mustAdd(t, engine, library.Draft{Title: "B", TotalEpisodes: 12, Status: library.StatusDropped})
	mustAdd(t, engine, library.Draft{Title: "C", TotalEpisodes: 12, Status: library.StatusWatching})

	if ok := engine.Session().SetFilterStatus("watching"); !ok {
		t.Fatal("SetFilterStatus(watching) rejected")
	}
	got := engine.FilteredSorted()
	if len(got) != 2 {
		t.Fatalf("expected 2 watching entries, got %v", titlesOf(got))
	}
	for _, title := range got {
		if title.Status != library.StatusWatching {
			t.Fatalf("filter leaked status %s", title.Status)
		}
	}

	if ok := engine.Session().SetFilterStatus("all"); !ok {
		t.Fatal("SetFilterStatus(all) rejected")
	}
	if got := engine.FilteredSorted(); len(got) != 3 {
		t.Fatalf("expected full collection, got %d", len(got))
	}

	if ok := engine.Session().SetFilterStatus("paused"); ok {
		t.Fatal("unknown status filter should be rejected")
	}
}

func TestSortLastWatchedPlacesNeverWatchedLast(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	a := mustAdd(t, engine, library.Draft{Title: "A", TotalEpisodes: 12})
	b := mustAdd(t, engine, library.Draft{Title: "B", TotalEpisodes: 12})
	c := mustAdd(t, engine, library.Draft{Title: "C", TotalEpisodes: 12})

	// Stamp watch dates directly so B keeps a nil lastWatched.
	if err := store.UpdateFields(ctx, a.ID, library.Patch{LastWatched: testsupport.DatePtr(2024, time.January, 1)}); err != nil {
		t.Fatalf("stamp A: %v", err)
	}
	if err := store.UpdateFields(ctx, c.ID, library.Patch{LastWatched: testsupport.DatePtr(2024, time.June, 1)}); err != nil {
		t.Fatalf("stamp C: %v", err)
	}
	if err := engine.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}

	engine.Session().SortBy = tracker.SortLastWatched
	got := engine.FilteredSorted()
	expected := []string{c.ID, a.ID, b.ID}
	if !equalStrings(ids(got), expected) {
		t.Fatalf("expected order [C A B], got %v", titlesOf(got))
	}
}

func TestSortLastWatchedKeepsNeverWatchedRelativeOrder(t *testing.T) {
	engine, _ := newEngine(t)

	first := mustAdd(t, engine, library.Draft{Title: "First", TotalEpisodes: 12})
	second := mustAdd(t, engine, library.Draft{Title: "Second", TotalEpisodes: 12})

	engine.Session().SortBy = tracker.SortLastWatched
	got := engine.FilteredSorted()
	// Mirror order is newest-addition-first; a stable sort keeps it.
	expected := []string{second.ID, first.ID}
	if !equalStrings(ids(got), expected) {
		t.Fatalf("never-watched entries reordered: %v", titlesOf(got))
	}
}

func TestSortTitleIsCaseInsensitive(t *testing.T) {
	engine, _ := newEngine(t)
	mustAdd(t, engine, library.Draft{Title: "naruto", TotalEpisodes: 220})
	mustAdd(t, engine, library.Draft{Title: "Bleach", TotalEpisodes: 366})
	mustAdd(t, engine, library.Draft{Title: "attack on Titan", TotalEpisodes: 87})

	engine.Session().SortBy = tracker.SortTitle
	got := titlesOf(engine.FilteredSorted())
	expected := []string{"attack on Titan", "Bleach", "naruto"}
	if !equalStrings(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestSortRatingDescendingStable(t *testing.T) {
	engine, _ := newEngine(t)
	low := mustAdd(t, engine, library.Draft{Title: "Low", TotalEpisodes: 12, Rating: 4})
	tieOne := mustAdd(t, engine, library.Draft{Title: "TieOne", TotalEpisodes: 12, Rating: 8})
	tieTwo := mustAdd(t, engine, library.Draft{Title: "TieTwo", TotalEpisodes: 12, Rating: 8})
	high := mustAdd(t, engine, library.Draft{Title: "High", TotalEpisodes: 12, Rating: 10})

	engine.Session().SortBy = tracker.SortRating
	got := ids(engine.FilteredSorted())
	// Mirror order is newest-first, so the rating-8 tie keeps TieTwo
	// before TieOne under a stable sort.
	expected := []string{high.ID, tieTwo.ID, tieOne.ID, low.ID}
	if !equalStrings(got, expected) {
		t.Fatalf("unexpected rating order: %v", got)
	}
}

func TestSortProgressTreatsUnknownTotalsAsZero(t *testing.T) {
	engine, _ := newEngine(t)
	half := mustAdd(t, engine, library.Draft{Title: "Half", TotalEpisodes: 24, CurrentEpisode: 12})
	none := mustAdd(t, engine, library.Draft{Title: "NoEpisodes", TotalEpisodes: 0})
	done := mustAdd(t, engine, library.Draft{Title: "Done", TotalEpisodes: 12, CurrentEpisode: 12, Status: library.StatusCompleted})

	engine.Session().SortBy = tracker.SortProgress
	got := ids(engine.FilteredSorted())
	expected := []string{done.ID, half.ID, none.ID}
	if !equalStrings(got, expected) {
		t.Fatalf("unexpected progress order: %v", got)
	}
}

func TestSortAddedDateDescending(t *testing.T) {
	engine, _ := newEngine(t)

	// Added dates come from the engine clock, so vary it between adds.
	clock := testsupport.Date(2020, time.March, 1)
	engine.SetNowFunc(func() time.Time { return clock })
	older := mustAdd(t, engine, library.Draft{Title: "Older", TotalEpisodes: 12})

	clock = testsupport.Date(2024, time.July, 15)
	newer := mustAdd(t, engine, library.Draft{Title: "Newer", TotalEpisodes: 12})

	engine.Session().SortBy = tracker.SortAddedDate
	got := ids(engine.FilteredSorted())
	expected := []string{newer.ID, older.ID}
	if !equalStrings(got, expected) {
		t.Fatalf("unexpected addedDate order: %v", got)
	}
}

func TestStatsAggregatesFullMirrorIgnoringFilters(t *testing.T) {
	engine, _ := newEngine(t)
	mustAdd(t, engine, library.Draft{Title: "W1", TotalEpisodes: 20, CurrentEpisode: 5, Status: library.StatusWatching})
	mustAdd(t, engine, library.Draft{Title: "W2", TotalEpisodes: 20, CurrentEpisode: 10, Status: library.StatusWatching})
	mustAdd(t, engine, library.Draft{Title: "C1", TotalEpisodes: 12, CurrentEpisode: 12, Status: library.StatusCompleted})
	mustAdd(t, engine, library.Draft{Title: "P1", TotalEpisodes: 24, Status: library.StatusPlanToWatch})
	mustAdd(t, engine, library.Draft{Title: "H1", TotalEpisodes: 24, CurrentEpisode: 3, Status: library.StatusOnHold})
	mustAdd(t, engine, library.Draft{Title: "D1", TotalEpisodes: 24, CurrentEpisode: 1, Status: library.StatusDropped})

	fav := mustAdd(t, engine, library.Draft{Title: "F1", TotalEpisodes: 10, Status: library.StatusWatching})
	if _, err := engine.ToggleFavorite(context.Background(), fav.ID); err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}

	// Filters must not affect stats.
	engine.Session().SearchQuery = "W1"
	engine.Session().SetFilterStatus("dropped")

	stats := engine.Stats()
	if stats.Total != 7 {
		t.Fatalf("expected total 7, got %d", stats.Total)
	}
	perStatus := stats.Watching + stats.Completed + stats.PlanToWatch + stats.OnHold + stats.Dropped
	if perStatus != stats.Total {
		t.Fatalf("per-status counts %d do not sum to total %d", perStatus, stats.Total)
	}
	if stats.Watching != 3 || stats.Completed != 1 || stats.PlanToWatch != 1 || stats.OnHold != 1 || stats.Dropped != 1 {
		t.Fatalf("unexpected status breakdown: %+v", stats)
	}
	if stats.Favorites != 1 {
		t.Fatalf("expected 1 favorite, got %d", stats.Favorites)
	}
	if stats.EpisodesWatched != 31 {
		t.Fatalf("expected 31 episodes watched, got %d", stats.EpisodesWatched)
	}
}

func TestByIDReturnsCopy(t *testing.T) {
	engine, _ := newEngine(t)
	title := mustAdd(t, engine, library.Draft{Title: "Copy", TotalEpisodes: 12, Genres: []string{"Drama"}})

	copy1, ok := engine.ByID(title.ID)
	if !ok {
		t.Fatal("ByID missed existing entry")
	}
	copy1.Genres[0] = "Mutated"
	copy1.Notes = "mutated"

	copy2, _ := engine.ByID(title.ID)
	if copy2.Genres[0] != "Drama" || copy2.Notes != "" {
		t.Fatalf("mirror state leaked through ByID copies: %#v", copy2)
	}
}
