package testsupport

import (
	"context"
	"fmt"
	"testing"
	"time"

	"animora/internal/config"
	"animora/internal/library"
)

// MustOpenStore opens a library.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// Title builds a tracked title with sensible defaults for tests. The
// index keeps ids unique within a test.
func Title(index int) library.TrackedTitle {
	return library.TrackedTitle{
		ID:            fmt.Sprintf("title-%d", index),
		Title:         fmt.Sprintf("Test Title %d", index),
		TotalSeasons:  1,
		TotalEpisodes: 12,
		CurrentSeason: 1,
		Status:        library.StatusPlanToWatch,
		Genres:        []string{"Action"},
		AddedDate:     Date(2024, time.January, 1),
	}
}

// InsertTitle persists a row and fails the test on error.
func InsertTitle(t testing.TB, store *library.Store, title library.TrackedTitle) {
	t.Helper()

	if err := store.Insert(context.Background(), title); err != nil {
		t.Fatalf("store.Insert(%s): %v", title.ID, err)
	}
}

// Date returns a UTC midnight timestamp, the precision tracked dates use.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DatePtr returns a pointer to a UTC midnight timestamp.
func DatePtr(year int, month time.Month, day int) *time.Time {
	d := Date(year, month, day)
	return &d
}
