package catalog

import (
	"context"
	"testing"
)

func mustLocal(t *testing.T) *Local {
	t.Helper()

	local, err := NewLocal()
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	return local
}

func TestLocalListTopPopularRanksByMembers(t *testing.T) {
	local := mustLocal(t)

	got, err := local.ListTop(context.Background(), 1, CategoryPopular, 3)
	if err != nil {
		t.Fatalf("ListTop: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected a full page of 3, got %d", len(got))
	}
	if got[0].Title != "Attack on Titan" || got[1].Title != "Death Note" {
		t.Fatalf("unexpected popularity order: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestLocalListTopFavoritesRanksByFavorites(t *testing.T) {
	local := mustLocal(t)

	got, err := local.ListTop(context.Background(), 1, CategoryFavorites, 2)
	if err != nil {
		t.Fatalf("ListTop: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Fullmetal Alchemist: Brotherhood" {
		t.Fatalf("unexpected favorites order: %#v", got)
	}
}

func TestLocalListTopFiltersByCategory(t *testing.T) {
	local := mustLocal(t)

	cases := []struct {
		category Category
		first    string
	}{
		{CategoryAiring, "One Piece"},
		{CategoryUpcoming, "Chainsaw Man: The Movie - Reze Arc"},
		{CategoryMovie, "Your Name."},
		{CategoryOVA, "FLCL"},
		{CategoryONA, "Devilman Crybaby"},
		{CategorySpecial, "Mushishi Special: Hihamukage"},
	}

	for _, tc := range cases {
		got, err := local.ListTop(context.Background(), 1, tc.category, 25)
		if err != nil {
			t.Fatalf("ListTop(%s): %v", tc.category, err)
		}
		if len(got) == 0 || got[0].Title != tc.first {
			t.Fatalf("category %s: expected %q first, got %#v", tc.category, tc.first, got)
		}
		for _, candidate := range got {
			if candidate.ExternalID == 0 || candidate.Image == "" {
				t.Fatalf("candidate missing identity fields: %#v", candidate)
			}
		}
	}
}

func TestLocalListTopOutOfRangePageIsEmptySuccess(t *testing.T) {
	local := mustLocal(t)

	for _, page := range []int{0, -1, 99} {
		got, err := local.ListTop(context.Background(), page, CategoryPopular, 25)
		if err != nil {
			t.Fatalf("ListTop page %d: %v", page, err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty page for page %d, got %d entries", page, len(got))
		}
	}
}

func TestLocalListTopRejectsUnknownCategory(t *testing.T) {
	local := mustLocal(t)

	if _, err := local.ListTop(context.Background(), 1, Category("seasonal"), 25); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestLocalSearchMatchesTitleJapaneseTitleAndGenres(t *testing.T) {
	local := mustLocal(t)
	ctx := context.Background()

	got, err := local.Search(ctx, "titan", 25, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Attack on Titan" {
		t.Fatalf("title search failed: %#v", got)
	}

	got, err = local.Search(ctx, "ワンピース", 25, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Title != "One Piece" {
		t.Fatalf("japanese title search failed: %#v", got)
	}

	got, err = local.Search(ctx, "mystery", 25, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("genre search expected 2 matches, got %#v", got)
	}
}

func TestLocalSearchEmptyQueryReturnsFirstPageUnfiltered(t *testing.T) {
	local := mustLocal(t)

	got, err := local.Search(context.Background(), "  ", 4, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 candidates, got %d", len(got))
	}
	if got[0].Title != "Fullmetal Alchemist: Brotherhood" {
		t.Fatalf("expected dataset order, got %q first", got[0].Title)
	}
}

func TestLocalSearchNoMatchesIsEmptySuccess(t *testing.T) {
	local := mustLocal(t)

	got, err := local.Search(context.Background(), "zzzz-no-such-title", 25, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %#v", got)
	}
}
