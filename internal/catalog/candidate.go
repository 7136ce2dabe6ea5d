package catalog

import "strings"

// Category names a browsable subset of the catalog.
type Category string

const (
	CategoryPopular   Category = "popular"
	CategoryFavorites Category = "favorites"
	CategoryAiring    Category = "airing"
	CategoryUpcoming  Category = "upcoming"
	CategoryTV        Category = "tv"
	CategoryMovie     Category = "movie"
	CategoryOVA       Category = "ova"
	CategoryONA       Category = "ona"
	CategorySpecial   Category = "special"
)

var allCategories = []Category{
	CategoryPopular,
	CategoryFavorites,
	CategoryAiring,
	CategoryUpcoming,
	CategoryTV,
	CategoryMovie,
	CategoryOVA,
	CategoryONA,
	CategorySpecial,
}

var categoryByLower = func() map[string]Category {
	set := make(map[string]Category, len(allCategories))
	for _, category := range allCategories {
		set[strings.ToLower(string(category))] = category
	}
	return set
}()

// AllCategories returns the documented category set in display order.
func AllCategories() []Category {
	cp := make([]Category, len(allCategories))
	copy(cp, allCategories)
	return cp
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(value string) (Category, bool) {
	category, ok := categoryByLower[strings.ToLower(strings.TrimSpace(value))]
	return category, ok
}

// Candidate is one browsable title as the catalog describes it. A zero
// TotalSeasons means the source does not track seasons; ToDraft derives
// one from the episode count.
type Candidate struct {
	ExternalID    int64
	Title         string
	TitleJapanese string
	Image         string
	Kind          string
	Genres        []string
	TotalEpisodes int
	TotalSeasons  int
	Year          int
	Studio        string
	Synopsis      string
}
