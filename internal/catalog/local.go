package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed dataset.json
var datasetJSON []byte

// localTitle is one dataset row. Members and favorites carry the
// MyAnimeList community counts used to rank the popular and favorites
// categories offline.
type localTitle struct {
	MalID         int64    `json:"malId"`
	Title         string   `json:"title"`
	TitleJapanese string   `json:"titleJapanese"`
	Image         string   `json:"image"`
	Type          string   `json:"type"`
	Episodes      int      `json:"episodes"`
	Year          int      `json:"year"`
	Studio        string   `json:"studio"`
	Genres        []string `json:"genres"`
	Synopsis      string   `json:"synopsis"`
	Members       int      `json:"members"`
	Favorites     int      `json:"favorites"`
	Airing        bool     `json:"airing"`
	Upcoming      bool     `json:"upcoming"`
}

// Local serves the embedded dataset, the offline catalog source.
type Local struct {
	titles []localTitle
}

// NewLocal parses the embedded dataset.
func NewLocal() (*Local, error) {
	var titles []localTitle
	if err := json.Unmarshal(datasetJSON, &titles); err != nil {
		return nil, fmt.Errorf("parse embedded dataset: %w", err)
	}
	return &Local{titles: titles}, nil
}

// ListTop returns one page of the named category, ranked by community
// member count within the selected subset.
func (l *Local) ListTop(ctx context.Context, page int, category Category, pageSize int) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var selected []localTitle
	switch category {
	case CategoryPopular:
		selected = append(selected, l.titles...)
	case CategoryFavorites:
		selected = append(selected, l.titles...)
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].Favorites > selected[j].Favorites
		})
		return pageOf(selected, page, pageSize), nil
	case CategoryAiring:
		for _, title := range l.titles {
			if title.Airing {
				selected = append(selected, title)
			}
		}
	case CategoryUpcoming:
		for _, title := range l.titles {
			if title.Upcoming {
				selected = append(selected, title)
			}
		}
	case CategoryTV, CategoryMovie, CategoryOVA, CategoryONA, CategorySpecial:
		for _, title := range l.titles {
			if strings.EqualFold(title.Type, string(category)) {
				selected = append(selected, title)
			}
		}
	default:
		return nil, fmt.Errorf("unknown catalog category %q", category)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Members > selected[j].Members
	})
	return pageOf(selected, page, pageSize), nil
}

// Search matches the query against title, Japanese title, and genres.
// An empty query returns the first limit titles in dataset order.
func (l *Local) Search(ctx context.Context, query string, limit, page int) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	var matched []localTitle
	for _, title := range l.titles {
		if needle == "" || matchesLocal(title, needle) {
			matched = append(matched, title)
		}
	}
	return pageOf(matched, page, limit), nil
}

func matchesLocal(title localTitle, needle string) bool {
	if strings.Contains(strings.ToLower(title.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(title.TitleJapanese), needle) {
		return true
	}
	for _, genre := range title.Genres {
		if strings.Contains(strings.ToLower(genre), needle) {
			return true
		}
	}
	return false
}

// pageOf slices one page out of the selection. Out-of-range pages are
// an empty result, never an error.
func pageOf(titles []localTitle, page, pageSize int) []Candidate {
	if pageSize <= 0 {
		pageSize = 25
	}
	if page < 1 {
		return []Candidate{}
	}
	start := (page - 1) * pageSize
	if start >= len(titles) {
		return []Candidate{}
	}
	end := start + pageSize
	if end > len(titles) {
		end = len(titles)
	}

	out := make([]Candidate, 0, end-start)
	for _, title := range titles[start:end] {
		out = append(out, Candidate{
			ExternalID:    title.MalID,
			Title:         title.Title,
			TitleJapanese: title.TitleJapanese,
			Image:         title.Image,
			Kind:          title.Type,
			Genres:        append([]string{}, title.Genres...),
			TotalEpisodes: title.Episodes,
			Year:          title.Year,
			Studio:        title.Studio,
			Synopsis:      title.Synopsis,
		})
	}
	return out
}
