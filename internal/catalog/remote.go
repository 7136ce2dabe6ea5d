package catalog

import (
	"context"
	"fmt"
	"strings"

	"animora/internal/catalog/jikan"
)

// Remote adapts the Jikan client to the Provider interface.
type Remote struct {
	client *jikan.Client
}

// NewRemote wraps an initialized Jikan client.
func NewRemote(client *jikan.Client) *Remote {
	return &Remote{client: client}
}

// ListTop maps the category onto the Jikan top-anime parameters. Ranked
// categories become filter values; format categories become the type
// parameter.
func (r *Remote) ListTop(ctx context.Context, page int, category Category, pageSize int) ([]Candidate, error) {
	req := jikan.TopRequest{Page: page, Limit: pageSize}
	switch category {
	case CategoryPopular:
		req.Filter = "bypopularity"
	case CategoryFavorites:
		req.Filter = "favorite"
	case CategoryAiring:
		req.Filter = "airing"
	case CategoryUpcoming:
		req.Filter = "upcoming"
	case CategoryTV, CategoryMovie, CategoryOVA, CategoryONA, CategorySpecial:
		req.Type = string(category)
	default:
		return nil, fmt.Errorf("unknown catalog category %q", category)
	}

	animes, err := r.client.TopAnime(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	return fromJikan(animes), nil
}

// Search runs a free-text Jikan query.
func (r *Remote) Search(ctx context.Context, query string, limit, page int) ([]Candidate, error) {
	animes, err := r.client.SearchAnime(ctx, query, limit, page)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	return fromJikan(animes), nil
}

func fromJikan(animes []jikan.Anime) []Candidate {
	out := make([]Candidate, 0, len(animes))
	for _, anime := range animes {
		candidate := Candidate{
			ExternalID:    anime.MalID,
			Title:         anime.Title,
			TitleJapanese: anime.TitleJapanese,
			Image:         anime.Images.JPG.ImageURL,
			Kind:          strings.ToLower(anime.Type),
			TotalEpisodes: anime.Episodes,
			Year:          anime.Year,
			Synopsis:      anime.Synopsis,
		}
		if len(anime.Studios) > 0 {
			candidate.Studio = anime.Studios[0].Name
		}
		for _, genre := range anime.Genres {
			candidate.Genres = append(candidate.Genres, genre.Name)
		}
		out = append(out, candidate)
	}
	return out
}
