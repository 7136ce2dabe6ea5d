package catalog

import (
	"animora/internal/library"
	"animora/internal/progress"
)

// ToDraft maps a candidate into the draft shape the add flow consumes.
// Fields the catalog lacks get their creation defaults; a missing season
// count is derived from the episode count.
func ToDraft(candidate Candidate) library.Draft {
	seasons := candidate.TotalSeasons
	if seasons <= 0 {
		seasons = progress.DerivedSeasonCount(candidate.TotalEpisodes)
	}
	return library.Draft{
		Title:         candidate.Title,
		TitleJapanese: candidate.TitleJapanese,
		Image:         candidate.Image,
		TotalSeasons:  seasons,
		TotalEpisodes: candidate.TotalEpisodes,
		Genres:        append([]string{}, candidate.Genres...),
		Studio:        candidate.Studio,
		Year:          candidate.Year,
		Synopsis:      candidate.Synopsis,
	}
}
