package main

import (
	"time"

	"animora/internal/catalog"
	"animora/internal/library"
	"animora/internal/tracker"
)

// titleJSON is the scripting-friendly shape of one tracked title.
type titleJSON struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	TitleJapanese  string   `json:"titleJapanese,omitempty"`
	Image          string   `json:"image,omitempty"`
	TotalSeasons   int      `json:"totalSeasons"`
	TotalEpisodes  int      `json:"totalEpisodes"`
	CurrentEpisode int      `json:"currentEpisode"`
	CurrentSeason  int      `json:"currentSeason"`
	Status         string   `json:"status"`
	Rating         float64  `json:"rating"`
	Genres         []string `json:"genres"`
	Studio         string   `json:"studio,omitempty"`
	Year           int      `json:"year,omitempty"`
	Synopsis       string   `json:"synopsis,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	IsFavorite     bool     `json:"isFavorite"`
	AddedDate      string   `json:"addedDate"`
	LastWatched    *string  `json:"lastWatched"`
}

func toTitleJSON(title library.TrackedTitle) titleJSON {
	out := titleJSON{
		ID:             title.ID,
		Title:          title.Title,
		TitleJapanese:  title.TitleJapanese,
		Image:          title.Image,
		TotalSeasons:   title.TotalSeasons,
		TotalEpisodes:  title.TotalEpisodes,
		CurrentEpisode: title.CurrentEpisode,
		CurrentSeason:  title.CurrentSeason,
		Status:         string(title.Status),
		Rating:         title.Rating,
		Genres:         title.Genres,
		Studio:         title.Studio,
		Year:           title.Year,
		Synopsis:       title.Synopsis,
		Notes:          title.Notes,
		IsFavorite:     title.IsFavorite,
		AddedDate:      title.AddedDate.Format(time.DateOnly),
	}
	if out.Genres == nil {
		out.Genres = []string{}
	}
	if title.LastWatched != nil {
		formatted := title.LastWatched.Format(time.DateOnly)
		out.LastWatched = &formatted
	}
	return out
}

func toTitleJSONList(titles []library.TrackedTitle) []titleJSON {
	out := make([]titleJSON, 0, len(titles))
	for _, title := range titles {
		out = append(out, toTitleJSON(title))
	}
	return out
}

// statsJSON mirrors tracker.Stats with stable field names.
type statsJSON struct {
	Total           int `json:"total"`
	Watching        int `json:"watching"`
	Completed       int `json:"completed"`
	PlanToWatch     int `json:"planToWatch"`
	OnHold          int `json:"onHold"`
	Dropped         int `json:"dropped"`
	Favorites       int `json:"favorites"`
	EpisodesWatched int `json:"episodesWatched"`
}

func toStatsJSON(stats tracker.Stats) statsJSON {
	return statsJSON(stats)
}

// candidateJSON is the scripting-friendly shape of one catalog result.
type candidateJSON struct {
	ExternalID    int64    `json:"externalId"`
	Title         string   `json:"title"`
	TitleJapanese string   `json:"titleJapanese,omitempty"`
	Image         string   `json:"image,omitempty"`
	Kind          string   `json:"type,omitempty"`
	Genres        []string `json:"genres"`
	TotalEpisodes int      `json:"totalEpisodes"`
	Year          int      `json:"year,omitempty"`
	Studio        string   `json:"studio,omitempty"`
	Synopsis      string   `json:"synopsis,omitempty"`
}

func toCandidateJSONList(candidates []catalog.Candidate) []candidateJSON {
	out := make([]candidateJSON, 0, len(candidates))
	for _, candidate := range candidates {
		row := candidateJSON{
			ExternalID:    candidate.ExternalID,
			Title:         candidate.Title,
			TitleJapanese: candidate.TitleJapanese,
			Image:         candidate.Image,
			Kind:          candidate.Kind,
			Genres:        candidate.Genres,
			TotalEpisodes: candidate.TotalEpisodes,
			Year:          candidate.Year,
			Studio:        candidate.Studio,
			Synopsis:      candidate.Synopsis,
		}
		if row.Genres == nil {
			row.Genres = []string{}
		}
		out = append(out, row)
	}
	return out
}
