package library

import (
	"strings"
	"time"
)

// Status represents where a tracked title sits in the user's watch lifecycle.
type Status string

const (
	StatusWatching    Status = "watching"
	StatusCompleted   Status = "completed"
	StatusPlanToWatch Status = "planToWatch"
	StatusOnHold      Status = "onHold"
	StatusDropped     Status = "dropped"
)

var allStatuses = []Status{
	StatusWatching,
	StatusCompleted,
	StatusPlanToWatch,
	StatusOnHold,
	StatusDropped,
}

var statusByLower = func() map[string]Status {
	set := make(map[string]Status, len(allStatuses))
	for _, status := range allStatuses {
		set[strings.ToLower(string(status))] = status
	}
	return set
}()

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// ParseStatus converts a string into a known Status, case-insensitively.
func ParseStatus(value string) (Status, bool) {
	status, ok := statusByLower[strings.ToLower(strings.TrimSpace(value))]
	return status, ok
}

// Valid reports whether the status is one of the five known values.
func (s Status) Valid() bool {
	_, ok := statusByLower[strings.ToLower(string(s))]
	return ok
}

// TrackedTitle is one entry in the user's list.
//
// AddedDate is assigned once at creation. LastWatched stays nil until
// the first update that touches watch activity.
type TrackedTitle struct {
	ID             string
	Title          string
	TitleJapanese  string
	Image          string
	TotalSeasons   int
	TotalEpisodes  int
	CurrentEpisode int
	CurrentSeason  int
	Status         Status
	Rating         float64
	Genres         []string
	Studio         string
	Year           int
	Synopsis       string
	Notes          string
	IsFavorite     bool
	AddedDate      time.Time
	LastWatched    *time.Time
}

// Clone returns a deep copy so mirror entries can be handed out without
// exposing engine-internal state to mutation.
func (t TrackedTitle) Clone() TrackedTitle {
	cp := t
	if t.Genres != nil {
		cp.Genres = make([]string, len(t.Genres))
		copy(cp.Genres, t.Genres)
	}
	if t.LastWatched != nil {
		lw := *t.LastWatched
		cp.LastWatched = &lw
	}
	return cp
}

// Draft carries the caller-supplied fields for a new tracked title.
// Zero values fall back to creation defaults: season 1, episode 0,
// planToWatch, unrated, not favorite.
type Draft struct {
	Title          string
	TitleJapanese  string
	Image          string
	TotalSeasons   int
	TotalEpisodes  int
	CurrentEpisode int
	CurrentSeason  int
	Status         Status
	Rating         float64
	Genres         []string
	Studio         string
	Year           int
	Synopsis       string
	Notes          string
}

// Patch describes a partial update. Nil fields are left untouched; the
// fixed shape catches renamed fields at compile time instead of at row
// scan time.
type Patch struct {
	Title          *string
	TitleJapanese  *string
	Image          *string
	TotalSeasons   *int
	TotalEpisodes  *int
	CurrentEpisode *int
	CurrentSeason  *int
	Status         *Status
	Rating         *float64
	Genres         *[]string
	Studio         *string
	Year           *int
	Synopsis       *string
	Notes          *string
	IsFavorite     *bool
	LastWatched    *time.Time
}

// IsZero reports whether the patch carries no fields.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.TitleJapanese == nil && p.Image == nil &&
		p.TotalSeasons == nil && p.TotalEpisodes == nil &&
		p.CurrentEpisode == nil && p.CurrentSeason == nil &&
		p.Status == nil && p.Rating == nil && p.Genres == nil &&
		p.Studio == nil && p.Year == nil && p.Synopsis == nil &&
		p.Notes == nil && p.IsFavorite == nil && p.LastWatched == nil
}

// Apply merges the patch into a title in place.
func (p Patch) Apply(t *TrackedTitle) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.TitleJapanese != nil {
		t.TitleJapanese = *p.TitleJapanese
	}
	if p.Image != nil {
		t.Image = *p.Image
	}
	if p.TotalSeasons != nil {
		t.TotalSeasons = *p.TotalSeasons
	}
	if p.TotalEpisodes != nil {
		t.TotalEpisodes = *p.TotalEpisodes
	}
	if p.CurrentEpisode != nil {
		t.CurrentEpisode = *p.CurrentEpisode
	}
	if p.CurrentSeason != nil {
		t.CurrentSeason = *p.CurrentSeason
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Rating != nil {
		t.Rating = *p.Rating
	}
	if p.Genres != nil {
		genres := make([]string, len(*p.Genres))
		copy(genres, *p.Genres)
		t.Genres = genres
	}
	if p.Studio != nil {
		t.Studio = *p.Studio
	}
	if p.Year != nil {
		t.Year = *p.Year
	}
	if p.Synopsis != nil {
		t.Synopsis = *p.Synopsis
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.IsFavorite != nil {
		t.IsFavorite = *p.IsFavorite
	}
	if p.LastWatched != nil {
		lw := *p.LastWatched
		t.LastWatched = &lw
	}
}
