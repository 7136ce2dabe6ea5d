package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"animora/internal/library"
	"animora/internal/logging"
)

// ErrInvalidArgument marks a mutation carrying an out-of-range episode,
// season, or rating, or an unknown status. The engine rejects rather
// than clamps so callers learn about bad input.
var ErrInvalidArgument = errors.New("invalid argument")

// Engine owns the authoritative in-memory mirror of the tracked-title
// collection. Mutations persist through the store before the mirror is
// touched; a failed write leaves the mirror unchanged.
type Engine struct {
	store   *library.Store
	session *Session
	logger  *slog.Logger
	now     func() time.Time

	mu     sync.Mutex
	titles []library.TrackedTitle // newest additions first
}

// New constructs an engine over an opened store. The session is shared
// by reference with the caller; a nil logger discards output.
func New(store *library.Store, session *Session, logger *slog.Logger) *Engine {
	if session == nil {
		session = NewSession(nil)
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Engine{
		store:   store,
		session: session,
		logger:  logger,
		now:     time.Now,
	}
}

// Session returns the session state driving filtered views.
func (e *Engine) Session() *Session {
	return e.session
}

// Load populates the mirror from the store. Call once before serving
// reads or mutations.
func (e *Engine) Load(ctx context.Context) error {
	titles, err := e.store.GetAll(ctx)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.titles = titles
	e.mu.Unlock()
	e.logger.Debug("library loaded", "titles", len(titles))
	return nil
}

// Add creates a tracked title from a draft, assigning the id, the added
// date, and creation defaults, and returns the stored record.
func (e *Engine) Add(ctx context.Context, draft library.Draft) (library.TrackedTitle, error) {
	title, err := e.materialize(draft)
	if err != nil {
		return library.TrackedTitle{}, err
	}

	if err := e.store.Insert(ctx, title); err != nil {
		return library.TrackedTitle{}, err
	}

	e.mu.Lock()
	e.titles = append([]library.TrackedTitle{title}, e.titles...)
	e.mu.Unlock()

	e.logger.Info("title added", "id", title.ID, "title", title.Title)
	return title.Clone(), nil
}

func (e *Engine) materialize(draft library.Draft) (library.TrackedTitle, error) {
	if draft.Title == "" {
		return library.TrackedTitle{}, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}

	title := library.TrackedTitle{
		ID:             uuid.NewString(),
		Title:          draft.Title,
		TitleJapanese:  draft.TitleJapanese,
		Image:          draft.Image,
		TotalSeasons:   draft.TotalSeasons,
		TotalEpisodes:  draft.TotalEpisodes,
		CurrentEpisode: draft.CurrentEpisode,
		CurrentSeason:  draft.CurrentSeason,
		Status:         draft.Status,
		Rating:         draft.Rating,
		Genres:         append([]string{}, draft.Genres...),
		Studio:         draft.Studio,
		Year:           draft.Year,
		Synopsis:       draft.Synopsis,
		Notes:          draft.Notes,
		AddedDate:      e.today(),
	}

	if title.TotalSeasons <= 0 {
		title.TotalSeasons = 1
	}
	if title.TotalEpisodes < 0 {
		return library.TrackedTitle{}, fmt.Errorf("%w: total episodes must not be negative", ErrInvalidArgument)
	}
	if title.CurrentSeason == 0 {
		title.CurrentSeason = 1
	}
	if title.Status == "" {
		title.Status = library.StatusPlanToWatch
	}
	if !title.Status.Valid() {
		return library.TrackedTitle{}, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, title.Status)
	}
	if err := validateRanges(title); err != nil {
		return library.TrackedTitle{}, err
	}
	return title, nil
}

// Update merges the patch into the title. Any update through this path
// stamps lastWatched, matching the historical app behavior even for
// edits unrelated to watching.
func (e *Engine) Update(ctx context.Context, id string, patch library.Patch) (library.TrackedTitle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return library.TrackedTitle{}, fmt.Errorf("%w: %s", library.ErrNotFound, id)
	}

	stamp := e.today()
	patch.LastWatched = &stamp

	merged := e.titles[idx].Clone()
	patch.Apply(&merged)
	if merged.Status != "" && !merged.Status.Valid() {
		return library.TrackedTitle{}, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, merged.Status)
	}
	if err := validateRanges(merged); err != nil {
		return library.TrackedTitle{}, err
	}

	if err := e.store.UpdateFields(ctx, id, patch); err != nil {
		return library.TrackedTitle{}, err
	}
	e.titles[idx] = merged

	e.logger.Info("title updated", "id", id)
	return merged.Clone(), nil
}

// Delete removes the title from the store and the mirror.
func (e *Engine) Delete(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", library.ErrNotFound, id)
	}

	if err := e.store.Delete(ctx, id); err != nil {
		return err
	}
	e.titles = append(e.titles[:idx], e.titles[idx+1:]...)

	e.logger.Info("title removed", "id", id)
	return nil
}

// ToggleFavorite flips the favorite flag and returns the new value.
// Favorites are not watch activity, so lastWatched is left alone.
func (e *Engine) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return false, fmt.Errorf("%w: %s", library.ErrNotFound, id)
	}

	next := !e.titles[idx].IsFavorite
	if err := e.store.UpdateFields(ctx, id, library.Patch{IsFavorite: &next}); err != nil {
		return false, err
	}
	e.titles[idx].IsFavorite = next
	return next, nil
}

// SetProgress records the watched episode and season. Reaching the
// final episode forces the status to completed; the watch date is
// stamped either way. Out-of-range values are rejected.
func (e *Engine) SetProgress(ctx context.Context, id string, episode, season int) (library.TrackedTitle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return library.TrackedTitle{}, fmt.Errorf("%w: %s", library.ErrNotFound, id)
	}
	current := e.titles[idx]

	if episode < 0 || episode > current.TotalEpisodes {
		return library.TrackedTitle{}, fmt.Errorf("%w: episode %d out of range [0, %d]", ErrInvalidArgument, episode, current.TotalEpisodes)
	}
	if season < 1 || season > current.TotalSeasons {
		return library.TrackedTitle{}, fmt.Errorf("%w: season %d out of range [1, %d]", ErrInvalidArgument, season, current.TotalSeasons)
	}

	status := current.Status
	if episode >= current.TotalEpisodes {
		status = library.StatusCompleted
	}
	stamp := e.today()
	patch := library.Patch{
		CurrentEpisode: &episode,
		CurrentSeason:  &season,
		Status:         &status,
		LastWatched:    &stamp,
	}

	if err := e.store.UpdateFields(ctx, id, patch); err != nil {
		return library.TrackedTitle{}, err
	}
	merged := current.Clone()
	patch.Apply(&merged)
	e.titles[idx] = merged

	e.logger.Info("progress updated", "id", id, "episode", episode, "season", season, "status", string(status))
	return merged.Clone(), nil
}

// SetNotes replaces the free-text notes without stamping lastWatched.
func (e *Engine) SetNotes(ctx context.Context, id, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", library.ErrNotFound, id)
	}

	if err := e.store.UpdateFields(ctx, id, library.Patch{Notes: &text}); err != nil {
		return err
	}
	e.titles[idx].Notes = text
	return nil
}

// SetStatus moves the title to one of the five statuses and stamps the
// watch date.
func (e *Engine) SetStatus(ctx context.Context, id string, status library.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, status)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", library.ErrNotFound, id)
	}

	stamp := e.today()
	patch := library.Patch{Status: &status, LastWatched: &stamp}
	if err := e.store.UpdateFields(ctx, id, patch); err != nil {
		return err
	}
	merged := e.titles[idx].Clone()
	patch.Apply(&merged)
	e.titles[idx] = merged

	e.logger.Info("status updated", "id", id, "status", string(status))
	return nil
}

// SetRating records a 0-10 rating (0 meaning unrated) without stamping
// lastWatched.
func (e *Engine) SetRating(ctx context.Context, id string, rating float64) error {
	if rating < 0 || rating > 10 {
		return fmt.Errorf("%w: rating %.1f out of range [0, 10]", ErrInvalidArgument, rating)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", library.ErrNotFound, id)
	}

	if err := e.store.UpdateFields(ctx, id, library.Patch{Rating: &rating}); err != nil {
		return err
	}
	e.titles[idx].Rating = rating
	return nil
}

func (e *Engine) indexOf(id string) int {
	for i := range e.titles {
		if e.titles[i].ID == id {
			return i
		}
	}
	return -1
}

// today truncates the clock to date precision; tracked dates carry no
// time-of-day component.
func (e *Engine) today() time.Time {
	year, month, day := e.now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func validateRanges(title library.TrackedTitle) error {
	if title.CurrentEpisode < 0 || title.CurrentEpisode > title.TotalEpisodes {
		return fmt.Errorf("%w: episode %d out of range [0, %d]", ErrInvalidArgument, title.CurrentEpisode, title.TotalEpisodes)
	}
	if title.CurrentSeason < 1 || title.CurrentSeason > title.TotalSeasons {
		return fmt.Errorf("%w: season %d out of range [1, %d]", ErrInvalidArgument, title.CurrentSeason, title.TotalSeasons)
	}
	if title.Rating < 0 || title.Rating > 10 {
		return fmt.Errorf("%w: rating %.1f out of range [0, 10]", ErrInvalidArgument, title.Rating)
	}
	return nil
}
