package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const titleColumns = "id, title, title_japanese, image, total_seasons, total_episodes, current_episode, current_season, status, rating, genres, studio, year, synopsis, notes, is_favorite, added_date, last_watched"

// Insert persists a new row. The id must not already exist.
func (s *Store) Insert(ctx context.Context, row TrackedTitle) error {
	genresJSON, err := json.Marshal(emptyIfNil(row.Genres))
	if err != nil {
		return fmt.Errorf("marshal genres: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO tracked_titles (`+titleColumns+`)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID,
		row.Title,
		nullableString(row.TitleJapanese),
		nullableString(row.Image),
		row.TotalSeasons,
		row.TotalEpisodes,
		row.CurrentEpisode,
		row.CurrentSeason,
		string(row.Status),
		row.Rating,
		string(genresJSON),
		nullableString(row.Studio),
		nullableInt(row.Year),
		nullableString(row.Synopsis),
		nullableString(row.Notes),
		boolToInt(row.IsFavorite),
		row.AddedDate.Format(time.DateOnly),
		nullableDate(row.LastWatched),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, row.ID)
		}
		return fmt.Errorf("insert title: %w", err)
	}
	return nil
}

// GetAll returns every row, newest additions first.
func (s *Store) GetAll(ctx context.Context) ([]TrackedTitle, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+titleColumns+` FROM tracked_titles ORDER BY added_date DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: query titles: %w", ErrStorageRead, err)
	}
	defer rows.Close()

	var titles []TrackedTitle
	for rows.Next() {
		title, err := scanTitle(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorageRead, err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageRead, err)
	}
	return titles, nil
}

// GetByID fetches a row by identifier, returning (nil, nil) when absent.
func (s *Store) GetByID(ctx context.Context, id string) (*TrackedTitle, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+titleColumns+` FROM tracked_titles WHERE id = ?`, id)
	title, err := scanTitle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get title: %w", ErrStorageRead, err)
	}
	return &title, nil
}

// UpdateFields applies only the fields carried by the patch. An empty
// patch succeeds without touching the row.
func (s *Store) UpdateFields(ctx context.Context, id string, patch Patch) error {
	if patch.IsZero() {
		if exists, err := s.exists(ctx, id); err != nil {
			return err
		} else if !exists {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil
	}

	assignments, args, err := patchAssignments(patch)
	if err != nil {
		return err
	}
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, `UPDATE tracked_titles SET `+assignments+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update title: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Delete removes a row by identifier. Deleting an absent id is an error,
// not a no-op, so callers can surface typos.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tracked_titles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete title: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Count returns the number of stored rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM tracked_titles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count titles: %w", ErrStorageRead, err)
	}
	return count, nil
}

func (s *Store) exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM tracked_titles WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: check title: %w", ErrStorageRead, err)
	}
	return true, nil
}

func patchAssignments(patch Patch) (string, []any, error) {
	var clause []byte
	var args []any

	add := func(column string, value any) {
		if len(clause) > 0 {
			clause = append(clause, ", "...)
		}
		clause = append(clause, column...)
		clause = append(clause, " = ?"...)
		args = append(args, value)
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.TitleJapanese != nil {
		add("title_japanese", nullableString(*patch.TitleJapanese))
	}
	if patch.Image != nil {
		add("image", nullableString(*patch.Image))
	}
	if patch.TotalSeasons != nil {
		add("total_seasons", *patch.TotalSeasons)
	}
	if patch.TotalEpisodes != nil {
		add("total_episodes", *patch.TotalEpisodes)
	}
	if patch.CurrentEpisode != nil {
		add("current_episode", *patch.CurrentEpisode)
	}
	if patch.CurrentSeason != nil {
		add("current_season", *patch.CurrentSeason)
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.Rating != nil {
		add("rating", *patch.Rating)
	}
	if patch.Genres != nil {
		genresJSON, err := json.Marshal(emptyIfNil(*patch.Genres))
		if err != nil {
			return "", nil, fmt.Errorf("marshal genres: %w", err)
		}
		add("genres", string(genresJSON))
	}
	if patch.Studio != nil {
		add("studio", nullableString(*patch.Studio))
	}
	if patch.Year != nil {
		add("year", nullableInt(*patch.Year))
	}
	if patch.Synopsis != nil {
		add("synopsis", nullableString(*patch.Synopsis))
	}
	if patch.Notes != nil {
		add("notes", nullableString(*patch.Notes))
	}
	if patch.IsFavorite != nil {
		add("is_favorite", boolToInt(*patch.IsFavorite))
	}
	if patch.LastWatched != nil {
		add("last_watched", patch.LastWatched.Format(time.DateOnly))
	}

	return string(clause), args, nil
}

func scanTitle(scanner interface{ Scan(dest ...any) error }) (TrackedTitle, error) {
	var (
		id             string
		titleValue     string
		titleJapanese  sql.NullString
		image          sql.NullString
		totalSeasons   int
		totalEpisodes  int
		currentEpisode int
		currentSeason  int
		statusStr      string
		rating         float64
		genresRaw      sql.NullString
		studio         sql.NullString
		year           sql.NullInt64
		synopsis       sql.NullString
		notes          sql.NullString
		isFavorite     sql.NullInt64
		addedRaw       string
		lastWatchedRaw sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&titleValue,
		&titleJapanese,
		&image,
		&totalSeasons,
		&totalEpisodes,
		&currentEpisode,
		&currentSeason,
		&statusStr,
		&rating,
		&genresRaw,
		&studio,
		&year,
		&synopsis,
		&notes,
		&isFavorite,
		&addedRaw,
		&lastWatchedRaw,
	); err != nil {
		return TrackedTitle{}, err
	}

	title := TrackedTitle{
		ID:             id,
		Title:          titleValue,
		TitleJapanese:  titleJapanese.String,
		Image:          image.String,
		TotalSeasons:   totalSeasons,
		TotalEpisodes:  totalEpisodes,
		CurrentEpisode: currentEpisode,
		CurrentSeason:  currentSeason,
		Status:         Status(statusStr),
		Rating:         rating,
		Studio:         studio.String,
		Year:           int(year.Int64),
		Synopsis:       synopsis.String,
		Notes:          notes.String,
		IsFavorite:     isFavorite.Valid && isFavorite.Int64 != 0,
	}

	genres := []string{}
	if genresRaw.Valid && genresRaw.String != "" {
		if err := json.Unmarshal([]byte(genresRaw.String), &genres); err != nil {
			return TrackedTitle{}, fmt.Errorf("decode genres for %s: %w", id, err)
		}
	}
	title.Genres = genres

	added, err := parseDate(addedRaw)
	if err != nil {
		return TrackedTitle{}, fmt.Errorf("decode added date for %s: %w", id, err)
	}
	title.AddedDate = added

	if lastWatchedRaw.Valid && lastWatchedRaw.String != "" {
		watched, err := parseDate(lastWatchedRaw.String)
		if err != nil {
			return TrackedTitle{}, fmt.Errorf("decode last watched for %s: %w", id, err)
		}
		title.LastWatched = &watched
	}

	return title, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// emptyIfNil keeps genres round-tripping as a JSON array even when the
// caller never set the slice.
func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value int) any {
	if value == 0 {
		return nil
	}
	return value
}

func nullableDate(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.Format(time.DateOnly)
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
