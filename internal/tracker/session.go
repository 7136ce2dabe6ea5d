package tracker

import (
	"strings"

	"animora/internal/config"
	"animora/internal/library"
)

// SortKey selects the ordering of filtered list views.
type SortKey string

const (
	SortLastWatched SortKey = "lastWatched"
	SortTitle       SortKey = "title"
	SortRating      SortKey = "rating"
	SortProgress    SortKey = "progress"
	SortAddedDate   SortKey = "addedDate"
)

var allSortKeys = []SortKey{SortLastWatched, SortTitle, SortRating, SortProgress, SortAddedDate}

var sortKeyByLower = func() map[string]SortKey {
	set := make(map[string]SortKey, len(allSortKeys))
	for _, key := range allSortKeys {
		set[strings.ToLower(string(key))] = key
	}
	return set
}()

// AllSortKeys returns the ordered list of known sort keys.
func AllSortKeys() []SortKey {
	cp := make([]SortKey, len(allSortKeys))
	copy(cp, allSortKeys)
	return cp
}

// ParseSortKey converts a string into a known SortKey, case-insensitively.
func ParseSortKey(value string) (SortKey, bool) {
	key, ok := sortKeyByLower[strings.ToLower(strings.TrimSpace(value))]
	return key, ok
}

// FilterAll is the status filter value that keeps every entry.
const FilterAll = "all"

// Session carries the per-session list-view state: free-text search,
// status filter, and sort key. One instance lives per user session and
// is shared by reference with whatever renders filtered views.
type Session struct {
	SearchQuery  string
	FilterStatus string
	SortBy       SortKey
}

// NewSession builds a session from configured defaults. Unknown values
// fall back to the lastWatched sort over the full collection.
func NewSession(cfg *config.Config) *Session {
	session := &Session{
		FilterStatus: FilterAll,
		SortBy:       SortLastWatched,
	}
	if cfg == nil {
		return session
	}
	if key, ok := ParseSortKey(cfg.Session.SortBy); ok {
		session.SortBy = key
	}
	filter := strings.TrimSpace(cfg.Session.StatusFilter)
	if status, ok := library.ParseStatus(filter); ok {
		session.FilterStatus = string(status)
	}
	return session
}

// SetFilterStatus applies a status filter; empty or "all" clears it.
func (s *Session) SetFilterStatus(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, FilterAll) {
		s.FilterStatus = FilterAll
		return true
	}
	status, ok := library.ParseStatus(trimmed)
	if !ok {
		return false
	}
	s.FilterStatus = string(status)
	return true
}
