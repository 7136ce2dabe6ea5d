package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"animora/internal/catalog/jikan"
	"animora/internal/config"
)

// ErrUnavailable marks a total lookup failure: the catalog source could
// not be reached or answered with garbage. An empty result set is never
// this error.
var ErrUnavailable = errors.New("catalog unavailable")

// ErrStaleResponse marks a response that arrived after a newer request
// superseded it. Callers drop the result and wait for the newer one.
var ErrStaleResponse = errors.New("stale catalog response")

// Provider serves candidate titles. Out-of-range pages yield an empty
// slice, never an error.
type Provider interface {
	// ListTop returns one page of the named category.
	ListTop(ctx context.Context, page int, category Category, pageSize int) ([]Candidate, error)
	// Search matches the query case-insensitively against title,
	// alternate title, and genre tokens. An empty query returns the
	// first limit candidates unfiltered.
	Search(ctx context.Context, query string, limit, page int) ([]Candidate, error)
}

// NewProvider builds the Provider selected by the configuration.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceLocal:
		return NewLocal()
	case config.CatalogSourceJikan:
		client, err := jikan.New(jikan.Config{
			BaseURL: cfg.Catalog.BaseURL,
			Timeout: time.Duration(cfg.Catalog.RequestTimeout) * time.Second,
		})
		if err != nil {
			return nil, err
		}
		return NewRemote(client), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}
