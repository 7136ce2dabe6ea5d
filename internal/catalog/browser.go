package catalog

import (
	"context"
	"log/slog"
	"sync"

	"animora/internal/logging"
)

// Browser wraps a Provider for interactive use. Every call supersedes
// the ones before it: a response that finishes after a newer request
// started is discarded with ErrStaleResponse, so slow lookups can never
// overwrite the results of whatever the user asked for last.
type Browser struct {
	provider Provider
	logger   *slog.Logger

	mu         sync.Mutex
	generation uint64
}

// NewBrowser wraps the provider. A nil logger discards output.
func NewBrowser(provider Provider, logger *slog.Logger) *Browser {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Browser{provider: provider, logger: logger}
}

// ListTop fetches one category page, dropping the response if a newer
// request superseded this one while it was in flight.
func (b *Browser) ListTop(ctx context.Context, page int, category Category, pageSize int) ([]Candidate, error) {
	token := b.begin()
	out, err := b.provider.ListTop(ctx, page, category, pageSize)
	if !b.latest(token) {
		b.logger.Debug("catalog response superseded", "request", "top", "category", string(category))
		return nil, ErrStaleResponse
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Search runs a query, dropping the response if a newer request
// superseded this one while it was in flight.
func (b *Browser) Search(ctx context.Context, query string, limit, page int) ([]Candidate, error) {
	token := b.begin()
	out, err := b.provider.Search(ctx, query, limit, page)
	if !b.latest(token) {
		b.logger.Debug("catalog response superseded", "request", "search", "query", query)
		return nil, ErrStaleResponse
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Browser) begin() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.generation++
	return b.generation
}

func (b *Browser) latest(token uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return token == b.generation
}
