package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// supersedingProvider issues a newer request through the browser while
// the first one is still in flight, modeling a slow lookup overtaken by
// fresh user input.
type supersedingProvider struct {
	browser *Browser
	calls   int
}

func (p *supersedingProvider) ListTop(ctx context.Context, page int, category Category, pageSize int) ([]Candidate, error) {
	p.calls++
	if p.calls == 1 {
		if _, err := p.browser.Search(ctx, "newer query", 5, 1); err != nil {
			return nil, fmt.Errorf("superseding search: %w", err)
		}
	}
	return []Candidate{{Title: "top result"}}, nil
}

func (p *supersedingProvider) Search(ctx context.Context, query string, limit, page int) ([]Candidate, error) {
	p.calls++
	return []Candidate{{Title: "search result"}}, nil
}

func TestBrowserDiscardsSupersededResponse(t *testing.T) {
	provider := &supersedingProvider{}
	browser := NewBrowser(provider, nil)
	provider.browser = browser

	_, err := browser.ListTop(context.Background(), 1, CategoryPopular, 25)
	if !errors.Is(err, ErrStaleResponse) {
		t.Fatalf("expected ErrStaleResponse for overtaken request, got %v", err)
	}

	// The follow-up request is the latest one and succeeds normally.
	got, err := browser.Search(context.Background(), "newer query", 5, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Title != "search result" {
		t.Fatalf("unexpected result: %#v", got)
	}
}

type erroringProvider struct{}

func (erroringProvider) ListTop(ctx context.Context, page int, category Category, pageSize int) ([]Candidate, error) {
	return nil, fmt.Errorf("%w: source down", ErrUnavailable)
}

func (erroringProvider) Search(ctx context.Context, query string, limit, page int) ([]Candidate, error) {
	return nil, fmt.Errorf("%w: source down", ErrUnavailable)
}

func TestBrowserPassesThroughCurrentResults(t *testing.T) {
	browser := NewBrowser(erroringProvider{}, nil)

	if _, err := browser.ListTop(context.Background(), 1, CategoryPopular, 25); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable passthrough, got %v", err)
	}

	local := mustLocal(t)
	browser = NewBrowser(local, nil)
	got, err := browser.Search(context.Background(), "titan", 25, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Attack on Titan" {
		t.Fatalf("unexpected result: %#v", got)
	}
}
