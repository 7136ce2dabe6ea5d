package jikan

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTopAnimeBuildsQueryAndParsesResponse(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		if r.URL.Path != "/top/anime" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		resp := map[string]any{
			"data": []map[string]any{
				{
					"mal_id":         5114,
					"title":          "Fullmetal Alchemist: Brotherhood",
					"title_japanese": "鋼の錬金術師",
					"type":           "TV",
					"episodes":       64,
					"year":           2009,
					"synopsis":       "Two brothers seek the Philosopher's Stone.",
					"images": map[string]any{
						"jpg": map[string]any{"image_url": "https://example.test/fma.jpg"},
					},
					"studios": []map[string]any{{"mal_id": 4, "name": "Bones"}},
					"genres":  []map[string]any{{"mal_id": 1, "name": "Action"}, {"mal_id": 2, "name": "Adventure"}},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New client failed: %v", err)
	}

	animes, err := client.TopAnime(context.Background(), TopRequest{Page: 2, Limit: 10, Filter: "bypopularity"})
	if err != nil {
		t.Fatalf("TopAnime returned error: %v", err)
	}
	if len(animes) != 1 {
		t.Fatalf("expected 1 anime, got %d", len(animes))
	}

	anime := animes[0]
	if anime.MalID != 5114 || anime.Title != "Fullmetal Alchemist: Brotherhood" {
		t.Fatalf("unexpected anime: %#v", anime)
	}
	if anime.Images.JPG.ImageURL != "https://example.test/fma.jpg" {
		t.Fatalf("image url not parsed: %q", anime.Images.JPG.ImageURL)
	}
	if len(anime.Studios) != 1 || anime.Studios[0].Name != "Bones" {
		t.Fatalf("studios not parsed: %#v", anime.Studios)
	}
	if len(anime.Genres) != 2 {
		t.Fatalf("genres not parsed: %#v", anime.Genres)
	}

	query := captured.URL.Query()
	if query.Get("page") != "2" || query.Get("limit") != "10" || query.Get("filter") != "bypopularity" {
		t.Fatalf("unexpected query: %v", query)
	}
	if query.Has("type") {
		t.Fatalf("type should be omitted when empty, got %q", query.Get("type"))
	}
}

func TestSearchAnimeBuildsQuery(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		if r.URL.Path != "/anime" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{}})
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New client failed: %v", err)
	}

	animes, err := client.SearchAnime(context.Background(), "frieren", 20, 1)
	if err != nil {
		t.Fatalf("SearchAnime returned error: %v", err)
	}
	if len(animes) != 0 {
		t.Fatalf("expected empty result, got %d", len(animes))
	}

	query := captured.URL.Query()
	if query.Get("q") != "frieren" || query.Get("limit") != "20" || query.Get("page") != "1" {
		t.Fatalf("unexpected query: %v", query)
	}
}

func TestErrorStatusSurfacesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New client failed: %v", err)
	}

	if _, err := client.SearchAnime(context.Background(), "anything", 5, 1); err == nil {
		t.Fatal("expected error for 429 response")
	}
}
