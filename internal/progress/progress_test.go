package progress_test

import (
	"math"
	"testing"

	"animora/internal/progress"
)

func TestSeasonForEpisode(t *testing.T) {
	cases := []struct {
		name          string
		episode       int
		totalEpisodes int
		totalSeasons  int
		expected      int
	}{
		{"single season short-circuits", 7, 12, 1, 1},
		{"episode zero maps to season one", 0, 48, 4, 1},
		{"first episode", 1, 48, 4, 1},
		{"boundary of season one", 12, 48, 4, 1},
		{"first episode of season two", 13, 48, 4, 2},
		{"final episode lands in final season", 48, 48, 4, 4},
		{"uneven split rounds season length up", 13, 25, 2, 1},
		{"uneven split second season", 14, 25, 2, 2},
		{"episode beyond total capped at last season", 90, 48, 4, 4},
		{"negative episode treated as unwatched", -3, 24, 2, 1},
		{"zero total episodes", 5, 0, 3, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := progress.SeasonForEpisode(tc.episode, tc.totalEpisodes, tc.totalSeasons)
			if got != tc.expected {
				t.Fatalf("SeasonForEpisode(%d, %d, %d) = %d, expected %d",
					tc.episode, tc.totalEpisodes, tc.totalSeasons, got, tc.expected)
			}
		})
	}
}

func TestSeasonForEpisodeCoversFullRange(t *testing.T) {
	// For every valid episode the derived season must stay in [1, S],
	// and the last episode always reaches the last season.
	const totalEpisodes, totalSeasons = 37, 5
	for episode := 0; episode <= totalEpisodes; episode++ {
		season := progress.SeasonForEpisode(episode, totalEpisodes, totalSeasons)
		if season < 1 || season > totalSeasons {
			t.Fatalf("episode %d produced out-of-range season %d", episode, season)
		}
	}
	if got := progress.SeasonForEpisode(totalEpisodes, totalEpisodes, totalSeasons); got != totalSeasons {
		t.Fatalf("final episode mapped to season %d, expected %d", got, totalSeasons)
	}
}

func TestCompletionFraction(t *testing.T) {
	cases := []struct {
		name     string
		current  int
		total    int
		expected float64
	}{
		{"zero total", 5, 0, 0},
		{"negative total", 5, -1, 0},
		{"unwatched", 0, 24, 0},
		{"halfway", 12, 24, 0.5},
		{"complete", 24, 24, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := progress.CompletionFraction(tc.current, tc.total)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Fatalf("CompletionFraction(%d, %d) = %f, expected %f", tc.current, tc.total, got, tc.expected)
			}
		})
	}
}

func TestDerivedSeasonCount(t *testing.T) {
	cases := []struct {
		episodes int
		expected int
	}{
		{0, 1},
		{-4, 1},
		{1, 1},
		{12, 1},
		{13, 2},
		{24, 2},
		{25, 3},
		{64, 6},
	}

	for _, tc := range cases {
		if got := progress.DerivedSeasonCount(tc.episodes); got != tc.expected {
			t.Fatalf("DerivedSeasonCount(%d) = %d, expected %d", tc.episodes, got, tc.expected)
		}
	}
}
