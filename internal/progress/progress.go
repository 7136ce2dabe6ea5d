package progress

// episodesPerSeasonGuess is the fallback season length used when a
// catalog entry reports episodes but no season count. Standard one-cour
// TV seasons run 12 episodes.
const episodesPerSeasonGuess = 12

// SeasonForEpisode maps an absolute episode number to its season.
// Episode 0 (nothing watched yet) maps to season 1, and the result is
// capped at totalSeasons so over-counted episodes never produce a
// season that does not exist.
func SeasonForEpisode(episode, totalEpisodes, totalSeasons int) int {
	if totalSeasons <= 1 {
		return 1
	}
	if episode <= 0 || totalEpisodes <= 0 {
		return 1
	}
	perSeason := ceilDiv(totalEpisodes, totalSeasons)
	season := ceilDiv(episode, perSeason)
	if season < 1 {
		season = 1
	}
	if season > totalSeasons {
		season = totalSeasons
	}
	return season
}

// CompletionFraction returns watched progress in [0, 1]. A title with
// no known episode count reports zero progress rather than dividing by
// zero.
func CompletionFraction(currentEpisode, totalEpisodes int) float64 {
	if totalEpisodes <= 0 {
		return 0
	}
	return float64(currentEpisode) / float64(totalEpisodes)
}

// DerivedSeasonCount estimates a season count from an episode count
// when the catalog supplies none. Always at least one season.
func DerivedSeasonCount(totalEpisodes int) int {
	if totalEpisodes <= 0 {
		return 1
	}
	count := ceilDiv(totalEpisodes, episodesPerSeasonGuess)
	if count < 1 {
		count = 1
	}
	return count
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
