// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

// Package recommend implements the recommendation engine: genre-affinity
// and user-based collaborative filtering with a popularity fallback, plus
// item-to-item similarity and trending rankings.
//
// The engine is stateless between calls and reads the catalog and roster
// through injected interfaces. Empty results are the normal outcome for
// users or movies with nothing to recommend; no method returns an error
// for "no results".
package recommend

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/suhail100506/moviebot/internal/logging"
	"github.com/suhail100506/moviebot/internal/models"
)

// Engine produces movie recommendations from the catalog and user roster.
type Engine struct {
	cfg     Config
	catalog Catalog
	roster  Roster
	logger  zerolog.Logger
}

// NewEngine creates an engine over the given read surfaces.
func NewEngine(cfg Config, catalog Catalog, roster Roster) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog must not be nil")
	}
	if roster == nil {
		return nil, fmt.Errorf("roster must not be nil")
	}

	return &Engine{
		cfg:     cfg,
		catalog: catalog,
		roster:  roster,
		logger:  logging.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend returns up to maxCount personalized picks for the user.
//
// Three strategies run in order: genre affinity and collaborative
// filtering each fill up to maxCount/2 slots, and top-rated popularity
// fills whatever remains. The merged list is deduplicated, stripped of
// watched movies, and truncated, preserving stage order. An odd maxCount
// leaves the two halves one slot short; the fallback absorbs it.
func (e *Engine) Recommend(user models.User, maxCount int) []models.Movie {
	if maxCount <= 0 {
		return []models.Movie{}
	}

	picks := e.genreBased(user, maxCount/2)
	picks = append(picks, e.collaborative(user, maxCount/2)...)
	if len(picks) < maxCount {
		picks = append(picks, e.popular(user, maxCount-len(picks))...)
	}

	seen := make(map[int]bool, len(picks))
	out := make([]models.Movie, 0, maxCount)
	for _, m := range picks {
		if seen[m.ID] || user.HasWatched(m.ID) {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
		if len(out) == maxCount {
			break
		}
	}

	e.logger.Debug().
		Int("user_id", user.UserID).
		Int("max_count", maxCount).
		Int("returned", len(out)).
		Msg("recommendations computed")
	return out
}

// genreBased picks unwatched movies from the user's favorite genres,
// best-rated first. Users with no stated favorites fall back to genres
// inferred from their own high ratings.
func (e *Engine) genreBased(user models.User, count int) []models.Movie {
	if count <= 0 {
		return []models.Movie{}
	}

	genres := user.FavoriteGenres
	if len(genres) == 0 {
		genres = e.genresFromRatings(user)
	}

	out := []models.Movie{}
	for _, genre := range genres {
		genreMovies := e.catalog.SearchByGenre(genre)
		sort.SliceStable(genreMovies, func(i, j int) bool {
			return genreMovies[i].Rating > genreMovies[j].Rating
		})

		for _, m := range genreMovies {
			if user.HasWatched(m.ID) || containsMovie(out, m.ID) {
				continue
			}
			out = append(out, m)
			if len(out) >= count {
				return out
			}
		}
	}
	return out
}

// collaborative scores unwatched movies by the high ratings of the user's
// nearest neighbors, weighting each vote by neighbor similarity and
// averaging over the vote count.
func (e *Engine) collaborative(user models.User, count int) []models.Movie {
	if count <= 0 {
		return []models.Movie{}
	}

	neighbors := e.findSimilarUsers(user)

	scores := make(map[int]float64)
	votes := make(map[int]int)
	for _, nb := range neighbors {
		for movieID, rating := range nb.user.MovieRatings {
			if rating >= e.cfg.HighRatingThreshold && !user.HasWatched(movieID) {
				scores[movieID] += rating * nb.similarity
				votes[movieID]++
			}
		}
	}

	type candidate struct {
		movieID int
		score   float64
	}
	ranked := make([]candidate, 0, len(scores))
	for movieID, total := range scores {
		ranked = append(ranked, candidate{movieID, total / float64(votes[movieID])})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].movieID < ranked[j].movieID
	})

	out := []models.Movie{}
	for _, c := range ranked {
		if m, ok := e.catalog.GetByID(c.movieID); ok {
			out = append(out, m)
			if len(out) >= count {
				break
			}
		}
	}
	return out
}

// popular is the fallback stage: top-rated movies the user has not seen.
// The fetch is oversampled so filtering out watched titles rarely leaves
// the result short.
func (e *Engine) popular(user models.User, count int) []models.Movie {
	if count <= 0 {
		return []models.Movie{}
	}

	out := []models.Movie{}
	for _, m := range e.catalog.TopRated(count * e.cfg.PopularityOversample) {
		if user.HasWatched(m.ID) {
			continue
		}
		out = append(out, m)
		if len(out) >= count {
			break
		}
	}
	return out
}

// neighbor pairs a roster user with their similarity to the target.
type neighbor struct {
	user       models.User
	similarity float64
}

// findSimilarUsers returns the closest neighbors whose similarity exceeds
// the configured threshold, most similar first. Ties keep roster order,
// which is user ID ascending.
func (e *Engine) findSimilarUsers(target models.User) []neighbor {
	neighbors := []neighbor{}
	for _, other := range e.roster.All() {
		if other.UserID == target.UserID {
			continue
		}
		sim := UserSimilarity(target.MovieRatings, other.MovieRatings, e.cfg.MinCommonRatings)
		if sim > e.cfg.MinSimilarity {
			neighbors = append(neighbors, neighbor{other, sim})
		}
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].similarity > neighbors[j].similarity
	})
	if len(neighbors) > e.cfg.SimilarUserLimit {
		neighbors = neighbors[:e.cfg.SimilarUserLimit]
	}
	return neighbors
}

// genresFromRatings infers genre preferences from the user's own high
// ratings, ordered by average rating descending with genre name ascending
// as the tie-break.
func (e *Engine) genresFromRatings(user models.User) []string {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for movieID, rating := range user.MovieRatings {
		if rating < e.cfg.HighRatingThreshold {
			continue
		}
		if m, ok := e.catalog.GetByID(movieID); ok {
			sums[m.Genre] += rating
			counts[m.Genre]++
		}
	}

	type genreScore struct {
		genre string
		avg   float64
	}
	ranked := make([]genreScore, 0, len(sums))
	for genre, total := range sums {
		ranked = append(ranked, genreScore{genre, total / float64(counts[genre])})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].avg != ranked[j].avg {
			return ranked[i].avg > ranked[j].avg
		}
		return ranked[i].genre < ranked[j].genre
	})

	genres := make([]string, len(ranked))
	for i, gs := range ranked {
		genres[i] = gs.genre
	}
	return genres
}

// SimilarMovies ranks catalog movies by similarity to the target.
// Eligible candidates share the target's genre or sit within 1.0 aggregate
// rating points; the target itself is excluded. Ties keep catalog order,
// which is movie ID ascending.
func (e *Engine) SimilarMovies(target models.Movie, count int) []models.Movie {
	if count <= 0 {
		return []models.Movie{}
	}

	const ratingWindow = 1.0

	candidates := []models.Movie{}
	for _, m := range e.catalog.All() {
		if m.ID == target.ID {
			continue
		}
		ratingGap := m.Rating - target.Rating
		if ratingGap < 0 {
			ratingGap = -ratingGap
		}
		if m.Genre == target.Genre || ratingGap <= ratingWindow {
			candidates = append(candidates, m)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return MovieSimilarity(target, candidates[i]) > MovieSimilarity(target, candidates[j])
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates
}

// Trending returns recent, well-rated movies: aggregate rating at or above
// the trending threshold and release year at or past the cutoff, sorted by
// rating descending with ID ascending on ties.
func (e *Engine) Trending(count int) []models.Movie {
	if count <= 0 {
		return []models.Movie{}
	}

	trending := []models.Movie{}
	for _, m := range e.catalog.WithMinRating(e.cfg.TrendingMinRating) {
		if m.Year >= e.cfg.TrendingMinYear {
			trending = append(trending, m)
		}
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Rating > trending[j].Rating
	})
	if len(trending) > count {
		trending = trending[:count]
	}
	return trending
}

// containsMovie reports whether the slice already holds the movie ID.
func containsMovie(movies []models.Movie, id int) bool {
	for _, m := range movies {
		if m.ID == id {
			return true
		}
	}
	return false
}
