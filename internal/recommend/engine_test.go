// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package recommend

import (
	"testing"

	"github.com/suhail100506/moviebot/internal/catalog"
	"github.com/suhail100506/moviebot/internal/models"
	"github.com/suhail100506/moviebot/internal/users"
)

// newSeededEngine builds an engine over the sample catalog and roster.
func newSeededEngine(t *testing.T) (*Engine, *catalog.Store, *users.Store) {
	t.Helper()

	catalogStore := catalog.NewStore()
	catalog.Seed(catalogStore)

	userStore := users.NewStore()
	users.Seed(userStore)

	engine, err := NewEngine(DefaultConfig(), catalogStore, userStore)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine, catalogStore, userStore
}

func movieIDs(movies []models.Movie) []int {
	ids := make([]int, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewEngine(t *testing.T) {
	catalogStore := catalog.NewStore()
	userStore := users.NewStore()

	tests := []struct {
		name    string
		cfg     Config
		catalog Catalog
		roster  Roster
		wantErr bool
	}{
		{"valid", DefaultConfig(), catalogStore, userStore, false},
		{"nil catalog", DefaultConfig(), nil, userStore, true},
		{"nil roster", DefaultConfig(), catalogStore, nil, true},
		{"invalid config", Config{}, catalogStore, userStore, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(tt.cfg, tt.catalog, tt.roster)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEngine() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecommendGenreAndPopularityStages(t *testing.T) {
	engine, _, userStore := newSeededEngine(t)

	// alice favors Action and Sci-Fi and has watched most of both; the
	// genre stage yields the two unwatched Sci-Fi titles and the
	// popularity fallback fills the rest in top-rated order.
	alice, ok := userStore.GetByUsername("alice")
	if !ok {
		t.Fatal("seed user alice missing")
	}

	got := movieIDs(engine.Recommend(alice, 10))
	want := []int{10, 13, 2, 3, 4, 5, 9, 8, 19}
	if !equalIDs(got, want) {
		t.Errorf("Recommend(alice, 10) = %v, want %v", got, want)
	}
}

func TestRecommendDeduplicatesAcrossStages(t *testing.T) {
	engine, _, userStore := newSeededEngine(t)

	// bob's genre stage picks Forrest Gump (5), which the popularity
	// fallback would offer again; it must appear exactly once.
	bob, ok := userStore.GetByUsername("bob")
	if !ok {
		t.Fatal("seed user bob missing")
	}

	got := movieIDs(engine.Recommend(bob, 10))
	want := []int{5, 1, 6, 9, 7, 10, 19, 20, 11}
	if !equalIDs(got, want) {
		t.Errorf("Recommend(bob, 10) = %v, want %v", got, want)
	}
}

func TestRecommendProperties(t *testing.T) {
	engine, _, userStore := newSeededEngine(t)

	for _, user := range userStore.All() {
		got := engine.Recommend(user, 10)

		if len(got) > 10 {
			t.Errorf("user %d: got %d recommendations, want at most 10", user.UserID, len(got))
		}

		seen := make(map[int]bool)
		for _, m := range got {
			if seen[m.ID] {
				t.Errorf("user %d: duplicate movie %d", user.UserID, m.ID)
			}
			seen[m.ID] = true
			if user.HasWatched(m.ID) {
				t.Errorf("user %d: recommended watched movie %d", user.UserID, m.ID)
			}
		}
	}
}

func TestRecommendIdempotent(t *testing.T) {
	engine, _, userStore := newSeededEngine(t)

	for _, user := range userStore.All() {
		first := movieIDs(engine.Recommend(user, 10))
		second := movieIDs(engine.Recommend(user, 10))
		if !equalIDs(first, second) {
			t.Errorf("user %d: repeated calls differ: %v vs %v", user.UserID, first, second)
		}
	}
}

func TestRecommendNonPositiveCount(t *testing.T) {
	engine, _, userStore := newSeededEngine(t)

	alice, _ := userStore.GetByUsername("alice")
	for _, count := range []int{0, -1, -100} {
		got := engine.Recommend(alice, count)
		if got == nil || len(got) != 0 {
			t.Errorf("Recommend(alice, %d) = %v, want empty slice", count, got)
		}
	}
}

func TestRecommendColdStartFallsBackToPopularity(t *testing.T) {
	engine, _, userStore := newSeededEngine(t)

	fresh, err := userStore.Register("newcomer", "new@email.com", "pw1234")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got := movieIDs(engine.Recommend(fresh, 4))
	want := []int{2, 3, 1, 4} // top-rated order
	if !equalIDs(got, want) {
		t.Errorf("Recommend(newcomer, 4) = %v, want %v", got, want)
	}
}

func TestRecommendSingleSlot(t *testing.T) {
	engine, _, userStore := newSeededEngine(t)

	// With maxCount 1 both half budgets round to zero and the fallback
	// supplies the single slot.
	fresh, err := userStore.Register("solo", "solo@email.com", "pw1234")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got := movieIDs(engine.Recommend(fresh, 1))
	want := []int{2}
	if !equalIDs(got, want) {
		t.Errorf("Recommend(solo, 1) = %v, want %v", got, want)
	}
}

func TestCollaborativeScoring(t *testing.T) {
	catalogStore := catalog.NewStore()
	catalog.Seed(catalogStore)

	userStore := users.NewStore()
	target, _ := userStore.Register("target", "t@email.com", "pw1234")
	agree, _ := userStore.Register("agree", "a@email.com", "pw1234")
	disagree, _ := userStore.Register("disagree", "d@email.com", "pw1234")

	// agree rates the shared movies identically (similarity 1.0) and
	// highly rates two movies the target has not seen.
	userStore.RateMovie(target.UserID, 1, 5.0)
	userStore.RateMovie(target.UserID, 2, 4.0)
	userStore.RateMovie(agree.UserID, 1, 5.0)
	userStore.RateMovie(agree.UserID, 2, 4.0)
	userStore.RateMovie(agree.UserID, 3, 5.0)
	userStore.RateMovie(agree.UserID, 4, 4.5)

	// disagree inverts the shared ratings; negative correlation clamps
	// to zero and the user is never a neighbor.
	userStore.RateMovie(disagree.UserID, 1, 4.0)
	userStore.RateMovie(disagree.UserID, 2, 5.0)
	userStore.RateMovie(disagree.UserID, 19, 5.0)

	engine, err := NewEngine(DefaultConfig(), catalogStore, userStore)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	targetUser, _ := userStore.GetByID(target.UserID)
	got := movieIDs(engine.collaborative(targetUser, 5))
	want := []int{3, 4} // ordered by weighted average score
	if !equalIDs(got, want) {
		t.Errorf("collaborative() = %v, want %v", got, want)
	}
}

func TestGenresFromRatings(t *testing.T) {
	engine, _, userStore := newSeededEngine(t)

	implicit, _ := userStore.Register("implicit", "i@email.com", "pw1234")
	userStore.RateMovie(implicit.UserID, 16, 5.0) // The Lion King, Animation
	userStore.RateMovie(implicit.UserID, 7, 4.0)  // The Matrix, Sci-Fi
	userStore.RateMovie(implicit.UserID, 12, 3.0) // Titanic, below threshold

	user, _ := userStore.GetByID(implicit.UserID)
	got := engine.genresFromRatings(user)
	want := []string{"Animation", "Sci-Fi"}
	if len(got) != len(want) {
		t.Fatalf("genresFromRatings() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("genresFromRatings()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSimilarMovies(t *testing.T) {
	engine, catalogStore, _ := newSeededEngine(t)

	darkKnight, ok := catalogStore.GetByID(1)
	if !ok {
		t.Fatal("seed movie 1 missing")
	}

	got := engine.SimilarMovies(darkKnight, 5)
	if len(got) != 5 {
		t.Fatalf("SimilarMovies() returned %d movies, want 5", len(got))
	}

	// The Avengers shares genre, a close year, and a close rating; it
	// outranks Inception, which only matches on director, rating, and year.
	if got[0].ID != 14 {
		t.Errorf("top similar movie = %d, want 14 (The Avengers)", got[0].ID)
	}
	if got[1].ID != 6 {
		t.Errorf("second similar movie = %d, want 6 (Inception)", got[1].ID)
	}

	for _, m := range got {
		if m.ID == darkKnight.ID {
			t.Error("SimilarMovies() must exclude the target itself")
		}
	}
}

func TestSimilarMoviesEligibility(t *testing.T) {
	engine, catalogStore, _ := newSeededEngine(t)

	target, _ := catalogStore.GetByID(1) // Action, 9.0
	for _, m := range engine.SimilarMovies(target, 50) {
		ratingGap := m.Rating - target.Rating
		if ratingGap < 0 {
			ratingGap = -ratingGap
		}
		if m.Genre != target.Genre && ratingGap > 1.0 {
			t.Errorf("movie %d is not eligible: genre %q, rating gap %.1f", m.ID, m.Genre, ratingGap)
		}
	}
}

func TestSimilarMoviesNonPositiveCount(t *testing.T) {
	engine, catalogStore, _ := newSeededEngine(t)

	target, _ := catalogStore.GetByID(1)
	if got := engine.SimilarMovies(target, 0); len(got) != 0 {
		t.Errorf("SimilarMovies(target, 0) = %v, want empty", movieIDs(got))
	}
}

func TestTrending(t *testing.T) {
	engine, _, _ := newSeededEngine(t)

	got := movieIDs(engine.Trending(10))
	want := []int{1, 6, 9, 17, 14, 13}
	if !equalIDs(got, want) {
		t.Errorf("Trending(10) = %v, want %v", got, want)
	}

	top3 := movieIDs(engine.Trending(3))
	if !equalIDs(top3, []int{1, 6, 9}) {
		t.Errorf("Trending(3) = %v, want [1 6 9]", top3)
	}

	if len(engine.Trending(0)) != 0 {
		t.Error("Trending(0) must be empty")
	}
}

func TestTrendingThresholds(t *testing.T) {
	engine, catalogStore, _ := newSeededEngine(t)

	for _, m := range engine.Trending(50) {
		if m.Rating < 7.5 {
			t.Errorf("movie %d rating %.1f below trending threshold", m.ID, m.Rating)
		}
		if m.Year < 2000 {
			t.Errorf("movie %d year %d before trending cutoff", m.ID, m.Year)
		}
	}

	// Titanic qualifies on rating but not on year.
	if titanic, ok := catalogStore.GetByID(12); ok && titanic.Year >= 2000 {
		t.Error("fixture expectation broken: Titanic should predate 2000")
	}
}
