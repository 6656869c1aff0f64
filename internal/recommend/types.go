// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package recommend

import "github.com/suhail100506/moviebot/internal/models"

// Catalog is the read-only movie surface the engine consumes. Implementations
// must return ID-ascending snapshots so ranking ties resolve deterministically.
// *catalog.Store satisfies this interface.
type Catalog interface {
	GetByID(id int) (models.Movie, bool)
	All() []models.Movie
	SearchByGenre(genre string) []models.Movie
	WithMinRating(minRating float64) []models.Movie
	TopRated(limit int) []models.Movie
}

// Roster is the read-only user surface the engine consumes. All must return
// an ID-ascending snapshot. *users.Store satisfies this interface.
type Roster interface {
	All() []models.User
}
