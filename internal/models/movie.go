// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package models

import "fmt"

// Movie represents a single catalog entry. Movies are immutable once added;
// IDs are assigned sequentially by the catalog store starting at 1.
//
// Rating is the aggregate critic score on a 0-10 scale, distinct from the
// per-user 1-5 ratings stored on User.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Year        int     `json:"year"`
	Rating      float64 `json:"rating"`
	Director    string  `json:"director"`
	Description string  `json:"description,omitempty"`
	Duration    int     `json:"duration_minutes,omitempty"`
}

// FormattedDuration renders the runtime as "2h 32m" for display surfaces.
func (m Movie) FormattedDuration() string {
	if m.Duration <= 0 {
		return "unknown"
	}
	hours := m.Duration / 60
	minutes := m.Duration % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// String implements fmt.Stringer for log output.
func (m Movie) String() string {
	return fmt.Sprintf("%s (%d) - %s [%.1f/10]", m.Title, m.Year, m.Genre, m.Rating)
}
