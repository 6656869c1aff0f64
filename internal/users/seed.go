// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package users

// Seed loads the sample roster with four users whose tastes cover distinct
// genre clusters. Movie IDs refer to the seeded catalog order.
func Seed(s *Store) {
	alice, _ := s.Register("alice", "alice@email.com", "password123")
	s.AddFavoriteGenre(alice.UserID, "Action")
	s.AddFavoriteGenre(alice.UserID, "Sci-Fi")
	s.RateMovie(alice.UserID, 1, 5.0)  // The Dark Knight
	s.RateMovie(alice.UserID, 6, 4.5)  // Inception
	s.RateMovie(alice.UserID, 7, 4.0)  // The Matrix
	s.RateMovie(alice.UserID, 14, 4.0) // The Avengers

	bob, _ := s.Register("bob", "bob@email.com", "password123")
	s.AddFavoriteGenre(bob.UserID, "Drama")
	s.AddFavoriteGenre(bob.UserID, "Crime")
	s.RateMovie(bob.UserID, 2, 5.0) // The Shawshank Redemption
	s.RateMovie(bob.UserID, 3, 4.5) // The Godfather
	s.RateMovie(bob.UserID, 4, 4.0) // Pulp Fiction
	s.RateMovie(bob.UserID, 8, 4.5) // Goodfellas

	charlie, _ := s.Register("charlie", "charlie@email.com", "password123")
	s.AddFavoriteGenre(charlie.UserID, "Animation")
	s.AddFavoriteGenre(charlie.UserID, "Adventure")
	s.RateMovie(charlie.UserID, 16, 5.0) // The Lion King
	s.RateMovie(charlie.UserID, 17, 4.5) // Finding Nemo
	s.RateMovie(charlie.UserID, 18, 4.0) // Toy Story
	s.RateMovie(charlie.UserID, 15, 4.0) // Jurassic Park

	diana, _ := s.Register("diana", "diana@email.com", "password123")
	s.AddFavoriteGenre(diana.UserID, "Romance")
	s.AddFavoriteGenre(diana.UserID, "Drama")
	s.RateMovie(diana.UserID, 11, 5.0) // Casablanca
	s.RateMovie(diana.UserID, 12, 4.0) // Titanic
	s.RateMovie(diana.UserID, 5, 4.5)  // Forrest Gump
	s.RateMovie(diana.UserID, 2, 4.0)  // The Shawshank Redemption
}
