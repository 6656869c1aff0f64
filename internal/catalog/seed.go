// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package catalog

// Seed loads the sample catalog. The service keeps no persistent storage,
// so the same set is loaded on every start. Insertion order fixes the IDs
// (The Dark Knight = 1 through Seven = 20) that the sample user ratings
// in the users package refer to.
func Seed(s *Store) {
	s.AddMovie("The Dark Knight", "Action", 2008, 9.0, "Christopher Nolan",
		"Batman faces the Joker in this thrilling superhero film", 152)
	s.AddMovie("The Shawshank Redemption", "Drama", 1994, 9.3, "Frank Darabont",
		"Two imprisoned men bond over years, finding solace and redemption", 142)
	s.AddMovie("The Godfather", "Crime", 1972, 9.2, "Francis Ford Coppola",
		"The aging patriarch transfers control of his crime empire to his son", 175)
	s.AddMovie("Pulp Fiction", "Crime", 1994, 8.9, "Quentin Tarantino",
		"Interconnected stories of crime and redemption in Los Angeles", 154)
	s.AddMovie("Forrest Gump", "Drama", 1994, 8.8, "Robert Zemeckis",
		"The life journey of a simple man who achieves extraordinary things", 142)
	s.AddMovie("Inception", "Sci-Fi", 2010, 8.8, "Christopher Nolan",
		"A thief enters people's dreams to steal secrets", 148)
	s.AddMovie("The Matrix", "Sci-Fi", 1999, 8.7, "The Wachowskis",
		"A computer programmer discovers reality is a simulation", 136)
	s.AddMovie("Goodfellas", "Crime", 1990, 8.7, "Martin Scorsese",
		"The rise and fall of a mob associate over three decades", 146)
	s.AddMovie("The Lord of the Rings: The Fellowship of the Ring", "Fantasy", 2001, 8.8, "Peter Jackson",
		"A hobbit embarks on a quest to destroy an ancient ring", 178)
	s.AddMovie("Star Wars: Episode IV - A New Hope", "Sci-Fi", 1977, 8.6, "George Lucas",
		"Young Luke Skywalker joins the Rebel Alliance", 121)
	s.AddMovie("Casablanca", "Romance", 1942, 8.5, "Michael Curtiz",
		"A cynical nightclub owner must choose between love and virtue", 102)
	s.AddMovie("Titanic", "Romance", 1997, 7.8, "James Cameron",
		"A love story aboard the ill-fated RMS Titanic", 194)
	s.AddMovie("Avatar", "Sci-Fi", 2009, 7.8, "James Cameron",
		"A marine explores an alien world and falls in love with its people", 162)
	s.AddMovie("The Avengers", "Action", 2012, 8.0, "Joss Whedon",
		"Superheroes assemble to save Earth from an alien invasion", 143)
	s.AddMovie("Jurassic Park", "Adventure", 1993, 8.1, "Steven Spielberg",
		"Scientists visit a theme park populated by cloned dinosaurs", 127)
	s.AddMovie("The Lion King", "Animation", 1994, 8.5, "Roger Allers",
		"A young lion prince flees after his father's death", 88)
	s.AddMovie("Finding Nemo", "Animation", 2003, 8.2, "Andrew Stanton",
		"A clownfish searches for his missing son across the ocean", 100)
	s.AddMovie("Toy Story", "Animation", 1995, 8.3, "John Lasseter",
		"Toys come to life when humans aren't around", 81)
	s.AddMovie("The Silence of the Lambs", "Thriller", 1991, 8.6, "Jonathan Demme",
		"An FBI trainee seeks help from the imprisoned Dr. Hannibal Lecter", 118)
	s.AddMovie("Seven", "Thriller", 1995, 8.6, "David Fincher",
		"Two detectives hunt a serial killer who uses the seven deadly sins", 127)
}
