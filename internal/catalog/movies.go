// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

package catalog

// movies is the embedded catalog data. Ids are unique and stable; the
// slice order is the canonical catalog order used for tie-breaking.
var movies = []Movie{
	{
		ID:          1,
		Title:       "The Shawshank Redemption",
		Overview:    "Framed in the 1940s for the double murder of his wife and her lover, upstanding banker Andy Dufresne begins a new life at the Shawshank prison, where he puts his accounting skills to work for an amoral warden. During his long stretch in prison, Dufresne comes to be admired by the other inmates -- including an older prisoner named Red -- for his integrity and unquenchable sense of hope.",
		PosterPath:  "/q6y0Go1tsGEsmtFryDOJo3dEmqu.jpg",
		ReleaseDate: "1994-09-23",
		VoteAverage: 8.7,
		Genres:      []Genre{GenreDrama, GenreCrime},
	},
	{
		ID:          2,
		Title:       "The Godfather",
		Overview:    "Spanning the years 1945 to 1955, a chronicle of the fictional Italian-American Corleone crime family. When organized crime family patriarch, Vito Corleone barely survives an attempt on his life, his youngest son, Michael steps in to take care of the would-be killers, launching a campaign of bloody revenge.",
		PosterPath:  "/3bhkrj58Vtu7enYsRolD1fZdja1.jpg",
		ReleaseDate: "1972-03-14",
		VoteAverage: 8.7,
		Genres:      []Genre{GenreDrama, GenreCrime},
	},
	{
		ID:          3,
		Title:       "Inception",
		Overview:    "Cobb, a skilled thief who commits corporate espionage by infiltrating the subconscious of his targets is offered a chance to regain his old life as payment for a task considered to be impossible: inception, the implantation of another person's idea into a target's subconscious.",
		PosterPath:  "/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
		ReleaseDate: "2010-07-15",
		VoteAverage: 8.4,
		Genres:      []Genre{GenreAction, GenreScienceFiction, GenreAdventure},
	},
	{
		ID:          4,
		Title:       "Pulp Fiction",
		Overview:    "A burger-loving hit man, his philosophical partner, a drug-addled gangster's moll and a washed-up boxer converge in this sprawling, comedic crime caper. Their adventures unfurl in three stories that ingeniously trip back and forth in time.",
		PosterPath:  "/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg",
		ReleaseDate: "1994-09-10",
		VoteAverage: 8.5,
		Genres:      []Genre{GenreThriller, GenreCrime},
	},
	{
		ID:          5,
		Title:       "The Dark Knight",
		Overview:    "Batman raises the stakes in his war on crime. With the help of Lt. Jim Gordon and District Attorney Harvey Dent, Batman sets out to dismantle the remaining criminal organizations that plague the streets. The partnership proves to be effective, but they soon find themselves prey to a reign of chaos unleashed by a rising criminal mastermind known to the terrified citizens of Gotham as the Joker.",
		PosterPath:  "/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
		ReleaseDate: "2008-07-16",
		VoteAverage: 8.5,
		Genres:      []Genre{GenreDrama, GenreAction, GenreCrime, GenreThriller},
	},
	{
		ID:          6,
		Title:       "The Matrix",
		Overview:    "Set in the 22nd century, The Matrix tells the story of a computer hacker who joins a group of underground insurgents fighting the vast and powerful computers who now rule the earth.",
		PosterPath:  "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
		ReleaseDate: "1999-03-30",
		VoteAverage: 8.2,
		Genres:      []Genre{GenreAction, GenreScienceFiction},
	},
	{
		ID:          7,
		Title:       "Parasite",
		Overview:    "All unemployed, Ki-taek's family takes peculiar interest in the wealthy and glamorous Parks for their livelihood until they get entangled in an unexpected incident.",
		PosterPath:  "/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg",
		ReleaseDate: "2019-05-30",
		VoteAverage: 8.5,
		Genres:      []Genre{GenreComedy, GenreThriller, GenreDrama},
	},
	{
		ID:          8,
		Title:       "Spirited Away",
		Overview:    "A young girl, Chihiro, becomes trapped in a strange new world of spirits. When her parents undergo a mysterious transformation, she must call upon the courage she never knew she had to free her family.",
		PosterPath:  "/39wmItIWsg5sZMyRUHLkWBcuVCM.jpg",
		ReleaseDate: "2001-07-20",
		VoteAverage: 8.5,
		Genres:      []Genre{GenreAnimation, GenreFamily, GenreFantasy},
	},
	{
		ID:          9,
		Title:       "Interstellar",
		Overview:    "The adventures of a group of explorers who make use of a newly discovered wormhole to surpass the limitations on human space travel and conquer the vast distances involved in an interstellar voyage.",
		PosterPath:  "/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
		ReleaseDate: "2014-11-05",
		VoteAverage: 8.4,
		Genres:      []Genre{GenreAdventure, GenreDrama, GenreScienceFiction},
	},
	{
		ID:          10,
		Title:       "Whiplash",
		Overview:    "Under the direction of a ruthless instructor, a talented young drummer begins to pursue perfection at any cost, even his humanity.",
		PosterPath:  "/6uSPcdGNA2A6vJmCagXkvnutUk.jpg",
		ReleaseDate: "2014-10-10",
		VoteAverage: 8.3,
		Genres:      []Genre{GenreDrama, GenreMusic},
	},
	{
		ID:          11,
		Title:       "Get Out",
		Overview:    "Chris and his girlfriend Rose go upstate to visit her parents for the weekend. At first, Chris reads the family's overly accommodating behavior as nervous attempts to deal with their daughter's interracial relationship, but as the weekend progresses, a series of increasingly disturbing discoveries lead him to a truth that he never could have imagined.",
		PosterPath:  "/qbaIHlK2beODzM0jSfzQF7O4thT.jpg",
		ReleaseDate: "2017-02-24",
		VoteAverage: 7.7,
		Genres:      []Genre{GenreHorror, GenreThriller, GenreMystery},
	},
	{
		ID:          12,
		Title:       "La La Land",
		Overview:    "Mia, an aspiring actress, serves lattes to movie stars in between auditions and Sebastian, a jazz musician, scrapes by playing cocktail party gigs in dingy bars, but as success mounts they are faced with decisions that begin to fray the fragile fabric of their love affair, and the dreams they worked so hard to maintain in each other threaten to rip them apart.",
		PosterPath:  "/5CbyHawDUXqf0dreyfHJ8MGYi57.jpg",
		ReleaseDate: "2016-12-29",
		VoteAverage: 7.9,
		Genres:      []Genre{GenreComedy, GenreDrama, GenreRomance, GenreMusic},
	},
}
