// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strconv"

// Candidate is one search result, for either a show or a movie, prior to
// disambiguation. Never mutated after creation.
type Candidate struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	GenreIDs []int    `json:"genre_ids"`
	Genres   []string `json:"genres,omitempty"`
	Date     string   `json:"date"` // first air date or release date, ISO
}

// Year extracts the year from the candidate's date string.
func (c Candidate) Year() int {
	return yearOf(c.Date)
}

// Genre represents a TMDB genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Show represents series-level metadata.
type Show struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FirstAirDate string `json:"first_air_date"`
}

// Episode is one entry of a season's episode list.
type Episode struct {
	EpisodeNumber int    `json:"episode_number"`
	Name          string `json:"name"`
}

// Season represents season-level metadata. FirstAirDate and ShowID are
// merged in from the parent show so season-level records retain series-level
// metadata when cached.
type Season struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	SeasonNumber int       `json:"season_number"`
	AirDate      string    `json:"air_date"`
	Episodes     []Episode `json:"episodes"`
	FirstAirDate string    `json:"first_air_date,omitempty"`
	ShowID       int64     `json:"show_id,omitempty"`
}

// Year extracts the year from the merged first air date.
func (s *Season) Year() int {
	return yearOf(s.FirstAirDate)
}

// Movie represents TMDB movie metadata.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Runtime     int     `json:"runtime"`
	Genres      []Genre `json:"genres"`
}

// Year extracts the year from ReleaseDate.
func (m *Movie) Year() int {
	return yearOf(m.ReleaseDate)
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
