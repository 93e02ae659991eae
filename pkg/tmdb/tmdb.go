// Package tmdb is a small client for the TMDB v3 API covering the lookups
// the exporter needs: movie/tv detail, search, episode detail, and artwork.
package tmdb

import (
	"context"
	"strconv"
	"strings"
)

// Genre is a TMDB genre tag.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Movie is the detail payload for one movie.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	ReleaseDate  string  `json:"release_date"`
	Overview     string  `json:"overview"`
	Genres       []Genre `json:"genres"`
	VoteAverage  float64 `json:"vote_average"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	IMDBID       string  `json:"imdb_id"`
}

// Year extracts the release year, zero when unknown.
func (m Movie) Year() int { return yearOf(m.ReleaseDate) }

// TV is the detail payload for one series.
type TV struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	FirstAirDate string  `json:"first_air_date"`
	Overview     string  `json:"overview"`
	Genres       []Genre `json:"genres"`
	VoteAverage  float64 `json:"vote_average"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
}

// Year extracts the first-air year, zero when unknown.
func (t TV) Year() int { return yearOf(t.FirstAirDate) }

// Episode is the detail payload for one episode of a series.
type Episode struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Overview    string  `json:"overview"`
	AirDate     string  `json:"air_date"`
	VoteAverage float64 `json:"vote_average"`
	StillPath   string  `json:"still_path"`
}

// MovieResult is one movie search hit.
type MovieResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}

// Year extracts the release year, zero when unknown.
func (r MovieResult) Year() int { return yearOf(r.ReleaseDate) }

// TVResult is one series search hit.
type TVResult struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FirstAirDate string `json:"first_air_date"`
}

// Year extracts the first-air year, zero when unknown.
func (r TVResult) Year() int { return yearOf(r.FirstAirDate) }

func yearOf(date string) int {
	parts := strings.SplitN(date, "-", 2)
	if len(parts) == 0 {
		return 0
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	return year
}

// GenreNames joins genre names the way NFO files list them.
func GenreNames(genres []Genre) string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

// ImageURL builds a CDN URL against the default image host. Empty paths map
// to an empty URL.
func ImageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return DefaultImageBaseURL + "/" + size + path
}

// ClientInterface is the TMDB surface the enrichment resolver consumes.
type ClientInterface interface {
	GetMovie(ctx context.Context, id int64) (*Movie, error)
	GetTV(ctx context.Context, id int64) (*TV, error)
	GetEpisode(ctx context.Context, tvID int64, season, episode int) (*Episode, error)
	SearchMovie(ctx context.Context, query string, year int) ([]MovieResult, error)
	SearchTV(ctx context.Context, query string, year int) ([]TVResult, error)
	DownloadImage(ctx context.Context, size, path string) ([]byte, error)
}
