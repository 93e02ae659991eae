// Package catalog talks to the Dispatcharr VOD API: account enumeration,
// paginated movie/series listings, and per-series episode detail.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
)

// Account is one upstream M3U/XC account owning a movie and a series catalog.
type Account struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ServerURL string `json:"server_url"`
}

// DisplayName falls back to an id-derived name when the account is unnamed.
func (a Account) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return "Account-" + strconv.Itoa(a.ID)
}

// Movie is one VOD movie entry as listed by the catalog.
type Movie struct {
	ID          int    `json:"id"`
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Year        int    `json:"year"`
	Genre       string `json:"genre"`
	TMDBID      FlexID `json:"tmdb_id"`
	IMDBID      string `json:"imdb_id"`
	Description string `json:"description"`
	Rating      string `json:"rating"`
}

// Series is one VOD series entry; episodes are fetched separately.
type Series struct {
	ID          int    `json:"id"`
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Year        int    `json:"year"`
	Genre       string `json:"genre"`
	TMDBID      FlexID `json:"tmdb_id"`
	IMDBID      string `json:"imdb_id"`
	Description string `json:"description"`
}

// Episode is one entry of a season, normalized from provider-info.
type Episode struct {
	Number    int
	Title     string
	StreamID  FlexID
	Container string
	DirectURL string
}

// Season groups episodes; both seasons and episodes are ordered ascending.
type Season struct {
	Number   int
	Episodes []Episode
}

// FlexID tolerates remote ids arriving as JSON strings or numbers.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string { return string(f) }

// IsZero reports whether no id is present. "0" counts as absent; the remote
// uses it for unknown.
func (f FlexID) IsZero() bool { return f == "" || f == "0" }

// Client lists the catalog operations the exporter consumes.
type Client interface {
	Login(ctx context.Context) error
	ListAccounts(ctx context.Context) ([]Account, error)
	ListMovies(ctx context.Context, accountID int) ([]Movie, error)
	ListSeries(ctx context.Context, accountID int) ([]Series, error)
	GetSeriesEpisodes(ctx context.Context, seriesID int) ([]Season, error)
}
