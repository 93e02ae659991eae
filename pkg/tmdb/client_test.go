package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMovie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/movie/603", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		w.Write([]byte(`{
			"id": 603,
			"title": "The Matrix",
			"release_date": "1999-03-30",
			"overview": "A computer hacker learns the truth.",
			"genres": [{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}],
			"vote_average": 8.2,
			"poster_path": "/poster.jpg",
			"backdrop_path": "/backdrop.jpg",
			"imdb_id": "tt0133093"
		}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	movie, err := c.GetMovie(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", movie.Title)
	assert.Equal(t, 1999, movie.Year())
	assert.Equal(t, "Action, Science Fiction", GenreNames(movie.Genres))
	assert.Equal(t, "tt0133093", movie.IMDBID)
}

func TestGetMovieNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := New("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.GetMovie(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchMovie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/movie", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "The Matrix", r.URL.Query().Get("query"))
		assert.Equal(t, "1999", r.URL.Query().Get("year"))
		w.Write([]byte(`{"results":[{"id":603,"title":"The Matrix","release_date":"1999-03-30"}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	results, err := c.SearchMovie(context.Background(), "The Matrix", 1999)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(603), results[0].ID)
	assert.Equal(t, 1999, results[0].Year())
}

func TestSearchTVOmitsYearWhenUnknown(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/tv", func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("first_air_date_year"))
		w.Write([]byte(`{"results":[{"id":1396,"name":"Breaking Bad","first_air_date":"2008-01-20"}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	results, err := c.SearchTV(context.Background(), "Breaking Bad", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Breaking Bad", results[0].Name)
}

func TestGetEpisode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tv/1396/season/1/episode/2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Cat's in the Bag...","overview":"They try to dispose of the bodies.","air_date":"2008-01-27","vote_average":8.1}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	ep, err := c.GetEpisode(context.Background(), 1396, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "Cat's in the Bag...", ep.Name)
}

func TestDownloadImage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/w500/poster.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg-bytes"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New("test-key", WithImageBaseURL(srv.URL))
	require.NoError(t, err)

	data, err := c.DownloadImage(context.Background(), PosterSize, "/poster.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestImageURL(t *testing.T) {
	c, err := New("test-key")
	require.NoError(t, err)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", c.ImageURL(PosterSize, "/poster.jpg"))
	assert.Equal(t, "https://image.tmdb.org/t/p/w780/backdrop.jpg", c.ImageURL(FanartSize, "/backdrop.jpg"))
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, 1999, Movie{ReleaseDate: "1999-03-30"}.Year())
	assert.Zero(t, Movie{ReleaseDate: ""}.Year())
	assert.Zero(t, Movie{ReleaseDate: "unknown"}.Year())
}
