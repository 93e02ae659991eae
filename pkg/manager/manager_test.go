package manager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"strmsync/pkg/cache"
	"strmsync/pkg/catalog"
	catalogMocks "strmsync/pkg/catalog/mocks"
	"strmsync/pkg/io"
	managerMocks "strmsync/pkg/manager/mocks"
	tmdbMocks "strmsync/pkg/tmdb/mocks"
)

type fixture struct {
	catalog  *catalogMocks.MockClient
	resolver *managerMocks.MockMetadataResolver
	tmdb     *tmdbMocks.MockClientInterface
	store    cache.Store
	library  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	store, err := cache.New(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return &fixture{
		catalog:  catalogMocks.NewMockClient(ctrl),
		resolver: managerMocks.NewMockMetadataResolver(ctrl),
		tmdb:     tmdbMocks.NewMockClientInterface(ctrl),
		store:    store,
		library:  t.TempDir(),
	}
}

func (f *fixture) manager(opts Options) *Manager {
	if opts.MoviesDir == "" {
		opts.MoviesDir = filepath.Join(f.library, "movies", "{account}")
	}
	if opts.SeriesDir == "" {
		opts.SeriesDir = filepath.Join(f.library, "series", "{account}")
	}
	if opts.ProxyHost == "" {
		opts.ProxyHost = "http://127.0.0.1:9191"
	}
	return New(f.catalog, f.resolver, f.tmdb, f.store, &io.LibraryFileSystem{}, opts)
}

func degraded(title string, year int) cache.Enrichment {
	return cache.Enrichment{Title: title, Year: year, Degraded: true}
}

func TestRunExportsMovies(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{{ID: 2, Name: "main"}}, nil)
	f.catalog.EXPECT().ListMovies(gomock.Any(), 2).Return([]catalog.Movie{
		{ID: 10, UUID: "uuid-10", Name: "The Matrix 4K", Year: 1999, TMDBID: "603"},
	}, nil)
	f.resolver.EXPECT().Movie(gomock.Any(), "The Matrix", 1999, int64(603)).Return(cache.Enrichment{
		TMDBID: 603, Title: "The Matrix", Year: 1999, Plot: "A hacker learns the truth.", Genres: "Action",
	})

	m := f.manager(Options{Movies: true})
	summary, err := m.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	require.NoError(t, summary.Results[0].Err)
	assert.Zero(t, summary.Failed)

	strm := filepath.Join(f.library, "movies", "main", "The Matrix (1999)", "The Matrix (1999).strm")
	data, err := os.ReadFile(strm)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9191/proxy/vod/movie/2/uuid-10/stream.m3u8\n", string(data))

	row, err := f.store.GetArtifact(context.Background(), strm)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 2, row.AccountID)

	report := summary.Results[0].Report
	assert.Equal(t, 1, report.Created)
	assert.Zero(t, report.Updated)
	assert.Zero(t, report.Degraded)

	snap, err := f.store.GetSnapshot(context.Background(), 2, "movies")
	require.NoError(t, err)
	assert.NotNil(t, snap, "movie listings are snapshotted")
}

func TestRunDegradedMovieExportsPointerOnly(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{{ID: 2, Name: "main"}}, nil)
	f.catalog.EXPECT().ListMovies(gomock.Any(), 2).Return([]catalog.Movie{
		{ID: 10, UUID: "uuid-10", Name: "Obscure Title", Year: 2020},
	}, nil)
	f.resolver.EXPECT().Movie(gomock.Any(), "Obscure Title", 2020, int64(0)).Return(degraded("Obscure Title", 2020))

	m := f.manager(Options{Movies: true, NFO: true, Images: true})
	summary, err := m.Run(context.Background())
	require.NoError(t, err)

	report := summary.Results[0].Report
	assert.Equal(t, 1, report.Written, "only the pointer file is written")
	assert.Equal(t, 1, report.Degraded)

	movieDir := filepath.Join(f.library, "movies", "main", "Obscure Title (2020)")
	assert.FileExists(t, filepath.Join(movieDir, "Obscure Title (2020).strm"))
	assert.NoFileExists(t, filepath.Join(movieDir, "Obscure Title (2020).nfo"))
}

func TestRunWritesMovieNFO(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{{ID: 2, Name: "main"}}, nil)
	f.catalog.EXPECT().ListMovies(gomock.Any(), 2).Return([]catalog.Movie{
		{ID: 10, UUID: "uuid-10", Name: "The Matrix", Year: 1999, IMDBID: "tt0133093"},
	}, nil)
	f.resolver.EXPECT().Movie(gomock.Any(), "The Matrix", 1999, int64(0)).Return(cache.Enrichment{
		TMDBID: 603, Title: "The Matrix", Year: 1999, Plot: "A hacker learns the truth.", Rating: 8.2,
	})

	m := f.manager(Options{Movies: true, NFO: true})
	_, err := m.Run(context.Background())
	require.NoError(t, err)

	nfoPath := filepath.Join(f.library, "movies", "main", "The Matrix (1999)", "The Matrix (1999).nfo")
	data, err := os.ReadFile(nfoPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<movie>")
	assert.Contains(t, string(data), "<plot>A hacker learns the truth.</plot>")
	assert.Contains(t, string(data), `<uniqueid type="tmdb" default="true">603</uniqueid>`)
	assert.Contains(t, string(data), `<uniqueid type="imdb">tt0133093</uniqueid>`)
}

func TestRunExportsSeries(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{{ID: 2, Name: "main"}}, nil)
	f.catalog.EXPECT().ListSeries(gomock.Any(), 2).Return([]catalog.Series{
		{ID: 20, UUID: "uuid-20", Name: "Breaking Bad", Year: 2008},
	}, nil)
	f.catalog.EXPECT().GetSeriesEpisodes(gomock.Any(), 20).Return([]catalog.Season{
		{Number: 1, Episodes: []catalog.Episode{
			{Number: 1, Title: "Pilot", StreamID: "555"},
			{Number: 2, Title: "", StreamID: "556"},
		}},
	}, nil)
	f.resolver.EXPECT().Series(gomock.Any(), "Breaking Bad", 2008, int64(0)).Return(cache.Enrichment{
		TMDBID: 1396, Title: "Breaking Bad", Year: 2008,
	})

	m := f.manager(Options{Series: true})
	summary, err := m.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, summary.Results[0].Err)

	seasonDir := filepath.Join(f.library, "series", "main", "Breaking Bad", "Season 01")
	data, err := os.ReadFile(filepath.Join(seasonDir, "S01E01 - Pilot.strm"))
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9191/proxy/vod/series/2/uuid-20/season/1/episode/1/stream.m3u8\n", string(data))

	// a missing episode title falls back to its number
	assert.FileExists(t, filepath.Join(seasonDir, "S01E02 - Episode 2.strm"))
}

func TestRunSeriesFallsBackToStreamID(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{{ID: 2, Name: "main"}}, nil)
	f.catalog.EXPECT().ListSeries(gomock.Any(), 2).Return([]catalog.Series{
		{ID: 20, Name: "Breaking Bad", Year: 2008},
	}, nil)
	f.catalog.EXPECT().GetSeriesEpisodes(gomock.Any(), 20).Return([]catalog.Season{
		{Number: 1, Episodes: []catalog.Episode{{Number: 1, Title: "Pilot", StreamID: "555"}}},
	}, nil)
	f.resolver.EXPECT().Series(gomock.Any(), "Breaking Bad", 2008, int64(0)).Return(degraded("Breaking Bad", 2008))

	m := f.manager(Options{Series: true})
	_, err := m.Run(context.Background())
	require.NoError(t, err)

	strm := filepath.Join(f.library, "series", "main", "Breaking Bad", "Season 01", "S01E01 - Pilot.strm")
	data, err := os.ReadFile(strm)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9191/proxy/vod/series-episode/2/555/stream.m3u8\n", string(data))
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{{ID: 2, Name: "main"}}, nil)
	f.catalog.EXPECT().ListMovies(gomock.Any(), 2).Return([]catalog.Movie{
		{ID: 10, UUID: "uuid-10", Name: "The Matrix", Year: 1999},
	}, nil)
	f.resolver.EXPECT().Movie(gomock.Any(), "The Matrix", 1999, int64(0)).Return(degraded("The Matrix", 1999))

	m := f.manager(Options{Movies: true, DryRun: true})
	summary, err := m.Run(context.Background())
	require.NoError(t, err)

	report := summary.Results[0].Report
	require.NotNil(t, report)
	assert.True(t, report.Simulated)
	assert.Equal(t, 1, report.Written)

	assert.NoDirExists(t, filepath.Join(f.library, "movies", "main"))

	snap, err := f.store.GetSnapshot(context.Background(), 2, "movies")
	require.NoError(t, err)
	assert.Nil(t, snap, "dry runs must not write snapshots")
}

func TestRunAccountFiltering(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{
		{ID: 1, Name: "main"},
		{ID: 2, Name: "backup"},
	}, nil)
	// only main is exported
	f.catalog.EXPECT().ListMovies(gomock.Any(), 1).Return(nil, nil)

	m := f.manager(Options{Movies: true, AccountPatterns: []string{"ma*"}})
	summary, err := m.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, "main", summary.Results[0].Account.Name)
}

func TestRunNoMatchingAccountsIsFatal(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{{ID: 1, Name: "main"}}, nil)

	m := f.manager(Options{Movies: true, AccountPatterns: []string{"nope"}})
	_, err := m.Run(context.Background())
	assert.ErrorContains(t, err, "no accounts match")
}

func TestRunLoginFailureIsFatal(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().Login(gomock.Any()).Return(fmt.Errorf("bad credentials"))

	m := f.manager(Options{Movies: true})
	_, err := m.Run(context.Background())
	assert.ErrorContains(t, err, "login")
}

func TestRunListingFailureCountsAccountFailed(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{
		{ID: 1, Name: "main"},
		{ID: 2, Name: "backup"},
	}, nil)
	f.catalog.EXPECT().ListMovies(gomock.Any(), 1).Return(nil, fmt.Errorf("timeout"))
	f.catalog.EXPECT().ListMovies(gomock.Any(), 2).Return(nil, nil)

	m := f.manager(Options{Movies: true})
	summary, err := m.Run(context.Background())
	require.NoError(t, err, "one bad account does not abort the run")
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Results, 2)
	assert.Error(t, summary.Results[0].Err)
	assert.NoError(t, summary.Results[1].Err)
	assert.True(t, summary.AnySucceeded())

	snap, err := f.store.GetSnapshot(context.Background(), 1, "movies")
	require.NoError(t, err)
	assert.Nil(t, snap, "a failed account records no listing snapshot")
}

func TestAnySucceeded(t *testing.T) {
	allFailed := &RunSummary{Results: []AccountResult{{Err: fmt.Errorf("boom")}}, Failed: 1}
	assert.False(t, allFailed.AnySucceeded())

	mixed := &RunSummary{Results: []AccountResult{{Err: fmt.Errorf("boom")}, {}}, Failed: 1}
	assert.True(t, mixed.AnySucceeded())
}

func TestRunClearCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.PutEnrichment(ctx, cache.Enrichment{Key: "movie:id:603", MediaType: "movie"}))

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{{ID: 1, Name: "main"}}, nil)
	f.catalog.EXPECT().ListMovies(gomock.Any(), 1).Return(nil, nil)

	m := f.manager(Options{Movies: true, ClearCache: true})
	_, err := m.Run(ctx)
	require.NoError(t, err)

	row, err := f.store.GetEnrichment(ctx, "movie:id:603")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestRunReusesEpisodeLayoutWhenListingUnchanged(t *testing.T) {
	f := newFixture(t)

	listing := []catalog.Series{{ID: 20, UUID: "uuid-20", Name: "Breaking Bad", Year: 2008}}
	seasons := []catalog.Season{{Number: 1, Episodes: []catalog.Episode{{Number: 1, Title: "Pilot", StreamID: "555"}}}}

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil).Times(2)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{{ID: 2, Name: "main"}}, nil).Times(2)
	f.catalog.EXPECT().ListSeries(gomock.Any(), 2).Return(listing, nil).Times(2)
	// the detail endpoint is hit once; the second run reuses the snapshot
	f.catalog.EXPECT().GetSeriesEpisodes(gomock.Any(), 20).Return(seasons, nil).Times(1)
	f.resolver.EXPECT().Series(gomock.Any(), "Breaking Bad", 2008, int64(0)).Return(degraded("Breaking Bad", 2008)).Times(2)

	m := f.manager(Options{Series: true})

	_, err := m.Run(context.Background())
	require.NoError(t, err)

	summary, err := m.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, summary.Results[0].Err)
	assert.Equal(t, 1, summary.Results[0].Report.Skipped, "second run converges to skips")
}

func TestRunChangedSeriesListingRefetchesEpisodes(t *testing.T) {
	f := newFixture(t)

	seasons := []catalog.Season{{Number: 1, Episodes: []catalog.Episode{{Number: 1, Title: "Pilot", StreamID: "555"}}}}

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil).Times(2)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{{ID: 2, Name: "main"}}, nil).Times(2)
	first := f.catalog.EXPECT().ListSeries(gomock.Any(), 2).Return([]catalog.Series{
		{ID: 20, UUID: "uuid-20", Name: "Breaking Bad", Year: 2008},
	}, nil)
	f.catalog.EXPECT().ListSeries(gomock.Any(), 2).Return([]catalog.Series{
		{ID: 20, UUID: "uuid-21", Name: "Breaking Bad", Year: 2008},
	}, nil).After(first)
	// the listing entry changed, so the detail endpoint is hit again
	f.catalog.EXPECT().GetSeriesEpisodes(gomock.Any(), 20).Return(seasons, nil).Times(2)
	f.resolver.EXPECT().Series(gomock.Any(), "Breaking Bad", 2008, int64(0)).Return(degraded("Breaking Bad", 2008)).Times(2)

	m := f.manager(Options{Series: true})

	_, err := m.Run(context.Background())
	require.NoError(t, err)

	_, err = m.Run(context.Background())
	require.NoError(t, err)
}

func TestRunStemCollisionDisambiguates(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{{ID: 2, Name: "main"}}, nil)
	f.catalog.EXPECT().ListMovies(gomock.Any(), 2).Return([]catalog.Movie{
		{ID: 10, UUID: "uuid-10", Name: "Heat", Year: 1995},
		{ID: 11, UUID: "uuid-11", Name: "Heat [HDR]", Year: 1995},
	}, nil)
	f.resolver.EXPECT().Movie(gomock.Any(), "Heat", 1995, int64(0)).Return(degraded("Heat", 1995)).Times(2)

	m := f.manager(Options{Movies: true})
	_, err := m.Run(context.Background())
	require.NoError(t, err)

	moviesDir := filepath.Join(f.library, "movies", "main")
	assert.FileExists(t, filepath.Join(moviesDir, "Heat (1995)", "Heat (1995).strm"))
	assert.FileExists(t, filepath.Join(moviesDir, "Heat (1995) [id-11]", "Heat (1995) [id-11].strm"))
}

func TestRunDeleteOldPrunesDroppedMovies(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil).Times(2)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{{ID: 2, Name: "main"}}, nil).Times(2)

	first := f.catalog.EXPECT().ListMovies(gomock.Any(), 2).Return([]catalog.Movie{
		{ID: 10, UUID: "uuid-10", Name: "The Matrix", Year: 1999},
		{ID: 11, UUID: "uuid-11", Name: "Heat", Year: 1995},
	}, nil)
	f.catalog.EXPECT().ListMovies(gomock.Any(), 2).Return([]catalog.Movie{
		{ID: 11, UUID: "uuid-11", Name: "Heat", Year: 1995},
	}, nil).After(first)

	f.resolver.EXPECT().Movie(gomock.Any(), "The Matrix", 1999, int64(0)).Return(degraded("The Matrix", 1999))
	f.resolver.EXPECT().Movie(gomock.Any(), "Heat", 1995, int64(0)).Return(degraded("Heat", 1995)).Times(2)

	m := f.manager(Options{Movies: true, DeleteOld: true})

	_, err := m.Run(context.Background())
	require.NoError(t, err)

	matrixDir := filepath.Join(f.library, "movies", "main", "The Matrix (1999)")
	assert.DirExists(t, matrixDir)

	_, err = m.Run(context.Background())
	require.NoError(t, err)

	assert.NoDirExists(t, matrixDir, "dropped movies are pruned with their directory")
	assert.FileExists(t, filepath.Join(f.library, "movies", "main", "Heat (1995)", "Heat (1995).strm"))
}

func TestAccountsListsRemote(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().Login(gomock.Any()).Return(nil)
	f.catalog.EXPECT().ListAccounts(gomock.Any()).Return([]catalog.Account{{ID: 1, Name: "main"}}, nil)

	m := f.manager(Options{})
	accounts, err := m.Accounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "main", accounts[0].Name)
}

func TestSelectAccounts(t *testing.T) {
	accounts := []catalog.Account{{ID: 1, Name: "main"}, {ID: 2, Name: "Backup"}, {ID: 3}}

	assert.Len(t, selectAccounts(accounts, nil), 3)
	assert.Len(t, selectAccounts(accounts, []string{"*"}), 3)

	got := selectAccounts(accounts, []string{"backup"})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID, "matching is case insensitive")

	got = selectAccounts(accounts, []string{"account-3"})
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID, "unnamed accounts match their derived name")
}

func TestMatches(t *testing.T) {
	account := catalog.Account{ID: 2, Name: "Backup"}

	assert.True(t, Matches(account, nil), "empty patterns match everything")
	assert.True(t, Matches(account, []string{"ba*"}))
	assert.False(t, Matches(account, []string{"main"}))
}

func TestExpandDir(t *testing.T) {
	account := catalog.Account{ID: 1, Name: "my/account"}
	assert.Equal(t, filepath.Clean("/lib/movies/my_account"), expandDir("/lib/movies/{account}", account))
	assert.Equal(t, filepath.Clean("/lib/movies"), expandDir("/lib/movies", account))
}
