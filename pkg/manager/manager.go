// Package manager orchestrates an export run: account selection, listing
// fetches, desired-tree construction, planning, and execution.
package manager

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"strmsync/pkg/cache"
	"strmsync/pkg/catalog"
	"strmsync/pkg/executor"
	"strmsync/pkg/io"
	"strmsync/pkg/logger"
	"strmsync/pkg/namer"
	"strmsync/pkg/plan"
	"strmsync/pkg/tmdb"
)

// MetadataResolver answers the metadata lookups desired-tree construction
// needs. Results are best effort; a degraded result still exports.
type MetadataResolver interface {
	Movie(ctx context.Context, title string, year int, tmdbID int64) cache.Enrichment
	Series(ctx context.Context, title string, year int, tmdbID int64) cache.Enrichment
	Episode(ctx context.Context, seriesTMDBID int64, season, episode int) cache.Enrichment
}

// Options selects what an export run covers and how it behaves.
type Options struct {
	ProxyHost string
	MoviesDir string
	SeriesDir string

	// AccountPatterns are path.Match globs against account display names,
	// empty means every account.
	AccountPatterns []string

	Movies bool
	Series bool
	NFO    bool
	Images bool

	OverwriteNFO    bool
	OverwriteImages bool
	DeleteOld       bool
	DryRun          bool
	ClearCache      bool

	TagDenylist []string
}

// AccountResult is the outcome of exporting one account.
type AccountResult struct {
	Account catalog.Account
	Report  *executor.Report
	Err     error
}

// RunSummary aggregates per-account outcomes.
type RunSummary struct {
	Results []AccountResult
	Failed  int
}

// AnySucceeded reports whether at least one account exported without error.
func (s *RunSummary) AnySucceeded() bool {
	for _, result := range s.Results {
		if result.Err == nil {
			return true
		}
	}
	return false
}

// Manager drives export runs.
type Manager struct {
	catalog  catalog.Client
	resolver MetadataResolver
	tmdb     tmdb.ClientInterface
	store    cache.Store
	fs       io.FileIO
	opts     Options
}

// New creates a Manager.
func New(catalogClient catalog.Client, resolver MetadataResolver, tmdbClient tmdb.ClientInterface, store cache.Store, fio io.FileIO, opts Options) *Manager {
	return &Manager{
		catalog:  catalogClient,
		resolver: resolver,
		tmdb:     tmdbClient,
		store:    store,
		fs:       fio,
		opts:     opts,
	}
}

// Accounts logs in and lists the remote accounts.
func (m *Manager) Accounts(ctx context.Context) ([]catalog.Account, error) {
	if err := m.catalog.Login(ctx); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return m.catalog.ListAccounts(ctx)
}

// Run executes a full export. Login and account enumeration failures are
// fatal; everything past that degrades per account or per item.
func (m *Manager) Run(ctx context.Context) (*RunSummary, error) {
	log := logger.FromCtx(ctx)

	if m.opts.ClearCache {
		if m.opts.DryRun {
			log.Infow("would clear cache")
		} else {
			if err := m.store.ClearAll(ctx); err != nil {
				return nil, fmt.Errorf("clear cache: %w", err)
			}
			log.Infow("cache cleared")
		}
	}

	accounts, err := m.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	selected := selectAccounts(accounts, m.opts.AccountPatterns)
	if len(selected) == 0 {
		return nil, fmt.Errorf("no accounts match %v", m.opts.AccountPatterns)
	}

	summary := &RunSummary{}
	for _, account := range selected {
		log.Infow("exporting account", "account", account.DisplayName())
		report, err := m.exportAccount(ctx, account)
		if err != nil {
			log.Errorw("account export failed", "account", account.DisplayName(), "error", err)
			summary.Failed++
		} else {
			log.Infow("account exported",
				"account", account.DisplayName(),
				"created", report.Created,
				"updated", report.Updated,
				"skipped", report.Skipped,
				"deleted", report.Deleted,
				"failed", report.Failed,
				"degraded", report.Degraded)
		}
		summary.Results = append(summary.Results, AccountResult{Account: account, Report: report, Err: err})
	}
	return summary, nil
}

func (m *Manager) exportAccount(ctx context.Context, account catalog.Account) (*executor.Report, error) {
	var desired []plan.Desired
	var roots []string
	var movies []catalog.Movie
	var series []catalog.Series
	degraded := 0

	if m.opts.Movies {
		root := expandDir(m.opts.MoviesDir, account)
		roots = append(roots, root)

		var err error
		movies, err = m.catalog.ListMovies(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("list movies: %w", err)
		}
		wanted, degradedMovies := m.desireMovies(ctx, account, movies, root)
		desired = append(desired, wanted...)
		degraded += degradedMovies
	}

	if m.opts.Series {
		root := expandDir(m.opts.SeriesDir, account)
		roots = append(roots, root)

		var err error
		series, err = m.catalog.ListSeries(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("list series: %w", err)
		}
		wanted, degradedSeries := m.desireSeries(ctx, account, series, root)
		desired = append(desired, wanted...)
		degraded += degradedSeries
	}

	builder := plan.NewBuilder(m.store, m.fs, m.opts.DeleteOld)
	p, err := builder.Build(ctx, account.ID, roots, desired)
	if err != nil {
		return nil, fmt.Errorf("build plan: %w", err)
	}

	report, err := executor.New(m.store, m.fs).Apply(ctx, p, m.opts.DryRun)
	if err != nil {
		return report, err
	}
	report.Degraded = degraded

	// listing snapshots are recorded only after the pass completed
	if m.opts.Movies {
		m.putSnapshot(ctx, account.ID, "movies", movies, len(movies))
	}
	if m.opts.Series {
		m.putSnapshot(ctx, account.ID, "series", series, len(series))
	}
	return report, nil
}

func (m *Manager) putSnapshot(ctx context.Context, accountID int, kind string, items any, count int) {
	if m.opts.DryRun {
		return
	}
	log := logger.FromCtx(ctx)

	payload, err := json.Marshal(items)
	if err != nil {
		log.Warnw("snapshot marshal failed", "kind", kind, "error", err)
		return
	}
	err = m.store.PutSnapshot(ctx, cache.Snapshot{
		AccountID: accountID,
		Kind:      kind,
		Payload:   payload,
		ItemCount: count,
		FetchedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Warnw("snapshot write failed", "kind", kind, "error", err)
	}
}

// episodeLayout is the episodes snapshot payload. The listing entry is stored
// with the layout it came from, so reuse never depends on snapshots written
// by a run that did not finish.
type episodeLayout struct {
	Entry   json.RawMessage  `json:"entry"`
	Seasons []catalog.Season `json:"seasons"`
}

// seriesEpisodes returns the episode layout for one series, reusing the
// cached layout when the listing entry is unchanged since it was captured.
func (m *Manager) seriesEpisodes(ctx context.Context, account catalog.Account, series catalog.Series) ([]catalog.Season, error) {
	log := logger.FromCtx(ctx)
	snapKind := "episodes:" + strconv.Itoa(series.ID)

	entry, err := json.Marshal(series)
	if err == nil {
		if snap, err := m.store.GetSnapshot(ctx, account.ID, snapKind); err == nil && snap != nil {
			var layout episodeLayout
			if err := json.Unmarshal(snap.Payload, &layout); err == nil && bytes.Equal(entry, layout.Entry) {
				log.Debugw("reusing cached episode layout", "series", series.Name)
				return layout.Seasons, nil
			}
		}
	}

	seasons, err := m.catalog.GetSeriesEpisodes(ctx, series.ID)
	if err != nil {
		return nil, err
	}

	episodes := 0
	for _, season := range seasons {
		episodes += len(season.Episodes)
	}
	m.putSnapshot(ctx, account.ID, snapKind, episodeLayout{Entry: entry, Seasons: seasons}, episodes)
	return seasons, nil
}

// Matches reports whether an account's display name matches any of the
// patterns. Empty patterns match every account.
func Matches(account catalog.Account, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	name := strings.ToLower(account.DisplayName())
	for _, pattern := range patterns {
		if ok, err := path.Match(strings.ToLower(pattern), name); err == nil && ok {
			return true
		}
	}
	return false
}

func selectAccounts(accounts []catalog.Account, patterns []string) []catalog.Account {
	if len(patterns) == 0 {
		return accounts
	}

	var selected []catalog.Account
	for _, account := range accounts {
		if Matches(account, patterns) {
			selected = append(selected, account)
		}
	}
	return selected
}

// expandDir substitutes the {account} placeholder with the account's
// filesystem-safe display name.
func expandDir(dir string, account catalog.Account) string {
	return filepath.Clean(strings.ReplaceAll(dir, "{account}", namer.FSSafe(account.DisplayName())))
}

// artworkImagePath extracts the CDN path from an enrichment artwork URL so
// the bytes can be fetched through the TMDB client.
func artworkImagePath(url, size string) (string, bool) {
	prefix := tmdb.DefaultImageBaseURL + "/" + size
	if rest, ok := strings.CutPrefix(url, prefix); ok && rest != "" {
		return rest, true
	}
	return "", false
}

// fallback returns primary unless it is empty.
func fallback(primary, secondary string) string {
	if primary != "" {
		return primary
	}
	return secondary
}

func parseRating(raw string) float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return rating
}
