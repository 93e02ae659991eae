// Package enrichment resolves catalog entries against TMDB, caching every
// outcome so repeated runs never repeat a lookup.
package enrichment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"strmsync/pkg/cache"
	"strmsync/pkg/logger"
	"strmsync/pkg/tmdb"
)

// Resolver answers metadata lookups cache-first, falling back to TMDB by id
// when the catalog carries one and by ranked title search otherwise. A lookup
// that cannot be satisfied yields a degraded result built from catalog fields
// alone; the run keeps going.
type Resolver struct {
	tmdb  tmdb.ClientInterface
	store cache.Store
}

// New creates a Resolver backed by a TMDB client and a cache store.
func New(client tmdb.ClientInterface, store cache.Store) *Resolver {
	return &Resolver{tmdb: client, store: store}
}

// Movie resolves metadata for one movie. tmdbID of zero means the catalog
// carried no id and the title/year must be searched.
func (r *Resolver) Movie(ctx context.Context, title string, year int, tmdbID int64) cache.Enrichment {
	key := lookupKey("movie", title, year, tmdbID)

	if hit := r.cached(ctx, key); hit != nil {
		return *hit
	}

	result, cacheable := r.resolveMovie(ctx, title, year, tmdbID)
	result.Key = key
	result.MediaType = "movie"
	result.FetchedAt = time.Now().UTC()
	if cacheable {
		r.persist(ctx, result)
	}
	return result
}

// Series resolves metadata for one series, mirroring Movie.
func (r *Resolver) Series(ctx context.Context, title string, year int, tmdbID int64) cache.Enrichment {
	key := lookupKey("tv", title, year, tmdbID)

	if hit := r.cached(ctx, key); hit != nil {
		return *hit
	}

	result, cacheable := r.resolveSeries(ctx, title, year, tmdbID)
	result.Key = key
	result.MediaType = "tv"
	result.FetchedAt = time.Now().UTC()
	if cacheable {
		r.persist(ctx, result)
	}
	return result
}

// Episode resolves per-episode detail for a series already matched to a TMDB
// id. A zero seriesTMDBID short-circuits to a degraded result.
func (r *Resolver) Episode(ctx context.Context, seriesTMDBID int64, season, episode int) cache.Enrichment {
	if seriesTMDBID == 0 {
		return cache.Enrichment{MediaType: "episode", Degraded: true}
	}

	key := fmt.Sprintf("episode:%d:%d:%d", seriesTMDBID, season, episode)
	if hit := r.cached(ctx, key); hit != nil {
		return *hit
	}

	log := logger.FromCtx(ctx)

	ep, err := r.tmdb.GetEpisode(ctx, seriesTMDBID, season, episode)
	if err != nil {
		degraded := cache.Enrichment{Key: key, MediaType: "episode", Degraded: true, FetchedAt: time.Now().UTC()}
		if errors.Is(err, tmdb.ErrNotFound) {
			r.persist(ctx, degraded)
			return degraded
		}
		log.Warnw("episode lookup failed, continuing degraded", "series", seriesTMDBID, "season", season, "episode", episode, "error", err)
		return degraded
	}

	result := cache.Enrichment{
		Key:       key,
		MediaType: "episode",
		TMDBID:    ep.ID,
		Title:     ep.Name,
		Plot:      ep.Overview,
		Rating:    ep.VoteAverage,
		Aired:     ep.AirDate,
		FetchedAt: time.Now().UTC(),
	}
	r.persist(ctx, result)
	return result
}

func (r *Resolver) resolveMovie(ctx context.Context, title string, year int, tmdbID int64) (cache.Enrichment, bool) {
	log := logger.FromCtx(ctx)

	if tmdbID == 0 {
		id, err := r.searchMovieID(ctx, title, year)
		if err != nil {
			if errors.Is(err, tmdb.ErrNotFound) {
				return degradedResult(title, year), true
			}
			log.Warnw("movie search failed, continuing degraded", "title", title, "error", err)
			return degradedResult(title, year), false
		}
		tmdbID = id
	}

	movie, err := r.tmdb.GetMovie(ctx, tmdbID)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			return degradedResult(title, year), true
		}
		log.Warnw("movie detail fetch failed, continuing degraded", "title", title, "tmdb", tmdbID, "error", err)
		return degradedResult(title, year), false
	}

	return cache.Enrichment{
		TMDBID:    movie.ID,
		Title:     movie.Title,
		Year:      movie.Year(),
		Plot:      movie.Overview,
		Genres:    tmdb.GenreNames(movie.Genres),
		Rating:    movie.VoteAverage,
		PosterURL: tmdb.ImageURL(tmdb.PosterSize, movie.PosterPath),
		FanartURL: tmdb.ImageURL(tmdb.FanartSize, movie.BackdropPath),
	}, true
}

func (r *Resolver) resolveSeries(ctx context.Context, title string, year int, tmdbID int64) (cache.Enrichment, bool) {
	log := logger.FromCtx(ctx)

	if tmdbID == 0 {
		id, err := r.searchSeriesID(ctx, title, year)
		if err != nil {
			if errors.Is(err, tmdb.ErrNotFound) {
				return degradedResult(title, year), true
			}
			log.Warnw("series search failed, continuing degraded", "title", title, "error", err)
			return degradedResult(title, year), false
		}
		tmdbID = id
	}

	tv, err := r.tmdb.GetTV(ctx, tmdbID)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			return degradedResult(title, year), true
		}
		log.Warnw("series detail fetch failed, continuing degraded", "title", title, "tmdb", tmdbID, "error", err)
		return degradedResult(title, year), false
	}

	return cache.Enrichment{
		TMDBID:    tv.ID,
		Title:     tv.Name,
		Year:      tv.Year(),
		Plot:      tv.Overview,
		Genres:    tmdb.GenreNames(tv.Genres),
		Rating:    tv.VoteAverage,
		PosterURL: tmdb.ImageURL(tmdb.PosterSize, tv.PosterPath),
		FanartURL: tmdb.ImageURL(tmdb.FanartSize, tv.BackdropPath),
	}, true
}

func (r *Resolver) searchMovieID(ctx context.Context, title string, year int) (int64, error) {
	results, err := r.tmdb.SearchMovie(ctx, title, year)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 && year > 0 {
		// year filters can be too strict for catalogs with sloppy years
		results, err = r.tmdb.SearchMovie(ctx, title, 0)
		if err != nil {
			return 0, err
		}
	}
	if len(results) == 0 {
		return 0, tmdb.ErrNotFound
	}

	candidates := make([]candidate, 0, len(results))
	for _, res := range results {
		candidates = append(candidates, candidate{id: res.ID, title: res.Title, year: res.Year()})
	}
	return pickCandidate(candidates, title, year), nil
}

func (r *Resolver) searchSeriesID(ctx context.Context, title string, year int) (int64, error) {
	results, err := r.tmdb.SearchTV(ctx, title, year)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 && year > 0 {
		results, err = r.tmdb.SearchTV(ctx, title, 0)
		if err != nil {
			return 0, err
		}
	}
	if len(results) == 0 {
		return 0, tmdb.ErrNotFound
	}

	candidates := make([]candidate, 0, len(results))
	for _, res := range results {
		candidates = append(candidates, candidate{id: res.ID, title: res.Name, year: res.Year()})
	}
	return pickCandidate(candidates, title, year), nil
}

type candidate struct {
	id    int64
	title string
	year  int
}

// pickCandidate ranks search hits. Year agreement outranks everything, then
// a case-folded exact title match, then the lowest id wins so repeated runs
// pick the same entry.
func pickCandidate(candidates []candidate, title string, year int) int64 {
	best := candidates[0]
	bestScore := -1
	for _, c := range candidates {
		score := 0
		if year > 0 && c.year == year {
			score += 2
		}
		if strings.EqualFold(c.title, title) {
			score++
		}
		if score > bestScore || (score == bestScore && c.id < best.id) {
			best = c
			bestScore = score
		}
	}
	return best.id
}

func degradedResult(title string, year int) cache.Enrichment {
	return cache.Enrichment{Title: title, Year: year, Degraded: true}
}

func lookupKey(mediaType, title string, year int, tmdbID int64) string {
	if tmdbID != 0 {
		return fmt.Sprintf("%s:id:%d", mediaType, tmdbID)
	}
	return fmt.Sprintf("%s:search:%s|%d", mediaType, strings.ToLower(title), year)
}

// cached returns a prior result, treating cache read errors as a miss.
func (r *Resolver) cached(ctx context.Context, key string) *cache.Enrichment {
	hit, err := r.store.GetEnrichment(ctx, key)
	if err != nil {
		logger.FromCtx(ctx).Warnw("enrichment cache read failed, treating as miss", "key", key, "error", err)
		return nil
	}
	return hit
}

// persist writes a result back, tolerating write failures.
func (r *Resolver) persist(ctx context.Context, result cache.Enrichment) {
	if err := r.store.PutEnrichment(ctx, result); err != nil {
		logger.FromCtx(ctx).Warnw("enrichment cache write failed", "key", result.Key, "error", err)
	}
}
