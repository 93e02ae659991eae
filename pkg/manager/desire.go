package manager

import (
	"context"
	"path/filepath"
	"strconv"

	"strmsync/pkg/cache"
	"strmsync/pkg/catalog"
	"strmsync/pkg/logger"
	"strmsync/pkg/namer"
	"strmsync/pkg/nfo"
	"strmsync/pkg/plan"
	"strmsync/pkg/tmdb"
)

// desireMovies maps the movie listing to the files the library should hold,
// also reporting how many items exported degraded. Movies without a stream
// uuid are skipped; everything else degrades to a bare pointer.
func (m *Manager) desireMovies(ctx context.Context, account catalog.Account, movies []catalog.Movie, root string) ([]plan.Desired, int) {
	log := logger.FromCtx(ctx)
	names := namer.New(m.opts.TagDenylist)

	var desired []plan.Desired
	degraded := 0
	for _, movie := range movies {
		if movie.UUID == "" {
			log.Warnw("movie has no stream uuid, skipping", "movie", movie.Name, "id", movie.ID)
			continue
		}

		title := names.NormalizeTitle(movie.Name)
		if title == "" {
			log.Warnw("movie title empty after normalization, skipping", "id", movie.ID)
			continue
		}

		enriched := m.resolver.Movie(ctx, title, movie.Year, tmdbIDOf(movie.TMDBID))
		if enriched.Degraded {
			log.Debugw("exporting degraded, pointer only", "movie", title)
			degraded++
		}

		displayTitle := title
		year := movie.Year
		if !enriched.Degraded {
			displayTitle = fallback(enriched.Title, title)
			if enriched.Year > 0 {
				year = enriched.Year
			}
		}

		stem := names.Claim(namer.MovieStem(displayTitle, year), strconv.Itoa(movie.ID))
		dir := filepath.Join(root, stem)
		remoteID := strconv.Itoa(movie.ID)

		desired = append(desired, plan.Desired{
			Path:      filepath.Join(dir, stem+".strm"),
			Content:   []byte(catalog.MovieStreamURL(m.opts.ProxyHost, account.ID, movie.UUID) + "\n"),
			Kind:      cache.ArtifactSTRM,
			RemoteID:  remoteID,
			Overwrite: true,
		})

		if m.opts.NFO && !enriched.Degraded {
			doc := nfo.Movie{
				Title:     displayTitle,
				Year:      year,
				Plot:      fallback(enriched.Plot, movie.Description),
				Genre:     fallback(enriched.Genres, movie.Genre),
				Rating:    enriched.Rating,
				Thumb:     enriched.PosterURL,
				Fanart:    enriched.FanartURL,
				UniqueIDs: nfo.IDs(enriched.TMDBID, movie.IMDBID),
			}
			if doc.Rating == 0 {
				doc.Rating = parseRating(movie.Rating)
			}
			if body, err := nfo.Render(doc); err == nil {
				desired = append(desired, plan.Desired{
					Path:      filepath.Join(dir, stem+".nfo"),
					Content:   body,
					Kind:      cache.ArtifactNFO,
					RemoteID:  remoteID,
					Overwrite: m.opts.OverwriteNFO,
				})
			} else {
				log.Warnw("nfo render failed", "movie", displayTitle, "error", err)
			}
		}

		if m.opts.Images && !enriched.Degraded {
			desired = append(desired, m.desireArtwork(ctx, dir, remoteID, enriched)...)
		}
	}
	return desired, degraded
}

// desireSeries maps the series listing to show directories, season folders,
// and per-episode pointers and sidecars, also reporting how many shows
// exported degraded.
func (m *Manager) desireSeries(ctx context.Context, account catalog.Account, series []catalog.Series, root string) ([]plan.Desired, int) {
	log := logger.FromCtx(ctx)
	names := namer.New(m.opts.TagDenylist)

	var desired []plan.Desired
	degraded := 0
	for _, show := range series {
		title := names.NormalizeTitle(show.Name)
		if title == "" {
			log.Warnw("series title empty after normalization, skipping", "id", show.ID)
			continue
		}

		enriched := m.resolver.Series(ctx, title, show.Year, tmdbIDOf(show.TMDBID))
		if enriched.Degraded {
			log.Debugw("exporting degraded, pointers only", "series", title)
			degraded++
		}

		displayTitle := title
		if !enriched.Degraded {
			displayTitle = fallback(enriched.Title, title)
		}

		stem := names.Claim(namer.ShowStem(displayTitle), strconv.Itoa(show.ID))
		showDir := filepath.Join(root, stem)
		remoteID := strconv.Itoa(show.ID)

		seasons, err := m.seriesEpisodes(ctx, account, show)
		if err != nil {
			log.Warnw("episode fetch failed, skipping series", "series", displayTitle, "error", err)
			continue
		}
		if len(seasons) == 0 {
			log.Debugw("series has no episodes, skipping", "series", displayTitle)
			continue
		}

		if m.opts.NFO && !enriched.Degraded {
			year := show.Year
			if !enriched.Degraded && enriched.Year > 0 {
				year = enriched.Year
			}
			doc := nfo.TVShow{
				Title:     displayTitle,
				Year:      year,
				Plot:      fallback(enriched.Plot, show.Description),
				Genre:     fallback(enriched.Genres, show.Genre),
				Rating:    enriched.Rating,
				Thumb:     enriched.PosterURL,
				Fanart:    enriched.FanartURL,
				UniqueIDs: nfo.IDs(enriched.TMDBID, show.IMDBID),
			}
			if body, err := nfo.Render(doc); err == nil {
				desired = append(desired, plan.Desired{
					Path:      filepath.Join(showDir, "tvshow.nfo"),
					Content:   body,
					Kind:      cache.ArtifactNFO,
					RemoteID:  remoteID,
					Overwrite: m.opts.OverwriteNFO,
				})
			} else {
				log.Warnw("nfo render failed", "series", displayTitle, "error", err)
			}
		}

		if m.opts.Images && !enriched.Degraded {
			desired = append(desired, m.desireArtwork(ctx, showDir, remoteID, enriched)...)
		}

		for _, season := range seasons {
			seasonDir := filepath.Join(showDir, namer.SeasonDir(season.Number))
			for _, ep := range season.Episodes {
				url := episodeURL(m.opts.ProxyHost, account.ID, show, season.Number, ep)
				if url == "" {
					log.Warnw("episode has no playable reference, skipping",
						"series", displayTitle, "season", season.Number, "episode", ep.Number)
					continue
				}

				epTitle := names.NormalizeTitle(ep.Title)
				if epTitle == "" {
					epTitle = "Episode " + strconv.Itoa(ep.Number)
				}
				epStem := namer.EpisodeStem(season.Number, ep.Number, epTitle)

				desired = append(desired, plan.Desired{
					Path:      filepath.Join(seasonDir, epStem+".strm"),
					Content:   []byte(url + "\n"),
					Kind:      cache.ArtifactSTRM,
					RemoteID:  remoteID,
					Overwrite: true,
				})

				if m.opts.NFO && !enriched.Degraded {
					epMeta := m.resolver.Episode(ctx, enriched.TMDBID, season.Number, ep.Number)
					if epMeta.Degraded {
						continue
					}
					doc := nfo.Episode{
						Title:     fallback(epMeta.Title, epTitle),
						ShowTitle: displayTitle,
						Season:    season.Number,
						Episode:   ep.Number,
						Plot:      epMeta.Plot,
						Aired:     epMeta.Aired,
						Rating:    epMeta.Rating,
						UniqueIDs: nfo.IDs(epMeta.TMDBID, ""),
					}
					if body, err := nfo.Render(doc); err == nil {
						desired = append(desired, plan.Desired{
							Path:      filepath.Join(seasonDir, epStem+".nfo"),
							Content:   body,
							Kind:      cache.ArtifactNFO,
							RemoteID:  remoteID,
							Overwrite: m.opts.OverwriteNFO,
						})
					}
				}
			}
		}
	}
	return desired, degraded
}

// desireArtwork produces poster/fanart entries. Existing files are kept as
// desired with their on-disk bytes unless overwrite is on, so pruning never
// removes them and no download happens.
func (m *Manager) desireArtwork(ctx context.Context, dir, remoteID string, enriched cache.Enrichment) []plan.Desired {
	var desired []plan.Desired

	artwork := []struct {
		url  string
		size string
		name string
	}{
		{enriched.PosterURL, tmdb.PosterSize, "poster.jpg"},
		{enriched.FanartURL, tmdb.FanartSize, "fanart.jpg"},
	}

	for _, art := range artwork {
		if art.url == "" {
			continue
		}
		target := filepath.Join(dir, art.name)

		data, ok := m.artworkBytes(ctx, target, art.url, art.size)
		if !ok {
			continue
		}
		desired = append(desired, plan.Desired{
			Path:      target,
			Content:   data,
			Kind:      cache.ArtifactImage,
			RemoteID:  remoteID,
			Overwrite: m.opts.OverwriteImages,
		})
	}
	return desired
}

// artworkBytes decides where image content comes from: disk when the file
// exists and overwrite is off, the CDN otherwise.
func (m *Manager) artworkBytes(ctx context.Context, target, url, size string) ([]byte, bool) {
	log := logger.FromCtx(ctx)

	if m.fs.FileExists(target) && !m.opts.OverwriteImages {
		data, err := m.fs.ReadFile(target)
		if err != nil {
			log.Warnw("artwork read failed", "path", target, "error", err)
			return nil, false
		}
		return data, true
	}

	imagePath, ok := artworkImagePath(url, size)
	if !ok {
		log.Warnw("unrecognized artwork url, skipping", "url", url)
		return nil, false
	}
	data, err := m.tmdb.DownloadImage(ctx, size, imagePath)
	if err != nil {
		log.Warnw("artwork download failed", "url", url, "error", err)
		return nil, false
	}
	return data, true
}

// episodeURL picks the playback reference for one episode: the series uuid
// route when available, the episode stream id route as fallback.
func episodeURL(proxyHost string, accountID int, show catalog.Series, season int, ep catalog.Episode) string {
	if show.UUID != "" {
		return catalog.EpisodeStreamURL(proxyHost, accountID, show.UUID, season, ep.Number)
	}
	if !ep.StreamID.IsZero() {
		return catalog.EpisodeStreamIDURL(proxyHost, accountID, ep.StreamID.String())
	}
	return ""
}

func tmdbIDOf(id catalog.FlexID) int64 {
	if id.IsZero() {
		return 0
	}
	parsed, err := strconv.ParseInt(id.String(), 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}
