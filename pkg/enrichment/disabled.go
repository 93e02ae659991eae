package enrichment

import (
	"context"

	"strmsync/pkg/cache"
)

// Disabled is the resolver used when no TMDB key is configured. Every lookup
// degrades to the catalog's own fields, so exports stay pointer-only and
// nothing is fetched or cached.
type Disabled struct{}

func (Disabled) Movie(_ context.Context, title string, year int, _ int64) cache.Enrichment {
	return cache.Enrichment{MediaType: "movie", Title: title, Year: year, Degraded: true}
}

func (Disabled) Series(_ context.Context, title string, year int, _ int64) cache.Enrichment {
	return cache.Enrichment{MediaType: "tv", Title: title, Year: year, Degraded: true}
}

func (Disabled) Episode(context.Context, int64, int, int) cache.Enrichment {
	return cache.Enrichment{MediaType: "episode", Degraded: true}
}
