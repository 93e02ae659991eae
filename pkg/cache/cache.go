// Package cache persists export state between runs: filesystem artifact
// fingerprints, resolved metadata lookups, and raw catalog listing snapshots.
package cache

import (
	"context"
	"time"
)

// ArtifactKind labels what a cached filesystem artifact is.
type ArtifactKind string

const (
	ArtifactSTRM  ArtifactKind = "strm"
	ArtifactNFO   ArtifactKind = "nfo"
	ArtifactImage ArtifactKind = "image"
)

// Artifact records one file the exporter manages, keyed by its absolute path.
type Artifact struct {
	Path        string
	AccountID   int
	Kind        ArtifactKind
	RemoteID    string
	Fingerprint string
	UpdatedAt   time.Time
}

// Enrichment is one resolved metadata lookup, keyed by the lookup that
// produced it so identical queries never hit the metadata API twice.
type Enrichment struct {
	Key       string
	MediaType string
	TMDBID    int64
	Title     string
	Year      int
	Plot      string
	Genres    string
	Rating    float64
	Aired     string
	PosterURL string
	FanartURL string
	Degraded  bool
	FetchedAt time.Time
}

// Snapshot is a raw catalog listing captured on a previous run, kept so the
// planner can detect unchanged listings without refetching detail.
type Snapshot struct {
	AccountID int
	Kind      string
	Payload   []byte
	ItemCount int
	FetchedAt time.Time
}

// Stats summarizes cache contents for the cache stats command.
type Stats struct {
	Artifacts   int64
	Enrichments int64
	Snapshots   int64
	SizeBytes   int64
}

// Store is the persistence surface the exporter uses. Reads return a nil
// record, not an error, when the key is absent.
type Store interface {
	GetArtifact(ctx context.Context, path string) (*Artifact, error)
	PutArtifact(ctx context.Context, artifact Artifact) error
	DeleteArtifact(ctx context.Context, path string) error
	ListArtifacts(ctx context.Context, accountID int) ([]Artifact, error)

	GetEnrichment(ctx context.Context, key string) (*Enrichment, error)
	PutEnrichment(ctx context.Context, enrichment Enrichment) error

	GetSnapshot(ctx context.Context, accountID int, kind string) (*Snapshot, error)
	PutSnapshot(ctx context.Context, snapshot Snapshot) error

	InvalidateAccount(ctx context.Context, accountID int) error
	ClearAll(ctx context.Context) error
	Stats(ctx context.Context) (Stats, error)
	Close() error
}
