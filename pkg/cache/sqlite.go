package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite backs Store with a single sqlite database file.
type SQLite struct {
	db *sql.DB
}

// New opens (creating if needed) the cache database and applies migrations.
func New(filePath string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", filePath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// GetArtifact returns the cached record for a managed path, nil when unknown.
func (s *SQLite) GetArtifact(ctx context.Context, path string) (*Artifact, error) {
	query := `SELECT path, account_id, kind, remote_id, fingerprint, updated_at FROM artifacts WHERE path = ?`

	var a Artifact
	err := s.db.QueryRowContext(ctx, query, path).Scan(&a.Path, &a.AccountID, &a.Kind, &a.RemoteID, &a.Fingerprint, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get artifact %s: %w", path, err)
	}
	return &a, nil
}

// PutArtifact inserts or replaces the record for a managed path.
func (s *SQLite) PutArtifact(ctx context.Context, artifact Artifact) error {
	query := `INSERT INTO artifacts (path, account_id, kind, remote_id, fingerprint, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			account_id = excluded.account_id,
			kind = excluded.kind,
			remote_id = excluded.remote_id,
			fingerprint = excluded.fingerprint,
			updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		artifact.Path, artifact.AccountID, artifact.Kind, artifact.RemoteID, artifact.Fingerprint, artifact.UpdatedAt)
	if err != nil {
		return fmt.Errorf("put artifact %s: %w", artifact.Path, err)
	}
	return nil
}

// DeleteArtifact drops the record for a path. Deleting an unknown path is not
// an error.
func (s *SQLite) DeleteArtifact(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM artifacts WHERE path = ?`, path)
	if err != nil {
		return fmt.Errorf("delete artifact %s: %w", path, err)
	}
	return nil
}

// ListArtifacts returns every managed artifact for one account, ordered by
// path so runs iterate deterministically.
func (s *SQLite) ListArtifacts(ctx context.Context, accountID int) ([]Artifact, error) {
	query := `SELECT path, account_id, kind, remote_id, fingerprint, updated_at
		FROM artifacts WHERE account_id = ? ORDER BY path ASC`

	rows, err := s.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list artifacts for account %d: %w", accountID, err)
	}
	defer rows.Close()

	artifacts := make([]Artifact, 0)
	for rows.Next() {
		var a Artifact
		if err := rows.Scan(&a.Path, &a.AccountID, &a.Kind, &a.RemoteID, &a.Fingerprint, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan artifact: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, rows.Err()
}

// GetEnrichment returns the cached metadata resolution for a lookup key, nil
// when the lookup has never been resolved.
func (s *SQLite) GetEnrichment(ctx context.Context, key string) (*Enrichment, error) {
	query := `SELECT lookup_key, media_type, tmdb_id, title, year, plot, genres, rating, aired, poster_url, fanart_url, degraded, fetched_at
		FROM enrichments WHERE lookup_key = ?`

	var e Enrichment
	err := s.db.QueryRowContext(ctx, query, key).Scan(
		&e.Key, &e.MediaType, &e.TMDBID, &e.Title, &e.Year, &e.Plot, &e.Genres, &e.Rating,
		&e.Aired, &e.PosterURL, &e.FanartURL, &e.Degraded, &e.FetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get enrichment %s: %w", key, err)
	}
	return &e, nil
}

// PutEnrichment inserts or replaces a resolved lookup.
func (s *SQLite) PutEnrichment(ctx context.Context, enrichment Enrichment) error {
	query := `INSERT INTO enrichments (lookup_key, media_type, tmdb_id, title, year, plot, genres, rating, aired, poster_url, fanart_url, degraded, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(lookup_key) DO UPDATE SET
			media_type = excluded.media_type,
			tmdb_id = excluded.tmdb_id,
			title = excluded.title,
			year = excluded.year,
			plot = excluded.plot,
			genres = excluded.genres,
			rating = excluded.rating,
			aired = excluded.aired,
			poster_url = excluded.poster_url,
			fanart_url = excluded.fanart_url,
			degraded = excluded.degraded,
			fetched_at = excluded.fetched_at`

	_, err := s.db.ExecContext(ctx, query,
		enrichment.Key, enrichment.MediaType, enrichment.TMDBID, enrichment.Title, enrichment.Year,
		enrichment.Plot, enrichment.Genres, enrichment.Rating, enrichment.Aired, enrichment.PosterURL,
		enrichment.FanartURL, enrichment.Degraded, enrichment.FetchedAt)
	if err != nil {
		return fmt.Errorf("put enrichment %s: %w", enrichment.Key, err)
	}
	return nil
}

// GetSnapshot returns the last stored listing for an account and kind, nil
// when no listing has been captured yet.
func (s *SQLite) GetSnapshot(ctx context.Context, accountID int, kind string) (*Snapshot, error) {
	query := `SELECT account_id, kind, payload, item_count, fetched_at
		FROM snapshots WHERE account_id = ? AND kind = ?`

	var snap Snapshot
	err := s.db.QueryRowContext(ctx, query, accountID, kind).Scan(
		&snap.AccountID, &snap.Kind, &snap.Payload, &snap.ItemCount, &snap.FetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot %d/%s: %w", accountID, kind, err)
	}
	return &snap, nil
}

// PutSnapshot inserts or replaces the listing for an account and kind.
func (s *SQLite) PutSnapshot(ctx context.Context, snapshot Snapshot) error {
	query := `INSERT INTO snapshots (account_id, kind, payload, item_count, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(account_id, kind) DO UPDATE SET
			payload = excluded.payload,
			item_count = excluded.item_count,
			fetched_at = excluded.fetched_at`

	_, err := s.db.ExecContext(ctx, query,
		snapshot.AccountID, snapshot.Kind, snapshot.Payload, snapshot.ItemCount, snapshot.FetchedAt)
	if err != nil {
		return fmt.Errorf("put snapshot %d/%s: %w", snapshot.AccountID, snapshot.Kind, err)
	}
	return nil
}

// InvalidateAccount drops artifacts and snapshots for one account. Enrichment
// rows are account independent and stay.
func (s *SQLite) InvalidateAccount(ctx context.Context, accountID int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, query := range []string{
		`DELETE FROM artifacts WHERE account_id = ?`,
		`DELETE FROM snapshots WHERE account_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, query, accountID); err != nil {
			tx.Rollback()
			return fmt.Errorf("invalidate account %d: %w", accountID, err)
		}
	}
	return tx.Commit()
}

// ClearAll empties every cache table. Exported files on disk are untouched.
func (s *SQLite) ClearAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, query := range []string{
		`DELETE FROM artifacts`,
		`DELETE FROM enrichments`,
		`DELETE FROM snapshots`,
	} {
		if _, err := tx.ExecContext(ctx, query); err != nil {
			tx.Rollback()
			return fmt.Errorf("clear cache: %w", err)
		}
	}
	return tx.Commit()
}

// Stats counts rows per table and reports the database size.
func (s *SQLite) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	counts := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM artifacts`, &stats.Artifacts},
		{`SELECT COUNT(*) FROM enrichments`, &stats.Enrichments},
		{`SELECT COUNT(*) FROM snapshots`, &stats.Snapshots},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return Stats{}, fmt.Errorf("cache stats: %w", err)
		}
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()`).Scan(&stats.SizeBytes); err != nil {
		return Stats{}, fmt.Errorf("cache stats: %w", err)
	}
	return stats, nil
}

var _ Store = (*SQLite)(nil)
