package resolver

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmunix/renamarr/internal/tmdb"
)

// snapshotTTL bounds how stale a persisted cache entry may be before it is
// ignored at load time.
const snapshotTTL = 24 * time.Hour

// Cache buckets in the persistent store.
const (
	bucketSearch   = "search"
	bucketID       = "id"
	bucketSeason   = "season"
	bucketMovie    = "movie"
	bucketNotFound = "notfound"
	bucketGenres   = "genres"
)

// Store persists the resolver's caches between runs in a SQLite database.
// Caches are accelerators only: every Store failure is reported but must be
// treated as non-fatal by the caller.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the cache database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS lookup_cache (
		bucket     TEXT NOT NULL,
		key        TEXT NOT NULL,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		PRIMARY KEY (bucket, key)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load restores all cache entries fresher than snapshotTTL into the
// resolver, replacing its current cache contents.
func (s *Store) Load(ctx context.Context, r *Resolver) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT bucket, key, value FROM lookup_cache WHERE updated_at > ?",
		time.Now().Add(-snapshotTTL),
	)
	if err != nil {
		return fmt.Errorf("load cache: %w", err)
	}
	defer rows.Close()

	loaded := 0
	for rows.Next() {
		var bucket, key, value string
		if err := rows.Scan(&bucket, &key, &value); err != nil {
			return fmt.Errorf("scan cache row: %w", err)
		}
		if err := r.restoreEntry(bucket, key, []byte(value)); err != nil {
			r.log.Warn("skipping unreadable cache entry", "bucket", bucket, "key", key, "error", err)
			continue
		}
		loaded++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load cache: %w", err)
	}

	r.log.Debug("cache loaded", "entries", loaded)
	return nil
}

// Save flushes the resolver's caches to the store. Called on normal exit and
// on termination signals, never mid-run.
func (s *Store) Save(ctx context.Context, r *Resolver) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save cache: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	put := func(bucket, key string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s/%s: %w", bucket, key, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO lookup_cache (bucket, key, value, updated_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(bucket, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			bucket, key, string(data), now,
		)
		if err != nil {
			return fmt.Errorf("write %s/%s: %w", bucket, key, err)
		}
		return nil
	}

	for key, candidates := range r.searches {
		if err := put(bucketSearch, key, candidates); err != nil {
			return err
		}
	}
	for key, id := range r.ids {
		if err := put(bucketID, key, id); err != nil {
			return err
		}
	}
	for key, season := range r.seasons {
		if err := put(bucketSeason, key, season); err != nil {
			return err
		}
	}
	for key, movie := range r.movies {
		if err := put(bucketMovie, key, movie); err != nil {
			return err
		}
	}
	for key := range r.notFound {
		if err := put(bucketNotFound, key, true); err != nil {
			return err
		}
	}
	if r.genres != nil {
		if err := put(bucketGenres, "all", r.genres); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save cache: %w", err)
	}
	return nil
}

// restoreEntry rehydrates one persisted cache row.
func (r *Resolver) restoreEntry(bucket, key string, value []byte) error {
	switch bucket {
	case bucketSearch:
		var candidates []tmdb.Candidate
		if err := json.Unmarshal(value, &candidates); err != nil {
			return err
		}
		r.searches[key] = candidates
	case bucketID:
		var id int64
		if err := json.Unmarshal(value, &id); err != nil {
			return err
		}
		r.ids[key] = id
	case bucketSeason:
		var season tmdb.Season
		if err := json.Unmarshal(value, &season); err != nil {
			return err
		}
		r.seasons[key] = &season
	case bucketMovie:
		var movie tmdb.Movie
		if err := json.Unmarshal(value, &movie); err != nil {
			return err
		}
		r.movies[key] = &movie
	case bucketNotFound:
		r.notFound[key] = struct{}{}
	case bucketGenres:
		var genres map[int]string
		if err := json.Unmarshal(value, &genres); err != nil {
			return err
		}
		r.genres = genres
	default:
		return fmt.Errorf("unknown cache bucket %q", bucket)
	}
	return nil
}
