// Package resolver matches extracted media records against the remote
// catalog, layering in-process caches and a negative-lookup set over the
// TMDB client so each title costs at most one round of network calls per run.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vmunix/renamarr/internal/mediapath"
	"github.com/vmunix/renamarr/internal/tmdb"
)

// Resolver owns its caches; callers share one instance per run. It is not
// safe for concurrent use: the pipeline is single-threaded, and a parallel
// caller would have to serialize access and preserve the write-once
// semantics of the negative-lookup set.
type Resolver struct {
	client  *tmdb.Client
	chooser Chooser
	log     *slog.Logger

	genres   map[int]string
	searches map[string][]tmdb.Candidate
	ids      map[string]int64
	seasons  map[string]*tmdb.Season
	movies   map[string]*tmdb.Movie
	notFound map[string]struct{}
}

// New creates a Resolver with empty caches.
func New(client *tmdb.Client, chooser Chooser, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		client:   client,
		chooser:  chooser,
		log:      log,
		searches: make(map[string][]tmdb.Candidate),
		ids:      make(map[string]int64),
		seasons:  make(map[string]*tmdb.Season),
		movies:   make(map[string]*tmdb.Movie),
		notFound: make(map[string]struct{}),
	}
}

// Details is the per-title or per-season details object. Exactly one of the
// two fields is set, matching the record's kind.
type Details struct {
	Season *tmdb.Season `json:"season,omitempty"`
	Movie  *tmdb.Movie  `json:"movie,omitempty"`
}

// EpisodeName returns the catalog name of the given episode number, or ""
// when unknown.
func (d *Details) EpisodeName(episode int) string {
	if d == nil || d.Season == nil {
		return ""
	}
	for _, ep := range d.Season.Episodes {
		if ep.EpisodeNumber == episode {
			return ep.Name
		}
	}
	return ""
}

// EnsureGenres loads the genre table once per process. Failure is tolerated:
// candidates then simply carry unresolved genre ids.
func (r *Resolver) EnsureGenres(ctx context.Context) {
	if r.genres != nil {
		return
	}
	genres, err := r.client.Genres(ctx)
	if err != nil {
		r.log.Warn("genre table unavailable", "error", err)
		r.genres = map[int]string{}
		return
	}
	r.genres = genres
}

// ResolveID resolves the record's title to a catalog id. Idempotent and
// cache-first; a title in the negative-lookup set short-circuits without any
// network call.
func (r *Resolver) ResolveID(ctx context.Context, rec *mediapath.Record) (int64, error) {
	key := idKey(rec)
	if id, ok := r.ids[key]; ok {
		return id, nil
	}
	if r.isNotFound(rec.Title) {
		return 0, tmdb.ErrNotFound
	}

	candidates, err := r.search(ctx, rec)
	if err != nil {
		return 0, err
	}
	if len(candidates) == 0 {
		return 0, tmdb.ErrNotFound
	}

	selected, err := r.selectCandidate(ctx, rec, candidates)
	if err != nil {
		return 0, err
	}

	r.ids[key] = selected.ID
	return selected.ID, nil
}

// ResolveDetails fetches the details object for the record: season details
// (with merged series metadata) for shows, movie details for movies.
func (r *Resolver) ResolveDetails(ctx context.Context, rec *mediapath.Record) (*Details, error) {
	if rec.Kind == mediapath.KindShow {
		season, err := r.resolveSeason(ctx, rec)
		if err != nil {
			return nil, err
		}
		return &Details{Season: season}, nil
	}
	movie, err := r.resolveMovie(ctx, rec)
	if err != nil {
		return nil, err
	}
	return &Details{Movie: movie}, nil
}

func (r *Resolver) resolveSeason(ctx context.Context, rec *mediapath.Record) (*tmdb.Season, error) {
	key := seasonKey(rec)
	if r.isNotFound(rec.Title) {
		return nil, tmdb.ErrNotFound
	}
	if season, ok := r.seasons[key]; ok {
		return season, nil
	}

	id, err := r.ResolveID(ctx, rec)
	if err != nil {
		return nil, err
	}

	// Series-level metadata is merged into the season so season records keep
	// the show's first air date and canonical id; a failed show fetch only
	// skips the merge.
	show, err := r.client.GetShow(ctx, id)
	if err != nil {
		r.log.Warn("show details unavailable", "title", rec.Title, "id", id, "error", err)
		show = nil
	}

	season, err := r.client.GetSeason(ctx, id, rec.Season)
	if err != nil {
		r.markNotFound(rec.Title, err)
		return nil, tmdb.ErrNotFound
	}

	if show != nil {
		if show.FirstAirDate != "" {
			season.FirstAirDate = show.FirstAirDate
		}
		if show.ID != 0 {
			season.ShowID = show.ID
		}
	}

	r.seasons[key] = season
	return season, nil
}

func (r *Resolver) resolveMovie(ctx context.Context, rec *mediapath.Record) (*tmdb.Movie, error) {
	key := normKey(rec.Title)
	if movie, ok := r.movies[key]; ok {
		return movie, nil
	}
	if r.isNotFound(rec.Title) {
		return nil, tmdb.ErrNotFound
	}

	id, err := r.ResolveID(ctx, rec)
	if err != nil {
		return nil, err
	}

	movie, err := r.client.GetMovie(ctx, id)
	if err != nil {
		r.markNotFound(rec.Title, err)
		return nil, tmdb.ErrNotFound
	}

	r.movies[key] = movie
	return movie, nil
}

// search performs the cached name/year search for the record's kind.
func (r *Resolver) search(ctx context.Context, rec *mediapath.Record) ([]tmdb.Candidate, error) {
	key := idKey(rec)
	if candidates, ok := r.searches[key]; ok {
		return candidates, nil
	}

	r.EnsureGenres(ctx)

	query := searchQuery(rec.Title)
	var candidates []tmdb.Candidate
	var err error
	if rec.Kind == mediapath.KindShow {
		candidates, err = r.client.SearchTV(ctx, query, rec.Year, r.genres)
	} else {
		candidates, err = r.client.SearchMovie(ctx, query, rec.Year, r.genres)
	}
	if err != nil {
		r.markNotFound(rec.Title, err)
		return nil, tmdb.ErrNotFound
	}

	r.searches[key] = candidates
	return candidates, nil
}

// selectCandidate applies the disambiguation policy: a single candidate is
// taken unconditionally, a unique exact year match wins, and anything else
// goes to the configured chooser.
func (r *Resolver) selectCandidate(ctx context.Context, rec *mediapath.Record, candidates []tmdb.Candidate) (tmdb.Candidate, error) {
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	if rec.Year != 0 {
		matched := -1
		count := 0
		for i, c := range candidates {
			if c.Year() == rec.Year {
				matched = i
				count++
			}
		}
		if count == 1 {
			return candidates[matched], nil
		}
	}

	return r.chooser.Choose(ctx, rec, candidates)
}

func (r *Resolver) isNotFound(title string) bool {
	_, ok := r.notFound[normKey(title)]
	return ok
}

// markNotFound records a failed lookup so the title is never queried again
// within this process. Entries are write-once.
func (r *Resolver) markNotFound(title string, cause error) {
	key := normKey(title)
	if _, ok := r.notFound[key]; ok {
		return
	}
	if !errors.Is(cause, tmdb.ErrNotFound) {
		r.log.Warn("catalog lookup failed", "title", title, "error", cause)
	}
	r.notFound[key] = struct{}{}
}

func idKey(rec *mediapath.Record) string {
	return string(rec.Kind) + ":" + normKey(rec.Title)
}

func seasonKey(rec *mediapath.Record) string {
	if !rec.HasSeason {
		return normKey(rec.Title) + " noseason"
	}
	return fmt.Sprintf("%s S%d", normKey(rec.Title), rec.Season)
}
