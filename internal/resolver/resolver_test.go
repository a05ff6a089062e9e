package resolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/renamarr/internal/mediapath"
	"github.com/vmunix/renamarr/internal/tmdb"
)

// catalogStub is a fake TMDB server with call counting per path prefix.
type catalogStub struct {
	t        *testing.T
	searches int
	mux      *http.ServeMux
}

func newCatalogStub(t *testing.T) (*catalogStub, *httptest.Server) {
	stub := &catalogStub{t: t, mux: http.NewServeMux()}
	stub.mux.HandleFunc("/3/genre/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"genres":[{"id":18,"name":"Drama"}]}`))
	})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/3/search/") {
			stub.searches++
		}
		stub.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)
	return stub, server
}

func (s *catalogStub) respond(path, body string) {
	s.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

func (s *catalogStub) fail(path string, status int) {
	s.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
}

func newTestResolver(t *testing.T, serverURL string, chooser Chooser) *Resolver {
	if chooser == nil {
		chooser = FailChooser{}
	}
	return New(tmdb.NewClient("test-key", tmdb.WithBaseURL(serverURL)), chooser, nil)
}

func movieRec(title string, year int) *mediapath.Record {
	return &mediapath.Record{Kind: mediapath.KindMovie, Title: title, Year: year, FullPath: title + ".mkv"}
}

func showRec(title string, season, episode int) *mediapath.Record {
	return &mediapath.Record{
		Kind: mediapath.KindShow, Title: title,
		Season: season, HasSeason: true,
		Episode: episode, HasEpisode: true,
	}
}

func TestResolver_ResolveID_SingleCandidate(t *testing.T) {
	stub, server := newCatalogStub(t)
	stub.respond("/3/search/movie", `{"results":[
		{"id":550,"title":"Fight Club","release_date":"1999-10-15"}
	]}`)

	r := newTestResolver(t, server.URL, nil)

	id, err := r.ResolveID(context.Background(), movieRec("Fight Club", 0))
	require.NoError(t, err)
	assert.Equal(t, int64(550), id)

	// Second resolution is served from the id cache.
	id, err = r.ResolveID(context.Background(), movieRec("Fight Club", 0))
	require.NoError(t, err)
	assert.Equal(t, int64(550), id)
	assert.Equal(t, 1, stub.searches)
}

func TestResolver_ResolveID_UniqueYearMatch(t *testing.T) {
	stub, server := newCatalogStub(t)
	stub.respond("/3/search/movie", `{"results":[
		{"id":1,"title":"Dune","release_date":"1984-12-14"},
		{"id":2,"title":"Dune","release_date":"2021-09-15"}
	]}`)

	// FailChooser proves the year match bypasses disambiguation entirely.
	r := newTestResolver(t, server.URL, FailChooser{})

	id, err := r.ResolveID(context.Background(), movieRec("Dune", 2021))
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestResolver_ResolveID_AmbiguousGoesToChooser(t *testing.T) {
	stub, server := newCatalogStub(t)
	stub.respond("/3/search/movie", `{"results":[
		{"id":1,"title":"Dune","release_date":"1984-12-14"},
		{"id":2,"title":"Dune","release_date":"2021-09-15"}
	]}`)

	r := newTestResolver(t, server.URL, FirstChooser{})

	id, err := r.ResolveID(context.Background(), movieRec("Dune", 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	r = newTestResolver(t, server.URL, FailChooser{})
	_, err = r.ResolveID(context.Background(), movieRec("Dune", 0))
	assert.ErrorIs(t, err, ErrAmbiguous)
}

func TestResolver_EmptyResultsNotFound(t *testing.T) {
	stub, server := newCatalogStub(t)
	stub.respond("/3/search/movie", `{"results":[]}`)

	r := newTestResolver(t, server.URL, nil)

	_, err := r.ResolveID(context.Background(), movieRec("No Such Film", 0))
	assert.ErrorIs(t, err, tmdb.ErrNotFound)

	// The empty candidate list is cached; no second search goes out.
	_, err = r.ResolveID(context.Background(), movieRec("No Such Film", 0))
	assert.ErrorIs(t, err, tmdb.ErrNotFound)
	assert.Equal(t, 1, stub.searches)
}

func TestResolver_SearchErrorEntersNegativeLookup(t *testing.T) {
	stub, server := newCatalogStub(t)
	stub.fail("/3/search/movie", http.StatusInternalServerError)

	r := newTestResolver(t, server.URL, nil)

	_, err := r.ResolveID(context.Background(), movieRec("Broken Title", 0))
	assert.ErrorIs(t, err, tmdb.ErrNotFound)
	assert.Equal(t, 1, stub.searches)

	// The title is suppressed for the rest of the process.
	_, err = r.ResolveID(context.Background(), movieRec("Broken Title", 0))
	assert.ErrorIs(t, err, tmdb.ErrNotFound)
	_, err = r.ResolveDetails(context.Background(), movieRec("Broken Title", 0))
	assert.ErrorIs(t, err, tmdb.ErrNotFound)
	assert.Equal(t, 1, stub.searches)
}

func TestResolver_ResolveDetails_Movie(t *testing.T) {
	stub, server := newCatalogStub(t)
	stub.respond("/3/search/movie", `{"results":[
		{"id":550,"title":"Fight Club","release_date":"1999-10-15"}
	]}`)
	stub.respond("/3/movie/550", `{"id":550,"title":"Fight Club","release_date":"1999-10-15"}`)

	r := newTestResolver(t, server.URL, nil)

	details, err := r.ResolveDetails(context.Background(), movieRec("Fight Club", 1999))
	require.NoError(t, err)
	require.NotNil(t, details.Movie)
	assert.Nil(t, details.Season)
	assert.Equal(t, int64(550), details.Movie.ID)
	assert.Equal(t, 1999, details.Movie.Year())
}

func TestResolver_ResolveDetails_SeasonMergesShowMetadata(t *testing.T) {
	stub, server := newCatalogStub(t)
	stub.respond("/3/search/tv", `{"results":[
		{"id":95396,"name":"Severance","first_air_date":"2022-02-17"}
	]}`)
	stub.respond("/3/tv/95396", `{"id":95396,"name":"Severance","first_air_date":"2022-02-17"}`)
	stub.respond("/3/tv/95396/season/1", `{
		"id":134431,"name":"Season 1","season_number":1,"air_date":"2022-02-18",
		"episodes":[
			{"episode_number":1,"name":"Good News About Hell"},
			{"episode_number":2,"name":"Half Loop"}
		]
	}`)

	r := newTestResolver(t, server.URL, nil)
	rec := showRec("Severance", 1, 2)

	details, err := r.ResolveDetails(context.Background(), rec)
	require.NoError(t, err)
	require.NotNil(t, details.Season)

	// Series-level metadata rides along on the season object.
	assert.Equal(t, "2022-02-17", details.Season.FirstAirDate)
	assert.Equal(t, int64(95396), details.Season.ShowID)
	assert.Equal(t, 2022, details.Season.Year())

	assert.Equal(t, "Half Loop", details.EpisodeName(2))
	assert.Equal(t, "Good News About Hell", details.EpisodeName(1))
	assert.Empty(t, details.EpisodeName(9))
}

func TestResolver_SeasonDetailsCached(t *testing.T) {
	stub, server := newCatalogStub(t)
	seasonCalls := 0
	stub.respond("/3/search/tv", `{"results":[
		{"id":7,"name":"Show","first_air_date":"2010-01-01"}
	]}`)
	stub.respond("/3/tv/7", `{"id":7,"name":"Show","first_air_date":"2010-01-01"}`)
	stub.mux.HandleFunc("/3/tv/7/season/1", func(w http.ResponseWriter, r *http.Request) {
		seasonCalls++
		_, _ = w.Write([]byte(`{"id":70,"season_number":1,"episodes":[]}`))
	})

	r := newTestResolver(t, server.URL, nil)

	_, err := r.ResolveDetails(context.Background(), showRec("Show", 1, 1))
	require.NoError(t, err)
	_, err = r.ResolveDetails(context.Background(), showRec("Show", 1, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, seasonCalls)
}

func TestResolver_MissingSeasonEntersNegativeLookup(t *testing.T) {
	stub, server := newCatalogStub(t)
	stub.respond("/3/search/tv", `{"results":[
		{"id":7,"name":"Show","first_air_date":"2010-01-01"}
	]}`)
	stub.respond("/3/tv/7", `{"id":7,"name":"Show","first_air_date":"2010-01-01"}`)
	stub.fail("/3/tv/7/season/9", http.StatusNotFound)

	r := newTestResolver(t, server.URL, nil)

	_, err := r.ResolveDetails(context.Background(), showRec("Show", 9, 1))
	assert.ErrorIs(t, err, tmdb.ErrNotFound)

	_, err = r.ResolveID(context.Background(), showRec("Show", 9, 1))
	// The id was memoized before the season fetch failed, so it still
	// resolves; a fresh details call is what short-circuits.
	require.NoError(t, err)
	_, err = r.resolveSeason(context.Background(), showRec("Show", 9, 2))
	assert.ErrorIs(t, err, tmdb.ErrNotFound)
}

func TestNormKey(t *testing.T) {
	assert.Equal(t, "amelie", normKey("Amélie"))
	assert.Equal(t, "the show", normKey("  The   Show "))
	assert.Equal(t, normKey("Café Flesh"), normKey("cafe flesh"))
}

func TestSearchQuery(t *testing.T) {
	assert.Equal(t, "Fast and Furious", searchQuery("Fast & Furious"))
	assert.Equal(t, "The Show", searchQuery("  The   Show "))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "movie:dune", idKey(movieRec("Dune", 2021)))
	assert.Equal(t, "show:dune", idKey(showRec("Dune", 1, 1)))
	assert.Equal(t, "dune S1", seasonKey(showRec("Dune", 1, 1)))
	// Season 0 (specials) keys as a real season, not the no-season sentinel.
	assert.Equal(t, "dune S0", seasonKey(showRec("Dune", 0, 0)))
	assert.Equal(t, "dune noseason",
		seasonKey(&mediapath.Record{Kind: mediapath.KindShow, Title: "Dune"}))
}
