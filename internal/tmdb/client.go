package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultBaseURL = "https://api.themoviedb.org"

// minRequestSpacing is a courtesy throttle toward the remote service, not a
// correctness requirement.
const minRequestSpacing = 20 * time.Millisecond

// ErrNotFound is returned when the catalog has no usable result: a 404, an
// explicit error field in the response body, or an undecodable payload.
var ErrNotFound = errors.New("tmdb: not found")

// Client is a TMDB API client. Remote failures of any shape collapse to
// ErrNotFound for the caller; there are no automatic retries.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	mu          sync.Mutex
	lastRequest time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errProbe detects explicit error indicators in otherwise well-formed
// responses; TMDB reports them under either key depending on the endpoint.
type errProbe struct {
	Error  json.RawMessage `json:"error"`
	Errors json.RawMessage `json:"errors"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	c.throttle()

	u := fmt.Sprintf("%s%s", c.baseURL, path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	var probe errProbe
	if err := json.Unmarshal(raw, &probe); err == nil {
		if probe.Error != nil || probe.Errors != nil {
			return ErrNotFound
		}
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// throttle spaces consecutive remote calls by minRequestSpacing.
func (c *Client) throttle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lastRequest.IsZero() {
		if elapsed := time.Since(c.lastRequest); elapsed < minRequestSpacing {
			time.Sleep(minRequestSpacing - elapsed)
		}
	}
	c.lastRequest = time.Now()
}

// tvResult and movieResult are the raw search result shapes; the two search
// endpoints name their display and date fields differently.
type tvResult struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	GenreIDs     []int  `json:"genre_ids"`
	FirstAirDate string `json:"first_air_date"`
}

type movieResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	GenreIDs    []int  `json:"genre_ids"`
	ReleaseDate string `json:"release_date"`
}

// SearchTV searches for shows by name, constrained by first-air year when it
// is known (pass 0 for unknown). Results missing an id, name, or date are
// dropped; genre ids are resolved against the supplied genre table.
func (c *Client) SearchTV(ctx context.Context, query string, year int, genres map[int]string) ([]Candidate, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("include_adult", "true")
	if year != 0 {
		q.Set("first_air_date_year", fmt.Sprintf("%04d", year))
	}

	var body struct {
		Results []tvResult `json:"results"`
	}
	if err := c.get(ctx, "/3/search/tv", q, &body); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(body.Results))
	for _, r := range body.Results {
		if r.ID == 0 || r.Name == "" || r.FirstAirDate == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			ID:       r.ID,
			Name:     r.Name,
			GenreIDs: r.GenreIDs,
			Genres:   resolveGenres(r.GenreIDs, genres),
			Date:     r.FirstAirDate,
		})
	}
	return candidates, nil
}

// SearchMovie searches for movies by title, constrained by primary release
// year when it is known (pass 0 for unknown).
func (c *Client) SearchMovie(ctx context.Context, query string, year int, genres map[int]string) ([]Candidate, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("include_adult", "true")
	if year != 0 {
		q.Set("primary_release_year", fmt.Sprintf("%04d", year))
	}

	var body struct {
		Results []movieResult `json:"results"`
	}
	if err := c.get(ctx, "/3/search/movie", q, &body); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(body.Results))
	for _, r := range body.Results {
		if r.ID == 0 || r.Title == "" || r.ReleaseDate == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			ID:       r.ID,
			Name:     r.Title,
			GenreIDs: r.GenreIDs,
			Genres:   resolveGenres(r.GenreIDs, genres),
			Date:     r.ReleaseDate,
		})
	}
	return candidates, nil
}

func resolveGenres(ids []int, table map[int]string) []string {
	var names []string
	for _, id := range ids {
		if name, ok := table[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Genres fetches the movie and TV genre tables concurrently and merges
// them; the id spaces overlap consistently. The throttle still spaces the
// two requests.
func (c *Client) Genres(ctx context.Context) (map[int]string, error) {
	tables := make([][]Genre, 2)
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range []string{"/3/genre/movie/list", "/3/genre/tv/list"} {
		g.Go(func() error {
			var body struct {
				Genres []Genre `json:"genres"`
			}
			if err := c.get(gctx, path, nil, &body); err != nil {
				return err
			}
			tables[i] = body.Genres
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[int]string)
	for _, table := range tables {
		for _, g := range table {
			merged[g.ID] = g.Name
		}
	}
	return merged, nil
}

// GetShow fetches series-level metadata by TMDB ID.
func (c *Client) GetShow(ctx context.Context, id int64) (*Show, error) {
	var show Show
	if err := c.get(ctx, "/3/tv/"+strconv.FormatInt(id, 10), nil, &show); err != nil {
		return nil, err
	}
	return &show, nil
}

// GetSeason fetches one season of a show, including its episode list.
func (c *Client) GetSeason(ctx context.Context, id int64, season int) (*Season, error) {
	path := fmt.Sprintf("/3/tv/%d/season/%d", id, season)
	var s Season
	if err := c.get(ctx, path, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetMovie fetches movie metadata by TMDB ID.
func (c *Client) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	var movie Movie
	if err := c.get(ctx, "/3/movie/"+strconv.FormatInt(id, 10), nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}
