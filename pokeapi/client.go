package pokeapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/qyinm/pokedextui/types"
	"github.com/segmentio/encoding/json"
)

const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	DefaultUserAgent = "pokedextui/dev (+https://github.com/qyinm/pokedextui)"
	DefaultTimeout   = 10 * time.Second
)

// Client implements types.PokemonSource over PokeAPI with in-memory caches.
// The pokemon and species caches are append-only and keyed by the decimal id.
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
	assets    Assets

	mu      sync.Mutex
	pokemon map[string]types.Pokemon
	species map[string]types.Species
}

// Compile-time interface check
var _ types.PokemonSource = (*Client)(nil)

// Option customises a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root (tests, mirrors).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u = strings.TrimSpace(u); u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// New creates a new Client with configured HTTP client and empty caches.
func New(opts ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		assets:    DefaultAssets,
		pokemon:   make(map[string]types.Pokemon),
		species:   make(map[string]types.Species),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// GetRoster fetches the contiguous id range [start, end] in a single request.
func (c *Client) GetRoster(ctx context.Context, start, end int) ([]types.CatalogEntry, error) {
	if start < 1 || end < start {
		return nil, fmt.Errorf("invalid roster range %d-%d", start, end)
	}
	limit := end - start + 1
	offset := start - 1
	url := fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", c.baseURL, limit, offset)

	var page types.RosterPage
	if err := c.getJSON(ctx, url, &page); err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}

	entries := make([]types.CatalogEntry, 0, len(page.Results))
	for i, r := range page.Results {
		entries = append(entries, types.CatalogEntry{ID: start + i, Name: r.Name})
	}
	return entries, nil
}

// GetPokemon returns the pokemon detail for an id or name, from cache when possible.
func (c *Client) GetPokemon(ctx context.Context, idOrName string) (types.Pokemon, error) {
	key := strings.ToLower(strings.TrimSpace(idOrName))
	if key == "" {
		return types.Pokemon{}, fmt.Errorf("pokemon id or name is required")
	}

	c.mu.Lock()
	if cached, ok := c.pokemon[key]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	var p types.Pokemon
	if err := c.getJSON(ctx, c.baseURL+"/pokemon/"+key, &p); err != nil {
		return types.Pokemon{}, fmt.Errorf("fetch pokemon %s: %w", key, err)
	}

	c.mu.Lock()
	c.pokemon[key] = p
	if p.ID > 0 {
		c.pokemon[strconv.Itoa(p.ID)] = p
	}
	c.mu.Unlock()

	return p, nil
}

// GetSpecies returns the species detail for an id, from cache when possible.
func (c *Client) GetSpecies(ctx context.Context, id int) (types.Species, error) {
	key := strconv.Itoa(id)

	c.mu.Lock()
	if cached, ok := c.species[key]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	var s types.Species
	if err := c.getJSON(ctx, c.baseURL+"/pokemon-species/"+key, &s); err != nil {
		return types.Species{}, fmt.Errorf("fetch species %s: %w", key, err)
	}

	c.mu.Lock()
	c.species[key] = s
	c.mu.Unlock()

	return s, nil
}

// GetEvolutionChain fetches the chain referenced by a species payload. Not cached.
func (c *Client) GetEvolutionChain(ctx context.Context, url string) (types.EvolutionChain, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return types.EvolutionChain{}, fmt.Errorf("evolution chain url is required")
	}

	var chain types.EvolutionChain
	if err := c.getJSON(ctx, url, &chain); err != nil {
		return types.EvolutionChain{}, fmt.Errorf("fetch evolution chain: %w", err)
	}
	return chain, nil
}

// ClearCache drops both detail caches. Only long-running hosts call this;
// an interactive session keeps its caches for its whole lifetime.
func (c *Client) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pokemon = make(map[string]types.Pokemon)
	c.species = make(map[string]types.Species)
}

// CachedSpecies returns a species already in the cache without fetching.
func (c *Client) CachedSpecies(id int) (types.Species, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.species[strconv.Itoa(id)]
	return s, ok
}

// CacheLen reports the number of cached pokemon and species keys.
func (c *Client) CacheLen() (pokemon, species int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pokemon), len(c.species)
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body for error context
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return &NetworkError{URL: url, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
