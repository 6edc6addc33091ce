package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
)

// fixtureServer serves ../testdata fixtures with PokeAPI paths and counts hits.
type fixtureServer struct {
	*httptest.Server
	hits atomic.Int64
}

func newFixtureServer(t *testing.T) *fixtureServer {
	t.Helper()
	fs := &fixtureServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.hits.Add(1)
		path := strings.Trim(r.URL.Path, "/")
		switch {
		case path == "pokemon":
			limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
			offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
			var b strings.Builder
			b.WriteString(`{"count":1025,"results":[`)
			for i := 0; i < limit; i++ {
				if i > 0 {
					b.WriteString(",")
				}
				fmt.Fprintf(&b, `{"name":"mon-%d","url":"https://pokeapi.co/api/v2/pokemon/%d/"}`, offset+i+1, offset+i+1)
			}
			b.WriteString(`]}`)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(b.String()))
		case path == "pokemon/1" || path == "pokemon/bulbasaur":
			serveFixture(t, w, "pokemon_1.json")
		case path == "pokemon-species/1":
			serveFixture(t, w, "species_1.json")
		case path == "evolution-chain/1":
			serveFixture(t, w, "evolution_chain_1.json")
		case path == "pokemon/500":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(fs.Close)
	return fs
}

func serveFixture(t *testing.T, w http.ResponseWriter, name string) {
	t.Helper()
	b, err := os.ReadFile("../testdata/" + name)
	if err != nil {
		t.Errorf("read fixture %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

func TestGetRoster(t *testing.T) {
	srv := newFixtureServer(t)
	c := New(WithBaseURL(srv.URL))

	entries, err := c.GetRoster(context.Background(), 152, 251)
	if err != nil {
		t.Fatalf("GetRoster: %v", err)
	}
	if len(entries) != 100 {
		t.Fatalf("expected 100 entries, got %d", len(entries))
	}
	if entries[0].ID != 152 || entries[0].Name != "mon-152" {
		t.Errorf("first entry = %+v, want {152 mon-152}", entries[0])
	}
	if entries[99].ID != 251 {
		t.Errorf("last entry id = %d, want 251", entries[99].ID)
	}
}

func TestGetRosterInvalidRange(t *testing.T) {
	c := New(WithBaseURL("http://127.0.0.1:0"))
	if _, err := c.GetRoster(context.Background(), 10, 5); err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestGetPokemonCaches(t *testing.T) {
	srv := newFixtureServer(t)
	c := New(WithBaseURL(srv.URL))
	ctx := context.Background()

	p, err := c.GetPokemon(ctx, "1")
	if err != nil {
		t.Fatalf("GetPokemon: %v", err)
	}
	if p.Name != "bulbasaur" {
		t.Errorf("Name = %q, want bulbasaur", p.Name)
	}
	if len(p.Stats) != 6 {
		t.Errorf("expected 6 stats, got %d", len(p.Stats))
	}
	if got := p.TypeNames(); len(got) != 2 || got[0] != "grass" || got[1] != "poison" {
		t.Errorf("TypeNames = %v", got)
	}

	if _, err := c.GetPokemon(ctx, "1"); err != nil {
		t.Fatalf("second GetPokemon: %v", err)
	}
	if hits := srv.hits.Load(); hits != 1 {
		t.Errorf("expected 1 upstream hit after cache, got %d", hits)
	}
}

func TestGetPokemonByNameCachesCanonicalID(t *testing.T) {
	srv := newFixtureServer(t)
	c := New(WithBaseURL(srv.URL))
	ctx := context.Background()

	if _, err := c.GetPokemon(ctx, "  Bulbasaur "); err != nil {
		t.Fatalf("GetPokemon by name: %v", err)
	}
	if _, err := c.GetPokemon(ctx, "1"); err != nil {
		t.Fatalf("GetPokemon by id: %v", err)
	}
	if hits := srv.hits.Load(); hits != 1 {
		t.Errorf("lookup by id after name should hit cache, got %d hits", hits)
	}
}

func TestGetSpeciesCaches(t *testing.T) {
	srv := newFixtureServer(t)
	c := New(WithBaseURL(srv.URL))
	ctx := context.Background()

	s, err := c.GetSpecies(ctx, 1)
	if err != nil {
		t.Fatalf("GetSpecies: %v", err)
	}
	if s.CaptureRate == nil || *s.CaptureRate != 45 {
		t.Errorf("CaptureRate = %v, want 45", s.CaptureRate)
	}
	if s.EvolutionChain == nil || !strings.HasSuffix(s.EvolutionChain.URL, "/evolution-chain/1/") {
		t.Errorf("EvolutionChain = %+v", s.EvolutionChain)
	}
	if _, err := c.GetSpecies(ctx, 1); err != nil {
		t.Fatalf("second GetSpecies: %v", err)
	}
	if hits := srv.hits.Load(); hits != 1 {
		t.Errorf("expected 1 upstream hit, got %d", hits)
	}

	pokemon, species := c.CacheLen()
	if pokemon != 0 || species != 1 {
		t.Errorf("CacheLen = (%d, %d), want (0, 1)", pokemon, species)
	}

	if cached, ok := c.CachedSpecies(1); !ok || cached.ID != s.ID {
		t.Errorf("CachedSpecies(1) = (%d, %v), want (%d, true)", cached.ID, ok, s.ID)
	}
	if _, ok := c.CachedSpecies(2); ok {
		t.Error("CachedSpecies(2) should miss")
	}
	if hits := srv.hits.Load(); hits != 1 {
		t.Errorf("CachedSpecies must not fetch, got %d hits", hits)
	}
}

func TestGetEvolutionChain(t *testing.T) {
	srv := newFixtureServer(t)
	c := New(WithBaseURL(srv.URL))

	chain, err := c.GetEvolutionChain(context.Background(), srv.URL+"/evolution-chain/1/")
	if err != nil {
		t.Fatalf("GetEvolutionChain: %v", err)
	}
	if chain.Chain.Species.Name != "bulbasaur" {
		t.Errorf("root species = %q", chain.Chain.Species.Name)
	}
	if len(chain.Chain.EvolvesTo) != 1 {
		t.Errorf("expected 1 branch, got %d", len(chain.Chain.EvolvesTo))
	}
}

func TestNotFoundIsNetworkError(t *testing.T) {
	srv := newFixtureServer(t)
	c := New(WithBaseURL(srv.URL))

	_, err := c.GetPokemon(context.Background(), "missingno")
	if err == nil {
		t.Fatal("expected error")
	}
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
	if netErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", netErr.StatusCode)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) should be true for 404")
	}
}

func TestServerErrorIsNotNotFound(t *testing.T) {
	srv := newFixtureServer(t)
	c := New(WithBaseURL(srv.URL))

	_, err := c.GetPokemon(context.Background(), "500")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("500 must not match ErrNotFound")
	}
	if !strings.Contains(netErr.Error(), "500") {
		t.Errorf("error should mention status: %v", netErr)
	}

	// Failures are not cached
	pokemon, _ := c.CacheLen()
	if pokemon != 0 {
		t.Errorf("failed fetch must not populate cache, got %d entries", pokemon)
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(WithBaseURL(url))
	_, err := c.GetRoster(context.Background(), 1, 151)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
	if netErr.Err == nil {
		t.Error("transport failure should carry underlying error")
	}
}

func TestClearCache(t *testing.T) {
	srv := newFixtureServer(t)
	c := New(WithBaseURL(srv.URL))
	ctx := context.Background()

	if _, err := c.GetPokemon(ctx, "1"); err != nil {
		t.Fatalf("GetPokemon: %v", err)
	}
	c.ClearCache()
	if _, err := c.GetPokemon(ctx, "1"); err != nil {
		t.Fatalf("GetPokemon after clear: %v", err)
	}
	if hits := srv.hits.Load(); hits != 2 {
		t.Errorf("expected refetch after ClearCache, got %d hits", hits)
	}
}
