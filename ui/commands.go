package ui

import (
	"context"
	"strconv"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/pokedextui/catalog"
	"github.com/qyinm/pokedextui/pokeapi"
	"github.com/qyinm/pokedextui/types"
	"github.com/qyinm/pokedextui/view"
	"golang.org/x/sync/errgroup"
)

// Message types for async operations

type rosterMsg struct {
	requestID  int
	generation types.Generation
	entries    []types.CatalogEntry
	err        error
}

type selectionMsg struct {
	token   catalog.Token
	id      int
	pokemon types.Pokemon
	species types.Species
	err     error
}

type evolutionMsg struct {
	token catalog.Token
	chain types.EvolutionChain
	err   error
}

type spriteMsg struct {
	token catalog.Token
	id    int
	shiny bool
	url   string
	err   error
}

type clipboardMsg struct {
	err error
}

// fetchRoster returns a tea.Cmd that loads the roster of gen asynchronously
func fetchRoster(ctx context.Context, source types.PokemonSource, gen types.Generation, requestID int) tea.Cmd {
	return func() tea.Msg {
		start, end := gen.Range()
		entries, err := source.GetRoster(ctx, start, end)
		return rosterMsg{requestID: requestID, generation: gen, entries: entries, err: err}
	}
}

// fetchSelection loads pokemon and species concurrently. The message is
// only successful when both fetches are.
func fetchSelection(ctx context.Context, source types.PokemonSource, id int, token catalog.Token) tea.Cmd {
	return func() tea.Msg {
		msg := selectionMsg{token: token, id: id}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			p, err := source.GetPokemon(gctx, strconv.Itoa(id))
			msg.pokemon = p
			return err
		})
		g.Go(func() error {
			s, err := source.GetSpecies(gctx, id)
			msg.species = s
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

// fetchEvolution loads the chain referenced by a species
func fetchEvolution(ctx context.Context, source types.PokemonSource, url string, token catalog.Token) tea.Cmd {
	return func() tea.Msg {
		chain, err := source.GetEvolutionChain(ctx, url)
		return evolutionMsg{token: token, chain: chain, err: err}
	}
}

type spriteSource interface {
	ResolveSprite(ctx context.Context, id int, shiny bool) (string, error)
}

type assetSource interface {
	Assets() pokeapi.Assets
}

// resolveSprite walks the sprite fallback chain when the source supports it
func resolveSprite(ctx context.Context, source types.PokemonSource, id int, shiny bool, token catalog.Token) tea.Cmd {
	return func() tea.Msg {
		resolver, ok := source.(spriteSource)
		if !ok {
			url := assetsOf(source).OfficialArtwork(id)
			if shiny {
				url = assetsOf(source).ShinyArtwork(id)
			}
			return spriteMsg{token: token, id: id, shiny: shiny, url: url}
		}
		url, err := resolver.ResolveSprite(ctx, id, shiny)
		return spriteMsg{token: token, id: id, shiny: shiny, url: url, err: err}
	}
}

type speciesCache interface {
	CachedSpecies(id int) (types.Species, bool)
}

// speciesLookup exposes the source's species cache to the grid, or nil
func speciesLookup(source types.PokemonSource) view.SpeciesLookup {
	if c, ok := source.(speciesCache); ok {
		return c.CachedSpecies
	}
	return nil
}

func assetsOf(source types.PokemonSource) pokeapi.Assets {
	if a, ok := source.(assetSource); ok {
		return a.Assets()
	}
	return pokeapi.DefaultAssets
}

// copyToClipboard writes text to the system clipboard
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(text)}
	}
}
