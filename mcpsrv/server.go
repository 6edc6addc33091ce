package mcpsrv

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/pokedextui/catalog"
	"github.com/qyinm/pokedextui/logger"
	"github.com/qyinm/pokedextui/mcpsrv/dto"
	"github.com/qyinm/pokedextui/pokeapi"
	"github.com/qyinm/pokedextui/types"
)

type generationListArgs struct {
	Query  string `json:"query,omitempty" jsonschema:"Optional generation search query, e.g. IV"`
	Offset int    `json:"offset,omitempty" jsonschema:"Optional pagination offset"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Optional page size limit"`
}

type rosterGetArgs struct {
	Generation int    `json:"generation" jsonschema:"Generation number 1-9"`
	Query      string `json:"query,omitempty" jsonschema:"Optional name or dex number filter"`
	Page       int    `json:"page,omitempty" jsonschema:"Page number starting at 1"`
}

type pokemonGetDetailArgs struct {
	IDOrName string `json:"id_or_name" jsonschema:"National dex number or pokemon name"`
}

type evolutionChainGetArgs struct {
	IDOrName string `json:"id_or_name" jsonschema:"National dex number or pokemon name"`
}

type generationListOutput struct {
	Query      string           `json:"query"`
	Offset     int              `json:"offset"`
	Limit      int              `json:"limit"`
	NextOffset int              `json:"next_offset"`
	HasMore    bool             `json:"has_more"`
	Total      int              `json:"total"`
	Items      []dto.Generation `json:"items"`
}

type rosterGetOutput struct {
	Generation string            `json:"generation"`
	Query      string            `json:"query"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	HasPrev    bool              `json:"has_prev"`
	HasNext    bool              `json:"has_next"`
	Total      int               `json:"total"`
	Items      []dto.RosterEntry `json:"items"`
}

type pokemonGetDetailOutput struct {
	Item dto.PokemonDetail `json:"item"`
}

type evolutionChainGetOutput struct {
	ID     int                  `json:"id"`
	Name   string               `json:"name"`
	Stages []dto.EvolutionStage `json:"stages"`
}

type cacheClearOutput struct {
	Status string `json:"status"`
}

type ServerOptions struct {
	EnableAdmin bool
	APIKey      string
}

type cacheClearSource interface {
	ClearCache()
}

type assetSource interface {
	Assets() pokeapi.Assets
}

func NewServer(source types.PokemonSource, version string, opts *ServerOptions) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}
	if opts == nil {
		opts = &ServerOptions{}
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "pokedex", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generation_list",
		Description: "List the pokemon generations and their national dex ranges.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args generationListArgs) (*mcp.CallToolResult, generationListOutput, error) {
		return generationListHandler(ctx, req, args)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "roster_get",
		Description: "Get one page (20 entries) of a generation roster, optionally filtered by name or number.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args rosterGetArgs) (*mcp.CallToolResult, rosterGetOutput, error) {
		return rosterGetHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pokemon_get_detail",
		Description: "Get pokemon details with rarity, base stat total, evolution stage, moves and asset urls.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args pokemonGetDetailArgs) (*mcp.CallToolResult, pokemonGetDetailOutput, error) {
		return pokemonGetDetailHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "evolution_chain_get",
		Description: "Get the evolution line of a pokemon, first branch only.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args evolutionChainGetArgs) (*mcp.CallToolResult, evolutionChainGetOutput, error) {
		return evolutionChainGetHandler(ctx, req, args, source)
	})

	if opts.EnableAdmin && strings.TrimSpace(opts.APIKey) != "" {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "cache_clear",
			Description: "Clear the PokeAPI response cache (admin).",
		}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, cacheClearOutput, error) {
			return cacheClearHandler(ctx, req, source)
		})
	}

	return server
}

func generationListHandler(_ context.Context, _ *mcp.CallToolRequest, args generationListArgs) (*mcp.CallToolResult, generationListOutput, error) {
	query := strings.TrimSpace(strings.ToLower(args.Query))
	filtered := make([]types.Generation, 0, len(types.AllGenerations))
	for _, g := range types.AllGenerations {
		if query == "" || strings.Contains(strings.ToLower(g.String()), query) || strconv.Itoa(int(g)) == query {
			filtered = append(filtered, g)
		}
	}

	limit := args.Limit
	if limit <= 0 || limit > len(types.AllGenerations) {
		limit = len(types.AllGenerations)
	}
	offset := min(max(args.Offset, 0), len(filtered))
	end := min(offset+limit, len(filtered))

	nextOffset := end
	hasMore := end < len(filtered)
	if !hasMore {
		nextOffset = -1
	}

	return nil, generationListOutput{
		Query:      args.Query,
		Offset:     offset,
		Limit:      limit,
		NextOffset: nextOffset,
		HasMore:    hasMore,
		Total:      len(filtered),
		Items:      dto.FromGenerations(filtered[offset:end]),
	}, nil
}

func rosterGetHandler(ctx context.Context, _ *mcp.CallToolRequest, args rosterGetArgs, source types.PokemonSource) (*mcp.CallToolResult, rosterGetOutput, error) {
	gen := types.Generation(args.Generation)
	if !gen.Valid() {
		return errorToolResult(fmt.Sprintf("invalid generation %d; expected 1-9", args.Generation)), rosterGetOutput{}, nil
	}
	page := args.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return errorToolResult("page must be 1 or greater"), rosterGetOutput{}, nil
	}

	start, end := gen.Range()
	roster, err := source.GetRoster(ctx, start, end)
	if err != nil {
		logger.Warn("mcp roster_get %s: %v", gen, err)
		return errorToolResult("fetch roster failed"), rosterGetOutput{}, nil
	}

	filtered := catalog.Filter(roster, args.Query)
	p := catalog.Paginate(filtered, page-1, catalog.PageSize)

	return nil, rosterGetOutput{
		Generation: gen.String(),
		Query:      args.Query,
		Page:       p.Number + 1,
		TotalPages: p.TotalPages,
		HasPrev:    p.HasPrev(),
		HasNext:    p.HasNext(),
		Total:      len(filtered),
		Items:      dto.FromRosterEntries(p.Items),
	}, nil
}

func pokemonGetDetailHandler(ctx context.Context, _ *mcp.CallToolRequest, args pokemonGetDetailArgs, source types.PokemonSource) (*mcp.CallToolResult, pokemonGetDetailOutput, error) {
	ref, err := normalizeRef(args.IDOrName)
	if err != nil {
		return errorToolResult(err.Error()), pokemonGetDetailOutput{}, nil
	}

	p, s, err := fetchPokemon(ctx, source, ref)
	if err != nil {
		return fetchErrorResult(ref, err), pokemonGetDetailOutput{}, nil
	}

	return nil, pokemonGetDetailOutput{Item: dto.FromPokemon(p, s, assetsOf(source))}, nil
}

func evolutionChainGetHandler(ctx context.Context, _ *mcp.CallToolRequest, args evolutionChainGetArgs, source types.PokemonSource) (*mcp.CallToolResult, evolutionChainGetOutput, error) {
	ref, err := normalizeRef(args.IDOrName)
	if err != nil {
		return errorToolResult(err.Error()), evolutionChainGetOutput{}, nil
	}

	p, s, err := fetchPokemon(ctx, source, ref)
	if err != nil {
		return fetchErrorResult(ref, err), evolutionChainGetOutput{}, nil
	}
	if s.EvolutionChain == nil || s.EvolutionChain.URL == "" {
		return errorToolResult("species has no evolution chain"), evolutionChainGetOutput{}, nil
	}

	chain, err := source.GetEvolutionChain(ctx, s.EvolutionChain.URL)
	if err != nil {
		logger.Warn("mcp evolution_chain_get %s: %v", ref, err)
		return errorToolResult("fetch evolution chain failed"), evolutionChainGetOutput{}, nil
	}

	return nil, evolutionChainGetOutput{
		ID:     chain.ID,
		Name:   p.Name,
		Stages: dto.FromEvolution(chain, p.ID),
	}, nil
}

func cacheClearHandler(_ context.Context, _ *mcp.CallToolRequest, source types.PokemonSource) (*mcp.CallToolResult, cacheClearOutput, error) {
	clearable, ok := source.(cacheClearSource)
	if !ok {
		return errorToolResult("cache clear is not supported by this source"), cacheClearOutput{}, nil
	}
	clearable.ClearCache()
	logger.Info("mcp: cache cleared by admin tool")
	return nil, cacheClearOutput{Status: "ok"}, nil
}

// fetchPokemon resolves ref to a pokemon and its species
func fetchPokemon(ctx context.Context, source types.PokemonSource, ref string) (types.Pokemon, types.Species, error) {
	p, err := source.GetPokemon(ctx, ref)
	if err != nil {
		return types.Pokemon{}, types.Species{}, err
	}
	s, err := source.GetSpecies(ctx, p.ID)
	if err != nil {
		return types.Pokemon{}, types.Species{}, err
	}
	return p, s, nil
}

// normalizeRef turns "#025", "25", "Mr. Mime" into "25", "25", "mr-mime"
func normalizeRef(raw string) (string, error) {
	v := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if v == "" {
		return "", errors.New("id_or_name is required")
	}
	if id, err := strconv.Atoi(v); err == nil {
		if id <= 0 {
			return "", fmt.Errorf("invalid id %q", raw)
		}
		return strconv.Itoa(id), nil
	}
	name := slug.Make(v)
	if name == "" {
		return "", fmt.Errorf("invalid name %q", raw)
	}
	return name, nil
}

func fetchErrorResult(ref string, err error) *mcp.CallToolResult {
	if errors.Is(err, pokeapi.ErrNotFound) {
		return errorToolResult(fmt.Sprintf("pokemon %q not found", ref))
	}
	logger.Warn("mcp fetch %s: %v", ref, err)
	return errorToolResult("fetch pokemon failed")
}

func assetsOf(source types.PokemonSource) pokeapi.Assets {
	if a, ok := source.(assetSource); ok {
		return a.Assets()
	}
	return pokeapi.DefaultAssets
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
