package pokeapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const (
	DefaultSpriteBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"
	DefaultCryBaseURL    = "https://raw.githubusercontent.com/PokeAPI/cries/main/cries/pokemon/latest"
)

// Assets derives static asset urls from a national dex id.
// Paths:
//
//	official:  {sprites}/other/official-artwork/{id}.png
//	pixel:     {sprites}/{id}.png
//	animated:  {sprites}/versions/generation-v/black-white/animated/{id}.gif
//	shiny:     {sprites}/other/official-artwork/shiny/{id}.png
//	cry:       {cries}/{id}.ogg
type Assets struct {
	SpriteBase string
	CryBase    string
}

// DefaultAssets points at the PokeAPI sprite and cry repositories.
var DefaultAssets = Assets{SpriteBase: DefaultSpriteBaseURL, CryBase: DefaultCryBaseURL}

func (a Assets) OfficialArtwork(id int) string {
	return fmt.Sprintf("%s/other/official-artwork/%d.png", a.spriteBase(), id)
}

func (a Assets) PixelSprite(id int) string {
	return fmt.Sprintf("%s/%d.png", a.spriteBase(), id)
}

func (a Assets) AnimatedSprite(id int) string {
	return fmt.Sprintf("%s/versions/generation-v/black-white/animated/%d.gif", a.spriteBase(), id)
}

func (a Assets) ShinyArtwork(id int) string {
	return fmt.Sprintf("%s/other/official-artwork/shiny/%d.png", a.spriteBase(), id)
}

func (a Assets) Cry(id int) string {
	base := strings.TrimRight(a.CryBase, "/")
	if base == "" {
		base = DefaultCryBaseURL
	}
	return fmt.Sprintf("%s/%d.ogg", base, id)
}

// SpriteChain is the display fallback order: animated, official artwork, pixel sprite.
func (a Assets) SpriteChain(id int) []string {
	return []string{a.AnimatedSprite(id), a.OfficialArtwork(id), a.PixelSprite(id)}
}

func (a Assets) spriteBase() string {
	base := strings.TrimRight(a.SpriteBase, "/")
	if base == "" {
		return DefaultSpriteBaseURL
	}
	return base
}

// WithAssets overrides the asset url templates.
func WithAssets(a Assets) Option {
	return func(c *Client) {
		c.assets = a
	}
}

// Assets returns the asset templates used by the client.
func (c *Client) Assets() Assets { return c.assets }

// ResolveSprite returns the first reachable artwork url for id.
// Normal artwork walks SpriteChain; shiny artwork has no fallback and
// fails with ErrShinyUnavailable so the caller can revert to normal display.
func (c *Client) ResolveSprite(ctx context.Context, id int, shiny bool) (string, error) {
	if shiny {
		u := c.assets.ShinyArtwork(id)
		if c.reachable(ctx, u) {
			return u, nil
		}
		return "", fmt.Errorf("resolve shiny sprite %d: %w", id, ErrShinyUnavailable)
	}

	for _, u := range c.assets.SpriteChain(id) {
		if c.reachable(ctx, u) {
			return u, nil
		}
	}
	return "", &NetworkError{URL: c.assets.PixelSprite(id), StatusCode: http.StatusNotFound}
}

func (c *Client) reachable(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
