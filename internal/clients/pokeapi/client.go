// Package pokeapi is the client for the public PokeAPI REST service
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 root
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	artworkURLPattern = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png"
)

// Client defines the read-only operations against PokeAPI.
// Every method fails with *errors.TransportError when the request does.
type Client interface {
	// ListEntries fetches one page of the entry listing
	ListEntries(ctx context.Context, limit, offset int) (*EntryPage, error)

	// GetEntry fetches /pokemon/{id}
	GetEntry(ctx context.Context, id int) (*Entry, error)

	// GetSpecies fetches /pokemon-species/{id}
	GetSpecies(ctx context.Context, id int) (*Species, error)

	// GetEvolutionChain fetches /evolution-chain/{id}
	GetEvolutionChain(ctx context.Context, id int) (*EvolutionChain, error)

	// GetNamedResource fetches any resource that carries a names array
	GetNamedResource(ctx context.Context, ref ResourceRef) (*NamedResource, error)
}

// Config contains configuration options for the client.
type Config struct {
	// BaseURL for PokeAPI (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPClient performs the requests (optional, defaults to http.DefaultClient).
	// Timeouts, if any, belong to it.
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.InvalidArgumentf("base url %q must be an absolute http(s) url", cfg.BaseURL)
	}
	return nil
}

type client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New creates a new PokeAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse base url")
	}
	// relative resource paths resolve beneath the base only with a trailing slash
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	return &client{
		baseURL:    baseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}

// ImageURL returns the official artwork for an entry
func ImageURL(id int) string {
	return fmt.Sprintf(artworkURLPattern, id)
}

func (c *client) ListEntries(ctx context.Context, limit, offset int) (*EntryPage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var page EntryPage
	if err := c.fetchJSON(ctx, "pokemon/", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *client) GetEntry(ctx context.Context, id int) (*Entry, error) {
	var entry Entry
	if err := c.fetchJSON(ctx, fmt.Sprintf("pokemon/%d/", id), nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *client) GetSpecies(ctx context.Context, id int) (*Species, error) {
	var species Species
	if err := c.fetchJSON(ctx, fmt.Sprintf("pokemon-species/%d/", id), nil, &species); err != nil {
		return nil, err
	}
	return &species, nil
}

func (c *client) GetEvolutionChain(ctx context.Context, id int) (*EvolutionChain, error) {
	var chain EvolutionChain
	if err := c.fetchJSON(ctx, fmt.Sprintf("evolution-chain/%d/", id), nil, &chain); err != nil {
		return nil, err
	}
	return &chain, nil
}

func (c *client) GetNamedResource(ctx context.Context, ref ResourceRef) (*NamedResource, error) {
	if !ref.Resolvable() {
		return nil, errors.InvalidArgumentf("resource %q has no fetchable location", ref.Name)
	}

	var resource NamedResource
	if err := c.fetchJSON(ctx, ref.Path(), nil, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

// fetchJSON GETs path relative to the base url and decodes the body into out.
// There are no retries; a bad status, a network failure and a bad body all
// come back as *errors.TransportError.
func (c *client) fetchJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: path, RawQuery: query.Encode()}).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.WrapTransport(endpoint, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("Calling PokeAPI", "url", endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapTransport(endpoint, 0, err)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // nothing useful to do on close failure
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body) // nolint:errcheck // draining for connection reuse
		return errors.NewTransportError(endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapTransport(endpoint, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
