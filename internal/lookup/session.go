package lookup

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/localization"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
)

// SessionConfig holds what a Session needs for one traversal
type SessionConfig struct {
	Client      pokeapi.Client
	Locales     []string
	Observer    Observer
	Clock       clock.Clock
	TraversalID string
}

// Validate ensures the required dependencies are provided and fills defaults
func (c *SessionConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TraversalID == "" {
		vb.RequiredField("TraversalID")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if len(c.Locales) == 0 {
		c.Locales = localization.DefaultLocales
	}
	if c.Observer == nil {
		c.Observer = LogObserver{}
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return nil
}

// Session resolves display names for the duration of one request.
// Each resource is fetched at most once per session, whether the fetch
// succeeded or not. A Session is not safe for concurrent use.
type Session struct {
	client      pokeapi.Client
	locales     []string
	observer    Observer
	clock       clock.Clock
	traversalID string
	memo        map[string]string
}

// NewSession creates a Session for one traversal
func NewSession(cfg *SessionConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid session config")
	}

	return &Session{
		client:      cfg.Client,
		locales:     cfg.Locales,
		observer:    cfg.Observer,
		clock:       cfg.Clock,
		traversalID: cfg.TraversalID,
		memo:        make(map[string]string),
	}, nil
}

// TraversalID identifies the session in outcomes and logs
func (s *Session) TraversalID() string {
	return s.traversalID
}

// Locales are the preferred upstream locales, in order
func (s *Session) Locales() []string {
	return s.locales
}

// DisplayName fetches ref and resolves its localized name. Any failure,
// including an unresolvable ref, yields ref.Name.
func (s *Session) DisplayName(ctx context.Context, kind Kind, ref pokeapi.ResourceRef) string {
	key := memoKey(kind, ref)
	if value, ok := s.memo[key]; ok {
		return value
	}

	start := s.clock.Now()
	value, err := s.fetch(ctx, ref)
	outcome := Outcome{
		TraversalID: s.traversalID,
		Kind:        kind,
		ResourceID:  ref.ID,
		Name:        ref.Name,
		Value:       value,
		Err:         err,
		Duration:    s.clock.Since(start),
	}
	if err != nil {
		outcome.Value = ref.Name
		outcome.Fallback = true
	}

	s.memo[key] = outcome.Value
	s.observer.Observe(ctx, outcome)
	return outcome.Value
}

func (s *Session) fetch(ctx context.Context, ref pokeapi.ResourceRef) (string, error) {
	if !ref.Resolvable() {
		return "", errors.InvalidArgumentf("%s has no resource id", ref.Name)
	}

	resource, err := s.client.GetNamedResource(ctx, ref)
	if err != nil {
		return "", err
	}
	return localization.ResolveName(resource, s.locales), nil
}

func memoKey(kind Kind, ref pokeapi.ResourceRef) string {
	if ref.ID > 0 {
		return fmt.Sprintf("%s/%d", kind, ref.ID)
	}
	return fmt.Sprintf("%s/%s", kind, ref.Name)
}
