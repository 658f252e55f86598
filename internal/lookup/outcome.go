// Package lookup resolves display names for secondary resources and reports
// how each resolution went. A failed lookup never fails the caller: the
// canonical name is used and the outcome says so.
package lookup

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Kind identifies what sort of resource a lookup resolved
type Kind string

const (
	KindSpecies Kind = "species"
	KindItem    Kind = "item"
	KindAbility Kind = "ability"
	KindHabitat Kind = "habitat"
)

// Outcome records one secondary lookup
type Outcome struct {
	TraversalID string
	Kind        Kind
	ResourceID  int
	Name        string // canonical
	Value       string // what was displayed
	Fallback    bool
	Err         error
	Duration    time.Duration
}

// Observer receives lookup outcomes as they happen
type Observer interface {
	Observe(ctx context.Context, outcome Outcome)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(ctx context.Context, outcome Outcome)

// Observe calls f
func (f ObserverFunc) Observe(ctx context.Context, outcome Outcome) {
	f(ctx, outcome)
}

// LogObserver writes outcomes to the default slog logger.
// Fallbacks are warnings; successful lookups are debug noise.
type LogObserver struct{}

// Observe logs the outcome
func (LogObserver) Observe(ctx context.Context, o Outcome) {
	if o.Fallback {
		slog.WarnContext(ctx, "Lookup fell back to canonical name",
			"traversal_id", o.TraversalID,
			"kind", o.Kind,
			"resource_id", o.ResourceID,
			"name", o.Name,
			"error", o.Err,
			"duration", o.Duration)
		return
	}

	slog.DebugContext(ctx, "Lookup resolved",
		"traversal_id", o.TraversalID,
		"kind", o.Kind,
		"resource_id", o.ResourceID,
		"value", o.Value,
		"duration", o.Duration)
}

// Recorder keeps every outcome it observes. Safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	outcomes []Outcome
}

// Observe appends the outcome
func (r *Recorder) Observe(_ context.Context, outcome Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

// Outcomes returns a copy of everything observed so far, in order
func (r *Recorder) Outcomes() []Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Outcome, len(r.outcomes))
	copy(out, r.outcomes)
	return out
}

// Fallbacks returns only the outcomes that used the canonical name
func (r *Recorder) Fallbacks() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes() {
		if o.Fallback {
			out = append(out, o)
		}
	}
	return out
}

type tee []Observer

func (t tee) Observe(ctx context.Context, outcome Outcome) {
	for _, o := range t {
		o.Observe(ctx, outcome)
	}
}

// Tee fans each outcome out to every non-nil observer
func Tee(observers ...Observer) Observer {
	t := make(tee, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			t = append(t, o)
		}
	}
	return t
}
