// Package symbols holds the fixed registry of named symbol sets used by the
// symbolic and hybrid display modes. Each set is an ordered table of exactly
// ten glyphs indexed by cell value. By convention (not enforced), index 0 is
// an "empty/background" glyph in most sets.
package symbols

import (
	"errors"

	"go.uber.org/zap"
)

// SetSize is the number of glyphs every set carries, one per cell value.
const SetSize = 10

// ErrUnknownSet indicates an unregistered symbol set id.
var ErrUnknownSet = errors.New("symbols: unknown symbol set")

// DefaultSetID is the fallback set served when a requested id is unknown.
const DefaultSetID = "tech-set1"

// Set is a named, ordered table of glyphs. Index i denotes the same semantic
// category as cell value i in every set.
type Set struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Glyphs      [SetSize]string `json:"glyphs"`
}

// Info identifies a set for UI population.
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry is the immutable set table, populated once at construction.
// Construct explicitly and pass by reference; there is no ambient global.
type Registry struct {
	sets  map[string]Set
	order []string
	log   *zap.Logger
}

// NewRegistry builds a registry holding the built-in sets.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{sets: make(map[string]Set), log: logger}
	for _, s := range builtinSets {
		r.sets[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	return r
}

// Get returns the set for id, falling back to the default set with a logged
// warning when id is unknown. The renderer never sees a hard failure.
func (r *Registry) Get(id string) Set {
	if s, ok := r.sets[id]; ok {
		return s
	}
	r.log.Warn("unknown symbol set, using default",
		zap.String("requested", id),
		zap.String("fallback", DefaultSetID),
	)
	return r.sets[DefaultSetID]
}

// Lookup returns the set for id or ErrUnknownSet.
func (r *Registry) Lookup(id string) (Set, error) {
	s, ok := r.sets[id]
	if !ok {
		return Set{}, ErrUnknownSet
	}
	return s, nil
}

// List returns set infos in registration order.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.order))
	for _, id := range r.order {
		s := r.sets[id]
		out = append(out, Info{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	return out
}
