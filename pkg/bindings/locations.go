package bindings

import "github.com/roleplaykit/go-statuswin/pkg/config"

// LocationIndex maps every location id and alias to its location so raw
// variable values can name a place either way.
//
// Duplicate keys are resolved last-write-wins: a later alias silently wins
// over an earlier id or alias with the same string. That matches the lookup
// table the exported runtime builds; config.Lint reports collisions for
// editors that want to know.
type LocationIndex struct {
	byKey map[string]config.Location
}

// NewLocationIndex builds the lookup table from the top-level locations.
func NewLocationIndex(locations []config.Location) *LocationIndex {
	idx := &LocationIndex{byKey: make(map[string]config.Location, len(locations)*2)}
	for _, loc := range locations {
		idx.byKey[loc.ID] = loc
		for _, alias := range loc.Aliases {
			if alias == "" {
				continue
			}
			idx.byKey[alias] = loc
		}
	}
	return idx
}

// Lookup resolves a raw key (id or alias) to its location.
func (idx *LocationIndex) Lookup(key string) (config.Location, bool) {
	if idx == nil || key == "" {
		return config.Location{}, false
	}
	loc, ok := idx.byKey[key]
	return loc, ok
}

// ResolveVariable resolves a location variable through the blank-default
// policy and then through the lookup table. Missing bindings and unknown
// keys both come back as not-found; callers render a placeholder.
func (idx *LocationIndex) ResolveVariable(r Resolver, b Bindings, variable string) (config.Location, bool) {
	return idx.Lookup(r.Resolve(b, variable))
}
