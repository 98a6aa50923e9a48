package bindings

import (
	"unicode/utf16"

	"github.com/roleplaykit/go-statuswin/pkg/config"
	"github.com/roleplaykit/go-statuswin/pkg/vars"
)

// Preview builds a deterministic stand-in for live host bindings so the
// editor preview renders through the exact same pipeline as an exported
// document. The simulation rules:
//
//   - every referenced variable binds to a "[name]" placeholder,
//   - stat and gauge variables bind to 50 so bars and charts have shape,
//   - each character's location variable binds to a location id picked by a
//     stable hash of the variable name; a character without one gets the
//     same hashed placement (keyed by its id) under PlacementVariable.
//
// The placement is a simulation with no claim about where live bindings will
// put anyone; it is stable across reloads and independent of roster order.
func Preview(doc *config.Document) Bindings {
	if doc == nil {
		return Bindings{}
	}

	b := make(Bindings)
	for _, name := range vars.Collect(doc) {
		b[name] = "[" + name + "]"
	}

	for _, ch := range doc.Characters {
		for _, stat := range ch.Stats {
			if stat.Type == config.StatTypeVariable && stat.Variable != "" {
				b[stat.Variable] = 50
			}
		}
		for _, gauge := range ch.Gauges {
			if gauge.Variable != "" {
				b[gauge.Variable] = 50
			}
		}
		if len(doc.Locations) > 0 {
			key := ch.LocationVariable
			if key == "" {
				key = ch.ID
			}
			pick := doc.Locations[previewHash(key)%uint32(len(doc.Locations))]
			switch {
			case ch.LocationVariable != "":
				b[ch.LocationVariable] = pick.ID
			case ch.ID != "":
				b[PlacementVariable(ch.ID)] = pick.ID
			}
		}
	}

	return b
}

// PlacementVariable names the synthetic binding that carries the map
// placement of a character whose location variable is blank. Only Preview
// sets it; live hosts leave it absent, so such characters stay off the map
// outside the simulated preview.
func PlacementVariable(characterID string) string {
	return "character." + characterID + ".location"
}

// previewHash is a 32-bit string hash over UTF-16 code units, kept identical
// to the editor's original placement hash so existing previews don't move.
func previewHash(s string) uint32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(unit)
	}
	if h < 0 {
		// abs of math.MinInt32 stays negative; flipping the sign bit keeps
		// the modulo well defined for every input.
		if h == -h {
			return uint32(h)
		}
		h = -h
	}
	return uint32(h)
}
