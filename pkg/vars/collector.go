// Package vars statically enumerates every variable a configuration
// references. The editor shows this list so authors know which names the
// host must bind; nothing here looks at runtime values.
package vars

import (
	"sort"

	"github.com/roleplaykit/go-statuswin/pkg/config"
)

// Collect scans the document and returns the distinct non-empty variable
// names it references, sorted lexicographically. The scan is a pure function
// of the configuration: bindings play no role, and structure or ordering of
// the input never changes the result.
func Collect(doc *config.Document) []string {
	if doc == nil {
		return nil
	}

	set := make(map[string]struct{})
	add := func(name string) {
		if name != "" {
			set[name] = struct{}{}
		}
	}
	addConditions := func(conditions []config.UnlockCondition) {
		for _, cond := range conditions {
			add(cond.Variable)
		}
	}

	for _, ch := range doc.Characters {
		add(ch.LocationVariable)
		add(ch.RelationshipVariable)
		add(ch.InnerThoughtVariable)
		for _, stat := range ch.Stats {
			if stat.Type == config.StatTypeVariable {
				add(stat.Variable)
			}
		}
		for _, gauge := range ch.Gauges {
			add(gauge.Variable)
		}
		for _, img := range ch.Images.Conditional {
			add(img.ConditionVariable)
		}
		for _, unlock := range ch.ProfileUnlocks {
			addConditions(unlock.Conditions)
		}
	}

	for _, entry := range doc.Lore.Entries {
		addConditions(entry.Conditions)
	}

	for _, cat := range doc.Achievements {
		for _, ach := range cat.Achievements {
			addConditions(ach.Conditions)
		}
	}

	for _, mem := range doc.Memories {
		add(mem.Variable)
	}

	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
