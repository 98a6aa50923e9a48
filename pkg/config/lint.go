package config

import "fmt"

// LintIssue describes a configuration smell that the renderers tolerate but
// editors probably want to surface.
type LintIssue struct {
	Field   string
	Message string
}

func (i LintIssue) String() string {
	return i.Field + ": " + i.Message
}

// Lint reports duplicate location ids and aliases that shadow each other in
// the location lookup table. Rendering keeps last-write-wins semantics either
// way; this exists so the editing surface can warn before a collision
// silently redirects a character pin.
func Lint(doc *Document) []LintIssue {
	if doc == nil {
		return nil
	}

	var issues []LintIssue
	seen := map[string]string{}

	note := func(key, owner string) {
		if prev, ok := seen[key]; ok {
			issues = append(issues, LintIssue{
				Field:   "locations",
				Message: fmt.Sprintf("key %q of %s shadows earlier definition from %s", key, owner, prev),
			})
			// Track the shadowing owner, matching lookup behavior.
		}
		seen[key] = owner
	}

	for _, loc := range doc.Locations {
		note(loc.ID, "location "+loc.ID)
		for _, alias := range loc.Aliases {
			if alias == "" {
				continue
			}
			note(alias, "alias of location "+loc.ID)
		}
	}

	charIDs := map[string]bool{}
	for _, ch := range doc.Characters {
		if charIDs[ch.ID] {
			issues = append(issues, LintIssue{
				Field:   "characters",
				Message: fmt.Sprintf("duplicate character id %q", ch.ID),
			})
		}
		charIDs[ch.ID] = true
	}

	return issues
}
