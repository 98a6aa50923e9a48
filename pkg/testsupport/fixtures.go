// Package testsupport provides the shared fixture document and binding sets
// the package tests render against. The sample mirrors a small academy
// role-play setup: two characters, one sub-mapped location, gated lore and
// achievements, and a pair of memory slots.
package testsupport

import (
	"encoding/json"
	"testing"

	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/config"
)

// SampleDocument returns a fully populated configuration. Callers own the
// copy and may mutate it freely.
func SampleDocument() *config.Document {
	return &config.Document{
		Font: config.FontConfig{
			ImportURL:  "https://fonts.googleapis.com/css2?family=Noto+Sans:wght@400;700&display=swap",
			FontFamily: "'Noto Sans', sans-serif",
			FontSize:   16,
		},
		Size: config.Size{Width: 1000, Height: 1000},
		Locations: []config.Location{
			{
				ID: "academy", Name: "Arcane Academy", X: 30, Y: 40,
				Aliases:        []string{"school", "the academy"},
				UseSubMap:      true,
				SubMapImageURL: "https://img.example.com/academy-floor.png",
				SubLocations: []config.SubLocation{
					{ID: "library", Name: "Library", X: 25, Y: 60},
					{ID: "dorm", Name: "Dormitory", X: 70, Y: 30},
				},
			},
			{ID: "market", Name: "Old Market", X: 65, Y: 70},
		},
		Characters: []config.Character{
			{
				ID: "aria", Prefix: "Apprentice", Name: "Aria", Origin: "Northern Reach",
				Profile: "A prodigy with more curiosity than caution.",
				Images: config.CharacterImages{
					Default: "https://img.example.com/aria.png",
					Conditional: []config.CharacterImage{
						{ID: "aria-angry", ConditionVariable: "aria_mood", ConditionValue: "angry", URL: "https://img.example.com/aria-angry.png"},
					},
				},
				ProfileUnlocks: []config.ProfileUnlock{
					{
						ID:    "aria-secret",
						Title: "True Lineage", Content: "Heir to the sealed tower.",
						Hidden: true,
						Conditions: []config.UnlockCondition{
							{ID: "c1", Variable: "aria_trust", Operator: config.OpGreaterOrEqual, Value: "80"},
						},
					},
				},
				Stats: []config.Stat{
					{ID: "str", Name: "Strength", Type: config.StatTypeVariable, Variable: "aria_str", Max: 100, Color: "#F87171"},
					{ID: "int", Name: "Intellect", Type: config.StatTypeVariable, Variable: "aria_int", Max: 100, Color: "#60A5FA"},
					{ID: "agi", Name: "Agility", Type: config.StatTypeFixed, Value: 40, Max: 100, Color: "#34D399"},
				},
				Gauges: []config.Gauge{
					{ID: "trust", Name: "Trust", Variable: "aria_trust", Max: 100, Color: "#FBBF24"},
				},
				LocationVariable:     "aria_location",
				RelationshipVariable: "aria_relationship",
				InnerThoughtVariable: "aria_thought",
			},
			{
				ID: "kane", Name: "Kane", Origin: "The Market Quarter",
				Profile: "Keeps a ledger of every favor owed.",
				Images:  config.CharacterImages{Default: "https://img.example.com/kane.png"},
				Stats: []config.Stat{
					{ID: "str", Name: "Strength", Type: config.StatTypeVariable, Variable: "kane_str", Max: 100, Color: "#F87171"},
				},
				LocationVariable:     "kane_location",
				RelationshipVariable: "kane_relationship",
				InnerThoughtVariable: "kane_thought",
			},
		},
		Lore: config.Lore{
			Core: config.LoreCore{ID: "core", Title: "The World", Content: "Magic leaks from the old seals."},
			Entries: []config.LoreEntry{
				{
					ID: "sealed-tower", Title: "The Sealed Tower", Content: "Nobody has entered in a century.",
					Conditions: []config.UnlockCondition{
						{ID: "l1", Variable: "chapter", Operator: config.OpGreaterOrEqual, Value: "2"},
					},
				},
				{
					ID: "hidden-pact", Title: "The Pact", Content: "The founders bargained with something below.",
					Hidden: true,
					Conditions: []config.UnlockCondition{
						{ID: "l2", Variable: "pact_known", Operator: config.OpEqual, Value: "true"},
					},
				},
			},
		},
		Achievements: []config.AchievementCategory{
			{
				ID: "cat-common", Name: "Story", CharacterID: config.CharacterIDCommon,
				Achievements: []config.Achievement{
					{
						ID: "first-day", Title: "First Day", Description: "Arrive at the academy.",
						Conditions: []config.UnlockCondition{
							{ID: "a1", Variable: "chapter", Operator: config.OpGreaterOrEqual, Value: "1"},
						},
					},
					{
						ID: "secret-end", Title: "Beneath the Seal", Description: "Learn what waits below.",
						Hidden: true, Hint: "Dig deeper.",
						Conditions: []config.UnlockCondition{
							{ID: "a2", Variable: "pact_known", Operator: config.OpEqual, Value: "true"},
						},
					},
				},
			},
		},
		StatSystem:       config.StatSystemBar,
		StatSystemConfig: config.StatSystemConfig{Radar: config.RadarConfig{Color: "#FBBF24"}},
		Map:              config.MapConfig{BackgroundImageURL: "https://img.example.com/world.png"},
		Memories: []config.Memory{
			{ID: "mem-1", Variable: "memory_1"},
			{ID: "mem-2", Variable: "memory_2"},
		},
		UILabels: config.UILabels{
			MainWindowTitle: "STATUS",
			MainTabs: config.TabLabels{
				Character: "Characters", Map: "Map", Memories: "Memories",
				Lore: "Lore", Achievements: "Achievements",
			},
			Character: config.CharacterLabels{
				RelationshipTitle:     "Relationship",
				StatsTitle:            "Stats",
				ProfileTitle:          "Profile",
				InnerThoughtTitle:     "Inner Thought",
				UnlocksTitle:          "Known Secrets",
				CurrentLocationPrefix: "Currently at: ",
				HiddenUnlockTitle:     "???",
			},
			Memories:     config.MemoriesLabels{Title: "Memories"},
			Lore:         config.LoreLabels{AdditionalInfoTitle: "Additional Records"},
			Map:          config.MapLabels{MainMapName: "World", BackToMainMap: "Back to World Map"},
			Achievements: config.AchievementsLabels{HintPrefix: "Hint: ", LockedStatus: "Locked"},
		},
		GlobalSettings: config.GlobalSettings{UseDefaultForBlank: true, BlankVariableValue: "???"},
		FeatureFlags: config.FeatureFlags{
			ShowMap: true, ShowMemories: true, ShowLore: true, ShowAchievements: true,
		},
	}
}

// SampleBindings returns a binding set that exercises the sample document:
// Aria placed at the academy via an alias, Kane inside its library sub map,
// chapter two content unlocked, one memory filled and one left blank.
func SampleBindings() bindings.Bindings {
	return bindings.Bindings{
		"aria_location":     "school",
		"aria_relationship": "Cautious ally",
		"aria_thought":      "Why does the tower hum at night?",
		"aria_str":          35,
		"aria_int":          88,
		"aria_trust":        42,
		"aria_mood":         "calm",
		"kane_location":     "library",
		"kane_relationship": "Business partner",
		"kane_thought":      "Everything has a price.",
		"kane_str":          60,
		"chapter":           2,
		"memory_1":          "Met Aria at the gate.",
	}
}

// SampleJSON serializes the sample document for loader round trips.
func SampleJSON(t *testing.T) []byte {
	t.Helper()

	data, err := json.Marshal(SampleDocument())
	if err != nil {
		t.Fatalf("marshal sample document: %v", err)
	}
	return data
}
