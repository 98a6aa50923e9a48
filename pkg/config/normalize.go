package config

import (
	"strings"

	"github.com/google/uuid"
)

// Normalize fills in the gaps an editor is allowed to leave: missing ids get
// generated, nil collections become empty, and the blank-value fallback gets
// a usable default. The input is not mutated; the returned document is a
// deep-enough copy for every slice the renderers iterate.
func Normalize(doc *Document) *Document {
	if doc == nil {
		return nil
	}

	out := *doc

	if out.StatSystem == "" {
		out.StatSystem = StatSystemBar
	}
	if out.Size.Width <= 0 {
		out.Size.Width = 1000
	}
	if out.Size.Height <= 0 {
		out.Size.Height = 1000
	}
	if out.GlobalSettings.BlankVariableValue == "" {
		out.GlobalSettings.BlankVariableValue = "???"
	}
	if out.UILabels.Character.HiddenUnlockTitle == "" {
		out.UILabels.Character.HiddenUnlockTitle = "???"
	}

	out.Locations = normalizeLocations(doc.Locations)
	out.Characters = normalizeCharacters(doc.Characters)
	out.Lore = normalizeLore(doc.Lore)
	out.Achievements = normalizeAchievements(doc.Achievements)
	out.Memories = normalizeMemories(doc.Memories)

	return &out
}

func normalizeLocations(in []Location) []Location {
	out := make([]Location, len(in))
	for i, loc := range in {
		loc.ID = ensureID(loc.ID)
		if loc.Aliases == nil {
			loc.Aliases = []string{}
		}
		subs := make([]SubLocation, len(loc.SubLocations))
		for j, sub := range loc.SubLocations {
			sub.ID = ensureID(sub.ID)
			subs[j] = sub
		}
		loc.SubLocations = subs
		out[i] = loc
	}
	return out
}

func normalizeCharacters(in []Character) []Character {
	out := make([]Character, len(in))
	for i, ch := range in {
		ch.ID = ensureID(ch.ID)
		if ch.Images.Conditional == nil {
			ch.Images.Conditional = []CharacterImage{}
		}
		unlocks := make([]ProfileUnlock, len(ch.ProfileUnlocks))
		for j, pu := range ch.ProfileUnlocks {
			pu.ID = ensureID(pu.ID)
			pu.Conditions = normalizeConditions(pu.Conditions)
			unlocks[j] = pu
		}
		ch.ProfileUnlocks = unlocks
		if ch.Stats == nil {
			ch.Stats = []Stat{}
		}
		if ch.Gauges == nil {
			ch.Gauges = []Gauge{}
		}
		out[i] = ch
	}
	return out
}

func normalizeLore(in Lore) Lore {
	out := in
	entries := make([]LoreEntry, len(in.Entries))
	for i, entry := range in.Entries {
		entry.ID = ensureID(entry.ID)
		entry.Conditions = normalizeConditions(entry.Conditions)
		entries[i] = entry
	}
	out.Entries = entries
	return out
}

func normalizeAchievements(in []AchievementCategory) []AchievementCategory {
	out := make([]AchievementCategory, len(in))
	for i, cat := range in {
		cat.ID = ensureID(cat.ID)
		if cat.CharacterID == "" {
			cat.CharacterID = CharacterIDCommon
		}
		achievements := make([]Achievement, len(cat.Achievements))
		for j, ach := range cat.Achievements {
			ach.ID = ensureID(ach.ID)
			ach.Conditions = normalizeConditions(ach.Conditions)
			ach.IconMarkup = sanitizeIconMarkup(ach.IconMarkup)
			achievements[j] = ach
		}
		cat.Achievements = achievements
		out[i] = cat
	}
	return out
}

func normalizeMemories(in []Memory) []Memory {
	out := make([]Memory, len(in))
	for i, mem := range in {
		mem.ID = ensureID(mem.ID)
		out[i] = mem
	}
	return out
}

func normalizeConditions(in []UnlockCondition) []UnlockCondition {
	out := make([]UnlockCondition, len(in))
	for i, cond := range in {
		cond.ID = ensureID(cond.ID)
		out[i] = cond
	}
	return out
}

func ensureID(id string) string {
	if strings.TrimSpace(id) != "" {
		return id
	}
	return uuid.NewString()
}
