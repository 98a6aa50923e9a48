package scene

import "github.com/roleplaykit/go-statuswin/pkg/config"

// Tab identifies one of the five main views.
type Tab string

const (
	TabCharacter    Tab = "character"
	TabMap          Tab = "map"
	TabMemories     Tab = "memories"
	TabLore         Tab = "lore"
	TabAchievements Tab = "achievements"
)

// MapLevelKind distinguishes the main map from a location's sub map.
type MapLevelKind string

const (
	MapLevelMain MapLevelKind = "main"
	MapLevelSub  MapLevelKind = "sub"
)

// MapLevel is the map view's own navigation: the main map, or one level down
// inside a location that declares a sub map. There is no deeper nesting.
type MapLevel struct {
	Kind     MapLevelKind
	ParentID string
}

// State is the ephemeral per-session navigation state. It is owned by the
// interaction layer, never persisted, and reset on every document load.
type State struct {
	Tab         Tab
	CharacterID string
	Map         MapLevel
}

// NewState returns the deterministic initial state: character tab, first
// roster entry (or none), main map.
func NewState(doc *config.Document) State {
	st := State{
		Tab: TabCharacter,
		Map: MapLevel{Kind: MapLevelMain},
	}
	if doc != nil && len(doc.Characters) > 0 {
		st.CharacterID = doc.Characters[0].ID
	}
	return st
}

// Event is a discrete user interaction. Each event maps to a pure state
// transition in Apply; handlers never touch configuration or bindings.
type Event interface {
	isNavEvent()
}

// TabClicked selects a main tab.
type TabClicked struct {
	Tab Tab
}

// CharacterClicked selects a roster entry on the character tab.
type CharacterClicked struct {
	ID string
}

// PinClicked enters a location's sub map from the main map.
type PinClicked struct {
	LocationID string
}

// BackToMain leaves a sub map.
type BackToMain struct{}

func (TabClicked) isNavEvent()       {}
func (CharacterClicked) isNavEvent() {}
func (PinClicked) isNavEvent()       {}
func (BackToMain) isNavEvent()       {}

// Apply computes the next navigation state for an event. Invalid events (a
// disabled tab, an unknown character, a pin without a sub map, a back action
// while already on the main map) leave the state unchanged.
func Apply(doc *config.Document, st State, event Event) State {
	switch ev := event.(type) {
	case TabClicked:
		for _, tab := range Tabs(doc) {
			if tab == ev.Tab {
				st.Tab = ev.Tab
				break
			}
		}
		return st
	case CharacterClicked:
		if doc != nil {
			if _, ok := doc.CharacterByID(ev.ID); ok {
				st.CharacterID = ev.ID
			}
		}
		return st
	case PinClicked:
		if st.Map.Kind != MapLevelMain || doc == nil {
			return st
		}
		if loc, ok := doc.LocationByID(ev.LocationID); ok && loc.HasSubMap() {
			st.Map = MapLevel{Kind: MapLevelSub, ParentID: loc.ID}
		}
		return st
	case BackToMain:
		st.Map = MapLevel{Kind: MapLevelMain}
		return st
	default:
		return st
	}
}

// Tabs lists the enabled main tabs in display order. The character tab is
// always first; the rest follow their feature flags.
func Tabs(doc *config.Document) []Tab {
	tabs := []Tab{TabCharacter}
	if doc == nil {
		return tabs
	}
	if doc.FeatureFlags.ShowMap {
		tabs = append(tabs, TabMap)
	}
	if doc.FeatureFlags.ShowMemories {
		tabs = append(tabs, TabMemories)
	}
	if doc.FeatureFlags.ShowLore {
		tabs = append(tabs, TabLore)
	}
	if doc.FeatureFlags.ShowAchievements {
		tabs = append(tabs, TabAchievements)
	}
	return tabs
}

// TabLabel returns the configured label for a tab.
func TabLabel(doc *config.Document, tab Tab) string {
	labels := doc.UILabels.MainTabs
	switch tab {
	case TabCharacter:
		return labels.Character
	case TabMap:
		return labels.Map
	case TabMemories:
		return labels.Memories
	case TabLore:
		return labels.Lore
	case TabAchievements:
		return labels.Achievements
	default:
		return string(tab)
	}
}
