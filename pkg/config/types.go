package config

// Document is the full status-window configuration. It is produced by an
// external editor, consumed read-only by every package in this module, and
// embedded verbatim into exported documents. Field names follow the wire
// format expected by the exported runtime, so json tags are authoritative.
type Document struct {
	Font             FontConfig            `json:"font" yaml:"font"`
	Locations        []Location            `json:"locations" yaml:"locations"`
	Characters       []Character           `json:"characters" yaml:"characters"`
	Lore             Lore                  `json:"lore" yaml:"lore"`
	Achievements     []AchievementCategory `json:"achievements" yaml:"achievements"`
	StatSystem       StatSystem            `json:"characterStatSystem" yaml:"characterStatSystem"`
	StatSystemConfig StatSystemConfig      `json:"characterStatSystemConfig" yaml:"characterStatSystemConfig"`
	Size             Size                  `json:"size" yaml:"size"`
	Map              MapConfig             `json:"map" yaml:"map"`
	Memories         []Memory              `json:"memories" yaml:"memories"`
	UILabels         UILabels              `json:"uiLabels" yaml:"uiLabels"`
	GlobalSettings   GlobalSettings        `json:"globalSettings" yaml:"globalSettings"`
	FeatureFlags     FeatureFlags          `json:"featureFlags" yaml:"featureFlags"`
}

// FontConfig controls typography for the rendered window.
type FontConfig struct {
	ImportURL  string  `json:"importUrl" yaml:"importUrl"`
	FontFamily string  `json:"fontFamily" yaml:"fontFamily"`
	FontSize   float64 `json:"fontSize" yaml:"fontSize"`
}

// Size fixes the window dimensions in pixels. Width also determines the
// global scale factor (width/1000) applied to every rendered dimension.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Scale returns the responsive scale factor derived from the window width.
func (s Size) Scale() float64 {
	return s.Width / 1000
}

// Location is a named point on the main map. Coordinates are percentages in
// the 0-100 range. Aliases let raw variable values match the location even
// when they differ from its id.
type Location struct {
	ID             string        `json:"id" yaml:"id"`
	Name           string        `json:"name" yaml:"name"`
	X              float64       `json:"x" yaml:"x"`
	Y              float64       `json:"y" yaml:"y"`
	Aliases        []string      `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	UseSubMap      bool          `json:"useSubMap,omitempty" yaml:"useSubMap,omitempty"`
	SubMapImageURL string        `json:"subMapImageUrl,omitempty" yaml:"subMapImageUrl,omitempty"`
	SubLocations   []SubLocation `json:"subLocations,omitempty" yaml:"subLocations,omitempty"`
}

// HasSubMap reports whether clicking this location's pin may enter a sub map.
func (l Location) HasSubMap() bool {
	return l.UseSubMap && l.SubMapImageURL != ""
}

// SubLocation is a point scoped within a parent location's sub map.
type SubLocation struct {
	ID   string  `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
}

// CharacterImage is a conditional portrait: when the bound value of
// ConditionVariable equals ConditionValue the URL replaces the default image.
// Entries are tested in order and the first match wins.
type CharacterImage struct {
	ID                string `json:"id" yaml:"id"`
	ConditionVariable string `json:"conditionVariable" yaml:"conditionVariable"`
	ConditionValue    string `json:"conditionValue" yaml:"conditionValue"`
	URL               string `json:"url" yaml:"url"`
}

// CharacterImages groups the default portrait with its conditional variants.
type CharacterImages struct {
	Default     string           `json:"default" yaml:"default"`
	Conditional []CharacterImage `json:"conditional" yaml:"conditional"`
}

// Operator enumerates the comparison operators accepted by unlock
// conditions. Anything outside this set evaluates to false.
type Operator string

const (
	OpEqual          Operator = "=="
	OpNotEqual       Operator = "!="
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
	OpGreater        Operator = ">"
	OpLess           Operator = "<"
)

// UnlockCondition is one atomic predicate over the variable bindings.
type UnlockCondition struct {
	ID       string   `json:"id" yaml:"id"`
	Variable string   `json:"variable" yaml:"variable"`
	Operator Operator `json:"operator" yaml:"operator"`
	Value    string   `json:"value" yaml:"value"`
}

// ProfileUnlock is a character detail revealed once all of its conditions
// hold. While locked, LockedTitle/LockedContent (or a generic secret label
// when Hidden) are shown instead.
type ProfileUnlock struct {
	ID            string            `json:"id" yaml:"id"`
	Conditions    []UnlockCondition `json:"conditions" yaml:"conditions"`
	Title         string            `json:"title" yaml:"title"`
	Content       string            `json:"content" yaml:"content"`
	Hidden        bool              `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	LockedTitle   string            `json:"lockedTitle,omitempty" yaml:"lockedTitle,omitempty"`
	LockedContent string            `json:"lockedContent,omitempty" yaml:"lockedContent,omitempty"`
}

// StatType selects where a stat's displayed value comes from.
type StatType string

const (
	StatTypeVariable StatType = "variable"
	StatTypeFixed    StatType = "fixed"
)

// Stat is a display metric on the character view.
type Stat struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Type     StatType `json:"type" yaml:"type"`
	Variable string   `json:"variable,omitempty" yaml:"variable,omitempty"`
	Value    float64  `json:"value,omitempty" yaml:"value,omitempty"`
	Max      float64  `json:"max" yaml:"max"`
	Color    string   `json:"color" yaml:"color"`
}

// Gauge is a variable-backed progress bar shown in the relationship panel.
type Gauge struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Variable string  `json:"variable" yaml:"variable"`
	Max      float64 `json:"max" yaml:"max"`
	Color    string  `json:"color" yaml:"color"`
}

// Character is one roster entry.
type Character struct {
	ID                   string          `json:"id" yaml:"id"`
	Prefix               string          `json:"prefix" yaml:"prefix"`
	Name                 string          `json:"name" yaml:"name"`
	Origin               string          `json:"origin" yaml:"origin"`
	Profile              string          `json:"profile" yaml:"profile"`
	Images               CharacterImages `json:"images" yaml:"images"`
	ProfileUnlocks       []ProfileUnlock `json:"profileUnlocks" yaml:"profileUnlocks"`
	Stats                []Stat          `json:"stats" yaml:"stats"`
	Gauges               []Gauge         `json:"gauges" yaml:"gauges"`
	LocationVariable     string          `json:"locationVariable" yaml:"locationVariable"`
	RelationshipVariable string          `json:"relationshipVariable" yaml:"relationshipVariable"`
	InnerThoughtVariable string          `json:"innerThoughtVariable" yaml:"innerThoughtVariable"`
}

// LoreEntry is an unlock-gated world-building entry.
type LoreEntry struct {
	ID            string            `json:"id" yaml:"id"`
	Conditions    []UnlockCondition `json:"conditions" yaml:"conditions"`
	Title         string            `json:"title" yaml:"title"`
	Content       string            `json:"content" yaml:"content"`
	Hidden        bool              `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	LockedTitle   string            `json:"lockedTitle,omitempty" yaml:"lockedTitle,omitempty"`
	LockedContent string            `json:"lockedContent,omitempty" yaml:"lockedContent,omitempty"`
}

// LoreCore is the always-visible introduction entry.
type LoreCore struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Lore bundles the core entry with its gated additions.
type Lore struct {
	Core    LoreCore    `json:"core" yaml:"core"`
	Entries []LoreEntry `json:"entries" yaml:"entries"`
}

// Achievement is an unlock-gated accomplishment. Hidden achievements show a
// question-mark icon and an optional hint while locked.
type Achievement struct {
	ID                string            `json:"id" yaml:"id"`
	Conditions        []UnlockCondition `json:"conditions" yaml:"conditions"`
	Title             string            `json:"title" yaml:"title"`
	Description       string            `json:"description" yaml:"description"`
	Hidden            bool              `json:"hidden" yaml:"hidden"`
	Hint              string            `json:"hint" yaml:"hint"`
	IconURL           string            `json:"iconUrl,omitempty" yaml:"iconUrl,omitempty"`
	IconMarkup        string            `json:"iconMarkup,omitempty" yaml:"iconMarkup,omitempty"`
	LockedTitle       string            `json:"lockedTitle,omitempty" yaml:"lockedTitle,omitempty"`
	LockedDescription string            `json:"lockedDescription,omitempty" yaml:"lockedDescription,omitempty"`
}

// CharacterIDCommon marks an achievement category that applies to the whole
// roster rather than a single character.
const CharacterIDCommon = "common"

// AchievementCategory groups achievements under a heading.
type AchievementCategory struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	CharacterID  string        `json:"characterId" yaml:"characterId"`
	Achievements []Achievement `json:"achievements" yaml:"achievements"`
}

// StatSystem selects the chart used for character stats.
type StatSystem string

const (
	StatSystemBar      StatSystem = "bar"
	StatSystemRadar    StatSystem = "radar"
	StatSystemDoughnut StatSystem = "doughnut"
)

// StatSystemConfig carries per-chart presentation settings.
type StatSystemConfig struct {
	Radar RadarConfig `json:"radar" yaml:"radar"`
}

// RadarConfig styles the radar chart polygon.
type RadarConfig struct {
	Color string `json:"color" yaml:"color"`
}

// MapConfig holds the main map background.
type MapConfig struct {
	BackgroundImageURL string `json:"backgroundImageUrl" yaml:"backgroundImageUrl"`
}

// Memory is a free-text slot filled entirely by its variable. Memories whose
// bound value is empty are omitted from the render.
type Memory struct {
	ID       string `json:"id" yaml:"id"`
	Variable string `json:"variable" yaml:"variable"`
}

// UILabels is the user-facing copy for the window chrome and every view.
type UILabels struct {
	MainWindowTitle string             `json:"mainWindowTitle" yaml:"mainWindowTitle"`
	MainTabs        TabLabels          `json:"mainTabs" yaml:"mainTabs"`
	Character       CharacterLabels    `json:"character" yaml:"character"`
	Memories        MemoriesLabels     `json:"memories" yaml:"memories"`
	Lore            LoreLabels         `json:"lore" yaml:"lore"`
	Map             MapLabels          `json:"map" yaml:"map"`
	Achievements    AchievementsLabels `json:"achievements" yaml:"achievements"`
}

// TabLabels names the five main tabs.
type TabLabels struct {
	Character    string `json:"character" yaml:"character"`
	Map          string `json:"map" yaml:"map"`
	Memories     string `json:"memories" yaml:"memories"`
	Lore         string `json:"lore" yaml:"lore"`
	Achievements string `json:"achievements" yaml:"achievements"`
}

// CharacterLabels titles the panels of the character view.
type CharacterLabels struct {
	RelationshipTitle     string `json:"relationshipTitle" yaml:"relationshipTitle"`
	StatsTitle            string `json:"statsTitle" yaml:"statsTitle"`
	ProfileTitle          string `json:"profileTitle" yaml:"profileTitle"`
	InnerThoughtTitle     string `json:"innerThoughtTitle" yaml:"innerThoughtTitle"`
	UnlocksTitle          string `json:"unlocksTitle" yaml:"unlocksTitle"`
	CurrentLocationPrefix string `json:"currentLocationPrefix" yaml:"currentLocationPrefix"`
	HiddenUnlockTitle     string `json:"hiddenUnlockTitle,omitempty" yaml:"hiddenUnlockTitle,omitempty"`
}

// MemoriesLabels titles the memories view.
type MemoriesLabels struct {
	Title string `json:"title" yaml:"title"`
}

// LoreLabels titles the lore view sections.
type LoreLabels struct {
	AdditionalInfoTitle string `json:"additionalInfoTitle" yaml:"additionalInfoTitle"`
}

// MapLabels names the main map and the back action.
type MapLabels struct {
	MainMapName   string `json:"mainMapName" yaml:"mainMapName"`
	BackToMainMap string `json:"backToMainMap" yaml:"backToMainMap"`
}

// AchievementsLabels carries the hint prefix and locked badge text.
type AchievementsLabels struct {
	HintPrefix   string `json:"hintPrefix" yaml:"hintPrefix"`
	LockedStatus string `json:"lockedStatus" yaml:"lockedStatus"`
}

// GlobalSettings controls the blank-variable policy shared by every view.
type GlobalSettings struct {
	UseDefaultForBlank bool   `json:"useDefaultForBlank" yaml:"useDefaultForBlank"`
	BlankVariableValue string `json:"blankVariableValue" yaml:"blankVariableValue"`
}

// FeatureFlags toggles optional tabs. The character tab is always present.
type FeatureFlags struct {
	ShowMap          bool `json:"showMap" yaml:"showMap"`
	ShowMemories     bool `json:"showMemories" yaml:"showMemories"`
	ShowLore         bool `json:"showLore" yaml:"showLore"`
	ShowAchievements bool `json:"showAchievements" yaml:"showAchievements"`
}

// CharacterByID returns the roster entry with the given id.
func (d *Document) CharacterByID(id string) (Character, bool) {
	for _, ch := range d.Characters {
		if ch.ID == id {
			return ch, true
		}
	}
	return Character{}, false
}

// LocationByID returns the top-level location with the given id.
func (d *Document) LocationByID(id string) (Location, bool) {
	for _, loc := range d.Locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}
