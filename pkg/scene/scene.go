// Package scene turns a configuration, a set of variable bindings, and the
// navigation state into the visual tree for the status window. Rendering is
// a pure function of those three inputs; every failure mode degrades to a
// placeholder instead of an error, so this package has no error returns.
package scene

import (
	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/config"
)

// renderContext bundles the read-only inputs the sub-renderers share.
type renderContext struct {
	doc      *config.Document
	vars     bindings.Bindings
	resolver bindings.Resolver
	index    *bindings.LocationIndex
	state    State
	scale    float64
}

// Render produces the full window tree for the active view. The same tree
// backs the in-editor preview and the TUI inspector; the exported document
// rebuilds an equivalent tree client-side from the embedded configuration.
func Render(doc *config.Document, vars bindings.Bindings, st State) *Node {
	if doc == nil {
		return El("div", A("class", "status-window-empty")).Add(Text("..."))
	}

	rc := &renderContext{
		doc:      doc,
		vars:     vars,
		resolver: bindings.NewResolver(doc.GlobalSettings),
		index:    bindings.NewLocationIndex(doc.Locations),
		state:    st,
		scale:    doc.Size.Scale(),
	}

	window := El("div",
		A("class", "status-window"),
		A("style", stylef("font-family: %s;", doc.Font.FontFamily)),
	)
	window.Add(rc.titleBar(), rc.tabStrip(), rc.contentArea())
	return window
}

func (rc *renderContext) titleBar() *Node {
	return El("div",
		A("class", "window-title"),
		A("style", stylef("height: %s; background: rgba(0,0,0,0.2); display: flex; align-items: center; justify-content: center; font-weight: bold; letter-spacing: 0.05em; flex-shrink: 0;", px(40*rc.scale))),
	).Add(Text(rc.doc.UILabels.MainWindowTitle))
}

func (rc *renderContext) tabStrip() *Node {
	strip := El("div",
		A("class", "tab-strip"),
		A("style", stylef("display: flex; background: rgba(0,0,0,0.2); padding: %s; flex-shrink: 0;", px(4*rc.scale))),
	)
	for _, tab := range Tabs(rc.doc) {
		active := tab == rc.state.Tab
		color := "#9CA3AF"
		if active {
			color = "white"
		}
		button := El("button",
			A("class", "tab-button"),
			A("data-tab", string(tab)),
			A("style", stylef("flex: 1; padding: %s 0; text-align: center; font-weight: 600; font-size: %s; position: relative; color: %s; background: none; border: none; cursor: pointer;", px(12*rc.scale), px(14*rc.scale), color)),
		).Click(Action{Kind: ActionSelectTab, Arg: string(tab)})
		button.Add(Text(TabLabel(rc.doc, tab)))
		if active {
			button.Add(El("span",
				A("class", "tab-underline"),
				A("style", stylef("position: absolute; bottom: 0; left: 50%%; transform: translateX(-50%%); width: 70%%; height: %s; background-color: var(--sw-accent, #FBBF24); border-radius: 2px;", px(3*rc.scale))),
			))
		}
		strip.Add(button)
	}
	return strip
}

func (rc *renderContext) contentArea() *Node {
	area := El("div",
		A("class", "content-area"),
		A("style", "flex-grow: 1; overflow: hidden; display: flex; flex-direction: column;"),
	)
	if rc.state.Tab == TabCharacter {
		area.Add(rc.characterStrip())
	}
	body := El("div", A("style", "flex-grow: 1; overflow: hidden;"))
	body.Add(rc.activeView())
	area.Add(body)
	return area
}

func (rc *renderContext) characterStrip() *Node {
	strip := El("div",
		A("class", "character-strip"),
		A("style", "flex-shrink: 0; display: flex; border-bottom: 1px solid rgba(255,255,255,0.2); overflow-x: auto;"),
	)
	for _, ch := range rc.doc.Characters {
		active := ch.ID == rc.state.CharacterID
		color, border := "#9CA3AF", "transparent"
		if active {
			color, border = "#67E8F9", "#67E8F9"
		}
		strip.Add(El("button",
			A("class", "character-tab"),
			A("data-character", ch.ID),
			A("style", stylef("padding: %s; text-align: center; font-weight: 600; cursor: pointer; flex-shrink: 0; font-size: %s; background: none; border: none; border-bottom: 2px solid %s; color: %s;", px(12*rc.scale), px(14*rc.scale), border, color)),
		).Click(Action{Kind: ActionSelectCharacter, Arg: ch.ID}).Add(Text(ch.Name)))
	}
	return strip
}

// activeView dispatches on the typed tab. The switch is exhaustive over the
// Tab constants; an out-of-range value degrades to an ellipsis placeholder.
func (rc *renderContext) activeView() *Node {
	switch rc.state.Tab {
	case TabCharacter:
		return rc.characterView()
	case TabMap:
		return rc.mapView()
	case TabMemories:
		return rc.memoriesView()
	case TabLore:
		return rc.loreView()
	case TabAchievements:
		return rc.achievementsView()
	default:
		return El("div").Add(Text("..."))
	}
}

// panel is the shared translucent card every view composes.
func (rc *renderContext) panel(extraStyle string) *Node {
	style := "background: rgba(0,0,0,0.2); border: 1px solid rgba(255,255,255,0.2); border-radius: 12px;"
	if extraStyle != "" {
		style += " " + extraStyle
	}
	return El("div", A("class", "content-panel"), A("style", style))
}

func (rc *renderContext) sectionTitle(text string) *Node {
	return El("h4",
		A("style", stylef("font-weight: 600; color: var(--sw-accent, #FBBF24); font-size: %s; margin-bottom: %s;", remf(1.25*rc.scale), remf(0.5*rc.scale))),
	).Add(Text(text))
}
