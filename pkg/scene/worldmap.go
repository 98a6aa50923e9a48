package scene

import (
	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/config"
)

func (rc *renderContext) mapView() *Node {
	if rc.state.Map.Kind == MapLevelSub {
		if parent, ok := rc.doc.LocationByID(rc.state.Map.ParentID); ok && parent.HasSubMap() {
			return rc.subMapView(parent)
		}
	}
	return rc.mainMapView()
}

func (rc *renderContext) mainMapView() *Node {
	view := El("div",
		A("class", "map-view"),
		A("style", "position: relative; width: 100%; height: 100%; overflow: hidden;"),
	)
	view.Add(rc.mapBackground(rc.doc.Map.BackgroundImageURL, rc.doc.UILabels.Map.MainMapName))

	occupants := rc.charactersByLocation()
	for _, loc := range rc.doc.Locations {
		view.Add(rc.mapPin(loc.Name, loc.X, loc.Y, loc.HasSubMap(), loc.ID))
		rc.addCharacterIcons(view, occupants[loc.ID], loc.X, loc.Y)
	}
	return view
}

func (rc *renderContext) subMapView(parent config.Location) *Node {
	view := El("div",
		A("class", "map-view sub-map"),
		A("style", "position: relative; width: 100%; height: 100%; overflow: hidden;"),
	)
	view.Add(rc.mapBackground(parent.SubMapImageURL, parent.Name))

	occupants := rc.charactersBySubLocation(parent)
	for _, sub := range parent.SubLocations {
		view.Add(rc.mapPin(sub.Name, sub.X, sub.Y, false, ""))
		rc.addCharacterIcons(view, occupants[sub.ID], sub.X, sub.Y)
	}

	view.Add(El("button",
		A("class", "back-to-main"),
		A("style", stylef("position: absolute; top: %s; left: %s; z-index: 20; padding: %s %s; background: rgba(0,0,0,0.6); color: #fff; border: 1px solid rgba(255,255,255,0.2); border-radius: 8px; cursor: pointer; font-size: %s;", px(12*rc.scale), px(12*rc.scale), px(6*rc.scale), px(12*rc.scale), px(13*rc.scale))),
	).Click(Action{Kind: ActionBackToMainMap}).Add(Text(rc.doc.UILabels.Map.BackToMainMap)))
	return view
}

func (rc *renderContext) mapBackground(url, alt string) *Node {
	if url == "" {
		return El("div",
			A("style", "position: absolute; inset: 0; background: rgba(0,0,0,0.3); display: flex; align-items: center; justify-content: center; color: #9CA3AF;"),
		).Add(Text(alt))
	}
	return El("img",
		A("src", url),
		A("alt", alt),
		A("style", "position: absolute; inset: 0; width: 100%; height: 100%; object-fit: cover;"),
	)
}

// mapPin places one named pin at percentage coordinates. Pins for locations
// with a sub map are clickable and drill down.
func (rc *renderContext) mapPin(name string, x, y float64, clickable bool, locationID string) *Node {
	size := MapPinSize * rc.scale
	cursor := "default"
	if clickable {
		cursor = "pointer"
	}
	pin := El("div",
		A("class", "map-pin"),
		A("style", stylef("position: absolute; left: %s; top: %s; transform: translate(-50%%, -50%%); z-index: 10; display: flex; flex-direction: column; align-items: center; cursor: %s;", pct(x), pct(y), cursor)),
	)
	if clickable {
		pin.Click(Action{Kind: ActionOpenSubMap, Arg: locationID})
		pin.Attrs = append(pin.Attrs, A("data-location", locationID))
	}
	pin.Add(El("span",
		A("style", stylef("width: %s; height: %s; border-radius: 9999px; background-color: var(--sw-accent, #FBBF24); border: 2px solid #fff; box-shadow: 0 0 6px rgba(0,0,0,0.6);", px(size), px(size))),
	))
	pin.Add(El("span",
		A("style", stylef("margin-top: %s; font-size: %s; color: #fff; text-shadow: 0 1px 2px rgba(0,0,0,0.8); white-space: nowrap;", px(2*rc.scale), px(12*rc.scale))),
	).Add(Text(name)))
	return pin
}

// addCharacterIcons fans the occupants of one spot symmetrically around its
// pin, lifted above the marker.
func (rc *renderContext) addCharacterIcons(view *Node, occupants []config.Character, x, y float64) {
	n := len(occupants)
	if n == 0 {
		return
	}
	size := MapIconWidth * rc.scale
	for i, ch := range occupants {
		offset := IconFanOffset(i, n, rc.scale)
		icon := El("div",
			A("class", "map-character"),
			A("data-character", ch.ID),
			A("title", ch.Name),
			A("style", stylef("position: absolute; left: calc(%s + %s); top: calc(%s - %s); transform: translate(-50%%, -100%%); z-index: 15; width: %s; height: %s; border-radius: 9999px; overflow: hidden; border: 2px solid #67E8F9; background: rgba(0,0,0,0.4);", pct(x), px(offset), pct(y), px(MapIconLift*rc.scale), px(size), px(size))),
		)
		if url := rc.currentImage(ch); url != "" {
			icon.Add(El("img",
				A("src", url),
				A("alt", ch.Name),
				A("style", "width: 100%; height: 100%; object-fit: cover;"),
			))
		}
		view.Add(icon)
	}
}

// locationBinding is the variable a character's placement reads from. A
// blank location variable falls back to the synthetic per-character binding
// the preview simulation fills in.
func locationBinding(ch config.Character) string {
	if ch.LocationVariable != "" {
		return ch.LocationVariable
	}
	return bindings.PlacementVariable(ch.ID)
}

// charactersByLocation groups the roster by the top-level location their
// bound location variable resolves to. Characters at unknown places are
// simply not drawn.
func (rc *renderContext) charactersByLocation() map[string][]config.Character {
	groups := make(map[string][]config.Character)
	for _, ch := range rc.doc.Characters {
		loc, ok := rc.index.ResolveVariable(rc.resolver, rc.vars, locationBinding(ch))
		if !ok {
			continue
		}
		groups[loc.ID] = append(groups[loc.ID], ch)
	}
	return groups
}

// charactersBySubLocation matches raw location values against the parent's
// sub-location ids. Sub locations have no aliases.
func (rc *renderContext) charactersBySubLocation(parent config.Location) map[string][]config.Character {
	subIDs := make(map[string]bool, len(parent.SubLocations))
	for _, sub := range parent.SubLocations {
		subIDs[sub.ID] = true
	}
	groups := make(map[string][]config.Character)
	for _, ch := range rc.doc.Characters {
		raw := rc.vars.Raw(locationBinding(ch))
		if subIDs[raw] {
			groups[raw] = append(groups[raw], ch)
		}
	}
	return groups
}
