package scene

import (
	"github.com/roleplaykit/go-statuswin/pkg/config"
	"github.com/roleplaykit/go-statuswin/pkg/unlock"
)

func (rc *renderContext) characterView() *Node {
	ch, ok := rc.doc.CharacterByID(rc.state.CharacterID)
	if !ok {
		if len(rc.doc.Characters) == 0 {
			return El("div",
				A("class", "character-view"),
				A("style", "display: flex; align-items: center; justify-content: center; height: 100%; color: #9CA3AF;"),
			).Add(Text("..."))
		}
		ch = rc.doc.Characters[0]
	}

	view := El("div",
		A("class", "character-view"),
		A("style", stylef("height: 100%%; overflow-y: auto; padding: %s; display: flex; flex-direction: column; gap: %s;", remf(1*rc.scale), remf(1*rc.scale))),
	)
	view.Add(rc.characterHeader(ch))
	view.Add(rc.relationshipPanel(ch))
	view.Add(rc.innerThoughtPanel(ch))
	if stats := rc.statsPanel(ch); stats != nil {
		view.Add(stats)
	}
	view.Add(rc.profilePanel(ch))
	if unlocks := rc.unlocksPanel(ch); unlocks != nil {
		view.Add(unlocks)
	}
	return view
}

// currentImage picks the portrait for the bound state. Conditional entries
// are tested in order against the raw value; the first match wins and the
// default portrait backs everything else.
func (rc *renderContext) currentImage(ch config.Character) string {
	for _, img := range ch.Images.Conditional {
		if img.ConditionVariable == "" {
			continue
		}
		if rc.vars.Raw(img.ConditionVariable) == img.ConditionValue {
			return img.URL
		}
	}
	return ch.Images.Default
}

func (rc *renderContext) characterHeader(ch config.Character) *Node {
	header := El("div",
		A("class", "character-header"),
		A("style", stylef("display: flex; gap: %s; align-items: flex-start;", remf(1*rc.scale))),
	)

	portrait := El("div",
		A("style", stylef("width: %s; height: %s; flex-shrink: 0; border-radius: 12px; overflow: hidden; border: 1px solid rgba(255,255,255,0.2);", px(128*rc.scale), px(128*rc.scale))),
	)
	if url := rc.currentImage(ch); url != "" {
		portrait.Add(El("img",
			A("src", url),
			A("alt", ch.Name),
			A("style", "width: 100%; height: 100%; object-fit: cover;"),
		))
	}
	header.Add(portrait)

	info := El("div", A("style", "flex-grow: 1; min-width: 0;"))
	name := ch.Name
	if ch.Prefix != "" {
		name = ch.Prefix + " " + ch.Name
	}
	info.Add(El("h3",
		A("style", stylef("font-weight: bold; font-size: %s; color: #fff;", remf(1.5*rc.scale))),
	).Add(Text(name)))
	if ch.Origin != "" {
		info.Add(El("p",
			A("style", stylef("color: #9CA3AF; font-size: %s;", remf(0.875*rc.scale))),
		).Add(Text(ch.Origin)))
	}

	locationName := "???"
	if loc, ok := rc.index.ResolveVariable(rc.resolver, rc.vars, ch.LocationVariable); ok {
		locationName = loc.Name
	}
	info.Add(El("p",
		A("class", "current-location"),
		A("style", stylef("color: #67E8F9; font-size: %s;", remf(0.875*rc.scale))),
	).Add(Text(rc.doc.UILabels.Character.CurrentLocationPrefix + locationName)))

	header.Add(info)
	return header
}

func (rc *renderContext) relationshipPanel(ch config.Character) *Node {
	panel := rc.panel(stylef("padding: %s;", remf(1*rc.scale)))
	panel.Add(rc.sectionTitle(rc.doc.UILabels.Character.RelationshipTitle))
	panel.Add(El("p",
		A("style", stylef("color: #D1D5DB; font-size: %s; white-space: pre-wrap;", remf(0.875*rc.scale))),
	).Add(Text(rc.resolver.Resolve(rc.vars, ch.RelationshipVariable))))

	if len(ch.Gauges) > 0 {
		rows := El("div",
			A("class", "gauge-rows"),
			A("style", stylef("margin-top: %s; display: flex; flex-direction: column; gap: %s;", remf(0.75*rc.scale), remf(0.5*rc.scale))),
		)
		for _, g := range ch.Gauges {
			value, _ := rc.vars.Number(g.Variable)
			display := num(value) + " / " + num(g.Max)
			rows.Add(barRow(g.Name, display, value, g.Max, g.Color, rc.scale))
		}
		panel.Add(rows)
	}
	return panel
}

func (rc *renderContext) innerThoughtPanel(ch config.Character) *Node {
	panel := rc.panel(stylef("padding: %s;", remf(1*rc.scale)))
	panel.Add(rc.sectionTitle(rc.doc.UILabels.Character.InnerThoughtTitle))
	panel.Add(El("p",
		A("style", stylef("color: #D1D5DB; font-size: %s; font-style: italic; white-space: pre-wrap;", remf(0.875*rc.scale))),
	).Add(Text(rc.resolver.Resolve(rc.vars, ch.InnerThoughtVariable))))
	return panel
}

// statValue resolves a stat to its numeric display value. Variable-backed
// stats read the bindings; anything unparsable counts as zero.
func (rc *renderContext) statValue(st config.Stat) float64 {
	if st.Type == config.StatTypeFixed {
		return st.Value
	}
	value, _ := rc.vars.Number(st.Variable)
	return value
}

// statsPanel renders the configured chart, or nothing when the roster entry
// has too few stats for it. Radar needs three axes to form a polygon;
// doughnut and bar need at least one entry.
func (rc *renderContext) statsPanel(ch config.Character) *Node {
	data := make([]StatDatum, 0, len(ch.Stats))
	for _, st := range ch.Stats {
		data = append(data, StatDatum{
			Name:  st.Name,
			Value: rc.statValue(st),
			Max:   st.Max,
			Color: st.Color,
		})
	}

	var chart *Node
	switch rc.doc.StatSystem {
	case config.StatSystemRadar:
		if len(data) < 3 {
			return nil
		}
		color := rc.doc.StatSystemConfig.Radar.Color
		if color == "" {
			color = "var(--sw-accent, #FBBF24)"
		}
		chart = El("div", A("style", "display: flex; justify-content: center;")).
			Add(radarChart(data, rc.scale, color))
	case config.StatSystemDoughnut:
		if len(data) == 0 {
			return nil
		}
		chart = El("div", A("style", "display: flex; justify-content: center;")).
			Add(doughnutChart(data, rc.scale))
		chart.Add(rc.doughnutLegend(data))
	default:
		if len(data) == 0 {
			return nil
		}
		chart = El("div",
			A("class", "stat-bars"),
			A("style", stylef("display: flex; flex-direction: column; gap: %s;", remf(0.5*rc.scale))),
		)
		for _, d := range data {
			display := num(d.Value) + " / " + num(d.Max)
			chart.Add(barRow(d.Name, display, d.Value, d.Max, d.Color, rc.scale))
		}
	}

	panel := rc.panel(stylef("padding: %s;", remf(1*rc.scale)))
	panel.Add(rc.sectionTitle(rc.doc.UILabels.Character.StatsTitle))
	panel.Add(chart)
	return panel
}

func (rc *renderContext) doughnutLegend(data []StatDatum) *Node {
	legend := El("div",
		A("class", "doughnut-legend"),
		A("style", stylef("display: flex; flex-wrap: wrap; justify-content: center; gap: %s; margin-left: %s;", remf(0.5*rc.scale), remf(0.5*rc.scale))),
	)
	for _, d := range data {
		item := El("span",
			A("style", stylef("display: inline-flex; align-items: center; gap: %s; font-size: %s; color: #D1D5DB;", remf(0.25*rc.scale), remf(0.75*rc.scale))),
		)
		item.Add(El("span",
			A("style", stylef("width: %s; height: %s; border-radius: 2px; background-color: %s;", px(10*rc.scale), px(10*rc.scale), d.Color)),
		))
		item.Add(Text(d.Name + " " + num(d.Value)))
		legend.Add(item)
	}
	return legend
}

func (rc *renderContext) profilePanel(ch config.Character) *Node {
	panel := rc.panel(stylef("padding: %s;", remf(1*rc.scale)))
	panel.Add(rc.sectionTitle(rc.doc.UILabels.Character.ProfileTitle))
	panel.Add(El("p",
		A("style", stylef("color: #D1D5DB; font-size: %s; white-space: pre-wrap;", remf(0.875*rc.scale))),
	).Add(Text(ch.Profile)))
	return panel
}

// secretLabel is the stand-in title for hidden content while locked.
func (rc *renderContext) secretLabel() string {
	if label := rc.doc.UILabels.Character.HiddenUnlockTitle; label != "" {
		return label
	}
	return "???"
}

// unlocksPanel lists profile unlocks. Unlocked entries show their real title
// and content. A configured lockedTitle always wins while locked; without
// one, hidden entries collapse to the secret label and visible entries keep
// their real title over the locked content.
func (rc *renderContext) unlocksPanel(ch config.Character) *Node {
	if len(ch.ProfileUnlocks) == 0 {
		return nil
	}
	panel := rc.panel(stylef("padding: %s;", remf(1*rc.scale)))
	panel.Add(rc.sectionTitle(rc.doc.UILabels.Character.UnlocksTitle))

	list := El("div",
		A("style", stylef("display: flex; flex-direction: column; gap: %s;", remf(0.75*rc.scale))),
	)
	for _, pu := range ch.ProfileUnlocks {
		title, content := pu.Title, pu.Content
		locked := !unlock.Unlocked(pu.Conditions, rc.vars)
		if locked {
			title = pu.LockedTitle
			if title == "" {
				title = pu.Title
				if pu.Hidden {
					title = rc.secretLabel()
				}
			}
			content = pu.LockedContent
		}

		entry := El("div", A("class", "profile-unlock"))
		titleColor := "#fff"
		if locked {
			titleColor = "#9CA3AF"
		}
		entry.Add(El("h5",
			A("style", stylef("font-weight: 600; color: %s; font-size: %s;", titleColor, remf(0.875*rc.scale))),
		).Add(Text(title)))
		if content != "" {
			entry.Add(El("p",
				A("style", stylef("color: #D1D5DB; font-size: %s; white-space: pre-wrap;", remf(0.875*rc.scale))),
			).Add(Text(content)))
		}
		list.Add(entry)
	}
	panel.Add(list)
	return panel
}
