package scene

import (
	"github.com/roleplaykit/go-statuswin/pkg/config"
	"github.com/roleplaykit/go-statuswin/pkg/unlock"
)

func (rc *renderContext) achievementsView() *Node {
	view := El("div",
		A("class", "achievements-view"),
		A("style", stylef("height: 100%%; overflow-y: auto; padding: %s; display: flex; flex-direction: column; gap: %s;", remf(1*rc.scale), remf(1*rc.scale))),
	)
	for _, cat := range rc.doc.Achievements {
		if len(cat.Achievements) == 0 {
			continue
		}
		panel := rc.panel(stylef("padding: %s;", remf(1*rc.scale)))
		panel.Add(rc.sectionTitle(rc.categoryHeading(cat)))
		list := El("div",
			A("style", stylef("display: flex; flex-direction: column; gap: %s;", remf(0.75*rc.scale))),
		)
		for _, ach := range cat.Achievements {
			list.Add(rc.achievementRow(ach))
		}
		panel.Add(list)
		view.Add(panel)
	}
	return view
}

// categoryHeading prefers the configured name and falls back to the owning
// character's name for per-character categories left unnamed.
func (rc *renderContext) categoryHeading(cat config.AchievementCategory) string {
	if cat.Name != "" {
		return cat.Name
	}
	if cat.CharacterID != config.CharacterIDCommon {
		if ch, ok := rc.doc.CharacterByID(cat.CharacterID); ok {
			return ch.Name
		}
	}
	return cat.Name
}

func (rc *renderContext) achievementRow(ach config.Achievement) *Node {
	unlocked := unlock.Unlocked(ach.Conditions, rc.vars)

	// While locked the real title and description never show, hidden or not.
	// The placeholder covers every missing locked stand-in.
	title, description := ach.Title, ach.Description
	if !unlocked {
		title = ach.LockedTitle
		if title == "" {
			title = "???"
		}
		description = ach.LockedDescription
		if description == "" {
			description = "???"
		}
	}

	row := El("div",
		A("class", "achievement"),
		A("style", stylef("display: flex; gap: %s; align-items: flex-start; opacity: %s;", remf(0.75*rc.scale), achievementOpacity(unlocked))),
	)
	row.Add(rc.achievementIcon(ach, unlocked))

	body := El("div", A("style", "flex-grow: 1; min-width: 0;"))
	titleLine := El("div", A("style", "display: flex; align-items: center; gap: 0.5em;"))
	titleColor := "#fff"
	if !unlocked {
		titleColor = "#9CA3AF"
	}
	titleLine.Add(El("h5",
		A("style", stylef("font-weight: 600; color: %s; font-size: %s;", titleColor, remf(0.875*rc.scale))),
	).Add(Text(title)))
	if !unlocked && rc.doc.UILabels.Achievements.LockedStatus != "" {
		titleLine.Add(El("span",
			A("class", "locked-badge"),
			A("style", stylef("font-size: %s; color: #9CA3AF; border: 1px solid rgba(255,255,255,0.2); border-radius: 4px; padding: 0 0.4em;", remf(0.7*rc.scale))),
		).Add(Text(rc.doc.UILabels.Achievements.LockedStatus)))
	}
	body.Add(titleLine)

	if description != "" {
		body.Add(El("p",
			A("style", stylef("color: #D1D5DB; font-size: %s; white-space: pre-wrap;", remf(0.8*rc.scale))),
		).Add(Text(description)))
	}
	if !unlocked && ach.Hidden && ach.Hint != "" {
		body.Add(El("p",
			A("class", "achievement-hint"),
			A("style", stylef("color: #67E8F9; font-size: %s; font-style: italic;", remf(0.8*rc.scale))),
		).Add(Text(rc.doc.UILabels.Achievements.HintPrefix + ach.Hint)))
	}
	row.Add(body)
	return row
}

// achievementIcon renders, in order of preference, sanitized inline markup,
// an image URL, or a fallback glyph for the lock state.
func (rc *renderContext) achievementIcon(ach config.Achievement, unlocked bool) *Node {
	size := px(32 * rc.scale)
	box := El("div",
		A("class", "achievement-icon"),
		A("style", stylef("width: %s; height: %s; flex-shrink: 0; display: flex; align-items: center; justify-content: center; font-size: %s;", size, size, px(24*rc.scale))),
	)
	switch {
	case ach.IconMarkup != "":
		box.Add(RawHTML(ach.IconMarkup))
	case ach.IconURL != "":
		box.Add(El("img",
			A("src", ach.IconURL),
			A("alt", ""),
			A("style", "width: 100%; height: 100%; object-fit: contain;"),
		))
	case unlocked:
		box.Add(Text("\U0001F3C6"))
	case ach.Hidden:
		box.Add(Text("❓"))
	default:
		box.Add(Text("\U0001F512"))
	}
	return box
}

func achievementOpacity(unlocked bool) string {
	if unlocked {
		return "1"
	}
	return "0.6"
}
