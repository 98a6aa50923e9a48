package scene

import (
	"github.com/roleplaykit/go-statuswin/pkg/unlock"
)

// loreCoreContent returns the core body, preferring a live binding so hosts
// can rewrite the introduction at run time without editing the template.
func (rc *renderContext) loreCoreContent() string {
	if raw := rc.vars.Raw("lore_core_content"); raw != "" {
		return raw
	}
	return rc.doc.Lore.Core.Content
}

func (rc *renderContext) loreView() *Node {
	view := El("div",
		A("class", "lore-view"),
		A("style", stylef("height: 100%%; overflow-y: auto; padding: %s; display: flex; flex-direction: column; gap: %s;", remf(1*rc.scale), remf(1*rc.scale))),
	)

	core := rc.panel(stylef("padding: %s;", remf(1*rc.scale)))
	core.Add(rc.sectionTitle(rc.doc.Lore.Core.Title))
	core.Add(El("p",
		A("style", stylef("color: #D1D5DB; font-size: %s; white-space: pre-wrap;", remf(0.875*rc.scale))),
	).Add(Text(rc.loreCoreContent())))
	view.Add(core)

	entries := rc.loreEntries()
	if len(entries) > 0 {
		section := rc.panel(stylef("padding: %s;", remf(1*rc.scale)))
		section.Add(rc.sectionTitle(rc.doc.UILabels.Lore.AdditionalInfoTitle))
		list := El("div",
			A("style", stylef("display: flex; flex-direction: column; gap: %s;", remf(0.75*rc.scale))),
		)
		for _, entry := range entries {
			list.Add(entry)
		}
		section.Add(list)
		view.Add(section)
	}
	return view
}

// loreEntries renders the gated additions. Every entry renders, locked or
// not; locked entries fall back from lockedTitle to the secret label for
// hidden entries, or the real title for visible ones.
func (rc *renderContext) loreEntries() []*Node {
	var nodes []*Node
	for _, entry := range rc.doc.Lore.Entries {
		unlocked := unlock.Unlocked(entry.Conditions, rc.vars)

		title, content := entry.Title, entry.Content
		titleColor := "#fff"
		if !unlocked {
			title = entry.LockedTitle
			if title == "" {
				title = entry.Title
				if entry.Hidden {
					title = rc.secretLabel()
				}
			}
			content = entry.LockedContent
			titleColor = "#9CA3AF"
		}

		node := El("div", A("class", "lore-entry"))
		node.Add(El("h5",
			A("style", stylef("font-weight: 600; color: %s; font-size: %s;", titleColor, remf(0.875*rc.scale))),
		).Add(Text(title)))
		if content != "" {
			node.Add(El("p",
				A("style", stylef("color: #D1D5DB; font-size: %s; white-space: pre-wrap;", remf(0.875*rc.scale))),
			).Add(Text(content)))
		}
		nodes = append(nodes, node)
	}
	return nodes
}
