package scene

// memoriesView lists the filled memory slots. Presence is decided on the
// raw bound value, before the blank-default policy runs, so a configured
// placeholder never conjures an empty memory into the list.
func (rc *renderContext) memoriesView() *Node {
	view := El("div",
		A("class", "memories-view"),
		A("style", stylef("height: 100%%; overflow-y: auto; padding: %s;", remf(1*rc.scale))),
	)

	panel := rc.panel(stylef("padding: %s;", remf(1*rc.scale)))
	panel.Add(rc.sectionTitle(rc.doc.UILabels.Memories.Title))

	list := El("div",
		A("class", "memory-list"),
		A("style", stylef("display: flex; flex-direction: column; gap: %s;", remf(0.75*rc.scale))),
	)
	filled := 0
	for _, mem := range rc.doc.Memories {
		raw := rc.vars.Raw(mem.Variable)
		if raw == "" {
			continue
		}
		filled++
		list.Add(El("div",
			A("class", "memory-block"),
			A("style", stylef("background: rgba(0,0,0,0.3); border-radius: 8px; padding: %s; color: #D1D5DB; font-size: %s; white-space: pre-wrap;", remf(0.75*rc.scale), remf(0.875*rc.scale))),
		).Add(Text(raw)))
	}
	if filled == 0 {
		list.Add(El("p",
			A("style", stylef("color: #9CA3AF; font-size: %s; text-align: center;", remf(0.875*rc.scale))),
		).Add(Text("...")))
	}
	panel.Add(list)
	view.Add(panel)
	return view
}
