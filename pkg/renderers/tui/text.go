package tui

import (
	"strings"

	"github.com/roleplaykit/go-statuswin/pkg/scene"
)

// writeText flattens a visual tree into terminal text. Markup concerns fall
// away: charts and images are skipped, headings get a marker, buttons get
// brackets, and block elements break lines.
func writeText(b *strings.Builder, n *scene.Node) {
	if n == nil {
		return
	}
	switch n.Tag {
	case "svg", "img":
		return
	case "":
		if n.Text != "" {
			b.WriteString(n.Text)
		}
		return
	}

	switch n.Tag {
	case "h3", "h4", "h5":
		b.WriteString("\n## ")
		b.WriteString(n.TextContent())
		b.WriteString("\n")
		return
	case "button":
		b.WriteString("[")
		b.WriteString(strings.TrimSpace(n.TextContent()))
		b.WriteString("] ")
		return
	case "span":
		for _, child := range n.Children {
			writeText(b, child)
		}
		b.WriteString(" ")
		return
	}

	for _, child := range n.Children {
		writeText(b, child)
	}
	if isBlock(n.Tag) {
		ensureNewline(b)
	}
}

func isBlock(tag string) bool {
	switch tag {
	case "div", "p", "section", "ul", "li":
		return true
	}
	return false
}

func ensureNewline(b *strings.Builder) {
	s := b.String()
	if s != "" && !strings.HasSuffix(s, "\n") {
		b.WriteString("\n")
	}
}

// renderText produces the full text snapshot for one tree, with blank-line
// runs collapsed.
func renderText(tree *scene.Node) string {
	var b strings.Builder
	writeText(&b, tree)

	lines := strings.Split(b.String(), "\n")
	var out []string
	blank := false
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " ")
		if trimmed == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n") + "\n"
}
