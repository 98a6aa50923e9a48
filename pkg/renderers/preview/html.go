package preview

import (
	"html"
	"strings"

	"github.com/roleplaykit/go-statuswin/pkg/scene"
)

// voidElements have no closing tag in HTML.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// WriteNode serializes a visual tree to HTML. All text and attribute values
// are escaped; raw leaves pass through because they already went through the
// config sanitizer. Click actions become data-action/data-arg attributes for
// hosts that wire their own handlers onto the snapshot.
func WriteNode(b *strings.Builder, n *scene.Node) {
	if n == nil {
		return
	}
	if n.Raw != "" {
		b.WriteString(n.Raw)
		return
	}
	if n.Tag == "" {
		b.WriteString(html.EscapeString(n.Text))
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, attr := range n.Attrs {
		writeAttr(b, attr.Key, attr.Value)
	}
	if n.OnClick != nil {
		writeAttr(b, "data-action", string(n.OnClick.Kind))
		if n.OnClick.Arg != "" {
			writeAttr(b, "data-arg", n.OnClick.Arg)
		}
	}
	b.WriteByte('>')

	if voidElements[n.Tag] {
		return
	}
	for _, child := range n.Children {
		WriteNode(b, child)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

func writeAttr(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}

// RenderHTML serializes a tree to a string.
func RenderHTML(n *scene.Node) string {
	var b strings.Builder
	WriteNode(&b, n)
	return b.String()
}
