package scene

// Node is one element of the visual tree every renderer consumes. Renderers
// only decide how to serialize it: the preview writer emits HTML, the TUI
// renderer walks it for text. A node is a text leaf when Tag is empty, or a
// raw-markup leaf when Raw is set (only pre-sanitized icon markup uses Raw).
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Raw      string
	OnClick  *Action
	Children []*Node
}

// Attr is one HTML attribute. Attributes keep insertion order so rendering
// is deterministic.
type Attr struct {
	Key   string
	Value string
}

// El creates an element node.
func El(tag string, attrs ...Attr) *Node {
	return &Node{Tag: tag, Attrs: attrs}
}

// Text creates a text leaf. The content is escaped at serialization time.
func Text(content string) *Node {
	return &Node{Text: content}
}

// RawHTML creates a leaf whose content is inserted without escaping. Only
// feed it markup that went through the config sanitizer.
func RawHTML(markup string) *Node {
	return &Node{Raw: markup}
}

// A is shorthand for building an attribute.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Add appends children and returns the node for chaining.
func (n *Node) Add(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Click attaches an interaction action and returns the node.
func (n *Node) Click(action Action) *Node {
	n.OnClick = &action
	return n
}

// AttrValue returns the value of the named attribute, mostly for tests.
func (n *Node) AttrValue(key string) string {
	for _, attr := range n.Attrs {
		if attr.Key == key {
			return attr.Value
		}
	}
	return ""
}

// ActionKind enumerates the interactions a rendered document exposes. They
// mutate navigation state only; configuration and bindings are off limits.
type ActionKind string

const (
	ActionSelectTab       ActionKind = "select-tab"
	ActionSelectCharacter ActionKind = "select-character"
	ActionOpenSubMap      ActionKind = "open-submap"
	ActionBackToMainMap   ActionKind = "back-to-main-map"
)

// Action names an interaction and its argument (tab id, character id, or
// location id; empty for back-to-main).
type Action struct {
	Kind ActionKind
	Arg  string
}

// Walk visits the node and every descendant in depth-first order. Returning
// false from the visitor stops the walk.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// FindAll returns every descendant (including n) matching the predicate.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(node *Node) bool {
		if pred(node) {
			out = append(out, node)
		}
		return true
	})
	return out
}

// TextContent concatenates all text leaves under the node.
func (n *Node) TextContent() string {
	var out string
	n.Walk(func(node *Node) bool {
		out += node.Text
		return true
	})
	return out
}
