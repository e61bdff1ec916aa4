package filedeps

// Node is the minimal tree capability the locator and extractors need from a
// decoded manifest: descend by key, recognize arrays, read scalar text. Any
// decoder that produces the usual map[string]any / []any / scalar tree plugs
// in via NodeOf, so the traversal code stays independent of the JSON library.
type Node interface {
	// Child returns the named child of an object node. The second return is
	// false when the node is not an object or the key is absent.
	Child(key string) (Node, bool)
	// IsArray reports whether the node is a sequence.
	IsArray() bool
	// Items returns the elements of an array node, nil otherwise.
	Items() []Node
	// Text returns the node's string value. The second return is false for
	// non-string nodes.
	Text() (string, bool)
}

// NodeOf wraps a decoded document tree (map[string]any, []any, scalars) into a
// Node.
func NodeOf(v any) Node { return anyNode{v: v} }

type anyNode struct{ v any }

func (n anyNode) Child(key string) (Node, bool) {
	m, ok := n.v.(map[string]any)
	if !ok {
		return nil, false
	}
	c, ok := m[key]
	if !ok {
		return nil, false
	}
	return anyNode{v: c}, true
}

func (n anyNode) IsArray() bool {
	_, ok := n.v.([]any)
	return ok
}

func (n anyNode) Items() []Node {
	s, ok := n.v.([]any)
	if !ok {
		return nil
	}
	items := make([]Node, len(s))
	for i, e := range s {
		items[i] = anyNode{v: e}
	}
	return items
}

func (n anyNode) Text() (string, bool) {
	s, ok := n.v.(string)
	return s, ok
}
